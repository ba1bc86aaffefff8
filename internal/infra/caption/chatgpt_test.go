package caption

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/outfit-advisor/pkg/errors"
)

func TestChatGPTCaptionerCaption(t *testing.T) {
	stub := &stubChatClient{resp: chatResponse("\"Navy striped cotton shirt.\"\nIt looks great!", 84)}
	captioner := NewChatGPTCaptioner(Config{Model: "gpt-vision"}, stub, nil, testLogger())

	got, err := captioner.Caption(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.NoError(t, err)
	require.Equal(t, "Navy striped cotton shirt", got.Text)
	require.Equal(t, 84, got.Usage.TotalTokens)

	require.Equal(t, "gpt-vision", stub.last.Model)
	require.Len(t, stub.last.Messages, 1)
	parts := stub.last.Messages[0].Parts
	require.Len(t, parts, 2)
	require.Equal(t, defaultPrompt, parts[0].Text)
	require.True(t, strings.HasPrefix(parts[1].ImageURL.URL, "data:image/png;base64,"))
	require.Equal(t, "low", parts[1].ImageURL.Detail)
}

func TestChatGPTCaptionerTruncatesWithoutEncoding(t *testing.T) {
	stub := &stubChatClient{resp: chatResponse("black leather ankle boots with silver buckles", 0)}
	captioner := NewChatGPTCaptioner(Config{MaxTokens: 3}, stub, nil, testLogger())

	got, err := captioner.Caption(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "black leather ankle", got.Text)
	require.True(t, got.Usage.IsZero())
}

func TestChatGPTCaptionerErrors(t *testing.T) {
	stub := &stubChatClient{err: errors.New("boom")}
	captioner := NewChatGPTCaptioner(Config{}, stub, nil, testLogger())

	_, err := captioner.Caption(context.Background(), []byte("img"), "image/jpeg")
	require.True(t, apperrors.IsCode(err, "caption_error"))

	stub.err = nil
	stub.resp = chatResponse("   ", 0)
	_, err = captioner.Caption(context.Background(), []byte("img"), "image/jpeg")
	require.True(t, apperrors.IsCode(err, "caption_error"))

	_, err = captioner.Caption(context.Background(), nil, "image/jpeg")
	require.True(t, apperrors.IsCode(err, "caption_error"))
}

func TestStaticCaptionerRejects(t *testing.T) {
	_, err := StaticCaptioner{}.Caption(context.Background(), []byte("img"), "image/png")
	require.True(t, apperrors.IsCode(err, "caption_error"))
}

func TestCleanCaption(t *testing.T) {
	require.Equal(t, "grey wool sweater", cleanCaption("  'grey   wool sweater.'  "))
	require.Equal(t, "red dress", cleanCaption("red dress\nsecond line"))
	require.Equal(t, "", cleanCaption(""))
}

type stubChatClient struct {
	resp chatgpt.ChatCompletionResponse
	err  error
	last chatgpt.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.last = req
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	return s.resp, nil
}

func chatResponse(content string, total int) chatgpt.ChatCompletionResponse {
	resp := chatgpt.ChatCompletionResponse{
		Choices: []struct {
			Message chatgpt.Message `json:"message"`
		}{
			{Message: chatgpt.Message{Role: "assistant", Content: content}},
		},
	}
	resp.Usage.TotalTokens = total
	return resp
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
