package caption

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
	"github.com/yanqian/outfit-advisor/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/outfit-advisor/pkg/errors"
)

const defaultPrompt = "Describe the single clothing item in this photo in one short line: " +
	"colour, material, pattern and garment type, e.g. \"navy striped cotton shirt\". " +
	"Reply with the description only."

// ChatClient is the subset of the ChatGPT client the captioner needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Config tunes the captioning request.
type Config struct {
	Model       string
	Prompt      string
	Temperature float32
	MaxTokens   int
	ImageDetail string
}

// ChatGPTCaptioner describes garment photos with a vision capable chat model.
type ChatGPTCaptioner struct {
	cfg       Config
	client    ChatClient
	tokenizer *Tokenizer
	logger    *slog.Logger
}

// NewChatGPTCaptioner constructs the captioner.
func NewChatGPTCaptioner(cfg Config, client ChatClient, tokenizer *Tokenizer, logger *slog.Logger) *ChatGPTCaptioner {
	if strings.TrimSpace(cfg.Prompt) == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.ImageDetail == "" {
		cfg.ImageDetail = "low"
	}
	return &ChatGPTCaptioner{
		cfg:       cfg,
		client:    client,
		tokenizer: tokenizer,
		logger:    logger.With("component", "caption.chatgpt"),
	}
}

// Caption implements wardrobe.Captioner.
func (c *ChatGPTCaptioner) Caption(ctx context.Context, image []byte, mimeType string) (wardrobe.Caption, error) {
	if len(image) == 0 {
		return wardrobe.Caption{}, apperrors.Wrap("caption_error", "image cannot be empty", nil)
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
	resp, err := c.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []chatgpt.Message{
			{Role: "user", Parts: []chatgpt.ContentPart{
				chatgpt.TextPart(c.cfg.Prompt),
				chatgpt.ImagePart(dataURL, c.cfg.ImageDetail),
			}},
		},
	})
	if err != nil {
		return wardrobe.Caption{}, apperrors.Wrap("caption_error", "caption request failed", err)
	}
	text := cleanCaption(resp.FirstContent())
	if text == "" {
		return wardrobe.Caption{}, apperrors.Wrap("caption_error", "caption was empty", nil)
	}
	if c.cfg.MaxTokens > 0 {
		text = c.tokenizer.Truncate(text, c.cfg.MaxTokens)
	}
	usage := resp.Usage.TokenUsage()
	c.logger.Info("image captioned", "usage", usage, "length", len(text))
	return wardrobe.Caption{Text: text, Usage: usage}, nil
}

// cleanCaption keeps the first line and strips quoting and trailing periods.
func cleanCaption(raw string) string {
	line := strings.TrimSpace(raw)
	if idx := strings.IndexAny(line, "\r\n"); idx >= 0 {
		line = line[:idx]
	}
	line = strings.Trim(line, "\"'` ")
	line = strings.TrimRight(line, ". ")
	return strings.Join(strings.Fields(line), " ")
}

var _ wardrobe.Captioner = (*ChatGPTCaptioner)(nil)
