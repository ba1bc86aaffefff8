package caption

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

// Tokenizer counts and truncates text in model tokens. It falls back to
// whitespace words when the encoding cannot be loaded.
type Tokenizer struct {
	encoding string
	logger   *slog.Logger

	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewTokenizer builds a lazily initialized tokenizer.
func NewTokenizer(encoding string, logger *slog.Logger) *Tokenizer {
	if encoding == "" {
		encoding = defaultEncoding
	}
	return &Tokenizer{encoding: encoding, logger: logger.With("component", "caption.tokenizer")}
}

func (t *Tokenizer) load() *tiktoken.Tiktoken {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.logger.Warn("tiktoken unavailable, counting words", "encoding", t.encoding, "error", err)
			return
		}
		t.enc = enc
	})
	return t.enc
}

// Count returns the token count of text.
func (t *Tokenizer) Count(text string) int {
	if t == nil {
		return len(strings.Fields(text))
	}
	if enc := t.load(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(strings.Fields(text))
}

// Truncate cuts text to at most max tokens.
func (t *Tokenizer) Truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	var enc *tiktoken.Tiktoken
	if t != nil {
		enc = t.load()
	}
	if enc == nil {
		words := strings.Fields(text)
		if len(words) <= max {
			return text
		}
		return strings.Join(words[:max], " ")
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= max {
		return text
	}
	return strings.TrimSpace(enc.Decode(tokens[:max]))
}
