package caption

import (
	"context"

	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
	apperrors "github.com/yanqian/outfit-advisor/pkg/errors"
)

// StaticCaptioner stands in when no caption model is configured.
type StaticCaptioner struct{}

// Caption always fails so image-only uploads ask for a description.
func (StaticCaptioner) Caption(_ context.Context, _ []byte, _ string) (wardrobe.Caption, error) {
	return wardrobe.Caption{}, apperrors.Wrap("caption_error", "image captioning is not configured; please add a description", nil)
}

var _ wardrobe.Captioner = StaticCaptioner{}
