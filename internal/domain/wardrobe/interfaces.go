package wardrobe

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/outfit-advisor/pkg/metrics"
)

// ItemRepository persists wardrobe items. List returns items oldest first.
type ItemRepository interface {
	Create(ctx context.Context, item Item) error
	List(ctx context.Context, userID int64) ([]Item, error)
	Get(ctx context.Context, userID int64, id uuid.UUID) (Item, bool, error)
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
}

// ImageStorage abstracts blob storage for garment photos.
type ImageStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredImage, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// StoredImage captures persisted blob metadata.
type StoredImage struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}

// Captioner turns a garment photo into a one-line description.
type Captioner interface {
	Caption(ctx context.Context, image []byte, mimeType string) (Caption, error)
}

// Caption is a generated garment description.
type Caption struct {
	Text  string
	Usage metrics.TokenUsage
}

// WeatherClient fetches the current observation for a location.
type WeatherClient interface {
	Current(ctx context.Context, location string) (Observation, error)
}

// WeatherCache stores recent observations keyed by normalized location.
type WeatherCache interface {
	Get(ctx context.Context, location string) (Observation, bool, error)
	Set(ctx context.Context, location string, obs Observation, ttl time.Duration) error
}
