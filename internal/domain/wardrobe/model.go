package wardrobe

import (
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	"github.com/yanqian/outfit-advisor/pkg/metrics"
)

// Config drives upload limits and weather lookup.
type Config struct {
	MaxImageBytes   int64
	DefaultLocation string
	WeatherCacheTTL time.Duration
}

// Item is one garment in a user's wardrobe.
type Item struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"userId"`
	Description   string    `json:"description"`
	ImageKey      string    `json:"imageKey,omitempty"`
	ImageMimeType string    `json:"imageMimeType,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HasImage reports whether an image blob backs the item.
func (i Item) HasImage() bool {
	return i.ImageKey != ""
}

// AddItemRequest carries a description, an image, or both.
type AddItemRequest struct {
	Description string
	Image       []byte
	MimeType    string
	Filename    string
}

// AddItemResponse echoes the stored item and how the engine reads it.
type AddItemResponse struct {
	Item         Item                 `json:"item"`
	Features     outfit.FeatureVector `json:"features"`
	Captioned    bool                 `json:"captioned"`
	CaptionUsage *metrics.TokenUsage  `json:"captionUsage,omitempty"`
}

// WeatherInput is an explicit observation supplied by the caller.
type WeatherInput struct {
	Description  string  `json:"description"`
	TemperatureC float64 `json:"temperatureC"`
}

// Observation source values.
const (
	SourceRequest  = "request"
	SourceCache    = "cache"
	SourceProvider = "provider"
)

// Observation is the current weather at a location.
type Observation struct {
	Location     string  `json:"location,omitempty"`
	Description  string  `json:"description"`
	TemperatureC float64 `json:"temperatureC"`
	Source       string  `json:"source,omitempty"`
}

// SuggestRequest asks for an outfit from the stored wardrobe. Weather is
// fetched for Location when not supplied.
type SuggestRequest struct {
	Occasion string        `json:"occasion"`
	Location string        `json:"location"`
	Weather  *WeatherInput `json:"weather,omitempty"`
}

// MaxPreviewItems bounds the descriptions accepted by a single preview.
const MaxPreviewItems = 100

// PreviewRequest runs the engine over ad hoc descriptions.
type PreviewRequest struct {
	Descriptions []string      `json:"descriptions"`
	Occasion     string        `json:"occasion"`
	Weather      *WeatherInput `json:"weather"`
}

// ScoredEntry is one garment's scores for a suggestion.
type ScoredEntry struct {
	ItemID         string          `json:"itemId,omitempty"`
	Description    string          `json:"description"`
	Category       outfit.Category `json:"category"`
	WeatherScore   float64         `json:"weatherScore"`
	FormalityScore float64         `json:"formalityScore"`
	OverallScore   float64         `json:"overallScore"`
}

// SuggestResponse is returned to the HTTP handler.
type SuggestResponse struct {
	Weather         Observation                `json:"weather"`
	Outfit          map[outfit.Category]string `json:"outfit"`
	Formatted       string                     `json:"formatted"`
	Selection       outfit.Selection           `json:"selection"`
	Coordination    outfit.Coordination        `json:"coordination"`
	WeatherProfile  outfit.WeatherProfile      `json:"weatherProfile"`
	OccasionProfile outfit.OccasionProfile     `json:"occasionProfile"`
	Items           []ScoredEntry              `json:"items"`
}
