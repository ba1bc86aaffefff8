package wardrobe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	apperrors "github.com/yanqian/outfit-advisor/pkg/errors"
	"github.com/yanqian/outfit-advisor/pkg/util"
)

// Service exposes wardrobe management and outfit suggestion workflows.
type Service interface {
	AddItem(ctx context.Context, userID int64, req AddItemRequest) (AddItemResponse, error)
	ListItems(ctx context.Context, userID int64) ([]Item, error)
	DeleteItem(ctx context.Context, userID int64, id uuid.UUID) error
	ItemImage(ctx context.Context, userID int64, id uuid.UUID) (io.ReadCloser, string, error)
	Suggest(ctx context.Context, userID int64, req SuggestRequest) (SuggestResponse, error)
	Preview(ctx context.Context, req PreviewRequest) (SuggestResponse, error)
}

type service struct {
	cfg       Config
	items     ItemRepository
	images    ImageStorage
	captioner Captioner
	weather   WeatherClient
	cache     WeatherCache
	engine    *outfit.Engine
	logger    *slog.Logger
	now       func() time.Time
}

// NewService constructs a Service instance. cache may be nil.
func NewService(cfg Config, items ItemRepository, images ImageStorage, captioner Captioner, weather WeatherClient, cache WeatherCache, engine *outfit.Engine, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		items:     items,
		images:    images,
		captioner: captioner,
		weather:   weather,
		cache:     cache,
		engine:    engine,
		logger:    logger.With("component", "wardrobe.service"),
		now:       util.NowUTC,
	}
}

func (s *service) AddItem(ctx context.Context, userID int64, req AddItemRequest) (AddItemResponse, error) {
	if userID == 0 {
		return AddItemResponse{}, apperrors.Wrap("unauthorized", "missing user", nil)
	}
	description := strings.Join(strings.Fields(req.Description), " ")
	if description == "" && len(req.Image) == 0 {
		return AddItemResponse{}, apperrors.Wrap("invalid_input", "description or image is required", nil)
	}
	if s.cfg.MaxImageBytes > 0 && int64(len(req.Image)) > s.cfg.MaxImageBytes {
		return AddItemResponse{}, apperrors.Wrap("invalid_input", "image exceeds maximum allowed size", nil)
	}

	item := Item{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: s.now(),
	}
	resp := AddItemResponse{}

	if len(req.Image) > 0 {
		mime := req.MimeType
		if mime == "" || mime == "application/octet-stream" {
			mime = http.DetectContentType(req.Image)
		}
		if !strings.HasPrefix(mime, "image/") {
			return AddItemResponse{}, apperrors.Wrap("invalid_input", "upload must be an image", nil)
		}
		key := fmt.Sprintf("wardrobe/%d/%s%s", userID, item.ID, imageExtension(req.Filename, mime))
		obj, err := s.images.Put(ctx, key, req.Image, mime)
		if err != nil {
			return AddItemResponse{}, apperrors.Wrap("storage_error", "failed to store image", err)
		}
		item.ImageKey = obj.Key
		item.ImageMimeType = obj.MimeType

		if description == "" {
			caption, err := s.captioner.Caption(ctx, req.Image, mime)
			if err == nil && strings.TrimSpace(caption.Text) == "" {
				err = errors.New("empty caption")
			}
			if err != nil {
				s.discardImage(ctx, item.ImageKey)
				if apperrors.IsCode(err, "caption_error") {
					return AddItemResponse{}, err
				}
				return AddItemResponse{}, apperrors.Wrap("caption_error", "failed to describe image", err)
			}
			description = strings.Join(strings.Fields(caption.Text), " ")
			resp.Captioned = true
			if !caption.Usage.IsZero() {
				usage := caption.Usage
				resp.CaptionUsage = &usage
			}
		}
	}
	item.Description = description

	if err := s.items.Create(ctx, item); err != nil {
		if item.HasImage() {
			s.discardImage(ctx, item.ImageKey)
		}
		return AddItemResponse{}, apperrors.Wrap("wardrobe_error", "failed to save item", err)
	}
	s.logger.Info("wardrobe item added", "userId", userID, "itemId", item.ID, "captioned", resp.Captioned)

	resp.Item = item
	resp.Features = outfit.Extract(item.Description)
	return resp, nil
}

func (s *service) ListItems(ctx context.Context, userID int64) ([]Item, error) {
	items, err := s.items.List(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("wardrobe_error", "failed to list items", err)
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *service) DeleteItem(ctx context.Context, userID int64, id uuid.UUID) error {
	item, err := s.getItem(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, userID, id); err != nil {
		return apperrors.Wrap("wardrobe_error", "failed to delete item", err)
	}
	if item.HasImage() {
		s.discardImage(ctx, item.ImageKey)
	}
	return nil
}

func (s *service) ItemImage(ctx context.Context, userID int64, id uuid.UUID) (io.ReadCloser, string, error) {
	item, err := s.getItem(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}
	if !item.HasImage() {
		return nil, "", apperrors.Wrap("not_found", "item has no image", nil)
	}
	body, err := s.images.Get(ctx, item.ImageKey)
	if err != nil {
		return nil, "", apperrors.Wrap("storage_error", "failed to load image", err)
	}
	return body, item.ImageMimeType, nil
}

func (s *service) Suggest(ctx context.Context, userID int64, req SuggestRequest) (SuggestResponse, error) {
	occasion := strings.TrimSpace(req.Occasion)
	if occasion == "" {
		return SuggestResponse{}, apperrors.Wrap("invalid_input", "occasion is required", nil)
	}
	items, err := s.items.List(ctx, userID)
	if err != nil {
		return SuggestResponse{}, apperrors.Wrap("wardrobe_error", "failed to load wardrobe", err)
	}
	if len(items) == 0 {
		return SuggestResponse{}, apperrors.Wrap("empty_wardrobe", "add some clothes to your wardrobe first", nil)
	}
	obs, err := s.resolveWeather(ctx, req)
	if err != nil {
		return SuggestResponse{}, err
	}

	descriptions := make([]string, len(items))
	ids := make([]string, len(items))
	for i, item := range items {
		descriptions[i] = item.Description
		ids[i] = item.ID.String()
	}
	resp, err := s.run(descriptions, ids, occasion, obs)
	if err != nil {
		return SuggestResponse{}, err
	}
	s.logger.Info("outfit suggested",
		"userId", userID,
		"items", len(items),
		"weatherSource", obs.Source,
		"slots", len(resp.Selection.Slots),
	)
	return resp, nil
}

func (s *service) Preview(_ context.Context, req PreviewRequest) (SuggestResponse, error) {
	occasion := strings.TrimSpace(req.Occasion)
	if occasion == "" {
		return SuggestResponse{}, apperrors.Wrap("invalid_input", "occasion is required", nil)
	}
	if len(req.Descriptions) == 0 {
		return SuggestResponse{}, apperrors.Wrap("empty_wardrobe", "descriptions cannot be empty", nil)
	}
	if len(req.Descriptions) > MaxPreviewItems {
		return SuggestResponse{}, apperrors.Wrap("invalid_input", fmt.Sprintf("at most %d descriptions per preview", MaxPreviewItems), nil)
	}
	if req.Weather == nil {
		return SuggestResponse{}, apperrors.Wrap("invalid_input", "weather is required", nil)
	}
	if err := validateWeather(*req.Weather); err != nil {
		return SuggestResponse{}, err
	}
	obs := Observation{
		Description:  strings.TrimSpace(req.Weather.Description),
		TemperatureC: req.Weather.TemperatureC,
		Source:       SourceRequest,
	}
	return s.run(req.Descriptions, nil, occasion, obs)
}

func (s *service) run(descriptions, ids []string, occasion string, obs Observation) (SuggestResponse, error) {
	suggestion, err := s.engine.SuggestOutfit(descriptions, occasion, obs.Description, obs.TemperatureC)
	switch {
	case errors.Is(err, outfit.ErrEmptyWardrobe):
		return SuggestResponse{}, apperrors.Wrap("empty_wardrobe", "wardrobe is empty", err)
	case errors.Is(err, outfit.ErrInvalidTemperature):
		return SuggestResponse{}, apperrors.Wrap("invalid_input", "temperature must be a finite number", err)
	case err != nil:
		return SuggestResponse{}, apperrors.Wrap("wardrobe_error", "failed to suggest outfit", err)
	}

	entries := make([]ScoredEntry, len(suggestion.Items))
	for i, scored := range suggestion.Items {
		entry := ScoredEntry{
			Description:    scored.Features.Description,
			Category:       scored.Features.Category,
			WeatherScore:   scored.WeatherScore,
			FormalityScore: scored.FormalityScore,
			OverallScore:   scored.OverallScore,
		}
		if ids != nil {
			entry.ItemID = ids[scored.Index]
		}
		entries[i] = entry
	}
	return SuggestResponse{
		Weather:         obs,
		Outfit:          suggestion.Selection.Descriptions(),
		Formatted:       outfit.FormatOutfit(suggestion.Selection),
		Selection:       suggestion.Selection,
		Coordination:    suggestion.Coordination,
		WeatherProfile:  suggestion.Weather,
		OccasionProfile: suggestion.Occasion,
		Items:           entries,
	}, nil
}

func (s *service) resolveWeather(ctx context.Context, req SuggestRequest) (Observation, error) {
	if req.Weather != nil {
		if err := validateWeather(*req.Weather); err != nil {
			return Observation{}, err
		}
		return Observation{
			Location:     strings.TrimSpace(req.Location),
			Description:  strings.TrimSpace(req.Weather.Description),
			TemperatureC: req.Weather.TemperatureC,
			Source:       SourceRequest,
		}, nil
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = s.cfg.DefaultLocation
	}
	if location == "" {
		return Observation{}, apperrors.Wrap("invalid_input", "location or weather is required", nil)
	}
	key := normalizeLocation(location)

	if s.cache != nil {
		obs, found, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("weather cache lookup failed", "location", key, "error", err)
		} else if found {
			obs.Source = SourceCache
			return obs, nil
		}
	}

	obs, err := s.weather.Current(ctx, location)
	if err != nil {
		return Observation{}, apperrors.Wrap("weather_error", "failed to fetch weather", err)
	}
	obs.Source = SourceProvider
	if obs.Location == "" {
		obs.Location = location
	}
	if s.cache != nil && s.cfg.WeatherCacheTTL > 0 {
		if err := s.cache.Set(ctx, key, obs, s.cfg.WeatherCacheTTL); err != nil {
			s.logger.Warn("weather cache save failed", "location", key, "error", err)
		}
	}
	return obs, nil
}

func (s *service) getItem(ctx context.Context, userID int64, id uuid.UUID) (Item, error) {
	item, found, err := s.items.Get(ctx, userID, id)
	if err != nil {
		return Item{}, apperrors.Wrap("wardrobe_error", "failed to load item", err)
	}
	if !found {
		return Item{}, apperrors.Wrap("not_found", "item not found", nil)
	}
	return item, nil
}

func (s *service) discardImage(ctx context.Context, key string) {
	if err := s.images.Delete(ctx, key); err != nil {
		s.logger.Warn("image cleanup failed", "key", key, "error", err)
	}
}

func validateWeather(w WeatherInput) error {
	if math.IsNaN(w.TemperatureC) || math.IsInf(w.TemperatureC, 0) {
		return apperrors.Wrap("invalid_input", "temperature must be a finite number", nil)
	}
	return nil
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.Join(strings.Fields(location), " "))
}

var mimeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func imageExtension(filename, mime string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	}
	return mimeExtensions[mime]
}
