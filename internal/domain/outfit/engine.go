package outfit

import "math"

// Engine runs the full suggestion pipeline. It holds no per-request state
// and is safe for concurrent use.
type Engine struct {
	scorer   Scorer
	selector Selector
}

// NewEngine builds an engine from validated coefficients.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		scorer:   NewScorer(cfg.Scoring),
		selector: NewSelector(cfg.Selection),
	}
}

// SuggestOutfit extracts every description, builds the weather and occasion
// contexts once, scores each garment and selects an outfit.
func (e *Engine) SuggestOutfit(descriptions []string, occasion, weatherDescription string, temperatureC float64) (Suggestion, error) {
	if len(descriptions) == 0 {
		return Suggestion{}, ErrEmptyWardrobe
	}
	if math.IsNaN(temperatureC) || math.IsInf(temperatureC, 0) {
		return Suggestion{}, ErrInvalidTemperature
	}

	weather := ClassifyWeather(weatherDescription, temperatureC)
	profile := ProfileOccasion(occasion)

	scored := make([]ScoredItem, len(descriptions))
	for i, description := range descriptions {
		item := e.scorer.Score(Extract(description), weather, profile)
		item.Index = i
		scored[i] = item
	}

	sel := e.selector.Select(scored, Conditions{TemperatureC: temperatureC, Weather: weather})
	return Suggestion{
		Selection:    sel,
		Weather:      weather,
		Occasion:     profile,
		Items:        scored,
		Coordination: coordinate(sel),
	}, nil
}
