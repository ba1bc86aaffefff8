package outfit

import "errors"

// Config holds the tunable coefficients of the engine.
type Config struct {
	Scoring   ScoringConfig
	Selection SelectionConfig
}

// ScoringConfig tunes the suitability scorer. The formality shaping constants
// are empirical; Validate only guards their relative ordering.
type ScoringConfig struct {
	WeatherWeight   float64
	FormalityWeight float64

	SeasonBlend    float64
	MaterialImpact float64

	UnderdressedRate  float64
	OverdressedRate   float64
	NearOverdressedBy float64
	NearDiscount      float64
	FarDiff           float64
	FarMultiplier     float64
	ExactWithin       float64
	ExactBonus        float64
}

// SelectionConfig tunes which garments make it into the outfit.
type SelectionConfig struct {
	OnePieceThreshold  float64
	OptionalThreshold  float64
	OuterwearBelowC    float64
	OuterwearWetOver   float64
	OuterwearWindyOver float64
}

// DefaultConfig returns the stock coefficients.
func DefaultConfig() Config {
	return Config{
		Scoring: ScoringConfig{
			WeatherWeight:     0.4,
			FormalityWeight:   0.6,
			SeasonBlend:       0.7,
			MaterialImpact:    0.3,
			UnderdressedRate:  1.5,
			OverdressedRate:   0.8,
			NearOverdressedBy: 2,
			NearDiscount:      0.2,
			FarDiff:           5,
			FarMultiplier:     1.5,
			ExactWithin:       0.5,
			ExactBonus:        0.2,
		},
		Selection: SelectionConfig{
			OnePieceThreshold:  0.7,
			OptionalThreshold:  0.6,
			OuterwearBelowC:    20,
			OuterwearWetOver:   0.4,
			OuterwearWindyOver: 0.4,
		},
	}
}

// Validate rejects coefficient sets that break the scoring invariants.
func (c Config) Validate() error {
	s := c.Scoring
	if s.WeatherWeight < 0 || s.FormalityWeight < 0 {
		return errors.New("scoring weights must be non-negative")
	}
	if s.WeatherWeight+s.FormalityWeight <= 0 {
		return errors.New("scoring weights cannot both be zero")
	}
	if s.SeasonBlend < 0 || s.SeasonBlend > 1 {
		return errors.New("scoring.seasonBlend must be within [0,1]")
	}
	if s.MaterialImpact < 0 {
		return errors.New("scoring.materialImpact must be non-negative")
	}
	if s.OverdressedRate < 0 {
		return errors.New("scoring.overdressedRate must be non-negative")
	}
	if s.UnderdressedRate < s.OverdressedRate {
		return errors.New("scoring.underdressedRate must not be below overdressedRate")
	}
	if s.NearDiscount < 0 || s.NearDiscount >= 1 {
		return errors.New("scoring.nearDiscount must be within [0,1)")
	}
	if s.FarMultiplier < 1 {
		return errors.New("scoring.farMultiplier must be at least 1")
	}
	if s.ExactBonus < 0 {
		return errors.New("scoring.exactBonus must be non-negative")
	}
	return nil
}
