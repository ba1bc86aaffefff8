package outfit

import "math"

type seasonWeight struct {
	season Season
	weight float64
}

// weatherSeasons maps each weather kind onto the seasons whose garments suit
// it. Weights per kind sum to 2 so a season-neutral garment scores 0.5.
var weatherSeasons = map[WeatherKind][]seasonWeight{
	WeatherHot:   {{SeasonSummer, 1.4}, {SeasonSpring, 0.6}},
	WeatherCold:  {{SeasonWinter, 1.4}, {SeasonFall, 0.6}},
	WeatherWet:   {{SeasonFall, 1.2}, {SeasonSpring, 0.8}},
	WeatherWindy: {{SeasonFall, 1.2}, {SeasonWinter, 0.8}},
	WeatherMild:  {{SeasonSpring, 1.2}, {SeasonFall, 0.8}},
}

type materialFit struct {
	good []string
	bad  []string
}

var weatherMaterials = map[WeatherKind]materialFit{
	WeatherHot: {
		good: []string{"linen", "cotton", "silk", "chiffon"},
		bad:  []string{"wool", "fleece", "leather", "cashmere", "velvet", "corduroy", "tweed", "flannel"},
	},
	WeatherCold: {
		good: []string{"wool", "cashmere", "fleece", "tweed", "corduroy", "leather", "flannel"},
		bad:  []string{"linen", "chiffon"},
	},
	WeatherWet: {
		good: []string{"nylon", "polyester"},
		bad:  []string{"suede", "silk", "linen", "velvet", "canvas"},
	},
	WeatherWindy: {
		good: []string{"nylon", "leather", "denim", "wool"},
		bad:  []string{"silk", "linen", "chiffon"},
	},
	WeatherMild: {
		good: []string{"cotton", "denim", "linen", "polyester", "jersey"},
	},
}

// Scorer rates single garments against a request context.
type Scorer struct {
	cfg ScoringConfig
}

// NewScorer builds a scorer with the given coefficients.
func NewScorer(cfg ScoringConfig) Scorer {
	return Scorer{cfg: cfg}
}

// Score is a pure function of its inputs.
func (s Scorer) Score(item FeatureVector, weather WeatherProfile, occasion OccasionProfile) ScoredItem {
	ws := s.WeatherScore(item, weather)
	fs := s.FormalityScore(item.Formality, occasion.Formality)
	return ScoredItem{
		Features:       item,
		WeatherScore:   ws,
		FormalityScore: fs,
		OverallScore:   ws*s.cfg.WeatherWeight + fs*s.cfg.FormalityWeight,
	}
}

// WeatherScore blends seasonal fit with how the materials cope with the weather.
func (s Scorer) WeatherScore(item FeatureVector, weather WeatherProfile) float64 {
	seasonal := 0.0
	material := 0.5
	for _, kind := range WeatherKinds {
		weight := weather.Of(kind)
		if weight == 0 {
			continue
		}
		for _, sw := range weatherSeasons[kind] {
			seasonal += weight * sw.weight * item.Seasonality.Of(sw.season)
		}
		fit := weatherMaterials[kind]
		if anyOf(item.Materials, fit.good) {
			material += s.cfg.MaterialImpact * weight
		}
		if anyOf(item.Materials, fit.bad) {
			material -= s.cfg.MaterialImpact * weight
		}
	}
	material = clamp(material, 0, 1)
	return clamp(s.cfg.SeasonBlend*seasonal+(1-s.cfg.SeasonBlend)*material, 0, 1)
}

// FormalityScore rewards closeness to the occasion, punishing underdressing
// harder than overdressing.
func (s Scorer) FormalityScore(itemFormality, occasionFormality float64) float64 {
	diff := math.Abs(itemFormality - occasionFormality)
	var penalty float64
	if itemFormality < occasionFormality {
		penalty = s.cfg.UnderdressedRate * diff
	} else {
		penalty = s.cfg.OverdressedRate * diff
		if diff < s.cfg.NearOverdressedBy {
			penalty *= 1 - s.cfg.NearDiscount
		}
	}
	if diff > s.cfg.FarDiff {
		penalty *= s.cfg.FarMultiplier
	}
	score := clamp(1-penalty/10, 0, 1)
	if diff < s.cfg.ExactWithin {
		score = math.Min(1, score+s.cfg.ExactBonus)
	}
	return score
}
