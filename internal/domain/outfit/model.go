package outfit

// Category is the single wardrobe slot a garment can fill.
type Category string

const (
	CategoryOnePiece  Category = "one_piece"
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryFootwear  Category = "footwear"
	CategoryAccessory Category = "accessory"
)

// CategoryOrder is the fixed output order of an outfit.
var CategoryOrder = []Category{
	CategoryOnePiece,
	CategoryTop,
	CategoryBottom,
	CategoryOuterwear,
	CategoryFootwear,
	CategoryAccessory,
}

// Season names one quarter of the year.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists every season in a stable iteration order.
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Seasonality is a probability-like distribution over seasons.
type Seasonality struct {
	Spring float64 `json:"spring"`
	Summer float64 `json:"summer"`
	Fall   float64 `json:"fall"`
	Winter float64 `json:"winter"`
}

// Of returns the weight for a season.
func (s Seasonality) Of(season Season) float64 {
	switch season {
	case SeasonSpring:
		return s.Spring
	case SeasonSummer:
		return s.Summer
	case SeasonFall:
		return s.Fall
	case SeasonWinter:
		return s.Winter
	default:
		return 0
	}
}

// Sum adds every season weight.
func (s Seasonality) Sum() float64 {
	return s.Spring + s.Summer + s.Fall + s.Winter
}

// WeatherKind is one axis of a weather profile.
type WeatherKind string

const (
	WeatherHot   WeatherKind = "hot"
	WeatherCold  WeatherKind = "cold"
	WeatherWet   WeatherKind = "wet"
	WeatherWindy WeatherKind = "windy"
	WeatherMild  WeatherKind = "mild"
)

// WeatherKinds lists every weather axis in a stable iteration order.
var WeatherKinds = []WeatherKind{WeatherHot, WeatherCold, WeatherWet, WeatherWindy, WeatherMild}

// WeatherProfile is a normalized distribution over weather kinds.
type WeatherProfile struct {
	Hot   float64 `json:"hot"`
	Cold  float64 `json:"cold"`
	Wet   float64 `json:"wet"`
	Windy float64 `json:"windy"`
	Mild  float64 `json:"mild"`
}

// Of returns the weight for a weather kind.
func (w WeatherProfile) Of(kind WeatherKind) float64 {
	switch kind {
	case WeatherHot:
		return w.Hot
	case WeatherCold:
		return w.Cold
	case WeatherWet:
		return w.Wet
	case WeatherWindy:
		return w.Windy
	case WeatherMild:
		return w.Mild
	default:
		return 0
	}
}

// Sum adds every weather weight.
func (w WeatherProfile) Sum() float64 {
	return w.Hot + w.Cold + w.Wet + w.Windy + w.Mild
}

// OccasionProfile describes how dressy and what kind of event an occasion is.
type OccasionProfile struct {
	Formality    float64 `json:"formality"`
	Social       float64 `json:"social"`
	Professional float64 `json:"professional"`
	Active       float64 `json:"active"`
	Outdoor      float64 `json:"outdoor"`
	Evening      float64 `json:"evening"`
}

// Pattern is the dominant surface pattern of a garment.
type Pattern string

const (
	PatternSolid    Pattern = "solid"
	PatternStriped  Pattern = "striped"
	PatternChecked  Pattern = "checked"
	PatternPlaid    Pattern = "plaid"
	PatternFloral   Pattern = "floral"
	PatternPolkaDot Pattern = "polka_dot"
	PatternGraphic  Pattern = "graphic"
	PatternAnimal   Pattern = "animal"
	PatternCamo     Pattern = "camo"
	PatternPaisley  Pattern = "paisley"
	PatternGeo      Pattern = "geometric"
	PatternTieDye   Pattern = "tie_dye"
)

// Fit is the cut of a garment.
type Fit string

const (
	FitRegular   Fit = "regular"
	FitSlim      Fit = "slim"
	FitRelaxed   Fit = "relaxed"
	FitOversized Fit = "oversized"
	FitCropped   Fit = "cropped"
)

// Style is an aesthetic family a garment leans towards.
type Style string

const (
	StyleCasual     Style = "casual"
	StyleClassic    Style = "classic"
	StyleFormal     Style = "formal"
	StyleSporty     Style = "sporty"
	StyleBohemian   Style = "bohemian"
	StyleStreetwear Style = "streetwear"
)

// Styles lists every style in a stable iteration order.
var Styles = []Style{StyleCasual, StyleClassic, StyleFormal, StyleSporty, StyleBohemian, StyleStreetwear}

// FeatureVector is the structured reading of one garment description.
type FeatureVector struct {
	Description    string            `json:"description"`
	Colors         []string          `json:"colors"`
	Materials      []string          `json:"materials"`
	TypeTerms      []string          `json:"typeTerms"`
	Category       Category          `json:"category"`
	CategorySource string            `json:"categorySource"`
	Formality      float64           `json:"formality"`
	Seasonality    Seasonality       `json:"seasonality"`
	Pattern        Pattern           `json:"pattern"`
	Fit            Fit               `json:"fit"`
	StyleProfile   map[Style]float64 `json:"styleProfile"`
	Versatility    float64           `json:"versatility"`
}

// ScoredItem pairs a garment with its suitability for one request.
type ScoredItem struct {
	Index          int           `json:"index"`
	Features       FeatureVector `json:"features"`
	WeatherScore   float64       `json:"weatherScore"`
	FormalityScore float64       `json:"formalityScore"`
	OverallScore   float64       `json:"overallScore"`
}

// Conditions carries the raw observation the selector needs besides scores.
type Conditions struct {
	TemperatureC float64
	Weather      WeatherProfile
}

// Slot is one filled (or placeholder) category of an outfit.
type Slot struct {
	Category    Category    `json:"category"`
	Description string      `json:"description"`
	Placeholder bool        `json:"placeholder,omitempty"`
	Item        *ScoredItem `json:"item,omitempty"`
}

// Selection is an outfit, ordered by CategoryOrder.
type Selection struct {
	Slots []Slot `json:"slots"`
}

// Get returns the slot for a category.
func (s Selection) Get(category Category) (Slot, bool) {
	for _, slot := range s.Slots {
		if slot.Category == category {
			return slot, true
		}
	}
	return Slot{}, false
}

// Has reports whether the category is present, placeholder or not.
func (s Selection) Has(category Category) bool {
	_, ok := s.Get(category)
	return ok
}

// Descriptions flattens the selection into category -> text.
func (s Selection) Descriptions() map[Category]string {
	out := make(map[Category]string, len(s.Slots))
	for _, slot := range s.Slots {
		out[slot.Category] = slot.Description
	}
	return out
}

// PairScore is the coordination between two selected garments.
type PairScore struct {
	A             Category `json:"a"`
	B             Category `json:"b"`
	ColorHarmony  float64  `json:"colorHarmony"`
	StyleAffinity float64  `json:"styleAffinity"`
}

// Coordination summarizes how well the selected garments go together.
type Coordination struct {
	ColorHarmony  float64     `json:"colorHarmony"`
	StyleAffinity float64     `json:"styleAffinity"`
	Pairs         []PairScore `json:"pairs"`
}

// Suggestion is the full result of one engine run.
type Suggestion struct {
	Selection    Selection       `json:"selection"`
	Weather      WeatherProfile  `json:"weather"`
	Occasion     OccasionProfile `json:"occasion"`
	Items        []ScoredItem    `json:"items"`
	Coordination Coordination    `json:"coordination"`
}
