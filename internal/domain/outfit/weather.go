package outfit

const (
	primaryKeywordWeight   = 0.6
	secondaryKeywordWeight = 0.3
)

type weatherKeywords struct {
	kind      WeatherKind
	primary   []string
	secondary []string
}

// Weather keywords are raw substrings: provider descriptions such as
// "light rain" or "overcast clouds" come in many inflections.
var weatherVocabulary = []weatherKeywords{
	{WeatherHot, []string{"hot", "sunny", "heat"}, []string{"warm", "clear", "humid"}},
	{WeatherCold, []string{"cold", "freezing", "snow", "icy", "frost"}, []string{"chilly", "cool", "sleet"}},
	{WeatherWet, []string{"rain", "shower", "drizzle", "thunderstorm"}, []string{"mist", "fog", "damp", "wet"}},
	{WeatherWindy, []string{"windy", "gale", "gust"}, []string{"breez", "draft"}},
	{WeatherMild, []string{"mild", "pleasant"}, []string{"cloud", "overcast", "fair"}},
}

var (
	precipitationTerms = []string{"rain", "drizzle", "shower", "snow", "sleet", "hail", "storm"}
	frozenPrecipTerms  = []string{"snow", "sleet"}
	windTerms          = []string{"wind", "gust", "breez", "gale"}
)

type temperatureBand struct {
	above  float64
	deltas WeatherProfile
}

// temperatureBands taper from very hot to freezing; hot and cold pull each
// other down at the extremes. The cool band only signals mild weather.
var temperatureBands = []temperatureBand{
	{30, WeatherProfile{Hot: 1.0, Cold: -0.5, Mild: -0.2}},
	{25, WeatherProfile{Hot: 0.7, Cold: -0.3}},
	{20, WeatherProfile{Hot: 0.4, Mild: 0.3}},
	{15, WeatherProfile{Mild: 0.6}},
	{10, WeatherProfile{Mild: 0.4}},
	{5, WeatherProfile{Cold: 0.5, Mild: 0.2}},
	{0, WeatherProfile{Cold: 0.8, Hot: -0.5}},
}

var freezingBand = WeatherProfile{Cold: 1.0, Hot: -0.7}

// ClassifyWeather turns a free-text description and a temperature in Celsius
// into a normalized weather profile.
func ClassifyWeather(description string, temperatureC float64) WeatherProfile {
	doc := newDocument(description)
	var scores WeatherProfile

	for _, entry := range weatherVocabulary {
		delta := 0.0
		for _, kw := range entry.primary {
			if doc.containsRaw(kw) {
				delta += primaryKeywordWeight
			}
		}
		for _, kw := range entry.secondary {
			if doc.containsRaw(kw) {
				delta += secondaryKeywordWeight
			}
		}
		scores = scores.add(entry.kind, delta)
	}

	scores = scores.plus(bandFor(temperatureC))

	if containsAnyRaw(doc, precipitationTerms) {
		scores.Wet += 0.3
		if containsAnyRaw(doc, frozenPrecipTerms) {
			scores.Cold += 0.3
		}
	}
	if containsAnyRaw(doc, windTerms) {
		scores.Windy += 0.3
		if temperatureC < 15 {
			scores.Cold += 0.1
		}
	}

	return normalizeWeather(scores)
}

func bandFor(temperatureC float64) WeatherProfile {
	for _, band := range temperatureBands {
		if temperatureC > band.above {
			return band.deltas
		}
	}
	return freezingBand
}

func normalizeWeather(scores WeatherProfile) WeatherProfile {
	var clamped WeatherProfile
	for _, kind := range WeatherKinds {
		if v := scores.Of(kind); v > 0 {
			clamped = clamped.add(kind, v)
		}
	}
	total := clamped.Sum()
	if total <= 0 {
		return WeatherProfile{Mild: 1.0}
	}
	return WeatherProfile{
		Hot:   clamped.Hot / total,
		Cold:  clamped.Cold / total,
		Wet:   clamped.Wet / total,
		Windy: clamped.Windy / total,
		Mild:  clamped.Mild / total,
	}
}

func (w WeatherProfile) add(kind WeatherKind, delta float64) WeatherProfile {
	switch kind {
	case WeatherHot:
		w.Hot += delta
	case WeatherCold:
		w.Cold += delta
	case WeatherWet:
		w.Wet += delta
	case WeatherWindy:
		w.Windy += delta
	case WeatherMild:
		w.Mild += delta
	}
	return w
}

func (w WeatherProfile) plus(o WeatherProfile) WeatherProfile {
	return WeatherProfile{
		Hot:   w.Hot + o.Hot,
		Cold:  w.Cold + o.Cold,
		Wet:   w.Wet + o.Wet,
		Windy: w.Windy + o.Windy,
		Mild:  w.Mild + o.Mild,
	}
}

func containsAnyRaw(doc document, terms []string) bool {
	for _, term := range terms {
		if doc.containsRaw(term) {
			return true
		}
	}
	return false
}
