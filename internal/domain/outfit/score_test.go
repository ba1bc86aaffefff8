package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScorer_FormalityAsymmetry(t *testing.T) {
	s := NewScorer(DefaultConfig().Scoring)

	under := s.FormalityScore(3, 6)
	over := s.FormalityScore(9, 6)
	require.InDelta(t, 0.55, under, 1e-9)
	require.InDelta(t, 0.76, over, 1e-9)
	require.Less(t, under, over)

	require.Equal(t, 1.0, s.FormalityScore(7, 7))
	require.InDelta(t, 0.28, s.FormalityScore(10, 4), 1e-9)
	require.Equal(t, 0.0, s.FormalityScore(1, 10))
}

func TestScorer_FormalityMonotonic(t *testing.T) {
	s := NewScorer(DefaultConfig().Scoring)
	for _, occasion := range []float64{1, 3, 5.5, 7, 10} {
		prevUnder, prevOver := 2.0, 2.0
		for d := 0.0; d <= 9; d += 0.25 {
			under := s.FormalityScore(occasion-d, occasion)
			over := s.FormalityScore(occasion+d, occasion)
			require.LessOrEqual(t, under, prevUnder, "occasion %v diff %v", occasion, d)
			require.LessOrEqual(t, over, prevOver, "occasion %v diff %v", occasion, d)
			require.LessOrEqual(t, under, over, "occasion %v diff %v", occasion, d)
			require.GreaterOrEqual(t, under, 0.0)
			require.LessOrEqual(t, over, 1.0)
			prevUnder, prevOver = under, over
		}
	}
}

func TestScorer_WeatherScore(t *testing.T) {
	s := NewScorer(DefaultConfig().Scoring)
	cold := ClassifyWeather("", 5)
	hot := ClassifyWeather("sunny", 35)

	coat := Extract("heavy wool winter coat")
	shorts := Extract("linen summer shorts")

	require.InDelta(t, 0.944, s.WeatherScore(coat, cold), 1e-3)
	require.Greater(t, s.WeatherScore(coat, cold), s.WeatherScore(shorts, cold))
	require.Greater(t, s.WeatherScore(shorts, hot), s.WeatherScore(coat, hot))

	for _, fv := range []FeatureVector{coat, shorts, Extract(""), Extract("red silk tie")} {
		for _, w := range []WeatherProfile{cold, hot, ClassifyWeather("heavy rain and wind", 9)} {
			score := s.WeatherScore(fv, w)
			require.GreaterOrEqual(t, score, 0.0)
			require.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestScorer_OverallBlend(t *testing.T) {
	s := NewScorer(DefaultConfig().Scoring)
	item := s.Score(Extract("red silk tie"), ClassifyWeather("clear sky", 22), ProfileOccasion("business"))
	require.Equal(t, 1.0, item.FormalityScore)
	require.InDelta(t, 0.4*item.WeatherScore+0.6*item.FormalityScore, item.OverallScore, 1e-12)
	require.InDelta(t, 0.839, item.OverallScore, 1e-3)
}

func TestColorHarmony(t *testing.T) {
	fv := func(colors ...string) FeatureVector { return FeatureVector{Colors: colors} }

	require.Equal(t, 0.5, ColorHarmony(fv(), fv("red")))
	require.Equal(t, 1.0, ColorHarmony(fv("black"), fv("white")))
	require.Equal(t, 1.0, ColorHarmony(fv("navy"), fv("navy")))
	require.InDelta(t, 0.9, ColorHarmony(fv("red"), fv("green")), 1e-9)
	require.InDelta(t, 0.8, ColorHarmony(fv("red"), fv("pink")), 1e-9)
	require.Equal(t, 0.0, ColorHarmony(fv("red"), fv("blue")))
	require.Equal(t, ColorHarmony(fv("teal"), fv("coral")), ColorHarmony(fv("coral"), fv("teal")))
}

func TestStyleAffinity(t *testing.T) {
	dress := Extract("floral maxi dress")
	require.InDelta(t, 1.0, StyleAffinity(dress, dress), 1e-9)

	suit := Extract("formal suit")
	require.InDelta(t, 0.0, StyleAffinity(dress, suit), 1e-9)

	plain := Extract("mysterious object")
	require.InDelta(t, 1.0/6, StyleAffinity(dress, plain), 1e-9)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Scoring.UnderdressedRate = 0.5
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Scoring.SeasonBlend = 1.5
	require.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Scoring.WeatherWeight = 0
	cfg.Scoring.FormalityWeight = 0
	require.Error(t, cfg.Validate())
}
