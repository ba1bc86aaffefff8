package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scored(index int, description string, category Category, overall float64) ScoredItem {
	return ScoredItem{
		Index:        index,
		Features:     FeatureVector{Description: description, Category: category},
		OverallScore: overall,
	}
}

func mildConditions(temp float64) Conditions {
	return Conditions{TemperatureC: temp, Weather: WeatherProfile{Mild: 1}}
}

func TestSelector_OnePieceOverride(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)
	items := []ScoredItem{
		scored(0, "white tee", CategoryTop, 0.6),
		scored(1, "blue jeans", CategoryBottom, 0.6),
		scored(2, "floral maxi dress", CategoryOnePiece, 0.75),
	}

	out := sel.Select(items, mildConditions(22))
	require.True(t, out.Has(CategoryOnePiece))
	require.False(t, out.Has(CategoryTop))
	require.False(t, out.Has(CategoryBottom))

	footwear, ok := out.Get(CategoryFootwear)
	require.True(t, ok)
	require.True(t, footwear.Placeholder)
	require.Equal(t, "No suitable footwear found", footwear.Description)
	require.Nil(t, footwear.Item)

	dress, _ := out.Get(CategoryOnePiece)
	require.Equal(t, 2, dress.Item.Index)
}

func TestSelector_OnePieceAtThresholdIsIgnored(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)
	items := []ScoredItem{
		scored(0, "white tee", CategoryTop, 0.5),
		scored(1, "blue jeans", CategoryBottom, 0.5),
		scored(2, "floral maxi dress", CategoryOnePiece, 0.7),
	}

	out := sel.Select(items, mildConditions(22))
	require.False(t, out.Has(CategoryOnePiece))
	require.Equal(t, map[Category]string{
		CategoryTop:      "white tee",
		CategoryBottom:   "blue jeans",
		CategoryFootwear: "No suitable footwear found",
	}, out.Descriptions())
}

func TestSelector_PlaceholdersForMissingRequired(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)
	out := sel.Select([]ScoredItem{scored(0, "silver watch", CategoryAccessory, 0.9)}, mildConditions(22))

	require.Len(t, out.Slots, 4)
	for _, category := range requiredCategories {
		slot, ok := out.Get(category)
		require.True(t, ok)
		require.True(t, slot.Placeholder)
	}
	accessory, ok := out.Get(CategoryAccessory)
	require.True(t, ok)
	require.False(t, accessory.Placeholder)
}

func TestSelector_TiesKeepInputOrder(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)
	items := []ScoredItem{
		scored(0, "grey sweater", CategoryTop, 0.8),
		scored(1, "white shirt", CategoryTop, 0.8),
		scored(2, "black tee", CategoryTop, 0.9),
		scored(3, "blue jeans", CategoryBottom, 0.4),
		scored(4, "khaki chinos", CategoryBottom, 0.4),
	}
	out := sel.Select(items, mildConditions(22))
	require.Equal(t, "black tee", out.Descriptions()[CategoryTop])
	require.Equal(t, "blue jeans", out.Descriptions()[CategoryBottom])

	items[2].OverallScore = 0.1
	out = sel.Select(items, mildConditions(22))
	require.Equal(t, "grey sweater", out.Descriptions()[CategoryTop])
}

func TestSelector_OptionalThresholds(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)

	out := sel.Select([]ScoredItem{scored(0, "silver watch", CategoryAccessory, 0.6)}, mildConditions(22))
	require.False(t, out.Has(CategoryAccessory))

	out = sel.Select([]ScoredItem{scored(0, "silver watch", CategoryAccessory, 0.61)}, mildConditions(22))
	require.True(t, out.Has(CategoryAccessory))
}

func TestSelector_OuterwearNeedsWeather(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)
	jacket := []ScoredItem{scored(0, "rain jacket", CategoryOuterwear, 0.8)}

	cases := []struct {
		name string
		cond Conditions
		want bool
	}{
		{"warm and dry", Conditions{TemperatureC: 25, Weather: WeatherProfile{Hot: 1}}, false},
		{"at the cutoff", Conditions{TemperatureC: 20, Weather: WeatherProfile{Mild: 1}}, false},
		{"cool", Conditions{TemperatureC: 18, Weather: WeatherProfile{Mild: 1}}, true},
		{"warm and wet", Conditions{TemperatureC: 25, Weather: WeatherProfile{Wet: 0.5, Mild: 0.5}}, true},
		{"warm and windy", Conditions{TemperatureC: 25, Weather: WeatherProfile{Windy: 0.5, Hot: 0.5}}, true},
	}
	for _, tc := range cases {
		out := sel.Select(jacket, tc.cond)
		require.Equal(t, tc.want, out.Has(CategoryOuterwear), tc.name)
	}
}

func TestSelector_SlotsFollowCategoryOrder(t *testing.T) {
	sel := NewSelector(DefaultConfig().Selection)
	items := []ScoredItem{
		scored(0, "silver watch", CategoryAccessory, 0.9),
		scored(1, "wool coat", CategoryOuterwear, 0.9),
		scored(2, "boots", CategoryFootwear, 0.9),
		scored(3, "jeans", CategoryBottom, 0.9),
		scored(4, "sweater", CategoryTop, 0.9),
	}
	out := sel.Select(items, mildConditions(5))

	var got []Category
	for _, slot := range out.Slots {
		got = append(got, slot.Category)
	}
	require.Equal(t, []Category{CategoryTop, CategoryBottom, CategoryOuterwear, CategoryFootwear, CategoryAccessory}, got)
}
