package outfit

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_BusinessWardrobe(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	wardrobe := []string{
		"black cotton t-shirt",
		"navy wool dress pants",
		"brown leather loafers",
		"red silk tie",
	}

	got, err := engine.SuggestOutfit(wardrobe, "business meeting", "clear sky", 22)
	require.NoError(t, err)
	require.Len(t, got.Items, len(wardrobe))
	require.Equal(t, 7.0, got.Occasion.Formality)
	require.InDelta(t, 0.7, got.Weather.Hot, 1e-9)

	require.Equal(t, map[Category]string{
		CategoryTop:       "black cotton t-shirt",
		CategoryBottom:    "navy wool dress pants",
		CategoryFootwear:  "brown leather loafers",
		CategoryAccessory: "red silk tie",
	}, got.Selection.Descriptions())

	for i, item := range got.Items {
		require.Equal(t, i, item.Index)
		require.Equal(t, wardrobe[i], item.Features.Description)
	}
	for _, slot := range got.Selection.Slots {
		if slot.Category == CategoryAccessory || slot.Category == CategoryOuterwear {
			require.Greater(t, slot.Item.OverallScore, 0.6)
		}
	}

	require.Len(t, got.Coordination.Pairs, 6)
	require.GreaterOrEqual(t, got.Coordination.ColorHarmony, 0.0)
	require.LessOrEqual(t, got.Coordination.ColorHarmony, 1.0)

	require.Equal(t,
		"Top: black cotton t-shirt\nBottom: navy wool dress pants\nFootwear: brown leather loafers\nAccessory: red silk tie",
		FormatOutfit(got.Selection))
}

func TestEngine_ColdWeatherCoat(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	got, err := engine.SuggestOutfit([]string{"heavy wool winter coat"}, "weekend errands", "", 5)
	require.NoError(t, err)
	require.True(t, got.Selection.Has(CategoryOuterwear))
	for _, category := range []Category{CategoryTop, CategoryBottom, CategoryFootwear} {
		slot, ok := got.Selection.Get(category)
		require.True(t, ok)
		require.True(t, slot.Placeholder)
	}
	require.Empty(t, got.Coordination.Pairs)
	require.Equal(t,
		"Top: No suitable top found\nBottom: No suitable bottom found\nOuterwear: heavy wool winter coat\nFootwear: No suitable footwear found",
		FormatOutfit(got.Selection))

	warm, err := engine.SuggestOutfit([]string{"heavy wool winter coat"}, "weekend errands", "clear sky", 25)
	require.NoError(t, err)
	require.False(t, warm.Selection.Has(CategoryOuterwear))
}

func TestEngine_OnePieceReplacesSeparates(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	got, err := engine.SuggestOutfit(
		[]string{"black cotton t-shirt", "blue denim jeans", "floral maxi dress"},
		"date night", "sunny", 24)
	require.NoError(t, err)
	require.True(t, got.Selection.Has(CategoryOnePiece))
	require.False(t, got.Selection.Has(CategoryTop))
	require.False(t, got.Selection.Has(CategoryBottom))
	require.InDelta(t, 0.728, got.Items[2].OverallScore, 1e-3)
}

func TestEngine_CompoundAndSingularGarments(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	got, err := engine.SuggestOutfit(
		[]string{"grey sweater dress", "black ankle boot", "white leather sneaker"},
		"weekend errands", "clear sky", 18)
	require.NoError(t, err)
	require.Equal(t, CategoryOnePiece, got.Items[0].Features.Category)
	require.Equal(t, CategoryFootwear, got.Items[1].Features.Category)
	require.Equal(t, CategoryFootwear, got.Items[2].Features.Category)

	slot, ok := got.Selection.Get(CategoryFootwear)
	require.True(t, ok)
	require.False(t, slot.Placeholder)
	require.False(t, got.Selection.Has(CategoryAccessory))
}

func TestEngine_Errors(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	_, err := engine.SuggestOutfit(nil, "work", "", 20)
	require.ErrorIs(t, err, ErrEmptyWardrobe)

	_, err = engine.SuggestOutfit([]string{"tee"}, "work", "", math.NaN())
	require.ErrorIs(t, err, ErrInvalidTemperature)

	_, err = engine.SuggestOutfit([]string{"tee"}, "work", "", math.Inf(-1))
	require.ErrorIs(t, err, ErrInvalidTemperature)

	_, err = engine.SuggestOutfit([]string{"", "  "}, "", "", 20)
	require.NoError(t, err)
}

func TestEngine_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	wardrobe := []string{
		"grey wool sweater", "white cotton shirt", "blue denim jeans", "khaki chinos",
		"white leather sneakers", "black leather boots", "navy rain jacket", "silver watch",
	}

	first, err := engine.SuggestOutfit(wardrobe, "brunch with friends", "light rain", 14)
	require.NoError(t, err)
	second, err := engine.SuggestOutfit(wardrobe, "brunch with friends", "light rain", 14)
	require.NoError(t, err)

	require.Equal(t, FormatOutfit(first.Selection), FormatOutfit(second.Selection))
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	require.JSONEq(t, string(a), string(b))
}
