package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtract_UnrecognizedFallsBackToDefaults(t *testing.T) {
	for _, description := range []string{"", "   ", "mysterious object", "zzz 123"} {
		fv := Extract(description)
		require.Equal(t, CategoryAccessory, fv.Category, description)
		require.Equal(t, "default", fv.CategorySource, description)
		require.Equal(t, 5.0, fv.Formality, description)
		require.Equal(t, PatternSolid, fv.Pattern, description)
		require.Equal(t, FitRegular, fv.Fit, description)
		require.Empty(t, fv.Colors, description)
		require.Empty(t, fv.Materials, description)
		for _, season := range Seasons {
			require.InDelta(t, 0.25, fv.Seasonality.Of(season), 1e-9, description)
		}
		for _, style := range Styles {
			require.InDelta(t, 1.0/6, fv.StyleProfile[style], 1e-9, description)
		}
	}
}

func TestExtract_CategoryCascade(t *testing.T) {
	cases := []struct {
		description string
		category    Category
		source      string
	}{
		{"black cotton t-shirt", CategoryTop, "type_vocabulary"},
		{"navy wool dress pants", CategoryBottom, "type_vocabulary"},
		{"brown leather loafers", CategoryFootwear, "type_vocabulary"},
		{"black dress shoes", CategoryFootwear, "type_vocabulary"},
		{"red silk tie", CategoryAccessory, "type_vocabulary"},
		{"floral maxi dress", CategoryOnePiece, "type_vocabulary"},
		{"heavy wool winter coat", CategoryOuterwear, "type_vocabulary"},
		{"grey cardigan", CategoryTop, "cardigan_layering"},
		{"chunky cardigan for layering", CategoryOuterwear, "cardigan_layering"},
		{"denim overshirt", CategoryTop, "keyword_scan"},
		{"waterproof snowboots", CategoryFootwear, "keyword_scan"},
		{"black ankle boot", CategoryFootwear, "type_vocabulary"},
		{"white leather sneaker", CategoryFootwear, "type_vocabulary"},
		{"tan suede loafer", CategoryFootwear, "type_vocabulary"},
		{"black leather dress shoe", CategoryFootwear, "type_vocabulary"},
		{"grey sweater dress", CategoryOnePiece, "type_vocabulary"},
		{"white cotton shirt dress", CategoryOnePiece, "type_vocabulary"},
		{"navy wool suit", CategoryOnePiece, "type_vocabulary"},
		{"black tuxedo", CategoryOnePiece, "type_vocabulary"},
		{"charcoal suit jacket", CategoryOuterwear, "type_vocabulary"},
		{"white dress shirt", CategoryTop, "type_vocabulary"},
		{"leather boots with silver buckles", CategoryFootwear, "type_vocabulary"},
		{"black and white striped shirt", CategoryTop, "type_vocabulary"},
	}
	for _, tc := range cases {
		fv := Extract(tc.description)
		require.Equal(t, tc.category, fv.Category, tc.description)
		require.Equal(t, tc.source, fv.CategorySource, tc.description)
	}
}

func TestExtract_Features(t *testing.T) {
	fv := Extract("Black Cotton T-Shirt")
	require.Equal(t, "Black Cotton T-Shirt", fv.Description)
	require.Equal(t, []string{"black"}, fv.Colors)
	require.Equal(t, []string{"cotton"}, fv.Materials)
	require.Equal(t, []string{"t-shirt"}, fv.TypeTerms)
	require.InDelta(t, 2.5, fv.Formality, 1e-9)
	require.InDelta(t, 8.5, fv.Versatility, 1e-9)

	require.Equal(t, []string{"grey"}, Extract("gray wool sweater").Colors)
}

func TestExtract_Formality(t *testing.T) {
	cases := []struct {
		description string
		want        float64
	}{
		{"black cotton t-shirt", 2.5},
		{"navy wool dress pants", 7.5},
		{"brown leather loafers", 7.5},
		{"red silk tie", 7},
		{"heavy wool winter coat", 6},
		{"floral maxi dress", 5},
		{"tailored thing", 5.5},
		{"baggy thing", 4.5},
		{"formal black tie tuxedo suit", 10},
		{"navy wool suit", 8},
		{"casual relaxed ripped distressed denim sweatpants", 1},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, Extract(tc.description).Formality, 1e-9, tc.description)
	}
}

func TestExtract_PatternAndFit(t *testing.T) {
	require.Equal(t, PatternStriped, Extract("navy striped shirt").Pattern)
	require.Equal(t, PatternFloral, Extract("floral print blouse").Pattern)
	require.Equal(t, PatternAnimal, Extract("leopard print scarf").Pattern)
	require.Equal(t, PatternSolid, Extract("plain white tee").Pattern)

	require.Equal(t, FitSlim, Extract("slim fit jeans").Fit)
	require.Equal(t, FitOversized, Extract("baggy jeans").Fit)
	require.Equal(t, FitCropped, Extract("cropped denim jacket").Fit)
}

func TestExtract_SeasonalityNormalized(t *testing.T) {
	descriptions := []string{
		"", "heavy wool winter coat", "linen summer shorts", "floral maxi dress",
		"thick insulated padded puffer parka for winter", "lightweight breathable linen tank",
		"brown suede boots", "pastel spring cardigan",
	}
	for _, description := range descriptions {
		s := Extract(description).Seasonality
		require.InDelta(t, 1.0, s.Sum(), 1e-9, description)
		for _, season := range Seasons {
			require.GreaterOrEqual(t, s.Of(season), seasonFloor-1e-9, description)
		}
	}

	coat := Extract("heavy wool winter coat").Seasonality
	require.InDelta(t, seasonFloor, coat.Summer, 1e-9)
	require.Greater(t, coat.Winter, coat.Fall)
	require.Greater(t, coat.Winter, coat.Spring)

	shorts := Extract("linen summer shorts").Seasonality
	require.Greater(t, shorts.Summer, shorts.Winter)
}

func TestExtract_StyleProfile(t *testing.T) {
	profile := Extract("floral maxi dress").StyleProfile
	require.InDelta(t, 1.0, profile[StyleBohemian], 1e-9)

	sum := 0.0
	for _, style := range Styles {
		sum += Extract("tailored blazer with sneakers").StyleProfile[style]
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestExtract_Deterministic(t *testing.T) {
	a := Extract("navy wool slim fit dress pants for fall")
	b := Extract("navy wool slim fit dress pants for fall")
	require.Equal(t, a, b)
}
