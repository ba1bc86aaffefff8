package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileOccasion_Formality(t *testing.T) {
	cases := []struct {
		occasion string
		want     float64
	}{
		{"", 5},
		{"weekend errands", 5},
		{"Business meeting", 7},
		{"business casual friday", 5},
		{"black tie gala", 10},
		{"casual", 1},
		{"job interview", 8},
		{"date night", 6},
		{"wedding party", 5},
		{"gym", 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ProfileOccasion(tc.occasion).Formality, tc.occasion)
	}
}

func TestProfileOccasion_Axes(t *testing.T) {
	require.Equal(t, OccasionProfile{
		Formality:    5,
		Social:       0.5,
		Professional: 0.5,
		Active:       0.3,
		Outdoor:      0.5,
		Evening:      0.5,
	}, ProfileOccasion(""))

	gala := ProfileOccasion("Evening gala")
	require.Equal(t, 9.0, gala.Formality)
	require.Equal(t, 0.8, gala.Social)
	require.Equal(t, 0.8, gala.Evening)
	require.Equal(t, 0.2, gala.Outdoor)
	require.Equal(t, 0.2, gala.Active)

	gym := ProfileOccasion("gym workout")
	require.Equal(t, 0.8, gym.Active)
	require.Equal(t, 0.2, gym.Social)
	require.Equal(t, 0.2, gym.Professional)

	business := ProfileOccasion("business")
	require.Equal(t, 0.8, business.Professional)
	require.Equal(t, 0.5, business.Social)
}
