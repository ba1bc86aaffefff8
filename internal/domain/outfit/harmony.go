package outfit

import (
	"math"
	"slices"
)

const unknownHarmony = 0.5

// ColorHarmony rates how well two garments' colors pair up, in [0,1].
func ColorHarmony(a, b FeatureVector) float64 {
	if len(a.Colors) == 0 || len(b.Colors) == 0 {
		return unknownHarmony
	}
	score := 0.0
	if sharesColor(a.Colors, b.Colors) {
		score += 0.8
	}
	if complementary(a.Colors, b.Colors) {
		score += 0.9
	}
	if anyOf(a.Colors, neutralColors) || anyOf(b.Colors, neutralColors) {
		score += 0.7
	}
	if sharesFamily(a.Colors, b.Colors) {
		score += 0.8
	}
	return math.Min(score, 1.0)
}

// StyleAffinity is the overlap of two style profiles, in [0,1].
func StyleAffinity(a, b FeatureVector) float64 {
	overlap := 0.0
	for _, style := range Styles {
		overlap += math.Min(a.StyleProfile[style], b.StyleProfile[style])
	}
	return clamp(overlap, 0, 1)
}

func sharesColor(a, b []string) bool {
	for _, c := range a {
		if slices.Contains(b, c) {
			return true
		}
	}
	return false
}

func complementary(a, b []string) bool {
	for _, pair := range complementaryColors {
		if (slices.Contains(a, pair[0]) && slices.Contains(b, pair[1])) || (slices.Contains(a, pair[1]) && slices.Contains(b, pair[0])) {
			return true
		}
	}
	return false
}

func sharesFamily(a, b []string) bool {
	for _, family := range colorFamilies {
		for _, ca := range a {
			if !slices.Contains(family, ca) {
				continue
			}
			for _, cb := range b {
				if cb != ca && slices.Contains(family, cb) {
					return true
				}
			}
		}
	}
	return false
}

func coordinate(sel Selection) Coordination {
	var picked []Slot
	for _, slot := range sel.Slots {
		if slot.Item != nil {
			picked = append(picked, slot)
		}
	}
	out := Coordination{Pairs: []PairScore{}}
	for i := 0; i < len(picked); i++ {
		for j := i + 1; j < len(picked); j++ {
			a, b := picked[i].Item.Features, picked[j].Item.Features
			out.Pairs = append(out.Pairs, PairScore{
				A:             picked[i].Category,
				B:             picked[j].Category,
				ColorHarmony:  ColorHarmony(a, b),
				StyleAffinity: StyleAffinity(a, b),
			})
		}
	}
	if len(out.Pairs) == 0 {
		return out
	}
	for _, pair := range out.Pairs {
		out.ColorHarmony += pair.ColorHarmony
		out.StyleAffinity += pair.StyleAffinity
	}
	n := float64(len(out.Pairs))
	out.ColorHarmony /= n
	out.StyleAffinity /= n
	return out
}
