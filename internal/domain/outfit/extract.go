package outfit

import (
	"math"
	"slices"
)

const (
	baseFormality   = 5.0
	baseVersatility = 5.0
	seasonFloor     = 0.05
)

// categoryStrategy is one step of the category cascade. Strategies run in
// order and the first that resolves wins.
type categoryStrategy struct {
	name    string
	resolve func(doc document, typeTerms []string) (Category, bool)
}

var categoryCascade = []categoryStrategy{
	{name: "cardigan_layering", resolve: resolveCardigan},
	{name: "type_vocabulary", resolve: resolveTypeVocabulary},
	{name: "keyword_scan", resolve: resolveKeywordScan},
	{name: "default", resolve: func(document, []string) (Category, bool) { return CategoryAccessory, true }},
}

// Extract reads a free-text garment description. It never fails: anything it
// cannot recognize falls back to neutral defaults.
func Extract(description string) FeatureVector {
	doc := newDocument(description)

	colors := doc.matches(colorTerms)
	for i, c := range colors {
		if alias, ok := colorAliases[c]; ok {
			colors[i] = alias
		}
	}
	materials := doc.matches(materialTerms)
	var typeTerms []string
	for _, group := range typeVocabulary {
		typeTerms = append(typeTerms, doc.matches(group.terms)...)
	}

	fv := FeatureVector{
		Description: description,
		Colors:      sortedUnique(colors),
		Materials:   sortedUnique(materials),
		TypeTerms:   sortedUnique(typeTerms),
	}
	fv.Category, fv.CategorySource = resolveCategory(doc, fv.TypeTerms)
	fv.Formality = formalityOf(doc)
	fv.Seasonality = seasonalityOf(doc)
	fv.Pattern = patternOf(doc)
	fv.Fit = fitOf(doc)
	fv.StyleProfile = styleProfileOf(doc)
	fv.Versatility = versatilityOf(doc, fv)
	return fv
}

func resolveCategory(doc document, typeTerms []string) (Category, string) {
	for _, strategy := range categoryCascade {
		if category, ok := strategy.resolve(doc, typeTerms); ok {
			return category, strategy.name
		}
	}
	return CategoryAccessory, "default"
}

func resolveCardigan(doc document, typeTerms []string) (Category, bool) {
	if !slices.Contains(typeTerms, "cardigan") {
		return "", false
	}
	if doc.hasAny(layeringTerms) {
		return CategoryOuterwear, true
	}
	return CategoryTop, true
}

// resolveTypeVocabulary picks the head noun: the type term ending last in the
// leading phrase, the longer term winning a tie ("dress shoe" over "shoe").
func resolveTypeVocabulary(doc document, typeTerms []string) (Category, bool) {
	if len(typeTerms) == 0 {
		return "", false
	}
	if category, ok := headNoun(doc.headPhrase()); ok {
		return category, true
	}
	return headNoun(doc)
}

func headNoun(doc document) (Category, bool) {
	var (
		best     Category
		bestTerm string
		bestEnd  = -1
	)
	for _, group := range typeVocabulary {
		for _, term := range group.terms {
			end := doc.lastEnd(term)
			if end < 0 {
				continue
			}
			if end > bestEnd || (end == bestEnd && len(term) > len(bestTerm)) {
				best, bestTerm, bestEnd = group.category, term, end
			}
		}
	}
	return best, bestEnd >= 0
}

func resolveKeywordScan(doc document, _ []string) (Category, bool) {
	for _, group := range keywordFallback {
		for _, term := range group.terms {
			if doc.containsRaw(term) {
				return group.category, true
			}
		}
	}
	return "", false
}

func formalityOf(doc document) float64 {
	score := baseFormality
	for _, table := range [][]weightedTerm{materialFormality, typeFormality, adjectiveFormality, structureFormality} {
		for _, wt := range table {
			if doc.has(wt.term) {
				score += wt.weight
			}
		}
	}
	return clamp(score, 1, 10)
}

func seasonalityOf(doc document) Seasonality {
	raw := Seasonality{Spring: 0.25, Summer: 0.25, Fall: 0.25, Winter: 0.25}
	for _, table := range [][]seasonNudge{materialSeasons, typeSeasons, descriptorSeasons, seasonWords, colorSeasons} {
		for _, nudge := range table {
			if !doc.hasAny(nudge.terms) {
				continue
			}
			raw.Spring += nudge.deltas.Spring
			raw.Summer += nudge.deltas.Summer
			raw.Fall += nudge.deltas.Fall
			raw.Winter += nudge.deltas.Winter
		}
	}
	return normalizeSeasonality(raw)
}

// normalizeSeasonality clamps negatives and rescales so every season keeps at
// least seasonFloor while the total stays exactly one.
func normalizeSeasonality(raw Seasonality) Seasonality {
	raw.Spring = math.Max(raw.Spring, 0)
	raw.Summer = math.Max(raw.Summer, 0)
	raw.Fall = math.Max(raw.Fall, 0)
	raw.Winter = math.Max(raw.Winter, 0)
	total := raw.Sum()
	if total <= 0 {
		return Seasonality{Spring: 0.25, Summer: 0.25, Fall: 0.25, Winter: 0.25}
	}
	spread := 1 - seasonFloor*float64(len(Seasons))
	return Seasonality{
		Spring: seasonFloor + spread*raw.Spring/total,
		Summer: seasonFloor + spread*raw.Summer/total,
		Fall:   seasonFloor + spread*raw.Fall/total,
		Winter: seasonFloor + spread*raw.Winter/total,
	}
}

func patternOf(doc document) Pattern {
	for _, entry := range patternVocabulary {
		if doc.hasAny(entry.terms) {
			return entry.pattern
		}
	}
	return PatternSolid
}

func fitOf(doc document) Fit {
	for _, entry := range fitVocabulary {
		if doc.hasAny(entry.terms) {
			return entry.fit
		}
	}
	return FitRegular
}

func styleProfileOf(doc document) map[Style]float64 {
	counts := make(map[Style]float64, len(Styles))
	total := 0.0
	for _, entry := range styleVocabulary {
		n := float64(len(doc.matches(entry.terms)))
		counts[entry.style] = n
		total += n
	}
	profile := make(map[Style]float64, len(Styles))
	for _, style := range Styles {
		if total == 0 {
			profile[style] = 1 / float64(len(Styles))
			continue
		}
		profile[style] = counts[style] / total
	}
	return profile
}

func versatilityOf(doc document, fv FeatureVector) float64 {
	score := baseVersatility
	if anyOf(fv.Colors, neutralColors) {
		score += 2.0
	}
	if anyOf(fv.Colors, vibrantColors) {
		score -= 1.5
	}
	switch {
	case fv.Pattern == PatternSolid:
		score += 1.5
	case !slices.Contains(subtlePatterns, fv.Pattern):
		score -= 1.0
	}
	if doc.hasAny(basicTypes) {
		score += 1.0
	}
	if fv.Formality >= 4 && fv.Formality <= 7 {
		score += 1.5
	} else {
		score -= 1.0
	}
	if anyOf(fv.Materials, durableMaterials) {
		score += 1.0
	}
	if anyOf(fv.Materials, delicateMaterials) {
		score -= 1.0
	}
	return clamp(score, 0, 10)
}

func anyOf(values, set []string) bool {
	for _, v := range values {
		if slices.Contains(set, v) {
			return true
		}
	}
	return false
}

