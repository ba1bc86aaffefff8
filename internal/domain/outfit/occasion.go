package outfit

const defaultOccasionFormality = 5.0

// occasionFormality is checked top to bottom and the first entry present in
// the occasion wins, so compound phrases sit ahead of the words they contain.
var occasionFormality = []weightedTerm{
	{"black tie", 10},
	{"business casual", 5},
	{"smart casual", 5},
	{"casual", 1},
	{"everyday", 2},
	{"work", 5},
	{"office", 6},
	{"business", 7},
	{"date", 6},
	{"party", 5},
	{"formal", 8},
	{"wedding", 9},
	{"interview", 8},
	{"gala", 9},
	{"funeral", 8},
	{"cocktail", 7},
	{"dinner", 6},
	{"conference", 6},
	{"brunch", 4},
	{"concert", 4},
	{"school", 3},
	{"beach", 2},
	{"hiking", 2},
	{"gym", 1},
}

type occasionAxis struct {
	positive []string
	negative []string
	fallback float64
	set      func(p *OccasionProfile, v float64)
}

var occasionAxes = []occasionAxis{
	{
		positive: []string{"party", "date", "wedding", "dinner", "brunch", "friends", "concert", "celebration", "gala", "cocktail", "reunion"},
		negative: []string{"interview", "work", "office", "meeting", "gym"},
		fallback: 0.5,
		set:      func(p *OccasionProfile, v float64) { p.Social = v },
	},
	{
		positive: []string{"work", "office", "business", "interview", "meeting", "conference", "presentation"},
		negative: []string{"party", "beach", "gym", "date", "vacation", "hiking"},
		fallback: 0.5,
		set:      func(p *OccasionProfile, v float64) { p.Professional = v },
	},
	{
		positive: []string{"gym", "workout", "hiking", "run", "running", "sport", "yoga", "bike", "cycling"},
		negative: []string{"formal", "wedding", "interview", "dinner", "gala", "office"},
		fallback: 0.3,
		set:      func(p *OccasionProfile, v float64) { p.Active = v },
	},
	{
		positive: []string{"hiking", "beach", "picnic", "park", "outdoor", "garden", "festival", "camping"},
		negative: []string{"office", "indoor", "gala", "dinner", "cinema"},
		fallback: 0.5,
		set:      func(p *OccasionProfile, v float64) { p.Outdoor = v },
	},
	{
		positive: []string{"evening", "night", "dinner", "gala", "cocktail", "party", "concert"},
		negative: []string{"morning", "brunch", "breakfast", "lunch", "daytime"},
		fallback: 0.5,
		set:      func(p *OccasionProfile, v float64) { p.Evening = v },
	},
}

// ProfileOccasion maps occasion text to a formality target and event axes.
func ProfileOccasion(occasion string) OccasionProfile {
	doc := newDocument(occasion)
	profile := OccasionProfile{Formality: defaultOccasionFormality}
	for _, entry := range occasionFormality {
		if doc.has(entry.term) {
			profile.Formality = entry.weight
			break
		}
	}
	for _, axis := range occasionAxes {
		value := axis.fallback
		switch {
		case doc.hasAny(axis.positive):
			value = 0.8
		case doc.hasAny(axis.negative):
			value = 0.2
		}
		axis.set(&profile, value)
	}
	return profile
}
