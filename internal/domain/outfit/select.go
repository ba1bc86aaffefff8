package outfit

import (
	"fmt"
	"sort"
)

var (
	requiredCategories = []Category{CategoryTop, CategoryBottom, CategoryFootwear}
	optionalCategories = []Category{CategoryOuterwear, CategoryAccessory}
)

// Selector picks one garment per category.
type Selector struct {
	cfg SelectionConfig
}

// NewSelector builds a selector with the given thresholds.
func NewSelector(cfg SelectionConfig) Selector {
	return Selector{cfg: cfg}
}

// Select is deterministic: equal scores keep their input order.
func (s Selector) Select(items []ScoredItem, cond Conditions) Selection {
	ranked := make([]ScoredItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	byCategory := make(map[Category][]ScoredItem, len(CategoryOrder))
	for _, item := range ranked {
		byCategory[item.Features.Category] = append(byCategory[item.Features.Category], item)
	}

	chosen := make(map[Category]Slot, len(CategoryOrder))
	required := requiredCategories
	if best, ok := top(byCategory, CategoryOnePiece); ok && best.OverallScore > s.cfg.OnePieceThreshold {
		chosen[CategoryOnePiece] = pick(CategoryOnePiece, best)
		required = []Category{CategoryFootwear}
	}

	for _, category := range required {
		if best, ok := top(byCategory, category); ok {
			chosen[category] = pick(category, best)
			continue
		}
		chosen[category] = Slot{
			Category:    category,
			Description: fmt.Sprintf("No suitable %s found", category),
			Placeholder: true,
		}
	}

	for _, category := range optionalCategories {
		best, ok := top(byCategory, category)
		if !ok || best.OverallScore <= s.cfg.OptionalThreshold {
			continue
		}
		if category == CategoryOuterwear && !s.outerwearWarranted(cond) {
			continue
		}
		chosen[category] = pick(category, best)
	}

	sel := Selection{Slots: make([]Slot, 0, len(chosen))}
	for _, category := range CategoryOrder {
		if slot, ok := chosen[category]; ok {
			sel.Slots = append(sel.Slots, slot)
		}
	}
	return sel
}

func (s Selector) outerwearWarranted(cond Conditions) bool {
	return cond.TemperatureC < s.cfg.OuterwearBelowC ||
		cond.Weather.Wet > s.cfg.OuterwearWetOver ||
		cond.Weather.Windy > s.cfg.OuterwearWindyOver
}

func top(byCategory map[Category][]ScoredItem, category Category) (ScoredItem, bool) {
	items := byCategory[category]
	if len(items) == 0 {
		return ScoredItem{}, false
	}
	return items[0], true
}

func pick(category Category, item ScoredItem) Slot {
	chosen := item
	return Slot{
		Category:    category,
		Description: item.Features.Description,
		Item:        &chosen,
	}
}
