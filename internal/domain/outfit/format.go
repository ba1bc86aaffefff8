package outfit

import "strings"

var categoryLabels = map[Category]string{
	CategoryOnePiece:  "One-piece",
	CategoryTop:       "Top",
	CategoryBottom:    "Bottom",
	CategoryOuterwear: "Outerwear",
	CategoryFootwear:  "Footwear",
	CategoryAccessory: "Accessory",
}

// Label returns the human label of a category.
func Label(category Category) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return string(category)
}

// FormatOutfit renders one "Label: value" line per present category in
// CategoryOrder. Values are collapsed onto a single line.
func FormatOutfit(sel Selection) string {
	lines := make([]string, 0, len(sel.Slots))
	for _, category := range CategoryOrder {
		slot, ok := sel.Get(category)
		if !ok {
			continue
		}
		lines = append(lines, Label(category)+": "+strings.Join(strings.Fields(slot.Description), " "))
	}
	return strings.Join(lines, "\n")
}
