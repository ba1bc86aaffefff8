package outfit

import (
	"sort"
	"strings"
	"unicode"
)

// document is a lower-cased description with a space padded token form so
// whole-word and multi-word terms can be matched with plain substring checks.
type document struct {
	raw    string
	padded string
}

func newDocument(text string) document {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower) + 2)
	b.WriteByte(' ')
	gap := true
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			gap = false
			continue
		}
		if !gap {
			b.WriteByte(' ')
			gap = true
		}
	}
	if !gap {
		b.WriteByte(' ')
	}
	return document{raw: lower, padded: b.String()}
}

// has matches a whole term, tolerating a trailing "s" or "es".
func (d document) has(term string) bool {
	for _, suffix := range [...]string{"", "s", "es"} {
		if strings.Contains(d.padded, " "+term+suffix+" ") {
			return true
		}
	}
	return false
}

// lastEnd returns the offset just past the last whole-term match, or -1.
func (d document) lastEnd(term string) int {
	end := -1
	for _, suffix := range [...]string{"", "s", "es"} {
		needle := " " + term + suffix + " "
		if i := strings.LastIndex(d.padded, needle); i >= 0 && i+len(needle)-1 > end {
			end = i + len(needle) - 1
		}
	}
	return end
}

// headPhrase drops trailing qualifiers such as "with silver buckles" so the
// garment noun is read from the leading phrase.
func (d document) headPhrase() document {
	cut := len(d.padded)
	for _, joiner := range phraseJoiners {
		if i := strings.Index(d.padded, " "+joiner+" "); i >= 0 && i < cut {
			cut = i
		}
	}
	if cut == len(d.padded) {
		return d
	}
	return document{raw: d.raw, padded: d.padded[:cut+1]}
}

func (d document) hasAny(terms []string) bool {
	for _, term := range terms {
		if d.has(term) {
			return true
		}
	}
	return false
}

// matches returns the terms found, in table order.
func (d document) matches(terms []string) []string {
	var out []string
	for _, term := range terms {
		if d.has(term) {
			out = append(out, term)
		}
	}
	return out
}

// containsRaw is a plain substring check against the lower-cased text.
func (d document) containsRaw(sub string) bool {
	return strings.Contains(d.raw, sub)
}

func sortedUnique(values []string) []string {
	if len(values) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
