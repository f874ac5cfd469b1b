package extract

import (
	"sort"
)

var defaultExtractor = New()

// FindTranslations returns the translation keys embedded in content using all default rules.
// Keys are returned in the order they appear. A key repeated in the content is returned once per occurrence.
func FindTranslations(content string) []string {
	return defaultExtractor.Find(content)
}

// Extractor runs a set of rules over file contents.
type Extractor struct {
	rules []Rule
}

// New creates an Extractor with the given rules. Without rules DefaultRules is used.
func New(rules ...Rule) *Extractor {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	return &Extractor{rules: rules}
}

// Rules returns the names of the rules used by the extractor.
func (e *Extractor) Rules() []string {
	names := make([]string, 0, len(e.rules))
	for _, r := range e.rules {
		names = append(names, r.Name)
	}

	return names
}

// Find returns the keys found by all rules in content.
func (e *Extractor) Find(content string) []string {
	matches := e.Matches(content)

	keys := make([]string, 0, len(matches))
	for _, m := range matches {
		keys = append(keys, m.Key)
	}

	return keys
}

// Matches returns the matches of all rules ordered by offset.
// A literal recognized by more than one rule is reported once, by the first rule in the extractor.
func (e *Extractor) Matches(content string) []Match {
	var all []Match
	seen := make(map[int]bool)

	for _, r := range e.rules {
		for _, m := range r.Find(content) {
			if seen[m.Offset] {
				continue
			}

			seen[m.Offset] = true
			all = append(all, m)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Offset < all[j].Offset
	})

	return all
}

// removeDuplicates keeps the first occurrence of every value.
func removeDuplicates(input []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(input))

	for _, value := range input {
		if !seen[value] {
			result = append(result, value)
			seen[value] = true
		}
	}

	return result
}
