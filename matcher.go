package translate

import (
	"fmt"
	"regexp"
)

// defaultMatcher matches catalogs named after their language: en.json, en-US.json, en_US.yaml or nl.yml.
var defaultMatcher = NewRegexMatcher(regexp.MustCompile(`^([a-z]{2}(?:[-_][A-Z]{2})?)\.(?:json|ya?ml)$`))

// FileMatcher decides which files of a directory are catalogs and which language they hold.
type FileMatcher interface {
	IsMatch(name string) bool
	LanguageID(name string) (LanguageID, error)
}

// RegexMatcher selects catalog files by name. The first capture group of the pattern holds the language.
type RegexMatcher struct {
	pattern *regexp.Regexp
}

// CompileMatcher compiles pattern into a RegexMatcher. The pattern needs a capture group for the language,
// e.g. `^locale-([a-z]{2})\.json$`.
func CompileMatcher(pattern string) (*RegexMatcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog pattern: %w", err)
	}

	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("catalog pattern %q is missing a capture group for the language", pattern)
	}

	return NewRegexMatcher(re), nil
}

func NewRegexMatcher(pattern *regexp.Regexp) *RegexMatcher {
	return &RegexMatcher{pattern: pattern}
}

// IsMatch reports whether the file called name is a catalog.
func (m *RegexMatcher) IsMatch(name string) bool {
	return m.pattern.MatchString(name)
}

// LanguageID returns the language of the catalog file called name.
func (m *RegexMatcher) LanguageID(name string) (LanguageID, error) {
	groups := m.pattern.FindStringSubmatch(name)
	if groups == nil {
		return LanguageID{}, fmt.Errorf("catalog %q does not match %s", name, m.pattern)
	}

	if len(groups) < 2 || groups[1] == "" {
		return LanguageID{}, fmt.Errorf("catalog %q names no language", name)
	}

	return ParseLanguage(groups[1])
}
