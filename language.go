package translate

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// LanguageID identifies the language of a catalog file, e.g. "en" for en.json or "en-US" for en_US.yaml.
type LanguageID struct {
	Language string
	Region   string
}

// ParseLanguage parses a BCP 47 tag such as "en", "en-US" or "en_us". Scripts and variants are dropped.
func ParseLanguage(lang string) (LanguageID, error) {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return LanguageID{}, fmt.Errorf("invalid language %q: %w", lang, err)
	}

	base, confidence := tag.Base()
	if confidence != language.Exact {
		return LanguageID{}, fmt.Errorf("invalid language %q: no base language", lang)
	}

	id := LanguageID{Language: base.String()}
	if region, confidence := tag.Region(); confidence == language.Exact {
		id.Region = region.String()
	}

	return id, nil
}

// MustParseLanguage is like ParseLanguage but panics on an invalid language.
func MustParseLanguage(lang string) LanguageID {
	id, err := ParseLanguage(lang)
	if err != nil {
		panic(err)
	}

	return id
}

// String formats the language as used in reports, "en" or "en-US".
func (l LanguageID) String() string {
	if l.Region == "" {
		return l.Language
	}

	return l.Language + "-" + l.Region
}

// Empty reports whether no language is set. An empty filter selects every catalog.
func (l LanguageID) Empty() bool {
	return l == LanguageID{}
}

// Matches reports whether l is selected by filter. A filter without region selects every region of its language.
func (l LanguageID) Matches(filter LanguageID) bool {
	if l.Language != filter.Language {
		return false
	}

	return filter.Region == "" || l.Region == filter.Region
}
