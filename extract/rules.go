package extract

import (
	"regexp"
	"strings"
)

const (
	singleQuoted = `'(?:\\.|[^'\\\n])*'`
	doubleQuoted = `"(?:\\.|[^"\\\n])*"`
	quoted       = `(?:` + singleQuoted + `|` + doubleQuoted + `)`
	quotedList   = quoted + `(?:\s*,\s*` + quoted + `)*`

	// openTag matches an opening tag and its attributes up to the whitespace before the next attribute name.
	openTag = `<[a-zA-Z][\w-]*(?:\s+[^\s=<>"'/]+(?:\s*=\s*(?:"[^"]*"|'[^']*'|[^\s<>"']+))?)*\s+`
)

var (
	literalRe = regexp.MustCompile(quoted)
	unescaper = strings.NewReplacer(`\\`, `\`, `\'`, `'`, `\"`, `"`)

	serviceCallRule = Rule{
		Name: "service-call",
		Pattern: regexp.MustCompile(
			`\$translate(?:\.instant)?\(\s*(\[\s*` + quotedList + `\s*,?\s*\]|` + quotedList + `)`,
		),
	}
	filterCallRule = Rule{
		Name:    "filter-call",
		Pattern: regexp.MustCompile(`\$filter\(\s*['"]translate['"]\s*\)\s*\(\s*(` + quotedList + `)`),
	}
	commentRule = Rule{
		Name:    "comment",
		Pattern: regexp.MustCompile(`/\*\s*i18nextract\s*\*/\s*(` + quoted + `)`),
	}
	filterInterpolationRule = Rule{
		Name:    "filter-interpolation",
		Pattern: regexp.MustCompile(`\{\{\s*(` + quoted + `)\s*\|\s*translate\b`),
	}
	filterExpressionRule = Rule{
		Name:    "filter-expression",
		Pattern: regexp.MustCompile(`(` + quoted + `)\s*\|\s*translate\b`),
	}
	directiveInterpolatedRule = Rule{
		Name: "directive-interpolated",
		Pattern: regexp.MustCompile(
			openTag + `translate\s*=\s*(?:"\s*\{\{\s*(` + singleQuoted + `)\s*\}\}\s*"|'\s*\{\{\s*(` + doubleQuoted + `)\s*\}\}\s*')`,
		),
	}
	// The attribute value must not open an interpolation, those belong to directive-interpolated.
	directiveStandaloneRule = Rule{
		Name: "directive-standalone",
		Pattern: regexp.MustCompile(
			openTag + `translate\s*=\s*("(?:[^"{\n]|\{[^{"\n])[^"\n]*"|'(?:[^'{\n]|\{[^{'\n])[^'\n]*')`,
		),
	}
	directiveContentRule = Rule{
		Name:    "directive-content",
		Pattern: regexp.MustCompile(openTag + `translate(?:\s[^<>]*)?>([^<{]+)</`),
		Bare:    true,
	}
)

// DefaultRules returns every recognizer known to the package, in the order they are documented.
func DefaultRules() []Rule {
	return []Rule{
		serviceCallRule,
		filterCallRule,
		commentRule,
		filterInterpolationRule,
		filterExpressionRule,
		directiveInterpolatedRule,
		directiveStandaloneRule,
		directiveContentRule,
	}
}

// RuleByName returns the default rule with the given name.
func RuleByName(name string) (Rule, bool) {
	for _, r := range DefaultRules() {
		if r.Name == name {
			return r, true
		}
	}

	return Rule{}, false
}

// Rule recognizes a single embedding idiom.
//
// Every capture group of Pattern that participates in a match holds either one or more quoted
// literals, or, when Bare is set, the key itself without quotes.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Bare    bool
}

// Match is a key found by a rule. Offset is the byte offset of the key in the scanned content.
type Match struct {
	Rule   string
	Offset int
	Key    string
}

// Find returns all keys the rule recognizes in content, in the order they appear.
func (r Rule) Find(content string) []Match {
	var matches []Match

	for _, loc := range r.Pattern.FindAllStringSubmatchIndex(content, -1) {
		for g := 2; g+1 < len(loc); g += 2 {
			start, end := loc[g], loc[g+1]
			if start < 0 {
				continue
			}

			if r.Bare {
				if m, ok := r.bare(content[start:end], start); ok {
					matches = append(matches, m)
				}
				continue
			}

			matches = append(matches, r.literals(content[start:end], start)...)
		}
	}

	return matches
}

// literals returns every quoted literal in group without its quotes. Escaped quotes and backslashes are unescaped.
func (r Rule) literals(group string, offset int) []Match {
	var matches []Match

	for _, loc := range literalRe.FindAllStringIndex(group, -1) {
		if loc[1]-loc[0] == 2 {
			continue
		}

		matches = append(matches, Match{
			Rule:   r.Name,
			Offset: offset + loc[0] + 1,
			Key:    unescaper.Replace(group[loc[0]+1 : loc[1]-1]),
		})
	}

	return matches
}

func (r Rule) bare(group string, offset int) (Match, bool) {
	key := strings.TrimSpace(group)
	if key == "" {
		return Match{}, false
	}

	return Match{
		Rule:   r.Name,
		Offset: offset + strings.Index(group, key),
		Key:    key,
	}, true
}
