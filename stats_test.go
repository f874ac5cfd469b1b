package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	catalog := catalogOf(
		"a", "",
		"b", "b",
		"c", catalogOf(
			"b", "b",
			"c", "",
			"d", "",
		),
	)
	found := []string{"b", "c.a", "c.b", "c.c", "d"}

	require.Equal(t, Report{
		Used:          len(found),
		New:           2, // c.a, d
		Obsolete:      2, // a, c.d
		Empty:         3, // c.a, c.c, d
		ObsoletesList: []string{"a", "c.d"},
	}, Stats(catalog, found))
}

func TestStatsEmptyCatalog(t *testing.T) {
	found := []string{"a", "b.c"}

	for _, c := range []*Catalog{nil, NewCatalog(), catalogOf("empty", NewCatalog())} {
		require.Equal(t, Report{
			Used:          2,
			New:           2,
			Empty:         2,
			ObsoletesList: []string{},
		}, Stats(c, found))
	}
}

func TestStatsNothingFound(t *testing.T) {
	catalog := catalogOf("a", "A", "b", catalogOf("c", ""))

	require.Equal(t, Report{
		Obsolete:      2,
		ObsoletesList: []string{"a", "b.c"},
	}, Stats(catalog, nil))
}

func TestStatsNamespaceIsNotALeaf(t *testing.T) {
	catalog := catalogOf("ns", catalogOf("key", "value"))

	report := Stats(catalog, []string{"ns"})
	require.Equal(t, 1, report.New)
	require.Equal(t, 1, report.Empty)
	require.Equal(t, []string{"ns.key"}, report.ObsoletesList)
}

func TestStatsAllTranslated(t *testing.T) {
	catalog := Nestify([]string{"a", "b.c"}, "translated")

	require.Equal(t, Report{
		Used:          2,
		ObsoletesList: []string{},
	}, Stats(catalog, []string{"b.c", "a"}))
}
