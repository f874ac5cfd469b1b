package extract

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestScanTestdata(t *testing.T) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), "./testdata")

	results, err := Scan(context.Background(), fs, "public", WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, results, 9)

	paths := make([]string, 0, len(results))
	for _, r := range results {
		paths = append(paths, r.Path)
	}
	require.Equal(t, []string{
		"public/app.js",
		"public/module0/module0.module.js",
		"public/module0/views/content.html",
		"public/module0/views/directives.html",
		"public/module0/views/expressions.html",
		"public/module0/views/filters.html",
		"public/module0/views/interpolations.html",
		"public/module1/index.html",
		"public/module1/module1.module.js",
	}, paths)

	require.Empty(t, results[0].Module)
	require.Empty(t, results[0].Keys)
	require.Equal(t, "module0", results[5].Module)
	require.Equal(t, []string{
		"FILTER_QB_DQ",
		"FILTER_QB_SQ",
		"FILTER_QB_SQ_{name}",
		"FILTER_QB_SQ_{}",
		"NAMESPACED.FILTER",
		"NAMESPACED.PLACEHOLDER",
	}, results[5].Keys)

	keys := Keys(results)
	require.Len(t, keys, 36)
	require.Equal(t, "COMMENT_SQ", keys[0])
	require.Equal(t, []string{"MODULE1_VIEW", "MODULE1_ONLY"}, keys[len(keys)-2:])

	modules := ByModule(results)
	require.Len(t, modules, 3)
	require.Equal(t, []string{"MODULE1_VIEW", "MODULE1_ONLY", "SERVICE_SQ"}, modules["module1"])
	require.Contains(t, modules["module0"], "SERVICE_SQ")
}

func TestScanFiltersFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "src/main/app.js", `$translate('APP');`)
	writeFile(t, fs, "src/main/view.html", `{{ 'VIEW' | translate }}`)
	writeFile(t, fs, "src/main/readme.md", `{{ 'README' | translate }}`)
	writeFile(t, fs, "src/node_modules/lib/lib.js", `$translate('VENDOR');`)
	writeFile(t, fs, "src/main/app.spec.js", `$translate('SPEC');`)

	results, err := Scan(context.Background(), fs, "src")
	require.NoError(t, err)
	require.Equal(t, []string{"APP", "SPEC", "VIEW"}, Keys(results))

	results, err = Scan(context.Background(), fs, "src", WithExtensions(".html"))
	require.NoError(t, err)
	require.Equal(t, []string{"VIEW"}, Keys(results))

	results, err = Scan(context.Background(), fs, "src", WithExclude("*.spec.js", "node_modules"))
	require.NoError(t, err)
	require.Equal(t, []string{"APP", "VIEW"}, Keys(results))

	for _, r := range results {
		require.Equal(t, "main", r.Module)
	}
}

func TestScanWithExtractor(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "src/main/view.html", `<a translate="STANDALONE"></a>{{ 'FILTER' | translate }}`)

	rule, ok := RuleByName("filter-interpolation")
	require.True(t, ok)

	results, err := Scan(context.Background(), fs, "src", WithExtractor(New(rule)))
	require.NoError(t, err)
	require.Equal(t, []string{"FILTER"}, Keys(results))
}

func TestScanInvalidExclude(t *testing.T) {
	_, err := Scan(context.Background(), afero.NewMemMapFs(), "src", WithExclude("["))
	require.Error(t, err)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(context.Background(), afero.NewMemMapFs(), "missing")
	require.Error(t, err)
}

func TestScanCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "src/main/app.js", `$translate('APP');`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, fs, "src")
	require.ErrorIs(t, err, context.Canceled)
}

func TestModuleName(t *testing.T) {
	cases := map[string]string{
		"public/module0/my-file.js":        "module0",
		"public/module0/views/index.html":  "module0",
		"/public/module0/views/index.html": "module0",
		"public/module0/../module1/a.js":   "module1",
		"public/app.js":                    "",
		"":                                 "",
	}

	for path, module := range cases {
		t.Run(path, func(t *testing.T) {
			require.Equal(t, module, ModuleName(path))
		})
	}
}

func writeFile(t *testing.T, fs afero.Fs, name string, content string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
}
