package config

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/thePortus/djangularjs-translate/extract"
)

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "missing.yaml")
	require.Error(t, err)
}

func TestLoadDefaultFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, DefaultFile, []byte(`
extensions: [".html"]
workers: 4
default: TODO
`), 0o644))

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	require.Equal(t, []string{".html"}, cfg.Extensions)
	require.Equal(t, extract.DefaultExclude, cfg.Exclude)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "TODO", cfg.Default)
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown field": "extension: [.js]\n",
		"negative":      "workers: -1\n",
		"malformed":     "workers: [\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "config.yaml", []byte(content), 0o644))

			_, err := Load(fs, "config.yaml")
			t.Log(err)
			require.Error(t, err)
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.yaml", nil, 0o644))

	cfg, err := Load(fs, "config.yaml")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestExtractor(t *testing.T) {
	cfg := Default()
	cfg.Rules = []string{"directive-standalone", "service-call"}

	e, err := cfg.Extractor()
	require.NoError(t, err)
	require.Equal(t, cfg.Rules, e.Rules())

	cfg.Rules = []string{"unknown"}
	_, err = cfg.Extractor()
	require.Error(t, err)

	_, err = cfg.ScanOpts()
	require.Error(t, err)
}

func TestScanOpts(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "src/main/view.html", []byte(`<a translate="VIEW"></a>`), 0o644))
	require.NoError(t, afero.WriteFile(fs, "src/main/app.js", []byte(`$translate('APP');`), 0o644))

	cfg := Default()
	cfg.Extensions = []string{".html"}

	opts, err := cfg.ScanOpts()
	require.NoError(t, err)

	results, err := extract.Scan(context.Background(), fs, "src", opts...)
	require.NoError(t, err)
	require.Equal(t, []string{"VIEW"}, extract.Keys(results))
}
