// Package config reads the optional configuration file of the djtranslate command.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/thePortus/djangularjs-translate/extract"
)

// DefaultFile is read when it exists and no other file is given.
const DefaultFile = ".djtranslate.yaml"

// Config holds the settings shared by all commands.
type Config struct {
	// Extensions of the source files to scan.
	Extensions []string `yaml:"extensions"`
	// Exclude holds filepath.Match patterns of file and directory names that are skipped.
	Exclude []string `yaml:"exclude"`
	// Rules restricts extraction to the named rules. Empty means all rules.
	Rules []string `yaml:"rules"`
	// Workers is the number of files scanned concurrently, 0 uses the number of CPUs.
	Workers int `yaml:"workers"`
	// Default is the value of the leaves of a generated skeleton.
	Default string `yaml:"default"`
	// Catalogs is the pattern used to find catalogs in a directory, see translate.CompileMatcher.
	Catalogs string `yaml:"catalogs"`
}

func Default() Config {
	return Config{
		Extensions: extract.DefaultExtensions,
		Exclude:    extract.DefaultExclude,
	}
}

// Load reads name from fs on top of the defaults.
// Without a name DefaultFile is read if it exists.
func Load(fs afero.Fs, name string) (Config, error) {
	cfg := Default()

	if name == "" {
		exists, err := afero.Exists(fs, DefaultFile)
		if err != nil {
			return cfg, fmt.Errorf("unable to stat config %q: %w", DefaultFile, err)
		}

		if !exists {
			return cfg, nil
		}

		name = DefaultFile
	}

	f, err := fs.Open(name)
	if err != nil {
		return cfg, fmt.Errorf("unable to open config %q: %w", name, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("unable to decode config %q: %w", name, err)
	}

	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("invalid config %q: workers must not be negative", name)
	}

	return cfg, nil
}

// Extractor returns an extractor for the configured rules.
func (c Config) Extractor() (*extract.Extractor, error) {
	rules := make([]extract.Rule, 0, len(c.Rules))
	for _, name := range c.Rules {
		rule, ok := extract.RuleByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", name)
		}

		rules = append(rules, rule)
	}

	return extract.New(rules...), nil
}

// ScanOpts returns the options for extract.Scan.
func (c Config) ScanOpts() ([]extract.ScanOpt, error) {
	e, err := c.Extractor()
	if err != nil {
		return nil, err
	}

	return []extract.ScanOpt{
		extract.WithExtractor(e),
		extract.WithExtensions(c.Extensions...),
		extract.WithExclude(c.Exclude...),
		extract.WithWorkers(c.Workers),
	}, nil
}
