package main

import (
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	translate "github.com/thePortus/djangularjs-translate"
	"github.com/thePortus/djangularjs-translate/extract"
	"github.com/thePortus/djangularjs-translate/internal/report"
)

func newStatsCmd(a *app) *cobra.Command {
	var (
		asJSON    bool
		obsoletes bool
		lang      string
		pattern   string
	)

	cmd := &cobra.Command{
		Use:   "stats SRC_DIR CATALOG",
		Short: "Compare the translation keys used in SRC_DIR with the keys in CATALOG.",
		Long: `Compare the translation keys used in SRC_DIR with the keys in CATALOG.

CATALOG is a JSON or YAML catalog, or a directory holding one catalog per language (en.json, nl.yaml, ...).

# Show how many keys are new, obsolete and untranslated and list the obsolete keys.
$ djtranslate stats ./public ./i18n/en.json --obsolete

# Compare all catalogs named locale-<lang>.json in ./i18n.
$ djtranslate stats ./public ./i18n --pattern 'locale-([a-z]{2})\.json'
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcDir, catalogPath := args[0], args[1]

			if cmd.Flags().Changed("pattern") {
				a.cfg.Catalogs = pattern
			}

			catalogs, dir, err := a.loadCatalogs(catalogPath, lang)
			if err != nil {
				return err
			}

			results, err := a.scan(cmd.Context(), srcDir)
			if err != nil {
				return err
			}
			found := extract.Keys(results)

			names := make([]string, 0, len(catalogs))
			for name := range catalogs {
				names = append(names, name)
			}
			sort.Strings(names)

			reports := make(map[string]translate.Report, len(catalogs))
			for _, name := range names {
				reports[name] = translate.Stats(catalogs[name], found)
				a.logger.Debug("compared catalog", "catalog", name, "obsolete", reports[name].Obsolete)
			}

			out := cmd.OutOrStdout()

			if asJSON {
				if !dir {
					return report.JSON(out, reports[catalogPath])
				}

				return report.JSON(out, reports)
			}

			p := report.New(out)
			for _, name := range names {
				if err := p.Stats(name, reports[name], obsoletes); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON.")
	cmd.Flags().BoolVar(&obsoletes, "obsolete", false, "List the obsolete keys.")
	cmd.Flags().StringVar(&lang, "language", "", "Only compare catalogs of this language when CATALOG is a directory.")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Pattern of the catalog file names when CATALOG is a directory, the first group is the language.")

	return cmd
}

// loadCatalogs reads the catalog at path keyed by path, or all catalogs in the directory at path keyed by language.
func (a *app) loadCatalogs(path string, lang string) (catalogs map[string]*translate.Catalog, dir bool, err error) {
	info, err := a.fs.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("error reading catalog: %w", err)
	}

	if !info.IsDir() {
		c, err := translate.ReadCatalogFile(a.fs, path)
		if err != nil {
			return nil, false, err
		}

		return map[string]*translate.Catalog{path: c}, false, nil
	}

	catalogs, err = a.loadCatalogDir(path, lang)
	return catalogs, true, err
}

func (a *app) loadCatalogDir(path string, lang string) (map[string]*translate.Catalog, error) {
	var (
		filter translate.LanguageID
		err    error
	)

	if lang != "" {
		filter, err = translate.ParseLanguage(lang)
		if err != nil {
			return nil, err
		}
	}

	fs := afero.NewBasePathFs(a.fs, path)

	var byLanguage map[translate.LanguageID]*translate.Catalog
	if a.cfg.Catalogs != "" {
		matcher, err := translate.CompileMatcher(a.cfg.Catalogs)
		if err != nil {
			return nil, err
		}

		byLanguage, err = translate.CatalogsFromFsAndMatcher(fs, matcher)
		if err != nil {
			return nil, fmt.Errorf("error reading catalogs in %q: %w", path, err)
		}
	} else {
		byLanguage, err = translate.CatalogsFromFs(fs)
		if err != nil {
			return nil, fmt.Errorf("error reading catalogs in %q: %w", path, err)
		}
	}

	catalogs := make(map[string]*translate.Catalog, len(byLanguage))
	for id, c := range byLanguage {
		if !filter.Empty() && !id.Matches(filter) {
			continue
		}

		catalogs[id.String()] = c
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("no catalogs found in %q", path)
	}

	a.logger.Info("loaded catalogs", "dir", path, "catalogs", len(catalogs))

	return catalogs, nil
}
