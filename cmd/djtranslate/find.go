package main

import (
	"github.com/spf13/cobra"

	"github.com/thePortus/djangularjs-translate/extract"
	"github.com/thePortus/djangularjs-translate/internal/report"
)

func newFindCmd(a *app) *cobra.Command {
	var byModule, asJSON bool

	cmd := &cobra.Command{
		Use:   "find SRC_DIR",
		Short: "List the translation keys used in the sources in SRC_DIR.",
		Long: `List the translation keys used in the sources in SRC_DIR.

# List all keys used below ./public, every key once.
$ djtranslate find ./public

# Group the keys by module, the directories directly below ./public.
$ djtranslate find ./public --by-module
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.scan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if byModule {
				modules := extract.ByModule(results)
				if asJSON {
					return report.JSON(out, modules)
				}

				return report.New(out).Modules(modules)
			}

			keys := extract.Keys(results)
			if asJSON {
				return report.JSON(out, keys)
			}

			return report.New(out).Keys(keys)
		},
	}

	cmd.Flags().BoolVar(&byModule, "by-module", false, "Group the keys by module.")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON.")

	return cmd
}
