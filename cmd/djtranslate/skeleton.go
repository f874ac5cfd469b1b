package main

import (
	"fmt"

	"github.com/spf13/cobra"

	translate "github.com/thePortus/djangularjs-translate"
	"github.com/thePortus/djangularjs-translate/extract"
)

func newSkeletonCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "skeleton SRC_DIR",
		Short: "Print a nested catalog holding every translation key used in SRC_DIR.",
		Long: `Print a nested catalog holding every translation key used in SRC_DIR.

Every dot in a key starts a nested level, the leaves hold the --default value.

$ djtranslate skeleton ./public --format yaml --default TODO
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("default") {
				a.cfg.Default, _ = cmd.Flags().GetString("default")
			}

			results, err := a.scan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			catalog := translate.Nestify(extract.Keys(results), a.cfg.Default)

			switch format {
			case "json":
				return translate.WriteJSON(cmd.OutOrStdout(), catalog)
			case "yaml":
				return translate.WriteYAML(cmd.OutOrStdout(), catalog)
			default:
				return fmt.Errorf("unknown format %q, use json or yaml", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml.")
	cmd.Flags().String("default", "", "Value of every key in the skeleton.")

	return cmd
}
