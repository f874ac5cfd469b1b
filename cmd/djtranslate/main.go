package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thePortus/djangularjs-translate/extract"
	"github.com/thePortus/djangularjs-translate/internal/config"
)

// app holds the state shared by all commands.
type app struct {
	fs     afero.Fs
	logger *slog.Logger
	cfg    config.Config

	configFile string
	verbose    bool
	extensions []string
	exclude    []string
	workers    int
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	rootCmd := &cobra.Command{
		Use:           "djtranslate",
		Short:         "A tool to find translation keys in AngularJS sources and compare them with translation catalogs.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default "+config.DefaultFile+" if it exists).")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log every scanned file.")
	flags.StringSliceVar(&a.extensions, "ext", nil, "Extensions of the files to scan, e.g. --ext .js,.html.")
	flags.StringSliceVar(&a.exclude, "exclude", nil, "Patterns of file and directory names to skip.")
	flags.IntVar(&a.workers, "workers", 0, "Number of files scanned concurrently.")

	rootCmd.AddCommand(
		newFindCmd(a),
		newStatsCmd(a),
		newSkeletonCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(a.fs, a.configFile)
	if err != nil {
		return err
	}

	// Flags win over the config file.
	flags := cmd.Flags()
	if flags.Changed("ext") {
		cfg.Extensions = a.extensions
	}
	if flags.Changed("exclude") {
		cfg.Exclude = a.exclude
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}

	a.cfg = cfg
	return nil
}

// scan extracts the keys of all files below dir.
func (a *app) scan(ctx context.Context, dir string) ([]extract.Result, error) {
	opts, err := a.cfg.ScanOpts()
	if err != nil {
		return nil, err
	}

	results, err := extract.Scan(ctx, a.fs, dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("error extracting keys: %w", err)
	}

	for _, r := range results {
		a.logger.Debug("scanned file", "path", r.Path, "module", r.Module, "keys", len(r.Keys))
	}
	a.logger.Info("scanned sources", "dir", dir, "files", len(results))

	return results, nil
}

func main() {
	cobra.CheckErr(newRootCmd(afero.NewOsFs()).ExecuteContext(context.Background()))
}
