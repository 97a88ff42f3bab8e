// Package cli implements the sheathcalc-cli command tree.
package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// version is the application version.
var version = "1.0.0"

// cliApp carries the state shared by every command of one invocation.
type cliApp struct {
	fs      afero.Fs
	cfgFile string
	verbose bool
}

// Execute runs the command tree against the real filesystem.
func Execute() error {
	return NewRootCmd(afero.NewOsFs()).Execute()
}

// NewRootCmd builds the command tree. Configuration files are read from and
// written to fsys.
func NewRootCmd(fsys afero.Fs) *cobra.Command {
	app := &cliApp{fs: fsys}

	rootCmd := &cobra.Command{
		Use:   "sheathcalc-cli",
		Short: "Estimate sheathing panels for gable-roofed buildings",
		Long: `sheathcalc-cli estimates the wall, gable and roof sheathing panels needed
for a gable-roofed building with an optional lean-to shed or porch.

Defaults come from ~/.sheathcalc/config.json (or --config), may be overridden
with SHEATHCALC_* environment variables, and flags override both.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), app.verbose)
			loadDotEnv()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.cfgFile, "config", "c", "", "config file (default is $HOME/.sheathcalc/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newEstimateCmd(app),
		newCompareCmd(app),
		newExportCmd(app),
		newConfigCmd(app),
	)
	return rootCmd
}

// setupLogging routes slog to w, at debug level when verbose.
func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadDotEnv picks up SHEATHCALC_* variables from a .env file in the
// working directory. A missing file is not an error.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring unreadable .env file", "error", err)
	}
}
