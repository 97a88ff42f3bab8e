package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/piwi3910/sheathcalc/internal/model"
	"github.com/piwi3910/sheathcalc/internal/project"
)

// envPrefix namespaces environment overrides, e.g. SHEATHCALC_DEFAULT_PITCH.
const envPrefix = "SHEATHCALC"

func (a *cliApp) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return project.DefaultConfigPath()
}

// loadConfig layers the built-in defaults, the config file and SHEATHCALC_*
// environment variables. A missing config file is not an error.
func (a *cliApp) loadConfig() (model.AppConfig, error) {
	v := viper.New()
	v.SetFs(a.fs)

	d := model.DefaultAppConfig()
	v.SetDefault("default_length", d.DefaultLength)
	v.SetDefault("default_width", d.DefaultWidth)
	v.SetDefault("default_wall_height", d.DefaultWallHeight)
	v.SetDefault("default_pitch", d.DefaultPitch)
	v.SetDefault("default_overhang_inches", d.DefaultOverhangInches)
	v.SetDefault("default_sheet_width_inches", d.DefaultSheetWidthInches)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("export_dir", d.ExportDir)
	v.SetDefault("recent_exports", d.RecentExports)
	v.SetDefault("compare_widths", d.CompareWidths)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := a.configPath()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return model.AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		slog.Debug("no config file, using defaults", "path", path)
	} else {
		slog.Debug("loaded config", "path", v.ConfigFileUsed())
	}

	var cfg model.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.RecentExports == nil {
		cfg.RecentExports = []string{}
	}
	if len(cfg.CompareWidths) == 0 {
		cfg.CompareWidths = d.CompareWidths
	}
	return cfg, nil
}

func newConfigCmd(app *cliApp) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialise the configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			data, err := project.MarshalAppConfig(cfg)
			if err != nil {
				return err
			}
			cmd.Printf("# %s\n", app.configPath())
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.configPath()
			exists, err := afero.Exists(app.fs, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			if exists && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}
			data, err := project.MarshalAppConfig(model.DefaultAppConfig())
			if err != nil {
				return err
			}
			if err := app.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := afero.WriteFile(app.fs, path, data, 0644); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			cmd.Printf("Wrote default configuration to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
