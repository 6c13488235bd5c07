// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/lichead/lichead/internal/config"
	"github.com/lichead/lichead/internal/issue"
	"github.com/lichead/lichead/pkg/types"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `lichead config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage lichead configuration",
		Long: `Manage lichead configuration.

Configuration is stored in:
  - Linux: ~/.config/lichead/config.cue
  - macOS: ~/Library/Application Support/lichead/config.cue
  - Windows: %APPDATA%\lichead\config.cue

A config.toml in the same directory is read when no config.cue exists.
LICHEAD_* environment variables (for example LICHEAD_HOLDER) override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfigStrict(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return err
		},
	})

	return cfgCmd
}

// loadConfigStrict reloads configuration and fails instead of falling back to defaults.
func (a *App) loadConfigStrict(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := a.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.cfgFile)})
	if err != nil {
		return nil, &ExitError{Code: types.ExitFailure, Err: err}
	}
	return cfg, nil
}

func showConfig(cmd *cobra.Command, app *App) error {
	cfg, err := app.loadConfigStrict(cmd)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	out := app.stdout

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	cfgPath, resolveErr := config.Resolve(config.LoadOptions{ConfigFilePath: types.FilesystemPath(app.cfgFile)})
	if resolveErr != nil || cfgPath == "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	}
	fmt.Fprintln(out)

	holder := valueStyle.Render(cfg.Holder)
	if cfg.Holder == "" {
		holder = SubtitleStyle.Render("(from $USER)")
	}
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("holder"), holder)
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("license"), valueStyle.Render(cfg.License.String()))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("comment"))
	if !cfg.Comment.HasDelimiters() {
		fmt.Fprintf(out, "  %s\n", SubtitleStyle.Render("(inferred from file extension)"))
	} else {
		prefix, suffix := cfg.Comment.Delimiters()
		fmt.Fprintf(out, "  style: %s\n", valueStyle.Render(cfg.Comment.Style.String()))
		fmt.Fprintf(out, "  prefix: %s\n", valueStyle.Render(fmt.Sprintf("%q", prefix)))
		fmt.Fprintf(out, "  suffix: %s\n", valueStyle.Render(fmt.Sprintf("%q", suffix)))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	cfgPath, err := config.CreateDefaultConfig()
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("create config file").
			WithResource(cfgPath).
			WithSuggestion("Check that the config directory is writable").
			WithIssue(issue.WriteFailedId).
			Wrap(err).
			BuildError()}
	}

	fmt.Fprintf(app.stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return &ExitError{Code: types.ExitFailure, Err: issue.WrapWithContext(err, "resolve config directory", "")}
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
