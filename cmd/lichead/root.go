// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lichead/lichead/internal/issue"
	"github.com/lichead/lichead/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the lichead command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lichead",
		Short: "Generate license texts and prepend them as source file headers",
		Long: TitleStyle.Render("lichead") + SubtitleStyle.Render(" - license header generator") + `

lichead renders MIT, Apache-2.0, BSD-2-Clause and BSD-3-Clause license
texts with your copyright line, and writes them as comment headers on
top of existing source files.

` + SubtitleStyle.Render("Examples:") + `
  lichead list                               List supported licenses
  lichead render mit --name "Jane Doe"       Print the MIT license
  lichead apply apache2 --in main.go         Prepend an Apache-2.0 header in place
  lichead apply bsd3 --in a.sql --dry-run    Preview a header without writing`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.loadSettings(cmd.Context())
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/lichead/config.cue)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(newRenderCommand(app))
	rootCmd.AddCommand(newApplyCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.reportError(w, err)
		}),
	)
	if code := exitCodeOf(err); !code.IsSuccess() {
		os.Exit(int(code))
	}
}

// reportError prints err and any catalog guidance linked to it.
func (a *App) reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "\n%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, a.verbose))
	a.renderIssue(err)
}

// exitCodeOf maps an Execute error to the process exit status. Any error maps
// to a failing status in the POSIX range.
func exitCodeOf(err error) types.ExitCode {
	if err == nil {
		return types.ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code.Validate() != nil || exitErr.Code.IsSuccess() {
			return types.ExitFailure
		}
		return exitErr.Code
	}
	return types.ExitFailure
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueIDOf returns the catalog ID carried by err, or zero.
func issueIDOf(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Issue
	}
	return 0
}
