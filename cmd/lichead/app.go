// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lichead/lichead/internal/config"
	"github.com/lichead/lichead/internal/fileio"
	"github.com/lichead/lichead/internal/issue"
	"github.com/lichead/lichead/internal/license"
	"github.com/lichead/lichead/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra command handler receives an App reference.
	App struct {
		Config   ConfigProvider
		Files    FileStore
		Resolver license.Resolver
		stdout   io.Writer
		stderr   io.Writer

		// Per-invocation state filled by the root command's PersistentPreRunE.
		cfgFile  string
		verbose  bool
		settings *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Files    FileStore
		Resolver license.Resolver
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// FileStore reads whole input files and writes whole output files.
	FileStore interface {
		ReadFile(path string) (string, error)
		WriteFile(path, data string) error
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Files == nil {
		deps.Files = fileio.NewStore(nil)
	}

	return &App{
		Config:   deps.Config,
		Files:    deps.Files,
		Resolver: deps.Resolver,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// loadSettings loads configuration once per invocation. Load failures are
// reported as a warning and the defaults are used instead.
func (a *App) loadSettings(ctx context.Context) *config.Config {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.cfgFile)})
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		cfg = config.DefaultConfig()
	}
	a.settings = cfg
	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	slog.SetDefault(slog.New(newLogger(a.stderr, a.verbose)))
	return cfg
}

// Settings returns the loaded configuration, or defaults before loading.
func (a *App) Settings() *config.Config {
	if a.settings == nil {
		return config.DefaultConfig()
	}
	return a.settings
}

// renderIssue writes the catalog guidance linked to err, if any.
func (a *App) renderIssue(err error) {
	id := issueIDOf(err)
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, renderErr := entry.Render(a.Settings().UI.ColorScheme.GlamourStyle())
	if renderErr != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", id, "error", renderErr)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}
