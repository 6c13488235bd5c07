// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lichead/lichead/internal/fileio"
	"github.com/lichead/lichead/internal/header"
	"github.com/lichead/lichead/internal/issue"
	"github.com/lichead/lichead/pkg/types"

	"github.com/spf13/cobra"
)

type applyOptions struct {
	in     string
	out    string
	dryRun bool
	holder holderFlags
	delims delimiterFlags
}

func newApplyCommand(app *App) *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply [kind]",
		Short: "Prepend a license header to a file",
		Long: `Read a file, prepend the license as a header and write the result.

The output defaults to the input file, which is then updated in place.
Writes are atomic: a failed write leaves the destination untouched.

Comment delimiters come from --prefix, --suffix and --style when given,
otherwise from the output file extension, otherwise from the config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, app, &opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.in, "in", "", "input file (required)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (default: the input file)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the result instead of writing it")
	opts.holder.register(cmd)
	opts.delims.register(cmd)
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func runApply(cmd *cobra.Command, app *App, opts *applyOptions, args []string) error {
	cfg := app.Settings()
	kind, err := kindFromArgs(args, cfg)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = opts.in
	}

	headerOpts, err := opts.delims.resolve(cmd, cfg, out)
	if err != nil {
		return err
	}

	content, err := app.Files.ReadFile(opts.in)
	if err != nil {
		return fileError("read input file", opts.in, err)
	}

	name, year := opts.holder.values(cmd, cfg)
	variant := app.Resolver.New(kind, name, year)
	result := header.Compose(variant.Render(), content, headerOpts...)

	if opts.dryRun {
		slog.Debug("dry run, not writing", "out", out)
		_, err = fmt.Fprint(app.stdout, result)
		return err
	}

	if err := app.Files.WriteFile(out, result); err != nil {
		return fileError("write output file", out, err)
	}
	slog.Info("license header written", "kind", kind, "in", opts.in, "out", out)
	fmt.Fprintln(app.stderr, SuccessStyle.Render("Wrote ")+CmdStyle.Render(out))
	return nil
}

// fileError turns a file store failure into an actionable runtime error.
// A missing file only points at --in when the read failed; a write that hits
// a missing path means the destination directory does not exist.
func fileError(operation, path string, err error) error {
	ctx := issue.NewErrorContext().
		WithOperation(operation).
		WithResource(path).
		Wrap(err)

	var ioErr *fileio.IOError
	reading := errors.As(err, &ioErr) && ioErr.Op == "read"

	switch {
	case errors.Is(err, fileio.ErrPermission):
		ctx.WithIssue(issue.PermissionDeniedId).
			WithSuggestion("Check the file and directory permissions")
	case reading && errors.Is(err, fileio.ErrNotFound):
		ctx.WithIssue(issue.InputNotFoundId).
			WithSuggestion("Check that the path exists and is spelled correctly")
	case errors.Is(err, fileio.ErrNotFound):
		ctx.WithIssue(issue.WriteFailedId).
			WithSuggestion(fmt.Sprintf("Create the directory %s first", filepath.Dir(path)))
	default:
		ctx.WithIssue(issue.WriteFailedId).
			WithSuggestion("Check that the destination directory exists and has free space")
	}

	return &ExitError{Code: types.ExitFailure, Err: ctx.BuildError()}
}
