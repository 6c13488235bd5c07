// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/lichead/lichead/internal/config"
	"github.com/lichead/lichead/internal/header"
	"github.com/lichead/lichead/internal/issue"

	"github.com/spf13/cobra"
)

// delimiterFlags holds the --prefix, --suffix and --style flag values.
type delimiterFlags struct {
	prefix string
	suffix string
	style  string
}

func (f *delimiterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.prefix, "prefix", "", "string placed before every non-empty license line")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "string placed after every non-empty license line")
	cmd.Flags().StringVar(&f.style, "style", "", fmt.Sprintf("comment style preset %v", header.Styles()))
}

func (f *delimiterFlags) changed(cmd *cobra.Command) bool {
	fl := cmd.Flags()
	return fl.Changed("prefix") || fl.Changed("suffix") || fl.Changed("style")
}

// resolve picks the header options for a command invocation. Explicit flags
// win, then the comment style inferred from path, then the config defaults.
func (f *delimiterFlags) resolve(cmd *cobra.Command, cfg *config.Config, path string) ([]header.Option, error) {
	if f.changed(cmd) {
		var opts []header.Option
		if cmd.Flags().Changed("style") {
			style, err := header.ParseStyle(f.style)
			if err != nil {
				return nil, usageError(issue.NewErrorContext().
					WithOperation("parse comment style").
					WithResource(f.style).
					WithSuggestion(fmt.Sprintf("Use one of: %v", header.Styles())).
					WithIssue(issue.InvalidCommentStyleId).
					Wrap(err).
					BuildError())
			}
			opts = append(opts, header.WithStyle(style))
		}
		if cmd.Flags().Changed("prefix") {
			opts = append(opts, header.WithPrefix(f.prefix))
		}
		if cmd.Flags().Changed("suffix") {
			opts = append(opts, header.WithSuffix(f.suffix))
		}
		return opts, nil
	}

	if path != "" {
		if style := header.StyleForPath(path); style != header.StyleNone {
			return []header.Option{header.WithStyle(style)}, nil
		}
	}

	if cfg.Comment.HasDelimiters() {
		prefix, suffix := cfg.Comment.Delimiters()
		return []header.Option{header.WithPrefix(prefix), header.WithSuffix(suffix)}, nil
	}
	return nil, nil
}
