// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lichead/lichead/internal/header"

	"github.com/spf13/cobra"
)

func newRenderCommand(app *App) *cobra.Command {
	var (
		holder holderFlags
		delims delimiterFlags
	)

	cmd := &cobra.Command{
		Use:   "render [kind]",
		Short: "Print a license text",
		Long: `Print the license text with its copyright line to stdout.

When kind is omitted the configured default license is used. Passing
--prefix, --suffix or --style prints the text as a comment block.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Settings()
			kind, err := kindFromArgs(args, cfg)
			if err != nil {
				return err
			}

			var opts []header.Option
			if delims.changed(cmd) {
				if opts, err = delims.resolve(cmd, cfg, ""); err != nil {
					return err
				}
			}

			name, year := holder.values(cmd, cfg)
			variant := app.Resolver.New(kind, name, year)
			slog.Debug("rendering license", "kind", kind, "holder", variant.Holder(), "year", variant.Year())

			_, err = fmt.Fprint(app.stdout, header.Compose(variant.Render(), "", opts...))
			return err
		},
	}

	holder.register(cmd)
	delims.register(cmd)
	return cmd
}
