// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/lichead/lichead/internal/license"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported licenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listLicenses(app)
		},
	}
}

func listLicenses(app *App) error {
	fmt.Fprintln(app.stdout, TitleStyle.Render("Supported licenses"))
	fmt.Fprintln(app.stdout)

	def := app.Settings().License
	for _, kind := range license.Kinds() {
		line := kindColumnStyle.Render(kind.String()) + " " + kind.Title()
		if kind == def {
			line += " " + SuccessStyle.Render("(default)")
		}
		fmt.Fprintln(app.stdout, line)
		if aliases := kind.Aliases(); len(aliases) > 0 {
			fmt.Fprintf(app.stdout, "%s %s\n", strings.Repeat(" ", 10), SubtitleStyle.Render("aliases: "+strings.Join(aliases, ", ")))
		}
	}
	return nil
}
