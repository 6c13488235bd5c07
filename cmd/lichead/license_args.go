// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/lichead/lichead/internal/config"
	"github.com/lichead/lichead/internal/issue"
	"github.com/lichead/lichead/internal/license"

	"github.com/spf13/cobra"
)

// holderFlags holds the --name and --year flag values shared by render and apply.
type holderFlags struct {
	name string
	year string
}

func (f *holderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "copyright holder (default: config holder, then $USER)")
	cmd.Flags().StringVar(&f.year, "year", "", "copyright year (default: current UTC year)")
}

// values returns the name and year pointers passed to license.Resolver.
// A flag given on the command line is always used, even when empty.
func (f *holderFlags) values(cmd *cobra.Command, cfg *config.Config) (name, year *string) {
	switch {
	case cmd.Flags().Changed("name"):
		name = &f.name
	case cfg.Holder != "":
		holder := cfg.Holder
		name = &holder
	}
	if cmd.Flags().Changed("year") {
		year = &f.year
	}
	return name, year
}

// kindFromArgs returns the license kind named by args, or the configured default.
func kindFromArgs(args []string, cfg *config.Config) (license.Kind, error) {
	raw := string(cfg.License)
	if len(args) > 0 {
		raw = args[0]
	}
	kind, err := license.ParseKind(raw)
	if err != nil {
		return "", usageError(issue.NewErrorContext().
			WithOperation("select license").
			WithResource(raw).
			WithSuggestion(fmt.Sprintf("Use one of: %s", joinKinds(license.Kinds()))).
			WithSuggestion("Run 'lichead list' to see accepted aliases").
			WithIssue(issue.UnknownLicenseId).
			Wrap(err).
			BuildError())
	}
	return kind, nil
}

func joinKinds(kinds []license.Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
