// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"github.com/lichead/lichead/internal/header"
	"github.com/lichead/lichead/internal/license"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Holder is the default copyright holder. Empty means "use $USER".
		Holder string `json:"holder" mapstructure:"holder"`
		// License is the license rendered when a command omits the kind argument.
		License license.Kind `json:"license" mapstructure:"license"`
		// Comment configures how header lines are commented
		Comment CommentConfig `json:"comment" mapstructure:"comment"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// CommentConfig holds the default comment delimiters.
	// Prefix and Suffix, when non-empty, take precedence over Style.
	CommentConfig struct {
		Style  header.Style `json:"style" mapstructure:"style"`
		Prefix string       `json:"prefix" mapstructure:"prefix"`
		Suffix string       `json:"suffix" mapstructure:"suffix"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Holder:  "",
		License: license.KindMIT,
		Comment: CommentConfig{
			Style: "",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// HasDelimiters reports whether any comment setting is configured.
func (c CommentConfig) HasDelimiters() bool {
	return c.Style != "" || c.Prefix != "" || c.Suffix != ""
}

// Delimiters resolves the configured prefix and suffix. An explicit prefix or
// suffix replaces the corresponding part of the style.
func (c CommentConfig) Delimiters() (prefix, suffix string) {
	prefix, suffix = c.Style.Delimiters()
	if c.Prefix != "" {
		prefix = c.Prefix
	}
	if c.Suffix != "" {
		suffix = c.Suffix
	}
	return prefix, suffix
}

// IsValid returns whether the Config has valid fields.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.License.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if c.Comment.Style != "" {
		if ok, fieldErrs := c.Comment.Style.IsValid(); !ok {
			errs = append(errs, fieldErrs...)
		}
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle maps the scheme to a glamour style name.
// Auto resolves to "dark", matching the terminal palette used for CLI styles.
func (cs ColorScheme) GlamourStyle() string {
	if cs == ColorSchemeLight {
		return "light"
	}
	return "dark"
}

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is
// matches both the sentinel and any field-level sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
