// SPDX-License-Identifier: MPL-2.0

package header

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// StyleNone leaves license lines unwrapped.
	StyleNone Style = "none"
	// StyleSlash prefixes lines with "// " (Go, C, Java, JavaScript, Rust).
	StyleSlash Style = "slash"
	// StyleHash prefixes lines with "# " (shell, Python, Ruby, YAML, TOML).
	StyleHash Style = "hash"
	// StyleDash prefixes lines with "-- " (SQL, Lua, Haskell).
	StyleDash Style = "dash"
	// StyleSemicolon prefixes lines with "; " (Lisp, Clojure, INI).
	StyleSemicolon Style = "semicolon"
	// StyleBlock wraps each line in "/* " and " */" (CSS).
	StyleBlock Style = "block"
)

// ErrInvalidStyle is the sentinel error wrapped by InvalidStyleError.
var ErrInvalidStyle = errors.New("invalid comment style")

type (
	// Style is a named comment delimiter preset.
	Style string

	// InvalidStyleError is returned when a Style value is not recognized.
	// It wraps ErrInvalidStyle for errors.Is() compatibility.
	InvalidStyleError struct {
		Value Style
	}
)

var extensionStyles = map[string]Style{
	".go":    StyleSlash,
	".c":     StyleSlash,
	".h":     StyleSlash,
	".cc":    StyleSlash,
	".cpp":   StyleSlash,
	".hpp":   StyleSlash,
	".java":  StyleSlash,
	".js":    StyleSlash,
	".ts":    StyleSlash,
	".rs":    StyleSlash,
	".swift": StyleSlash,
	".kt":    StyleSlash,
	".proto": StyleSlash,
	".sh":    StyleHash,
	".bash":  StyleHash,
	".py":    StyleHash,
	".rb":    StyleHash,
	".pl":    StyleHash,
	".yaml":  StyleHash,
	".yml":   StyleHash,
	".toml":  StyleHash,
	".cue":   StyleSlash,
	".sql":   StyleDash,
	".lua":   StyleDash,
	".hs":    StyleDash,
	".lisp":  StyleSemicolon,
	".el":    StyleSemicolon,
	".clj":   StyleSemicolon,
	".ini":   StyleSemicolon,
	".css":   StyleBlock,
}

// Styles returns every defined style.
func Styles() []Style {
	return []Style{StyleNone, StyleSlash, StyleHash, StyleDash, StyleSemicolon, StyleBlock}
}

// ParseStyle resolves a style name, case-insensitive.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if ok, errs := style.IsValid(); !ok {
		return "", errs[0]
	}
	return style, nil
}

// StyleForPath picks a style from the file extension of path. Makefiles and
// Dockerfiles map to StyleHash; unknown extensions map to StyleNone.
func StyleForPath(path string) Style {
	base := filepath.Base(path)
	switch base {
	case "Makefile", "Dockerfile", "Containerfile":
		return StyleHash
	}
	if s, ok := extensionStyles[strings.ToLower(filepath.Ext(base))]; ok {
		return s
	}
	return StyleNone
}

// Delimiters returns the prefix and suffix for the style.
func (s Style) Delimiters() (prefix, suffix string) {
	switch s {
	case StyleSlash:
		return "// ", ""
	case StyleHash:
		return "# ", ""
	case StyleDash:
		return "-- ", ""
	case StyleSemicolon:
		return "; ", ""
	case StyleBlock:
		return "/* ", " */"
	default:
		return "", ""
	}
}

// String returns the string representation of the Style.
func (s Style) String() string { return string(s) }

// IsValid returns whether the Style is a defined preset,
// and a list of validation errors if it is not.
func (s Style) IsValid() (bool, []error) {
	switch s {
	case StyleNone, StyleSlash, StyleHash, StyleDash, StyleSemicolon, StyleBlock:
		return true, nil
	default:
		return false, []error{&InvalidStyleError{Value: s}}
	}
}

// Error implements the error interface.
func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("invalid comment style %q (valid: none, slash, hash, dash, semicolon, block)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidStyleError) Unwrap() error {
	return ErrInvalidStyle
}
