// SPDX-License-Identifier: MPL-2.0

package license

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	// KindMIT is the MIT license.
	KindMIT Kind = "mit"
	// KindApache2 is the Apache License, Version 2.0 (short file header form).
	KindApache2 Kind = "apache2"
	// KindBSD2 is the 2-clause BSD license.
	KindBSD2 Kind = "bsd2"
	// KindBSD3 is the 3-clause BSD license.
	KindBSD3 Kind = "bsd3"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid license kind")

type (
	// Kind identifies one of the supported license texts.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}
)

// kindAliases maps accepted spellings to their canonical Kind.
var kindAliases = map[string]Kind{
	"mit":          KindMIT,
	"apache2":      KindApache2,
	"apache":       KindApache2,
	"apache-2":     KindApache2,
	"apache-2.0":   KindApache2,
	"bsd2":         KindBSD2,
	"bsd-2":        KindBSD2,
	"bsd-2-clause": KindBSD2,
	"bsd3":         KindBSD3,
	"bsd-3":        KindBSD3,
	"bsd-3-clause": KindBSD3,
}

// Kinds returns all supported kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindMIT, KindApache2, KindBSD2, KindBSD3}
}

// ParseKind resolves a user-supplied name (case-insensitive, aliases allowed)
// to its canonical Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", &InvalidKindError{Value: Kind(s)}
}

// Aliases returns the accepted alternative spellings for k, sorted by length.
func (k Kind) Aliases() []string {
	var out []string
	for alias, target := range kindAliases {
		if target == k && alias != string(k) {
			out = append(out, alias)
		}
	}
	slices.SortFunc(out, func(a, b string) int {
		if c := cmp.Compare(len(a), len(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}

// String returns the string representation of the Kind.
func (k Kind) String() string { return string(k) }

// Title returns the human-readable license name.
func (k Kind) Title() string {
	switch k {
	case KindMIT:
		return "MIT License"
	case KindApache2:
		return "Apache License 2.0"
	case KindBSD2:
		return `BSD 2-Clause "Simplified" License`
	case KindBSD3:
		return `BSD 3-Clause "New" or "Revised" License`
	default:
		return string(k)
	}
}

// IsValid returns whether the Kind is one of the supported licenses,
// and a list of validation errors if it is not.
func (k Kind) IsValid() (bool, []error) {
	switch k {
	case KindMIT, KindApache2, KindBSD2, KindBSD3:
		return true, nil
	default:
		return false, []error{&InvalidKindError{Value: k}}
	}
}

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid license kind %q (valid: mit, apache2, bsd2, bsd3)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidKindError) Unwrap() error {
	return ErrInvalidKind
}
