// SPDX-License-Identifier: MPL-2.0

package license

import (
	"os"
	"strconv"
	"time"
)

// UserEnvVar is the environment variable consulted when no holder name is given.
const UserEnvVar = "USER"

type (
	// Clock abstracts the current time so year defaulting can be tested.
	Clock interface {
		Now() time.Time
	}

	// LookupEnvFunc reports the value of an environment variable and whether it is set.
	LookupEnvFunc func(key string) (string, bool)

	// Resolver fills in missing holder names and years. Nil fields fall back to
	// os.LookupEnv and the system clock.
	Resolver struct {
		LookupEnv LookupEnvFunc
		Clock     Clock
	}

	// Variant is a license rendered for a specific holder and year.
	// The text is computed once at construction and never changes.
	Variant struct {
		kind   Kind
		holder string
		year   string
		text   string
	}

	systemClock struct{}
)

func (systemClock) Now() time.Time { return time.Now() }

// Name returns *name when set, otherwise the USER environment variable,
// otherwise the empty string.
func (r Resolver) Name(name *string) string {
	if name != nil {
		return *name
	}
	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(UserEnvVar); ok {
		return v
	}
	return ""
}

// Year returns *year when set, otherwise the current UTC calendar year.
func (r Resolver) Year(year *string) string {
	if year != nil {
		return *year
	}
	clock := r.Clock
	if clock == nil {
		clock = systemClock{}
	}
	return strconv.Itoa(clock.Now().UTC().Year())
}

// New resolves name and year and renders the license text for kind.
// It panics if kind is not a supported Kind; use ParseKind on untrusted input.
func (r Resolver) New(kind Kind, name, year *string) Variant {
	body, ok := kind.body()
	if !ok {
		panic((&InvalidKindError{Value: kind}).Error())
	}
	v := Variant{
		kind:   kind,
		holder: r.Name(name),
		year:   r.Year(year),
	}
	v.text = "Copyright " + v.year + " " + v.holder + "\n\n" + body
	return v
}

// New renders kind using the process environment and system clock for defaults.
func New(kind Kind, name, year *string) Variant {
	return Resolver{}.New(kind, name, year)
}

// NewMIT renders the MIT license.
func NewMIT(name, year *string) Variant { return New(KindMIT, name, year) }

// NewApache2 renders the Apache-2.0 file header.
func NewApache2(name, year *string) Variant { return New(KindApache2, name, year) }

// NewBSD2 renders the BSD-2-Clause license.
func NewBSD2(name, year *string) Variant { return New(KindBSD2, name, year) }

// NewBSD3 renders the BSD-3-Clause license.
func NewBSD3(name, year *string) Variant { return New(KindBSD3, name, year) }

// Render is shorthand for New(kind, name, year).Render().
func Render(kind Kind, name, year *string) string {
	return New(kind, name, year).Render()
}

// Kind returns the license kind.
func (v Variant) Kind() Kind { return v.kind }

// Holder returns the resolved copyright holder.
func (v Variant) Holder() string { return v.holder }

// Year returns the resolved copyright year.
func (v Variant) Year() string { return v.year }

// Render returns the full license text, starting with the copyright line.
func (v Variant) Render() string { return v.text }
