// SPDX-License-Identifier: MPL-2.0

package license

import (
	"errors"
	"slices"
	"testing"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"mit", KindMIT, false},
		{"MIT", KindMIT, false},
		{" apache2 ", KindApache2, false},
		{"Apache-2.0", KindApache2, false},
		{"apache", KindApache2, false},
		{"bsd-2-clause", KindBSD2, false},
		{"BSD2", KindBSD2, false},
		{"bsd-3-clause", KindBSD3, false},
		{"bsd3", KindBSD3, false},
		{"gpl3", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error", tt.input)
				}
				if !errors.Is(err, ErrInvalidKind) {
					t.Errorf("error should wrap ErrInvalidKind, got %v", err)
				}
				var kindErr *InvalidKindError
				if !errors.As(err, &kindErr) || kindErr.Value != Kind(tt.input) {
					t.Errorf("expected *InvalidKindError{Value: %q}, got %#v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_IsValid(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		if ok, errs := k.IsValid(); !ok || len(errs) != 0 {
			t.Errorf("%s.IsValid() = %v, %v", k, ok, errs)
		}
		if _, ok := k.body(); !ok {
			t.Errorf("%s has no license body", k)
		}
		if k.Title() == string(k) {
			t.Errorf("%s has no display title", k)
		}
	}

	ok, errs := Kind("wtfpl").IsValid()
	if ok || len(errs) != 1 {
		t.Fatalf("IsValid() = %v, %v; want false with one error", ok, errs)
	}
	if !errors.Is(errs[0], ErrInvalidKind) {
		t.Errorf("error should wrap ErrInvalidKind")
	}
}

func TestKind_Aliases(t *testing.T) {
	t.Parallel()

	got := KindBSD3.Aliases()
	want := []string{"bsd-3", "bsd-3-clause"}
	if !slices.Equal(got, want) {
		t.Errorf("Aliases() = %v, want %v", got, want)
	}
	if len(KindMIT.Aliases()) != 0 {
		t.Errorf("MIT should have no aliases, got %v", KindMIT.Aliases())
	}
}
