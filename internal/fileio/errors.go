// SPDX-License-Identifier: MPL-2.0

package fileio

import (
	"errors"
	"fmt"
	iofs "io/fs"
)

const (
	// KindOther covers I/O failures that are neither not-found nor permission errors.
	KindOther ErrorKind = iota
	// KindNotFound means the path does not exist.
	KindNotFound
	// KindPermission means access to the path was denied.
	KindPermission
)

var (
	// ErrNotFound matches IOErrors of KindNotFound via errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrPermission matches IOErrors of KindPermission via errors.Is.
	ErrPermission = errors.New("permission denied")
)

type (
	// ErrorKind classifies filesystem failures.
	ErrorKind int

	// IOError reports a failed read or write. The underlying error is kept
	// unmodified in Err.
	IOError struct {
		Op   string
		Path string
		Kind ErrorKind
		Err  error
	}
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindPermission:
		return "permission"
	default:
		return "io"
	}
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *IOError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrPermission:
		return e.Kind == KindPermission
	default:
		return false
	}
}

func newIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Kind: classify(err), Err: err}
}

func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, iofs.ErrPermission):
		return KindPermission
	default:
		return KindOther
	}
}
