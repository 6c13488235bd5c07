// SPDX-License-Identifier: MPL-2.0

package fileio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	defaultFileMode os.FileMode = 0o644

	// maxSymlinkHops bounds symlink resolution so link cycles fail instead of looping.
	maxSymlinkHops = 40
)

// Store performs whole-file reads and atomic whole-file writes.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store over fs. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// Fs returns the underlying filesystem.
func (s *Store) Fs() afero.Fs { return s.fs }

// ReadFile returns the full contents of path.
func (s *Store) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", newIOError("read", path, err)
	}
	return string(data), nil
}

// WriteFile replaces the contents of path with data. The data is written to a
// temporary file beside path and renamed into place, so a failure leaves the
// previous file (or its absence) intact. An existing file's mode is kept.
//
// When path is a symlink the link is left in place and its final target is
// replaced instead.
func (s *Store) WriteFile(path, data string) error {
	target, err := s.resolveLinks(path)
	if err != nil {
		return newIOError("write", path, err)
	}
	if target != path {
		slog.Debug("writing through symlink", "path", path, "target", target)
	}

	mode := defaultFileMode
	if info, err := s.fs.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return newIOError("write", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(data); err != nil {
		_ = tmp.Close()
		s.discard(tmpName)
		return newIOError("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		s.discard(tmpName)
		return newIOError("write", path, err)
	}
	if err := s.fs.Chmod(tmpName, mode); err != nil {
		s.discard(tmpName)
		return newIOError("write", path, err)
	}
	if err := s.fs.Rename(tmpName, target); err != nil {
		s.discard(tmpName)
		return newIOError("write", path, err)
	}
	return nil
}

// resolveLinks follows path through any chain of symlinks and returns the
// final target. Filesystems without symlink support return path unchanged,
// as does a path that does not exist yet.
func (s *Store) resolveLinks(path string) (string, error) {
	lstater, ok := s.fs.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := s.fs.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	current := path
	for range maxSymlinkHops {
		info, lstatCalled, err := lstater.LstatIfPossible(current)
		if err != nil || !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}
		dest, err := reader.ReadlinkIfPossible(current)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(current), dest)
		}
		current = dest
	}
	return "", fmt.Errorf("too many levels of symbolic links: %s", path)
}

func (s *Store) discard(name string) {
	if err := s.fs.Remove(name); err != nil {
		slog.Debug("failed to remove temporary file", "path", name, "error", err)
	}
}
