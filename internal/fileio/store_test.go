// SPDX-License-Identifier: MPL-2.0

package fileio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// renameFailFs fails every Rename so the last step of an atomic write breaks.
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(string, string) error {
	return &os.LinkError{Op: "rename", Err: errors.New("device busy")}
}

func TestStore_ReadFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/src/main.go", []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(fs)

	got, err := s.ReadFile("/src/main.go")
	if err != nil {
		t.Fatalf("ReadFile() unexpected error: %v", err)
	}
	if got != "package main\n" {
		t.Errorf("ReadFile() = %q", got)
	}

	_, err = s.ReadFile("/src/missing.go")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("ReadFile(missing) error = %v, want ErrNotFound", err)
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T", err)
	}
	if ioErr.Op != "read" || ioErr.Path != "/src/missing.go" || ioErr.Kind != KindNotFound {
		t.Errorf("unexpected IOError fields: %+v", ioErr)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("IOError should keep the underlying os.ErrNotExist in its chain")
	}
	if errors.Is(err, ErrPermission) {
		t.Error("not-found error must not match ErrPermission")
	}
}

func TestStore_WriteFile(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/out", 0o755); err != nil {
		t.Fatal(err)
	}
	s := NewStore(fs)

	if err := s.WriteFile("/out/new.txt", "hello\n"); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	data, err := afero.ReadFile(fs, "/out/new.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("file content = %q", data)
	}
	info, err := fs.Stat("/out/new.txt")
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != defaultFileMode {
		t.Errorf("new file mode = %v, want %v", info.Mode().Perm(), defaultFileMode)
	}

	assertNoTempFiles(t, fs, "/out")
}

func TestStore_WriteFile_OverwritesAndKeepsMode(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/bin/run.sh", []byte("old content that is longer\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	s := NewStore(fs)

	if err := s.WriteFile("/bin/run.sh", "new\n"); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	data, _ := afero.ReadFile(fs, "/bin/run.sh")
	if string(data) != "new\n" {
		t.Errorf("file content = %q, want full replacement", data)
	}
	info, _ := fs.Stat("/bin/run.sh")
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestStore_WriteFile_PermissionDenied(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	s := NewStore(afero.NewReadOnlyFs(base))

	err := s.WriteFile("/etc/locked.txt", "data")
	if !errors.Is(err, ErrPermission) {
		t.Fatalf("WriteFile() error = %v, want ErrPermission", err)
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Kind != KindPermission || ioErr.Op != "write" {
		t.Errorf("unexpected error: %#v", err)
	}
	if exists, _ := afero.Exists(base, "/etc/locked.txt"); exists {
		t.Error("no file should have been created")
	}
}

func TestStore_WriteFile_NoPartialWrite(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/work/file.go", []byte("original\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(renameFailFs{Fs: base})

	err := s.WriteFile("/work/file.go", "replacement\n")
	if err == nil {
		t.Fatal("WriteFile() expected error when rename fails")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Kind != KindOther {
		t.Errorf("expected KindOther IOError, got %#v", err)
	}

	data, _ := afero.ReadFile(base, "/work/file.go")
	if string(data) != "original\n" {
		t.Errorf("target was modified: %q", data)
	}
	assertNoTempFiles(t, base, "/work")
}

func TestNewStore_DefaultsToOsFs(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	if _, ok := s.Fs().(*afero.OsFs); !ok {
		t.Fatalf("NewStore(nil) fs = %T, want *afero.OsFs", s.Fs())
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := s.WriteFile(path, "on disk"); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	got, err := s.ReadFile(path)
	if err != nil || got != "on disk" {
		t.Errorf("ReadFile() = %q, %v", got, err)
	}
}

func TestStore_WriteFile_FollowsSymlinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		// link builds the symlink chain inside dir and returns the path to write.
		link func(t *testing.T, dir, target string) string
	}{
		{
			name: "absolute link",
			link: func(t *testing.T, dir, target string) string {
				t.Helper()
				return mustSymlink(t, target, filepath.Join(dir, "link.go"))
			},
		},
		{
			name: "relative link",
			link: func(t *testing.T, dir, target string) string {
				t.Helper()
				return mustSymlink(t, filepath.Base(target), filepath.Join(dir, "link.go"))
			},
		},
		{
			name: "link to link",
			link: func(t *testing.T, dir, target string) string {
				t.Helper()
				first := mustSymlink(t, target, filepath.Join(dir, "first.go"))
				return mustSymlink(t, first, filepath.Join(dir, "second.go"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			target := filepath.Join(dir, "real.go")
			if err := os.WriteFile(target, []byte("old\n"), 0o600); err != nil {
				t.Fatal(err)
			}
			link := tt.link(t, dir, target)

			if err := NewStore(nil).WriteFile(link, "new\n"); err != nil {
				t.Fatalf("WriteFile() unexpected error: %v", err)
			}

			info, err := os.Lstat(link)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode()&os.ModeSymlink == 0 {
				t.Error("symlink was replaced by a regular file")
			}
			data, err := os.ReadFile(target)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != "new\n" {
				t.Errorf("target content = %q, want %q", data, "new\n")
			}
			targetInfo, err := os.Stat(target)
			if err != nil {
				t.Fatal(err)
			}
			if targetInfo.Mode().Perm() != 0o600 {
				t.Errorf("target mode = %v, want 0600", targetInfo.Mode().Perm())
			}
			assertNoTempFiles(t, afero.NewOsFs(), dir)
		})
	}
}

func TestStore_WriteFile_SymlinkCycle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.go")
	b := filepath.Join(dir, "b.go")
	mustSymlink(t, b, a)
	mustSymlink(t, a, b)

	err := NewStore(nil).WriteFile(a, "data")
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Fatalf("WriteFile() error = %v, want write IOError", err)
	}
}

func mustSymlink(t *testing.T, oldname, newname string) string {
	t.Helper()
	if err := os.Symlink(oldname, newname); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	return newname
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	for kind, want := range map[ErrorKind]string{
		KindNotFound:   "not-found",
		KindPermission: "permission",
		KindOther:      "io",
	} {
		if kind.String() != want {
			t.Errorf("%d.String() = %q, want %q", kind, kind.String(), want)
		}
	}
}

func assertNoTempFiles(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}
