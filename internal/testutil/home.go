// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetConfigHome points the platform's per-user configuration root at dir and
// returns a function that restores the previous value.
//
// Platform handling:
//   - Windows: sets APPDATA
//   - macOS: sets HOME (config lives under Library/Application Support)
//   - Linux/others: sets XDG_CONFIG_HOME
//
// Usage:
//
//	t.Cleanup(testutil.SetConfigHome(t, t.TempDir()))
func SetConfigHome(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "APPDATA", dir)
	case "darwin":
		return MustSetenv(t, "HOME", dir)
	default:
		return MustSetenv(t, "XDG_CONFIG_HOME", dir)
	}
}

// ConfigHomeSubdir returns the directory below a SetConfigHome root that holds
// per-application config directories on the current platform.
func ConfigHomeSubdir() []string {
	if runtime.GOOS == "darwin" {
		return []string{"Library", "Application Support"}
	}
	return nil
}
