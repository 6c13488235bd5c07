// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/lichead/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/lichead/config.cue on macOS, %APPDATA%\lichead\config.cue
// on Windows). A config.toml in the same place is accepted as well. Every file is
// validated against the embedded CUE schema (config_schema.cue) before it is merged,
// and LICHEAD_* environment variables override file values.
package config
