// SPDX-License-Identifier: MPL-2.0

// Package fileio reads input files and writes composed output through an afero
// filesystem. Writes are atomic: the destination either receives the complete
// content or is left untouched.
package fileio
