// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for validating CUE input: a size guard
// for files read from disk and error formatting that turns CUE error paths into
// JSON-path notation (e.g. "comment.style: conflicting values").
package cueutil
