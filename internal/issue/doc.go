// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the path involved and a list of
// suggestions. The catalog in issue.go holds longer Markdown guidance, rendered
// with glamour, for the failures a user can fix themselves (missing input files,
// permissions, unknown license names, broken config).
package issue
