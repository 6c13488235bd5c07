// SPDX-License-Identifier: MPL-2.0

// Package header composes a license text with existing file content, wrapping
// each license line in a comment prefix and suffix.
package header
