// SPDX-License-Identifier: MPL-2.0

package header

import "strings"

type (
	// Option configures Compose.
	Option func(*options)

	options struct {
		prefix string
		suffix string
	}
)

// WithPrefix sets the string placed before every non-empty license line.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithSuffix sets the string placed after every non-empty license line.
func WithSuffix(suffix string) Option {
	return func(o *options) { o.suffix = suffix }
}

// WithStyle sets both prefix and suffix from a comment style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.prefix, o.suffix = s.Delimiters()
	}
}

// Compose returns the header block for licenseText followed by content.
//
// Each non-empty license line is wrapped in the prefix and suffix; empty lines
// are emitted bare so the header never carries whitespace-only lines. Every
// license line, including the last, is terminated with "\n". Content is
// appended byte for byte.
func Compose(licenseText, content string, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	b.Grow(len(licenseText) + len(content) + 64)
	for _, line := range Lines(licenseText) {
		if line != "" {
			b.WriteString(o.prefix)
			b.WriteString(line)
			b.WriteString(o.suffix)
		}
		b.WriteByte('\n')
	}
	b.WriteString(content)
	return b.String()
}

// Lines splits text on "\n", dropping one trailing "\r" per line and the empty
// element after a final newline.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
