// SPDX-License-Identifier: MPL-2.0

package header

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const twoParagraphs = "Copyright 2024 Jane Doe\n\nPermission is hereby granted."

func TestCompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		license string
		content string
		opts    []Option
		want    string
	}{
		{
			name:    "hash prefix skips blank lines",
			license: twoParagraphs,
			content: "echo hi\n",
			opts:    []Option{WithPrefix("# ")},
			want:    "# Copyright 2024 Jane Doe\n\n# Permission is hereby granted.\necho hi\n",
		},
		{
			name:    "prefix and suffix",
			license: twoParagraphs,
			content: "body {}\n",
			opts:    []Option{WithPrefix("/* "), WithSuffix(" */")},
			want:    "/* Copyright 2024 Jane Doe */\n\n/* Permission is hereby granted. */\nbody {}\n",
		},
		{
			name:    "no options",
			license: "a\n\nb",
			content: "c",
			want:    "a\n\nb\nc",
		},
		{
			name:    "empty content",
			license: "a",
			content: "",
			opts:    []Option{WithPrefix("// ")},
			want:    "// a\n",
		},
		{
			name:    "empty license",
			license: "",
			content: "package main\n",
			opts:    []Option{WithPrefix("// ")},
			want:    "package main\n",
		},
		{
			name:    "trailing newline in license is not doubled",
			license: "a\nb\n",
			content: "x",
			want:    "a\nb\nx",
		},
		{
			name:    "crlf license lines",
			license: "a\r\n\r\nb",
			content: "x",
			opts:    []Option{WithPrefix("; ")},
			want:    "; a\n\n; b\nx",
		},
		{
			name:    "style option",
			license: "a\n\nb",
			content: "",
			opts:    []Option{WithStyle(StyleDash)},
			want:    "-- a\n\n-- b\n",
		},
		{
			name:    "later option overrides style",
			license: "a",
			content: "",
			opts:    []Option{WithStyle(StyleBlock), WithSuffix("")},
			want:    "/* a\n",
		},
		{
			name:    "whitespace-only line is wrapped",
			license: "a\n  \nb",
			content: "",
			opts:    []Option{WithPrefix("#")},
			want:    "#a\n#  \n#b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Compose(tt.license, tt.content, tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompose_BlankLinesCarryNoPrefix(t *testing.T) {
	t.Parallel()

	out := Compose(twoParagraphs, "", WithPrefix("# "))
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		switch {
		case line == "":
		case strings.TrimSpace(line) == "#":
			t.Errorf("line %d is a bare comment marker: %q", i, line)
		case !strings.HasPrefix(line, "# "):
			t.Errorf("line %d is missing the prefix: %q", i, line)
		}
	}
}

func TestCompose_ContentPassThrough(t *testing.T) {
	t.Parallel()

	contents := []string{
		"",
		"\n",
		"#!/bin/sh\nset -eu\n",
		"no trailing newline",
		"\x00binary\xff\xfe\r\n",
		"  leading space\n\n\n",
	}
	for _, content := range contents {
		out := Compose(twoParagraphs, content, WithPrefix("// "), WithSuffix(" ."))
		if !strings.HasSuffix(out, content) {
			t.Errorf("content %q not preserved at end of %q", content, out)
		}
		header := strings.TrimSuffix(out, content)
		if want := Compose(twoParagraphs, "", WithPrefix("// "), WithSuffix(" .")); header != want {
			t.Errorf("header block changed with content %q", content)
		}
	}
}

func TestCompose_AbsentOptionsEqualEmpty(t *testing.T) {
	t.Parallel()

	a := Compose(twoParagraphs, "x\n")
	b := Compose(twoParagraphs, "x\n", WithPrefix(""), WithSuffix(""))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("absent options differ from empty options:\n%s", diff)
	}
}

func TestLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Lines(tt.in)); diff != "" {
			t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
