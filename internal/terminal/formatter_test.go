// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuos/neuos-tui/internal/commands"
)

func TestTranslateMarkup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<b>bold</b>", "**bold**"},
		{"<i>slanted</i>", "*slanted*"},
		{"<code>x := 1</code>", "`x := 1`"},
		{"line<br>break", "line\nbreak"},
		{"line<br/>break", "line\nbreak"},
		{"<div class=\"x\">inner</div>", "inner"},
		{"already **markdown**", "already **markdown**"},
		{"a < b", "a < b"},
	}

	for _, tc := range tests {
		if got := translateMarkup(tc.input); got != tc.want {
			t.Errorf("translateMarkup(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRenderText(t *testing.T) {
	f := NewFormatter(80)

	entry := f.Render(commands.Text("hi"), "echo")
	require.Equal(t, EntryOutput, entry.Kind)
	require.Equal(t, "hi", entry.Body)
	require.False(t, entry.ScrollTop)
	require.NotEmpty(t, entry.ID)
}

func TestRenderList(t *testing.T) {
	f := NewFormatter(80)

	entry := f.Render(commands.List("a", "b", "c"), "ls")
	require.Equal(t, "a\nb\nc", entry.Body)
}

func TestRenderFailure(t *testing.T) {
	f := NewFormatter(80)

	entry := f.Render(commands.Failure(errors.New("no such file")), "cat")
	require.Equal(t, EntryError, entry.Kind)
	require.Contains(t, entry.Body, "no such file")
}

func TestRenderStructured(t *testing.T) {
	f := NewFormatter(80)

	entry := f.Render(commands.Structured(map[string]any{"uptime": 42}), "status")
	require.Equal(t, EntryOutput, entry.Kind)
	// ANSI sequences may surround tokens, but the token text survives.
	require.Contains(t, entry.Body, "uptime")
	require.Contains(t, entry.Body, "42")
}

func TestDocumentOutputScrollsToTop(t *testing.T) {
	f := NewFormatter(80)
	require.True(t, f.AutoScroll())

	entry := f.Render(commands.Markup("# Resume\n\nbody"), "resume")
	require.True(t, entry.ScrollTop)

	// Auto-scroll stays suppressed during the cool-down.
	require.False(t, f.AutoScroll())
}

func TestNonDocumentOutputKeepsAutoScroll(t *testing.T) {
	f := NewFormatter(80)

	entry := f.Render(commands.Text("ok"), "echo")
	require.False(t, entry.ScrollTop)
	require.True(t, f.AutoScroll())
}

func TestRenderMarkupStripsUnknownTags(t *testing.T) {
	f := NewFormatter(80)

	entry := f.Render(commands.Markup("<blink>hi</blink>"), "curl")
	require.NotContains(t, entry.Body, "<blink>")
	require.Contains(t, stripANSI(entry.Body), "hi")
}

// stripANSI removes escape sequences so assertions can look at the
// plain text glamour produced.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
