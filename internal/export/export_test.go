// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testTranscript() *Transcript {
	return &Transcript{
		Hostname:   "neuos",
		Version:    "1.0.0",
		ExportedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Commands:   []string{"help", "ls /home", "echo done"},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{"md", ".md", false},
		{"markdown", ".md", false},
		{"json", ".json", false},
		{"txt", ".txt", false},
		{"text", ".txt", false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		exp, err := ForFormat(tc.format)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ForFormat(%q) should fail", tc.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForFormat(%q): %v", tc.format, err)
			continue
		}
		if exp.FileExtension() != tc.wantExt {
			t.Errorf("ForFormat(%q).FileExtension() = %q, want %q",
				tc.format, exp.FileExtension(), tc.wantExt)
		}
	}
}

func TestMarkdownExport(t *testing.T) {
	out, err := (&MarkdownExporter{}).Export(testTranscript())
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, "# neuOS session history")
	require.Contains(t, s, "$ ls /home")
	require.Contains(t, s, "```console")
}

func TestMarkdownExportEmpty(t *testing.T) {
	tr := testTranscript()
	tr.Commands = nil

	out, err := (&MarkdownExporter{}).Export(tr)
	require.NoError(t, err)
	require.Contains(t, string(out), "No commands recorded")
	require.NotContains(t, string(out), "```")
}

func TestJSONExportRoundTrip(t *testing.T) {
	out, err := (&JSONExporter{}).Export(testTranscript())
	require.NoError(t, err)

	var got Transcript
	require.NoError(t, json.Unmarshal(out, &got))
	require.Equal(t, "neuos", got.Hostname)
	require.Equal(t, []string{"help", "ls /home", "echo done"}, got.Commands)
}

func TestTextExport(t *testing.T) {
	out, err := (&TextExporter{}).Export(testTranscript())
	require.NoError(t, err)
	require.Equal(t, "help\nls /home\necho done\n", string(out))
}

func TestTextExportEmpty(t *testing.T) {
	tr := testTranscript()
	tr.Commands = nil

	out, err := (&TextExporter{}).Export(tr)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportToFile(testTranscript(), &TextExporter{}, dir)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))
	require.True(t, strings.HasSuffix(path, ".txt"), "path %q should end in .txt", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "echo done")
}
