// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes session transcripts to disk. The terminal keeps
// its history in the state store; this package turns that history into
// a file a user can keep, in Markdown, JSON, or plain text.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/neuos/neuos-tui/internal/util"
)

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the exportable view of a terminal session.
type Transcript struct {
	Hostname   string    `json:"hostname"`
	Version    string    `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Commands   []string  `json:"commands"`
}

// =============================================================================
// EXPORTERS
// =============================================================================

// Exporter converts a transcript to one output format.
type Exporter interface {
	// Export renders the transcript in the target format.
	Export(t *Transcript) ([]byte, error)

	// FileExtension returns the extension for the format (e.g. ".md").
	FileExtension() string
}

// ForFormat returns the exporter for a format name. Recognized names
// are "md"/"markdown", "json", and "txt"/"text".
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "txt", "text":
		return &TextExporter{}, nil
	}
	return nil, fmt.Errorf("unknown export format %q (want md, json, or txt)", format)
}

// =============================================================================
// FILE OUTPUT
// =============================================================================

// ExportToFile renders the transcript and writes it under dir with a
// timestamped filename. Returns the path written.
func ExportToFile(t *Transcript, exporter Exporter, dir string) (string, error) {
	content, err := exporter.Export(t)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	stamp := t.ExportedAt.Format("20060102_150405")
	name := fmt.Sprintf("history_%s%s", stamp, exporter.FileExtension())
	path := filepath.Join(dir, name)

	if err := util.AtomicWriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
