// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import "strings"

// TextExporter renders a transcript as bare lines, one command per
// line, matching the format a shell history file would use.
type TextExporter struct{}

func (e *TextExporter) FileExtension() string { return ".txt" }

func (e *TextExporter) Export(t *Transcript) ([]byte, error) {
	if len(t.Commands) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(t.Commands, "\n") + "\n"), nil
}
