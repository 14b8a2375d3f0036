// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
)

// MarkdownExporter renders a transcript as a Markdown document.
type MarkdownExporter struct{}

func (e *MarkdownExporter) FileExtension() string { return ".md" }

func (e *MarkdownExporter) Export(t *Transcript) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# neuOS session history\n\n")
	fmt.Fprintf(&b, "- Host: `%s`\n", t.Hostname)
	fmt.Fprintf(&b, "- Version: %s\n", t.Version)
	fmt.Fprintf(&b, "- Exported: %s\n\n", t.ExportedAt.Format("2006-01-02 15:04:05"))

	if len(t.Commands) == 0 {
		b.WriteString("_No commands recorded._\n")
		return []byte(b.String()), nil
	}

	b.WriteString("```console\n")
	for _, cmd := range t.Commands {
		fmt.Fprintf(&b, "$ %s\n", cmd)
	}
	b.WriteString("```\n")

	return []byte(b.String()), nil
}
