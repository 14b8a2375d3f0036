// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import "encoding/json"

// JSONExporter renders a transcript as indented JSON, suitable for
// piping into jq or re-importing elsewhere.
type JSONExporter struct{}

func (e *JSONExporter) FileExtension() string { return ".json" }

func (e *JSONExporter) Export(t *Transcript) ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
