// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

// =============================================================================
// SURFACE
// =============================================================================

// Surface is the display the engine writes to. The bubbletea view and
// the line-mode REPL both implement it; the engine never talks to a
// concrete UI type.
type Surface interface {
	// AppendEntry adds a rendered block to the output log.
	AppendEntry(Entry)

	// TrimLog drops the oldest entries once the log exceeds the
	// configured capacity.
	TrimLog()

	// ScrollToBottom follows fresh output.
	ScrollToBottom()

	// ScrollToTop jumps to the start of the log for document-like
	// output.
	ScrollToTop()

	// ClearInput empties the input line after a submission.
	ClearInput()
}

// nopSurface discards everything. Used when the engine runs before a
// display is attached.
type nopSurface struct{}

func (nopSurface) AppendEntry(Entry) {}
func (nopSurface) TrimLog()          {}
func (nopSurface) ScrollToBottom()   {}
func (nopSurface) ScrollToTop()      {}
func (nopSurface) ClearInput()       {}
