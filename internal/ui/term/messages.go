// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuos/neuos-tui/internal/terminal"
)

// =============================================================================
// ENGINE MESSAGES
// =============================================================================

// Engine callbacks arrive on the engine goroutine, so they are
// forwarded into the Bubble Tea update loop as messages instead of
// mutating the model directly.

type appendEntryMsg struct {
	entry terminal.Entry
}

type scrollBottomMsg struct{}

type scrollTopMsg struct{}

type clearInputMsg struct{}

type clearLogMsg struct{}

type setThemeMsg struct {
	name string
}

type quitRequestMsg struct{}

// =============================================================================
// TEA SURFACE
// =============================================================================

// sender is the slice of *tea.Program the surface needs. Narrowed for
// tests.
type sender interface {
	Send(tea.Msg)
}

// TeaSurface bridges the engine to a running Bubble Tea program. It
// implements terminal.Surface and commands' Control, translating each
// callback into a message send.
type TeaSurface struct {
	program sender
}

// NewSurface wraps a running program.
func NewSurface(program sender) *TeaSurface {
	return &TeaSurface{program: program}
}

func (s *TeaSurface) AppendEntry(e terminal.Entry) { s.program.Send(appendEntryMsg{entry: e}) }

// TrimLog is handled inside the model on every append, so the message
// form is a no-op.
func (s *TeaSurface) TrimLog() {}

func (s *TeaSurface) ScrollToBottom() { s.program.Send(scrollBottomMsg{}) }
func (s *TeaSurface) ScrollToTop()    { s.program.Send(scrollTopMsg{}) }
func (s *TeaSurface) ClearInput()     { s.program.Send(clearInputMsg{}) }

// ClearLog implements the control hook behind the clear command.
func (s *TeaSurface) ClearLog() { s.program.Send(clearLogMsg{}) }

// SetTheme implements the control hook behind the theme command.
func (s *TeaSurface) SetTheme(name string) { s.program.Send(setThemeMsg{name: name}) }

// Quit implements the control hook behind exit and friends.
func (s *TeaSurface) Quit() { s.program.Send(quitRequestMsg{}) }
