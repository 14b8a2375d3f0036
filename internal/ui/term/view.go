// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/neuos/neuos-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full terminal screen: header, output log, input
// box, completion hint, status bar.
func (m Model) View() string {
	if !m.ready {
		return "starting neuos..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.theme.Brand.Render("neuOS") + m.theme.Title.Render(" terminal")
	version := ""
	if m.version != "" {
		version = m.theme.StatusDesc.Render("v" + m.version)
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(version) - 2
	if gap < 1 {
		gap = 1
	}
	line := title + spacer(gap) + version
	return m.theme.Header.Width(m.width).Render(line)
}

func (m Model) renderInput() string {
	box := m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
	if m.completionHint == "" {
		return box
	}
	// Truncate before styling; a long candidate list must not wrap and
	// push the status bar off screen.
	hint := m.theme.CompletionHint.Render(util.TruncateWidth(m.completionHint, m.width-2))
	return box + "\n" + hint
}

func (m Model) renderStatusBar() string {
	var parts []string
	for _, binding := range m.keyMap.ShortHelp() {
		help := binding.Help()
		parts = append(parts,
			m.theme.StatusKey.Render(help.Key)+" "+m.theme.StatusDesc.Render(help.Desc))
	}
	left := strings.Join(parts, "  ")

	// The hostname is plain text at this point, so its width is measured
	// before styling.
	host := util.TruncateWidth(m.hostname, m.width/4)
	gap := m.width - lipgloss.Width(left) - util.StringWidth(host) - 2
	if gap < 1 {
		gap = 1
	}
	right := m.theme.StatusAccent.Render(host)
	return m.theme.StatusBar.Width(m.width).Render(left + spacer(gap) + right)
}

// spacer returns a run of spaces filling the given display width.
func spacer(width int) string {
	return util.PadRight("", width)
}
