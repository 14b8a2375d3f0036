// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application. It
// detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	Width  int
	Height int

	// Application container
	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style
	Brand  lipgloss.Style

	// Output log
	CommandEcho lipgloss.Style
	Output      lipgloss.Style
	ErrorText   lipgloss.Style
	Notice      lipgloss.Style

	// Input area
	InputContainer lipgloss.Style
	InputPrompt    lipgloss.Style

	// Completion hints
	CompletionHint lipgloss.Style

	// Status bar
	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	StatusDesc   lipgloss.Style
	StatusAccent lipgloss.Style
}

// NewTheme builds a theme for the detected terminal. themeName is
// "dark", "light", or "auto"; auto defers to the terminal background.
func NewTheme(themeName string) *Theme {
	profile := termenv.ColorProfile()

	isDark := true
	switch themeName {
	case "light":
		isDark = false
	case "dark":
		isDark = true
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
		Width:        80,
		Height:       24,
	}

	t.App = lipgloss.NewStyle()

	t.Header = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.Title = lipgloss.NewStyle().
		Foreground(Phosphor).
		Bold(true)

	t.Brand = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.CommandEcho = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.Output = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose)

	t.Notice = lipgloss.NewStyle().
		Foreground(Amber).
		Italic(true)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Phosphor).
		Bold(true)

	t.CompletionHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.StatusKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.StatusDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.StatusAccent = lipgloss.NewStyle().
		Foreground(Phosphor)

	return t
}

// Resize records the current terminal dimensions.
func (t *Theme) Resize(width, height int) {
	t.Width = width
	t.Height = height
}
