// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuos/neuos-tui/internal/commands"
	"github.com/neuos/neuos-tui/internal/history"
	"github.com/neuos/neuos-tui/internal/terminal"
	"github.com/neuos/neuos-tui/internal/ui/styles"
)

// =============================================================================
// TERMINAL MODEL
// =============================================================================

// Model is the Bubble Tea model for the terminal view.
type Model struct {
	theme  *styles.Theme
	keyMap KeyMap

	// Dimensions
	width  int
	height int
	ready  bool

	// Engine wiring
	engine    *terminal.Engine
	history   *history.Manager
	completer *commands.Completer

	// Output log
	entries     []terminal.Entry
	logCapacity int

	// UI components
	viewport viewport.Model
	input    textinput.Model

	// History navigation. live holds the in-progress line while the
	// user walks through older entries.
	navigating bool
	live       string

	// Completion hint line under the input.
	completionHint string

	// Status
	version  string
	hostname string
}

// Options configures a new terminal model.
type Options struct {
	Theme       *styles.Theme
	Engine      *terminal.Engine
	History     *history.Manager
	Completer   *commands.Completer
	LogCapacity int
	Version     string
	Hostname    string
}

// New creates a terminal model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type help to get started"
	ti.CharLimit = 1024
	ti.Focus()

	vp := viewport.New(80, 20)
	vp.SetContent("")

	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme("auto")
	}
	capacity := opts.LogCapacity
	if capacity <= 0 {
		capacity = 500
	}
	hostname := opts.Hostname
	if hostname == "" {
		hostname = "neuos"
	}

	return Model{
		theme:       theme,
		keyMap:      DefaultKeyMap(),
		engine:      opts.Engine,
		history:     opts.History,
		completer:   opts.Completer,
		logCapacity: capacity,
		viewport:    vp,
		input:       ti,
		version:     opts.Version,
		hostname:    hostname,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case appendEntryMsg:
		m.entries = append(m.entries, msg.entry)
		if over := len(m.entries) - m.logCapacity; over > 0 {
			m.entries = m.entries[over:]
		}
		m.rebuildContent()
		return m, nil

	case scrollBottomMsg:
		m.viewport.GotoBottom()
		return m, nil

	case scrollTopMsg:
		m.viewport.GotoTop()
		return m, nil

	case clearInputMsg:
		m.input.SetValue("")
		m.navigating = false
		m.live = ""
		m.completionHint = ""
		return m, nil

	case clearLogMsg:
		m.entries = nil
		m.rebuildContent()
		return m, nil

	case setThemeMsg:
		m.theme = styles.NewTheme(msg.name)
		m.theme.Resize(m.width, m.height)
		m.rebuildContent()
		return m, nil

	case quitRequestMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.Resize(msg.Width, msg.Height)

	// Header, input box, and status bar take up the rest.
	contentHeight := msg.Height - 6
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = contentHeight
	m.input.Width = msg.Width - 8

	if m.engine != nil {
		m.engine.Formatter().SetWidth(msg.Width - 4)
	}

	m.ready = true
	m.rebuildContent()
	m.viewport.GotoBottom()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Submit):
		line := m.input.Value()
		m.completionHint = ""
		m.navigating = false
		m.live = ""
		if m.engine != nil {
			// The engine may block on slow commands; keep the UI loop
			// free and let results arrive as messages.
			go m.engine.Submit(line)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.HistoryUp):
		if m.history == nil {
			return m, nil
		}
		if !m.navigating {
			m.live = m.input.Value()
			m.navigating = true
		}
		val := m.history.Navigate(history.Older, m.live)
		m.input.SetValue(val)
		m.input.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keyMap.HistoryDown):
		if m.history == nil || !m.navigating {
			return m, nil
		}
		val := m.history.Navigate(history.Newer, m.live)
		m.input.SetValue(val)
		m.input.CursorEnd()
		if val == m.live {
			m.navigating = false
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Complete):
		if m.completer == nil {
			return m, nil
		}
		res := m.completer.Complete(m.input.Value())
		if res.Filled != "" {
			m.input.SetValue(res.Filled)
			m.input.CursorEnd()
			m.completionHint = ""
		} else if len(res.Candidates) > 0 {
			m.completionHint = strings.Join(res.Candidates, "  ")
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Clear):
		m.entries = nil
		m.rebuildContent()
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Any other key edits the input line; a fresh keystroke ends
	// history navigation.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.navigating && msg.Type == tea.KeyRunes {
		m.navigating = false
		if m.history != nil {
			m.history.ResetCursor()
		}
	}
	m.completionHint = ""
	return m, cmd
}

// rebuildContent re-renders the viewport from the entry log.
func (m *Model) rebuildContent() {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		switch e.Kind {
		case terminal.EntryCommand:
			b.WriteString(m.theme.CommandEcho.Render(e.Body))
		case terminal.EntryError:
			b.WriteString(styles.RenderError(e.Body))
		case terminal.EntryNotice:
			b.WriteString(m.theme.Notice.Render(e.Body))
		default:
			b.WriteString(e.Body)
		}
	}
	m.viewport.SetContent(b.String())
}
