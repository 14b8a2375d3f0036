// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/glamour"

	"github.com/neuos/neuos-tui/internal/commands"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// scrollCooldown is how long auto-scroll-to-bottom stays suppressed
// after document-like output scrolled the view to the top.
const scrollCooldown = 2 * time.Second

// documentCommands name the commands whose output reads top to bottom.
// Their entries carry ScrollTop so the view jumps to the start instead
// of chasing the tail.
var documentCommands = map[string]bool{
	"help":      true,
	"resume":    true,
	"cv":        true,
	"show":      true,
	"skills":    true,
	"codex":     true,
	"demoscene": true,
}

// =============================================================================
// FORMATTER
// =============================================================================

// Formatter turns command results into rendered log entries. Markup
// results go through glamour, structured results through chroma, and
// everything else stays plain text.
type Formatter struct {
	mu            sync.Mutex
	renderer      *glamour.TermRenderer
	width         int
	suppressUntil time.Time
}

// NewFormatter creates a formatter wrapping at the given width.
func NewFormatter(width int) *Formatter {
	f := &Formatter{}
	f.SetWidth(width)
	return f
}

// SetWidth rebuilds the markdown renderer for a new wrap width. Called
// on terminal resize.
func (f *Formatter) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width = width
	if err != nil {
		// Fall back to plain text if renderer initialization fails.
		f.renderer = nil
		return
	}
	f.renderer = renderer
}

// Render converts a result into a log entry. name is the resolved
// command name and decides the scroll direction for document output.
func (f *Formatter) Render(res commands.Result, name string) Entry {
	switch res.Kind {
	case commands.KindFailure:
		msg := "error"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return newEntry(EntryError, msg)

	case commands.KindMarkup:
		entry := newEntry(EntryOutput, f.renderMarkup(res.Text))
		if documentCommands[name] {
			entry.ScrollTop = true
			f.suppressScroll()
		}
		return entry

	case commands.KindList:
		return newEntry(EntryOutput, strings.Join(res.List, "\n"))

	case commands.KindStructured:
		return newEntry(EntryOutput, f.renderStructured(res.Value))

	default:
		entry := newEntry(EntryOutput, res.Text)
		if documentCommands[name] {
			entry.ScrollTop = true
			f.suppressScroll()
		}
		return entry
	}
}

// AutoScroll reports whether the view should follow fresh output to
// the bottom right now.
func (f *Formatter) AutoScroll() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return time.Now().After(f.suppressUntil)
}

func (f *Formatter) suppressScroll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suppressUntil = time.Now().Add(scrollCooldown)
}

// =============================================================================
// MARKUP RENDERING
// =============================================================================

var (
	boldPattern   = regexp.MustCompile(`(?s)<b>(.*?)</b>`)
	italicPattern = regexp.MustCompile(`(?s)<i>(.*?)</i>`)
	codePattern   = regexp.MustCompile(`(?s)<code>(.*?)</code>`)
	breakPattern  = regexp.MustCompile(`<br\s*/?>`)
	tagPattern    = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?>`)
)

// renderMarkup renders markup text for terminal display. Inline tags
// are translated to markdown first so glamour can style them; unknown
// tags are stripped. Returns the translated text unstyled when the
// renderer is unavailable.
func (f *Formatter) renderMarkup(text string) string {
	md := translateMarkup(text)

	f.mu.Lock()
	renderer := f.renderer
	f.mu.Unlock()
	if renderer == nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(rendered, "\n")
}

// translateMarkup converts the small inline tag set commands emit into
// markdown. Text that is already markdown passes through untouched.
func translateMarkup(text string) string {
	out := boldPattern.ReplaceAllString(text, "**$1**")
	out = italicPattern.ReplaceAllString(out, "*$1*")
	out = codePattern.ReplaceAllString(out, "`$1`")
	out = breakPattern.ReplaceAllString(out, "\n")
	return tagPattern.ReplaceAllString(out, "")
}

// =============================================================================
// STRUCTURED RENDERING
// =============================================================================

// renderStructured pretty-prints a structured value as highlighted
// JSON. Falls back to plain indented JSON, then to a stub, as
// rendering layers fail.
func (f *Formatter) renderStructured(value any) string {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "(unrenderable value)"
	}
	return highlightJSON(string(raw))
}

// highlightJSON applies ANSI syntax highlighting via chroma. Returns
// the input unchanged when any stage fails.
func highlightJSON(src string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return src
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return src
	}

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}
	return strings.TrimRight(buf.String(), "\n")
}
