// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completer provides Tab completion against the registry. Completion is
// prefix-based over command names and aliases; when the cursor sits in
// an argument position nothing is completed (the faked commands take
// free-form arguments).
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer over the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Completion is the outcome of one Tab press.
type Completion struct {
	// Filled is the replacement input line when exactly one name
	// matched; empty otherwise.
	Filled string

	// Candidates lists the matching names when more than one matched.
	Candidates []string
}

// Complete completes the command name at the start of input. Only the
// first token is completed, and only while it is still being typed
// (no trailing space yet).
func (c *Completer) Complete(input string) Completion {
	if c.registry == nil {
		return Completion{}
	}

	if strings.TrimSpace(input) == "" || strings.HasSuffix(input, " ") {
		return Completion{}
	}

	// Complete only the final chain segment's command name, so
	// "ls && ec<Tab>" still works.
	segments := ParseChain(input)
	if len(segments) == 0 {
		return Completion{}
	}
	last := segments[len(segments)-1]
	if strings.ContainsAny(last.Text, " \t") {
		// Cursor is in an argument position; nothing to complete.
		return Completion{}
	}
	prefix := last.Text
	base := input[:strings.LastIndex(input, last.Text)]

	lowered := strings.ToLower(prefix)
	var matches []string
	for _, name := range c.registry.Names() {
		if strings.HasPrefix(name, lowered) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return Completion{}
	case 1:
		return Completion{Filled: base + matches[0] + " "}
	default:
		return Completion{Candidates: matches}
	}
}
