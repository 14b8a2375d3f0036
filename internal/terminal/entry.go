// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal implements the neuOS command dispatch engine: the
// single-flight execution loop, the chain short-circuit policy, the
// submission queue, and the result formatter.
package terminal

import (
	"github.com/google/uuid"
)

// =============================================================================
// LOG ENTRY
// =============================================================================

// EntryKind distinguishes the output log's semantic channels.
type EntryKind int

const (
	// EntryCommand echoes the submitted command line with its prompt.
	EntryCommand EntryKind = iota
	// EntryOutput is a rendered command result.
	EntryOutput
	// EntryError is a rendered failure (resolution error, handler
	// error, or failed result).
	EntryError
	// EntryNotice is an engine message (queue overflow, rate limit).
	EntryNotice
)

// Entry is one rendered block appended to the output log. Body is
// already fully rendered (ANSI escapes included); the surface only
// displays it.
type Entry struct {
	ID   string
	Kind EntryKind
	Body string

	// ScrollTop marks document-like output: the view scrolls to the
	// top of the log instead of the bottom, and auto-scroll stays
	// suppressed for a short cool-down.
	ScrollTop bool
}

func newEntry(kind EntryKind, body string) Entry {
	return Entry{ID: uuid.NewString(), Kind: kind, Body: body}
}
