// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history implements the terminal's persistent command history.
package history

import (
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/neuos/neuos-tui/internal/storage"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// StorageKey is the fixed key the history list is persisted under.
const StorageKey = "terminal.history"

// DefaultCapacity bounds the history when the config does not override it.
const DefaultCapacity = 100

// Direction selects which way Navigate pages through history.
type Direction int

const (
	// Older moves toward the start of history (Arrow-Up).
	Older Direction = iota
	// Newer moves toward the live input line (Arrow-Down).
	Newer
)

// =============================================================================
// HISTORY MANAGER
// =============================================================================

// Manager is an append-only command log with consecutive-duplicate
// suppression, a capacity bound, durable persistence, and a navigation
// cursor for Up/Down paging.
//
// Entries are ordered oldest to newest. The cursor is an index into the
// entries, with -1 meaning "not navigating, showing the live input".
type Manager struct {
	mu       sync.Mutex
	entries  []string
	cursor   int
	capacity int
	store    *storage.KV
}

// New creates a manager bound to the given store and loads any persisted
// history. A nil store disables persistence (in-memory history only).
// Load failures are swallowed: a missing key or malformed payload just
// yields an empty history.
func New(store *storage.KV, capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	m := &Manager{
		cursor:   -1,
		capacity: capacity,
		store:    store,
	}
	m.load()
	return m
}

// load restores the persisted list. Any failure leaves history empty.
func (m *Manager) load() {
	if m.store == nil {
		return
	}
	raw, ok, err := m.store.Get(StorageKey)
	if err != nil || !ok {
		return
	}
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Corrupt payload: start fresh rather than surface an error.
		return
	}
	if len(entries) > m.capacity {
		entries = entries[len(entries)-m.capacity:]
	}
	m.entries = entries
}

// Record appends a command line to history. Empty lines and immediate
// repeats of the previous entry are ignored. The navigation cursor is
// reset and the full list is persisted. Persistence failures are logged
// and otherwise ignored; history must never block command execution.
func (m *Manager) Record(rawLine string) {
	line := strings.TrimSpace(rawLine)
	if line == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if n := len(m.entries); n > 0 && m.entries[n-1] == line {
		m.cursor = -1
		return
	}

	m.entries = append(m.entries, line)
	if len(m.entries) > m.capacity {
		m.entries = m.entries[len(m.entries)-m.capacity:]
	}
	m.cursor = -1

	m.save()
}

// save persists the current list. Caller holds the lock.
func (m *Manager) save() {
	if m.store == nil {
		return
	}
	data, err := json.Marshal(m.entries)
	if err != nil {
		log.Printf("history: marshal failed: %v", err)
		return
	}
	if err := m.store.Set(StorageKey, string(data)); err != nil {
		log.Printf("history: save failed: %v", err)
	}
}

// Navigate moves the cursor one step and returns the entry at the new
// position. When the cursor steps past the newest entry it returns to
// -1 and the caller's live (not-yet-submitted) input is returned.
func (m *Manager) Navigate(dir Direction, live string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) == 0 {
		return live
	}

	switch dir {
	case Older:
		if m.cursor == -1 {
			m.cursor = len(m.entries) - 1
		} else if m.cursor > 0 {
			m.cursor--
		}
	case Newer:
		if m.cursor == -1 {
			return live
		}
		m.cursor++
		if m.cursor >= len(m.entries) {
			m.cursor = -1
			return live
		}
	}

	return m.entries[m.cursor]
}

// ResetCursor abandons navigation and returns to the live input.
func (m *Manager) ResetCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursor = -1
}

// Entries returns a copy of the history, oldest first.
func (m *Manager) Entries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of recorded entries.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Clear wipes history in memory and in the store.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.cursor = -1
	m.save()
}
