// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package env implements the shell-like environment variable store for
// the neuOS terminal.
package env

import (
	"sort"
	"sync"
)

// =============================================================================
// ENVIRONMENT STORE
// =============================================================================

// Store is a mutable string-to-string mapping of environment variables.
// It is seeded with fixed defaults at construction and mutated by the
// set/export/unset commands. Values are never validated; any string is
// accepted, matching shell behavior.
//
// The store is not persisted across sessions. Derived fields (PWD) are
// refreshed by the dispatch engine after every command chain.
type Store struct {
	mu   sync.RWMutex
	vars map[string]string
}

// defaults are the variables every fresh session starts with.
func defaults() map[string]string {
	return map[string]string{
		"USER":   "guest",
		"HOME":   "/home/guest",
		"SHELL":  "/bin/neush",
		"PATH":   "/usr/local/bin:/usr/bin:/bin",
		"TERM":   "neuos-256color",
		"PWD":    "/home/guest",
		"LANG":   "en_US.UTF-8",
		"EDITOR": "nano",
	}
}

// New creates a store seeded with the session defaults.
func New() *Store {
	return &Store{vars: defaults()}
}

// Get returns the value of name and whether it is set.
func (s *Store) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[name]
	return v, ok
}

// Set assigns value to name, creating the variable if needed.
func (s *Store) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[name] = value
}

// Unset removes name. Removing an absent variable is a no-op.
func (s *Store) Unset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, name)
}

// All returns a copy of the current mapping.
func (s *Store) All() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Names returns all variable names in sorted order. Used by env output
// and tab completion so listings are stable.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// RefreshPWD mirrors the virtual working directory into PWD. Called by
// the engine after every chain so `env` always agrees with `pwd`.
func (s *Store) RefreshPWD(cwd string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars["PWD"] = cwd
}
