// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log"
	"sort"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler executes a command. It receives the shared terminal context
// and the argument tokens (never the command name itself). A handler
// reports failure either through a KindFailure result or by returning
// an error; the dispatcher treats both identically.
type Handler func(ctx *Context, args []string) (Result, error)

// Command is one registered terminal command.
type Command struct {
	// Name is the primary lowercase name (may contain dots, e.g. "git").
	Name string

	// Aliases are alternative names resolving to the same handler.
	Aliases []string

	// Description is shown in help and completion listings.
	Description string

	// Usage shows argument syntax (e.g. "set <name> <value>").
	Usage string

	// Category groups commands in help output.
	Category string

	// Hidden commands are executable but never listed.
	Hidden bool

	// Handler executes the command.
	Handler Handler
}

// Group is a named family of command definitions. Groups keep each
// command family's definitions co-located while the registry presents
// one flat lookup surface.
type Group struct {
	Name  string
	Build func() []*Command
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry is the flat name-to-command table. It is built once at
// terminal construction and never mutated afterwards, so lookups are
// safe from any goroutine.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
}

// NewRegistry builds the registry by merging the built-in groups in
// their documented order. A later group silently overrides an earlier
// registration of the same name (the system group's "ss" deliberately
// shadows the network group's); each override is logged once so the
// order stays observable.
func NewRegistry() *Registry {
	return NewRegistryFromGroups(BuiltinGroups())
}

// NewRegistryFromGroups merges the given groups in order. Exposed for
// tests that need a controlled command table.
func NewRegistryFromGroups(groups []Group) *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	for _, g := range groups {
		for _, cmd := range g.Build() {
			r.register(g.Name, cmd)
		}
	}
	return r
}

// register stores a command under its name and aliases. Last
// registration wins for both.
func (r *Registry) register(group string, cmd *Command) {
	if _, exists := r.commands[cmd.Name]; exists {
		log.Printf("commands: %q redefined by group %q (override wins)", cmd.Name, group)
	}
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		if _, exists := r.aliases[alias]; exists {
			log.Printf("commands: alias %q redefined by group %q (override wins)", alias, group)
		}
		r.aliases[alias] = cmd
	}
}

// Resolve retrieves a command by exact name or alias. Returns nil when
// unknown.
func (r *Registry) Resolve(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns every registered command (primary names only).
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// Names returns all resolvable names (primary and alias), sorted. Used
// by tab completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands)+len(r.aliases))
	for name, cmd := range r.commands {
		if cmd.Hidden {
			continue
		}
		names = append(names, name)
	}
	for alias, cmd := range r.aliases {
		if cmd.Hidden {
			continue
		}
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns visible commands grouped by category for help
// output.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.All() {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// Len returns the number of primary command names.
func (r *Registry) Len() int {
	return len(r.commands)
}
