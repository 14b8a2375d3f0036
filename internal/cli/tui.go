// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/neuos/neuos-tui/internal/commands"
	"github.com/neuos/neuos-tui/internal/config"
	"github.com/neuos/neuos-tui/internal/env"
	"github.com/neuos/neuos-tui/internal/history"
	"github.com/neuos/neuos-tui/internal/storage"
	"github.com/neuos/neuos-tui/internal/terminal"
	"github.com/neuos/neuos-tui/internal/ui/styles"
	"github.com/neuos/neuos-tui/internal/ui/term"
)

// =============================================================================
// TUI HANDLER
// =============================================================================

// HandleTUI boots the full-screen terminal.
func HandleTUI(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg, args)

	// Persistent state. A broken state file degrades to an in-memory
	// session instead of refusing to boot.
	var store *storage.KV
	if statePath, perr := cfg.ResolveStatePath(); perr == nil {
		if store, err = storage.Open(statePath); err != nil {
			log.Printf("cli: state store unavailable, history will not persist: %v", err)
			store = nil
		}
	}
	if store != nil {
		defer store.Close()
	}

	envStore := env.New()
	hist := history.New(store, cfg.Terminal.HistoryCapacity)
	registry := commands.NewRegistry()

	ctx := commands.NewContext(envStore, hist, nil, Version)
	ctx.Registry = registry
	ctx.ApplySessionDefaults(cfg.Audio.Volume, cfg.Audio.Muted, cfg.UI.Particles, cfg.UI.Glass)
	ctx.SetThemeName(cfg.UI.Theme)

	engine := terminal.NewEngine(terminal.Options{
		Registry:   registry,
		Context:    ctx,
		Env:        envStore,
		History:    hist,
		QueueLimit: cfg.Terminal.QueueLimit,
	})

	model := term.New(term.Options{
		Theme:       styles.NewTheme(cfg.UI.Theme),
		Engine:      engine,
		History:     hist,
		Completer:   commands.NewCompleter(registry),
		LogCapacity: cfg.Terminal.LogCapacity,
		Version:     Version,
		Hostname:    cfg.Terminal.Hostname,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())

	surface := term.NewSurface(program)
	engine.Attach(surface)
	ctx.Control = surface

	// Hot-reload notice. The next session picks up structural changes;
	// a running one is only told about the edit.
	if cfgPath, perr := config.ConfigPath(); perr == nil {
		watcher, werr := config.NewWatcher(cfgPath, func(fresh *config.Config) {
			surface.AppendEntry(terminal.Entry{
				Kind: terminal.EntryNotice,
				Body: "configuration changed on disk, restart to apply",
			})
		})
		if werr == nil {
			if werr = watcher.Watch(); werr != nil {
				log.Printf("cli: config watch failed: %v", werr)
			}
			defer watcher.Close()
		}
	}

	// Greet before the first prompt.
	go engine.Submit("version")

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal: %w", err)
	}
	return nil
}

// applyFlagOverrides layers command-line flags over the loaded config.
func applyFlagOverrides(cfg *config.Config, args Args) {
	if args.Theme != "" {
		cfg.UI.Theme = args.Theme
	}
	if args.NoEffects {
		cfg.UI.Particles = false
		cfg.UI.Glass = false
	}
}
