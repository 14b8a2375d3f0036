// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/neuos/neuos-tui/internal/commands"
	"github.com/neuos/neuos-tui/internal/config"
	"github.com/neuos/neuos-tui/internal/env"
	"github.com/neuos/neuos-tui/internal/history"
	"github.com/neuos/neuos-tui/internal/storage"
	"github.com/neuos/neuos-tui/internal/terminal"
	"github.com/neuos/neuos-tui/internal/ui/styles"
)

// =============================================================================
// LINE SURFACE
// =============================================================================

// lineSurface writes engine output straight to stdout. It is the
// Surface and Control implementation for the plain REPL, where the
// terminal itself already handles scrolling and input echo.
type lineSurface struct {
	styled bool
	quit   bool
}

func (s *lineSurface) AppendEntry(e terminal.Entry) {
	switch e.Kind {
	case terminal.EntryCommand:
		// The user just typed it; echoing again would duplicate it.
	case terminal.EntryError:
		if s.styled {
			fmt.Println(styles.RenderError(e.Body))
		} else {
			fmt.Println("error: " + e.Body)
		}
	case terminal.EntryNotice:
		if s.styled {
			fmt.Println(styles.RenderWarning(e.Body))
		} else {
			fmt.Println(e.Body)
		}
	default:
		fmt.Println(e.Body)
	}
}

func (s *lineSurface) TrimLog()        {}
func (s *lineSurface) ScrollToBottom() {}
func (s *lineSurface) ScrollToTop()    {}
func (s *lineSurface) ClearInput()     {}

// ClearLog implements the clear command with an ANSI wipe.
func (s *lineSurface) ClearLog() {
	if s.styled {
		fmt.Print("\033[2J\033[H")
	}
}

// SetTheme is a no-op in line mode; the REPL renders with the
// terminal's own colors.
func (s *lineSurface) SetTheme(name string) {}

// Quit ends the read loop after the current chain.
func (s *lineSurface) Quit() {
	s.quit = true
}

// =============================================================================
// REPL HANDLER
// =============================================================================

// HandleREPL runs the line-mode shell: same engine, same commands, no
// alternate screen. Useful over slow links and in scripts.
func HandleREPL(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg, args)

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

	surface := &lineSurface{styled: term.IsTerminal(int(os.Stdout.Fd()))}

	ctx := commands.NewContext(envStore, hist, surface, Version)
	ctx.Registry = registry
	ctx.ApplySessionDefaults(cfg.Audio.Volume, cfg.Audio.Muted, cfg.UI.Particles, cfg.UI.Glass)
	ctx.SetThemeName(cfg.UI.Theme)

	engine := terminal.NewEngine(terminal.Options{
		Registry:         registry,
		Context:          ctx,
		Env:              envStore,
		History:          hist,
		Surface:          surface,
		QueueLimit:       cfg.Terminal.QueueLimit,
		DisableRateLimit: true,
	})

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	// Seed liner's arrow-key history from the persistent store and set
	// up tab completion over the registry.
	for _, entry := range hist.Entries() {
		line.AppendHistory(entry)
	}
	completer := commands.NewCompleter(registry)
	line.SetCompleter(func(input string) []string {
		res := completer.Complete(input)
		if res.Filled != "" {
			return []string{res.Filled}
		}
		return res.Candidates
	})

	if !args.Quiet {
		fmt.Printf("neuOS %s line mode. Type help for commands, exit to leave.\n", Version)
	}

	prompt := fmt.Sprintf("%s> ", cfg.Terminal.Hostname)
	for !surface.quit {
		input, rerr := line.Prompt(prompt)
		if rerr != nil {
			if rerr == liner.ErrPromptAborted {
				fmt.Println()
				continue
			}
			// EOF (Ctrl+D) or a closed terminal ends the session.
			fmt.Println()
			return nil
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		engine.Submit(input)
	}
	return nil
}
