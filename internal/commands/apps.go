// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// appsGroup defines the toy application launchers: a Game of Life
// generation, the codex knowledge base, and the status dashboard.
func appsGroup() []*Command {
	return []*Command{
		{
			Name:        "life",
			Description: "Run a few generations of Game of Life",
			Usage:       "life [generations]",
			Category:    "Apps",
			Handler:     handleLife,
		},
		{
			Name:        "codex",
			Description: "Search the knowledge base",
			Usage:       "codex [query]",
			Category:    "Apps",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					keys := make([]string, 0, len(codexEntries))
					for k := range codexEntries {
						keys = append(keys, k)
					}
					return Textf("codex topics: %s", strings.Join(sortedStrings(keys), ", ")), nil
				}
				query := strings.ToLower(strings.Join(args, " "))
				for topic, body := range codexEntries {
					if strings.Contains(topic, query) {
						return Markup("**" + topic + "**\n\n" + body), nil
					}
				}
				return Failuref("codex: no entry matches %q", query), nil
			},
		},
		{
			Name:        "status",
			Description: "Show the system status dashboard",
			Category:    "Apps",
			Handler: func(ctx *Context, args []string) (Result, error) {
				particles, glass := ctx.effectsState()
				return Structured(map[string]any{
					"uptime":    ctx.Uptime().Round(1e9).String(),
					"user":      envOr(ctx, "USER", "guest"),
					"cwd":       ctx.Cwd(),
					"volume":    ctx.getVolume(),
					"muted":     ctx.isMuted(),
					"particles": particles,
					"glass":     glass,
					"history":   historyLen(ctx),
				}), nil
			},
		},
	}
}

// handleLife seeds a small toroidal grid and steps it, rendering each
// generation as text. The grid is tiny on purpose: this is a terminal
// toy, not the windowed app.
func handleLife(ctx *Context, args []string) (Result, error) {
	const size = 16
	gens := 4
	if len(args) > 0 {
		if n, err := fmt.Sscanf(args[0], "%d", &gens); n != 1 || err != nil || gens < 1 {
			return Failuref("life: invalid generation count: %s", args[0]), nil
		}
		if gens > 16 {
			gens = 16
		}
	}

	grid := make([][]bool, size)
	for y := range grid {
		grid[y] = make([]bool, size)
		for x := range grid[y] {
			grid[y][x] = rand.Intn(4) == 0
		}
	}

	var b strings.Builder
	for g := 0; g < gens; g++ {
		fmt.Fprintf(&b, "generation %d\n", g+1)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if grid[y][x] {
					b.WriteString("██")
				} else {
					b.WriteString("··")
				}
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		grid = stepLife(grid)
	}
	return Text(strings.TrimRight(b.String(), "\n")), nil
}

// stepLife applies Conway's rules on a toroidal grid.
func stepLife(grid [][]bool) [][]bool {
	size := len(grid)
	next := make([][]bool, size)
	for y := range next {
		next[y] = make([]bool, size)
		for x := range next[y] {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dy == 0 && dx == 0 {
						continue
					}
					if grid[(y+dy+size)%size][(x+dx+size)%size] {
						n++
					}
				}
			}
			next[y][x] = n == 3 || (grid[y][x] && n == 2)
		}
	}
	return next
}

var codexEntries = map[string]string{
	"boot sequence": "The boot sequence plays a staged log of fake kernel lines before the login screen appears.",
	"glass":         "Glass-morphism: translucent panels with background blur, stacked with subtle borders.",
	"particles":     "The particle field renders a few hundred drifting points connected by proximity lines.",
	"terminal":      "The terminal dispatches typed commands through a registry, with `&&`/`||` chaining and persistent history.",
	"window manager": "Windows drag, snap, minimize and restore. The terminal runs inside one.",
}

func envOr(ctx *Context, name, fallback string) string {
	if ctx.Env != nil {
		if v, ok := ctx.Env.Get(name); ok {
			return v
		}
	}
	return fallback
}

func historyLen(ctx *Context) int {
	if ctx.History == nil {
		return 0
	}
	return ctx.History.Len()
}

func sortedStrings(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
