// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/neuos/neuos-tui/internal/export"
)

// coreGroup defines the basic terminal commands.
func coreGroup() []*Command {
	return []*Command{
		{
			Name:        "help",
			Aliases:     []string{"?"},
			Description: "List available commands",
			Usage:       "help [command]",
			Category:    "Core",
			Handler:     handleHelp,
		},
		{
			Name:        "echo",
			Description: "Print arguments back",
			Usage:       "echo [text...]",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Text(strings.Join(args, " ")), nil
			},
		},
		{
			Name:        "clear",
			Aliases:     []string{"cls"},
			Description: "Clear the terminal output",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.Control != nil {
					ctx.Control.ClearLog()
				}
				return Text(""), nil
			},
		},
		{
			Name:        "date",
			Description: "Show the current date and time",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Text(time.Now().Format("Mon Jan _2 15:04:05 MST 2006")), nil
			},
		},
		{
			Name:        "whoami",
			Description: "Show the current user",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.Env != nil {
					if user, ok := ctx.Env.Get("USER"); ok {
						return Text(user), nil
					}
				}
				return Text("guest"), nil
			},
		},
		{
			Name:        "hostname",
			Description: "Show the system hostname",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Text("neuos"), nil
			},
		},
		{
			Name:        "uname",
			Description: "Show system information",
			Usage:       "uname [-a]",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) > 0 && args[0] == "-a" {
					return Text("neuOS neuos 2.4.0-glass #1 SMP browser x86_64 neuOS"), nil
				}
				return Text("neuOS"), nil
			},
		},
		{
			Name:        "uptime",
			Description: "Show session uptime",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				up := ctx.Uptime().Round(time.Second)
				return Textf("up %s, 1 user, load average: 0.02, 0.05, 0.01", up), nil
			},
		},
		{
			Name:        "history",
			Description: "Show or export command history",
			Usage:       "history [export [md|json|txt]]",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.History == nil {
					return Text("no history"), nil
				}
				if len(args) > 0 && args[0] == "export" {
					return handleHistoryExport(ctx, args[1:])
				}
				entries := ctx.History.Entries()
				if len(entries) == 0 {
					return Text("no history"), nil
				}
				lines := make([]string, len(entries))
				for i, e := range entries {
					lines[i] = fmt.Sprintf("%4d  %s", i+1, e)
				}
				return List(lines...), nil
			},
		},
		{
			Name:        "sleep",
			Description: "Pause for a number of seconds",
			Usage:       "sleep <seconds>",
			Hidden:      true,
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				// Capped so a typo cannot wedge the queue for long.
				d := time.Second
				if len(args) > 0 {
					if parsed, err := time.ParseDuration(args[0] + "s"); err == nil {
						d = parsed
					}
				}
				if d > 10*time.Second {
					d = 10 * time.Second
				}
				time.Sleep(d)
				return Text(""), nil
			},
		},
		{
			Name:        "version",
			Description: "Show the neuOS version",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Textf("neuOS terminal %s", ctx.Version), nil
			},
		},
		{
			Name:        "exit",
			Aliases:     []string{"quit", "logout"},
			Description: "Leave the terminal",
			Category:    "Core",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.Control != nil {
					ctx.Control.Quit()
				}
				return Text("logout"), nil
			},
		},
	}
}

// handleHelp renders the command listing, or detail for one command.
func handleHelp(ctx *Context, args []string) (Result, error) {
	if ctx.Registry == nil {
		return Text("help unavailable"), nil
	}

	if len(args) > 0 {
		name := SanitizeName(args[0])
		cmd := ctx.Registry.Resolve(name)
		if cmd == nil {
			return Failuref("help: no such command: %s", name), nil
		}
		var b strings.Builder
		b.WriteString("**" + cmd.Name + "** - " + cmd.Description + "\n")
		if cmd.Usage != "" {
			b.WriteString("\nUsage: `" + cmd.Usage + "`\n")
		}
		if len(cmd.Aliases) > 0 {
			b.WriteString("\nAliases: " + strings.Join(cmd.Aliases, ", ") + "\n")
		}
		return Markup(b.String()), nil
	}

	byCat := ctx.Registry.ByCategory()
	order := []string{"Core", "Filesystem", "Network", "Resume", "Audio", "Effects", "Apps", "System", "Vendor", "Environment"}

	var b strings.Builder
	b.WriteString("# neuOS commands\n\n")
	for _, cat := range order {
		cmds := byCat[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString("## " + cat + "\n\n")
		for _, cmd := range cmds {
			b.WriteString(fmt.Sprintf("- `%s` - %s\n", cmd.Name, cmd.Description))
		}
		b.WriteString("\n")
	}
	b.WriteString("Chain commands with `&&` and `||`. Tab completes, Up/Down recalls history.\n")
	return Markup(b.String()), nil
}

// handleHistoryExport writes the command history under ~/.neuos/exports.
func handleHistoryExport(ctx *Context, args []string) (Result, error) {
	format := "txt"
	if len(args) > 0 {
		format = args[0]
	}

	exporter, err := export.ForFormat(format)
	if err != nil {
		return Failure(err), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Failuref("history: cannot locate home directory: %v", err), nil
	}

	hostname := "neuos"
	if ctx.Env != nil {
		if v, ok := ctx.Env.Get("HOSTNAME"); ok && v != "" {
			hostname = v
		}
	}

	transcript := &export.Transcript{
		Hostname:   hostname,
		Version:    ctx.Version,
		ExportedAt: time.Now(),
		Commands:   ctx.History.Entries(),
	}

	path, err := export.ExportToFile(transcript, exporter, filepath.Join(home, ".neuos", "exports"))
	if err != nil {
		return Failuref("history: %v", err), nil
	}
	return Textf("history written to %s", path), nil
}
