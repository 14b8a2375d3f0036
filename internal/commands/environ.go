// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
)

// environmentGroup defines the env/set/export/unset commands over the
// session's environment store. Mutations are immediately visible to
// later segments of the same chain.
func environmentGroup() []*Command {
	return []*Command{
		{
			Name:        "env",
			Aliases:     []string{"printenv"},
			Description: "Show environment variables",
			Category:    "Environment",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.Env == nil {
					return Text(""), nil
				}
				vars := ctx.Env.All()
				lines := make([]string, 0, len(vars))
				for _, name := range ctx.Env.Names() {
					lines = append(lines, fmt.Sprintf("%s=%s", name, vars[name]))
				}
				return List(lines...), nil
			},
		},
		{
			Name:        "set",
			Aliases:     []string{"export"},
			Description: "Set an environment variable",
			Usage:       "set <name> <value> | set <name>=<value>",
			Category:    "Environment",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.Env == nil || len(args) == 0 {
					return Failuref("set: usage: set <name> <value>"), nil
				}

				// Accept both `set NAME value` and `set NAME=value`.
				name, value := args[0], strings.Join(args[1:], " ")
				if eq := strings.IndexByte(args[0], '='); eq >= 0 {
					name, value = args[0][:eq], args[0][eq+1:]
					if len(args) > 1 {
						value += " " + strings.Join(args[1:], " ")
					}
				}
				if name == "" {
					return Failuref("set: empty variable name"), nil
				}
				ctx.Env.Set(name, value)
				return Textf("%s=%s", name, value), nil
			},
		},
		{
			Name:        "unset",
			Description: "Remove an environment variable",
			Usage:       "unset <name>",
			Category:    "Environment",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.Env == nil || len(args) == 0 {
					return Failuref("unset: usage: unset <name>"), nil
				}
				ctx.Env.Unset(args[0])
				return Text(""), nil
			},
		},
	}
}
