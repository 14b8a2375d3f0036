// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// filesystemGroup defines commands that walk the virtual tree. Nothing
// here touches the real filesystem.
func filesystemGroup() []*Command {
	return []*Command{
		{
			Name:        "ls",
			Aliases:     []string{"dir"},
			Description: "List directory contents",
			Usage:       "ls [path]",
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				target := ctx.Cwd()
				if len(args) > 0 {
					target = ctx.FS.Resolve(ctx.Cwd(), args[0])
				}
				entries, ok := ctx.FS.ListDir(target)
				if !ok {
					return Failuref("ls: cannot access '%s': No such directory", argOr(args, 0, target)), nil
				}
				if len(entries) == 0 {
					return Text(""), nil
				}
				return List(entries...), nil
			},
		},
		{
			Name:        "cd",
			Description: "Change the working directory",
			Usage:       "cd [path]",
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				target := ""
				if len(args) > 0 {
					target = args[0]
				}
				abs := ctx.FS.Resolve(ctx.Cwd(), target)
				if !ctx.FS.IsDir(abs) {
					return Failuref("cd: no such directory: %s", target), nil
				}
				ctx.SetCwd(abs)
				return Text(""), nil
			},
		},
		{
			Name:        "pwd",
			Description: "Print the working directory",
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Text(ctx.Cwd()), nil
			},
		},
		{
			Name:        "cat",
			Description: "Print file contents",
			Usage:       "cat <file>",
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					return Failuref("cat: missing operand"), nil
				}
				abs := ctx.FS.Resolve(ctx.Cwd(), args[0])
				content, ok := ctx.FS.ReadFile(abs)
				if !ok {
					if ctx.FS.IsDir(abs) {
						return Failuref("cat: %s: Is a directory", args[0]), nil
					}
					return Failuref("cat: %s: No such file", args[0]), nil
				}
				return Text(strings.TrimRight(content, "\n")), nil
			},
		},
		{
			Name:        "tree",
			Description: "Show the directory tree",
			Usage:       "tree [path]",
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				target := ctx.Cwd()
				if len(args) > 0 {
					target = ctx.FS.Resolve(ctx.Cwd(), args[0])
				}
				out, ok := ctx.FS.Tree(target)
				if !ok {
					return Failuref("tree: %s: No such directory", argOr(args, 0, target)), nil
				}
				return Text(strings.TrimRight(out, "\n")), nil
			},
		},
		{
			Name:        "mkdir",
			Description: "Pretend to create a directory",
			Usage:       "mkdir <name>",
			Hidden:      true,
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					return Failuref("mkdir: missing operand"), nil
				}
				return Textf("mkdir: cannot create directory '%s': Read-only file system", args[0]), nil
			},
		},
		{
			Name:        "touch",
			Description: "Pretend to create a file",
			Usage:       "touch <name>",
			Hidden:      true,
			Category:    "Filesystem",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					return Failuref("touch: missing file operand"), nil
				}
				return Textf("touch: cannot touch '%s': Read-only file system", args[0]), nil
			},
		},
	}
}

// argOr returns args[i] if present, else fallback.
func argOr(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}
