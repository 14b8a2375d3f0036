// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// vendorGroup emulates well-known CLI tools. Each is a shallow parody:
// one or two recognizable subcommands, everything else politely refused.
func vendorGroup() []*Command {
	return []*Command{
		{
			Name:        "git",
			Description: "Version control (emulated)",
			Usage:       "git <status|log>",
			Category:    "Vendor",
			Handler: func(ctx *Context, args []string) (Result, error) {
				switch argOr(args, 0, "status") {
				case "status":
					return List(
						"On branch main",
						"Your branch is up to date with 'origin/main'.",
						"",
						"nothing to commit, working tree clean",
					), nil
				case "log":
					return List(
						"commit 9f3c21a (HEAD -> main, origin/main)",
						"Author: guest <hello@neuos.dev>",
						"",
						"    polish the glass",
					), nil
				default:
					return Failuref("git: '%s' is not a git command. See 'git --help'.", args[0]), nil
				}
			},
		},
		{
			Name:        "docker",
			Description: "Containers (emulated)",
			Usage:       "docker <ps|images>",
			Category:    "Vendor",
			Handler: func(ctx *Context, args []string) (Result, error) {
				switch argOr(args, 0, "ps") {
				case "ps":
					return List(
						"CONTAINER ID   IMAGE             COMMAND       STATUS         NAMES",
						"c0ffee24601a   neuos/particles   \"./field\"     Up 2 hours     particle-field",
						"deadbeef1337   neuos/glass       \"./blur\"      Up 2 hours     glass-blur",
					), nil
				case "images":
					return List(
						"REPOSITORY        TAG       IMAGE ID       SIZE",
						"neuos/particles   latest    c0ffee24601a   12.4MB",
						"neuos/glass       latest    deadbeef1337   9.1MB",
					), nil
				default:
					return Failuref("docker: unknown command: %s", args[0]), nil
				}
			},
		},
		{
			Name:        "npm",
			Description: "Package manager (emulated)",
			Usage:       "npm <install|run>",
			Category:    "Vendor",
			Handler: func(ctx *Context, args []string) (Result, error) {
				switch argOr(args, 0, "") {
				case "install", "i":
					pkg := argOr(args, 1, "left-pad")
					return Textf("added 1 package (%s) in 0.4s\n\n1 package is looking for funding", pkg), nil
				case "run":
					return Failuref("npm: missing script: %s", argOr(args, 1, "dev")), nil
				default:
					return Text("npm <command>\n\nUsage:\nnpm install\nnpm run <script>"), nil
				}
			},
		},
		{
			Name:        "kubectl",
			Description: "Kubernetes (emulated)",
			Usage:       "kubectl get <pods|nodes>",
			Category:    "Vendor",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if argOr(args, 0, "") != "get" {
					return Failuref("kubectl: unknown command %q", strings.Join(args, " ")), nil
				}
				switch argOr(args, 1, "pods") {
				case "pods":
					return List(
						"NAME                   READY   STATUS    RESTARTS   AGE",
						"particle-field-7d9f4   1/1     Running   0          2h",
						"glass-blur-66b2c       1/1     Running   0          2h",
					), nil
				case "nodes":
					return List(
						"NAME    STATUS   ROLES           AGE   VERSION",
						"neuos   Ready    control-plane   42d   v2.4.0-glass",
					), nil
				default:
					return Failuref("kubectl: the server doesn't have a resource type %q", args[1]), nil
				}
			},
		},
		{
			Name:        "vim",
			Aliases:     []string{"emacs", "nano"},
			Description: "Text editor (emulated)",
			Hidden:      true,
			Category:    "Vendor",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Text("this terminal is too small to contain an editor. try `cat` instead."), nil
			},
		},
	}
}
