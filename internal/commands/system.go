// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"math/rand"
	"time"
)

// systemGroup defines the faked system-control commands. Registered
// after the network group, so its "ss" wins the merge - that override
// is intentional and logged at startup.
func systemGroup() []*Command {
	return []*Command{
		{
			Name:        "ps",
			Description: "List processes (simulated)",
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"  PID TTY          TIME CMD",
					"    1 ?        00:00:02 compositor",
					"   42 ?        00:01:13 particle-field",
					"  108 ?        00:00:41 glass-blur",
					"  256 pts/0    00:00:00 neush",
					"  314 pts/0    00:00:00 ps",
				), nil
			},
		},
		{
			Name:        "top",
			Description: "Show resource usage (simulated)",
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				up := ctx.Uptime().Round(time.Second)
				return List(
					fmt.Sprintf("top - up %s,  1 user,  load average: 0.02, 0.05, 0.01", up),
					"Tasks:   5 total,   1 running,   4 sleeping",
					fmt.Sprintf("%%Cpu(s):  %d.%d us,  0.8 sy,  0.0 ni, 97.1 id", rand.Intn(3), rand.Intn(10)),
					"MiB Mem :   4096.0 total,   2731.4 free,    812.2 used,    552.4 buff/cache",
					"",
					"  PID USER      PR  NI    VIRT    RES  %CPU  %MEM     TIME+ COMMAND",
					"   42 guest     20   0  184572  42816   1.7   1.0   1:13.02 particle-field",
					"  108 guest     20   0   92840  21504   0.7   0.5   0:41.77 glass-blur",
				), nil
			},
		},
		{
			Name:        "free",
			Description: "Show memory usage (simulated)",
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"               total        used        free      shared  buff/cache   available",
					"Mem:         4194304      831692     2797012       12288      565600     3145728",
					"Swap:              0           0           0",
				), nil
			},
		},
		{
			Name:        "df",
			Description: "Show disk usage (simulated)",
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"Filesystem     1K-blocks    Used Available Use% Mounted on",
					"neufs            8388608  912384   7476224  11% /",
					"tmpfs            2097152       0   2097152   0% /tmp",
				), nil
			},
		},
		{
			// Intentional override of the network group's "ss".
			Name:        "ss",
			Description: "Show system summary (simulated)",
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				particles, glass := ctx.effectsState()
				return Structured(map[string]any{
					"host":      "neuos",
					"kernel":    "2.4.0-glass",
					"uptime":    ctx.Uptime().Round(time.Second).String(),
					"particles": particles,
					"glass":     glass,
				}), nil
			},
		},
		{
			Name:        "reboot",
			Aliases:     []string{"shutdown"},
			Description: "Reboot the desktop (simulated)",
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Markup("<b>Broadcast message from guest@neuos</b>\n\nThe system is going down for reboot NOW!\n<i>(...just kidding. This desktop never sleeps.)</i>"), nil
			},
		},
		{
			Name:        "dmesg",
			Description: "Show kernel messages (simulated)",
			Hidden:      true,
			Category:    "System",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"[    0.000000] neuOS 2.4.0-glass booting",
					"[    0.120044] compositor: glass pipeline initialized",
					"[    0.244181] particles: field of 512 points online",
					"[    1.002913] neush: terminal attached to pts/0",
				), nil
			},
		},
	}
}
