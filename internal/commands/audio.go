// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strconv"
)

// audioGroup defines the faked audio controls. They only mutate session
// toggles that the status commands report; there is no synthesis here.
func audioGroup() []*Command {
	return []*Command{
		{
			Name:        "play",
			Description: "Play a track (simulated)",
			Usage:       "play [track]",
			Category:    "Audio",
			Handler: func(ctx *Context, args []string) (Result, error) {
				track := argOr(args, 0, "ambient-01")
				if ctx.isMuted() {
					return Textf("♪ %s (muted)", track), nil
				}
				return Textf("♪ now playing: %s", track), nil
			},
		},
		{
			Name:        "volume",
			Aliases:     []string{"vol"},
			Description: "Show or set the volume",
			Usage:       "volume [0-100]",
			Category:    "Audio",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					return Textf("volume: %d%%", ctx.getVolume()), nil
				}
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return Failuref("volume: invalid level: %s", args[0]), nil
				}
				ctx.setVolume(v)
				return Textf("volume set to %d%%", ctx.getVolume()), nil
			},
		},
		{
			Name:        "mute",
			Description: "Mute audio",
			Category:    "Audio",
			Handler: func(ctx *Context, args []string) (Result, error) {
				ctx.setMuted(true)
				return Text("audio muted"), nil
			},
		},
		{
			Name:        "unmute",
			Description: "Unmute audio",
			Category:    "Audio",
			Handler: func(ctx *Context, args []string) (Result, error) {
				ctx.setMuted(false)
				return Textf("audio unmuted (volume %d%%)", ctx.getVolume()), nil
			},
		},
	}
}
