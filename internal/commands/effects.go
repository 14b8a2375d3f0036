// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// effectsGroup defines the faked visual-effect toggles.
func effectsGroup() []*Command {
	return []*Command{
		{
			Name:        "particles",
			Description: "Toggle the particle field",
			Category:    "Effects",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.toggleParticles() {
					return Text("particle field: on"), nil
				}
				return Text("particle field: off"), nil
			},
		},
		{
			Name:        "glass",
			Description: "Toggle the glass compositor",
			Category:    "Effects",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if ctx.toggleGlass() {
					return Text("glass compositor: on"), nil
				}
				return Text("glass compositor: off"), nil
			},
		},
		{
			Name:        "theme",
			Description: "Show or switch the color theme",
			Usage:       "theme [dark|light|auto]",
			Category:    "Effects",
			Handler: func(ctx *Context, args []string) (Result, error) {
				if len(args) == 0 {
					return Textf("theme: %s (available: dark, light, auto)", ctx.ThemeName()), nil
				}
				name := args[0]
				switch name {
				case "dark", "light", "auto":
				default:
					return Failuref("theme: unknown theme %q (want dark, light, or auto)", name), nil
				}
				ctx.SetThemeName(name)
				if ctx.Control != nil {
					ctx.Control.SetTheme(name)
				}
				return Textf("theme set to %s", name), nil
			},
		},
		{
			Name:        "effects",
			Description: "Show effect states",
			Category:    "Effects",
			Handler: func(ctx *Context, args []string) (Result, error) {
				particles, glass := ctx.effectsState()
				return Structured(map[string]any{
					"particles": particles,
					"glass":     glass,
				}), nil
			},
		},
	}
}
