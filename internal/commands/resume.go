// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// resumeGroup defines the portfolio commands. These produce the long
// document-like outputs that the formatter scrolls to the top instead
// of the bottom.
func resumeGroup() []*Command {
	return []*Command{
		{
			Name:        "resume",
			Aliases:     []string{"cv"},
			Description: "Show the resume",
			Category:    "Resume",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Markup(resumeDocument), nil
			},
		},
		{
			Name:        "show",
			Description: "Show a portfolio document",
			Usage:       "show <resume|skills|projects>",
			Category:    "Resume",
			Handler: func(ctx *Context, args []string) (Result, error) {
				switch argOr(args, 0, "resume") {
				case "resume":
					return Markup(resumeDocument), nil
				case "skills":
					return Markup(skillsDocument), nil
				case "projects":
					return Markup(projectsDocument), nil
				default:
					return Failuref("show: unknown document: %s", args[0]), nil
				}
			},
		},
		{
			Name:        "skills",
			Description: "List technical skills",
			Category:    "Resume",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Markup(skillsDocument), nil
			},
		},
		{
			Name:        "contact",
			Description: "Show contact information",
			Category:    "Resume",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return List(
					"email:   hello@neuos.dev",
					"web:     https://neuos.dev",
					"matrix:  @neu:neuos.dev",
				), nil
			},
		},
		{
			Name:        "demoscene",
			Description: "About the demoscene influences",
			Category:    "Resume",
			Handler: func(ctx *Context, args []string) (Result, error) {
				return Markup(demosceneDocument), nil
			},
		},
	}
}

const resumeDocument = `# Resume

## Experience

**Senior Frontend Engineer** - Glasswork Systems (2021-present)
Built the compositing layer for a widely deployed design tool.

**Creative Coder** - Freelance (2017-2021)
Interactive installations, generative art, audio-reactive visuals.

## Education

B.Sc. Computer Science

Type ` + "`show skills`" + ` or ` + "`show projects`" + ` for more.
`

const skillsDocument = `# Skills

- **Systems**: state machines, event-driven pipelines, caching
- **Graphics**: canvas, WebGL, particle systems, shaders
- **Audio**: synthesis, scheduling, DSP basics
- **Tooling**: build systems, CI, performance profiling
`

const projectsDocument = `# Projects

- **neuOS** - this desktop. Boot sequence, window manager, the terminal
  you are typing into.
- **life** - Conway's Game of Life with a toroidal grid.
- **codex** - a small knowledge base with full-text search.
`

const demosceneDocument = `# Demoscene

The boot sequence, the particle field and the glass look are all love
letters to the demoscene: tiny programs, big atmosphere.

Greetings to everyone who ever shipped a 64k intro.
`
