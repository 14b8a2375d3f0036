// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuos/neuos-tui/internal/commands"
	"github.com/neuos/neuos-tui/internal/env"
	"github.com/neuos/neuos-tui/internal/history"
)

// recordSurface captures everything the engine writes.
type recordSurface struct {
	entries []Entry
	cleared int
	bottoms int
	tops    int
}

func (s *recordSurface) AppendEntry(e Entry) { s.entries = append(s.entries, e) }
func (s *recordSurface) TrimLog()            {}
func (s *recordSurface) ScrollToBottom()     { s.bottoms++ }
func (s *recordSurface) ScrollToTop()        { s.tops++ }
func (s *recordSurface) ClearInput()         { s.cleared++ }

// bodies flattens captured entries of one kind for contains checks.
func (s *recordSurface) bodies(kind EntryKind) string {
	var out []string
	for _, e := range s.entries {
		if e.Kind == kind {
			out = append(out, e.Body)
		}
	}
	return strings.Join(out, "\n")
}

func testEngine(t *testing.T, opts Options) (*Engine, *recordSurface) {
	t.Helper()

	surf := &recordSurface{}
	envStore := env.New()
	hist := history.New(nil, 50)
	ctx := commands.NewContext(envStore, hist, nil, "test")
	ctx.Registry = commands.NewRegistry()

	if opts.Registry == nil {
		opts.Registry = ctx.Registry
	}
	opts.Context = ctx
	opts.Env = envStore
	opts.History = hist
	opts.Surface = surf
	opts.DisableRateLimit = true
	return NewEngine(opts), surf
}

func TestSubmitEchoEndToEnd(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("echo hello")

	require.Len(t, surf.entries, 2)
	require.Equal(t, EntryCommand, surf.entries[0].Kind)
	require.Equal(t, "guest@neuos:~$ echo hello", surf.entries[0].Body)
	require.Equal(t, EntryOutput, surf.entries[1].Kind)
	require.Equal(t, "hello", surf.entries[1].Body)
	require.Equal(t, []string{"echo hello"}, eng.history.Entries())
}

func TestBlankLineDoesNothing(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("   ")

	require.Empty(t, surf.entries)
	require.Equal(t, 1, surf.cleared)
	require.Zero(t, eng.history.Len())
}

func TestUnknownCommandStillRecorded(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("nosuchcmd --flag")

	require.Contains(t, surf.bodies(EntryError), "command not found: nosuchcmd")
	require.Equal(t, []string{"nosuchcmd --flag"}, eng.history.Entries())
}

func TestAndStopsOnFailure(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	// git rebase is a builtin that reports failure.
	eng.Submit("git rebase && echo after")

	require.NotEmpty(t, surf.bodies(EntryError))
	require.NotContains(t, surf.bodies(EntryOutput), "after")
}

func TestAndContinuesOnSuccess(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("echo a && echo b")

	out := surf.bodies(EntryOutput)
	require.Contains(t, out, "a")
	require.Contains(t, out, "b")
}

func TestOrRecoversFromFailure(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("git rebase || echo rescued")

	require.Contains(t, surf.bodies(EntryOutput), "rescued")
}

func TestOrSkipsAfterSuccess(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("echo ok || echo skipped")

	out := surf.bodies(EntryOutput)
	require.Contains(t, out, "ok")
	require.NotContains(t, out, "skipped")
}

func TestUnresolvableNameAbortsChain(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	// "!!!" sanitizes down to nothing; it must fail like an unknown
	// command and stop the chain rather than vanish silently.
	eng.Submit("echo before && !!! && echo after")

	require.Contains(t, surf.bodies(EntryError), "command not found: !!!")
	out := surf.bodies(EntryOutput)
	require.Contains(t, out, "before")
	require.NotContains(t, out, "after")
}

func TestUnknownCommandAbortsChain(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	// || would normally recover from a failure, but resolution
	// errors abort the whole chain.
	eng.Submit("nosuchcmd || echo rescued")

	require.NotContains(t, surf.bodies(EntryOutput), "rescued")
}

func TestQueuedSubmissionsRunInOrder(t *testing.T) {
	var eng *Engine

	groups := append(commands.BuiltinGroups(), commands.Group{
		Name: "testhooks",
		Build: func() []*commands.Command {
			return []*commands.Command{{
				Name:   "spawn",
				Hidden: true,
				Handler: func(ctx *commands.Context, args []string) (commands.Result, error) {
					// Submitted mid-chain, so both lines queue up.
					eng.Submit("echo one")
					eng.Submit("echo two")
					return commands.Text("spawned"), nil
				},
			}}
		},
	})

	var surf *recordSurface
	eng, surf = testEngine(t, Options{Registry: commands.NewRegistryFromGroups(groups)})

	eng.Submit("spawn")

	var outputs []string
	for _, e := range surf.entries {
		if e.Kind == EntryOutput {
			outputs = append(outputs, e.Body)
		}
	}
	require.Equal(t, []string{"spawned", "one", "two"}, outputs)
}

func TestQueueOverflowDropsWithNotice(t *testing.T) {
	var eng *Engine

	groups := append(commands.BuiltinGroups(), commands.Group{
		Name: "testhooks",
		Build: func() []*commands.Command {
			return []*commands.Command{{
				Name:   "flood",
				Hidden: true,
				Handler: func(ctx *commands.Context, args []string) (commands.Result, error) {
					eng.Submit("echo one")
					eng.Submit("echo two")
					eng.Submit("echo three")
					return commands.Text(""), nil
				},
			}}
		},
	})

	var surf *recordSurface
	eng, surf = testEngine(t, Options{
		Registry:   commands.NewRegistryFromGroups(groups),
		QueueLimit: 1,
	})

	eng.Submit("flood")

	out := surf.bodies(EntryOutput)
	require.Contains(t, out, "one")
	require.NotContains(t, out, "two")
	require.NotContains(t, out, "three")
	require.Contains(t, surf.bodies(EntryNotice), "queue full")
}

func TestPWDRefreshedAfterChain(t *testing.T) {
	eng, surf := testEngine(t, Options{})

	eng.Submit("cd projects")

	pwd, ok := eng.env.Get("PWD")
	require.True(t, ok)
	require.Equal(t, "/home/guest/projects", pwd)

	// The next prompt reflects the new directory.
	eng.Submit("pwd")
	require.Contains(t, surf.bodies(EntryCommand), "guest@neuos:~/projects$ pwd")
}

func TestPanickingHandlerContained(t *testing.T) {
	groups := append(commands.BuiltinGroups(), commands.Group{
		Name: "testhooks",
		Build: func() []*commands.Command {
			return []*commands.Command{{
				Name:   "boom",
				Hidden: true,
				Handler: func(ctx *commands.Context, args []string) (commands.Result, error) {
					panic("kaboom")
				},
			}}
		},
	})

	eng, surf := testEngine(t, Options{Registry: commands.NewRegistryFromGroups(groups)})

	eng.Submit("boom && echo after")

	require.Contains(t, surf.bodies(EntryError), "kaboom")
	require.NotContains(t, surf.bodies(EntryOutput), "after")

	// The engine keeps working afterwards.
	eng.Submit("echo alive")
	require.Contains(t, surf.bodies(EntryOutput), "alive")
}
