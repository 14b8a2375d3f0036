// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/neuos/neuos-tui/internal/env"
	"github.com/neuos/neuos-tui/internal/history"
)

func testContext() *Context {
	ctx := NewContext(env.New(), history.New(nil, 10), nil, "test")
	ctx.Registry = NewRegistry()
	return ctx
}

func run(t *testing.T, ctx *Context, name string, args ...string) Result {
	t.Helper()
	cmd := ctx.Registry.Resolve(name)
	if cmd == nil {
		t.Fatalf("command %q not registered", name)
	}
	res, err := cmd.Handler(ctx, args)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	return res
}

func TestEchoJoinsArgs(t *testing.T) {
	ctx := testContext()
	res := run(t, ctx, "echo", "hello", "world")
	if res.Kind != KindText || res.Text != "hello world" {
		t.Errorf("echo = %+v", res)
	}
}

func TestCdPwdCoherent(t *testing.T) {
	ctx := testContext()

	res := run(t, ctx, "cd", "projects")
	if res.Failed() {
		t.Fatalf("cd projects failed: %v", res.Err)
	}
	res = run(t, ctx, "pwd")
	if res.Text != "/home/guest/projects" {
		t.Errorf("pwd = %q", res.Text)
	}

	// cd .. walks back up.
	run(t, ctx, "cd", "..")
	if got := run(t, ctx, "pwd").Text; got != "/home/guest" {
		t.Errorf("pwd after cd .. = %q", got)
	}
}

func TestCdRejectsMissingDirectory(t *testing.T) {
	ctx := testContext()
	res := run(t, ctx, "cd", "nope")
	if !res.Failed() {
		t.Error("cd to a missing directory must fail")
	}
	if got := run(t, ctx, "pwd").Text; got != "/home/guest" {
		t.Errorf("failed cd must not move cwd, pwd = %q", got)
	}
}

func TestCatReadsVirtualFile(t *testing.T) {
	ctx := testContext()
	res := run(t, ctx, "cat", "readme.txt")
	if res.Failed() {
		t.Fatalf("cat readme.txt failed: %v", res.Err)
	}
	if !strings.Contains(res.Text, "Welcome to neuOS") {
		t.Errorf("cat output = %q", res.Text)
	}
}

func TestLsListsHome(t *testing.T) {
	ctx := testContext()
	res := run(t, ctx, "ls")
	if res.Kind != KindList {
		t.Fatalf("ls kind = %s", res.Kind)
	}
	joined := strings.Join(res.List, "\n")
	for _, want := range []string{"readme.txt", "projects/", "music/"} {
		if !strings.Contains(joined, want) {
			t.Errorf("ls output missing %q: %v", want, res.List)
		}
	}
}

func TestSetEnvVisibleToEnv(t *testing.T) {
	ctx := testContext()

	run(t, ctx, "set", "GREETING", "hi there")
	res := run(t, ctx, "env")
	if !strings.Contains(strings.Join(res.List, "\n"), "GREETING=hi there") {
		t.Errorf("env output missing GREETING: %v", res.List)
	}

	run(t, ctx, "unset", "GREETING")
	res = run(t, ctx, "env")
	if strings.Contains(strings.Join(res.List, "\n"), "GREETING") {
		t.Error("GREETING still present after unset")
	}
}

func TestSetEqualsForm(t *testing.T) {
	ctx := testContext()
	run(t, ctx, "set", "MODE=dark")
	if v, ok := ctx.Env.Get("MODE"); !ok || v != "dark" {
		t.Errorf("MODE = %q, %v", v, ok)
	}
}

func TestHelpMentionsEveryCategory(t *testing.T) {
	ctx := testContext()
	res := run(t, ctx, "help")
	if res.Kind != KindMarkup {
		t.Fatalf("help kind = %s", res.Kind)
	}
	for _, cat := range []string{"Core", "Filesystem", "Network", "System"} {
		if !strings.Contains(res.Text, cat) {
			t.Errorf("help output missing category %s", cat)
		}
	}
}

func TestUnknownGitSubcommandFails(t *testing.T) {
	ctx := testContext()
	res := run(t, ctx, "git", "rebase")
	if !res.Failed() {
		t.Error("git rebase should report failure")
	}
}

func TestThemeShowAndSwitch(t *testing.T) {
	ctx := testContext()

	res := run(t, ctx, "theme")
	if !strings.Contains(res.Text, "dark") {
		t.Errorf("default theme report = %q", res.Text)
	}

	res = run(t, ctx, "theme", "light")
	if res.Failed() {
		t.Fatalf("theme light failed: %v", res.Err)
	}
	if got := ctx.ThemeName(); got != "light" {
		t.Errorf("ThemeName = %q, want light", got)
	}

	res = run(t, ctx, "theme", "neon")
	if !res.Failed() {
		t.Error("unknown theme should fail")
	}
	if got := ctx.ThemeName(); got != "light" {
		t.Errorf("failed switch must not change theme, got %q", got)
	}
}

func TestHistoryExportWritesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ctx := testContext()
	ctx.History.Record("echo one")
	ctx.History.Record("pwd")

	res := run(t, ctx, "history", "export", "txt")
	if res.Failed() {
		t.Fatalf("history export failed: %v", res.Err)
	}
	if !strings.Contains(res.Text, "history written to ") {
		t.Fatalf("unexpected output: %q", res.Text)
	}

	path := strings.TrimPrefix(res.Text, "history written to ")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != "echo one\npwd\n" {
		t.Errorf("export content = %q", data)
	}
}

func TestHistoryExportRejectsUnknownFormat(t *testing.T) {
	ctx := testContext()
	ctx.History.Record("pwd")

	res := run(t, ctx, "history", "export", "pdf")
	if !res.Failed() {
		t.Error("unknown export format should fail")
	}
}

func TestVolumeClamped(t *testing.T) {
	ctx := testContext()
	run(t, ctx, "volume", "250")
	res := run(t, ctx, "volume")
	if !strings.Contains(res.Text, "100%") {
		t.Errorf("volume not clamped: %q", res.Text)
	}
}
