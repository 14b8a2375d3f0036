// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"
)

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := ParseArgs(nil)
	if cmd != CmdTUI {
		t.Errorf("no args should start the TUI, got %v", cmd)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{[]string{"repl"}, CmdREPL},
		{[]string{"shell"}, CmdREPL},
		{[]string{"config", "show"}, CmdConfig},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"whatever"}, CmdTUI},
	}

	for _, tc := range tests {
		cmd, _ := ParseArgs(tc.argv)
		if cmd != tc.want {
			t.Errorf("ParseArgs(%v) = %v, want %v", tc.argv, cmd, tc.want)
		}
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--theme", "light", "-q", "--no-effects", "repl"})
	if cmd != CmdREPL {
		t.Fatalf("cmd = %v, want CmdREPL", cmd)
	}
	if args.Theme != "light" {
		t.Errorf("theme = %q, want light", args.Theme)
	}
	if !args.Quiet || !args.NoEffects {
		t.Errorf("flags not parsed: %+v", args)
	}
}

func TestParseThemeEqualsForm(t *testing.T) {
	_, args := ParseArgs([]string{"--theme=dark"})
	if args.Theme != "dark" {
		t.Errorf("theme = %q, want dark", args.Theme)
	}
}

func TestParseConfigSubcommand(t *testing.T) {
	_, args := ParseArgs([]string{"config", "set", "ui.theme", "dark"})
	if args.Subcommand != "set" {
		t.Errorf("subcommand = %q, want set", args.Subcommand)
	}
	if args.ConfigKey != "ui.theme" || args.ConfigVal != "dark" {
		t.Errorf("key/val = %q/%q", args.ConfigKey, args.ConfigVal)
	}
}

func TestArgParserFlags(t *testing.T) {
	p := NewArgParser([]string{"set", "ui.theme", "dark", "--json", "--lines", "50", "--since=2024-01-01"})

	if p.Subcommand() != "set" {
		t.Errorf("Subcommand = %q", p.Subcommand())
	}
	if p.Positional(1) != "ui.theme" || p.Positional(2) != "dark" {
		t.Errorf("positionals wrong: %q %q", p.Positional(1), p.Positional(2))
	}
	if !p.BoolFlag("json") {
		t.Error("--json should parse as bool flag")
	}
	if p.Flag("lines") != "50" {
		t.Errorf("lines = %q", p.Flag("lines"))
	}
	if p.Flag("since") != "2024-01-01" {
		t.Errorf("since = %q", p.Flag("since"))
	}
	if p.Positional(99) != "" {
		t.Error("out-of-range positional should be empty")
	}
}

func TestArgParserBoolEqualsForm(t *testing.T) {
	p := NewArgParser([]string{"--confirm=false"})
	if p.BoolFlag("confirm") {
		t.Error("--confirm=false should be false")
	}
	if !p.HasFlag("confirm") {
		t.Error("HasFlag should still see the flag")
	}
}

func TestArgParserFlagOrDefault(t *testing.T) {
	p := NewArgParser([]string{"show"})
	if got := p.FlagOrDefault("format", "toml"); got != "toml" {
		t.Errorf("FlagOrDefault = %q, want toml", got)
	}
}
