// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for neuos.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdREPL
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet     bool
	Verbose   bool
	Theme     string
	NoEffects bool

	// Command-specific
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `neuos - a desktop terminal that lives in your terminal

NeuOS is a simulated operating system shell. It boots into a full-screen
terminal with a virtual filesystem, command history, tab completion,
and command chaining with && and ||.

Usage:
  neuos                      Start the TUI (default)
  neuos repl                 Line-mode shell (no alternate screen)
  neuos config [show|set|path]  Configuration
  neuos version              Print version
  neuos help                 Show this help

Config Commands:
  neuos config show          Show the effective configuration
  neuos config set KEY VAL   Set a configuration value and save
  neuos config path          Print the config file location

  Keys: ui.theme, terminal.history_capacity, terminal.queue_limit,
        terminal.log_capacity, terminal.hostname, audio.volume

Global Flags:
  --theme NAME    Override the UI theme (dark, light, auto)
  --no-effects    Disable particle and glass effects
  -q, --quiet     Minimal output
  -v, --verbose   Debug output

Examples:
  neuos                           Boot the desktop terminal
  neuos --theme light             Light mode
  neuos repl                      Plain stdin/stdout shell
  neuos config set ui.theme dark  Persist the dark theme

Inside the terminal, try: help, ls, cat readme.txt, show resume,
ping example.com && echo reachable, history

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("neuos version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
	fmt.Printf("  Go version: %s\n", runtime.Version())
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given arguments. Split out of Parse for tests.
func ParseArgs(argv []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsed

	case "repl", "shell":
		return CmdREPL, parsed

	case "config":
		parseConfigArgs(&parsed, remaining)
		return CmdConfig, parsed

	case "version", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// Unknown command defaults to the TUI.
		parsed.Raw = append([]string{cmd}, remaining...)
		return CmdTUI, parsed
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsed Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsed.Quiet = true
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--no-effects":
			parsed.NoEffects = true
		case "--theme":
			if i+1 < len(args) {
				i++
				parsed.Theme = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--theme=") {
				parsed.Theme = strings.TrimPrefix(arg, "--theme=")
			} else {
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsed
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Subcommand = parser.Subcommand()
	args.ConfigKey = parser.Positional(1)
	args.ConfigVal = parser.Positional(2)
}

// HandleVersion handles the "version" command.
func HandleVersion() {
	PrintVersion()
}

// HandleHelp handles the "help" command.
func HandleHelp() {
	PrintUsage()
}
