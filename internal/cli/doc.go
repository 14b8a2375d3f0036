// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments and dispatches to the
// neuos entry points: the full-screen TUI, the line-mode REPL, and
// the config management commands.
package cli
