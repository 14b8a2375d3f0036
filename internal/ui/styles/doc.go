// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles centralizes colors and lipgloss styles for the neuOS
// TUI so every view draws from one palette.
package styles
