// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package term implements the Bubble Tea terminal view: the scrolling
// output log, the input line with history and tab completion, and the
// message bridge that carries engine callbacks into the update loop.
package term
