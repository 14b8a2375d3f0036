// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the neuOS terminal:
// rune- and width-aware string truncation, padding, and atomic file
// writes used by the config and storage layers.
package util
