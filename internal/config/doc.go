// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads, validates, saves, and watches the neuOS
// configuration file.
//
// The configuration is TOML with environment variable overrides
// (NEUOS_* variables). Missing files fall back to defaults, so a
// fresh install runs without any setup.
package config
