// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides durable key-value persistence for the neuOS
// terminal.
//
// The store intentionally mirrors browser local storage semantics
// (string keys, string values, last write wins) because the terminal's
// only persistent state - command history - was designed against that
// contract. SQLite gives us atomic durable writes without inventing a
// file format.
package storage
