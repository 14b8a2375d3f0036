// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements the neuOS terminal's command table.
//
// It contains the flat command registry built by merging ten named
// groups (core, filesystem, network, resume, audio, effects, apps,
// system, vendor, environment), the chain parser that splits input
// lines on && and ||, the quote-aware tokenizer, prefix tab completion,
// and the closed Result variant handlers return.
//
// None of the commands do real work: network and filesystem output is
// canned, system stats are invented, vendor CLIs are parodies. The
// engineering lives in how they are registered, resolved, chained and
// rendered - see internal/terminal for the dispatch side.
package commands
