// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
)

// =============================================================================
// CHAIN OPERATORS
// =============================================================================

// Operator is the chain operator that follows a segment.
type Operator string

const (
	// OpAnd runs the next segment only if this one succeeded.
	OpAnd Operator = "&&"
	// OpOr runs the next segment only if this one failed.
	OpOr Operator = "||"
	// OpNone marks the final segment of a chain.
	OpNone Operator = ""
)

// Segment is one command-plus-arguments unit of an input line. Op
// describes what follows the segment, not what precedes it.
type Segment struct {
	Text string
	Op   Operator
}

// =============================================================================
// CHAIN PARSER
// =============================================================================

// ParseChain splits a raw input line into ordered segments on && and ||
// operators. Segments are trimmed; empty segments (a trailing operator,
// doubled operators) are dropped.
//
// The split is purely textual: it does not understand quoting or
// escaping, so an operator inside a quoted argument still splits the
// line. Known limitation; none of the registered commands take && or
// || as argument text.
func ParseChain(rawLine string) []Segment {
	var segments []Segment

	rest := rawLine
	for {
		andIdx := strings.Index(rest, string(OpAnd))
		orIdx := strings.Index(rest, string(OpOr))

		// Pick whichever operator occurs first.
		idx := -1
		op := OpNone
		switch {
		case andIdx >= 0 && (orIdx < 0 || andIdx <= orIdx):
			idx, op = andIdx, OpAnd
		case orIdx >= 0:
			idx, op = orIdx, OpOr
		}

		if idx < 0 {
			if text := strings.TrimSpace(rest); text != "" {
				segments = append(segments, Segment{Text: text, Op: OpNone})
			}
			return segments
		}

		if text := strings.TrimSpace(rest[:idx]); text != "" {
			segments = append(segments, Segment{Text: text, Op: op})
		}
		rest = rest[idx+2:]
	}
}
