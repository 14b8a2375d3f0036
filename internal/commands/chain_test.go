// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"reflect"
	"testing"
)

func TestParseChain(t *testing.T) {
	tests := []struct {
		input string
		want  []Segment
	}{
		{
			"ls",
			[]Segment{{Text: "ls", Op: OpNone}},
		},
		{
			"a && b || c",
			[]Segment{
				{Text: "a", Op: OpAnd},
				{Text: "b", Op: OpOr},
				{Text: "c", Op: OpNone},
			},
		},
		{
			"a&&b",
			[]Segment{
				{Text: "a", Op: OpAnd},
				{Text: "b", Op: OpNone},
			},
		},
		{
			"a  ||   b",
			[]Segment{
				{Text: "a", Op: OpOr},
				{Text: "b", Op: OpNone},
			},
		},
		{
			// Trailing operator: the empty tail is dropped.
			"a &&",
			[]Segment{{Text: "a", Op: OpAnd}},
		},
		{
			// Doubled operators collapse; empties are dropped.
			"a && && b",
			[]Segment{
				{Text: "a", Op: OpAnd},
				{Text: "b", Op: OpNone},
			},
		},
		{
			"", nil,
		},
		{
			"   ", nil,
		},
		{
			"echo one && echo two && echo three",
			[]Segment{
				{Text: "echo one", Op: OpAnd},
				{Text: "echo two", Op: OpAnd},
				{Text: "echo three", Op: OpNone},
			},
		},
	}

	for _, tc := range tests {
		got := ParseChain(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseChain(%q) = %+v, want %+v", tc.input, got, tc.want)
		}
	}
}

func TestParseChainNoQuoteAwareness(t *testing.T) {
	// Documented limitation: operators inside quotes still split.
	got := ParseChain(`echo "a && b"`)
	if len(got) != 2 {
		t.Fatalf("expected the naive split to produce 2 segments, got %d: %+v", len(got), got)
	}
}
