// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"testing"
)

func TestLooksLikeMarkup(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"<b>hi</b>", true},
		{"<div class=\"x\">text</div>", true},
		{"</b>", true},
		{"a < b", false},
		{"a < b > c", false},
		{"1 << 3", false},
		{"plain text", false},
		{"<3", false},
	}

	for _, tc := range tests {
		if got := LooksLikeMarkup(tc.input); got != tc.want {
			t.Errorf("LooksLikeMarkup(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  Kind
	}{
		{"markup string", "<b>hi</b>", KindMarkup},
		{"plain string", "a < b", KindText},
		{"string slice", []string{"a", "b"}, KindList},
		{"map", map[string]any{"k": 1}, KindStructured},
		{"error", errors.New("boom"), KindFailure},
		{"nil", nil, KindText},
		{"int", 42, KindText},
		{"struct", struct{ A int }{1}, KindStructured},
	}

	for _, tc := range tests {
		got := Classify(tc.input)
		if got.Kind != tc.want {
			t.Errorf("%s: Classify(%v).Kind = %s, want %s", tc.name, tc.input, got.Kind, tc.want)
		}
	}
}

func TestClassifyPassesResultThrough(t *testing.T) {
	r := Markup("<i>x</i>")
	got := Classify(r)
	if got.Kind != r.Kind || got.Text != r.Text {
		t.Errorf("Classify(Result) should pass through, got %+v", got)
	}
}

func TestFailed(t *testing.T) {
	if Text("ok").Failed() {
		t.Error("Text result must not count as failed")
	}
	if !Failuref("nope").Failed() {
		t.Error("Failure result must count as failed")
	}
}
