// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the neuOS terminal's command table: the
// registry, the chain and token parsers, tab completion, and the ten
// built-in command groups.
package commands

import (
	"fmt"
	"reflect"
	"regexp"
)

// =============================================================================
// RESULT KIND
// =============================================================================

// Kind classifies what a handler produced. Handlers pick their own kind;
// Classify exists only as a compatibility path for values of unknown
// shape.
type Kind int

const (
	// KindText is plain text, rendered literally (never as markup).
	KindText Kind = iota
	// KindMarkup is rich text, rendered through the markup pipeline.
	KindMarkup
	// KindList is an ordered list of lines, joined with newlines.
	KindList
	// KindStructured is an arbitrary value, serialized as indented JSON.
	KindStructured
	// KindFailure is an error outcome; renders as an error block and
	// counts as failed for && / || chain policy.
	KindFailure
)

// String returns the kind name for logs and tests.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMarkup:
		return "markup"
	case KindList:
		return "list"
	case KindStructured:
		return "structured"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// =============================================================================
// RESULT
// =============================================================================

// Result is the closed variant a handler returns. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Result struct {
	Kind Kind

	// Text holds the payload for KindText and KindMarkup.
	Text string

	// List holds the payload for KindList.
	List []string

	// Value holds the payload for KindStructured.
	Value any

	// Err holds the payload for KindFailure.
	Err error
}

// Failed reports whether this result counts as a failure for chain
// continuation policy.
func (r Result) Failed() bool {
	return r.Kind == KindFailure
}

// Text builds a plain-text result.
func Text(s string) Result {
	return Result{Kind: KindText, Text: s}
}

// Textf builds a plain-text result from a format string.
func Textf(format string, args ...any) Result {
	return Result{Kind: KindText, Text: fmt.Sprintf(format, args...)}
}

// Markup builds a rich-text result.
func Markup(s string) Result {
	return Result{Kind: KindMarkup, Text: s}
}

// List builds a line-list result.
func List(lines ...string) Result {
	return Result{Kind: KindList, List: lines}
}

// Structured builds a structured-value result.
func Structured(v any) Result {
	return Result{Kind: KindStructured, Value: v}
}

// Failure builds a failed result from an error.
func Failure(err error) Result {
	return Result{Kind: KindFailure, Err: err}
}

// Failuref builds a failed result from a format string.
func Failuref(format string, args ...any) Result {
	return Result{Kind: KindFailure, Err: fmt.Errorf(format, args...)}
}

// =============================================================================
// COMPATIBILITY CLASSIFICATION
// =============================================================================

// markupPattern is a permissive tag-shape check: anything that looks
// like an opening or closing tag. Deliberately loose - "a < b" must not
// match, "<b>hi</b>" must.
var markupPattern = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9-]*(\s[^<>]*)?>`)

// LooksLikeMarkup reports whether a string contains tag-like syntax.
func LooksLikeMarkup(s string) bool {
	return markupPattern.MatchString(s)
}

// Classify infers a Result from an untyped value. This is the fallback
// path for handlers ported before the variant type existed; new handlers
// should construct their Result explicitly.
func Classify(v any) Result {
	switch val := v.(type) {
	case Result:
		return val
	case error:
		return Failure(val)
	case string:
		if LooksLikeMarkup(val) {
			return Markup(val)
		}
		return Text(val)
	case []string:
		return List(val...)
	case nil:
		return Text("")
	case map[string]any, map[string]string:
		return Structured(val)
	default:
		rv := reflect.ValueOf(val)
		switch rv.Kind() {
		case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Pointer:
			return Structured(val)
		default:
			// Numbers, bools and the rest coerce to literal text.
			return Text(fmt.Sprint(val))
		}
	}
}
