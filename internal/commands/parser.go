// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"
	"unicode"
)

// =============================================================================
// TOKENIZER
// =============================================================================

// Tokenize splits one chain segment into a command name and its
// arguments. The name is lowercased and sanitized; arguments are kept
// verbatim. Returns an empty name for a blank segment.
func Tokenize(segmentText string) (name string, args []string) {
	tokens := splitCommandLine(segmentText)
	if len(tokens) == 0 {
		return "", nil
	}
	if len(tokens) == 1 {
		return SanitizeName(tokens[0]), nil
	}
	return SanitizeName(tokens[0]), tokens[1:]
}

// SanitizeName lowercases a command name and strips every character
// outside the allowed set (letters, digits, hyphen, dot). Dots are kept
// because some registered names contain them.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitCommandLine splits a command line into tokens, respecting single
// and double quotes so arguments may contain spaces.
func splitCommandLine(input string) []string {
	var tokens []string
	var current strings.Builder
	var inSingleQuote, inDoubleQuote bool

	for i := 0; i < len(input); i++ {
		char := rune(input[i])

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote

		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote

		case char == '\\' && i+1 < len(input) && (inDoubleQuote || inSingleQuote):
			// Escape sequence inside quotes.
			next := rune(input[i+1])
			if next == '"' || next == '\'' || next == '\\' {
				current.WriteRune(next)
				i++
			} else {
				current.WriteRune(char)
			}

		case unicode.IsSpace(char) && !inSingleQuote && !inDoubleQuote:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
