// Package token splits free-text queries into search keywords.
package token

import (
	"strings"
	"unicode/utf8"
)

// MinLength is the minimum keyword length in characters.
// Shorter words (prepositions, units) are dropped.
const MinLength = 3

// Tokenize lower-cases the query, splits it on whitespace runs and keeps
// only tokens of at least MinLength characters, in query order.
func Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= MinLength {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// MatchesAny reports whether any token is a substring of text.
func MatchesAny(text string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
