// Package input classifies raw user input as a structured code or free text.
package input

import (
	"regexp"
	"strings"
	"unicode"
)

// Class is the classification of a raw query.
type Class string

// Input classes.
const (
	Empty Class = "empty"
	Code  Class = "code"
	Text  Class = "text"
)

// codeRegex: digit runs separated by single dots, optional trailing dot.
var codeRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*\.?$`)

// Trim strips leading and trailing white space, including the byte order
// mark U+FEFF that strings.TrimSpace keeps.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

// Classify trims raw and decides how it should be searched.
// Whitespace-only input is Empty.
func Classify(raw string) Class {
	s := Trim(raw)
	if s == "" {
		return Empty
	}
	if IsCode(s) {
		return Code
	}
	return Text
}

// IsCode reports whether the trimmed string is shaped like a catalog code.
func IsCode(s string) bool {
	return codeRegex.MatchString(Trim(s))
}
