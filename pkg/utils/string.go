// Package utils provides common utility functions.
package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeWhitespace replaces runs of whitespace with a single space and trims the ends.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// Capitalize upper-cases the first rune and lower-cases the rest.
// "mCdonald" becomes "Mcdonald".
func Capitalize(str string) string {
	if str == "" {
		return str
	}

	_, size := utf8.DecodeRuneInString(str)

	return cases.Upper(language.Und).String(str[:size]) + cases.Lower(language.Und).String(str[size:])
}

// TitleCase capitalizes the first letter of every word and lower-cases the rest.
// A letter following an apostrophe inside a word starts a new word, so
// "o'fallon" becomes "O'Fallon".
func TitleCase(str string) string {
	runes := []rune(cases.Title(language.English).String(str))

	for i := 1; i+1 < len(runes); i++ {
		if isApostrophe(runes[i]) && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
			runes[i+1] = unicode.ToTitle(runes[i+1])
		}
	}

	return string(runes)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

// TruncateString truncates string to max runes.
func TruncateString(str string, maxLength int) string {
	if utf8.RuneCountInString(str) <= maxLength {
		return str
	}

	return string([]rune(str)[:maxLength]) + "..."
}
