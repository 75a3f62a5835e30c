package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nameLinePattern matches short title-cased fragments: a leading capital
// followed by a handful of words drawn from name-safe characters
var nameLinePattern = regexp.MustCompile(`^\p{Lu}[\p{L}\p{N}'&.-]*(?: [\p{L}\p{N}'&.-]+){0,5}$`)

const (
	minNameLength = 3
	maxNameLength = 60
)

// normalizeWhitespace replaces various unicode whitespace characters with
// regular spaces and collapses runs into one
func normalizeWhitespace(text string) string {
	normalized := strings.Builder{}
	for _, r := range text {
		if unicode.IsSpace(r) {
			normalized.WriteRune(' ')
		} else {
			normalized.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(normalized.String()), " ")
}

// looksLikeName reports whether a text-line fragment has the shape of a
// restaurant name
func looksLikeName(line string) bool {
	length := utf8.RuneCountInString(line)
	if length < minNameLength || length > maxNameLength {
		return false
	}
	return nameLinePattern.MatchString(line)
}
