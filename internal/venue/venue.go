// Package venue provides the known-venue catalog and the lookup structures
// the matcher consults when linking events to venues.
package venue

import (
	"regexp"
	"strings"
)

// keywordMinLen is the minimum token length for the keyword index; shorter
// words ("the", "bar") are too common to identify a venue.
const keywordMinLen = 4

// Venue is a physical place a scraped event can be linked to. The catalog is
// loaded once per ingestion run and treated as read-only.
type Venue struct {
	ID       int
	Name     string
	Location string
}

var (
	nonWord      = regexp.MustCompile(`\W+`)
	nonWordSpace = regexp.MustCompile(`[^\w\s]`)
)

// Clean lowercases a string and strips everything that is neither a word
// character nor whitespace, giving fuzzy comparison a stable form on both
// sides.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(nonWordSpace.ReplaceAllString(s, "")))
}

// Tokenize splits a string into lowercase word tokens.
func Tokenize(s string) []string {
	var tokens []string
	for _, tok := range nonWord.Split(strings.ToLower(s), -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
