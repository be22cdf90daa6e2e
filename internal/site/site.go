// Package site canonicalizes free-text site and location names.
package site

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxAcronymLength is the longest all-upper word kept verbatim
const maxAcronymLength = 4

// emptySentinels are values that mean "no site"
var emptySentinels = []string{"n/a", "na", "none"}

// tokenRule maps whole words, compared case-insensitively, to a replacement
type tokenRule struct {
	aliases     []string
	replacement string
}

// tokenRules expand abbreviations; the first rule naming a word wins
var tokenRules = []tokenRule{
	{[]string{"bldg", "building"}, "Building"},
	{[]string{"campus", "camp"}, "Campus"},
	{[]string{"hq", "headquarters"}, "HQ"},
}

var (
	// wordRun is a maximal run of Unicode letters, digits and underscores
	wordRun       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	dashSeparator = regexp.MustCompile(`\s*-\s*`)
)

// Normalize returns the canonical display form of a site name.
// Normalize is idempotent.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" || isEmptySentinel(s) {
		return ""
	}

	s = wordRun.ReplaceAllStringFunc(s, expandToken)
	s = dashSeparator.ReplaceAllString(s, " ")

	// Casers carry state and are not shared between calls.
	title, lower := cases.Title(language.Und), cases.Lower(language.Und)

	words := strings.Fields(s)
	for i, word := range words {
		if isAcronym(word) {
			continue
		}
		r, size := utf8.DecodeRuneInString(word)
		words[i] = title.String(string(r)) + lower.String(word[size:])
	}

	s = strings.Join(words, " ")
	if isEmptySentinel(s) {
		return ""
	}
	return s
}

func expandToken(word string) string {
	for _, rule := range tokenRules {
		for _, alias := range rule.aliases {
			if strings.EqualFold(word, alias) {
				return rule.replacement
			}
		}
	}
	return word
}

func isEmptySentinel(s string) bool {
	for _, sentinel := range emptySentinels {
		if strings.EqualFold(s, sentinel) {
			return true
		}
	}
	return false
}

// isAcronym reports whether word is short and has cased letters, all upper
func isAcronym(word string) bool {
	if utf8.RuneCountInString(word) > maxAcronymLength {
		return false
	}
	cased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
