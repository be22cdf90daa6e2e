// Package extract pulls structured values out of free-text inventory fields.
//
// Both extractors are tolerant of missing or malformed input and never
// fabricate data: every value they return is a substring of the input,
// possibly lower-cased or mapped through a fixed table.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"assetnorm/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	parenthesis  = regexp.MustCompile(`\(([^)]+)\)`)
	// wordRun is a maximal run of Unicode letters, digits and underscores
	wordRun  = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	spaceRun = regexp.MustCompile(`\s+`)
	parens   = strings.NewReplacer("(", "", ")", "")
)

// teamKeywords name teams when they appear as whole words
var teamKeywords = []string{"platform", "ops", "sec", "facilities", "infrastructure", "network", "security"}

// teamRule finds a team in s and returns s with every occurrence removed
type teamRule struct {
	name    string
	extract func(s string) (team, rest string, ok bool)
}

// teamRules are tried in order; the first rule that matches wins
var teamRules = []teamRule{
	{name: "parenthesized", extract: parenthesizedTeam},
	{name: "keyword", extract: keywordTeam},
}

// ParseOwner splits a free-text owner string into name, email and team.
//
// The first email address is extracted and lower-cased, and all email
// addresses are removed from the text. The team comes from the first team
// rule that matches; every match of that rule is removed. Whatever remains,
// with parentheses dropped and whitespace collapsed, is the name.
func ParseOwner(raw string) domain.Owner {
	rest := strings.TrimSpace(raw)
	if rest == "" {
		return domain.Owner{}
	}

	var owner domain.Owner

	owner.Email, rest = extractEmails(rest)

	for _, rule := range teamRules {
		team, remaining, ok := rule.extract(rest)
		if !ok {
			continue
		}
		owner.Team = team
		rest = remaining
		break
	}

	rest = parens.Replace(rest)
	owner.Name = strings.TrimSpace(spaceRun.ReplaceAllString(rest, " "))

	return owner
}

// extractEmails returns the first email, lower-cased, and s without any of
// them. A match touching a non-ASCII letter or digit is part of a longer
// word and is not an email.
func extractEmails(s string) (string, string) {
	var (
		first string
		b     strings.Builder
		last  int
	)
	for _, loc := range emailPattern.FindAllStringIndex(s, -1) {
		if !wordBounded(s, loc[0], loc[1]) {
			continue
		}
		if first == "" {
			first = strings.ToLower(s[loc[0]:loc[1]])
		}
		b.WriteString(s[last:loc[0]])
		last = loc[1]
	}
	if first == "" {
		return "", s
	}
	b.WriteString(s[last:])
	return first, b.String()
}

func parenthesizedTeam(s string) (string, string, bool) {
	m := parenthesis.FindStringSubmatch(s)
	if m == nil {
		return "", s, false
	}
	return strings.ToLower(strings.TrimSpace(m[1])), parenthesis.ReplaceAllString(s, ""), true
}

// keywordTeam matches keywords against whole Unicode words, so "Renéops"
// does not yield "ops"
func keywordTeam(s string) (string, string, bool) {
	var team string
	rest := wordRun.ReplaceAllStringFunc(s, func(word string) string {
		if !isTeamKeyword(word) {
			return word
		}
		if team == "" {
			team = strings.ToLower(word)
		}
		return ""
	})
	if team == "" {
		return "", s, false
	}
	return team, rest, true
}

func isTeamKeyword(word string) bool {
	for _, kw := range teamKeywords {
		if strings.EqualFold(word, kw) {
			return true
		}
	}
	return false
}

// wordBounded reports whether s[start:end] has no non-ASCII letter or digit
// directly on either side. ASCII neighbors are already handled by \b.
func wordBounded(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isNonASCIIWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isNonASCIIWordRune(r) {
			return false
		}
	}
	return true
}

func isNonASCIIWordRune(r rune) bool {
	return r >= utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsNumber(r))
}
