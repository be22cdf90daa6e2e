package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"assetnorm/internal/domain"
)

const (
	maxHostnameLength = 253
	maxLabelLength    = 63
)

var (
	hostnameCharset = regexp.MustCompile(`^[A-Za-z0-9.\-]+$`)
	// First and last characters alphanumeric, at most 63 characters overall.
	hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9\-.]{0,61}[A-Za-z0-9])?$`)
)

// Hostname validates an RFC 1123 style host name and lower-cases it.
//
// Checks run in order and the first failure wins: missing, too_long,
// invalid_chars (character set), then each label left to right
// (label_too_long, empty_label, invalid_label_format), and finally the
// overall pattern, which also reports invalid_chars.
func Hostname(raw string) domain.Result {
	hostname := strings.TrimSpace(raw)
	if hostname == "" {
		return domain.Invalid("", domain.ReasonMissing)
	}

	if utf8.RuneCountInString(hostname) > maxHostnameLength {
		return domain.Invalid(hostname, domain.ReasonTooLong)
	}

	if !hostnameCharset.MatchString(hostname) {
		return domain.Invalid(hostname, domain.ReasonInvalidChars)
	}

	for _, label := range strings.Split(hostname, ".") {
		if reason := checkLabel(label); reason != domain.ReasonOK {
			return domain.Invalid(hostname, reason)
		}
	}

	if !hostnamePattern.MatchString(hostname) {
		return domain.Invalid(hostname, domain.ReasonInvalidChars)
	}

	return domain.Valid(strings.ToLower(hostname))
}

func checkLabel(label string) domain.Reason {
	switch {
	case len(label) > maxLabelLength:
		return domain.ReasonLabelTooLong
	case len(label) == 0:
		return domain.ReasonEmptyLabel
	case strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-"):
		return domain.ReasonInvalidLabelFormat
	}
	return domain.ReasonOK
}

// FQDN validates a fully qualified domain name.
// The input must contain a dot and pass the Hostname rules, and the
// normalized name must have at least two labels.
func FQDN(raw string) domain.Result {
	fqdn := strings.TrimSpace(raw)
	if fqdn == "" {
		return domain.Invalid("", domain.ReasonMissing)
	}

	if !strings.Contains(fqdn, ".") {
		return domain.Invalid(fqdn, domain.ReasonNotFQDN)
	}

	result := Hostname(fqdn)
	if !result.Valid {
		return domain.Invalid(fqdn, result.Reason)
	}

	if len(strings.Split(result.Normalized, ".")) < 2 {
		return domain.Invalid(fqdn, domain.ReasonMissingTLD)
	}

	return result
}
