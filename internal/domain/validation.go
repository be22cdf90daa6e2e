package domain

// Reason is a stable identifier naming why a field passed or failed validation
type Reason string

const (
	ReasonOK                 Reason = "ok"
	ReasonMissing            Reason = "missing"
	ReasonTooLong            Reason = "too_long"
	ReasonInvalidChars       Reason = "invalid_chars"
	ReasonWrongLength        Reason = "wrong_length"
	ReasonNotFQDN            Reason = "not_fqdn"
	ReasonMissingTLD         Reason = "missing_tld"
	ReasonLabelTooLong       Reason = "label_too_long"
	ReasonEmptyLabel         Reason = "empty_label"
	ReasonInvalidLabelFormat Reason = "invalid_label_format"

	// IPv4 reasons
	ReasonWrongPartCount  Reason = "wrong_part_count"
	ReasonNonNumeric      Reason = "non_numeric"
	ReasonOctetOutOfRange Reason = "octet_out_of_range"
)

// Result is the outcome of validating a single field.
// Normalized is always defined, possibly empty, regardless of validity.
type Result struct {
	Valid      bool
	Normalized string
	Reason     Reason
}

// Valid builds a successful result
func Valid(normalized string) Result {
	return Result{Valid: true, Normalized: normalized, Reason: ReasonOK}
}

// Invalid builds a failed result carrying the value to report
func Invalid(value string, reason Reason) Result {
	return Result{Normalized: value, Reason: reason}
}

// IsMissing reports whether the field was absent rather than malformed
func (r Result) IsMissing() bool {
	return !r.Valid && r.Reason == ReasonMissing
}
