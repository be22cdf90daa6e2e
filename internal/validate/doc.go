// Package validate implements the per-field validators and cross-field
// consistency checks for inventory rows.
//
// Every validator is a pure function from a raw string to a domain.Result and
// never returns an error: malformed input is reported through the Result's
// reason code. Validators trim surrounding whitespace before checking.
package validate
