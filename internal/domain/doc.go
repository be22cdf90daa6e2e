// Package domain defines the core types for the asset inventory normalizer.
//
// This package contains the records that flow through the normalization
// pipeline and the value objects the validators and extractors return.
//
// # Records
//
// RawRecord is one row of the inventory export, keyed by column name. It makes
// no validity guarantees; missing columns read as the empty string.
//
// OutputRecord is the normalized row written to the clean table. Exactly one
// is produced per RawRecord and it is never mutated after the row pass ends.
//
// # Validation
//
// Result is the outcome of a field validator. It carries the normalized value
// and a stable Reason code; a valid Result always carries ReasonOK.
//
// # Anomalies
//
// AnomalyEntry records every field of a row that failed validation, excluding
// fields that were simply missing. Entries are observational and never alter
// the corresponding OutputRecord.
//
// # Classification
//
// DeviceType and Confidence describe the outcome of device classification.
// ConfidenceLow is the hand-off contract to any downstream classifier.
package domain
