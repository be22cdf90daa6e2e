// Package pipeline orchestrates normalization of inventory rows.
//
// ProcessRow runs the fixed sequence of stages over one record: IP, hostname,
// FQDN, FQDN consistency, reverse PTR, MAC, owner, device type and site. No
// stage's failure blocks a later one. Each stage appends to two append-only
// sequences local to the row: the normalization step trace and the list of
// anomaly issues. A row always yields exactly one OutputRecord and at most
// one AnomalyEntry.
//
// Runner drives ProcessRow over a Source in input order, writes every output
// record to a Sink, and collects anomaly entries and a Summary into a Report.
// Field validation failures are never errors; only Source and Sink errors
// abort a run.
package pipeline
