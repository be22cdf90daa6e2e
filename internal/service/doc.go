// Package service runs normalization jobs over files on disk.
//
// NormalizeService opens the inventory export, streams it through the row
// pipeline into the clean CSV, and then writes the anomaly report and the
// optional run summary and Ansible inventory. Every finished or failed run
// is published on an EventBus so long-running callers such as the watch
// command can report outcomes.
package service
