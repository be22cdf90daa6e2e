package domain

import "time"

// FieldCounts counts rows whose field validated
type FieldCounts struct {
	IP       int `json:"ip" yaml:"ip"`
	Hostname int `json:"hostname" yaml:"hostname"`
	FQDN     int `json:"fqdn" yaml:"fqdn"`
	MAC      int `json:"mac" yaml:"mac"`
}

// Summary aggregates statistics over one batch run
type Summary struct {
	RunID          string             `json:"run_id" yaml:"run_id"`
	Input          string             `json:"input,omitempty" yaml:"input,omitempty"`
	StartedAt      time.Time          `json:"started_at" yaml:"started_at"`
	FinishedAt     time.Time          `json:"finished_at" yaml:"finished_at"`
	Rows           int                `json:"rows" yaml:"rows"`
	AnomalousRows  int                `json:"anomalous_rows" yaml:"anomalous_rows"`
	Issues         int                `json:"issues" yaml:"issues"`
	Valid          FieldCounts        `json:"valid" yaml:"valid"`
	FQDNConsistent int                `json:"fqdn_consistent" yaml:"fqdn_consistent"`
	IssueTypes     map[Reason]int     `json:"issue_types,omitempty" yaml:"issue_types,omitempty"`
	DeviceTypes    map[DeviceType]int `json:"device_types,omitempty" yaml:"device_types,omitempty"`
	Confidence     map[Confidence]int `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	AddressTypes   map[string]int     `json:"address_types,omitempty" yaml:"address_types,omitempty"`
}

// NewSummary creates an empty summary for a run
func NewSummary(runID string) *Summary {
	return &Summary{
		RunID:        runID,
		StartedAt:    time.Now(),
		IssueTypes:   make(map[Reason]int),
		DeviceTypes:  make(map[DeviceType]int),
		Confidence:   make(map[Confidence]int),
		AddressTypes: make(map[string]int),
	}
}

// Observe folds one processed row into the summary.
// addressType is the IPv4 address type, empty when the IP did not validate.
func (s *Summary) Observe(out *OutputRecord, entry *AnomalyEntry, addressType string) {
	s.Rows++
	if out.IPValid {
		s.Valid.IP++
	}
	if out.HostnameValid {
		s.Valid.Hostname++
	}
	if out.FQDNValid {
		s.Valid.FQDN++
	}
	if out.FQDNConsistent {
		s.FQDNConsistent++
	}
	if out.MACValid {
		s.Valid.MAC++
	}
	s.DeviceTypes[out.DeviceType]++
	s.Confidence[out.DeviceTypeConfidence]++
	if addressType != "" {
		s.AddressTypes[addressType]++
	}

	if entry == nil {
		return
	}
	s.AnomalousRows++
	s.Issues += len(entry.Issues)
	for _, issue := range entry.Issues {
		s.IssueTypes[issue.Type]++
	}
}

// Finish stamps the end of the run
func (s *Summary) Finish() {
	s.FinishedAt = time.Now()
}

// Report is the complete result of a batch run
type Report struct {
	Anomalies []AnomalyEntry
	Summary   *Summary
}
