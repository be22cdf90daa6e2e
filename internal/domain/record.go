package domain

import "strings"

// Input column names recognized in the inventory export
const (
	FieldIP          = "ip"
	FieldHostname    = "hostname"
	FieldFQDN        = "fqdn"
	FieldMAC         = "mac"
	FieldOwner       = "owner"
	FieldDeviceType  = "device_type"
	FieldNotes       = "notes"
	FieldSite        = "site"
	FieldSourceRowID = "source_row_id"
)

// InputColumns lists the recognized input columns
var InputColumns = []string{
	FieldIP,
	FieldHostname,
	FieldFQDN,
	FieldMAC,
	FieldOwner,
	FieldDeviceType,
	FieldNotes,
	FieldSite,
	FieldSourceRowID,
}

// OutputColumns is the fixed column order of the normalized table
var OutputColumns = []string{
	"ip", "ip_valid", "ip_version", "subnet_cidr",
	"hostname", "hostname_valid", "fqdn", "fqdn_consistent", "reverse_ptr",
	"mac", "mac_valid",
	"owner", "owner_email", "owner_team",
	"device_type", "device_type_confidence",
	"site", "site_normalized",
	"source_row_id", "normalization_steps",
}

// StepSeparator joins the normalization step trace in the output table
const StepSeparator = "|"

// RawRecord is one inventory row keyed by column name
type RawRecord map[string]string

// Get returns the raw value of a column, or "" if absent
func (r RawRecord) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// OutputRecord is one normalized inventory row
type OutputRecord struct {
	IP                   string     `json:"ip" yaml:"ip"`
	IPValid              bool       `json:"ip_valid" yaml:"ip_valid"`
	IPVersion            string     `json:"ip_version" yaml:"ip_version"`
	SubnetCIDR           string     `json:"subnet_cidr" yaml:"subnet_cidr"`
	Hostname             string     `json:"hostname" yaml:"hostname"`
	HostnameValid        bool       `json:"hostname_valid" yaml:"hostname_valid"`
	FQDN                 string     `json:"fqdn" yaml:"fqdn"`
	FQDNValid            bool       `json:"fqdn_valid" yaml:"fqdn_valid"`
	FQDNConsistent       bool       `json:"fqdn_consistent" yaml:"fqdn_consistent"`
	ReversePTR           string     `json:"reverse_ptr" yaml:"reverse_ptr"`
	MAC                  string     `json:"mac" yaml:"mac"`
	MACValid             bool       `json:"mac_valid" yaml:"mac_valid"`
	Owner                Owner      `json:"owner" yaml:"owner"`
	DeviceType           DeviceType `json:"device_type" yaml:"device_type"`
	DeviceTypeConfidence Confidence `json:"device_type_confidence" yaml:"device_type_confidence"`
	Site                 string     `json:"site" yaml:"site"`
	SiteNormalized       string     `json:"site_normalized" yaml:"site_normalized"`
	SourceRowID          string     `json:"source_row_id" yaml:"source_row_id"`
	Steps                []string   `json:"normalization_steps" yaml:"normalization_steps"`
}

// Row renders the record in OutputColumns order.
// Booleans are the literal strings "true" and "false".
func (o *OutputRecord) Row() []string {
	return []string{
		o.IP,
		formatBool(o.IPValid),
		o.IPVersion,
		o.SubnetCIDR,
		o.Hostname,
		formatBool(o.HostnameValid),
		o.FQDN,
		formatBool(o.FQDNConsistent),
		o.ReversePTR,
		o.MAC,
		formatBool(o.MACValid),
		o.Owner.Name,
		o.Owner.Email,
		o.Owner.Team,
		string(o.DeviceType),
		string(o.DeviceTypeConfidence),
		o.Site,
		o.SiteNormalized,
		o.SourceRowID,
		strings.Join(o.Steps, StepSeparator),
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
