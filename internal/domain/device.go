package domain

// DeviceType represents the normalized kind of network asset
type DeviceType string

const (
	DeviceTypeServer  DeviceType = "server"
	DeviceTypeSwitch  DeviceType = "switch"
	DeviceTypeRouter  DeviceType = "router"
	DeviceTypePrinter DeviceType = "printer"
	DeviceTypeIoT     DeviceType = "iot"
	DeviceTypeDNS     DeviceType = "dns"
	DeviceTypeUnknown DeviceType = "unknown"
)

// Confidence represents how a device type was decided
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"   // Rule-table match on the declared type
	ConfidenceMedium Confidence = "medium" // Inferred from hostname or notes
	ConfidenceLow    Confidence = "low"    // Unresolved, needs manual or downstream classification
)

// Resolved returns true if the classification needs no follow-up
func (c Confidence) Resolved() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium
}
