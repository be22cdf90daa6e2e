package extract

import (
	"strings"

	"assetnorm/internal/domain"
)

// synonym maps a declared device type spelling to its canonical type
type synonym struct {
	alias string
	typ   domain.DeviceType
}

// deviceSynonyms is consulted when the device type is declared
var deviceSynonyms = []synonym{
	{"server", domain.DeviceTypeServer},
	{"srv", domain.DeviceTypeServer},
	{"host", domain.DeviceTypeServer},
	{"switch", domain.DeviceTypeSwitch},
	{"sw", domain.DeviceTypeSwitch},
	{"router", domain.DeviceTypeRouter},
	{"gw", domain.DeviceTypeRouter},
	{"gateway", domain.DeviceTypeRouter},
	{"printer", domain.DeviceTypePrinter},
	{"print", domain.DeviceTypePrinter},
	{"iot", domain.DeviceTypeIoT},
	{"camera", domain.DeviceTypeIoT},
	{"cam", domain.DeviceTypeIoT},
	{"dns", domain.DeviceTypeDNS},
	{"nameserver", domain.DeviceTypeDNS},
}

// keywordFamily infers a device type when any keyword occurs in the hints
type keywordFamily struct {
	typ      domain.DeviceType
	keywords []string
}

// deviceFamilies are scanned in priority order; the first family with a
// matching keyword wins. Keywords match as substrings.
var deviceFamilies = []keywordFamily{
	{domain.DeviceTypeServer, []string{"server", "srv", "host"}},
	{domain.DeviceTypeSwitch, []string{"switch", "sw"}},
	{domain.DeviceTypeRouter, []string{"router", "gw", "gateway"}},
	{domain.DeviceTypePrinter, []string{"printer", "print"}},
	{domain.DeviceTypeIoT, []string{"camera", "cam", "iot"}},
	{domain.DeviceTypeDNS, []string{"dns", "nameserver"}},
}

// ClassifyDevice normalizes a declared device type, or infers one from the
// host name and notes when none is declared.
//
// A declared type is mapped through the synonym table with high confidence;
// unmapped values pass through lower-cased. An inferred type has medium
// confidence. When nothing matches, the result is unknown with low
// confidence, leaving resolution to a downstream classifier.
func ClassifyDevice(declared, hostnameHint, notesHint string) (domain.DeviceType, domain.Confidence) {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if declared != "" {
		for _, s := range deviceSynonyms {
			if s.alias == declared {
				return s.typ, domain.ConfidenceHigh
			}
		}
		return domain.DeviceType(declared), domain.ConfidenceHigh
	}

	combined := strings.ToLower(hostnameHint + " " + notesHint)
	for _, family := range deviceFamilies {
		for _, kw := range family.keywords {
			if strings.Contains(combined, kw) {
				return family.typ, domain.ConfidenceMedium
			}
		}
	}

	return domain.DeviceTypeUnknown, domain.ConfidenceLow
}
