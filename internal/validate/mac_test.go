package validate

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"assetnorm/internal/domain"
)

var canonicalMAC = regexp.MustCompile(`^[0-9A-F]{2}(:[0-9A-F]{2}){5}$`)

func TestMAC(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		normalized string
		reason     domain.Reason
	}{
		{"colon delimited", "aa:bb:cc:dd:ee:ff", true, "AA:BB:CC:DD:EE:FF", domain.ReasonOK},
		{"dash delimited", "AA-BB-CC-DD-EE-FF", true, "AA:BB:CC:DD:EE:FF", domain.ReasonOK},
		{"dot grouped", "aabb.ccdd.eeff", true, "AA:BB:CC:DD:EE:FF", domain.ReasonOK},
		{"bare digits", "001122334455", true, "00:11:22:33:44:55", domain.ReasonOK},
		{"mixed separators", "00:11-22.33:44-55", true, "00:11:22:33:44:55", domain.ReasonOK},
		{"surrounding whitespace", " 00:11:22:33:44:55 ", true, "00:11:22:33:44:55", domain.ReasonOK},
		{"empty", "", false, "", domain.ReasonMissing},
		{"too short", "1234", false, "1234", domain.ReasonWrongLength},
		{"too long", "00:11:22:33:44:55:66", false, "00:11:22:33:44:55:66", domain.ReasonWrongLength},
		{"non hex", "GG:HH:II:JJ:KK:LL", false, "GG:HH:II:JJ:KK:LL", domain.ReasonInvalidChars},
		{"inner space", "0011 22334455", false, "0011 22334455", domain.ReasonWrongLength},
		{"inner space at length", "0011 2233445", false, "0011 2233445", domain.ReasonInvalidChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MAC(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.normalized, got.Normalized)
			assert.Equal(t, tt.reason, got.Reason)
		})
	}
}

func TestMACNormalizedFormat(t *testing.T) {
	inputs := []string{
		"a1b2c3d4e5f6",
		"A1-B2-C3-D4-E5-F6",
		"a1b2.c3d4.e5f6",
		"ff:ff:ff:ff:ff:ff",
		"0:1:2:3:4:5:6:7:8:9:a:b",
	}
	for _, in := range inputs {
		got := MAC(in)
		if assert.True(t, got.Valid, "input %q", in) {
			assert.Regexp(t, canonicalMAC, got.Normalized)
		}
	}
}
