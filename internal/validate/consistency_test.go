package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFQDNConsistent(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		fqdn     string
		expected bool
	}{
		{"matching first label", "web01", "web01.corp.example.com", true},
		{"case insensitive", "WEB01", "web01.Corp.Example.com", true},
		{"different host", "web02", "web01.corp.example.com", false},
		{"hostname is a prefix only", "web", "web01.corp.example.com", false},
		{"empty hostname", "", "web01.corp.example.com", false},
		{"empty fqdn", "web01", "", false},
		{"fqdn without dot", "web01", "web01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FQDNConsistent(tt.hostname, tt.fqdn))
		})
	}
}

func TestReversePTR(t *testing.T) {
	assert.Equal(t, "1.1.168.192.in-addr.arpa", ReversePTR("192.168.1.1"))
	assert.Equal(t, "4.3.2.10.in-addr.arpa", ReversePTR(" 010.2.3.4 "))
	assert.Equal(t, "", ReversePTR("999.1.1.1"))
	assert.Equal(t, "", ReversePTR(""))
}

func TestReversePTRRoundTrip(t *testing.T) {
	for _, ip := range []string{"0.0.0.0", "10.20.30.40", "172.16.254.1", "192.168.1.1", "255.255.255.255", "8.8.4.4"} {
		ptr := ReversePTR(ip)
		require.True(t, strings.HasSuffix(ptr, ".in-addr.arpa"), "ptr %q", ptr)

		labels := strings.Split(ptr, ".")
		require.GreaterOrEqual(t, len(labels), 4)
		rebuilt := fmt.Sprintf("%s.%s.%s.%s", labels[3], labels[2], labels[1], labels[0])
		assert.Equal(t, ip, rebuilt)
	}
}
