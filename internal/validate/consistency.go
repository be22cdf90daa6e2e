package validate

import (
	"strings"

	"github.com/miekg/dns"

	"assetnorm/internal/ipv4"
)

// FQDNConsistent reports whether the host name equals the first label of the
// FQDN, ignoring case. Either value being empty yields false.
func FQDNConsistent(hostname, fqdn string) bool {
	h := strings.ToLower(strings.TrimSpace(hostname))
	f := strings.ToLower(strings.TrimSpace(fqdn))
	if h == "" || f == "" {
		return false
	}

	first, _, _ := strings.Cut(f, ".")
	return h == first
}

// ReversePTR returns the in-addr.arpa name for an IPv4 address, or "" if the
// address does not validate. No lookup is performed.
func ReversePTR(ip string) string {
	result := ipv4.ValidateAndNormalize(ip)
	if !result.Valid {
		return ""
	}

	arpa, err := dns.ReverseAddr(result.Normalized)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(arpa, ".")
}
