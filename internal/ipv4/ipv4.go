// Package ipv4 parses and canonicalizes dotted-quad IPv4 addresses and derives
// their classful default subnet and address type.
package ipv4

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"assetnorm/internal/domain"
)

// Class is the historical classful address class
type Class string

const (
	ClassA Class = "A"
	ClassB Class = "B"
	ClassC Class = "C"
	ClassD Class = "D" // multicast
	ClassE Class = "E" // reserved
)

// AddressType categorizes an address by its special-purpose range
type AddressType string

const (
	TypeUnspecified AddressType = "unspecified"
	TypeLoopback    AddressType = "loopback"
	TypePrivate     AddressType = "private"
	TypeLinkLocal   AddressType = "link_local"
	TypeShared      AddressType = "shared" // RFC 6598 carrier-grade NAT
	TypeMulticast   AddressType = "multicast"
	TypeBroadcast   AddressType = "broadcast"
	TypeReserved    AddressType = "reserved"
	TypePublic      AddressType = "public"
)

var sharedPrefix = netip.MustParsePrefix("100.64.0.0/10")

// ValidateAndNormalize parses a dotted-quad address.
// Leading zeros in an octet are accepted and dropped from the canonical form.
func ValidateAndNormalize(raw string) domain.Result {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Invalid("", domain.ReasonMissing)
	}

	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return domain.Invalid(s, domain.ReasonWrongPartCount)
	}

	octets := make([]string, 4)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return domain.Invalid(s, domain.ReasonNonNumeric)
		}
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return domain.Invalid(s, domain.ReasonOctetOutOfRange)
		}
		octets[i] = strconv.Itoa(n)
	}

	return domain.Valid(strings.Join(octets, "."))
}

// ClassOf returns the classful address class of a canonical address
func ClassOf(canonical string) (Class, error) {
	addr, err := parse(canonical)
	if err != nil {
		return "", err
	}
	first := addr.As4()[0]
	switch {
	case first < 128:
		return ClassA, nil
	case first < 192:
		return ClassB, nil
	case first < 224:
		return ClassC, nil
	case first < 240:
		return ClassD, nil
	default:
		return ClassE, nil
	}
}

// DefaultSubnet returns the classful network of a canonical address in CIDR
// notation. Class D and E addresses have no default subnet.
func DefaultSubnet(canonical string) string {
	addr, err := parse(canonical)
	if err != nil {
		return ""
	}
	class, _ := ClassOf(canonical)

	var bits int
	switch class {
	case ClassA:
		bits = 8
	case ClassB:
		bits = 16
	case ClassC:
		bits = 24
	default:
		return ""
	}

	prefix, err := addr.Prefix(bits)
	if err != nil {
		return ""
	}
	return prefix.String()
}

// Classify returns the special-purpose address type of a canonical address
func Classify(canonical string) AddressType {
	addr, err := parse(canonical)
	if err != nil {
		return ""
	}

	switch {
	case addr.IsUnspecified():
		return TypeUnspecified
	case addr.IsLoopback():
		return TypeLoopback
	case addr.IsPrivate():
		return TypePrivate
	case addr.IsLinkLocalUnicast():
		return TypeLinkLocal
	case sharedPrefix.Contains(addr):
		return TypeShared
	case addr.IsMulticast():
		return TypeMulticast
	case addr == netip.AddrFrom4([4]byte{255, 255, 255, 255}):
		return TypeBroadcast
	case addr.As4()[0] >= 240 || addr.As4()[0] == 0:
		return TypeReserved
	default:
		return TypePublic
	}
}

func parse(canonical string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(canonical)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parse address %q: %w", canonical, err)
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("not an IPv4 address: %q", canonical)
	}
	return addr, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
