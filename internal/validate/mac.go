package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"assetnorm/internal/domain"
)

const macHexDigits = 12

var (
	macSeparators = strings.NewReplacer(":", "", "-", "", ".", "")
	macHex        = regexp.MustCompile(`^[0-9A-Fa-f]{12}$`)
)

// MAC validates a 48-bit hardware address and normalizes it to
// upper-case colon-separated pairs. Colon, dash and dot separators are
// stripped before validation, so XX:XX:XX:XX:XX:XX, XX-XX-XX-XX-XX-XX and
// XXXX.XXXX.XXXX are all accepted.
func MAC(raw string) domain.Result {
	mac := strings.TrimSpace(raw)
	if mac == "" {
		return domain.Invalid("", domain.ReasonMissing)
	}

	digits := macSeparators.Replace(mac)
	if utf8.RuneCountInString(digits) != macHexDigits {
		return domain.Invalid(mac, domain.ReasonWrongLength)
	}
	if !macHex.MatchString(digits) {
		return domain.Invalid(mac, domain.ReasonInvalidChars)
	}

	digits = strings.ToUpper(digits)
	pairs := make([]string, 0, macHexDigits/2)
	for i := 0; i < macHexDigits; i += 2 {
		pairs = append(pairs, digits[i:i+2])
	}
	return domain.Valid(strings.Join(pairs, ":"))
}
