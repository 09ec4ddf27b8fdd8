package mac

import (
	"net"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	octetCount = 6
	octetWidth = 2

	// LocalBit is the universal/local bit of the first octet.
	LocalBit = 0x02
)

var (
	ErrInvalidMac = errors.New("invalid MAC address")

	// One pattern per delimiter, all five separators must match
	colonMac  = regexp.MustCompile(`^[0-9A-Fa-f]{2}(:[0-9A-Fa-f]{2}){5}$`)
	hyphenMac = regexp.MustCompile(`^[0-9A-Fa-f]{2}(-[0-9A-Fa-f]{2}){5}$`)
)

// Surrounding whitespace, including a leading byte order mark
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

// IsValid reports whether s, ignoring surrounding whitespace, is six
// two-digit hex groups joined by either ':' or '-' throughout.
func IsValid(s string) bool {
	s = trim(s)

	return colonMac.MatchString(s) || hyphenMac.MatchString(s)
}

// Split returns the six hex octets of s in order, keeping their original
// case. ok is false when s is not a valid MAC address.
func Split(s string) (octets []string, ok bool) {
	if !IsValid(s) {
		return nil, false
	}

	digits := strings.Map(func(r rune) rune {
		if r == ':' || r == '-' {
			return -1
		}
		return r
	}, trim(s))

	for len(digits) > 0 {
		n := min(octetWidth, len(digits))
		octets = append(octets, digits[:n])
		digits = digits[n:]
	}

	// Guard against the grammar and the chunking drifting apart
	if len(octets) != octetCount {
		return nil, false
	}

	return octets, true
}

// Parse decodes s into a 6 byte hardware address. Only the colon and hyphen
// forms accepted by IsValid are parsed.
func Parse(s string) (net.HardwareAddr, error) {
	octets, ok := Split(s)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidMac, "%q", s)
	}

	hw := make(net.HardwareAddr, octetCount)
	for i, octet := range octets {
		b, err := strconv.ParseUint(octet, 16, 8)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidMac, "octet %q of %q", octet, s)
		}
		hw[i] = byte(b)
	}

	return hw, nil
}

// IsLocallyAdministered reports whether the universal/local bit of hw is set.
func IsLocallyAdministered(hw net.HardwareAddr) bool {
	return len(hw) > 0 && hw[0]&LocalBit != 0
}
