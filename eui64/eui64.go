// Package eui64 expands 48-bit MAC addresses into EUI-64 identifiers and
// renders them as IPv6 interface identifiers, as described in RFC 4291,
// Section 2.5.1 and Appendix A.
package eui64

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/adaricorp/mac-eui64/mac"
)

const (
	LinkLocalPrefix = "fe80::"

	ipv6GroupWidth = 4
)

// EUI64 is a 64-bit extended unique identifier in network byte order.
type EUI64 [8]byte

// String renders the identifier as eight colon separated lowercase octets.
func (e EUI64) String() string {
	octets := make([]string, len(e))
	for i, b := range e {
		octets[i] = fmt.Sprintf("%02x", b)
	}

	return strings.Join(octets, ":")
}

// FromHardwareAddr inserts ff:fe between the OUI and NIC halves of a 6 byte
// MAC. With ipv6 set the universal/local bit of the first octet is flipped,
// giving the modified EUI-64 used for IPv6 interface identifiers.
func FromHardwareAddr(hw net.HardwareAddr, ipv6 bool) (EUI64, bool) {
	if len(hw) != 6 {
		return EUI64{}, false
	}

	first := uint8(hw[0])
	if ipv6 {
		first ^= mac.LocalBit
	}

	return EUI64{first, hw[1], hw[2], 0xff, 0xfe, hw[3], hw[4], hw[5]}, true
}

// Convert returns the EUI-64 of addr in colon notation. ok is false when
// addr is not a valid MAC address.
func Convert(addr string, ipv6 bool) (string, bool) {
	hw, err := mac.Parse(addr)
	if err != nil {
		return "", false
	}

	eui, ok := FromHardwareAddr(hw, ipv6)
	if !ok {
		return "", false
	}

	return eui.String(), true
}

// Ipv6Format regroups a colon separated EUI-64 into four 16-bit groups,
// e.g. aa:bb:cc:ff:fe:dd:ee:ff becomes aabb:ccff:fedd:eeff. The input is not
// validated and leading zeros are kept.
func Ipv6Format(eui string) string {
	digits := strings.ReplaceAll(eui, ":", "")

	groups := make([]string, 0, 4)
	for len(digits) > 0 {
		n := min(ipv6GroupWidth, len(digits))
		groups = append(groups, digits[:n])
		digits = digits[n:]
	}

	return strings.Join(groups, ":")
}

// LinkLocal prefixes the IPv6 formatted EUI-64 with fe80::.
func LinkLocal(eui string) string {
	return LinkLocalPrefix + Ipv6Format(eui)
}

// Address builds the SLAAC address for addr inside prefix, placing the
// modified EUI-64 in the low 64 bits. The prefix must be IPv6 and /64 or
// shorter.
func Address(prefix netip.Prefix, addr string) (netip.Addr, bool) {
	if !prefix.IsValid() || !prefix.Addr().Is6() || prefix.Bits() > 64 {
		return netip.Addr{}, false
	}

	hw, err := mac.Parse(addr)
	if err != nil {
		return netip.Addr{}, false
	}

	eui, _ := FromHardwareAddr(hw, true)

	ip := prefix.Masked().Addr().As16()
	copy(ip[8:], eui[:])

	return netip.AddrFrom16(ip), true
}
