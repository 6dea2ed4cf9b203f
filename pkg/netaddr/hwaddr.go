package netaddr

import (
	"bytes"
	"fmt"
	"strings"
)

// HwAddr is a 6-byte MAC address. The canonical string form is lowercase
// colon-separated hex, e.g. "aa:bb:cc:dd:ee:ff".
type HwAddr [6]byte

// ParseHwAddr parses a colon-separated MAC address string. Hex digits are
// case-insensitive; parsing then formatting normalizes to lowercase.
func ParseHwAddr(s string) (HwAddr, error) {
	var addr HwAddr

	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return HwAddr{}, &AddressFormatError{Input: s, Reason: fmt.Sprintf("expected 6 colon-separated octets, got %d", len(parts))}
	}
	for i, part := range parts {
		if len(part) != 2 {
			return HwAddr{}, &AddressFormatError{Input: s, Reason: fmt.Sprintf("octet %q is not two hex digits", part)}
		}
		hi, ok1 := hexNibble(part[0])
		lo, ok2 := hexNibble(part[1])
		if !ok1 || !ok2 {
			return HwAddr{}, &AddressFormatError{Input: s, Reason: fmt.Sprintf("octet %q is not two hex digits", part)}
		}
		addr[i] = hi<<4 | lo
	}
	return addr, nil
}

// NewHwAddrFromBytes converts a raw 6-byte sequence to a HwAddr.
func NewHwAddrFromBytes(b []byte) (HwAddr, error) {
	if len(b) != 6 {
		return HwAddr{}, &AddressFormatError{Input: fmt.Sprintf("% x", b), Reason: fmt.Sprintf("expected 6 bytes, got %d", len(b))}
	}
	var addr HwAddr
	copy(addr[:], b)
	return addr, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (addr HwAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", addr[0], addr[1], addr[2], addr[3], addr[4], addr[5])
}

func (addr HwAddr) Bytes() []byte { return addr[:] }

func (addr HwAddr) Compare(other HwAddr) int {
	return bytes.Compare(addr[:], other[:])
}

// pflag.Value
func (HwAddr) Type() string { return "HwAddr" }

func (addr *HwAddr) Set(s string) error {
	a, err := ParseHwAddr(s)
	if err != nil {
		return err
	}
	*addr = a
	return nil
}

func (addr HwAddr) MarshalJSON() ([]byte, error) {
	return marshal(addr)
}

func (addr *HwAddr) UnmarshalJSON(data []byte) error {
	return unmarshal(addr, data)
}
