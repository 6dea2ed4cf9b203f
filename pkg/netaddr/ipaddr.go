package netaddr

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// IPv4Addr is a 32-bit IPv4 address in host byte order, rendered as a
// dotted quad.
type IPv4Addr uint32

// ParseIPv4Addr parses a dotted-quad IPv4 address string. Each octet must
// be a decimal number in 0..255.
func ParseIPv4Addr(s string) (IPv4Addr, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return 0, &AddressFormatError{Input: s, Reason: fmt.Sprintf("expected 4 dot-separated octets, got %d", len(parts))}
	}

	var v4 IPv4Addr
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, &AddressFormatError{Input: s, Reason: fmt.Sprintf("octet %q is not a decimal number", part)}
		}
		if n < 0 || n > 255 {
			return 0, &AddressFormatError{Input: s, Reason: fmt.Sprintf("octet %q out of range 0..255", part)}
		}
		v4 = v4<<8 | IPv4Addr(n)
	}
	return v4, nil
}

// NewIPv4AddrFromBytes converts a raw 4-byte sequence to an IPv4Addr.
func NewIPv4AddrFromBytes(b []byte) (IPv4Addr, error) {
	if len(b) != 4 {
		return 0, &AddressFormatError{Input: fmt.Sprintf("% x", b), Reason: fmt.Sprintf("expected 4 bytes, got %d", len(b))}
	}
	return IPv4Addr(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
}

func NewIPv4AddrFromIP(ip net.IP) IPv4Addr {
	ip = ip.To4()
	return IPv4Addr(uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3]))
}

func (v4 IPv4Addr) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v4>>24), byte(v4>>16), byte(v4>>8), byte(v4))
}

func (v4 IPv4Addr) Bytes() []byte {
	return []byte{byte(v4 >> 24), byte(v4 >> 16), byte(v4 >> 8), byte(v4)}
}

func (v4 IPv4Addr) ToIP() net.IP {
	return net.IPv4(byte(v4>>24), byte(v4>>16), byte(v4>>8), byte(v4))
}

// pflag.Value
func (IPv4Addr) Type() string { return "IPv4Addr" }

func (v4 *IPv4Addr) Set(s string) error {
	addr, err := ParseIPv4Addr(s)
	if err != nil {
		return err
	}
	*v4 = addr
	return nil
}

func (v4 IPv4Addr) MarshalJSON() ([]byte, error) {
	return marshal(v4)
}

func (v4 *IPv4Addr) UnmarshalJSON(data []byte) error {
	return unmarshal(v4, data)
}
