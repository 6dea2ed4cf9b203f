package pktlayer

import "fmt"

// EtherType is the 16-bit Ethernet frame type identifying the encapsulated
// protocol. Unknown values are preserved as-is, never an error.
type EtherType uint16

const (
	EtherTypeIPv4 EtherType = 0x0800
	EtherTypeARP  EtherType = 0x0806
	EtherTypeVLAN EtherType = 0x8100
	EtherTypeIPv6 EtherType = 0x86dd
)

var etherType2str = map[EtherType]string{
	EtherTypeIPv4: "IPv4",
	EtherTypeARP:  "ARP",
	EtherTypeVLAN: "802.1Q",
	EtherTypeIPv6: "IPv6",
}

func (t EtherType) String() string {
	s, ok := etherType2str[t]
	if !ok {
		return fmt.Sprintf("unknown(0x%04x)", uint16(t))
	}
	return s
}

// IPProtocol is the IPv4 protocol number of the encapsulated transport.
type IPProtocol uint8

const (
	IPProtocolICMP   IPProtocol = 1
	IPProtocolTCP    IPProtocol = 6
	IPProtocolUDP    IPProtocol = 17
	IPProtocolIPv6   IPProtocol = 41
	IPProtocolICMPv6 IPProtocol = 58
)

var ipProtocol2str = map[IPProtocol]string{
	IPProtocolICMP:   "ICMP",
	IPProtocolTCP:    "TCP",
	IPProtocolUDP:    "UDP",
	IPProtocolIPv6:   "IPv6",
	IPProtocolICMPv6: "ICMPv6",
}

func (p IPProtocol) String() string {
	s, ok := ipProtocol2str[p]
	if !ok {
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
	return s
}
