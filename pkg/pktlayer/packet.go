package pktlayer

import "fmt"

// ParsedPacket is the immutable composite result of one DecodePacket call.
// Layers are populated strictly in encapsulation order; a layer is present
// only if the preceding layer's type field selected it and enough bytes
// remained. The payload slice references the caller's buffer, so the buffer
// must outlive the result.
type ParsedPacket struct {
	eth     *EthernetHeader
	ipv4    *IPv4Header
	tcp     *TCPHeader
	udp     *UDPHeader
	payload []byte
	note    string
}

func (p *ParsedPacket) Ethernet() (EthernetHeader, bool) {
	if p.eth == nil {
		return EthernetHeader{}, false
	}
	return *p.eth, true
}

func (p *ParsedPacket) IPv4() (IPv4Header, bool) {
	if p.ipv4 == nil {
		return IPv4Header{}, false
	}
	return *p.ipv4, true
}

func (p *ParsedPacket) TCP() (TCPHeader, bool) {
	if p.tcp == nil {
		return TCPHeader{}, false
	}
	return *p.tcp, true
}

func (p *ParsedPacket) UDP() (UDPHeader, bool) {
	if p.udp == nil {
		return UDPHeader{}, false
	}
	return *p.udp, true
}

// Payload is whatever bytes remain past the deepest successfully parsed
// header. It is empty, never nil, when nothing remains.
func (p *ParsedPacket) Payload() []byte { return p.payload }

// Note explains why the walk stopped early on a successful result, e.g.
// an ethertype or IP protocol this engine does not parse. Empty when all
// requested layers were decoded.
func (p *ParsedPacket) Note() string { return p.note }

// DecodePacket walks the encapsulation layers of data and returns one
// immutable ParsedPacket.
//
// Stopping at a layer the caller may not care about is not an error: an
// ethertype other than IPv4 or an IP protocol other than TCP/UDP yields a
// successful result with a Note. Truncated or malformed headers return a
// *TruncatedError or *MalformedHeaderError; the first return value is then
// the partial packet holding the layers decoded before the failure, so
// callers can still inspect what was understood.
//
// Buffers that start at the network layer are decoded with
// assumeEthernetFraming=false.
func DecodePacket(data []byte, assumeEthernetFraming bool) (*ParsedPacket, error) {
	pkt := &ParsedPacket{payload: []byte{}}
	off := 0

	if assumeEthernetFraming {
		eth, next, err := DecodeEthernet(data, off)
		if err != nil {
			return pkt, err
		}
		pkt.eth = &eth
		off = next

		if eth.EtherType != EtherTypeIPv4 {
			pkt.note = fmt.Sprintf("unsupported ethertype: 0x%04x", uint16(eth.EtherType))
			pkt.payload = data[off:]
			return pkt, nil
		}
	}

	if len(data) > off {
		ip, next, err := DecodeIPv4(data, off)
		if err != nil {
			return pkt, err
		}
		pkt.ipv4 = &ip
		off = next

		switch ip.Protocol {
		case IPProtocolTCP:
			tcp, next, err := DecodeTCP(data, off)
			if err != nil {
				return pkt, err
			}
			pkt.tcp = &tcp
			off = next
		case IPProtocolUDP:
			udp, next, err := DecodeUDP(data, off)
			if err != nil {
				return pkt, err
			}
			pkt.udp = &udp
			off = next
		default:
			pkt.note = fmt.Sprintf("unsupported ip protocol: %d", uint8(ip.Protocol))
		}
	}

	// A header length field (IHL, DataOff) may claim more bytes than the
	// buffer holds; the payload is then empty rather than out of range.
	if off < len(data) {
		pkt.payload = data[off:]
	}
	return pkt, nil
}
