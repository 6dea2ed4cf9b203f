package pktlayer

import (
	"fmt"
	"strings"
)

// Summary renders a one-line, tcpdump-like description of a parsed packet.
//
//	00:11:22:33:44:55 > aa:bb:cc:dd:ee:ff, ethertype IPv6 (0x86dd), length 60
//	192.168.1.1.80 > 192.168.1.2.4660: Flags [P.], seq 305419896, ack 2271560481, win 8192, length 11
//	172.17.0.1.53 > 172.17.0.10.35912: UDP, length 48
//	192.168.1.1 > 192.168.1.2: ICMP, length 16
func (p *ParsedPacket) Summary() string {
	b := strings.Builder{}

	if p.ipv4 == nil {
		if p.eth == nil {
			return fmt.Sprintf("payload only, length %d", len(p.payload))
		}
		b.WriteString(fmt.Sprintf("%s > %s, ethertype %s (0x%04x), length %d",
			p.eth.SrcMAC, p.eth.DstMAC, p.eth.EtherType, uint16(p.eth.EtherType), len(p.payload)))
		return b.String()
	}

	switch {
	case p.tcp != nil:
		b.WriteString(fmt.Sprintf("%s.%d > %s.%d: ", p.ipv4.SrcIP, p.tcp.SrcPort, p.ipv4.DstIP, p.tcp.DstPort))
		b.WriteString(fmt.Sprintf("Flags [%s]", formatTCPFlags(p.tcp.Flags)))
		if p.tcp.Flags.Has(TCPFlagSYN | TCPFlagFIN | TCPFlagRST | TCPFlagPSH) {
			b.WriteString(fmt.Sprintf(", seq %d", p.tcp.Seq))
		}
		if p.tcp.Flags.Has(TCPFlagACK) {
			b.WriteString(fmt.Sprintf(", ack %d", p.tcp.Ack))
		}
		b.WriteString(fmt.Sprintf(", win %d, length %d", p.tcp.Window, len(p.payload)))
	case p.udp != nil:
		b.WriteString(fmt.Sprintf("%s.%d > %s.%d: UDP, length %d",
			p.ipv4.SrcIP, p.udp.SrcPort, p.ipv4.DstIP, p.udp.DstPort, len(p.payload)))
	default:
		b.WriteString(fmt.Sprintf("%s > %s: %s, length %d",
			p.ipv4.SrcIP, p.ipv4.DstIP, p.ipv4.Protocol, len(p.payload)))
	}
	return b.String()
}

// tcpdump flag letters, ACK rendered as '.'
func formatTCPFlags(flags TCPFlags) string {
	b := []byte{}
	if flags.Has(TCPFlagSYN) {
		b = append(b, 'S')
	}
	if flags.Has(TCPFlagPSH) {
		b = append(b, 'P')
	}
	if flags.Has(TCPFlagFIN) {
		b = append(b, 'F')
	}
	if flags.Has(TCPFlagRST) {
		b = append(b, 'R')
	}
	if flags.Has(TCPFlagURG) {
		b = append(b, 'U')
	}
	if flags.Has(TCPFlagECE) {
		b = append(b, 'E')
	}
	if flags.Has(TCPFlagCWR) {
		b = append(b, 'W')
	}
	if flags.Has(TCPFlagACK) {
		b = append(b, '.')
	}
	return string(b)
}
