package pktlayer

import (
	"encoding/binary"
	"fmt"

	"github.com/pktlens/pktlens/pkg/netaddr"
)

// <linux/ip.h>
//
//	struct iphdr {
//	    __u8 ihl : 4, version : 4;
//	    __u8 tos;        // Type of Service
//	    __be16 tot_len;  // Total Length
//	    __be16 id;       // Identification
//	    __be16 frag_off; // Fragment Offset and Flags
//	    __u8 ttl;        // Time to Live
//	    __u8 protocol;   // Protocol (TCP, UDP, etc.)
//	    __u16 check;     // Header Checksum
//	    __be32 saddr;    // Source IP Address
//	    __be32 daddr;    // Destination IP Address
//	};

// SizeofIPv4 is the fixed part only; options occupy (IHL-5)*4 further bytes.
const SizeofIPv4 = 20

// IPv4Header models the 20-byte fixed part of an IPv4 header. Options are
// not modeled; callers needing them must re-slice the buffer using IHL.
type IPv4Header struct {
	Version  uint8
	IHL      uint8 // header length in 32-bit words, 5..15
	TOS      uint8
	TotalLen uint16
	ID       uint16
	Flags    uint8  // 3 bits
	FragOff  uint16 // 13 bits
	TTL      uint8
	Protocol IPProtocol
	Checksum uint16
	SrcIP    netaddr.IPv4Addr
	DstIP    netaddr.IPv4Addr
}

// HeaderLen is the true header length in bytes, IHL*4.
func (h *IPv4Header) HeaderLen() int { return int(h.IHL) * 4 }

// DecodeIPv4 decodes the fixed IPv4 header at data[off:]. The returned
// offset advances by the header's own length field (IHL*4), not by
// SizeofIPv4, so options are skipped.
func DecodeIPv4(data []byte, off int) (IPv4Header, int, error) {
	avail := max(len(data)-off, 0)
	if avail < SizeofIPv4 {
		return IPv4Header{}, 0, &TruncatedError{Layer: LayerIPv4, Needed: SizeofIPv4, Available: avail}
	}

	b := data[off : off+SizeofIPv4]
	ihl := b[0] & 0x0f
	if ihl < 5 {
		return IPv4Header{}, 0, &MalformedHeaderError{Layer: LayerIPv4, Detail: fmt.Sprintf("IHL %d too small", ihl)}
	}

	fragField := binary.BigEndian.Uint16(b[6:8])
	h := IPv4Header{
		Version:  b[0] >> 4,
		IHL:      ihl,
		TOS:      b[1],
		TotalLen: binary.BigEndian.Uint16(b[2:4]),
		ID:       binary.BigEndian.Uint16(b[4:6]),
		Flags:    uint8(fragField >> 13),
		FragOff:  fragField & 0x1fff,
		TTL:      b[8],
		Protocol: IPProtocol(b[9]),
		Checksum: binary.BigEndian.Uint16(b[10:12]),
		SrcIP:    netaddr.IPv4Addr(binary.BigEndian.Uint32(b[12:16])),
		DstIP:    netaddr.IPv4Addr(binary.BigEndian.Uint32(b[16:20])),
	}
	return h, off + h.HeaderLen(), nil
}
