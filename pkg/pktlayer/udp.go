package pktlayer

import "encoding/binary"

// <linux/udp.h>
//
//	struct udphdr {
//	    __be16 source;
//	    __be16 dest;
//	    __be16 len;
//	    __sum16 check;
//	};

const SizeofUDP = 8

// UDPHeader is a decoded UDP datagram header. Length covers the whole
// datagram including the header itself.
type UDPHeader struct {
	SrcPort  uint16
	DstPort  uint16
	Length   uint16
	Checksum uint16
}

// DecodeUDP decodes the 8-byte UDP header at data[off:].
func DecodeUDP(data []byte, off int) (UDPHeader, int, error) {
	avail := max(len(data)-off, 0)
	if avail < SizeofUDP {
		return UDPHeader{}, 0, &TruncatedError{Layer: LayerUDP, Needed: SizeofUDP, Available: avail}
	}

	b := data[off : off+SizeofUDP]
	h := UDPHeader{
		SrcPort:  binary.BigEndian.Uint16(b[0:2]),
		DstPort:  binary.BigEndian.Uint16(b[2:4]),
		Length:   binary.BigEndian.Uint16(b[4:6]),
		Checksum: binary.BigEndian.Uint16(b[6:8]),
	}
	return h, off + SizeofUDP, nil
}
