package pktlayer

import (
	"encoding/binary"

	"github.com/pktlens/pktlens/pkg/netaddr"
)

// <linux/if_ether.h>
//
//	struct ethhdr {
//	    unsigned char h_dest[6];
//	    unsigned char h_source[6];
//	    __be16 h_proto;
//	};

const SizeofEthernet = 14

// EthernetHeader is a decoded Ethernet frame header. Values are copied out
// of the input buffer and never reference it.
type EthernetHeader struct {
	DstMAC    netaddr.HwAddr
	SrcMAC    netaddr.HwAddr
	EtherType EtherType
}

// DecodeEthernet decodes the 14-byte Ethernet header at data[off:] and
// returns the offset of the encapsulated payload.
func DecodeEthernet(data []byte, off int) (EthernetHeader, int, error) {
	avail := max(len(data)-off, 0)
	if avail < SizeofEthernet {
		return EthernetHeader{}, 0, &TruncatedError{Layer: LayerEthernet, Needed: SizeofEthernet, Available: avail}
	}

	var h EthernetHeader
	copy(h.DstMAC[:], data[off:off+6])
	copy(h.SrcMAC[:], data[off+6:off+12])
	h.EtherType = EtherType(binary.BigEndian.Uint16(data[off+12 : off+14]))
	return h, off + SizeofEthernet, nil
}
