package pktlayer

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// <linux/tcp.h>
//
//	struct tcphdr {
//	    __be16 source;
//	    __be16 dest;
//	    __be32 seq;
//	    __be32 ack_seq;
//	    __u8   doff:4, res1:4;
//	    __u8   fin:1, syn:1, rst:1, psh:1, ack:1, urg:1, ece:1, cwr:1;
//	    __be16 window;
//	    __sum16 check;
//	    __be16 urg_ptr;
//	};

// SizeofTCP is the fixed part only; options occupy (DataOff-5)*4 further bytes.
const SizeofTCP = 20

// TCPFlags is the 8-bit flag field of a TCP header.
type TCPFlags uint8

const (
	TCPFlagFIN TCPFlags = 1 << iota
	TCPFlagSYN
	TCPFlagRST
	TCPFlagPSH
	TCPFlagACK
	TCPFlagURG
	TCPFlagECE
	TCPFlagCWR
)

var tcpFlagNames = []struct {
	flag TCPFlags
	name string
}{
	{TCPFlagFIN, "FIN"},
	{TCPFlagSYN, "SYN"},
	{TCPFlagRST, "RST"},
	{TCPFlagPSH, "PSH"},
	{TCPFlagACK, "ACK"},
	{TCPFlagURG, "URG"},
	{TCPFlagECE, "ECE"},
	{TCPFlagCWR, "CWR"},
}

func (flags TCPFlags) Has(flag TCPFlags) bool { return flags&flag != 0 }

// Names lists the set flags in wire-bit order. Unknown bits cannot occur;
// all eight are named.
func (flags TCPFlags) Names() []string {
	names := []string{}
	for _, f := range tcpFlagNames {
		if flags.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return names
}

func (flags TCPFlags) String() string {
	return strings.Join(flags.Names(), "|")
}

// TCPHeader models the 20-byte fixed part of a TCP header. Options are not
// modeled; callers needing them must re-slice the buffer using DataOff.
type TCPHeader struct {
	SrcPort  uint16
	DstPort  uint16
	Seq      uint32
	Ack      uint32
	DataOff  uint8 // header length in 32-bit words, 5..15
	Flags    TCPFlags
	Window   uint16
	Checksum uint16
	UrgPtr   uint16
}

// HeaderLen is the true header length in bytes, DataOff*4.
func (h *TCPHeader) HeaderLen() int { return int(h.DataOff) * 4 }

// DecodeTCP decodes the fixed TCP header at data[off:]. The returned offset
// advances by the header's own data offset field (DataOff*4), skipping
// options.
func DecodeTCP(data []byte, off int) (TCPHeader, int, error) {
	// A preceding header's length field may have pushed off past the end of
	// the buffer; the diagnostic then reports zero bytes available.
	avail := max(len(data)-off, 0)
	if avail < SizeofTCP {
		return TCPHeader{}, 0, &TruncatedError{Layer: LayerTCP, Needed: SizeofTCP, Available: avail}
	}

	b := data[off : off+SizeofTCP]
	dataOff := b[12] >> 4
	if dataOff < 5 {
		return TCPHeader{}, 0, &MalformedHeaderError{Layer: LayerTCP, Detail: fmt.Sprintf("data offset %d too small", dataOff)}
	}

	h := TCPHeader{
		SrcPort:  binary.BigEndian.Uint16(b[0:2]),
		DstPort:  binary.BigEndian.Uint16(b[2:4]),
		Seq:      binary.BigEndian.Uint32(b[4:8]),
		Ack:      binary.BigEndian.Uint32(b[8:12]),
		DataOff:  dataOff,
		Flags:    TCPFlags(b[13]),
		Window:   binary.BigEndian.Uint16(b[14:16]),
		Checksum: binary.BigEndian.Uint16(b[16:18]),
		UrgPtr:   binary.BigEndian.Uint16(b[18:20]),
	}
	return h, off + h.HeaderLen(), nil
}
