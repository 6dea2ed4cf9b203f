package pktlayer

import (
	"bytes"
	"encoding/hex"
	"net"
	"strings"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ethernet + IPv4 + TCP + "Hello World", 54 bytes.
const sampleTCPHex = "001122334455" + // dst MAC
	"aabbccddeeff" + // src MAC
	"0800" + // ethertype IPv4
	"45" + "00" + "003c" + "1234" + "4000" + "40" + "06" + "0000" + "c0a80101" + "c0a80102" +
	"0050" + "1234" + "12345678" + "87654321" + "50" + "18" + "2000" + "0000" + "0000" +
	"48656c6c6f20576f726c64" // "Hello World"

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	data, err := hex.DecodeString(s)
	require.NoError(t, err)
	return data
}

func serialize(t *testing.T, ls ...gopacket.SerializableLayer) []byte {
	t.Helper()
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	err := gopacket.SerializeLayers(buf, opts, ls...)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecodePacketSample(t *testing.T) {
	pkt, err := DecodePacket(mustHex(t, sampleTCPHex), true)
	require.NoError(t, err)
	assert.Empty(t, pkt.Note())

	eth, ok := pkt.Ethernet()
	require.True(t, ok)
	assert.Equal(t, "00:11:22:33:44:55", eth.DstMAC.String())
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", eth.SrcMAC.String())
	assert.Equal(t, EtherTypeIPv4, eth.EtherType)

	ip, ok := pkt.IPv4()
	require.True(t, ok)
	assert.Equal(t, uint8(4), ip.Version)
	assert.Equal(t, uint8(5), ip.IHL)
	assert.Equal(t, 20, ip.HeaderLen())
	assert.Equal(t, uint16(60), ip.TotalLen)
	assert.Equal(t, uint16(0x1234), ip.ID)
	assert.Equal(t, uint8(0x2), ip.Flags) // DF
	assert.Equal(t, uint16(0), ip.FragOff)
	assert.Equal(t, uint8(64), ip.TTL)
	assert.Equal(t, IPProtocolTCP, ip.Protocol)
	assert.Equal(t, "192.168.1.1", ip.SrcIP.String())
	assert.Equal(t, "192.168.1.2", ip.DstIP.String())

	tcp, ok := pkt.TCP()
	require.True(t, ok)
	assert.Equal(t, uint16(80), tcp.SrcPort)
	assert.Equal(t, uint16(4660), tcp.DstPort)
	assert.Equal(t, uint32(0x12345678), tcp.Seq)
	assert.Equal(t, uint32(0x87654321), tcp.Ack)
	assert.Equal(t, uint8(5), tcp.DataOff)
	assert.Equal(t, []string{"PSH", "ACK"}, tcp.Flags.Names())
	assert.Equal(t, uint16(0x2000), tcp.Window)

	_, ok = pkt.UDP()
	assert.False(t, ok)
	assert.Equal(t, []byte("Hello World"), pkt.Payload())
}

func TestDecodePacketTruncatedEthernet(t *testing.T) {
	pkt, err := DecodePacket(make([]byte, 13), true)
	require.Error(t, err)

	truncated, ok := err.(*TruncatedError)
	require.True(t, ok)
	assert.Equal(t, LayerEthernet, truncated.Layer)
	assert.Equal(t, 14, truncated.Needed)
	assert.Equal(t, 13, truncated.Available)

	// The partial result carries no layers.
	require.NotNil(t, pkt)
	_, ok = pkt.Ethernet()
	assert.False(t, ok)
	assert.Empty(t, pkt.Payload())
}

func TestDecodePacketEthernetOnly(t *testing.T) {
	// Exactly 14 bytes with ethertype IPv4: the IPv4 layer is simply not
	// attempted on zero remaining bytes.
	pkt, err := DecodePacket(mustHex(t, "001122334455aabbccddeeff0800"), true)
	require.NoError(t, err)

	_, ok := pkt.Ethernet()
	assert.True(t, ok)
	_, ok = pkt.IPv4()
	assert.False(t, ok)
	assert.Empty(t, pkt.Payload())
	assert.Empty(t, pkt.Note())
}

func TestDecodePacketUnsupportedEtherType(t *testing.T) {
	// 46 payload bytes keep the frame at the 60-byte Ethernet minimum, so
	// serialization adds no trailing pad.
	payload := bytes.Repeat([]byte{0xab}, 46)
	data := serialize(t,
		&layers.Ethernet{
			DstMAC:       net.HardwareAddr{0, 0x11, 0x22, 0x33, 0x44, 0x55},
			SrcMAC:       net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
			EthernetType: layers.EthernetTypeIPv6,
		},
		gopacket.Payload(payload),
	)

	pkt, err := DecodePacket(data, true)
	require.NoError(t, err)

	eth, ok := pkt.Ethernet()
	require.True(t, ok)
	assert.Equal(t, EtherTypeIPv6, eth.EtherType)
	assert.Equal(t, "unsupported ethertype: 0x86dd", pkt.Note())

	_, ok = pkt.IPv4()
	assert.False(t, ok)
	assert.Equal(t, payload, pkt.Payload())
}

func TestDecodePacketUnsupportedIPProtocol(t *testing.T) {
	// Echo request with 24 data bytes: 66-byte frame, above the Ethernet
	// minimum, so no pad ends up in the payload.
	icmpBody := append([]byte{8, 0, 0, 0, 0, 1, 0, 1}, bytes.Repeat([]byte{0x61}, 24)...)
	data := serialize(t,
		&layers.Ethernet{
			DstMAC:       net.HardwareAddr{0, 0x11, 0x22, 0x33, 0x44, 0x55},
			SrcMAC:       net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
			EthernetType: layers.EthernetTypeIPv4,
		},
		&layers.IPv4{
			Version:  4,
			TTL:      64,
			Protocol: layers.IPProtocolICMPv4,
			SrcIP:    net.IPv4(192, 168, 1, 1),
			DstIP:    net.IPv4(192, 168, 1, 2),
		},
		gopacket.Payload(icmpBody),
	)

	pkt, err := DecodePacket(data, true)
	require.NoError(t, err)

	ip, ok := pkt.IPv4()
	require.True(t, ok)
	assert.Equal(t, IPProtocolICMP, ip.Protocol)
	assert.Equal(t, "unsupported ip protocol: 1", pkt.Note())

	_, hasTCP := pkt.TCP()
	_, hasUDP := pkt.UDP()
	assert.False(t, hasTCP)
	assert.False(t, hasUDP)

	// Payload is every byte following the IPv4 header.
	assert.Equal(t, icmpBody, pkt.Payload())
}

func TestDecodePacketUDP(t *testing.T) {
	ip := layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IPv4(172, 16, 23, 2),
		DstIP:    net.IPv4(172, 16, 23, 1),
	}
	udp := layers.UDP{SrcPort: 12345, DstPort: 53}
	udp.SetNetworkLayerForChecksum(&ip)

	// 18 payload bytes make the frame exactly 60 bytes.
	payload := []byte("dns query padding?")
	data := serialize(t,
		&layers.Ethernet{
			DstMAC:       net.HardwareAddr{22, 70, 177, 58, 175, 3},
			SrcMAC:       net.HardwareAddr{86, 102, 96, 15, 235, 58},
			EthernetType: layers.EthernetTypeIPv4,
		},
		&ip, &udp,
		gopacket.Payload(payload),
	)

	pkt, err := DecodePacket(data, true)
	require.NoError(t, err)

	u, ok := pkt.UDP()
	require.True(t, ok)
	assert.Equal(t, uint16(12345), u.SrcPort)
	assert.Equal(t, uint16(53), u.DstPort)
	assert.Equal(t, uint16(SizeofUDP+len(payload)), u.Length)
	assert.Equal(t, payload, pkt.Payload())
}

func TestDecodePacketMinimumFramePadding(t *testing.T) {
	// Frames below the 60-byte Ethernet minimum are padded with zeros on
	// serialization; the pad bytes sit past the UDP datagram and so belong
	// to the decoded payload, which covers whatever bytes remain.
	ip := layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IPv4(172, 16, 23, 2),
		DstIP:    net.IPv4(172, 16, 23, 1),
	}
	udp := layers.UDP{SrcPort: 12345, DstPort: 53}
	udp.SetNetworkLayerForChecksum(&ip)

	data := serialize(t,
		&layers.Ethernet{
			DstMAC:       net.HardwareAddr{22, 70, 177, 58, 175, 3},
			SrcMAC:       net.HardwareAddr{86, 102, 96, 15, 235, 58},
			EthernetType: layers.EthernetTypeIPv4,
		},
		&ip, &udp,
		gopacket.Payload([]byte("dns?")),
	)
	require.Len(t, data, 60)

	pkt, err := DecodePacket(data, true)
	require.NoError(t, err)

	u, ok := pkt.UDP()
	require.True(t, ok)
	assert.Equal(t, uint16(SizeofUDP+4), u.Length)

	// 4 real bytes plus 14 pad zeros.
	assert.Len(t, pkt.Payload(), 18)
	assert.Equal(t, []byte("dns?"), pkt.Payload()[:4])
	assert.Equal(t, bytes.Repeat([]byte{0}, 14), pkt.Payload()[4:])
}

func TestDecodePacketTCPOptions(t *testing.T) {
	ip := layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.IPv4(10, 0, 0, 1),
		DstIP:    net.IPv4(10, 0, 0, 2),
	}
	tcp := layers.TCP{SrcPort: 54213, DstPort: 80, SYN: true}
	tcp.Options = append(tcp.Options, layers.TCPOption{
		OptionType:   layers.TCPOptionKindMSS,
		OptionLength: 4,
		OptionData:   []byte{0x05, 0xb4},
	})
	tcp.SetNetworkLayerForChecksum(&ip)

	data := serialize(t,
		&layers.Ethernet{
			DstMAC:       net.HardwareAddr{22, 70, 177, 58, 175, 3},
			SrcMAC:       net.HardwareAddr{86, 102, 96, 15, 235, 58},
			EthernetType: layers.EthernetTypeIPv4,
		},
		&ip, &tcp,
		gopacket.Payload([]byte("GET / HTTP/1.1\r\n")),
	)

	pkt, err := DecodePacket(data, true)
	require.NoError(t, err)

	h, ok := pkt.TCP()
	require.True(t, ok)
	assert.Equal(t, uint8(6), h.DataOff) // 20 fixed + 4 option bytes
	assert.Equal(t, 24, h.HeaderLen())
	assert.Equal(t, []string{"SYN"}, h.Flags.Names())

	// Options are skipped, not surfaced: the payload starts right after
	// DataOff*4 bytes.
	assert.Equal(t, []byte("GET / HTTP/1.1\r\n"), pkt.Payload())
}

func TestDecodePacketNoEthernetFraming(t *testing.T) {
	// Network-layer buffer: the sample packet without its first 14 bytes.
	data := mustHex(t, sampleTCPHex)[SizeofEthernet:]

	pkt, err := DecodePacket(data, false)
	require.NoError(t, err)

	_, ok := pkt.Ethernet()
	assert.False(t, ok)
	ip, ok := pkt.IPv4()
	require.True(t, ok)
	assert.Equal(t, "192.168.1.1", ip.SrcIP.String())
	_, ok = pkt.TCP()
	assert.True(t, ok)
	assert.Equal(t, []byte("Hello World"), pkt.Payload())
}

func TestDecodePacketPartialOnFailure(t *testing.T) {
	// Valid Ethernet header followed by 10 bytes: IPv4 decode fails but the
	// link layer decoded beforehand is kept.
	data := mustHex(t, "001122334455aabbccddeeff0800"+strings.Repeat("00", 10))

	pkt, err := DecodePacket(data, true)
	require.Error(t, err)

	truncated, ok := err.(*TruncatedError)
	require.True(t, ok)
	assert.Equal(t, LayerIPv4, truncated.Layer)
	assert.Equal(t, 20, truncated.Needed)
	assert.Equal(t, 10, truncated.Available)

	_, ok = pkt.Ethernet()
	assert.True(t, ok)
	_, ok = pkt.IPv4()
	assert.False(t, ok)
}

func TestDecodePacketTransportPastBuffer(t *testing.T) {
	// IHL claims 60 header bytes over a 20-byte buffer with protocol TCP:
	// the transport decode starts past the end and fails with 0 bytes
	// available, keeping the IPv4 layer in the partial result.
	data := mustHex(t, sampleTCPHex)[SizeofEthernet : SizeofEthernet+SizeofIPv4]
	data = append([]byte{}, data...)
	data[0] = 0x4f // version 4, IHL 15

	pkt, err := DecodePacket(data, false)
	require.Error(t, err)

	truncated, ok := err.(*TruncatedError)
	require.True(t, ok)
	assert.Equal(t, LayerTCP, truncated.Layer)
	assert.Equal(t, 20, truncated.Needed)
	assert.Equal(t, 0, truncated.Available)

	_, ok = pkt.IPv4()
	assert.True(t, ok)
}

func TestDecodePacketHeaderLenBeyondBuffer(t *testing.T) {
	// IHL claims 60 bytes of header but only 20 are present; the payload is
	// empty rather than out of range.
	data := mustHex(t, sampleTCPHex)[SizeofEthernet : SizeofEthernet+SizeofIPv4]
	data = append([]byte{}, data...)
	data[0] = 0x4f // version 4, IHL 15
	data[9] = 0x01 // ICMP, so no transport decode is attempted past the end

	pkt, err := DecodePacket(data, false)
	require.NoError(t, err)

	ip, ok := pkt.IPv4()
	require.True(t, ok)
	assert.Equal(t, uint8(15), ip.IHL)
	assert.Empty(t, pkt.Payload())
	_, ok = pkt.TCP()
	assert.False(t, ok)
}
