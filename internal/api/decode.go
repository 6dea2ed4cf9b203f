package api

import (
	"encoding/hex"

	"github.com/gin-gonic/gin"
	"github.com/pktlens/pktlens/internal/errcode"
	"github.com/pktlens/pktlens/internal/service"
	"github.com/pktlens/pktlens/pkg/netutil"
	"github.com/pktlens/pktlens/pkg/pktlayer"
)

// DecodeAPI is the service surface the HTTP layer drives.
type DecodeAPI interface {
	DecodePacket(data []byte, assumeEthernetFraming bool) (*pktlayer.ParsedPacket, error)
	Checksum(data []byte) uint16
	HexDump(data []byte, width int, showASCII bool) string
	Stats() service.Stats
}

type DecodeReq struct {
	Data                  string `json:"data"` // hex encoded packet bytes
	AssumeEthernetFraming bool   `json:"assume_ethernet_framing"`
}

type EthernetData struct {
	SrcMAC    string `json:"src_mac"`
	DstMAC    string `json:"dst_mac"`
	EtherType string `json:"ethertype"`
}

type IPv4Data struct {
	SrcIP    string `json:"src_ip"`
	DstIP    string `json:"dst_ip"`
	Protocol uint8  `json:"protocol"`
	TTL      uint8  `json:"ttl"`
	TotalLen uint16 `json:"total_length"`
	IHL      uint8  `json:"ihl"`
	ID       uint16 `json:"identification"`
	Flags    uint8  `json:"flags"`
	FragOff  uint16 `json:"fragment_offset"`
	Checksum uint16 `json:"checksum"`
}

type TCPData struct {
	SrcPort uint16   `json:"src_port"`
	DstPort uint16   `json:"dst_port"`
	Seq     uint32   `json:"seq_num"`
	Ack     uint32   `json:"ack_num"`
	Flags   []string `json:"flags"`
	Window  uint16   `json:"window_size"`
}

type UDPData struct {
	SrcPort uint16 `json:"src_port"`
	DstPort uint16 `json:"dst_port"`
	Length  uint16 `json:"length"`
}

type PayloadData struct {
	Length  int    `json:"length"`
	Preview string `json:"data_preview"` // hex of the first 32 bytes
}

type FailureData struct {
	Layer     string `json:"layer"`
	Detail    string `json:"detail"`
	Needed    int    `json:"needed,omitempty"`
	Available int    `json:"available,omitempty"`
}

type DecodeResp struct {
	Ethernet *EthernetData `json:"ethernet,omitempty"`
	IPv4     *IPv4Data     `json:"ipv4,omitempty"`
	TCP      *TCPData      `json:"tcp,omitempty"`
	UDP      *UDPData      `json:"udp,omitempty"`
	Payload  *PayloadData  `json:"payload,omitempty"`
	Note     string        `json:"note,omitempty"`
	Summary  string        `json:"summary,omitempty"`
	Failure  *FailureData  `json:"failure,omitempty"`
}

type ChecksumReq struct {
	Data string `json:"data"`
}

type ChecksumResp struct {
	Checksum uint16 `json:"checksum"`
}

type HexDumpReq struct {
	Data      string `json:"data"`
	Width     int    `json:"width"`
	ShowASCII bool   `json:"show_ascii"`
}

type HexDumpResp struct {
	Dump string `json:"dump"`
}

type DecodeHandler struct {
	impl DecodeAPI
}

func (h *DecodeHandler) Decode(c *gin.Context) {
	var req DecodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, errcode.NewError(errcode.CodeInvalid, err))
		return
	}

	data, err := netutil.ParseHexData(req.Data)
	if err != nil {
		Error(c, errcode.NewError(errcode.CodeInvalid, err))
		return
	}

	pkt, err := h.impl.DecodePacket(data, req.AssumeEthernetFraming)
	Success(c, NewDecodeResp(pkt, err))
}

// NewDecodeResp flattens a decode outcome into the wire shape. A failed
// decode still reports the layers parsed before the failure.
func NewDecodeResp(pkt *pktlayer.ParsedPacket, err error) DecodeResp {
	resp := DecodeResp{Note: pkt.Note()}

	if eth, ok := pkt.Ethernet(); ok {
		resp.Ethernet = &EthernetData{
			SrcMAC:    eth.SrcMAC.String(),
			DstMAC:    eth.DstMAC.String(),
			EtherType: eth.EtherType.String(),
		}
	}
	if ip, ok := pkt.IPv4(); ok {
		resp.IPv4 = &IPv4Data{
			SrcIP:    ip.SrcIP.String(),
			DstIP:    ip.DstIP.String(),
			Protocol: uint8(ip.Protocol),
			TTL:      ip.TTL,
			TotalLen: ip.TotalLen,
			IHL:      ip.IHL,
			ID:       ip.ID,
			Flags:    ip.Flags,
			FragOff:  ip.FragOff,
			Checksum: ip.Checksum,
		}
	}
	if tcp, ok := pkt.TCP(); ok {
		resp.TCP = &TCPData{
			SrcPort: tcp.SrcPort,
			DstPort: tcp.DstPort,
			Seq:     tcp.Seq,
			Ack:     tcp.Ack,
			Flags:   tcp.Flags.Names(),
			Window:  tcp.Window,
		}
	}
	if udp, ok := pkt.UDP(); ok {
		resp.UDP = &UDPData{
			SrcPort: udp.SrcPort,
			DstPort: udp.DstPort,
			Length:  udp.Length,
		}
	}
	if payload := pkt.Payload(); len(payload) > 0 {
		resp.Payload = &PayloadData{
			Length:  len(payload),
			Preview: hex.EncodeToString(payload[:min(len(payload), 32)]),
		}
	}

	switch e := err.(type) {
	case nil:
		resp.Summary = pkt.Summary()
	case *pktlayer.TruncatedError:
		resp.Failure = &FailureData{
			Layer:     e.Layer.String(),
			Detail:    e.Error(),
			Needed:    e.Needed,
			Available: e.Available,
		}
	case *pktlayer.MalformedHeaderError:
		resp.Failure = &FailureData{Layer: e.Layer.String(), Detail: e.Error()}
	default:
		resp.Failure = &FailureData{Detail: e.Error()}
	}
	return resp
}

func (h *DecodeHandler) Checksum(c *gin.Context) {
	var req ChecksumReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, errcode.NewError(errcode.CodeInvalid, err))
		return
	}

	data, err := netutil.ParseHexData(req.Data)
	if err != nil {
		Error(c, errcode.NewError(errcode.CodeInvalid, err))
		return
	}
	Success(c, ChecksumResp{Checksum: h.impl.Checksum(data)})
}

func (h *DecodeHandler) HexDump(c *gin.Context) {
	var req HexDumpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, errcode.NewError(errcode.CodeInvalid, err))
		return
	}

	data, err := netutil.ParseHexData(req.Data)
	if err != nil {
		Error(c, errcode.NewError(errcode.CodeInvalid, err))
		return
	}
	Success(c, HexDumpResp{Dump: h.impl.HexDump(data, req.Width, req.ShowASCII)})
}

func (h *DecodeHandler) Stats(c *gin.Context) {
	Success(c, h.impl.Stats())
}
