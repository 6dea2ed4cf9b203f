package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pktlens/pktlens/internal/api"
	"github.com/pktlens/pktlens/pkg/netutil"
	"github.com/pktlens/pktlens/pkg/pktlayer"
	"github.com/pktlens/pktlens/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	decodeNoEthernet bool
	decodeRemote     string
	decodeDumpWidth  int
	decodeNoASCII    bool
)

var decodeCmd = cobra.Command{
	Use:   "decode [hex | @file | -]",
	Short: "Decode layered packet headers from a raw buffer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readData(args[0])
		utils.CheckErrorAndExit(err, "Read input")

		var (
			resp    api.DecodeResp
			payload []byte
		)
		if decodeRemote != "" {
			r, err := remoteDecode(decodeRemote, data, !decodeNoEthernet)
			utils.CheckErrorAndExit(err, "Remote decode")
			resp = *r
			if resp.Payload != nil {
				payload, _ = hex.DecodeString(resp.Payload.Preview)
			}
		} else {
			pkt, err := pktlayer.DecodePacket(data, !decodeNoEthernet)
			resp = api.NewDecodeResp(pkt, err)
			payload = pkt.Payload()
		}

		displayDecode(resp, payload)
		if resp.Failure != nil {
			os.Exit(1)
		}
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeNoEthernet, "no-ethernet", false, "Buffer starts at the network layer")
	decodeCmd.Flags().StringVarP(&decodeRemote, "remote", "r", "", "Decode via pktlensd at this address")
	decodeCmd.Flags().IntVarP(&decodeDumpWidth, "width", "w", netutil.DefaultHexDumpWidth, "Payload hex dump bytes per row")
	decodeCmd.Flags().BoolVar(&decodeNoASCII, "no-ascii", false, "Hide the payload dump ASCII column")
}

func displayDecode(resp api.DecodeResp, payload []byte) {
	if resp.Ethernet != nil {
		displayLayer("Ethernet", [][]any{
			{"dst mac", resp.Ethernet.DstMAC},
			{"src mac", resp.Ethernet.SrcMAC},
			{"ethertype", resp.Ethernet.EtherType},
		})
	}
	if resp.IPv4 != nil {
		displayLayer("IPv4", [][]any{
			{"src ip", resp.IPv4.SrcIP},
			{"dst ip", resp.IPv4.DstIP},
			{"protocol", resp.IPv4.Protocol},
			{"ttl", resp.IPv4.TTL},
			{"total length", resp.IPv4.TotalLen},
			{"ihl", resp.IPv4.IHL},
			{"identification", fmt.Sprintf("0x%04x", resp.IPv4.ID)},
			{"flags", resp.IPv4.Flags},
			{"fragment offset", resp.IPv4.FragOff},
			{"checksum", fmt.Sprintf("0x%04x", resp.IPv4.Checksum)},
		})
	}
	if resp.TCP != nil {
		displayLayer("TCP", [][]any{
			{"src port", resp.TCP.SrcPort},
			{"dst port", resp.TCP.DstPort},
			{"seq", resp.TCP.Seq},
			{"ack", resp.TCP.Ack},
			{"flags", fmt.Sprintf("%v", resp.TCP.Flags)},
			{"window", resp.TCP.Window},
		})
	}
	if resp.UDP != nil {
		displayLayer("UDP", [][]any{
			{"src port", resp.UDP.SrcPort},
			{"dst port", resp.UDP.DstPort},
			{"length", resp.UDP.Length},
		})
	}

	if resp.Note != "" {
		fmt.Println(color.HiYellowString("note: %s", resp.Note))
	}
	if resp.Failure != nil {
		fmt.Println(color.HiRedString("decode failed: %s", resp.Failure.Detail))
	}
	if resp.Summary != "" {
		fmt.Println(resp.Summary)
	}

	if len(payload) > 0 {
		n := len(payload)
		if resp.Payload != nil {
			n = resp.Payload.Length
		}
		fmt.Println(color.HiBlueString("%s", payloadTitle(n, len(payload))))
		fmt.Println(netutil.HexDump(payload, decodeDumpWidth, !decodeNoASCII))
	}
}

// payloadTitle labels the payload dump. Remote responses carry only a
// preview of the payload bytes, so the title says how much of the total is
// actually shown.
func payloadTitle(total, shown int) string {
	if shown < total {
		return fmt.Sprintf("Payload (%d bytes, first %d shown)", total, shown)
	}
	return fmt.Sprintf("Payload (%d bytes)", total)
}

func displayLayer(title string, rows [][]any) {
	fmt.Println(color.HiBlueString(title))
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.SeparatorsNone,
				Lines:      tw.LinesNone,
			},
		})),
	)
	table.Bulk(rows)
	table.Render()
}
