package main

import (
	"fmt"

	"github.com/pktlens/pktlens/pkg/netutil"
	"github.com/pktlens/pktlens/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	hexdumpWidth   int
	hexdumpNoASCII bool
)

var hexdumpCmd = cobra.Command{
	Use:   "hexdump [hex | @file | -]",
	Short: "Render bytes as an offset-labeled hex dump",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readData(args[0])
		utils.CheckErrorAndExit(err, "Read input")
		fmt.Println(netutil.HexDump(data, hexdumpWidth, !hexdumpNoASCII))
	},
}

func init() {
	hexdumpCmd.Flags().IntVarP(&hexdumpWidth, "width", "w", netutil.DefaultHexDumpWidth, "Bytes per row")
	hexdumpCmd.Flags().BoolVar(&hexdumpNoASCII, "no-ascii", false, "Hide the ASCII column")
}
