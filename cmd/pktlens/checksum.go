package main

import (
	"fmt"

	"github.com/pktlens/pktlens/pkg/netutil"
	"github.com/pktlens/pktlens/pkg/utils"
	"github.com/spf13/cobra"
)

var checksumCmd = cobra.Command{
	Use:   "checksum [hex | @file | -]",
	Short: "Compute the Internet checksum of raw bytes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readData(args[0])
		utils.CheckErrorAndExit(err, "Read input")
		fmt.Printf("0x%04x\n", netutil.Checksum(data))
	},
}
