package main

import (
	"fmt"

	"github.com/pktlens/pktlens/pkg/netaddr"
	"github.com/pktlens/pktlens/pkg/utils"
	"github.com/spf13/cobra"
)

var addrCmd = cobra.Command{
	Use:   "addr",
	Short: "Normalize MAC and IPv4 addresses",
}

var addrMACCmd = cobra.Command{
	Use:   "mac [address]",
	Short: "Normalize a MAC address and show its raw bytes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := netaddr.ParseHwAddr(args[0])
		utils.CheckErrorAndExit(err, "Parse MAC")
		fmt.Printf("%s\nbytes: % x\n", addr, addr.Bytes())
	},
}

var addrIPCmd = cobra.Command{
	Use:   "ip [address]",
	Short: "Normalize a dotted-quad IPv4 address and show its raw bytes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := netaddr.ParseIPv4Addr(args[0])
		utils.CheckErrorAndExit(err, "Parse IPv4")
		fmt.Printf("%s\nbytes: % x\n", addr, addr.Bytes())
	},
}

func init() {
	addrCmd.AddCommand(&addrMACCmd)
	addrCmd.AddCommand(&addrIPCmd)
}
