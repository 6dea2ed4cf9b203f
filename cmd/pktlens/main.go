package main

import (
	"fmt"
	"os"

	"github.com/pktlens/pktlens/pkg/builder"
	"github.com/pktlens/pktlens/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version bool
)

var rootCmd = &cobra.Command{
	Use:   "pktlens",
	Short: "Inspect layered packet headers in raw byte buffers",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetVerbose(verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if version {
			fmt.Println(builder.BuildInfo())
			os.Exit(0)
		}
		cmd.Help()
	},
}

func main() {
	rootCmd.AddCommand(&decodeCmd)
	rootCmd.AddCommand(&hexdumpCmd)
	rootCmd.AddCommand(&checksumCmd)
	rootCmd.AddCommand(&addrCmd)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVarP(&version, "version", "V", false, "Print version")
	rootCmd.Execute()
}
