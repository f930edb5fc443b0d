/*
Copyright © 2025 Wirenboard
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wirenboard/serial-tool/internal/console"
	"github.com/wirenboard/serial-tool/internal/serial"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <port>",
	Short: "Display information about a serial port",
	Long: `Display information about a serial port device.

Examples:
  serial-tool info /dev/ttyUSB0
  serial-tool info /dev/ttyACM0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		info, err := serial.GetPortInfo(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, console.ErrorStyle.Render("ERROR:"), err)
			os.Exit(1)
		}

		fmt.Printf("Port Information: %s\n\n", info.Path)
		fmt.Printf("  Name:        %s\n", info.Name)
		fmt.Printf("  Description: %s\n", info.Description)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
