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

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List all available serial ports on the system.

This command scans /dev for communication-capable serial devices:
USB serial adapters (ttyUSB*), USB CDC/ACM devices (ttyACM*), standard
serial ports (ttyS*) and platform-specific ports. Virtual terminals and
pseudo-terminals are excluded.`,
	Run: func(cmd *cobra.Command, args []string) {
		ports, err := serial.ListPorts()
		if err != nil {
			fmt.Fprintln(os.Stderr, console.ErrorStyle.Render("ERROR:"), err)
			os.Exit(1)
		}

		if len(ports) == 0 {
			fmt.Println("No serial ports found")
			return
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		for _, port := range ports {
			if !verbose {
				fmt.Println(port)
				continue
			}
			info, err := serial.GetPortInfo(port)
			if err != nil {
				fmt.Printf("%-20s (unavailable: %v)\n", port, err)
				continue
			}
			fmt.Printf("%-20s %s\n", info.Path, info.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("verbose", "v", false, "Show port descriptions")
}
