/*
Copyright © 2025 Wirenboard
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wirenboard/serial-tool/internal/console"
	"github.com/wirenboard/serial-tool/internal/serial"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "serial-tool <port>",
	Short: "Interactive hex serial port console",
	Long: `serial-tool is an interactive console for exchanging raw hexadecimal
byte sequences over a serial port.

In interactive mode every entered line is decoded as hex (all characters
but 0-9, a-f are ignored), written to the port, and after a fixed wait
any available reply bytes are printed back as uppercase hex pairs.
Entered lines are kept in ~/.serial_tool.history across invocations.

With --batch a single hex string is sent instead and the reply, if any,
is written to stdout.

Example usage:
  serial-tool /dev/ttyUSB0
  serial-tool /dev/ttyRS485-1 --baud 115200 --parity E --stop-bits 2
  serial-tool /dev/ttyUSB0 --batch "01 03 00 00 00 01 84 0A"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConsole(cmd, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, console.ErrorStyle.Render("ERROR:"), err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.serial-tool.yaml)")

	rootCmd.Flags().IntP("baud", "b", 9600, "Baud rate")
	rootCmd.Flags().StringP("parity", "p", "N", fmt.Sprintf("Parity, one of %v", serial.SupportedParities()))
	rootCmd.Flags().IntP("data-bits", "d", 8, "Number of data bits (5-8)")
	rootCmd.Flags().StringP("stop-bits", "s", "1", fmt.Sprintf("Number of stop bits, one of %v", serial.SupportedStopBits()))
	rootCmd.Flags().Float64P("timeout", "t", 1, "Seconds to wait for an answer")
	rootCmd.Flags().String("batch", "", "Batch mode: hex string to send, answer goes to stdout")

	viper.BindPFlag("baud", rootCmd.Flags().Lookup("baud"))
	viper.BindPFlag("parity", rootCmd.Flags().Lookup("parity"))
	viper.BindPFlag("data-bits", rootCmd.Flags().Lookup("data-bits"))
	viper.BindPFlag("stop-bits", rootCmd.Flags().Lookup("stop-bits"))
	viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".serial-tool")
	}

	viper.SetEnvPrefix("serial_tool")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flag defaults apply
	viper.ReadInConfig()
}

// runConsole validates the port settings, opens the device and hands
// control to either the batch pass or the interactive loop. Deferred
// cleanup (port close, history save, terminal restore) runs on every
// return path.
func runConsole(cmd *cobra.Command, portPath string) error {
	parity, err := serial.ParseParity(viper.GetString("parity"))
	if err != nil {
		return fmt.Errorf("%w: %q (supported: %v)", serial.ErrInvalidParity, viper.GetString("parity"), serial.SupportedParities())
	}

	stopBits, err := serial.ParseStopBits(viper.GetString("stop-bits"))
	if err != nil {
		return fmt.Errorf("%w: %q (supported: %v)", serial.ErrInvalidStopBits, viper.GetString("stop-bits"), serial.SupportedStopBits())
	}

	timeout := time.Duration(viper.GetFloat64("timeout") * float64(time.Second))

	opts := []serial.Option{
		serial.WithBaudRate(viper.GetInt("baud")),
		serial.WithDataBits(viper.GetInt("data-bits")),
		serial.WithStopBits(stopBits),
		serial.WithParity(parity),
		serial.WithReadTimeout(timeout),
	}

	// Validate the full configuration before touching the device
	cfg := serial.DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			switch {
			case errors.Is(err, serial.ErrInvalidBaudRate):
				return fmt.Errorf("%w: %d", err, viper.GetInt("baud"))
			case errors.Is(err, serial.ErrInvalidDataBits):
				return fmt.Errorf("%w: %d", err, viper.GetInt("data-bits"))
			}
			return err
		}
	}

	port, err := serial.OpenConfig(portPath, cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	con := console.New(port, timeout, os.Stdout)

	if batch, _ := cmd.Flags().GetString("batch"); batch != "" {
		return con.RunBatch(batch)
	}

	shell := liner.NewLiner()
	defer shell.Close()

	shell.SetCtrlCAborts(true)
	shell.SetCompleter(con.Completer().Candidates)

	histPath, err := console.DefaultHistoryPath()
	if err != nil {
		return err
	}
	hist := console.NewHistory(histPath)
	if err := hist.Load(); err != nil {
		return err
	}
	hist.Seed(shell)
	defer hist.Save()

	printBanner(port)
	return con.RunInteractive(shell, hist)
}

func printBanner(port *serial.Port) {
	cfg := port.Config()
	fmt.Printf("serial-tool on %s: %d %d%s%s\n", port.Device(), cfg.BaudRate, cfg.DataBits, cfg.Parity, cfg.StopBits)
	fmt.Println("Enter your commands below in HEX form.")
	fmt.Println("All characters but 0-9,a-f including spaces are ignored.")
	fmt.Println("Press Ctrl-D or Ctrl-C to leave the application.")
	fmt.Println("Press [Enter] to print received data.")
}
