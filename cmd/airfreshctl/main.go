package main

import (
	"airfresh/device/airfresh"
	"airfresh/device/miio"
	"errors"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"time"
)

var deviceIp string
var deviceToken string
var deviceModel string
var devicePort uint16
var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "airfreshctl",
	Short: "Control a dmaker fresh air ventilator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		if !verbose {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&deviceIp, "ip", "", "IP address of the device")
	rootCmd.PersistentFlags().StringVar(&deviceToken, "token", "", "32 hex character device token")
	rootCmd.PersistentFlags().StringVar(&deviceModel, "model", airfresh.ModelAirfreshT2017, "miio model identifier")
	rootCmd.PersistentFlags().Uint16Var(&devicePort, "port", miio.DefaultPort, "miio UDP port")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// openDevice dials a fresh session for the one command this process runs.
func openDevice() (*airfresh.Device, func(), error) {
	if deviceIp == "" || deviceToken == "" {
		return nil, nil, errors.New("both --ip and --token are required")
	}
	session, err := miio.Dial(deviceIp, devicePort, deviceToken)
	if err != nil {
		return nil, nil, err
	}
	return airfresh.NewDevice(session, deviceModel), func() { _ = session.Close() }, nil
}

func runCommand(output string, call func(dev *airfresh.Device) ([]any, error)) error {
	dev, closeSession, err := openDevice()
	if err != nil {
		return err
	}
	defer closeSession()
	if _, err := call(dev); err != nil {
		return err
	}
	fmt.Println(output)
	return nil
}
