package main

import (
	"airfresh/device/airfresh"
	"fmt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(onCmd, offCmd, setModeCmd)
}

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Power the device on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand("Powering on", (*airfresh.Device).On)
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Power the device off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand("Powering off", (*airfresh.Device).Off)
	},
}

var setModeCmd = &cobra.Command{
	Use:   "set_mode <off|auto|sleep|favourite>",
	Short: "Set the operation mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := airfresh.ParseOperationMode(args[0])
		if err != nil {
			return err
		}
		return runCommand(fmt.Sprintf("Setting mode to '%s'", mode.Wire()), func(dev *airfresh.Device) ([]any, error) {
			return dev.SetMode(mode)
		})
	},
}
