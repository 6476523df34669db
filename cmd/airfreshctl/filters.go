package main

import (
	"airfresh/device/airfresh"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resetUpperFilterCmd, resetDustFilterCmd)
}

var resetUpperFilterCmd = &cobra.Command{
	Use:   "reset_upper_filter",
	Short: "Reset the days used and remaining life of the upper filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand("Resetting upper filter", (*airfresh.Device).ResetUpperFilter)
	},
}

var resetDustFilterCmd = &cobra.Command{
	Use:   "reset_dust_filter",
	Short: "Reset the days used and remaining life of the dust filter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand("Resetting dust filter", (*airfresh.Device).ResetDustFilter)
	},
}
