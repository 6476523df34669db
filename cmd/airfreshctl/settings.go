package main

import (
	"airfresh/device/airfresh"
	"fmt"
	"github.com/spf13/cobra"
	"strconv"
)

func init() {
	rootCmd.AddCommand(setDisplayCmd, setBuzzerCmd, setChildLockCmd)
}

var setDisplayCmd = &cobra.Command{
	Use:   "set_display <true|false>",
	Short: "Turn the display on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggleCommand(args[0], "display", (*airfresh.Device).SetDisplay)
	},
}

var setBuzzerCmd = &cobra.Command{
	Use:   "set_buzzer <true|false>",
	Short: "Turn the buzzer on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggleCommand(args[0], "buzzer", (*airfresh.Device).SetBuzzer)
	},
}

var setChildLockCmd = &cobra.Command{
	Use:   "set_child_lock <true|false>",
	Short: "Turn the child lock on or off",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToggleCommand(args[0], "child lock", (*airfresh.Device).SetChildLock)
	},
}

func runToggleCommand(arg, name string, call func(dev *airfresh.Device, on bool) ([]any, error)) error {
	on, err := strconv.ParseBool(arg)
	if err != nil {
		return fmt.Errorf("expected a boolean argument, got %q", arg)
	}
	output := "Turning off " + name
	if on {
		output = "Turning on " + name
	}
	return runCommand(output, func(dev *airfresh.Device) ([]any, error) {
		return call(dev, on)
	})
}
