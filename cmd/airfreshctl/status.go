package main

import (
	"airfresh/device/airfresh"
	"fmt"
	"github.com/spf13/cobra"
	"strconv"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the device's current status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, closeSession, err := openDevice()
		if err != nil {
			return err
		}
		defer closeSession()
		status, err := dev.Status()
		if err != nil {
			return err
		}
		printStatus(status)
		return nil
	},
}

func printStatus(status *airfresh.Status) {
	fmt.Println("Power: " + stringField(status.Power()))
	fmt.Println("Mode: " + enumField(status.Mode()))
	fmt.Println("PM2.5: " + intField(status.PM25()))
	fmt.Println("CO2: " + intField(status.CO2()))
	fmt.Println("Temperature: " + intField(status.Temperature()))
	fmt.Println("Favorite speed: " + intField(status.FavoriteSpeed()))
	fmt.Println("Control speed: " + intField(status.ControlSpeed()))
	fmt.Println("Dust filter life remaining: " + intField(status.DustFilterLifeRemaining()))
	fmt.Println("Dust filter days used: " + intField(status.DustFilterDaysUsed()))
	fmt.Println("Upper filter life remaining: " + intField(status.UpperFilterLifeRemaining()))
	fmt.Println("Upper filter days used: " + intField(status.UpperFilterDaysUsed()))
	fmt.Println("PTC: " + boolField(status.Ptc()))
	fmt.Println("PTC level: " + enumField(status.PtcLevel()))
	fmt.Println("PTC status: " + boolField(status.PtcStatus()))
	fmt.Println("Child lock: " + boolField(status.ChildLock()))
	fmt.Println("Buzzer: " + boolField(status.Buzzer()))
	fmt.Println("Display: " + boolField(status.Display()))
	fmt.Println("Screen orientation: " + enumField(status.ScreenOrientation()))
}

func stringField(value string, prs bool) string {
	if !prs {
		return "unknown"
	}
	return value
}

func intField(value int, prs bool) string {
	if !prs {
		return "unknown"
	}
	return strconv.Itoa(value)
}

func boolField(value bool, prs bool) string {
	if !prs {
		return "unknown"
	}
	return strconv.FormatBool(value)
}

func enumField[E fmt.Stringer](value E, err error) string {
	if err != nil {
		return "unknown"
	}
	return value.String()
}
