package config

import (
	"airfresh/types"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const defaultListen = ":8080"
const defaultPollInterval = 30 * time.Second

func ReadDeviceManifest(filename string) *AppConfig {
	type deviceFromFile struct {
		Name  string `yaml:"name"`
		Room  string `yaml:"room"`
		Ip    string `yaml:"ip"`
		Token string `yaml:"token"`
		Model string `yaml:"model"`
	}
	type exporterFromFile struct {
		Listen              string `yaml:"listen"`
		PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	}
	type manifestFile struct {
		Devices  []deviceFromFile `yaml:"devices"`
		Exporter exporterFromFile `yaml:"exporter"`
	}
	manifest := manifestFile{}
	readConfig(filename, &manifest)

	appConfig := &AppConfig{
		Listen:       defaultListen,
		PollInterval: defaultPollInterval,
	}
	if manifest.Exporter.Listen != "" {
		appConfig.Listen = manifest.Exporter.Listen
	}
	if manifest.Exporter.PollIntervalSeconds > 0 {
		appConfig.PollInterval = time.Duration(manifest.Exporter.PollIntervalSeconds) * time.Second
	}
	appConfig.Devices = make([]types.DeviceConfig, 0, len(manifest.Devices))
	for _, device := range manifest.Devices {
		appConfig.Devices = append(appConfig.Devices, types.DeviceConfig{
			Name:  device.Name,
			Room:  device.Room,
			Model: types.DeviceTypeFor(device.Model),
			Ip:    device.Ip,
			Token: device.Token,
		})
	}
	return appConfig
}

func readConfig[E any](filename string, into *E) {
	fileBytes, err := os.ReadFile(filename)
	if err != nil {
		panic(fmt.Errorf("could not read config file '%s': %w", filename, err))
	}
	err = yaml.Unmarshal(fileBytes, into)
	if err != nil {
		panic(fmt.Errorf("could not unmarshal config file yaml '%s': %w", filename, err))
	}
}
