package config

import (
	"airfresh/types"
	"time"
)

type AppConfig struct {
	Devices      []types.DeviceConfig
	Listen       string
	PollInterval time.Duration
}
