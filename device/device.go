package device

import (
	"airfresh/device/airfresh"
	"airfresh/device/miio"
	"airfresh/types"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
)

type Poller interface {
	PollDeviceAndUpdateMetrics() error
	ResetMetricsToRogueValues()
	CommonMetricLabels() map[string]string
}

func NewPoller(config *types.DeviceConfig, registry prometheus.Registerer) (Poller, error) {
	switch config.Model {
	case types.DmakerAirfreshT2017:
		return airfresh.NewPoller(config, registry, miio.DefaultPort)
	default:
		return nil, fmt.Errorf("unknown device model for %s", config.Name)
	}
}
