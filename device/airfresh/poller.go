package airfresh

import (
	"airfresh/device/miio"
	"airfresh/types"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
)

type pollSession interface {
	Transport
	Close() error
}

// Poller owns one device's gauges and refreshes them by opening a session,
// fetching a status snapshot and closing the session again. Sessions are not
// pooled; each poll stands alone.
type Poller struct {
	deviceConfig *types.DeviceConfig
	metrics      *prometheusMetrics
	dial         func() (pollSession, error)
}

func NewPoller(config *types.DeviceConfig, registry prometheus.Registerer, port uint16) (*Poller, error) {
	return &Poller{
		deviceConfig: config,
		metrics:      registerMetrics(registry, types.GenerateCommonLabels(config)),
		dial: func() (pollSession, error) {
			return miio.Dial(config.Ip, port, config.Token)
		},
	}, nil
}

func (p *Poller) PollDeviceAndUpdateMetrics() error {
	session, err := p.dial()
	if err != nil {
		return fmt.Errorf("could not connect to %s (%s): %w", p.deviceConfig.Ip, p.deviceConfig.Name, err)
	}
	defer func() { _ = session.Close() }()

	status, err := NewDevice(session, types.MiioModelFor(p.deviceConfig.Model)).Status()
	if err != nil {
		return fmt.Errorf("could not poll status for %s (%s): %w", p.deviceConfig.Ip, p.deviceConfig.Name, err)
	}
	if err := p.metrics.updateMetrics(status); err != nil {
		return fmt.Errorf("could not update metrics for %s (%s): %w", p.deviceConfig.Ip, p.deviceConfig.Name, err)
	}
	return nil
}

func (p *Poller) ResetMetricsToRogueValues() {
	p.metrics.resetToRogueValues()
}

func (p *Poller) CommonMetricLabels() map[string]string {
	return p.metrics.commonLabels
}
