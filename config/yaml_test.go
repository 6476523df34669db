package config

import (
	"airfresh/types"
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadDeviceManifest(t *testing.T) {
	manifest := `
exporter:
  listen: ":9105"
  poll_interval_seconds: 15
devices:
  - name: "Fresh Air Ventilator"
    room: "Bedroom"
    ip: "192.168.1.71"
    token: "ffeeddccbbaa99887766554433221100"
    model: "dmaker.airfresh.t2017"
`
	path := filepath.Join(t.TempDir(), "devices.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	appConfig := ReadDeviceManifest(path)
	assert.Equal(t, ":9105", appConfig.Listen)
	assert.Equal(t, 15*time.Second, appConfig.PollInterval)
	assert.Len(t, appConfig.Devices, 1)
	assert.Equal(t, types.DeviceConfig{
		Name:  "Fresh Air Ventilator",
		Room:  "Bedroom",
		Ip:    "192.168.1.71",
		Token: "ffeeddccbbaa99887766554433221100",
		Model: types.DmakerAirfreshT2017,
	}, appConfig.Devices[0])
}

func TestReadDeviceManifestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devices.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("devices: []\n"), 0o600))

	appConfig := ReadDeviceManifest(path)
	assert.Equal(t, ":8080", appConfig.Listen)
	assert.Equal(t, 30*time.Second, appConfig.PollInterval)
	assert.Empty(t, appConfig.Devices)
}

func TestReadDeviceManifestPanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() { ReadDeviceManifest(filepath.Join(t.TempDir(), "nope.yaml")) })
}
