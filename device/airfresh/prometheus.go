package airfresh

import (
	"airfresh/types"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
)

type prometheusMetrics struct {
	commonLabels prometheus.Labels

	updateInfoMetric func(status *Status) error
	powerOn          *prometheus.Gauge
	pm25             *prometheus.Gauge
	co2              *prometheus.Gauge
	temperature      *prometheus.Gauge
	favouriteSpeed   *prometheus.Gauge
	controlSpeed     *prometheus.Gauge
	dustFilterLife   *prometheus.Gauge
	dustFilterDays   *prometheus.Gauge
	upperFilterLife  *prometheus.Gauge
	upperFilterDays  *prometheus.Gauge
	ptcOn            *prometheus.Gauge
	ptcActive        *prometheus.Gauge
	childLockOn      *prometheus.Gauge
	buzzerOn         *prometheus.Gauge
	displayOn        *prometheus.Gauge
}

func registerMetrics(registry prometheus.Registerer, commonLabels prometheus.Labels) *prometheusMetrics {
	metrics := prometheusMetrics{
		commonLabels: commonLabels,

		updateInfoMetric: registerInfoMetricUpdater(registry, commonLabels),
		powerOn:          types.NewGauge(registry, commonLabels, "airfresh", "power_on_bool"),
		pm25:             types.NewGauge(registry, commonLabels, "airfresh", "pm25_micrograms_per_cubic_metre"),
		co2:              types.NewGauge(registry, commonLabels, "airfresh", "co2_ppm"),
		temperature:      types.NewGauge(registry, commonLabels, "airfresh", "outside_temperature_celsius"),
		favouriteSpeed:   types.NewGauge(registry, commonLabels, "airfresh", "favourite_speed_rpm"),
		controlSpeed:     types.NewGauge(registry, commonLabels, "airfresh", "control_speed_rpm"),
		dustFilterLife:   types.NewGauge(registry, commonLabels, "airfresh", "dust_filter_life_remaining_percent"),
		dustFilterDays:   types.NewGauge(registry, commonLabels, "airfresh", "dust_filter_days_used"),
		upperFilterLife:  types.NewGauge(registry, commonLabels, "airfresh", "upper_filter_life_remaining_percent"),
		upperFilterDays:  types.NewGauge(registry, commonLabels, "airfresh", "upper_filter_days_used"),
		ptcOn:            types.NewGauge(registry, commonLabels, "airfresh", "ptc_on_bool"),
		ptcActive:        types.NewGauge(registry, commonLabels, "airfresh", "ptc_active_bool"),
		childLockOn:      types.NewGauge(registry, commonLabels, "airfresh", "child_lock_on_bool"),
		buzzerOn:         types.NewGauge(registry, commonLabels, "airfresh", "buzzer_on_bool"),
		displayOn:        types.NewGauge(registry, commonLabels, "airfresh", "display_on_bool"),
	}
	metrics.resetToRogueValues()
	return &metrics
}

func (metrics *prometheusMetrics) updateMetrics(status *Status) error {
	if status == nil {
		metrics.resetToRogueValues()
		return nil
	}
	if on, prs := status.IsOn(); prs {
		types.SetFromBool(metrics.powerOn, on)
	}
	if pm25, prs := status.PM25(); prs {
		types.SetFromInt(metrics.pm25, pm25)
	}
	if co2, prs := status.CO2(); prs {
		types.SetFromInt(metrics.co2, co2)
	}
	if temperature, prs := status.Temperature(); prs {
		types.SetFromInt(metrics.temperature, temperature)
	}
	if speed, prs := status.FavoriteSpeed(); prs {
		types.SetFromInt(metrics.favouriteSpeed, speed)
	}
	if speed, prs := status.ControlSpeed(); prs {
		types.SetFromInt(metrics.controlSpeed, speed)
	}
	if life, prs := status.DustFilterLifeRemaining(); prs {
		types.SetFromInt(metrics.dustFilterLife, life)
	}
	if days, prs := status.DustFilterDaysUsed(); prs {
		types.SetFromInt(metrics.dustFilterDays, days)
	}
	if life, prs := status.UpperFilterLifeRemaining(); prs {
		types.SetFromInt(metrics.upperFilterLife, life)
	}
	if days, prs := status.UpperFilterDaysUsed(); prs {
		types.SetFromInt(metrics.upperFilterDays, days)
	}
	if on, prs := status.Ptc(); prs {
		types.SetFromBool(metrics.ptcOn, on)
	}
	if active, prs := status.PtcStatus(); prs {
		types.SetFromBool(metrics.ptcActive, active)
	}
	if locked, prs := status.ChildLock(); prs {
		types.SetFromBool(metrics.childLockOn, locked)
	}
	if on, prs := status.Buzzer(); prs {
		types.SetFromBool(metrics.buzzerOn, on)
	}
	if on, prs := status.Display(); prs {
		types.SetFromBool(metrics.displayOn, on)
	}
	if err := metrics.updateInfoMetric(status); err != nil {
		return fmt.Errorf("could not update info metric: %w", err)
	}
	return nil
}

func (metrics *prometheusMetrics) resetToRogueValues() {
	_ = metrics.updateInfoMetric(nil)
	types.SetIfPresent(metrics.powerOn, -1.0)
	types.SetIfPresent(metrics.pm25, -1.0)
	types.SetIfPresent(metrics.co2, -1.0)
	types.SetIfPresent(metrics.temperature, -274.0) // outside temperatures go negative for real
	types.SetIfPresent(metrics.favouriteSpeed, -1.0)
	types.SetIfPresent(metrics.controlSpeed, -1.0)
	types.SetIfPresent(metrics.dustFilterLife, -1.0)
	types.SetIfPresent(metrics.dustFilterDays, -1.0)
	types.SetIfPresent(metrics.upperFilterLife, -1.0)
	types.SetIfPresent(metrics.upperFilterDays, -1.0)
	types.SetIfPresent(metrics.ptcOn, -1.0)
	types.SetIfPresent(metrics.ptcActive, -1.0)
	types.SetIfPresent(metrics.childLockOn, -1.0)
	types.SetIfPresent(metrics.buzzerOn, -1.0)
	types.SetIfPresent(metrics.displayOn, -1.0)
}

func registerInfoMetricUpdater(registry prometheus.Registerer, commonLabels prometheus.Labels) func(status *Status) error {
	var infoMetric = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:        "device_info",
		Namespace:   "airfresh",
		ConstLabels: commonLabels,
	}, []string{
		"power", "mode", "ptc_level", "screen_direction",
	})
	registry.MustRegister(infoMetric)
	return func(status *Status) error {
		infoMetric.Reset()
		if status == nil {
			return nil
		}
		labels := prometheus.Labels{
			"power":            "unknown",
			"mode":             "unknown",
			"ptc_level":        "unknown",
			"screen_direction": "unknown",
		}
		if power, prs := status.Power(); prs {
			labels["power"] = power
		}
		if mode, err := status.Mode(); err == nil {
			labels["mode"] = mode.Wire()
		}
		if level, err := status.PtcLevel(); err == nil {
			labels["ptc_level"] = level.Wire()
		}
		if orientation, err := status.ScreenOrientation(); err == nil {
			labels["screen_direction"] = orientation.Wire()
		}
		infoMetric.With(labels).Set(1.0)
		return nil
	}
}
