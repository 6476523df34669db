package airfresh

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOperationModeRoundTrip(t *testing.T) {
	for _, mode := range []OperationMode{ModeOff, ModeAuto, ModeSleep, ModeFavorite} {
		parsed, err := ParseOperationMode(mode.Wire())
		assert.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	assert.Equal(t, "favourite", ModeFavorite.Wire())
	assert.Equal(t, "Favorite", ModeFavorite.String())
}

func TestPtcLevelRoundTrip(t *testing.T) {
	for _, level := range []PtcLevel{PtcLevelOff, PtcLevelLow, PtcLevelMedium, PtcLevelHigh} {
		parsed, err := ParsePtcLevel(level.Wire())
		assert.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
}

func TestScreenOrientationRoundTrip(t *testing.T) {
	for _, orientation := range []ScreenOrientation{OrientationPortrait, OrientationLandscapeLeft, OrientationLandscapeRight} {
		parsed, err := ParseScreenOrientation(orientation.Wire())
		assert.NoError(t, err)
		assert.Equal(t, orientation, parsed)
	}
	assert.Equal(t, "forward", OrientationPortrait.Wire())
}

func TestUnrecognisedWireValuesFail(t *testing.T) {
	var unknownValue *UnknownValueError

	_, err := ParseOperationMode("turbo")
	assert.ErrorAs(t, err, &unknownValue)
	assert.Equal(t, "turbo", unknownValue.Value)

	_, err = ParsePtcLevel("scorching")
	assert.ErrorAs(t, err, &unknownValue)

	_, err = ParseScreenOrientation("upside-down")
	assert.ErrorAs(t, err, &unknownValue)
}

func TestStatusAbsentAndMistypedValues(t *testing.T) {
	status := newStatus([]string{"power", "pm25", "mode"}, []any{true, "not a number", "sideways"})

	isOn, prs := status.IsOn()
	assert.True(t, prs)
	assert.True(t, isOn)

	_, prs = status.PM25()
	assert.False(t, prs)

	_, err := status.Mode()
	var unknownValue *UnknownValueError
	assert.ErrorAs(t, err, &unknownValue)

	_, err = status.PtcLevel()
	assert.ErrorIs(t, err, ErrNotPresent)
	_, prs = status.CO2()
	assert.False(t, prs)
	_, prs = status.Power()
	assert.True(t, prs)
}

func TestStatusPowerString(t *testing.T) {
	power, prs := newStatus([]string{"power"}, []any{true}).Power()
	assert.True(t, prs)
	assert.Equal(t, "on", power)

	power, prs = newStatus([]string{"power"}, []any{false}).Power()
	assert.True(t, prs)
	assert.Equal(t, "off", power)

	_, prs = newStatus([]string{"power"}, []any{}).Power()
	assert.False(t, prs)
}
