package airfresh

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

type sentCall struct {
	method string
	params []any
}

type fakeTransport struct {
	calls   []sentCall
	results [][]any
	err     error
}

func (ft *fakeTransport) Send(method string, params []any) ([]any, error) {
	ft.calls = append(ft.calls, sentCall{method: method, params: params})
	if ft.err != nil {
		return nil, ft.err
	}
	if len(ft.results) == 0 {
		return []any{"ok"}, nil
	}
	result := ft.results[0]
	ft.results = ft.results[1:]
	return result, nil
}

func t2017Values() []any {
	return []any{
		true, "favourite", float64(1), float64(550), float64(24),
		float64(241), float64(241), float64(100), float64(90), float64(100),
		float64(180), false, "low", false, false,
		true, false, "forward",
	}
}

func TestStatusSplitsPropertiesIntoChunks(t *testing.T) {
	values := t2017Values()
	transport := &fakeTransport{results: [][]any{values[:15], values[15:]}}
	dev := NewDevice(transport, ModelAirfreshT2017)

	status, err := dev.Status()
	assert.NoError(t, err)
	assert.Len(t, transport.calls, 2)
	assert.Equal(t, "get_prop", transport.calls[0].method)
	assert.Equal(t, "get_prop", transport.calls[1].method)
	assert.Len(t, transport.calls[0].params, 15)
	assert.Len(t, transport.calls[1].params, 3)
	assert.Equal(t, "power", transport.calls[0].params[0])
	assert.Equal(t, "sound", transport.calls[1].params[0])
	assert.Equal(t, "screen_direction", transport.calls[1].params[2])

	isOn, prs := status.IsOn()
	assert.True(t, prs)
	assert.True(t, isOn)
	mode, err := status.Mode()
	assert.NoError(t, err)
	assert.Equal(t, ModeFavorite, mode)
	pm25, prs := status.PM25()
	assert.True(t, prs)
	assert.Equal(t, 1, pm25)
	co2, prs := status.CO2()
	assert.True(t, prs)
	assert.Equal(t, 550, co2)
	days, prs := status.UpperFilterDaysUsed()
	assert.True(t, prs)
	assert.Equal(t, 180, days)
	buzzer, prs := status.Buzzer()
	assert.True(t, prs)
	assert.True(t, buzzer)
	display, prs := status.Display()
	assert.True(t, prs)
	assert.False(t, display)
	orientation, err := status.ScreenOrientation()
	assert.NoError(t, err)
	assert.Equal(t, OrientationPortrait, orientation)
}

func TestStatusUnknownModelFallsBackToT2017Table(t *testing.T) {
	values := t2017Values()
	transport := &fakeTransport{results: [][]any{values[:15], values[15:]}}
	dev := NewDevice(transport, "dmaker.airfresh.unheard-of")

	_, err := dev.Status()
	assert.NoError(t, err)
	assert.Len(t, transport.calls, 2)
	assert.Equal(t, "power", transport.calls[0].params[0])
}

func TestStatusToleratesShortResult(t *testing.T) {
	values := t2017Values()
	transport := &fakeTransport{results: [][]any{values[:15], {}}}
	dev := NewDevice(transport, ModelAirfreshT2017)

	status, err := dev.Status()
	assert.NoError(t, err)

	// The first fifteen properties still line up.
	pm25, prs := status.PM25()
	assert.True(t, prs)
	assert.Equal(t, 1, pm25)

	// Everything beyond the returned length reads as not-present.
	_, prs = status.Buzzer()
	assert.False(t, prs)
	_, prs = status.Display()
	assert.False(t, prs)
	_, err = status.ScreenOrientation()
	assert.ErrorIs(t, err, ErrNotPresent)
	assert.Nil(t, status.Value("screen_direction"))
}

func TestStatusDropsExcessValues(t *testing.T) {
	values := t2017Values()
	transport := &fakeTransport{results: [][]any{values[:15], append(values[15:], "surplus", "noise")}}
	dev := NewDevice(transport, ModelAirfreshT2017)

	status, err := dev.Status()
	assert.NoError(t, err)
	orientation, err := status.ScreenOrientation()
	assert.NoError(t, err)
	assert.Equal(t, OrientationPortrait, orientation)
}

func TestStatusPropagatesTransportFailure(t *testing.T) {
	transportFailure := errors.New("device unreachable")
	dev := NewDevice(&fakeTransport{err: transportFailure}, ModelAirfreshT2017)

	_, err := dev.Status()
	assert.ErrorIs(t, err, transportFailure)
}

func TestCommandsIssueExpectedWireCalls(t *testing.T) {
	for _, testCase := range []struct {
		name           string
		call           func(dev *Device) ([]any, error)
		expectedMethod string
		expectedParams []any
	}{
		{"on", (*Device).On, "set_power", []any{"on"}},
		{"off", (*Device).Off, "set_power", []any{"off"}},
		{"set mode auto", func(dev *Device) ([]any, error) { return dev.SetMode(ModeAuto) }, "set_mode", []any{"auto"}},
		{"set mode favourite", func(dev *Device) ([]any, error) { return dev.SetMode(ModeFavorite) }, "set_mode", []any{"favourite"}},
		{"display on", func(dev *Device) ([]any, error) { return dev.SetDisplay(true) }, "set_display", []any{"on"}},
		{"display off", func(dev *Device) ([]any, error) { return dev.SetDisplay(false) }, "set_display", []any{"off"}},
		{"buzzer on", func(dev *Device) ([]any, error) { return dev.SetBuzzer(true) }, "set_sound", []any{"on"}},
		{"child lock off", func(dev *Device) ([]any, error) { return dev.SetChildLock(false) }, "set_child_lock", []any{"off"}},
		{"reset upper filter", (*Device).ResetUpperFilter, "set_filter_reset", []any{"efficient"}},
		{"reset dust filter", (*Device).ResetDustFilter, "set_filter_reset", []any{"intermediate"}},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			transport := &fakeTransport{}
			result, err := testCase.call(NewDevice(transport, ModelAirfreshT2017))
			assert.NoError(t, err)
			assert.Equal(t, []any{"ok"}, result)
			assert.Len(t, transport.calls, 1)
			assert.Equal(t, testCase.expectedMethod, transport.calls[0].method)
			assert.Equal(t, testCase.expectedParams, transport.calls[0].params)
		})
	}
}

func TestSetModeRejectsUnknownMode(t *testing.T) {
	transport := &fakeTransport{}
	_, err := NewDevice(transport, ModelAirfreshT2017).SetMode(OperationMode(42))

	var unknownValue *UnknownValueError
	assert.ErrorAs(t, err, &unknownValue)
	assert.Empty(t, transport.calls)
}
