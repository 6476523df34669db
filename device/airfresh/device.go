package airfresh

import (
	"fmt"
	"github.com/rs/zerolog/log"
)

// Transport is the session to a single device over which RPC calls travel.
// It raises on network or protocol failure; this layer never retries.
type Transport interface {
	Send(method string, params []any) ([]any, error)
}

// Device is a client for one dmaker fresh air ventilator. It holds no state
// beyond the model's property table; every call is one synchronous round trip.
type Device struct {
	transport  Transport
	model      string
	properties []string
}

func NewDevice(transport Transport, model string) *Device {
	return &Device{
		transport:  transport,
		model:      model,
		properties: propertiesForModel(model),
	}
}

// Status fetches the model's property list and pairs names to returned values
// positionally. The fetch is split into chunks because the device rejects
// get_prop calls naming more than maxPropertiesPerRequest properties; chunk
// order is preserved so the concatenated values still line up with the names.
func (dev *Device) Status() (*Status, error) {
	names := dev.properties
	values := make([]any, 0, len(names))
	for start := 0; start < len(names); start += maxPropertiesPerRequest {
		end := min(start+maxPropertiesPerRequest, len(names))
		chunk := make([]any, 0, end-start)
		for _, name := range names[start:end] {
			chunk = append(chunk, name)
		}
		result, err := dev.transport.Send("get_prop", chunk)
		if err != nil {
			return nil, fmt.Errorf("could not fetch properties %q: %w", names[start:end], err)
		}
		values = append(values, result...)
	}

	// Tolerated, not fatal: a short result leaves trailing properties unset
	// and an excess result drops the extra values.
	if len(values) != len(names) {
		log.Debug().
			Str("model", dev.model).
			Int("requested", len(names)).
			Int("received", len(values)).
			Msg("count of requested properties does not match count of received values")
	}
	return newStatus(names, values), nil
}

// On powers the device on. The device's acknowledgement is passed through
// unchanged, as for all commands below.
func (dev *Device) On() ([]any, error) {
	return dev.transport.Send("set_power", []any{"on"})
}

func (dev *Device) Off() ([]any, error) {
	return dev.transport.Send("set_power", []any{"off"})
}

func (dev *Device) SetMode(mode OperationMode) ([]any, error) {
	wire := mode.Wire()
	if wire == "" {
		return nil, &UnknownValueError{Kind: "operation mode", Value: fmt.Sprintf("%d", int(mode))}
	}
	return dev.transport.Send("set_mode", []any{wire})
}

func (dev *Device) SetDisplay(display bool) ([]any, error) {
	return dev.transport.Send("set_display", []any{onOff(display)})
}

func (dev *Device) SetBuzzer(buzzer bool) ([]any, error) {
	return dev.transport.Send("set_sound", []any{onOff(buzzer)})
}

func (dev *Device) SetChildLock(lock bool) ([]any, error) {
	return dev.transport.Send("set_child_lock", []any{onOff(lock)})
}

// ResetUpperFilter resets the days used and remaining life of the efficient
// (upper) filter.
func (dev *Device) ResetUpperFilter() ([]any, error) {
	return dev.transport.Send("set_filter_reset", []any{"efficient"})
}

// ResetDustFilter resets the days used and remaining life of the intermediate
// (dust) filter.
func (dev *Device) ResetDustFilter() ([]any, error) {
	return dev.transport.Send("set_filter_reset", []any{"intermediate"})
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
