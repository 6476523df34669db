package airfresh

import (
	"errors"
	"strconv"
)

// ErrNotPresent is returned when a status field was absent from the last
// fetch, i.e. the device sent fewer values than properties were requested.
var ErrNotPresent = errors.New("value not present in status")

// UnknownValueError reports a wire value outside the known enumeration.
type UnknownValueError struct {
	Kind  string
	Value string
}

func (e *UnknownValueError) Error() string {
	return "unknown " + e.Kind + " value " + strconv.Quote(e.Value)
}

type OperationMode int

const (
	ModeOff OperationMode = iota
	ModeAuto
	ModeSleep
	ModeFavorite
)

var operationModeWireValues = map[OperationMode]string{
	ModeOff:      "off",
	ModeAuto:     "auto",
	ModeSleep:    "sleep",
	ModeFavorite: "favourite",
}

func (m OperationMode) Wire() string {
	return operationModeWireValues[m]
}

func (m OperationMode) String() string {
	switch m {
	case ModeOff:
		return "Off"
	case ModeAuto:
		return "Auto"
	case ModeSleep:
		return "Sleep"
	case ModeFavorite:
		return "Favorite"
	default:
		return "Unknown"
	}
}

func ParseOperationMode(wire string) (OperationMode, error) {
	for mode, wireValue := range operationModeWireValues {
		if wire == wireValue {
			return mode, nil
		}
	}
	return 0, &UnknownValueError{Kind: "operation mode", Value: wire}
}

type PtcLevel int

const (
	PtcLevelOff PtcLevel = iota
	PtcLevelLow
	PtcLevelMedium
	PtcLevelHigh
)

var ptcLevelWireValues = map[PtcLevel]string{
	PtcLevelOff:    "off",
	PtcLevelLow:    "low",
	PtcLevelMedium: "medium",
	PtcLevelHigh:   "high",
}

func (l PtcLevel) Wire() string {
	return ptcLevelWireValues[l]
}

func (l PtcLevel) String() string {
	switch l {
	case PtcLevelOff:
		return "Off"
	case PtcLevelLow:
		return "Low"
	case PtcLevelMedium:
		return "Medium"
	case PtcLevelHigh:
		return "High"
	default:
		return "Unknown"
	}
}

func ParsePtcLevel(wire string) (PtcLevel, error) {
	for level, wireValue := range ptcLevelWireValues {
		if wire == wireValue {
			return level, nil
		}
	}
	return 0, &UnknownValueError{Kind: "ptc level", Value: wire}
}

type ScreenOrientation int

const (
	OrientationPortrait ScreenOrientation = iota
	OrientationLandscapeLeft
	OrientationLandscapeRight
)

var screenOrientationWireValues = map[ScreenOrientation]string{
	OrientationPortrait:       "forward",
	OrientationLandscapeLeft:  "left",
	OrientationLandscapeRight: "right",
}

func (o ScreenOrientation) Wire() string {
	return screenOrientationWireValues[o]
}

func (o ScreenOrientation) String() string {
	switch o {
	case OrientationPortrait:
		return "Portrait"
	case OrientationLandscapeLeft:
		return "LandscapeLeft"
	case OrientationLandscapeRight:
		return "LandscapeRight"
	default:
		return "Unknown"
	}
}

func ParseScreenOrientation(wire string) (ScreenOrientation, error) {
	for orientation, wireValue := range screenOrientationWireValues {
		if wire == wireValue {
			return orientation, nil
		}
	}
	return 0, &UnknownValueError{Kind: "screen orientation", Value: wire}
}

// Status is an immutable snapshot of one status fetch. Fields absent from the
// fetch read as not-present rather than failing, so a short result list only
// leaves trailing fields unset.
type Status struct {
	values map[string]any
}

func newStatus(names []string, values []any) *Status {
	paired := make(map[string]any, len(names))
	for i, name := range names {
		if i >= len(values) {
			break
		}
		paired[name] = values[i]
	}
	return &Status{values: paired}
}

// Value returns the raw value for a property name, or nil when absent.
func (s *Status) Value(name string) any {
	return s.values[name]
}

func (s *Status) boolValue(name string) (bool, bool) {
	value, prs := s.values[name].(bool)
	return value, prs
}

func (s *Status) intValue(name string) (int, bool) {
	switch value := s.values[name].(type) {
	case float64: // numbers arrive as JSON numbers
		return int(value), true
	case int:
		return value, true
	default:
		return 0, false
	}
}

func (s *Status) enumValue(name string, parse func(string) error) error {
	wire, prs := s.values[name].(string)
	if !prs {
		return ErrNotPresent
	}
	return parse(wire)
}

func (s *Status) IsOn() (bool, bool) {
	return s.boolValue("power")
}

// Power reports the power state as the wire-style "on"/"off" string.
func (s *Status) Power() (string, bool) {
	on, prs := s.boolValue("power")
	if !prs {
		return "", false
	}
	if on {
		return "on", true
	}
	return "off", true
}

func (s *Status) Mode() (OperationMode, error) {
	var mode OperationMode
	err := s.enumValue("mode", func(wire string) (err error) {
		mode, err = ParseOperationMode(wire)
		return err
	})
	return mode, err
}

func (s *Status) PM25() (int, bool) {
	return s.intValue("pm25")
}

func (s *Status) CO2() (int, bool) {
	return s.intValue("co2")
}

func (s *Status) Temperature() (int, bool) {
	return s.intValue("temperature_outside")
}

func (s *Status) FavoriteSpeed() (int, bool) {
	return s.intValue("favourite_speed")
}

func (s *Status) ControlSpeed() (int, bool) {
	return s.intValue("control_speed")
}

// DustFilterLifeRemaining is the intermediate filter's remaining life in percent.
func (s *Status) DustFilterLifeRemaining() (int, bool) {
	return s.intValue("filter_intermediate")
}

func (s *Status) DustFilterDaysUsed() (int, bool) {
	return s.intValue("filter_inter_day")
}

// UpperFilterLifeRemaining is the efficient filter's remaining life in percent.
func (s *Status) UpperFilterLifeRemaining() (int, bool) {
	return s.intValue("filter_efficient")
}

func (s *Status) UpperFilterDaysUsed() (int, bool) {
	return s.intValue("filter_effi_day")
}

func (s *Status) Ptc() (bool, bool) {
	return s.boolValue("ptc_on")
}

func (s *Status) PtcLevel() (PtcLevel, error) {
	var level PtcLevel
	err := s.enumValue("ptc_level", func(wire string) (err error) {
		level, err = ParsePtcLevel(wire)
		return err
	})
	return level, err
}

func (s *Status) PtcStatus() (bool, bool) {
	return s.boolValue("ptc_status")
}

func (s *Status) ChildLock() (bool, bool) {
	return s.boolValue("child_lock")
}

func (s *Status) Buzzer() (bool, bool) {
	return s.boolValue("sound")
}

func (s *Status) Display() (bool, bool) {
	return s.boolValue("display")
}

func (s *Status) ScreenOrientation() (ScreenOrientation, error) {
	var orientation ScreenOrientation
	err := s.enumValue("screen_direction", func(wire string) (err error) {
		orientation, err = ParseScreenOrientation(wire)
		return err
	})
	return orientation, err
}
