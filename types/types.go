package types

const (
	DmakerAirfreshT2017 = iota
)

type DeviceType int

type DeviceConfig struct {
	Name  string
	Room  string
	Model DeviceType
	Ip    string
	Token string
}

func DeviceTypeFor(model string) DeviceType {
	switch model {
	case "dmaker.airfresh.t2017":
		return DmakerAirfreshT2017
	default:
		panic("Unknown device model: " + model)
	}
}

// MiioModelFor returns the identifier the device itself reports, which also
// keys the per-model property tables.
func MiioModelFor(model DeviceType) string {
	switch model {
	case DmakerAirfreshT2017:
		return "dmaker.airfresh.t2017"
	default:
		panic("Device type has no miio model identifier")
	}
}
