package airfresh

const ModelAirfreshT2017 = "dmaker.airfresh.t2017"

// The device rejects a get_prop call naming more than this many properties,
// so status fetches are split into consecutive chunks of at most this size.
const maxPropertiesPerRequest = 15

// Ordered per-model property tables. Order matters: returned values line up
// positionally with the requested names, so a table must never be reordered.
var availableProperties = map[string][]string{
	ModelAirfreshT2017: {
		"power",
		"mode",
		"pm25",
		"co2",
		"temperature_outside",
		"favourite_speed",
		"control_speed",
		"filter_intermediate",
		"filter_inter_day",
		"filter_efficient",
		"filter_effi_day",
		"ptc_on",
		"ptc_level",
		"ptc_status",
		"child_lock",
		"sound",
		"display",
		"screen_direction",
	},
}

func propertiesForModel(model string) []string {
	if properties, prs := availableProperties[model]; prs {
		return properties
	}
	return availableProperties[ModelAirfreshT2017]
}
