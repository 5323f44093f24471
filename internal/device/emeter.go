package device

// Hardware revision 1 plugs report energy telemetry in base units
// (volts, amps, watts, watt-hours); revision 2 plugs report milli-units
// under "_mv"/"_ma"/"_mw"/"_wh" field names. Each row derives the
// missing convention from the present one.
var unitConversions = []struct {
	from, to   string
	multiplier float64
}{
	{"voltage_mv", "voltage", 0.001},
	{"current_ma", "current", 0.001},
	{"power_mw", "power", 0.001},
	{"total_wh", "total", 0.001},
	{"voltage", "voltage_mv", 1000},
	{"current", "current_ma", 1000},
	{"power", "power_mw", 1000},
	{"total", "total_wh", 1000},
}

// ReconcileUnits populates both unit conventions on an energy reading
// in place, so callers never need to know which hardware revision
// answered.
//
// Each of the four quantities is handled independently: a missing
// quantity blocks nothing, and a field already present under both names
// is never overwritten (first writer wins). A quantity absent under
// both names is simply left absent; that is not an error.
func ReconcileUnits(reading map[string]any) {
	for _, conv := range unitConversions {
		src, ok := reading[conv.from]
		if !ok {
			continue
		}
		if _, exists := reading[conv.to]; exists {
			continue
		}
		f, _ := src.(float64)
		reading[conv.to] = f * conv.multiplier
	}
}
