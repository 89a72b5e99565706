package types

// Units selects the metric or imperial representation of weather values.
// No conversion is done locally; the value is passed through to the
// upstream provider, which returns numbers in the requested system.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits parses a units query value. Empty and unrecognized values
// fall back to metric, matching the endpoint's lenient contract.
func ParseUnits(s string) Units {
	if Units(s) == UnitsImperial {
		return UnitsImperial
	}
	return UnitsMetric
}

// Other returns the opposite unit system, used by the unit toggle.
func (u Units) Other() Units {
	if u == UnitsImperial {
		return UnitsMetric
	}
	return UnitsImperial
}
