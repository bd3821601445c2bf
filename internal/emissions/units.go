package emissions

// Canonical units: food quantities are computed in kilograms,
// electricity in kilowatt-hours.
const (
	UnitKg  = "kg"
	UnitG   = "g"
	UnitLb  = "lb"
	UnitKwh = "kwh"
	UnitMwh = "mwh"
)

const lbInKg = 0.453592

// ToKg converts a mass quantity to kilograms. Unknown units are treated
// as already being kilograms.
func ToKg(quantity float64, unit string) float64 {
	switch unit {
	case UnitG:
		return quantity / 1000
	case UnitLb:
		return quantity * lbInKg
	default:
		return quantity
	}
}

// ToKwh converts an energy quantity to kilowatt-hours. Unknown units are
// treated as already being kilowatt-hours.
func ToKwh(energy float64, unit string) float64 {
	if unit == UnitMwh {
		return energy * 1000
	}
	return energy
}
