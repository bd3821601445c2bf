package emissions

// Transport modes accepted for commute activities.
const (
	ModeCar        = "car"
	ModeBus        = "bus"
	ModeTrain      = "train"
	ModePlane      = "plane"
	ModeMotorcycle = "motorcycle"
	ModeBicycle    = "bicycle"
	ModeWalking    = "walking"
)

// Climatiq emission factor ids for motorized transport. Bicycle and
// walking have no entry: they emit nothing and never reach the provider.
var transportFactorIDs = map[string]string{
	ModeCar:        "3b0d35f0-967e-4da1-ae44-30c75e5a1f15",
	ModeBus:        "a140eb1a-bb10-4da8-8645-2d93ea0b474d",
	ModeTrain:      "2fca0e4c-9e14-4f87-9af4-dcd5cb1cf14a",
	ModePlane:      "8f8ad788-148d-4173-8e04-dfa0e5c94b2b",
	ModeMotorcycle: "dc16e39d-8572-432a-8225-5082bcde55e5",
}

// Static fallback factors in kg co2e per km, used when the provider is
// unavailable.
var transportFallbackFactors = map[string]float64{
	ModeCar:        0.21,
	ModeBus:        0.089,
	ModeTrain:      0.041,
	ModePlane:      0.255,
	ModeMotorcycle: 0.113,
	ModeBicycle:    0,
	ModeWalking:    0,
}

// Food factors in kg co2e per kg of food. Food emissions are always
// computed from this table, there is no provider path for food.
var foodFactors = map[string]float64{
	"beef":       27.0,
	"pork":       12.1,
	"chicken":    6.9,
	"fish":       5.1,
	"dairy":      3.2,
	"vegetables": 2.0,
	"fruits":     1.1,
	"grains":     2.7,
}

const (
	defaultFoodFactor = 2.0

	electricityFactorID       = "0de2d70a-4704-48f4-b862-1a86da206dd3"
	electricityFallbackFactor = 0.475 // kg co2e per kWh
)

// TransportFactorID resolves a transport mode to a provider factor id.
// The second return value is false for zero-emission modes, which must
// short-circuit to 0 without a provider call. Unrecognized modes resolve
// to the car factor.
func TransportFactorID(mode string) (string, bool) {
	if mode == ModeBicycle || mode == ModeWalking {
		return "", false
	}
	if id, ok := transportFactorIDs[mode]; ok {
		return id, true
	}
	return transportFactorIDs[ModeCar], true
}

// TransportFallbackFactor returns the static kg co2e per km factor for a
// transport mode, defaulting to the car factor for unrecognized modes.
func TransportFallbackFactor(mode string) float64 {
	if factor, ok := transportFallbackFactors[mode]; ok {
		return factor
	}
	return transportFallbackFactors[ModeCar]
}

// FoodFactor returns the static kg co2e per kg factor for a food type.
func FoodFactor(foodType string) float64 {
	if factor, ok := foodFactors[foodType]; ok {
		return factor
	}
	return defaultFoodFactor
}
