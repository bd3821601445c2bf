package emissions

import (
	"context"
	"log"
	"math"
)

// Parameters carry the normalized activity quantity sent to the
// estimation provider.
type Parameters struct {
	Distance     *float64 `json:"distance,omitempty"`
	DistanceUnit string   `json:"distance_unit,omitempty"`
	Energy       *float64 `json:"energy,omitempty"`
	EnergyUnit   string   `json:"energy_unit,omitempty"`
}

// DistanceKm builds provider parameters for a distance in kilometers.
func DistanceKm(km float64) Parameters {
	return Parameters{Distance: &km, DistanceUnit: "km"}
}

// EnergyKwh builds provider parameters for energy in kilowatt-hours.
func EnergyKwh(kwh float64) Parameters {
	return Parameters{Energy: &kwh, EnergyUnit: "kWh"}
}

// Provider is the external estimation source. Implementations must
// report a response without a usable co2e value as an error rather than
// returning zero, so the estimator can fall back to the static tables.
// An explicit zero from the provider is a valid result.
type Provider interface {
	Estimate(ctx context.Context, factorID string, params Parameters) (float64, error)
}

// EstimateCache memoises provider results by factor id and amount.
// Implementations must be safe for concurrent use.
type EstimateCache interface {
	GetEstimate(ctx context.Context, factorID string, amount float64) (float64, bool, error)
	StoreEstimate(ctx context.Context, factorID string, amount, co2e float64) error
}

// Service is the estimator surface consumed by the HTTP controllers.
// Every method returns a finite, non-negative kg co2e value and never
// an error: a failing provider degrades to the static fallback factors.
type Service interface {
	Commute(ctx context.Context, distanceKm float64, mode string) float64
	Food(foodType string, quantity float64, unit string) float64
	Electricity(ctx context.Context, energy float64, unit string) float64
}

// Estimator computes co2e per activity category, preferring the external
// provider and degrading to the static factor tables on any failure.
type Estimator struct {
	provider Provider
	cache    EstimateCache
}

// NewEstimator builds an Estimator. Both provider and cache may be nil:
// a nil provider forces the static fallback path, a nil cache disables
// memoisation.
func NewEstimator(provider Provider, cache EstimateCache) *Estimator {
	return &Estimator{provider: provider, cache: cache}
}

// Commute estimates emissions for a distance travelled by the given
// transport mode.
func (e *Estimator) Commute(ctx context.Context, distanceKm float64, mode string) float64 {
	factorID, emits := TransportFactorID(mode)
	if !emits {
		return 0
	}
	if co2e, ok := e.remote(ctx, "commute", factorID, distanceKm, DistanceKm(distanceKm)); ok {
		return co2e
	}
	return TransportFallbackFactor(mode) * distanceKm
}

// Food estimates emissions for a quantity of food. Food is always
// computed locally from the static factor table.
func (e *Estimator) Food(foodType string, quantity float64, unit string) float64 {
	return ToKg(quantity, unit) * FoodFactor(foodType)
}

// Electricity estimates emissions for consumed energy.
func (e *Estimator) Electricity(ctx context.Context, energy float64, unit string) float64 {
	kwh := ToKwh(energy, unit)
	if co2e, ok := e.remote(ctx, "electricity", electricityFactorID, kwh, EnergyKwh(kwh)); ok {
		return co2e
	}
	return electricityFallbackFactor * kwh
}

// remote runs the provider path: cache lookup first, then a single
// provider attempt. ok is false when the caller must use the static
// fallback.
func (e *Estimator) remote(ctx context.Context, category, factorID string, amount float64, params Parameters) (float64, bool) {
	if e.provider == nil {
		return 0, false
	}

	if e.cache != nil {
		if co2e, hit, err := e.cache.GetEstimate(ctx, factorID, amount); err == nil && hit {
			estimateCacheHits.WithLabelValues(category).Inc()
			return co2e, true
		}
	}

	providerRequests.WithLabelValues(category).Inc()
	co2e, err := e.provider.Estimate(ctx, factorID, params)
	if err != nil {
		log.Printf("Emission provider error (%s): %v", category, err)
		providerFallbacks.WithLabelValues(category).Inc()
		return 0, false
	}
	if !usable(co2e) {
		log.Printf("Emission provider returned unusable value (%s): %v", category, co2e)
		providerFallbacks.WithLabelValues(category).Inc()
		return 0, false
	}

	if e.cache != nil {
		if err := e.cache.StoreEstimate(ctx, factorID, amount, co2e); err != nil {
			log.Printf("Estimate cache store failed: %v", err)
		}
	}
	return co2e, true
}

// usable reports whether a provider value satisfies the numeric
// contract: finite and non-negative.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
