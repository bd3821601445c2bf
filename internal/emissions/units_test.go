package emissions_test

import (
	"carbontrack/internal/emissions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKg(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		expected float64
	}{
		{"kilograms pass through", 2.5, "kg", 2.5},
		{"grams divide by 1000", 500, "g", 0.5},
		{"pounds convert", 1, "lb", 0.453592},
		{"unknown unit treated as kg", 3, "stone", 3},
		{"zero quantity", 0, "g", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, emissions.ToKg(tt.quantity, tt.unit), 1e-9)
		})
	}
}

func TestToKgUnitConsistency(t *testing.T) {
	// 1000 g and 1 kg are the same mass.
	assert.Equal(t, emissions.ToKg(1, "kg"), emissions.ToKg(1000, "g"))
}

func TestToKwh(t *testing.T) {
	tests := []struct {
		name     string
		energy   float64
		unit     string
		expected float64
	}{
		{"kilowatt-hours pass through", 12.5, "kwh", 12.5},
		{"megawatt-hours multiply by 1000", 1, "mwh", 1000},
		{"unknown unit treated as kwh", 7, "joule", 7},
		{"zero energy", 0, "mwh", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, emissions.ToKwh(tt.energy, tt.unit), 1e-9)
		})
	}
}
