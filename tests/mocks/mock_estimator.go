package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEstimator implements emissions.Service.
type MockEstimator struct {
	mock.Mock
}

func (m *MockEstimator) Commute(ctx context.Context, distanceKm float64, mode string) float64 {
	args := m.Called(ctx, distanceKm, mode)
	return args.Get(0).(float64)
}

func (m *MockEstimator) Food(foodType string, quantity float64, unit string) float64 {
	args := m.Called(foodType, quantity, unit)
	return args.Get(0).(float64)
}

func (m *MockEstimator) Electricity(ctx context.Context, energy float64, unit string) float64 {
	args := m.Called(ctx, energy, unit)
	return args.Get(0).(float64)
}
