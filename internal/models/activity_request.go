package models

import "time"

// CreateActivityRequest is the create/calculate payload. Numeric fields
// are pointers so an explicit zero is distinguishable from an absent
// field: presence checks must be nil checks, never falsy checks.
type CreateActivityRequest struct {
	UserID         string     `json:"userId"`
	ActivityType   string     `json:"activityType"`
	Distance       *float64   `json:"distance"`
	TransportMode  string     `json:"transportMode"`
	FoodType       string     `json:"foodType"`
	Quantity       *float64   `json:"quantity"`
	Unit           string     `json:"unit"`
	EnergyConsumed *float64   `json:"energyConsumed"`
	EnergyUnit     string     `json:"energyUnit"`
	Date           *time.Time `json:"date"`
	Notes          *string    `json:"notes"`
}

// UpdateActivityRequest is the merge-update payload. Every field is a
// pointer: nil means "leave the stored value alone".
type UpdateActivityRequest struct {
	UserID         *string    `json:"userId"`
	ActivityType   *string    `json:"activityType"`
	Distance       *float64   `json:"distance"`
	TransportMode  *string    `json:"transportMode"`
	FoodType       *string    `json:"foodType"`
	Quantity       *float64   `json:"quantity"`
	Unit           *string    `json:"unit"`
	EnergyConsumed *float64   `json:"energyConsumed"`
	EnergyUnit     *string    `json:"energyUnit"`
	Date           *time.Time `json:"date"`
	Notes          *string    `json:"notes"`
}

// TouchesEmission reports whether the update supplies any field that
// feeds the co2e computation. ActivityType changes are checked
// separately against the stored record.
func (r *UpdateActivityRequest) TouchesEmission() bool {
	return r.Distance != nil ||
		r.TransportMode != nil ||
		r.FoodType != nil ||
		r.Quantity != nil ||
		r.Unit != nil ||
		r.EnergyConsumed != nil ||
		r.EnergyUnit != nil
}
