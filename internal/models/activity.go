package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity types
const (
	ActivityCommute     = "commute"
	ActivityFood        = "food"
	ActivityElectricity = "electricity"
)

// DefaultUserID is the sentinel applied when a request carries no
// userId. There is no real multi-user isolation.
const DefaultUserID = "default-user"

// ValidActivityType reports whether t is one of the three supported
// activity types.
func ValidActivityType(t string) bool {
	return t == ActivityCommute || t == ActivityFood || t == ActivityElectricity
}

// Activity is the persisted record. Fields irrelevant to the active
// ActivityType are stored verbatim with their zero values. Co2e is
// derived by the estimator and never user-supplied.
type Activity struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id" example:"7f1aee2c-9f34-4a1e-9c0e-3f6f2b9d8a11"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updatedAt" example:"2024-01-01T00:00:00Z"`

	UserID       string `gorm:"size:64;index:idx_activities_user_date,priority:1" json:"userId" example:"default-user"`
	ActivityType string `gorm:"size:16;index:idx_activities_type_date,priority:1" json:"activityType" example:"commute"`

	// Commute fields
	Distance      float64 `json:"distance" example:"12.5"`
	TransportMode string  `gorm:"size:16" json:"transportMode" example:"car"`

	// Food fields
	FoodType string  `gorm:"size:16" json:"foodType" example:"vegetables"`
	Quantity float64 `json:"quantity" example:"1"`
	Unit     string  `gorm:"size:8" json:"unit" example:"kg"`

	// Electricity fields
	EnergyConsumed float64 `json:"energyConsumed" example:"10"`
	EnergyUnit     string  `gorm:"size:8" json:"energyUnit" example:"kwh"`

	// Derived emissions in kg co2e
	Co2e float64 `json:"co2e" example:"2.625"`

	Date  time.Time `gorm:"index:idx_activities_user_date,priority:2,sort:desc;index:idx_activities_type_date,priority:2,sort:desc" json:"date" example:"2024-01-01T00:00:00Z"`
	Notes string    `json:"notes" example:"daily drive to work"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ActivitySummary is the compact shape returned by create and update.
type ActivitySummary struct {
	ID           string    `json:"id"`
	ActivityType string    `json:"activityType"`
	Co2e         float64   `json:"co2e"`
	Date         time.Time `json:"date"`
}

// Summary projects the record into its compact response shape.
func (a *Activity) Summary() ActivitySummary {
	return ActivitySummary{
		ID:           a.ID,
		ActivityType: a.ActivityType,
		Co2e:         a.Co2e,
		Date:         a.Date,
	}
}
