package utils

import (
	"carbontrack/database"
	"carbontrack/internal/emissions"
	"carbontrack/internal/models"
	"context"
	"log"
	"math"
	"math/rand"
	"time"
)

const DefaultNumActivities = 100

var seedTransportModes = []string{
	emissions.ModeCar, emissions.ModeBus, emissions.ModeTrain,
	emissions.ModePlane, emissions.ModeMotorcycle, emissions.ModeBicycle,
	emissions.ModeWalking,
}

var seedFoodTypes = []string{
	"beef", "pork", "chicken", "fish", "dairy", "vegetables", "fruits", "grains",
}

// SeedActivities inserts randomized sample activities for the given
// user, dated within the last daysBack days. Emissions are computed
// from the static factor tables so seeding never touches the provider.
func SeedActivities(count int, userID string, daysBack int) error {
	if daysBack < 1 {
		daysBack = 1
	}

	estimator := emissions.NewEstimator(nil, nil)
	ctx := context.Background()

	activities := make([]models.Activity, 0, count)
	for i := 0; i < count; i++ {
		activity := models.Activity{
			UserID: userID,
			Date:   time.Now().AddDate(0, 0, -rand.Intn(daysBack)),
			Notes:  "seeded activity",
		}

		switch rand.Intn(3) {
		case 0:
			activity.ActivityType = models.ActivityCommute
			activity.Distance = round1(rand.Float64() * 80)
			activity.TransportMode = seedTransportModes[rand.Intn(len(seedTransportModes))]
			activity.Co2e = estimator.Commute(ctx, activity.Distance, activity.TransportMode)
		case 1:
			activity.ActivityType = models.ActivityFood
			activity.FoodType = seedFoodTypes[rand.Intn(len(seedFoodTypes))]
			activity.Quantity = round1(rand.Float64() * 3)
			activity.Unit = emissions.UnitKg
			activity.Co2e = estimator.Food(activity.FoodType, activity.Quantity, activity.Unit)
		case 2:
			activity.ActivityType = models.ActivityElectricity
			activity.EnergyConsumed = round1(rand.Float64() * 30)
			activity.EnergyUnit = emissions.UnitKwh
			activity.Co2e = estimator.Electricity(ctx, activity.EnergyConsumed, activity.EnergyUnit)
		}

		activities = append(activities, activity)
	}

	if err := database.DB.CreateInBatches(activities, 100).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d activities for user %q across the last %d days", count, userID, daysBack)
	return nil
}

// ClearActivities deletes all activities for the given user.
func ClearActivities(userID string) error {
	result := database.DB.Delete(&models.Activity{}, "user_id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	log.Printf("Deleted %d activities for user %q", result.RowsAffected, userID)
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
