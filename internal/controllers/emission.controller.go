package controllers

import (
	"carbontrack/internal/emissions"
	"carbontrack/internal/models"
	"carbontrack/internal/repository"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPeriodDays = 7
	isoDateLayout     = "2006-01-02"
)

type EmissionController struct {
	repo      repository.ActivityRepository
	estimator emissions.Service
}

func NewEmissionController(repo repository.ActivityRepository, estimator emissions.Service) *EmissionController {
	return &EmissionController{repo: repo, estimator: estimator}
}

// CalculateEmissions godoc
// @Summary Calculate emissions without saving
// @Description Compute kg co2e for the given activity fields; nothing is persisted
// @Tags emissions
// @Accept json
// @Produce json
// @Param activity body models.CreateActivityRequest true "Activity fields"
// @Success 200 {object} map[string]interface{} "Calculated emissions"
// @Failure 400 {object} map[string]interface{} "Invalid activity type"
// @Router /emissions/calculate [post]
func (ec *EmissionController) CalculateEmissions(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request data")
		return
	}

	var co2e float64

	switch req.ActivityType {
	case models.ActivityCommute:
		if req.Distance == nil {
			validationError(c, "Distance is required for commute")
			return
		}
		co2e = ec.estimator.Commute(c.Request.Context(), *req.Distance, stringOr(req.TransportMode, emissions.ModeCar))

	case models.ActivityFood:
		if req.Quantity == nil {
			validationError(c, "Quantity is required for food activity")
			return
		}
		co2e = ec.estimator.Food(stringOr(req.FoodType, "vegetables"), *req.Quantity, stringOr(req.Unit, emissions.UnitKg))

	case models.ActivityElectricity:
		if req.EnergyConsumed == nil {
			validationError(c, "Energy consumed is required for electricity")
			return
		}
		co2e = ec.estimator.Electricity(c.Request.Context(), *req.EnergyConsumed, stringOr(req.EnergyUnit, emissions.UnitKwh))

	default:
		validationError(c, "Invalid activity type")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"co2e":    co2e,
		"unit":    "kg",
	})
}

// GetTotalEmissions godoc
// @Summary Total emissions for a user
// @Description Sum co2e over all matching activities, optionally bounded by an inclusive date range
// @Tags emissions
// @Produce json
// @Param userId query string false "User id (defaults to default-user)"
// @Param startDate query string false "Inclusive lower date bound"
// @Param endDate query string false "Inclusive upper date bound"
// @Success 200 {object} map[string]interface{} "Total emissions"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Router /emissions/total [get]
func (ec *EmissionController) GetTotalEmissions(c *gin.Context) {
	filter := repository.ActivityFilter{
		UserID: stringOr(c.Query("userId"), models.DefaultUserID),
	}

	var ok bool
	if filter.StartDate, ok = queryDate(c, "startDate"); !ok {
		return
	}
	if filter.EndDate, ok = queryDate(c, "endDate"); !ok {
		return
	}

	activities, err := ec.repo.Find(filter)
	if err != nil {
		internalError(c, "Failed to fetch activities")
		return
	}

	var total float64
	for _, activity := range activities {
		total += activity.Co2e
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"totalCo2e":  total,
		"count":      len(activities),
		"activities": activities,
	})
}

// PeriodBucket is one time-keyed co2e accumulator in the period
// response.
type PeriodBucket struct {
	Date string  `json:"date"`
	Co2e float64 `json:"co2e"`
}

// GetEmissionsByPeriod godoc
// @Summary Emissions bucketed by day or week
// @Description Bucket the last N days of activities into day or week keys; only buckets with at least one record appear
// @Tags emissions
// @Produce json
// @Param userId query string false "User id (defaults to default-user)"
// @Param period query string false "day or week (default day)"
// @Param days query int false "Window size in days (default 7)"
// @Success 200 {object} map[string]interface{} "Bucketed emissions"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Router /emissions/period [get]
func (ec *EmissionController) GetEmissionsByPeriod(c *gin.Context) {
	userID := stringOr(c.Query("userId"), models.DefaultUserID)
	period := stringOr(c.Query("period"), "day")

	days := defaultPeriodDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			validationError(c, "Days must be a non-negative integer")
			return
		}
		days = parsed
	}

	since := time.Now().AddDate(0, 0, -days)
	activities, err := ec.repo.FindSince(userID, since)
	if err != nil {
		internalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    bucketByPeriod(activities, period),
	})
}

// bucketByPeriod sums co2e into day keys, or into the date of each
// record's week start (Sunday) when period is "week". Buckets come back
// in ascending date order; empty buckets are not emitted.
func bucketByPeriod(activities []models.Activity, period string) []PeriodBucket {
	sums := make(map[string]float64)
	for _, activity := range activities {
		day := activity.Date.UTC()
		if period == "week" {
			day = day.AddDate(0, 0, -int(day.Weekday()))
		}
		sums[day.Format(isoDateLayout)] += activity.Co2e
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]PeriodBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, PeriodBucket{Date: key, Co2e: sums[key]})
	}
	return buckets
}
