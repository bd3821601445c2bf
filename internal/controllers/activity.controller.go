package controllers

import (
	"carbontrack/internal/emissions"
	"carbontrack/internal/models"
	"carbontrack/internal/repository"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultListLimit = 50

type ActivityController struct {
	repo      repository.ActivityRepository
	estimator emissions.Service
}

func NewActivityController(repo repository.ActivityRepository, estimator emissions.Service) *ActivityController {
	return &ActivityController{repo: repo, estimator: estimator}
}

// CreateActivity godoc
// @Summary Create a new activity
// @Description Create an activity; its co2e is computed before saving
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body models.CreateActivityRequest true "Activity data"
// @Success 201 {object} map[string]interface{} "Activity created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create activity"
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var req models.CreateActivityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request data")
		return
	}

	if !models.ValidActivityType(req.ActivityType) {
		validationError(c, "Invalid activity type")
		return
	}

	activity, ok := ac.buildActivity(c, &req)
	if !ok {
		return
	}

	if err := ac.repo.Create(activity); err != nil {
		internalError(c, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Activity created successfully",
		"activity": activity.Summary(),
	})
}

// buildActivity validates the category-required quantity, computes co2e
// and assembles the record with boundary defaults applied. On failure it
// writes the error response and returns ok=false.
func (ac *ActivityController) buildActivity(c *gin.Context, req *models.CreateActivityRequest) (*models.Activity, bool) {
	activity := &models.Activity{
		UserID:       stringOr(req.UserID, models.DefaultUserID),
		ActivityType: req.ActivityType,
		Date:         time.Now(),
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	// Presence checks on category-required numerics are nil checks: an
	// explicit zero is a present value and must be accepted.
	switch req.ActivityType {
	case models.ActivityCommute:
		if req.Distance == nil {
			validationError(c, "Distance is required for commute")
			return nil, false
		}
		activity.Distance = *req.Distance
		activity.TransportMode = stringOr(req.TransportMode, emissions.ModeCar)
		activity.Co2e = ac.estimator.Commute(c.Request.Context(), activity.Distance, activity.TransportMode)

	case models.ActivityFood:
		if req.Quantity == nil {
			validationError(c, "Quantity is required for food activity")
			return nil, false
		}
		activity.Quantity = *req.Quantity
		activity.FoodType = stringOr(req.FoodType, "vegetables")
		activity.Unit = stringOr(req.Unit, emissions.UnitKg)
		activity.Co2e = ac.estimator.Food(activity.FoodType, activity.Quantity, activity.Unit)

	case models.ActivityElectricity:
		if req.EnergyConsumed == nil {
			validationError(c, "Energy consumed is required for electricity")
			return nil, false
		}
		activity.EnergyConsumed = *req.EnergyConsumed
		activity.EnergyUnit = stringOr(req.EnergyUnit, emissions.UnitKwh)
		activity.Co2e = ac.estimator.Electricity(c.Request.Context(), activity.EnergyConsumed, activity.EnergyUnit)
	}

	return activity, true
}

// GetActivities godoc
// @Summary List activities
// @Description List activities for a user, newest first, optionally filtered by type and date range
// @Tags activities
// @Produce json
// @Param userId query string false "User id (defaults to default-user)"
// @Param activityType query string false "Activity type filter"
// @Param startDate query string false "Inclusive lower date bound (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "Inclusive upper date bound"
// @Param limit query int false "Result cap (default 50)"
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid query parameter"
// @Router /activities [get]
func (ac *ActivityController) GetActivities(c *gin.Context) {
	filter := repository.ActivityFilter{
		UserID:       stringOr(c.Query("userId"), models.DefaultUserID),
		ActivityType: c.Query("activityType"),
		Limit:        defaultListLimit,
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			validationError(c, "Limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	var ok bool
	if filter.StartDate, ok = queryDate(c, "startDate"); !ok {
		return
	}
	if filter.EndDate, ok = queryDate(c, "endDate"); !ok {
		return
	}

	activities, err := ac.repo.Find(filter)
	if err != nil {
		internalError(c, "Failed to get activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(activities),
		"activities": activities,
	})
}

// GetActivityByID godoc
// @Summary Get an activity by ID
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	activity, err := ac.repo.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFoundError(c, "Activity not found")
			return
		}
		internalError(c, "Failed to get activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"activity": activity,
	})
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Merge the provided fields onto the stored record; co2e is recomputed only when an emission-relevant field or the activity type changes
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param activity body models.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Activity updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, "Invalid request data")
		return
	}

	if req.ActivityType != nil && !models.ValidActivityType(*req.ActivityType) {
		validationError(c, "Invalid activity type")
		return
	}

	activity, err := ac.repo.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFoundError(c, "Activity not found")
			return
		}
		internalError(c, "Failed to get activity")
		return
	}

	recompute := req.TouchesEmission() ||
		(req.ActivityType != nil && *req.ActivityType != activity.ActivityType)

	mergeActivity(activity, &req)

	if recompute {
		switch activity.ActivityType {
		case models.ActivityCommute:
			activity.Co2e = ac.estimator.Commute(c.Request.Context(), activity.Distance, activity.TransportMode)
		case models.ActivityFood:
			activity.Co2e = ac.estimator.Food(activity.FoodType, activity.Quantity, activity.Unit)
		case models.ActivityElectricity:
			activity.Co2e = ac.estimator.Electricity(c.Request.Context(), activity.EnergyConsumed, activity.EnergyUnit)
		}
	}

	if err := ac.repo.Update(activity); err != nil {
		internalError(c, "Failed to update activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Activity updated successfully",
		"activity": activity.Summary(),
	})
}

// mergeActivity copies the supplied fields onto the stored record,
// leaving nil fields untouched.
func mergeActivity(activity *models.Activity, req *models.UpdateActivityRequest) {
	if req.UserID != nil {
		activity.UserID = *req.UserID
	}
	if req.ActivityType != nil {
		activity.ActivityType = *req.ActivityType
	}
	if req.Distance != nil {
		activity.Distance = *req.Distance
	}
	if req.TransportMode != nil {
		activity.TransportMode = *req.TransportMode
	}
	if req.FoodType != nil {
		activity.FoodType = *req.FoodType
	}
	if req.Quantity != nil {
		activity.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		activity.Unit = *req.Unit
	}
	if req.EnergyConsumed != nil {
		activity.EnergyConsumed = *req.EnergyConsumed
	}
	if req.EnergyUnit != nil {
		activity.EnergyUnit = *req.EnergyUnit
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity deleted successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	id := c.Param("id")

	if _, err := ac.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFoundError(c, "Activity not found")
			return
		}
		internalError(c, "Failed to get activity")
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		internalError(c, "Failed to delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Activity deleted successfully",
	})
}
