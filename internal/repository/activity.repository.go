package repository

import (
	"carbontrack/internal/models"
	"time"

	"gorm.io/gorm"
)

// ActivityFilter narrows list queries. Nil date bounds are open ended,
// both bounds are inclusive. Limit <= 0 means no cap.
type ActivityFilter struct {
	UserID       string
	ActivityType string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
}

type ActivityRepository interface {
	Create(activity *models.Activity) error
	Find(filter ActivityFilter) ([]models.Activity, error)
	FindByID(id string) (*models.Activity, error)
	FindSince(userID string, since time.Time) ([]models.Activity, error)
	Update(activity *models.Activity) error
	Delete(id string) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) Find(filter ActivityFilter) ([]models.Activity, error) {
	var activities []models.Activity

	query := r.db.Where("user_id = ?", filter.UserID)
	if filter.ActivityType != "" {
		query = query.Where("activity_type = ?", filter.ActivityType)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	query = query.Order("date DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByID(id string) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// FindSince returns a user's activities dated at or after since, oldest
// first, for period bucketing.
func (r *activityRepository) FindSince(userID string, since time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) Update(activity *models.Activity) error {
	return r.db.Save(activity).Error
}

func (r *activityRepository) Delete(id string) error {
	return r.db.Delete(&models.Activity{}, "id = ?", id).Error
}
