package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"carbontrack/internal/controllers"
	"carbontrack/internal/models"
	"carbontrack/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupEmissionController() (*controllers.EmissionController, *mocks.MockActivityRepository, *mocks.MockEstimator) {
	mockRepo := new(mocks.MockActivityRepository)
	mockEstimator := new(mocks.MockEstimator)
	controller := controllers.NewEmissionController(mockRepo, mockEstimator)
	return controller, mockRepo, mockEstimator
}

func TestCalculateEmissions(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockEstimator)
		expectedStatus int
		expectedCo2e   float64
	}{
		{
			name: "commute",
			requestBody: map[string]interface{}{
				"activityType":  "commute",
				"distance":      100,
				"transportMode": "train",
			},
			setupMocks: func(est *mocks.MockEstimator) {
				est.On("Commute", mock.Anything, 100.0, "train").Return(4.1)
			},
			expectedStatus: http.StatusOK,
			expectedCo2e:   4.1,
		},
		{
			name: "food",
			requestBody: map[string]interface{}{
				"activityType": "food",
				"foodType":     "beef",
				"quantity":     2,
				"unit":         "kg",
			},
			setupMocks: func(est *mocks.MockEstimator) {
				est.On("Food", "beef", 2.0, "kg").Return(54.0)
			},
			expectedStatus: http.StatusOK,
			expectedCo2e:   54.0,
		},
		{
			name: "electricity",
			requestBody: map[string]interface{}{
				"activityType":   "electricity",
				"energyConsumed": 10,
			},
			setupMocks: func(est *mocks.MockEstimator) {
				est.On("Electricity", mock.Anything, 10.0, "kwh").Return(4.75)
			},
			expectedStatus: http.StatusOK,
			expectedCo2e:   4.75,
		},
		{
			name: "invalid activity type",
			requestBody: map[string]interface{}{
				"activityType": "sailing",
			},
			setupMocks:     func(*mocks.MockEstimator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing category quantity",
			requestBody: map[string]interface{}{
				"activityType": "commute",
			},
			setupMocks:     func(*mocks.MockEstimator) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, _, mockEstimator := setupEmissionController()
			tt.setupMocks(mockEstimator)

			router := setupTestRouter()
			router.POST("/emissions/calculate", controller.CalculateEmissions)

			w := performRequest(router, http.MethodPost, "/emissions/calculate", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				body := decodeBody(t, w)
				assert.Equal(t, true, body["success"])
				assert.InDelta(t, tt.expectedCo2e, body["co2e"].(float64), 1e-9)
				assert.Equal(t, "kg", body["unit"])
			}
			mockEstimator.AssertExpectations(t)
		})
	}
}

func TestGetTotalEmissions(t *testing.T) {
	controller, mockRepo, _ := setupEmissionController()
	stored := []models.Activity{
		{ID: "a1", Co2e: 2.5},
		{ID: "a2", Co2e: 3.5},
		{ID: "a3", Co2e: 10},
	}
	mockRepo.On("Find", mock.AnythingOfType("repository.ActivityFilter")).Return(stored, nil)

	router := setupTestRouter()
	router.GET("/emissions/total", controller.GetTotalEmissions)

	w := performRequest(router, http.MethodGet, "/emissions/total?userId=alice", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.InDelta(t, 16.0, body["totalCo2e"].(float64), 1e-9)
	assert.Equal(t, float64(3), body["count"])
	mockRepo.AssertExpectations(t)
}

func TestGetEmissionsByPeriodDays(t *testing.T) {
	controller, mockRepo, _ := setupEmissionController()

	day1 := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 6, 18, 30, 0, 0, time.UTC)
	stored := []models.Activity{
		{ID: "a1", Co2e: 2, Date: day1},
		{ID: "a2", Co2e: 3, Date: day1.Add(2 * time.Hour)},
		{ID: "a3", Co2e: 5, Date: day2},
	}
	mockRepo.On("FindSince", models.DefaultUserID, mock.AnythingOfType("time.Time")).Return(stored, nil)

	router := setupTestRouter()
	router.GET("/emissions/period", controller.GetEmissionsByPeriod)

	w := performRequest(router, http.MethodGet, "/emissions/period?period=day", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]interface{})

	// Two distinct days, ascending, days without records omitted.
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	second := data[1].(map[string]interface{})
	assert.Equal(t, "2024-03-04", first["date"])
	assert.InDelta(t, 5.0, first["co2e"].(float64), 1e-9)
	assert.Equal(t, "2024-03-06", second["date"])
	assert.InDelta(t, 5.0, second["co2e"].(float64), 1e-9)
}

func TestGetEmissionsByPeriodWeeks(t *testing.T) {
	controller, mockRepo, _ := setupEmissionController()

	// Tuesday and Thursday of the week starting Sunday 2023-12-31.
	tuesday := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	thursday := time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC)
	stored := []models.Activity{
		{ID: "a1", Co2e: 2, Date: tuesday},
		{ID: "a2", Co2e: 3, Date: thursday},
	}
	mockRepo.On("FindSince", models.DefaultUserID, mock.AnythingOfType("time.Time")).Return(stored, nil)

	router := setupTestRouter()
	router.GET("/emissions/period", controller.GetEmissionsByPeriod)

	w := performRequest(router, http.MethodGet, "/emissions/period?period=week&days=30", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]interface{})

	assert.Len(t, data, 1)
	bucket := data[0].(map[string]interface{})
	assert.Equal(t, "2023-12-31", bucket["date"])
	assert.InDelta(t, 5.0, bucket["co2e"].(float64), 1e-9)
}

func TestGetEmissionsByPeriodRejectsBadDays(t *testing.T) {
	controller, _, _ := setupEmissionController()

	router := setupTestRouter()
	router.GET("/emissions/period", controller.GetEmissionsByPeriod)

	w := performRequest(router, http.MethodGet, "/emissions/period?days=soon", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
