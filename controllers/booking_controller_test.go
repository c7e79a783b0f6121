package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/models"
	"github.com/kavitha-salon/salon-api/stores"
)

func setupControllerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Appointment{}, &models.ContactMessage{}, &models.GalleryImage{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupBookingRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewBookingController(stores.NewAppointmentStore(db))

	router := gin.New()
	router.POST("/api/v1/bookings", ctrl.CreateBooking)
	router.GET("/api/v1/services", ctrl.ListServices)
	return router
}

func TestCreateBooking(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupBookingRouter(db)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully book two services",
			requestBody: map[string]interface{}{
				"name":     "Priya",
				"email":    "priya@example.com",
				"phone":    "9876543210",
				"date":     "2026-02-14",
				"slot":     "10:00 AM",
				"services": []string{"Full arm waxing", "Under arm waxing"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				assert.True(t, response["success"].(bool))
				data := response["data"].(map[string]interface{})
				assert.Equal(t, "Full arm waxing, Under arm waxing", data["service"])
				assert.Equal(t, float64(348), data["total_amount"])
				assert.Equal(t, float64(0), data["amount_paid"])
				assert.Equal(t, false, data["completed"])
				assert.Equal(t, false, data["confirmed"])
			},
		},
		{
			name: "Unknown services price at zero",
			requestBody: map[string]interface{}{
				"name":     "Anu",
				"email":    "anu@example.com",
				"phone":    "9000000001",
				"date":     "2026-02-15",
				"slot":     "11:00 AM",
				"services": []string{"Moon landing"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.Equal(t, float64(0), data["total_amount"])
			},
		},
		{
			name: "Fail with missing name",
			requestBody: map[string]interface{}{
				"email":    "x@example.com",
				"phone":    "1",
				"date":     "2026-02-15",
				"slot":     "11:00 AM",
				"services": []string{"399 Offer"},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with no services selected",
			requestBody: map[string]interface{}{
				"name":     "X",
				"email":    "x@example.com",
				"phone":    "1",
				"date":     "2026-02-15",
				"slot":     "11:00 AM",
				"services": []string{},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedError != "" {
				errData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errData["code"])
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestListServices(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupBookingRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/services", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	data := response["data"].([]interface{})
	assert.Len(t, data, 6)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "399 Offer", first["name"])
	assert.Equal(t, float64(399), first["price"])
}
