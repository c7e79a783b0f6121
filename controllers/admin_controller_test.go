package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/kavitha-salon/salon-api/lifecycle"
	"github.com/kavitha-salon/salon-api/middleware"
	"github.com/kavitha-salon/salon-api/models"
	"github.com/kavitha-salon/salon-api/stores"
)

// stubNotifier lets tests choose whether notification delivery succeeds.
type stubNotifier struct {
	fail bool
	sent int
}

func (n *stubNotifier) Send(recipient, subject, body string) error {
	n.sent++
	if n.fail {
		return errors.New("dial tcp: connection refused")
	}
	return nil
}

func setupAdminRouter(db *gorm.DB, notifier *stubNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)

	appointments := stores.NewAppointmentStore(db)
	contacts := stores.NewContactStore(db)
	lc := lifecycle.New(appointments, notifier)
	ctrl := NewAdminController(appointments, contacts, lc)

	router := gin.New()
	admin := router.Group("/api/v1/admin", middleware.RequireAdmin())
	{
		admin.GET("/appointments", ctrl.ListAppointments)
		admin.GET("/messages", ctrl.ListMessages)
		admin.PATCH("/appointments/:id", ctrl.UpdateAppointment)
		admin.POST("/appointments/:id/confirm", ctrl.ConfirmAppointment)
	}
	return router
}

func adminRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.AdminCookie, Value: "kavitha"})
	return req
}

func bookTestAppointment(t *testing.T, db *gorm.DB) *models.Appointment {
	store := stores.NewAppointmentStore(db)
	appt, err := store.Create("Meera", "meera@example.com", "555",
		[]string{"Full arm waxing", "Under arm waxing"}, "2026-05-01", "11:00 AM")
	if err != nil {
		t.Fatalf("Failed to create appointment: %v", err)
	}
	return appt
}

func TestAdminRoutesRequireSession(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupAdminRouter(db, &stubNotifier{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/admin/appointments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAppointmentsOrdered(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupAdminRouter(db, &stubNotifier{})
	store := stores.NewAppointmentStore(db)

	_, err := store.Create("B", "b@example.com", "2", []string{"399 Offer"}, "2026-05-02", "09:00 AM")
	assert.NoError(t, err)
	_, err = store.Create("A", "a@example.com", "1", []string{"399 Offer"}, "2026-05-01", "10:00 AM")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, adminRequest("GET", "/api/v1/admin/appointments", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "2026-05-01", first["date"])
}

func TestUpdateAppointment(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupAdminRouter(db, &stubNotifier{})
	appt := bookTestAppointment(t, db)

	tests := []struct {
		name           string
		id             string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, data map[string]interface{})
	}{
		{
			name:           "Mark completed",
			id:             fmt.Sprint(appt.ID),
			requestBody:    map[string]interface{}{"completed": true},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, true, data["completed"])
			},
		},
		{
			name:           "Record overpayment without error",
			id:             fmt.Sprint(appt.ID),
			requestBody:    map[string]interface{}{"amount_paid": 1000},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, float64(1000), data["amount_paid"])
				assert.Equal(t, float64(348), data["total_amount"])
			},
		},
		{
			name:           "Update both fields at once",
			id:             fmt.Sprint(appt.ID),
			requestBody:    map[string]interface{}{"completed": false, "amount_paid": 348},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, data map[string]interface{}) {
				assert.Equal(t, false, data["completed"])
				assert.Equal(t, float64(348), data["amount_paid"])
			},
		},
		{
			name:           "Unknown appointment",
			id:             "999",
			requestBody:    map[string]interface{}{"completed": true},
			expectedStatus: http.StatusNotFound,
			expectedError:  "NOT_FOUND",
		},
		{
			name:           "Non-numeric id",
			id:             "abc",
			requestBody:    map[string]interface{}{"completed": true},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, adminRequest("PATCH", "/api/v1/admin/appointments/"+tt.id, body))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedError != "" {
				errData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errData["code"])
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, response["data"].(map[string]interface{}))
			}
		})
	}
}

func TestConfirmAppointment(t *testing.T) {
	db := setupControllerTestDB(t)
	notifier := &stubNotifier{}
	router := setupAdminRouter(db, notifier)
	appt := bookTestAppointment(t, db)

	body, _ := json.Marshal(map[string]interface{}{"confirmed": true})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, adminRequest("POST", fmt.Sprintf("/api/v1/admin/appointments/%d/confirm", appt.ID), body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notifier.sent)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["confirmed"])
	assert.Nil(t, response["warning"])
}

func TestConfirmAppointmentNotifierFailure(t *testing.T) {
	db := setupControllerTestDB(t)
	notifier := &stubNotifier{fail: true}
	router := setupAdminRouter(db, notifier)
	appt := bookTestAppointment(t, db)

	body, _ := json.Marshal(map[string]interface{}{"confirmed": true})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, adminRequest("POST", fmt.Sprintf("/api/v1/admin/appointments/%d/confirm", appt.ID), body))

	// The decision sticks even though the email did not go out.
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	warning := response["warning"].(map[string]interface{})
	assert.Equal(t, "NOTIFICATION_FAILED", warning["code"])

	fetched, err := stores.NewAppointmentStore(db).GetByID(appt.ID)
	assert.NoError(t, err)
	assert.True(t, fetched.Confirmed)
}

func TestCancelAppointment(t *testing.T) {
	db := setupControllerTestDB(t)
	notifier := &stubNotifier{}
	router := setupAdminRouter(db, notifier)
	appt := bookTestAppointment(t, db)

	body, _ := json.Marshal(map[string]interface{}{"confirmed": false})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, adminRequest("POST", fmt.Sprintf("/api/v1/admin/appointments/%d/confirm", appt.ID), body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notifier.sent)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["confirmed"])
}

func TestListMessages(t *testing.T) {
	db := setupControllerTestDB(t)
	router := setupAdminRouter(db, &stubNotifier{})

	_, err := stores.NewContactStore(db).Submit("Ravi", "ravi@example.com", "hello")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, adminRequest("GET", "/api/v1/admin/messages", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
}
