package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavitha-salon/salon-api/pricing"
	"github.com/kavitha-salon/salon-api/stores"
)

// BookingController handles the public booking form.
type BookingController struct {
	appointments *stores.AppointmentStore
}

// NewBookingController creates a BookingController over the given store.
func NewBookingController(appointments *stores.AppointmentStore) *BookingController {
	return &BookingController{appointments: appointments}
}

// CreateBookingRequest represents the request body for booking an appointment
type CreateBookingRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Date     string   `json:"date"`
	Slot     string   `json:"slot"`
	Services []string `json:"services"`
}

// CreateBooking handles POST /api/v1/bookings - books a new appointment.
// Field presence is checked by the store so the form boundary and any other
// caller get identical validation.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	appointment, err := ctrl.appointments.Create(req.Name, req.Email, req.Phone, req.Services, req.Date, req.Slot)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    appointment,
	})
}

// ListServices handles GET /api/v1/services - returns the bookable services
// and their prices for the booking form.
func (ctrl *BookingController) ListServices(c *gin.Context) {
	names := pricing.ServiceNames()
	services := make([]gin.H, 0, len(names))
	for _, name := range names {
		services = append(services, gin.H{
			"name":  name,
			"price": pricing.Price(name),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services,
	})
}
