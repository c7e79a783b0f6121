package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kavitha-salon/salon-api/apperrors"
	"github.com/kavitha-salon/salon-api/lifecycle"
	"github.com/kavitha-salon/salon-api/stores"
)

// AdminController handles the staff panel: appointment listing, completion
// and payment updates, confirm/cancel decisions, and contact messages.
type AdminController struct {
	appointments *stores.AppointmentStore
	contacts     *stores.ContactStore
	lifecycle    *lifecycle.Lifecycle
}

// NewAdminController creates an AdminController over the given collaborators.
func NewAdminController(appointments *stores.AppointmentStore, contacts *stores.ContactStore, lc *lifecycle.Lifecycle) *AdminController {
	return &AdminController{
		appointments: appointments,
		contacts:     contacts,
		lifecycle:    lc,
	}
}

// ListAppointments handles GET /api/v1/admin/appointments - all bookings
// ordered by date then slot
func (ctrl *AdminController) ListAppointments(c *gin.Context) {
	appointments, err := ctrl.appointments.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointments,
	})
}

// ListMessages handles GET /api/v1/admin/messages - contact messages newest
// first
func (ctrl *AdminController) ListMessages(c *gin.Context) {
	messages, err := ctrl.contacts.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    messages,
	})
}

// UpdateAppointmentRequest represents the staff update form. Both fields are
// optional; omitted fields are left untouched.
type UpdateAppointmentRequest struct {
	Completed  *bool    `json:"completed"`
	AmountPaid *float64 `json:"amount_paid"`
}

// UpdateAppointment handles PATCH /api/v1/admin/appointments/:id - updates
// the completed flag and/or the amount paid
func (ctrl *AdminController) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
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

	if req.Completed != nil {
		if err := ctrl.appointments.SetCompleted(id, *req.Completed); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.AmountPaid != nil {
		if err := ctrl.appointments.SetAmountPaid(id, *req.AmountPaid); err != nil {
			respondError(c, err)
			return
		}
	}

	appointment, err := ctrl.appointments.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointment,
	})
}

// ConfirmAppointmentRequest represents the confirm/cancel decision
type ConfirmAppointmentRequest struct {
	Confirmed *bool `json:"confirmed" binding:"required"`
}

// ConfirmAppointment handles POST /api/v1/admin/appointments/:id/confirm -
// applies the staff decision and emails the visitor. A notification
// delivery failure does not fail the request: the decision is already
// durable, so it is reported as a warning on a 200 response.
func (ctrl *AdminController) ConfirmAppointment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ConfirmAppointmentRequest
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

	appointment, err := ctrl.lifecycle.Decide(id, *req.Confirmed)
	if err != nil {
		var deliveryErr *apperrors.NotificationDeliveryError
		if errors.As(err, &deliveryErr) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    appointment,
				"warning": gin.H{
					"code":    "NOTIFICATION_FAILED",
					"message": deliveryErr.Error(),
				},
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    appointment,
	})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": "Appointment ID must be a number",
			},
		})
		return 0, false
	}
	return uint(id), true
}
