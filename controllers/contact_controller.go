package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavitha-salon/salon-api/stores"
)

// ContactController handles the public contact form.
type ContactController struct {
	contacts *stores.ContactStore
}

// NewContactController creates a ContactController over the given store.
func NewContactController(contacts *stores.ContactStore) *ContactController {
	return &ContactController{contacts: contacts}
}

// SubmitContactRequest represents the request body for the contact form
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact handles POST /api/v1/contact - records a visitor message
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req SubmitContactRequest
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

	message, err := ctrl.contacts.Submit(req.Name, req.Email, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    message,
	})
}
