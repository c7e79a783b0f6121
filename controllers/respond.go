package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavitha-salon/salon-api/apperrors"
)

// respondError translates a store or lifecycle error into the API's JSON
// error envelope. The code/message pair carries enough for a rendering
// boundary to show a flash message and redirect back to the form.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		duplicateErr  *apperrors.DuplicateUsernameError
		authErr       *apperrors.AuthenticationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": validationErr.Message,
			},
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": notFoundErr.Error(),
			},
		})
	case errors.As(err, &duplicateErr):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DUPLICATE_USERNAME",
				"message": "Username already exists",
			},
		})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Invalid credentials",
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Something went wrong",
			},
		})
	}
}
