package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kavitha-salon/salon-api/middleware"
	"github.com/kavitha-salon/salon-api/stores"
)

// AuthController handles registration, login, and logout.
type AuthController struct {
	users *stores.UserStore
}

// NewAuthController creates an AuthController over the given store.
func NewAuthController(users *stores.UserStore) *AuthController {
	return &AuthController{users: users}
}

// CredentialsRequest represents a username/password form
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles POST /api/v1/register - creates a non-admin account
func (ctrl *AuthController) Register(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	user, err := ctrl.users.Register(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    user,
	})
}

// UserLogin handles POST /api/v1/login - visitor login
func (ctrl *AuthController) UserLogin(c *gin.Context) {
	ctrl.login(c, false)
}

// AdminLogin handles POST /api/v1/admin/login - staff login
func (ctrl *AuthController) AdminLogin(c *gin.Context) {
	ctrl.login(c, true)
}

func (ctrl *AuthController) login(c *gin.Context, requireAdmin bool) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	user, err := ctrl.users.Authenticate(req.Username, req.Password, requireAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie := middleware.UserCookie
	if requireAdmin {
		cookie = middleware.AdminCookie
	}
	middleware.SetSession(c, cookie, user.Username)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// Logout handles POST /api/v1/logout - clears both session cookies
func (ctrl *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessions(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

func bindCredentials(c *gin.Context) (*CredentialsRequest, bool) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return nil, false
	}
	return &req, true
}
