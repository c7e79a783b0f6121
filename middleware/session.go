package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// AdminCookie marks a logged-in staff session.
	AdminCookie = "salon_admin"
	// UserCookie marks a logged-in visitor session.
	UserCookie = "salon_user"

	// Sessions last a day, matching a single working day at the salon.
	cookieMaxAge = 24 * 60 * 60
)

// SetSession sets a session cookie for the given username. Sessions are a
// plain cookie flag; nothing stronger is layered on top.
func SetSession(c *gin.Context, cookieName, username string) {
	c.SetCookie(cookieName, username, cookieMaxAge, "/", "", false, true)
}

// ClearSessions removes both session cookies.
func ClearSessions(c *gin.Context) {
	c.SetCookie(AdminCookie, "", -1, "/", "", false, true)
	c.SetCookie(UserCookie, "", -1, "/", "", false, true)
}

// RequireAdmin rejects requests that do not carry the admin session cookie.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := c.Cookie(AdminCookie)
		if err != nil || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Admin login required",
				},
			})
			return
		}
		c.Set("admin_username", username)
		c.Next()
	}
}

// GetAdminUsername returns the admin username stored by RequireAdmin.
func GetAdminUsername(c *gin.Context) string {
	username, _ := c.Get("admin_username")
	if s, ok := username.(string); ok {
		return s
	}
	return ""
}
