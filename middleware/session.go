package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nexus-storefront/config"
)

const sessionMaxAge = 60 * 60 * 24 * 30

// SessionMiddleware assigns each visitor a cart session cookie so the cart
// manager can key stores per browser session. The cookie carries no identity,
// only an opaque UUID.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieName := config.AppConfig.SessionCookie

		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(cookieName, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set("cart_session", sessionID)
		c.Next()
	}
}

// SessionID returns the cart session for the current request.
func SessionID(c *gin.Context) string {
	if v, exists := c.Get("cart_session"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
