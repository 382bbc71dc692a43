package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"nexus-storefront/config"
)

// AdminGateMiddleware guards /admin routes. A request without an id_token
// cookie is redirected to the external login endpoint with the original URL
// as redirect_uri. Presence of the cookie is the whole check; token
// validation belongs to the marketplace API.
func AdminGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken, err := c.Cookie("id_token")
		if err != nil || idToken == "" {
			loginURL, parseErr := url.Parse(config.AppConfig.LoginURL)
			if parseErr != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}

			scheme := "https"
			if c.Request.TLS == nil {
				scheme = "http"
			}
			original := scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()

			q := loginURL.Query()
			q.Set("redirect_uri", original)
			loginURL.RawQuery = q.Encode()

			c.Redirect(http.StatusFound, loginURL.String())
			c.Abort()
			return
		}

		c.Set("id_token", idToken)
		c.Next()
	}
}

// IDToken returns the raw id_token cookie for the current request, or "".
func IDToken(c *gin.Context) string {
	if v, exists := c.Get("id_token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	token, err := c.Cookie("id_token")
	if err != nil {
		return ""
	}
	return token
}
