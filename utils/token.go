package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nexus-storefront/config"
)

// SessionClaims are the id_token claims this service cares about. The token
// is minted locally only in the dev-login fallback; tokens from the real
// identity provider are parsed without verification, since validation is the
// marketplace API's job.
type SessionClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// GenerateLocalToken mints an id_token for the dev-login fallback, signed
// with the local secret.
func GenerateLocalToken(userID, name string) (string, error) {
	expiry, err := time.ParseDuration(config.AppConfig.JWTExpiry)
	if err != nil {
		expiry = 24 * time.Hour
	}

	claims := SessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseSessionClaims extracts display claims from an id_token without
// verifying the signature. Presence of the cookie is the only gate here;
// anything stronger happens upstream.
func ParseSessionClaims(idToken string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
