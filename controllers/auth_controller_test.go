package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-storefront/config"
	"nexus-storefront/utils"
)

func newAuthRouter(t *testing.T, adminPassword string) *gin.Engine {
	t.Helper()

	hash := ""
	if adminPassword != "" {
		var err error
		hash, err = utils.HashPassword(adminPassword)
		require.NoError(t, err)
	}
	config.AppConfig = &config.Config{
		AppEnv:        "test",
		JWTSecret:     "test-secret",
		JWTExpiry:     "1h",
		AdminPassHash: hash,
	}

	ctrl := &AuthController{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auth/session", ctrl.GetSession)
	router.POST("/auth/login", ctrl.Login)
	router.POST("/auth/logout", ctrl.Logout)
	return router
}

func idTokenCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "id_token" {
			return ck
		}
	}
	return nil
}

func TestLoginSetsIDTokenCookie(t *testing.T) {
	router := newAuthRouter(t, "hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"hunter2","name":"Dev"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := idTokenCookie(t, w)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	claims, err := utils.ParseSessionClaims(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "local-admin", claims.Subject)
	assert.Equal(t, "Dev", claims.Name)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	router := newAuthRouter(t, "hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, idTokenCookie(t, w))
}

func TestLoginDisabledWithoutHash(t *testing.T) {
	router := newAuthRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"anything"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionReflectsTokenPresence(t *testing.T) {
	router := newAuthRouter(t, "hunter2")

	// No cookie: not logged in, and not an error.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"logged_in":false`)

	// Garbage cookie: still not logged in, still not an error.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "id_token", Value: "not-a-jwt"})
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"logged_in":false`)

	// Valid token: logged in with claims surfaced.
	token, err := utils.GenerateLocalToken("user-9", "Ada")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "id_token", Value: token})
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"logged_in":true`)
	assert.Contains(t, w.Body.String(), `"user_id":"user-9"`)
	assert.Contains(t, w.Body.String(), `"name":"Ada"`)
}

func TestLogoutExpiresCookie(t *testing.T) {
	router := newAuthRouter(t, "hunter2")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := idTokenCookie(t, w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
