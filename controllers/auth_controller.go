package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus-storefront/config"
	"nexus-storefront/models"
	"nexus-storefront/utils"
)

type AuthController struct{}

const idTokenMaxAge = 60 * 60 * 24

// @Summary Session state
// @Description Report whether the visitor is logged in, from the id_token cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/session [get]
func (ctrl *AuthController) GetSession(c *gin.Context) {
	session := models.SessionResponse{}

	// Absent or unreadable token means "not logged in", never an error.
	if idToken, err := c.Cookie("id_token"); err == nil && idToken != "" {
		if claims, err := utils.ParseSessionClaims(idToken); err == nil {
			session.LoggedIn = true
			session.UserID = claims.Subject
			session.Name = claims.Name
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Session retrieved",
		Data:    session,
	})
}

// @Summary Dev login
// @Description Local login fallback for running without the external identity provider. Requires ADMIN_PASSWORD_HASH to be configured.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	if config.AppConfig.AdminPassHash == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Local login is disabled; use the external login provider",
		})
		return
	}

	var req struct {
		Name     string `json:"name"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid login body",
			Error:   err.Error(),
		})
		return
	}

	ok, err := utils.VerifyPassword(config.AppConfig.AdminPassHash, req.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	name := req.Name
	if name == "" {
		name = "Local Admin"
	}
	token, err := utils.GenerateLocalToken("local-admin", name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
			Error:   err.Error(),
		})
		return
	}

	c.SetCookie("id_token", token, idTokenMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged in",
	})
}

// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie("id_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out",
	})
}
