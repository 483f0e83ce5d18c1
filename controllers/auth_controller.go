package controllers

import (
	"errors"

	"slime-shop/models"
	"slime-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// @Summary Admin login
// @Description Exchange admin credentials for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	resp, err := ctrl.auth.Login(c.Request.Context(), req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(401, models.ErrorResponse{Message: "Invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Login temporarily unavailable", RetryAfter: 30})
		return
	}

	c.JSON(200, resp)
}
