package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ibrahimvain/pesan-aja/auth"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	creds  *auth.CredentialStore
	tokens *auth.TokenService
	log    *zap.Logger
}

func NewAuthController(creds *auth.CredentialStore, tokens *auth.TokenService, log *zap.Logger) *AuthController {
	return &AuthController{creds: creds, tokens: tokens, log: log}
}

// Login verifies the presented credentials and returns a signed token. The
// failure response is identical for an unknown user and a wrong password.
func (ct *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := ct.creds.Verify(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false})
			return
		}
		ct.log.Error("credential lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process login"})
		return
	}

	token, err := ct.tokens.Issue(user)
	if err != nil {
		ct.log.Error("token signing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
