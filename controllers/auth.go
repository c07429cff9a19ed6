package controllers

import (
	"net/http"
	"time"

	"nailstudio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LoginInput struct {
	Pin string `json:"pin" binding:"required"`
}

// AuthController issues admin tokens against the configured PIN.
type AuthController struct {
	pinHash string
	secret  string
	expiry  time.Duration
	now     func() time.Time
}

// NewAuthController takes the bcrypt hash of the admin PIN.
func NewAuthController(pinHash, secret string, expiry time.Duration) *AuthController {
	return &AuthController{pinHash: pinHash, secret: secret, expiry: expiry, now: time.Now}
}

// Login exchanges the admin PIN for a JWT. There is no lockout.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Ingresa el PIN")
		return
	}

	if !utils.CheckPasswordHash(input.Pin, ac.pinHash) {
		log.Warn().Str("ip", c.ClientIP()).Msg("admin login rejected")
		utils.RespondWithError(c, http.StatusUnauthorized, "PIN Incorrecto")
		return
	}

	now := ac.now()
	token, err := utils.GenerateToken(utils.AdminSubject, ac.secret, ac.expiry, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign admin token")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": now.Add(ac.expiry).Unix(),
	})
}

// Me echoes the authenticated subject
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subject": c.GetString("userId")})
}
