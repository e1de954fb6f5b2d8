package controllers

import (
	"net/http"
	"time"

	"dukicks/config"
	"dukicks/models"
	"dukicks/services"
	"dukicks/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionController struct {
	Carts *services.CartService
}

func NewSessionController(carts *services.CartService) *SessionController {
	return &SessionController{Carts: carts}
}

// @Summary Start a cart session
// @Description Issues the bearer token used by the /cart endpoints
// @Tags Session
// @Produce json
// @Success 201 {object} models.Response
// @Failure 500 {object} models.ErrorResponse
// @Router /session [post]
func (ctrl *SessionController) CreateSession(c *gin.Context) {
	sessionID := ctrl.Carts.NewSessionID()

	token, expiresAt, err := utils.GenerateSessionToken(sessionID)
	if err != nil {
		config.Log.Error("failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to create session", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Session created",
		Data: models.SessionResponse{
			Token:     token,
			SessionID: sessionID,
			ExpiresIn: int64(time.Until(expiresAt).Seconds()),
		},
	})
}
