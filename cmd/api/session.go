package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionOutput is the page bootstrap payload.
type SessionOutput struct {
	Nonce string `json:"nonce"`
}

// handleGetSession godoc
// @Summary Get a request token
// @Description Issue the anti-forgery token the weather endpoint requires
// @Tags session
// @Produce json
// @Success 200 {object} SessionOutput
// @Router /session [get]
func (app *App) handleGetSession(c *gin.Context) {
	c.JSON(http.StatusOK, SessionOutput{Nonce: app.nonces.Create(nonceAction)})
}

// requireNonce rejects requests lacking a valid anti-forgery token
// before any other processing.
func (app *App) requireNonce() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !app.nonces.Verify(c.GetHeader(nonceHeader), nonceAction) {
			c.AbortWithStatusJSON(http.StatusForbidden, errorResponse{
				Code:    "invalid_request",
				Message: "Invalid request.",
			})
			return
		}
		c.Next()
	}
}
