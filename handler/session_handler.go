package handler

import (
	"github.com/gin-gonic/gin"

	"notekeep/middleware"
	"notekeep/usecase"
	"notekeep/utils"
)

type SessionHandler struct {
	Sessions *usecase.SessionService
}

func NewSessionHandler(sessions *usecase.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

// ListActive handles GET /sessions/active.
func (h *SessionHandler) ListActive(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	sessions, err := h.Sessions.ListActive(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, sessions)
}

// LogoutAll handles POST /sessions/logout-all.
func (h *SessionHandler) LogoutAll(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	ended, err := h.Sessions.EndAll(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"sessionsEnded": ended})
}
