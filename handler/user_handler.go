package handler

import (
	"github.com/gin-gonic/gin"

	"notekeep/dto"
	"notekeep/middleware"
	"notekeep/services"
	"notekeep/usecase"
	"notekeep/utils"
)

type UserHandler struct {
	Users     *usecase.UserService
	Sessions  *usecase.SessionService
	Blacklist *services.TokenBlacklist
}

func NewUserHandler(users *usecase.UserService, sessions *usecase.SessionService, blacklist *services.TokenBlacklist) *UserHandler {
	return &UserHandler{Users: users, Sessions: sessions, Blacklist: blacklist}
}

// Profile handles GET /user/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, dto.ToUserProfileResponse(user))
}

// ChangePassword handles POST /user/change-password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Users.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "password changed"})
}

// Logout handles POST /user/logout: revokes the presented tokens and ends the
// session they were issued under.
func (h *UserHandler) Logout(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	sessionID := c.GetString(middleware.ContextSessionID)
	accessToken := c.GetString(middleware.ContextAccessToken)
	refreshToken := c.GetHeader("Refresh-Token")

	if err := h.Blacklist.Add(c.Request.Context(), accessToken, refreshToken); err != nil {
		utils.TrackError("auth", "blacklist_failed")
		utils.InternalError(c, "failed to log out")
		return
	}

	if err := h.Sessions.End(c.Request.Context(), sessionID, userID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "logged out"})
}

// Delete handles DELETE /user: removes the account and ends every session.
func (h *UserHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.Users.DeleteAccount(c.Request.Context(), userID); err != nil {
		utils.Error(c, err)
		return
	}

	if _, err := h.Sessions.EndAll(c.Request.Context(), userID); err != nil {
		utils.TrackError("session", "end_all_failed")
	}

	utils.Success(c, gin.H{"message": "account deleted"})
}

// EnableTwoFactor handles POST /user/2fa/enable.
func (h *UserHandler) EnableTwoFactor(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	url, err := h.Users.EnableTwoFactor(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"otpauthUrl": url})
}

// DisableTwoFactor handles POST /user/2fa/disable.
func (h *UserHandler) DisableTwoFactor(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req dto.TwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	if err := h.Users.DisableTwoFactor(c.Request.Context(), userID, req.Code); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "two-factor disabled"})
}
