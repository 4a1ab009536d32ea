package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"notekeep/dto"
	"notekeep/services"
	"notekeep/usecase"
	"notekeep/utils"
)

type AuthHandler struct {
	Users     *usecase.UserService
	Sessions  *usecase.SessionService
	Tokens    *services.TokenService
	Blacklist *services.TokenBlacklist
}

func NewAuthHandler(users *usecase.UserService, sessions *usecase.SessionService, tokens *services.TokenService, blacklist *services.TokenBlacklist) *AuthHandler {
	return &AuthHandler{Users: users, Sessions: sessions, Tokens: tokens, Blacklist: blacklist}
}

// Register handles POST /auth/register. The response acknowledges the account
// and issues a token pair; the password is never echoed.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.Users.Register(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		utils.Error(c, err)
		return
	}

	session, _, err := h.Sessions.Start(c.Request.Context(), user.UserID,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, refreshToken, err := h.issueTokens(user.UserID, session.SessionID)
	if err != nil {
		utils.InternalError(c, "failed to generate tokens")
		return
	}

	utils.Created(c, gin.H{
		"user":    dto.ToUserProfileResponse(user),
		"token":   token,
		"refresh": refreshToken,
	})
}

// Login handles POST /auth/login. When the account has two-factor enabled and
// no code was sent, the response asks for one instead of failing.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request body")
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password, req.TwoFactorCode)
	if err != nil {
		if errors.Is(err, usecase.ErrTwoFactorRequired) {
			utils.Success(c, gin.H{
				"requires2fa": true,
				"message":     "two-factor code required",
			})
			return
		}
		utils.Error(c, err)
		return
	}

	session, notice, err := h.Sessions.Start(c.Request.Context(), user.UserID,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, refreshToken, err := h.issueTokens(user.UserID, session.SessionID)
	if err != nil {
		utils.InternalError(c, "failed to generate tokens")
		return
	}

	response := gin.H{
		"message": "login successful",
		"token":   token,
		"refresh": refreshToken,
		"user":    dto.ToUserProfileResponse(user),
	}
	if notice != "" {
		response["notice"] = notice
	}

	utils.Success(c, response)
}

// Refresh handles POST /auth/refresh: exchanges a valid refresh token for a
// new pair and revokes the old one.
func (h *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "missing or invalid refresh token")
		return
	}

	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	if h.Blacklist.IsBlacklisted(c.Request.Context(), refreshToken) {
		utils.Unauthorized(c, "token has been invalidated")
		return
	}

	claims, err := h.Tokens.ValidateToken(refreshToken, services.TokenTypeRefresh)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			utils.Unauthorized(c, "refresh token has expired")
		case errors.Is(err, services.ErrWrongTokenType):
			utils.Unauthorized(c, "invalid token type")
		default:
			utils.Unauthorized(c, "invalid refresh token")
		}
		return
	}

	newToken, newRefreshToken, err := h.issueTokens(claims.UserID, claims.SessionID)
	if err != nil {
		utils.InternalError(c, "failed to generate tokens")
		return
	}

	// Old refresh token is single-use.
	if err := h.Blacklist.Add(c.Request.Context(), refreshToken); err != nil {
		utils.TrackError("auth", "blacklist_failed")
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   newToken,
		"refresh": newRefreshToken,
	})
}

func (h *AuthHandler) issueTokens(userID, sessionID string) (string, string, error) {
	token, err := h.Tokens.GenerateAccessToken(userID, sessionID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := h.Tokens.GenerateRefreshToken(userID, sessionID)
	if err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}
