package dto

import (
	"time"

	"notekeep/model"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=6"`
	Fullname string `json:"fullname"`
}

type LoginRequest struct {
	Username      string `json:"username" binding:"required"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"twoFactorCode"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type TwoFactorRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserProfileResponse carries no credential material.
type UserProfileResponse struct {
	UserID           string    `json:"userId"`
	Username         string    `json:"username"`
	Fullname         string    `json:"fullname,omitempty"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		UserID:           user.UserID,
		Username:         user.Username,
		Fullname:         user.Fullname,
		TwoFactorEnabled: user.TwoFactorEnabled,
		CreatedAt:        user.CreatedAt,
	}
}
