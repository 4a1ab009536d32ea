package model

import "time"

type Session struct {
	SessionID      string    `bson:"session_id" json:"sessionId"`
	UserID         string    `bson:"user_id" json:"userId"`
	DeviceInfo     string    `bson:"device_info" json:"deviceInfo"`
	IPAddress      string    `bson:"ip_address" json:"ipAddress"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	ExpiresAt      time.Time `bson:"expires_at" json:"expiresAt"`
	LastActivityAt time.Time `bson:"last_activity_at" json:"lastActivityAt"`
	IsActive       bool      `bson:"is_active" json:"isActive"`
}
