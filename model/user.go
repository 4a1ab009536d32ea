package model

import "time"

// User's Password holds the argon2 hash and is never serialized out.
type User struct {
	UserID           string    `bson:"user_id" json:"userId"`
	Username         string    `bson:"username" json:"username"`
	Password         string    `bson:"password" json:"-"`
	Fullname         string    `bson:"fullname,omitempty" json:"fullname,omitempty"`
	TwoFactorEnabled bool      `bson:"two_factor_enabled" json:"twoFactorEnabled"`
	TwoFactorSecret  string    `bson:"two_factor_secret,omitempty" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updatedAt"`
}
