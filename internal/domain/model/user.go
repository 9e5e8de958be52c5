package model

import (
	"time"
)

type User struct {
	ID             string `bson:"_id" json:"id"`
	Username       string `bson:"username" json:"username"`
	Email          string `bson:"email" json:"email"`
	HashedPassword string `bson:"password" json:"-"` // Not exposed
	IsVerified     bool   `bson:"isVerified" json:"is_verified"`
	IsAdmin        bool   `bson:"isAdmin" json:"is_admin"`

	// One-time token digests and their expiries. A hash and its expiry are
	// always set together and cleared together.
	VerifyTokenHash   string     `bson:"verifyTokenHash,omitempty" json:"-"`
	VerifyTokenExpiry *time.Time `bson:"verifyTokenExpiry,omitempty" json:"-"`
	ResetTokenHash    string     `bson:"resetTokenHash,omitempty" json:"-"`
	ResetTokenExpiry  *time.Time `bson:"resetTokenExpiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
