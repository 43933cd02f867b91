package entity

import (
	"time"
)

type User struct {
	ID              int        `json:"id"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"passwordHash"`
	DisplayName     string     `json:"displayName"`
	ProfilePicture  string     `json:"profilePicture,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	IsEmailVerified bool       `json:"isEmailVerified"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty"`
	ShowEmail       bool       `json:"showEmail"`
	ShowPhoneNumber bool       `json:"showPhoneNumber"`
	PhoneNumber     string     `json:"phoneNumber,omitempty"`
	City            string     `json:"city,omitempty"`
	Province        string     `json:"province,omitempty"`
	IsAdmin         bool       `json:"isAdmin"`
}

// UserProfile is the public view of a user, with privacy settings applied
// and posted-item counts attached.
type UserProfile struct {
	ID                 int       `json:"id"`
	Email              string    `json:"email,omitempty"`
	DisplayName        string    `json:"displayName"`
	ProfilePicture     string    `json:"profilePicture,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	PhoneNumber        string    `json:"phoneNumber,omitempty"`
	City               string    `json:"city,omitempty"`
	Province           string    `json:"province,omitempty"`
	PostedItemsCount   int       `json:"postedItemsCount"`
	FavoriteItemsCount int       `json:"favoriteItemsCount"`
}
