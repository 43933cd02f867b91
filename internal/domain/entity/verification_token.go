package entity

import (
	"time"
)

type VerificationType string

const (
	VerificationEmail         VerificationType = "email_verification"
	VerificationPasswordReset VerificationType = "password_reset"
)

// VerificationToken is consumable at most once and only before expiry.
type VerificationToken struct {
	ID        int              `json:"id"`
	UserID    int              `json:"userId"`
	User      *User            `json:"user,omitempty"`
	Token     string           `json:"token"`
	Type      VerificationType `json:"type"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
	IsUsed    bool             `json:"isUsed"`
}
