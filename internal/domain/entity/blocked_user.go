package entity

import (
	"time"
)

// BlockedUser records that UserID blocked BlockedUserID. At most one active
// block exists per pair; blocking yourself is rejected.
type BlockedUser struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	BlockedUserID int       `json:"blockedUserId"`
	BlockedAt     time.Time `json:"blockedAt"`
	Reason        string    `json:"reason,omitempty"`
}
