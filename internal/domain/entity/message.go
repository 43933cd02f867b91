package entity

import (
	"time"
)

type Message struct {
	ID            int       `json:"id"`
	SenderID      int       `json:"senderId"`
	ReceiverID    int       `json:"receiverId"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	IsRead        bool      `json:"isRead"`
	RelatedItemID *int      `json:"relatedItemId,omitempty"`
}
