package entity

import (
	"time"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
)

type Report struct {
	ID                 int          `json:"id"`
	ReportedItemID     int          `json:"reportedItemId"`
	ReportedByUserID   int          `json:"reportedByUserId"`
	Reason             string       `json:"reason"`
	AdditionalComments string       `json:"additionalComments,omitempty"`
	ReportedAt         time.Time    `json:"reportedAt"`
	Status             ReportStatus `json:"status"`
}
