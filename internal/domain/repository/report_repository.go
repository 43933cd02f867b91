package repository

import (
	"context"

	"marketdz/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	ListByReporter(ctx context.Context, userID int) ([]entity.Report, error)
	HasReported(ctx context.Context, userID, itemID int) (bool, error)
}
