package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

const reportsPath = "reports"

type rtdbReportRepository struct {
	db  *treedb.Client
	ids *idAllocator
}

func NewRTDBReportRepository(db *treedb.Client) repository.ReportRepository {
	return &rtdbReportRepository{db: db, ids: newIDAllocator(db)}
}

func (r *rtdbReportRepository) Create(ctx context.Context, report *entity.Report) error {
	id, err := r.ids.Next(ctx, reportsPath)
	if err != nil {
		return errors.Internal("Failed to allocate report id", err)
	}
	report.ID = id
	if err := r.db.Set(ctx, reportsPath+"/"+strconv.Itoa(id), report); err != nil {
		return errors.Internal("Failed to create report", err)
	}
	return nil
}

func (r *rtdbReportRepository) ListByReporter(ctx context.Context, userID int) ([]entity.Report, error) {
	all, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	var reports []entity.Report
	for _, report := range all {
		if report.ReportedByUserID == userID {
			reports = append(reports, report)
		}
	}
	return reports, nil
}

func (r *rtdbReportRepository) HasReported(ctx context.Context, userID, itemID int) (bool, error) {
	all, err := r.list(ctx)
	if err != nil {
		return false, err
	}
	for _, report := range all {
		if report.ReportedByUserID == userID && report.ReportedItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (r *rtdbReportRepository) list(ctx context.Context) ([]entity.Report, error) {
	entries, err := r.db.List(ctx, reportsPath)
	if err != nil {
		return nil, errors.Internal("Failed to list reports", err)
	}
	reports := make([]entity.Report, 0, len(entries))
	for _, e := range entries {
		var report entity.Report
		if err := json.Unmarshal(e.Data, &report); err != nil {
			logger.Warn("Skipping malformed report record at key %s: %v", e.Key, err)
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			report.ID = id
		}
		reports = append(reports, report)
	}
	return reports, nil
}
