package usecase

import (
	"context"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

type SecurityUseCase struct {
	reportRepo repository.ReportRepository
	blockRepo  repository.BlockRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
}

func NewSecurityUseCase(reportRepo repository.ReportRepository, blockRepo repository.BlockRepository, itemRepo repository.ItemRepository, userRepo repository.UserRepository) *SecurityUseCase {
	return &SecurityUseCase{
		reportRepo: reportRepo,
		blockRepo:  blockRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
	}
}

type ReportItemInput struct {
	ItemID             int
	Reason             string
	AdditionalComments string
}

// ReportItem files a report against an item. Reporting the same item twice is
// rejected.
func (uc *SecurityUseCase) ReportItem(ctx context.Context, userID int, input ReportItemInput) (*entity.Report, error) {
	if _, err := uc.itemRepo.GetByID(ctx, input.ItemID); err != nil {
		return nil, err
	}

	already, err := uc.reportRepo.HasReported(ctx, userID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if already {
		return nil, errors.Conflict("You have already reported this item")
	}

	report := &entity.Report{
		ReportedItemID:     input.ItemID,
		ReportedByUserID:   userID,
		Reason:             input.Reason,
		AdditionalComments: input.AdditionalComments,
		ReportedAt:         time.Now().UTC(),
		Status:             entity.ReportPending,
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (uc *SecurityUseCase) GetUserReports(ctx context.Context, userID int) ([]entity.Report, error) {
	return uc.reportRepo.ListByReporter(ctx, userID)
}

func (uc *SecurityUseCase) HasReported(ctx context.Context, userID, itemID int) (bool, error) {
	return uc.reportRepo.HasReported(ctx, userID, itemID)
}

// BlockUser blocks another user. Blocking yourself is rejected; blocking an
// already-blocked user is a no-op that returns the existing block.
func (uc *SecurityUseCase) BlockUser(ctx context.Context, userID, blockedUserID int, reason string) (*entity.BlockedUser, error) {
	if userID == blockedUserID {
		return nil, errors.Validation("You cannot block yourself")
	}
	if _, err := uc.userRepo.GetByID(ctx, blockedUserID); err != nil {
		return nil, err
	}

	existing, err := uc.blockRepo.Find(ctx, userID, blockedUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	block := &entity.BlockedUser{
		UserID:        userID,
		BlockedUserID: blockedUserID,
		BlockedAt:     time.Now().UTC(),
		Reason:        reason,
	}
	if err := uc.blockRepo.Create(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

// UnblockUser removes an active block. Unblocking a user who was never
// blocked is a no-op.
func (uc *SecurityUseCase) UnblockUser(ctx context.Context, userID, blockedUserID int) error {
	block, err := uc.blockRepo.Find(ctx, userID, blockedUserID)
	if err != nil {
		return err
	}
	if block == nil {
		return nil
	}
	return uc.blockRepo.Delete(ctx, block.ID)
}

func (uc *SecurityUseCase) IsBlocked(ctx context.Context, userID, otherUserID int) (bool, error) {
	block, err := uc.blockRepo.Find(ctx, userID, otherUserID)
	if err != nil {
		return false, err
	}
	return block != nil, nil
}

// GetBlockedUsers returns the user's blocks with the blocked users' current
// records attached. A block whose user has since been deleted is listed
// without one.
func (uc *SecurityUseCase) GetBlockedUsers(ctx context.Context, userID int) ([]entity.BlockedUser, []entity.User, error) {
	blocks, err := uc.blockRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	users := make([]entity.User, 0, len(blocks))
	for _, block := range blocks {
		user, err := uc.userRepo.GetByID(ctx, block.BlockedUserID)
		if err != nil {
			logger.Warn("Blocked user %d no longer exists: %v", block.BlockedUserID, err)
			continue
		}
		user.PasswordHash = ""
		users = append(users, *user)
	}
	return blocks, users, nil
}
