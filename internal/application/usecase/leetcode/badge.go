package leetcode

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

// BadgeUseCase manages badge rows under a LeetCode record. Add never
// deduplicates: the same badge name can repeat across syncs, so rows
// are only ever appended or deleted.
type BadgeUseCase struct {
	badgeRepo  leetcode.BadgeRepository
	recordRepo leetcode.Repository
	logger     logger.Logger
}

func NewBadgeUseCase(bRepo leetcode.BadgeRepository, rRepo leetcode.Repository, log logger.Logger) *BadgeUseCase {
	return &BadgeUseCase{badgeRepo: bRepo, recordRepo: rRepo, logger: log}
}

type AddBadgeInput struct {
	RecordID  uuid.UUID
	Name      *string
	Icon      *string
	HoverText *string
}

func (uc *BadgeUseCase) Add(ctx context.Context, in AddBadgeInput) (*leetcode.Badge, error) {
	if _, err := uc.recordRepo.FindByID(ctx, in.RecordID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	badge := &leetcode.Badge{
		ID:        uuid.New(),
		RecordID:  in.RecordID,
		Name:      in.Name,
		Icon:      in.Icon,
		HoverText: in.HoverText,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.badgeRepo.Create(ctx, badge); err != nil {
		return nil, err
	}
	return badge, nil
}

func (uc *BadgeUseCase) List(ctx context.Context, recordID uuid.UUID) ([]*leetcode.Badge, error) {
	if _, err := uc.recordRepo.FindByID(ctx, recordID); err != nil {
		return nil, err
	}
	return uc.badgeRepo.ListByRecord(ctx, recordID)
}

func (uc *BadgeUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.badgeRepo.Delete(ctx, id)
}
