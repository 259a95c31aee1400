package leetcode

import (
	"context"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

// RecordUseCase is the read and delete surface over stored LeetCode
// records. Writes only happen through SyncUseCase.
type RecordUseCase struct {
	repo   leetcode.Repository
	logger logger.Logger
}

func NewRecordUseCase(r leetcode.Repository, log logger.Logger) *RecordUseCase {
	return &RecordUseCase{repo: r, logger: log}
}

func (uc *RecordUseCase) Get(ctx context.Context, id uuid.UUID) (*leetcode.Record, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *RecordUseCase) GetByProfile(ctx context.Context, profileID uuid.UUID) (*leetcode.Record, error) {
	return uc.repo.FindByProfileID(ctx, profileID)
}

func (uc *RecordUseCase) List(ctx context.Context, filter leetcode.ListFilter) ([]*leetcode.Record, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.repo.List(ctx, filter)
}

func (uc *RecordUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
