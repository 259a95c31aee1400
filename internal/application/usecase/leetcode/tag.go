package leetcode

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type TagUseCase struct {
	tagRepo    leetcode.TagRepository
	recordRepo leetcode.Repository
	logger     logger.Logger
}

func NewTagUseCase(tRepo leetcode.TagRepository, rRepo leetcode.Repository, log logger.Logger) *TagUseCase {
	return &TagUseCase{tagRepo: tRepo, recordRepo: rRepo, logger: log}
}

type AddTagInput struct {
	RecordID       uuid.UUID
	TagCategory    *vocab.TagCategory
	TagName        *string
	ProblemsSolved *int
}

func (uc *TagUseCase) Add(ctx context.Context, in AddTagInput) (*leetcode.Tag, error) {
	if _, err := uc.recordRepo.FindByID(ctx, in.RecordID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tag := &leetcode.Tag{
		ID:             uuid.New(),
		RecordID:       in.RecordID,
		TagCategory:    in.TagCategory,
		TagName:        in.TagName,
		ProblemsSolved: in.ProblemsSolved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (uc *TagUseCase) List(ctx context.Context, recordID uuid.UUID) ([]*leetcode.Tag, error) {
	if _, err := uc.recordRepo.FindByID(ctx, recordID); err != nil {
		return nil, err
	}
	return uc.tagRepo.ListByRecord(ctx, recordID)
}

func (uc *TagUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.tagRepo.Delete(ctx, id)
}
