package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/links"
	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type LinksUseCase struct {
	repo     links.Repository
	userRepo user.Repository
	logger   logger.Logger
}

func NewLinksUseCase(r links.Repository, uRepo user.Repository, log logger.Logger) *LinksUseCase {
	return &LinksUseCase{repo: r, userRepo: uRepo, logger: log}
}

type LinksInput struct {
	UserID           uuid.UUID
	GithubUserName   *string
	LinkedinUserName *string
	LeetcodeUserName *string
	OrcidID          *string
	PrimaryEmail     *string
	SecondaryEmail   *string
	SchoolEmail      *string
	WorkEmail        *string
}

func (uc *LinksUseCase) Create(ctx context.Context, in LinksInput) (*links.Links, error) {
	if _, err := uc.userRepo.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	l := &links.Links{
		ID:               uuid.New(),
		UserID:           in.UserID,
		GithubUserName:   in.GithubUserName,
		LinkedinUserName: in.LinkedinUserName,
		LeetcodeUserName: in.LeetcodeUserName,
		OrcidID:          in.OrcidID,
		PrimaryEmail:     in.PrimaryEmail,
		SecondaryEmail:   in.SecondaryEmail,
		SchoolEmail:      in.SchoolEmail,
		WorkEmail:        in.WorkEmail,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *LinksUseCase) Get(ctx context.Context, id uuid.UUID) (*links.Links, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *LinksUseCase) GetByUser(ctx context.Context, userID uuid.UUID) (*links.Links, error) {
	return uc.repo.FindByUserID(ctx, userID)
}

func (uc *LinksUseCase) Update(ctx context.Context, id uuid.UUID, in LinksInput) (*links.Links, error) {
	l, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.GithubUserName = in.GithubUserName
	l.LinkedinUserName = in.LinkedinUserName
	l.LeetcodeUserName = in.LeetcodeUserName
	l.OrcidID = in.OrcidID
	l.PrimaryEmail = in.PrimaryEmail
	l.SecondaryEmail = in.SecondaryEmail
	l.SchoolEmail = in.SchoolEmail
	l.WorkEmail = in.WorkEmail
	l.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *LinksUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
