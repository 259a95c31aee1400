package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type UserUseCase struct {
	repo   user.Repository
	logger logger.Logger
}

func NewUserUseCase(r user.Repository, log logger.Logger) *UserUseCase {
	return &UserUseCase{repo: r, logger: log}
}

type CreateUserInput struct {
	GithubUserName string
	FirstName      string
	MiddleName     *string
	LastName       string
	Rank           string
	Streak         *int
}

func (uc *UserUseCase) Create(ctx context.Context, in CreateUserInput) (*user.User, error) {
	if strings.TrimSpace(in.GithubUserName) == "" {
		return nil, apperror.NewInvalidInput("github_user_name must not be empty", nil)
	}
	rank, ok := vocab.ParseRank(in.Rank)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown rank: "+in.Rank, nil)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:             uuid.New(),
		GithubUserName: strings.TrimSpace(in.GithubUserName),
		FirstName:      in.FirstName,
		MiddleName:     in.MiddleName,
		LastName:       in.LastName,
		Rank:           rank,
		Streak:         in.Streak,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUseCase) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *UserUseCase) GetByGithubUsername(ctx context.Context, username string) (*user.User, error) {
	return uc.repo.FindByGithubUsername(ctx, username)
}

func (uc *UserUseCase) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.repo.List(ctx, filter)
}

func (uc *UserUseCase) Autocomplete(ctx context.Context, query, field string, limit int) ([]*user.User, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.NewInvalidInput("autocomplete query must not be empty", nil)
	}
	return uc.repo.Autocomplete(ctx, query, field, limit)
}

type UpdateUserInput struct {
	ID             uuid.UUID
	GithubUserName string
	FirstName      string
	MiddleName     *string
	LastName       string
	Rank           string
	Streak         *int
}

func (uc *UserUseCase) Update(ctx context.Context, in UpdateUserInput) (*user.User, error) {
	u, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	rank, ok := vocab.ParseRank(in.Rank)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown rank: "+in.Rank, nil)
	}

	u.GithubUserName = strings.TrimSpace(in.GithubUserName)
	u.FirstName = in.FirstName
	u.MiddleName = in.MiddleName
	u.LastName = in.LastName
	u.Rank = rank
	u.Streak = in.Streak
	u.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
