package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type stubUserRepo struct {
	user.Repository
	byGithub map[string]*user.User
}

func (s *stubUserRepo) FindByGithubUsername(ctx context.Context, username string) (*user.User, error) {
	if u, ok := s.byGithub[username]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("user", username)
}

type stubProfileRepo struct {
	profile.Repository
	byUser map[uuid.UUID]*profile.Profile
}

func (s *stubProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if p, ok := s.byUser[userID]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("profile", userID.String())
}

func TestResolveProfileUnknownUser(t *testing.T) {
	uc := NewResolveProfileUseCase(
		&stubUserRepo{byGithub: map[string]*user.User{}},
		&stubProfileRepo{byUser: map[uuid.UUID]*profile.Profile{}},
		logger.NewNop(),
	)

	_, err := uc.Execute(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestResolveProfileUserWithoutProfile(t *testing.T) {
	u := &user.User{ID: uuid.New(), GithubUserName: "octocat"}
	uc := NewResolveProfileUseCase(
		&stubUserRepo{byGithub: map[string]*user.User{"octocat": u}},
		&stubProfileRepo{byUser: map[uuid.UUID]*profile.Profile{}},
		logger.NewNop(),
	)

	_, err := uc.Execute(context.Background(), "octocat")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestResolveProfileSuccess(t *testing.T) {
	u := &user.User{ID: uuid.New(), GithubUserName: "octocat"}
	p := &profile.Profile{ID: uuid.New(), UserID: u.ID}
	uc := NewResolveProfileUseCase(
		&stubUserRepo{byGithub: map[string]*user.User{"octocat": u}},
		&stubProfileRepo{byUser: map[uuid.UUID]*profile.Profile{u.ID: p}},
		logger.NewNop(),
	)

	out, err := uc.Execute(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, u, out.User)
	assert.Equal(t, p, out.Profile)
}
