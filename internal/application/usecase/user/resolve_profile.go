package user

import (
	"context"

	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

// ResolveProfileUseCase maps a GitHub username to the internal identity
// chain: username to user, user to profile. Both hops miss with a
// not-found error, so callers keyed by external username never touch
// internal ids directly.
type ResolveProfileUseCase struct {
	userRepo    user.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewResolveProfileUseCase(uRepo user.Repository, pRepo profile.Repository, log logger.Logger) *ResolveProfileUseCase {
	return &ResolveProfileUseCase{userRepo: uRepo, profileRepo: pRepo, logger: log}
}

type ResolveProfileOutput struct {
	User    *user.User
	Profile *profile.Profile
}

func (uc *ResolveProfileUseCase) Execute(ctx context.Context, githubUsername string) (*ResolveProfileOutput, error) {
	u, err := uc.userRepo.FindByGithubUsername(ctx, githubUsername)
	if err != nil {
		return nil, err
	}

	p, err := uc.profileRepo.FindByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &ResolveProfileOutput{User: u, Profile: p}, nil
}
