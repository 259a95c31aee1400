package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/internal/domain/volunteering"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type VolunteeringUseCase struct {
	repo        volunteering.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewVolunteeringUseCase(r volunteering.Repository, pRepo profile.Repository, log logger.Logger) *VolunteeringUseCase {
	return &VolunteeringUseCase{repo: r, profileRepo: pRepo, logger: log}
}

type VolunteeringInput struct {
	ProfileID             uuid.UUID
	Organization          string
	Role                  string
	Cause                 string
	StartDate             time.Time
	EndDate               *time.Time
	CurrentlyVolunteering bool
	Description           *string
	Tools                 []string
}

func (uc *VolunteeringUseCase) Create(ctx context.Context, in VolunteeringInput) (*volunteering.Volunteering, error) {
	if _, err := uc.profileRepo.FindByID(ctx, in.ProfileID); err != nil {
		return nil, err
	}
	cause, ok := vocab.ParseCause(in.Cause)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown cause: "+in.Cause, nil)
	}

	now := time.Now().UTC()
	v := &volunteering.Volunteering{
		ID:                    uuid.New(),
		ProfileID:             in.ProfileID,
		Organization:          in.Organization,
		Role:                  in.Role,
		Cause:                 cause,
		StartDate:             in.StartDate,
		EndDate:               in.EndDate,
		CurrentlyVolunteering: in.CurrentlyVolunteering,
		Description:           in.Description,
		Tools:                 vocab.ParseTools(in.Tools),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *VolunteeringUseCase) Get(ctx context.Context, id uuid.UUID) (*volunteering.Volunteering, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *VolunteeringUseCase) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int) ([]*volunteering.Volunteering, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *VolunteeringUseCase) Update(ctx context.Context, id uuid.UUID, in VolunteeringInput) (*volunteering.Volunteering, error) {
	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cause, ok := vocab.ParseCause(in.Cause)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown cause: "+in.Cause, nil)
	}

	v.Organization = in.Organization
	v.Role = in.Role
	v.Cause = cause
	v.StartDate = in.StartDate
	v.EndDate = in.EndDate
	v.CurrentlyVolunteering = in.CurrentlyVolunteering
	v.Description = in.Description
	v.Tools = vocab.ParseTools(in.Tools)
	v.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *VolunteeringUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
