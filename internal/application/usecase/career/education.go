package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type EducationUseCase struct {
	repo         education.Repository
	profileRepo  profile.Repository
	locationRepo location.Repository
	logger       logger.Logger
}

func NewEducationUseCase(r education.Repository, pRepo profile.Repository, lRepo location.Repository, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, profileRepo: pRepo, locationRepo: lRepo, logger: log}
}

type EducationInput struct {
	ProfileID             uuid.UUID
	School                string
	SchoolType            string
	Degree                string
	Field                 string
	CurrentlyStudying     bool
	LocationID            uuid.UUID
	LocationType          string
	StartDate             time.Time
	EndDate               *time.Time
	DescriptionGeneral    string
	DescriptionDetailed   *string
	DescriptionLess       *string
	WorkDone              *string
	SchoolScoreMultiplier *float64
	ToolsUsed             []string
}

func (uc *EducationUseCase) buildEntry(in EducationInput) (*education.Education, error) {
	schoolType, ok := vocab.ParseSchoolType(in.SchoolType)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown school_type: "+in.SchoolType, nil)
	}
	locationType, ok := vocab.ParseWorkLocationType(in.LocationType)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown location_type: "+in.LocationType, nil)
	}

	return &education.Education{
		ProfileID:             in.ProfileID,
		School:                in.School,
		SchoolType:            schoolType,
		Degree:                in.Degree,
		Field:                 in.Field,
		CurrentlyStudying:     in.CurrentlyStudying,
		LocationID:            in.LocationID,
		LocationType:          locationType,
		StartDate:             in.StartDate,
		EndDate:               in.EndDate,
		DescriptionGeneral:    in.DescriptionGeneral,
		DescriptionDetailed:   in.DescriptionDetailed,
		DescriptionLess:       in.DescriptionLess,
		WorkDone:              in.WorkDone,
		SchoolScoreMultiplier: in.SchoolScoreMultiplier,
		ToolsUsed:             vocab.ParseTools(in.ToolsUsed),
	}, nil
}

func (uc *EducationUseCase) Create(ctx context.Context, in EducationInput) (*education.Education, error) {
	if _, err := uc.profileRepo.FindByID(ctx, in.ProfileID); err != nil {
		return nil, err
	}
	if _, err := uc.locationRepo.FindByID(ctx, in.LocationID); err != nil {
		return nil, err
	}

	e, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	e.ID = uuid.New()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *EducationUseCase) Get(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int) ([]*education.Education, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *EducationUseCase) Update(ctx context.Context, id uuid.UUID, in EducationInput) (*education.Education, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	e.ID = existing.ID
	e.ProfileID = existing.ProfileID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
