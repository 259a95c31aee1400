package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/internal/domain/workexperience"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type WorkExperienceUseCase struct {
	repo         workexperience.Repository
	profileRepo  profile.Repository
	locationRepo location.Repository
	logger       logger.Logger
}

func NewWorkExperienceUseCase(r workexperience.Repository, pRepo profile.Repository, lRepo location.Repository, log logger.Logger) *WorkExperienceUseCase {
	return &WorkExperienceUseCase{repo: r, profileRepo: pRepo, locationRepo: lRepo, logger: log}
}

type WorkExperienceInput struct {
	ProfileID           uuid.UUID
	Title               string
	EmploymentType      string
	Domains             []string
	CompanyName         string
	CompanyLogo         *string
	CurrentlyWorking    bool
	LocationID          *uuid.UUID
	LocationType        string
	StartDateMonth      int
	StartDateYear       int
	EndDateMonth        *int
	EndDateYear         *int
	DescriptionGeneral  string
	DescriptionDetailed *string
	DescriptionLess     *string
	WorkDone            *string
	CompanyScore        *float64
	TimeSpentMultiplier *float64
	WorkDoneMultiplier  *float64
	ToolsUsed           []string
}

func (uc *WorkExperienceUseCase) buildEntry(in WorkExperienceInput) (*workexperience.WorkExperience, error) {
	employmentType, ok := vocab.ParseEmploymentType(in.EmploymentType)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown employment_type: "+in.EmploymentType, nil)
	}
	locationType, ok := vocab.ParseWorkLocationType(in.LocationType)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown location_type: "+in.LocationType, nil)
	}
	if in.StartDateMonth < 1 || in.StartDateMonth > 12 {
		return nil, apperror.NewInvalidInput("start_date_month must be between 1 and 12", nil)
	}

	return &workexperience.WorkExperience{
		ProfileID:           in.ProfileID,
		Title:               in.Title,
		EmploymentType:      employmentType,
		Domains:             vocab.ParseDomains(in.Domains),
		CompanyName:         in.CompanyName,
		CompanyLogo:         in.CompanyLogo,
		CurrentlyWorking:    in.CurrentlyWorking,
		LocationID:          in.LocationID,
		LocationType:        locationType,
		StartDateMonth:      in.StartDateMonth,
		StartDateYear:       in.StartDateYear,
		EndDateMonth:        in.EndDateMonth,
		EndDateYear:         in.EndDateYear,
		DescriptionGeneral:  in.DescriptionGeneral,
		DescriptionDetailed: in.DescriptionDetailed,
		DescriptionLess:     in.DescriptionLess,
		WorkDone:            in.WorkDone,
		CompanyScore:        in.CompanyScore,
		TimeSpentMultiplier: in.TimeSpentMultiplier,
		WorkDoneMultiplier:  in.WorkDoneMultiplier,
		ToolsUsed:           vocab.ParseTools(in.ToolsUsed),
	}, nil
}

func (uc *WorkExperienceUseCase) Create(ctx context.Context, in WorkExperienceInput) (*workexperience.WorkExperience, error) {
	if _, err := uc.profileRepo.FindByID(ctx, in.ProfileID); err != nil {
		return nil, err
	}
	if in.LocationID != nil {
		if _, err := uc.locationRepo.FindByID(ctx, *in.LocationID); err != nil {
			return nil, err
		}
	}

	w, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	w.ID = uuid.New()
	w.CreatedAt = now
	w.UpdatedAt = now

	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (uc *WorkExperienceUseCase) Get(ctx context.Context, id uuid.UUID) (*workexperience.WorkExperience, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *WorkExperienceUseCase) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int) ([]*workexperience.WorkExperience, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *WorkExperienceUseCase) Update(ctx context.Context, id uuid.UUID, in WorkExperienceInput) (*workexperience.WorkExperience, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	w, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	w.ID = existing.ID
	w.ProfileID = existing.ProfileID
	w.CreatedAt = existing.CreatedAt
	w.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (uc *WorkExperienceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
