// Package opportunity serves the catalog side: organizations and job
// listings. Jobs reference organizations loosely; a job may exist with
// no organization at all.
package opportunity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/opportunity"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type OrganizationUseCase struct {
	repo   opportunity.OrganizationRepository
	logger logger.Logger
}

func NewOrganizationUseCase(r opportunity.OrganizationRepository, log logger.Logger) *OrganizationUseCase {
	return &OrganizationUseCase{repo: r, logger: log}
}

type OrganizationInput struct {
	Name     *string
	Image    *string
	RepoLink *string
}

func (uc *OrganizationUseCase) Create(ctx context.Context, in OrganizationInput) (*opportunity.Organization, error) {
	now := time.Now().UTC()
	o := &opportunity.Organization{
		ID:        uuid.New(),
		Name:      in.Name,
		Image:     in.Image,
		RepoLink:  in.RepoLink,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *OrganizationUseCase) Get(ctx context.Context, id uuid.UUID) (*opportunity.Organization, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *OrganizationUseCase) List(ctx context.Context, page, limit int) ([]*opportunity.Organization, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return uc.repo.List(ctx, limit, (page-1)*limit)
}

func (uc *OrganizationUseCase) Update(ctx context.Context, id uuid.UUID, in OrganizationInput) (*opportunity.Organization, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Name = in.Name
	o.Image = in.Image
	o.RepoLink = in.RepoLink
	o.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *OrganizationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}

type JobUseCase struct {
	repo    opportunity.JobRepository
	orgRepo opportunity.OrganizationRepository
	logger  logger.Logger
}

func NewJobUseCase(r opportunity.JobRepository, orgRepo opportunity.OrganizationRepository, log logger.Logger) *JobUseCase {
	return &JobUseCase{repo: r, orgRepo: orgRepo, logger: log}
}

type JobInput struct {
	Title           *string
	Department      *string
	CompanyName     *string
	CompanyLogo     *string
	HeroImage       *string
	Location        *string
	LocationType    *string
	EmploymentType  *string
	ExperienceLevel *string
	ExperienceYOE   *float64
	PostedDate      *time.Time
	SalaryAnnualMin *int
	SalaryAnnualMax *int
	SalaryCurrency  *string
	Description     *string
	Featured        *bool
	Highlight       *string
	Category        *string
	Perks           []string
	OrganizationID  *uuid.UUID
}

func (uc *JobUseCase) buildJob(in JobInput) (*opportunity.Job, error) {
	j := &opportunity.Job{
		Title:           in.Title,
		Department:      in.Department,
		CompanyName:     in.CompanyName,
		CompanyLogo:     in.CompanyLogo,
		HeroImage:       in.HeroImage,
		Location:        in.Location,
		ExperienceLevel: in.ExperienceLevel,
		ExperienceYOE:   in.ExperienceYOE,
		PostedDate:      in.PostedDate,
		SalaryAnnualMin: in.SalaryAnnualMin,
		SalaryAnnualMax: in.SalaryAnnualMax,
		Description:     in.Description,
		Featured:        in.Featured,
		Highlight:       in.Highlight,
		Category:        in.Category,
		Perks:           in.Perks,
		OrganizationID:  in.OrganizationID,
	}

	if in.LocationType != nil {
		lt, ok := vocab.ParseWorkLocationType(*in.LocationType)
		if !ok {
			return nil, apperror.NewInvalidInput("unknown location_type: "+*in.LocationType, nil)
		}
		j.LocationType = &lt
	}
	if in.EmploymentType != nil {
		et, ok := vocab.ParseEmploymentType(*in.EmploymentType)
		if !ok {
			return nil, apperror.NewInvalidInput("unknown employment_type: "+*in.EmploymentType, nil)
		}
		j.EmploymentType = &et
	}
	if in.SalaryCurrency != nil {
		cur, ok := vocab.ParseCurrency(*in.SalaryCurrency)
		if !ok {
			return nil, apperror.NewInvalidInput("unknown salary_currency: "+*in.SalaryCurrency, nil)
		}
		j.SalaryCurrency = &cur
	}

	return j, nil
}

func (uc *JobUseCase) Create(ctx context.Context, in JobInput) (*opportunity.Job, error) {
	if in.OrganizationID != nil {
		if _, err := uc.orgRepo.FindByID(ctx, *in.OrganizationID); err != nil {
			return nil, err
		}
	}

	j, err := uc.buildJob(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	j.ID = uuid.New()
	j.CreatedAt = now
	j.UpdatedAt = now

	if err := uc.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (uc *JobUseCase) Get(ctx context.Context, id uuid.UUID) (*opportunity.Job, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *JobUseCase) List(ctx context.Context, filter opportunity.JobListFilter) ([]*opportunity.Job, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.repo.List(ctx, filter)
}

func (uc *JobUseCase) Update(ctx context.Context, id uuid.UUID, in JobInput) (*opportunity.Job, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	j, err := uc.buildJob(in)
	if err != nil {
		return nil, err
	}
	j.ID = existing.ID
	j.CreatedAt = existing.CreatedAt
	j.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (uc *JobUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
