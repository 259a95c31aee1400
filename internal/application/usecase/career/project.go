package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/project"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type ProjectUseCase struct {
	repo        project.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewProjectUseCase(r project.Repository, pRepo profile.Repository, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: r, profileRepo: pRepo, logger: log}
}

type ProjectInput struct {
	ProfileID               uuid.UUID
	Name                    string
	Organization            *string
	Owner                   string
	Private                 bool
	GithubStars             int
	GithubAbout             *string
	GithubOpenIssues        int
	GithubForks             int
	Description             string
	Domain                  string
	Topics                  []string
	Tools                   []string
	Readme                  bool
	License                 bool
	LandingPage             bool
	LandingPageLink         *string
	DocsPage                bool
	DocsPageLink            *string
	OwnDomainName           bool
	DomainName              *string
	TotalLinesContributed   *int
	ImproperUploads         *bool
	ComplexityRating        *float64
	TestingFrameworkPresent bool
	TestingFramework        *string
	ProjectOrganizationLogo *string
}

func (uc *ProjectUseCase) buildEntry(in ProjectInput) (*project.Project, error) {
	domain, ok := vocab.ParseDomain(in.Domain)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown domain: "+in.Domain, nil)
	}

	return &project.Project{
		ProfileID:               in.ProfileID,
		Name:                    in.Name,
		Organization:            in.Organization,
		Owner:                   in.Owner,
		Private:                 in.Private,
		GithubStars:             in.GithubStars,
		GithubAbout:             in.GithubAbout,
		GithubOpenIssues:        in.GithubOpenIssues,
		GithubForks:             in.GithubForks,
		Description:             in.Description,
		Domain:                  domain,
		Topics:                  in.Topics,
		Tools:                   vocab.ParseTools(in.Tools),
		Readme:                  in.Readme,
		License:                 in.License,
		LandingPage:             in.LandingPage,
		LandingPageLink:         in.LandingPageLink,
		DocsPage:                in.DocsPage,
		DocsPageLink:            in.DocsPageLink,
		OwnDomainName:           in.OwnDomainName,
		DomainName:              in.DomainName,
		TotalLinesContributed:   in.TotalLinesContributed,
		ImproperUploads:         in.ImproperUploads,
		ComplexityRating:        in.ComplexityRating,
		TestingFrameworkPresent: in.TestingFrameworkPresent,
		TestingFramework:        in.TestingFramework,
		ProjectOrganizationLogo: in.ProjectOrganizationLogo,
	}, nil
}

func (uc *ProjectUseCase) Create(ctx context.Context, in ProjectInput) (*project.Project, error) {
	if _, err := uc.profileRepo.FindByID(ctx, in.ProfileID); err != nil {
		return nil, err
	}

	p, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProjectUseCase) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ProjectUseCase) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int) ([]*project.Project, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *ProjectUseCase) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*project.Project, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.ProfileID = existing.ProfileID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
