package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type Project struct {
	ID                      uuid.UUID    `json:"id"`
	ProfileID               uuid.UUID    `json:"profile_id"`
	Name                    string       `json:"name"`
	Organization            *string      `json:"organization"`
	Owner                   string       `json:"owner"`
	Private                 bool         `json:"private"`
	GithubStars             int          `json:"github_stars"`
	GithubAbout             *string      `json:"github_about"`
	GithubOpenIssues        int          `json:"github_open_issues"`
	GithubForks             int          `json:"github_forks"`
	Description             string       `json:"description"`
	Domain                  vocab.Domain `json:"domain"`
	Topics                  []string     `json:"topics"`
	Tools                   []vocab.Tool `json:"tools"`
	Readme                  bool         `json:"readme"`
	License                 bool         `json:"license"`
	LandingPage             bool         `json:"landing_page"`
	LandingPageLink         *string      `json:"landing_page_link"`
	DocsPage                bool         `json:"docs_page"`
	DocsPageLink            *string      `json:"docs_page_link"`
	OwnDomainName           bool         `json:"own_domain_name"`
	DomainName              *string      `json:"domain_name"`
	TotalLinesContributed   *int         `json:"total_lines_contributed"`
	ImproperUploads         *bool        `json:"improper_uploads"`
	ComplexityRating        *float64     `json:"complexity_rating"`
	TestingFrameworkPresent bool         `json:"testing_framework_present"`
	TestingFramework        *string      `json:"testing_framework"`
	ProjectOrganizationLogo *string      `json:"project_organization_logo"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}
