// Package opportunity holds the catalog side of the system:
// organizations and the job listings they publish. Plain single-table
// rows, no aggregation.
package opportunity

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      *string   `json:"name"`
	Image     *string   `json:"image"`
	RepoLink  *string   `json:"repo_link"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Job struct {
	ID              uuid.UUID               `json:"id"`
	Title           *string                 `json:"title"`
	Department      *string                 `json:"department"`
	CompanyName     *string                 `json:"company_name"`
	CompanyLogo     *string                 `json:"company_logo"`
	HeroImage       *string                 `json:"hero_image"`
	Location        *string                 `json:"location"`
	LocationType    *vocab.WorkLocationType `json:"location_type"`
	EmploymentType  *vocab.EmploymentType   `json:"employment_type"`
	ExperienceLevel *string                 `json:"experience_level"`
	ExperienceYOE   *float64                `json:"experience_yoe"`
	PostedDate      *time.Time              `json:"posted_date"`
	SalaryAnnualMin *int                    `json:"salary_annual_min"`
	SalaryAnnualMax *int                    `json:"salary_annual_max"`
	SalaryCurrency  *vocab.Currency         `json:"salary_currency"`
	Description     *string                 `json:"description"`
	Featured        *bool                   `json:"featured"`
	Highlight       *string                 `json:"highlight"`
	Category        *string                 `json:"category"`
	Perks           []string                `json:"perks"`
	OrganizationID  *uuid.UUID              `json:"organization"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

type JobListFilter struct {
	Title          *string
	CompanyName    *string
	EmploymentType *vocab.EmploymentType
	LocationType   *vocab.WorkLocationType
	MinSalary      *int
	MaxSalary      *int
	Featured       *bool
	OrganizationID *uuid.UUID
	SortBy         string
	Order          string
	Limit          int
	Offset         int
}

type OrganizationRepository interface {
	Create(ctx context.Context, o *Organization) error
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	List(ctx context.Context, limit, offset int) ([]*Organization, error)
	Update(ctx context.Context, o *Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobRepository interface {
	Create(ctx context.Context, j *Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)
	List(ctx context.Context, filter JobListFilter) ([]*Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
