package workexperience

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type WorkExperience struct {
	ID                  uuid.UUID              `json:"id"`
	ProfileID           uuid.UUID              `json:"profile_id"`
	Title               string                 `json:"title"`
	EmploymentType      vocab.EmploymentType   `json:"employment_type"`
	Domains             []vocab.Domain         `json:"domain"`
	CompanyName         string                 `json:"company_name"`
	CompanyLogo         *string                `json:"company_logo"`
	CurrentlyWorking    bool                   `json:"currently_working"`
	LocationID          *uuid.UUID             `json:"location"`
	LocationType        vocab.WorkLocationType `json:"location_type"`
	StartDateMonth      int                    `json:"start_date_month"`
	StartDateYear       int                    `json:"start_date_year"`
	EndDateMonth        *int                   `json:"end_date_month"`
	EndDateYear         *int                   `json:"end_date_year"`
	DescriptionGeneral  string                 `json:"description_general"`
	DescriptionDetailed *string                `json:"description_detailed"`
	DescriptionLess     *string                `json:"description_less"`
	WorkDone            *string                `json:"work_done"`
	CompanyScore        *float64               `json:"company_score"`
	TimeSpentMultiplier *float64               `json:"time_spent_multiplier"`
	WorkDoneMultiplier  *float64               `json:"work_done_multiplier"`
	ToolsUsed           []vocab.Tool           `json:"tools_used"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, w *WorkExperience) error
	FindByID(ctx context.Context, id uuid.UUID) (*WorkExperience, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*WorkExperience, error)
	Update(ctx context.Context, w *WorkExperience) error
	Delete(ctx context.Context, id uuid.UUID) error
}
