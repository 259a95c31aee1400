package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type Education struct {
	ID                    uuid.UUID              `json:"id"`
	ProfileID             uuid.UUID              `json:"profile_id"`
	School                string                 `json:"school"`
	SchoolType            vocab.SchoolType       `json:"school_type"`
	Degree                string                 `json:"degree"`
	Field                 string                 `json:"field"`
	CurrentlyStudying     bool                   `json:"currently_studying"`
	LocationID            uuid.UUID              `json:"location"`
	LocationType          vocab.WorkLocationType `json:"location_type"`
	StartDate             time.Time              `json:"start_date"`
	EndDate               *time.Time             `json:"end_date"`
	DescriptionGeneral    string                 `json:"description_general"`
	DescriptionDetailed   *string                `json:"description_detailed"`
	DescriptionLess       *string                `json:"description_less"`
	WorkDone              *string                `json:"work_done"`
	SchoolScoreMultiplier *float64               `json:"school_score_multiplier"`
	ToolsUsed             []vocab.Tool           `json:"tools_used"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, e *Education) error
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*Education, error)
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}
