package volunteering

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type Volunteering struct {
	ID                    uuid.UUID    `json:"id"`
	ProfileID             uuid.UUID    `json:"profile_id"`
	Organization          string       `json:"organization"`
	Role                  string       `json:"role"`
	Cause                 vocab.Cause  `json:"cause"`
	StartDate             time.Time    `json:"start_date"`
	EndDate               *time.Time   `json:"end_date"`
	CurrentlyVolunteering bool         `json:"currently_volunteering"`
	Description           *string      `json:"description"`
	Tools                 []vocab.Tool `json:"tools"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, v *Volunteering) error
	FindByID(ctx context.Context, id uuid.UUID) (*Volunteering, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*Volunteering, error)
	Update(ctx context.Context, v *Volunteering) error
	Delete(ctx context.Context, id uuid.UUID) error
}
