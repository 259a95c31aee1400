package location

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Location struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	State     *string   `json:"state"`
	Country   string    `json:"country"`
	Longitude *float64  `json:"longitude"`
	Latitude  *float64  `json:"latitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, l *Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*Location, error)
	List(ctx context.Context, limit, offset int) ([]*Location, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}
