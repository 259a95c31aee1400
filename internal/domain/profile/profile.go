package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Profile is the root aggregate every career entity hangs off. One per
// user, enforced at creation and by a unique constraint on user_id.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListFilter struct {
	UserID *uuid.UUID
	SortBy string
	Order  string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	List(ctx context.Context, filter ListFilter) ([]*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}
