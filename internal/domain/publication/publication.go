package publication

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type Publication struct {
	ID              uuid.UUID    `json:"id"`
	ProfileID       uuid.UUID    `json:"profile_id"`
	Title           string       `json:"title"`
	Publisher       string       `json:"publisher"`
	Authors         []string     `json:"authors"`
	PublicationDate time.Time    `json:"publication_date"`
	PublicationURL  string       `json:"publication_url"`
	Description     string       `json:"description"`
	Tools           []vocab.Tool `json:"tools"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, p *Publication) error
	FindByID(ctx context.Context, id uuid.UUID) (*Publication, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*Publication, error)
	Update(ctx context.Context, p *Publication) error
	Delete(ctx context.Context, id uuid.UUID) error
}
