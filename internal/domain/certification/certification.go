package certification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type Certification struct {
	ID                      uuid.UUID               `json:"id"`
	ProfileID               uuid.UUID               `json:"profile_id"`
	Name                    string                  `json:"name"`
	Type                    vocab.CertificationType `json:"type"`
	IssuingOrganization     string                  `json:"issuing_organization"`
	IssueDate               time.Time               `json:"issue_date"`
	ExpiryDate              *time.Time              `json:"expiry_date"`
	CredentialID            string                  `json:"credential_id"`
	CredentialURL           string                  `json:"credential_url"`
	Tools                   []vocab.Tool            `json:"tools"`
	IssuingOrganizationLogo *string                 `json:"issuing_organization_logo"`
	CreatedAt               time.Time               `json:"created_at"`
	UpdatedAt               time.Time               `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, c *Certification) error
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*Certification, error)
	Update(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
}
