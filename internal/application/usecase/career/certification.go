package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/certification"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type CertificationUseCase struct {
	repo        certification.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewCertificationUseCase(r certification.Repository, pRepo profile.Repository, log logger.Logger) *CertificationUseCase {
	return &CertificationUseCase{repo: r, profileRepo: pRepo, logger: log}
}

type CertificationInput struct {
	ProfileID               uuid.UUID
	Name                    string
	Type                    string
	IssuingOrganization     string
	IssueDate               time.Time
	ExpiryDate              *time.Time
	CredentialID            string
	CredentialURL           string
	Tools                   []string
	IssuingOrganizationLogo *string
}

func (uc *CertificationUseCase) buildEntry(in CertificationInput) (*certification.Certification, error) {
	certType, ok := vocab.ParseCertificationType(in.Type)
	if !ok {
		return nil, apperror.NewInvalidInput("unknown certification type: "+in.Type, nil)
	}

	return &certification.Certification{
		ProfileID:               in.ProfileID,
		Name:                    in.Name,
		Type:                    certType,
		IssuingOrganization:     in.IssuingOrganization,
		IssueDate:               in.IssueDate,
		ExpiryDate:              in.ExpiryDate,
		CredentialID:            in.CredentialID,
		CredentialURL:           in.CredentialURL,
		Tools:                   vocab.ParseTools(in.Tools),
		IssuingOrganizationLogo: in.IssuingOrganizationLogo,
	}, nil
}

func (uc *CertificationUseCase) Create(ctx context.Context, in CertificationInput) (*certification.Certification, error) {
	if _, err := uc.profileRepo.FindByID(ctx, in.ProfileID); err != nil {
		return nil, err
	}

	c, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CertificationUseCase) Get(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *CertificationUseCase) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int) ([]*certification.Certification, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *CertificationUseCase) Update(ctx context.Context, id uuid.UUID, in CertificationInput) (*certification.Certification, error) {
	existing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c, err := uc.buildEntry(in)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.ProfileID = existing.ProfileID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CertificationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
