package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/publication"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type PublicationUseCase struct {
	repo        publication.Repository
	profileRepo profile.Repository
	logger      logger.Logger
}

func NewPublicationUseCase(r publication.Repository, pRepo profile.Repository, log logger.Logger) *PublicationUseCase {
	return &PublicationUseCase{repo: r, profileRepo: pRepo, logger: log}
}

type PublicationInput struct {
	ProfileID       uuid.UUID
	Title           string
	Publisher       string
	Authors         []string
	PublicationDate time.Time
	PublicationURL  string
	Description     string
	Tools           []string
}

func (uc *PublicationUseCase) Create(ctx context.Context, in PublicationInput) (*publication.Publication, error) {
	if _, err := uc.profileRepo.FindByID(ctx, in.ProfileID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &publication.Publication{
		ID:              uuid.New(),
		ProfileID:       in.ProfileID,
		Title:           in.Title,
		Publisher:       in.Publisher,
		Authors:         in.Authors,
		PublicationDate: in.PublicationDate,
		PublicationURL:  in.PublicationURL,
		Description:     in.Description,
		Tools:           vocab.ParseTools(in.Tools),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *PublicationUseCase) Get(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *PublicationUseCase) ListByProfile(ctx context.Context, profileID uuid.UUID, page, limit int) ([]*publication.Publication, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *PublicationUseCase) Update(ctx context.Context, id uuid.UUID, in PublicationInput) (*publication.Publication, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Publisher = in.Publisher
	p.Authors = in.Authors
	p.PublicationDate = in.PublicationDate
	p.PublicationURL = in.PublicationURL
	p.Description = in.Description
	p.Tools = vocab.ParseTools(in.Tools)
	p.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *PublicationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
