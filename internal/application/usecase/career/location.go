package career

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type LocationUseCase struct {
	repo   location.Repository
	logger logger.Logger
}

func NewLocationUseCase(r location.Repository, log logger.Logger) *LocationUseCase {
	return &LocationUseCase{repo: r, logger: log}
}

type LocationInput struct {
	City      string
	State     *string
	Country   string
	Longitude *float64
	Latitude  *float64
}

func (uc *LocationUseCase) Create(ctx context.Context, in LocationInput) (*location.Location, error) {
	now := time.Now().UTC()
	l := &location.Location{
		ID:        uuid.New(),
		City:      in.City,
		State:     in.State,
		Country:   in.Country,
		Longitude: in.Longitude,
		Latitude:  in.Latitude,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *LocationUseCase) Get(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *LocationUseCase) List(ctx context.Context, page, limit int) ([]*location.Location, error) {
	limit, offset := pageToRange(page, limit)
	return uc.repo.List(ctx, limit, offset)
}

func (uc *LocationUseCase) Update(ctx context.Context, id uuid.UUID, in LocationInput) (*location.Location, error) {
	l, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	l.City = in.City
	l.State = in.State
	l.Country = in.Country
	l.Longitude = in.Longitude
	l.Latitude = in.Latitude
	l.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *LocationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.repo.Delete(ctx, id)
}
