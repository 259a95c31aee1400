package career

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type stubProfileRepo struct {
	profile.Repository
	profiles map[uuid.UUID]*profile.Profile
}

func (s *stubProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	if p, ok := s.profiles[id]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("profile", id.String())
}

type stubLocationRepo struct {
	location.Repository
	locations map[uuid.UUID]*location.Location
}

func (s *stubLocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	if l, ok := s.locations[id]; ok {
		return l, nil
	}
	return nil, apperror.NewNotFound("location", id.String())
}

type stubEducationRepo struct {
	education.Repository
	byID    map[uuid.UUID]*education.Education
	created []*education.Education
	updated []*education.Education
}

func (s *stubEducationRepo) Create(ctx context.Context, e *education.Education) error {
	s.created = append(s.created, e)
	return nil
}

func (s *stubEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	if e, ok := s.byID[id]; ok {
		return e, nil
	}
	return nil, apperror.NewNotFound("education", id.String())
}

func (s *stubEducationRepo) Update(ctx context.Context, e *education.Education) error {
	s.updated = append(s.updated, e)
	return nil
}

func validEducationInput(profileID, locationID uuid.UUID) EducationInput {
	return EducationInput{
		ProfileID:          profileID,
		School:             "NUS",
		SchoolType:         "university",
		Degree:             "BSc",
		Field:              "Computer Science",
		LocationID:         locationID,
		LocationType:       "on_site",
		StartDate:          time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC),
		DescriptionGeneral: "Undergraduate studies",
		ToolsUsed:          []string{"go", "not-real"},
	}
}

func newEducationFixture(t *testing.T) (*EducationUseCase, *stubEducationRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	profileID := uuid.New()
	locationID := uuid.New()
	repo := &stubEducationRepo{byID: map[uuid.UUID]*education.Education{}}
	uc := NewEducationUseCase(
		repo,
		&stubProfileRepo{profiles: map[uuid.UUID]*profile.Profile{profileID: {ID: profileID}}},
		&stubLocationRepo{locations: map[uuid.UUID]*location.Location{locationID: {ID: locationID}}},
		logger.NewNop(),
	)
	return uc, repo, profileID, locationID
}

func TestEducationCreateValidatesVocabulary(t *testing.T) {
	uc, repo, profileID, locationID := newEducationFixture(t)

	in := validEducationInput(profileID, locationID)
	in.SchoolType = "bootcamp"
	_, err := uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	in = validEducationInput(profileID, locationID)
	in.LocationType = "wfh"
	_, err = uc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))

	assert.Empty(t, repo.created)
}

func TestEducationCreateChecksReferences(t *testing.T) {
	uc, repo, profileID, locationID := newEducationFixture(t)

	_, err := uc.Create(context.Background(), validEducationInput(uuid.New(), locationID))
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	_, err = uc.Create(context.Background(), validEducationInput(profileID, uuid.New()))
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	assert.Empty(t, repo.created)
}

func TestEducationCreateSetsIdentityAndDropsUnknownTools(t *testing.T) {
	uc, repo, profileID, locationID := newEducationFixture(t)

	e, err := uc.Create(context.Background(), validEducationInput(profileID, locationID))

	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.NotEqual(t, uuid.Nil, e.ID)
	assert.Equal(t, profileID, e.ProfileID)
	assert.Equal(t, vocab.SchoolUniversity, e.SchoolType)
	assert.Equal(t, []vocab.Tool{vocab.ToolGo}, e.ToolsUsed)
	assert.Equal(t, e.CreatedAt, e.UpdatedAt)
}

func TestEducationUpdatePreservesIdentity(t *testing.T) {
	uc, repo, profileID, locationID := newEducationFixture(t)

	existingID := uuid.New()
	createdAt := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.byID[existingID] = &education.Education{
		ID:        existingID,
		ProfileID: profileID,
		CreatedAt: createdAt,
	}

	in := validEducationInput(uuid.New(), locationID)
	in.School = "NTU"
	e, err := uc.Update(context.Background(), existingID, in)

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, existingID, e.ID)
	// The stored profile binding wins over whatever the input carries.
	assert.Equal(t, profileID, e.ProfileID)
	assert.Equal(t, createdAt, e.CreatedAt)
	assert.True(t, e.UpdatedAt.After(createdAt))
	assert.Equal(t, "NTU", e.School)
}

func TestPageToRange(t *testing.T) {
	limit, offset := pageToRange(1, 20)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)

	limit, offset = pageToRange(3, 10)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)

	// Out-of-range inputs fall back to defaults.
	limit, offset = pageToRange(0, 0)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 0, offset)
}
