package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dijkstra-edu/dataforge/internal/domain/certification"
	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/project"
	"github.com/dijkstra-edu/dataforge/internal/domain/publication"
	"github.com/dijkstra-edu/dataforge/internal/domain/volunteering"
	"github.com/dijkstra-edu/dataforge/internal/domain/workexperience"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type fakeProfileRepo struct {
	profile.Repository
	profiles map[uuid.UUID]*profile.Profile
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("profile", id.String())
}

type fakeEducationRepo struct {
	education.Repository
	rows []*education.Education
	err  error
}

func (f *fakeEducationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*education.Education, error) {
	return f.rows, f.err
}

type fakeWorkRepo struct {
	workexperience.Repository
	rows []*workexperience.WorkExperience
	err  error
}

func (f *fakeWorkRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*workexperience.WorkExperience, error) {
	return f.rows, f.err
}

type fakeCertificationRepo struct {
	certification.Repository
	rows []*certification.Certification
	err  error
}

func (f *fakeCertificationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*certification.Certification, error) {
	return f.rows, f.err
}

type fakePublicationRepo struct {
	publication.Repository
	rows []*publication.Publication
	err  error
}

func (f *fakePublicationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*publication.Publication, error) {
	return f.rows, f.err
}

type fakeVolunteeringRepo struct {
	volunteering.Repository
	rows []*volunteering.Volunteering
	err  error
}

func (f *fakeVolunteeringRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*volunteering.Volunteering, error) {
	return f.rows, f.err
}

type fakeProjectRepo struct {
	project.Repository
	rows []*project.Project
	err  error
}

func (f *fakeProjectRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*project.Project, error) {
	return f.rows, f.err
}

type fakeLocationRepo struct {
	location.Repository
	locations map[uuid.UUID]*location.Location
}

func (f *fakeLocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	if l, ok := f.locations[id]; ok {
		return l, nil
	}
	return nil, apperror.NewNotFound("location", id.String())
}

type fullProfileFixture struct {
	uc       *FullProfileUseCase
	profiles *fakeProfileRepo
	edu      *fakeEducationRepo
	work     *fakeWorkRepo
	certs    *fakeCertificationRepo
	pubs     *fakePublicationRepo
	vol      *fakeVolunteeringRepo
	projects *fakeProjectRepo
	locs     *fakeLocationRepo
}

func newFullProfileFixture(t *testing.T) *fullProfileFixture {
	t.Helper()
	f := &fullProfileFixture{
		profiles: &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}},
		edu:      &fakeEducationRepo{},
		work:     &fakeWorkRepo{},
		certs:    &fakeCertificationRepo{},
		pubs:     &fakePublicationRepo{},
		vol:      &fakeVolunteeringRepo{},
		projects: &fakeProjectRepo{},
		locs:     &fakeLocationRepo{locations: map[uuid.UUID]*location.Location{}},
	}
	f.uc = NewFullProfileUseCase(
		f.profiles, f.edu, f.work, f.certs, f.pubs, f.vol, f.projects, f.locs,
		logger.NewNop(),
	)
	return f
}

func TestFullProfileMissingBaseProfile(t *testing.T) {
	f := newFullProfileFixture(t)

	_, err := f.uc.Execute(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestFullProfileEmptyCollectionsAreEmptySlices(t *testing.T) {
	f := newFullProfileFixture(t)
	profileID := uuid.New()
	f.profiles.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := f.uc.Execute(context.Background(), profileID)

	require.NoError(t, err)
	assert.NotNil(t, out.Education)
	assert.NotNil(t, out.WorkExperience)
	assert.NotNil(t, out.Certifications)
	assert.NotNil(t, out.Publications)
	assert.NotNil(t, out.Volunteering)
	assert.NotNil(t, out.Projects)
	assert.Len(t, out.Education, 0)
	assert.Len(t, out.Projects, 0)
}

func TestFullProfileCollectionFailureDegrades(t *testing.T) {
	f := newFullProfileFixture(t)
	profileID := uuid.New()
	f.profiles.profiles[profileID] = &profile.Profile{ID: profileID}
	f.certs.err = errors.New("relation does not exist")
	f.pubs.rows = []*publication.Publication{{ID: uuid.New(), ProfileID: profileID}}

	out, err := f.uc.Execute(context.Background(), profileID)

	require.NoError(t, err)
	assert.Empty(t, out.Certifications)
	assert.NotNil(t, out.Certifications)
	assert.Len(t, out.Publications, 1)
}

func TestFullProfileResolvesEducationLocation(t *testing.T) {
	f := newFullProfileFixture(t)
	profileID := uuid.New()
	f.profiles.profiles[profileID] = &profile.Profile{ID: profileID}

	locID := uuid.New()
	f.locs.locations[locID] = &location.Location{ID: locID, City: "Singapore", Country: "Singapore"}
	f.edu.rows = []*education.Education{
		{ID: uuid.New(), ProfileID: profileID, LocationID: locID},
	}

	out, err := f.uc.Execute(context.Background(), profileID)

	require.NoError(t, err)
	require.Len(t, out.Education, 1)
	require.NotNil(t, out.Education[0].Location)
	assert.Equal(t, "Singapore", out.Education[0].Location.City)
}

func TestFullProfileBrokenLocationReferenceNilsLocation(t *testing.T) {
	f := newFullProfileFixture(t)
	profileID := uuid.New()
	f.profiles.profiles[profileID] = &profile.Profile{ID: profileID}

	f.edu.rows = []*education.Education{
		{ID: uuid.New(), ProfileID: profileID, LocationID: uuid.New()},
	}

	out, err := f.uc.Execute(context.Background(), profileID)

	require.NoError(t, err)
	require.Len(t, out.Education, 1)
	assert.NotNil(t, out.Education[0].Entry)
	assert.Nil(t, out.Education[0].Location)
}

func TestFullProfileWorkWithoutLocation(t *testing.T) {
	f := newFullProfileFixture(t)
	profileID := uuid.New()
	f.profiles.profiles[profileID] = &profile.Profile{ID: profileID}

	f.work.rows = []*workexperience.WorkExperience{
		{ID: uuid.New(), ProfileID: profileID, LocationID: nil},
	}

	out, err := f.uc.Execute(context.Background(), profileID)

	require.NoError(t, err)
	require.Len(t, out.WorkExperience, 1)
	assert.Nil(t, out.WorkExperience[0].Location)
}
