package leetcode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
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

type stubLeetcodeRepo struct {
	leetcode.Repository
	byProfile map[uuid.UUID]*leetcode.Record
	created   []*leetcode.Record
	updated   []*leetcode.Record
	createErr error
}

func (s *stubLeetcodeRepo) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*leetcode.Record, error) {
	if r, ok := s.byProfile[profileID]; ok {
		return r, nil
	}
	return nil, apperror.NewNotFound("leetcode record", profileID.String())
}

func (s *stubLeetcodeRepo) Create(ctx context.Context, r *leetcode.Record) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, r)
	return nil
}

func (s *stubLeetcodeRepo) Update(ctx context.Context, r *leetcode.Record) error {
	s.updated = append(s.updated, r)
	return nil
}

type stubFetcher struct {
	raw      *leetcode.RawProfile
	err      error
	requests []string
}

func (s *stubFetcher) Fetch(ctx context.Context, username string) (*leetcode.RawProfile, error) {
	s.requests = append(s.requests, username)
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func fullRawProfile() *leetcode.RawProfile {
	rating := 1842.5
	return &leetcode.RawProfile{
		Username: "tourist",
		Profile: leetcode.RawProfileNode{
			RealName:    strPtr("Gennady"),
			AboutMe:     strPtr("sport programmer"),
			Websites:    []string{"https://a.example", "https://b.example"},
			CountryName: strPtr("Belarus"),
			SkillTags:   []string{"python", "go", "not-a-known-tool"},
			Ranking:     intPtr(1),
		},
		SubmitStats: []leetcode.RawSubmissionCount{
			{Difficulty: "All", Count: 900},
			{Difficulty: "Easy", Count: 300},
		},
		LanguageProblemCount: []leetcode.RawLanguageCount{
			{LanguageName: "Go", ProblemsSolved: 500},
			{LanguageName: "C++", ProblemsSolved: 400},
		},
		ContestRanking: &leetcode.RawContestRanking{
			AttendedContestsCount: intPtr(42),
			Rating:                &rating,
			Badge: &struct {
				Name string `json:"name"`
			}{Name: "Guardian"},
		},
	}
}

func newSyncFixture(t *testing.T) (*SyncUseCase, *stubProfileRepo, *stubLeetcodeRepo, *stubFetcher) {
	t.Helper()
	pRepo := &stubProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}}
	lRepo := &stubLeetcodeRepo{byProfile: map[uuid.UUID]*leetcode.Record{}}
	fetcher := &stubFetcher{raw: fullRawProfile()}
	uc := NewSyncUseCase(lRepo, pRepo, fetcher, nil, logger.NewNop())
	return uc, pRepo, lRepo, fetcher
}

func TestSyncRejectsBlankUsername(t *testing.T) {
	uc, _, lRepo, fetcher := newSyncFixture(t)

	_, err := uc.Execute(context.Background(), SyncInput{ProfileID: uuid.New(), Username: "   "})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	assert.Empty(t, fetcher.requests)
	assert.Empty(t, lRepo.created)
}

func TestSyncUnknownProfile(t *testing.T) {
	uc, _, _, fetcher := newSyncFixture(t)

	_, err := uc.Execute(context.Background(), SyncInput{ProfileID: uuid.New(), Username: "tourist"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Empty(t, fetcher.requests)
}

func TestSyncFetchFailureWritesNothing(t *testing.T) {
	uc, pRepo, lRepo, fetcher := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}
	fetcher.err = &leetcode.FetchError{Detail: "status 429"}

	_, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrUpstream))
	assert.Empty(t, lRepo.created)
	assert.Empty(t, lRepo.updated)
}

func TestSyncCreatesRecordOnFirstSync(t *testing.T) {
	uc, pRepo, lRepo, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})

	require.NoError(t, err)
	assert.True(t, out.Created)
	require.Len(t, lRepo.created, 1)
	assert.Empty(t, lRepo.updated)

	rec := out.Record
	assert.Equal(t, profileID, rec.ProfileID)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	require.NotNil(t, rec.Username)
	assert.Equal(t, "tourist", *rec.Username)
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
}

func TestSyncMapsDifficultyCounts(t *testing.T) {
	uc, pRepo, _, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})
	require.NoError(t, err)

	rec := out.Record
	require.NotNil(t, rec.TotalProblemsSolved)
	assert.Equal(t, 900, *rec.TotalProblemsSolved)
	require.NotNil(t, rec.EasyProblemsSolved)
	assert.Equal(t, 300, *rec.EasyProblemsSolved)
	// Missing difficulty buckets stay nil instead of becoming zero.
	assert.Nil(t, rec.MediumProblemsSolved)
	assert.Nil(t, rec.HardProblemsSolved)
}

func TestSyncDropsUnknownSkillTags(t *testing.T) {
	uc, pRepo, _, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})
	require.NoError(t, err)

	assert.Equal(t, []vocab.Tool{vocab.ToolPython, vocab.ToolGo}, out.Record.SkillTags)
}

func TestSyncJoinsWebsites(t *testing.T) {
	uc, pRepo, _, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})
	require.NoError(t, err)

	require.NotNil(t, out.Record.Websites)
	assert.Equal(t, "https://a.example,https://b.example", *out.Record.Websites)
}

func TestSyncEmptyCollectionsStayNil(t *testing.T) {
	uc, pRepo, _, fetcher := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}
	fetcher.raw = &leetcode.RawProfile{Username: "tourist"}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})
	require.NoError(t, err)

	rec := out.Record
	assert.Nil(t, rec.Websites)
	assert.Nil(t, rec.LanguageProblemCount)
	assert.Nil(t, rec.TotalProblemsSolved)
	assert.Nil(t, rec.AttendedContests)
	assert.Nil(t, rec.CompetitionBadge)
}

func TestSyncContestFields(t *testing.T) {
	uc, pRepo, _, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})
	require.NoError(t, err)

	rec := out.Record
	require.NotNil(t, rec.AttendedContests)
	assert.Equal(t, 42, *rec.AttendedContests)
	require.NotNil(t, rec.CompetitionRating)
	assert.InDelta(t, 1842.5, *rec.CompetitionRating, 0.001)
	require.NotNil(t, rec.CompetitionBadge)
	assert.Equal(t, "Guardian", *rec.CompetitionBadge)
}

func TestSyncUpdatesExistingRecord(t *testing.T) {
	uc, pRepo, lRepo, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	recordID := uuid.New()
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lRepo.byProfile[profileID] = &leetcode.Record{
		ID:        recordID,
		ProfileID: profileID,
		Company:   strPtr("OldCorp"),
		School:    strPtr("Old School"),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})

	require.NoError(t, err)
	assert.False(t, out.Created)
	assert.Empty(t, lRepo.created)
	require.Len(t, lRepo.updated, 1)

	rec := out.Record
	assert.Equal(t, recordID, rec.ID)
	assert.Equal(t, createdAt, rec.CreatedAt)
	assert.True(t, rec.UpdatedAt.After(createdAt))
	// The new payload carries no company or school, so both reset.
	assert.Nil(t, rec.Company)
	assert.Nil(t, rec.School)
	require.NotNil(t, rec.RealName)
	assert.Equal(t, "Gennady", *rec.RealName)
}

func TestSyncLanguageCounts(t *testing.T) {
	uc, pRepo, _, _ := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "tourist"})
	require.NoError(t, err)

	require.Len(t, out.Record.LanguageProblemCount, 2)
	assert.Equal(t, leetcode.LanguageCount{Language: "Go", ProblemsSolved: 500}, out.Record.LanguageProblemCount[0])
}

func TestSyncTrimsUsername(t *testing.T) {
	uc, pRepo, _, fetcher := newSyncFixture(t)
	profileID := uuid.New()
	pRepo.profiles[profileID] = &profile.Profile{ID: profileID}

	out, err := uc.Execute(context.Background(), SyncInput{ProfileID: profileID, Username: "  tourist  "})
	require.NoError(t, err)

	require.Len(t, fetcher.requests, 1)
	assert.Equal(t, "tourist", fetcher.requests[0])
	assert.Equal(t, "tourist", *out.Record.Username)
}
