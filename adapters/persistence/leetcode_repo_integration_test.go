package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type LeetcodeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool        *pgxpool.Pool
	pgContainer   *postgres.PostgresContainer
	repo          leetcode.Repository
	testProfileID uuid.UUID
}

func (s *LeetcodeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.repo = NewPostgresLeetcodeRepo(pool, logger.NewNop())

	userID := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, github_user_name, first_name, last_name, "rank") VALUES ($1, $2, $3, $4, $5)`,
		userID, "integration-user", "Inte", "Gration", string(vocab.RankUnranked))
	if err != nil {
		s.T().Fatalf("Failed to seed user: %s", err)
	}

	s.testProfileID = uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO profiles (id, user_id) VALUES ($1, $2)`,
		s.testProfileID, userID)
	if err != nil {
		s.T().Fatalf("Failed to seed profile: %s", err)
	}
}

func (s *LeetcodeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestLeetcodeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(LeetcodeRepoIntegrationTestSuite))
}

func (s *LeetcodeRepoIntegrationTestSuite) sampleRecord() *leetcode.Record {
	username := "integration-lc"
	total := 321
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &leetcode.Record{
		ID:                  uuid.New(),
		ProfileID:           s.testProfileID,
		Username:            &username,
		SkillTags:           []vocab.Tool{vocab.ToolGo, vocab.ToolPostgreSQL},
		TotalProblemsSolved: &total,
		LanguageProblemCount: []leetcode.LanguageCount{
			{Language: "Go", ProblemsSolved: 200},
			{Language: "SQL", ProblemsSolved: 121},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *LeetcodeRepoIntegrationTestSuite) Test_Create_And_FindByProfileID() {
	ctx := context.Background()

	rec := s.sampleRecord()
	s.Require().NoError(s.repo.Create(ctx, rec))
	defer s.repo.Delete(ctx, rec.ID)

	found, err := s.repo.FindByProfileID(ctx, s.testProfileID)

	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(rec.ID, found.ID)
	s.Equal(*rec.Username, *found.Username)
	s.Equal(rec.SkillTags, found.SkillTags)
	s.Equal(rec.LanguageProblemCount, found.LanguageProblemCount)
	s.Nil(found.EasyProblemsSolved)
	s.Nil(found.CompetitionRating)
}

func (s *LeetcodeRepoIntegrationTestSuite) Test_Update_Overwrites_Nils() {
	ctx := context.Background()

	rec := s.sampleRecord()
	s.Require().NoError(s.repo.Create(ctx, rec))
	defer s.repo.Delete(ctx, rec.ID)

	rec.Username = nil
	rec.SkillTags = nil
	rec.TotalProblemsSolved = nil
	rec.LanguageProblemCount = nil
	s.Require().NoError(s.repo.Update(ctx, rec))

	found, err := s.repo.FindByID(ctx, rec.ID)
	s.NoError(err)
	s.Nil(found.Username)
	s.Nil(found.SkillTags)
	s.Nil(found.TotalProblemsSolved)
	s.Nil(found.LanguageProblemCount)
}

func (s *LeetcodeRepoIntegrationTestSuite) Test_OneRecordPerProfile() {
	ctx := context.Background()

	first := s.sampleRecord()
	s.Require().NoError(s.repo.Create(ctx, first))
	defer s.repo.Delete(ctx, first.ID)

	second := s.sampleRecord()
	second.ID = uuid.New()
	err := s.repo.Create(ctx, second)

	s.Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *LeetcodeRepoIntegrationTestSuite) Test_Delete_Missing() {
	err := s.repo.Delete(context.Background(), uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *LeetcodeRepoIntegrationTestSuite) Test_FindByProfileID_Missing() {
	_, err := s.repo.FindByProfileID(context.Background(), uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)
}
