package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresLeetcodeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLeetcodeRepo(db *pgxpool.Pool, logger logger.Logger) leetcode.Repository {
	return &postgresLeetcodeRepo{db: db, logger: logger}
}

var psqlLeetcode = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const leetcodeColumns = `id, profile_id, lc_username, real_name, about_me, school, websites, country,
	company, job_title, avatar, skill_tags, ranking, reputation, solution_count,
	total_problems_solved, easy_problems_solved, medium_problems_solved, hard_problems_solved,
	language_problem_count, attended_contests, competition_rating, global_ranking,
	total_participants, top_percentage, competition_badge, created_at, updated_at`

var leetcodeSortColumns = map[string]bool{
	"created_at":            true,
	"updated_at":            true,
	"lc_username":           true,
	"ranking":               true,
	"total_problems_solved": true,
	"competition_rating":    true,
}

func scanLeetcodeRecord(row pgx.Row, l logger.Logger) (*leetcode.Record, error) {
	r := &leetcode.Record{}
	var skillTags []string
	var languageCountBytes []byte

	err := row.Scan(
		&r.ID,
		&r.ProfileID,
		&r.Username,
		&r.RealName,
		&r.AboutMe,
		&r.School,
		&r.Websites,
		&r.Country,
		&r.Company,
		&r.JobTitle,
		&r.Avatar,
		&skillTags,
		&r.Ranking,
		&r.Reputation,
		&r.SolutionCount,
		&r.TotalProblemsSolved,
		&r.EasyProblemsSolved,
		&r.MediumProblemsSolved,
		&r.HardProblemsSolved,
		&languageCountBytes,
		&r.AttendedContests,
		&r.CompetitionRating,
		&r.GlobalRanking,
		&r.TotalParticipants,
		&r.TopPercentage,
		&r.CompetitionBadge,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("leetcode record", "")
		}
		return nil, apperror.NewInternal("failed to scan leetcode row", err)
	}

	r.SkillTags = vocab.ToolsFromStrings(skillTags)

	if len(languageCountBytes) > 0 {
		if err := json.Unmarshal(languageCountBytes, &r.LanguageProblemCount); err != nil {
			l.Warn("Failed to unmarshal language_problem_count", zap.String("leetcode_id", r.ID.String()), zap.Error(err))
			r.LanguageProblemCount = nil
		}
	}

	return r, nil
}

func scanLeetcodeRecords(rows pgx.Rows, l logger.Logger) ([]*leetcode.Record, error) {
	defer rows.Close()
	records := make([]*leetcode.Record, 0)

	for rows.Next() {
		r, err := scanLeetcodeRecord(rows, l)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating leetcode rows", err)
	}
	return records, nil
}

// languageCountJSON keeps nil in the struct as NULL in the column so
// "no data fetched" survives a round trip.
func languageCountJSON(counts []leetcode.LanguageCount) ([]byte, error) {
	if counts == nil {
		return nil, nil
	}
	return json.Marshal(counts)
}

func (r *postgresLeetcodeRepo) Create(ctx context.Context, rec *leetcode.Record) error {
	languageCountBytes, err := languageCountJSON(rec.LanguageProblemCount)
	if err != nil {
		return apperror.NewInternal("failed to marshal language_problem_count", err)
	}

	query := `
		INSERT INTO leetcode_stats (` + leetcodeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`
	_, err = r.db.Exec(ctx, query,
		rec.ID, rec.ProfileID, rec.Username, rec.RealName, rec.AboutMe, rec.School,
		rec.Websites, rec.Country, rec.Company, rec.JobTitle, rec.Avatar,
		vocab.ToolsToStrings(rec.SkillTags), rec.Ranking, rec.Reputation, rec.SolutionCount,
		rec.TotalProblemsSolved, rec.EasyProblemsSolved, rec.MediumProblemsSolved, rec.HardProblemsSolved,
		languageCountBytes, rec.AttendedContests, rec.CompetitionRating, rec.GlobalRanking,
		rec.TotalParticipants, rec.TopPercentage, rec.CompetitionBadge, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("leetcode record", "profile_id", rec.ProfileID.String())
		}
		return apperror.NewInternal("failed to save leetcode record", err)
	}
	return nil
}

func (r *postgresLeetcodeRepo) Update(ctx context.Context, rec *leetcode.Record) error {
	languageCountBytes, err := languageCountJSON(rec.LanguageProblemCount)
	if err != nil {
		return apperror.NewInternal("failed to marshal language_problem_count for update", err)
	}

	query := `
		UPDATE leetcode_stats SET
			lc_username = $2, real_name = $3, about_me = $4, school = $5, websites = $6,
			country = $7, company = $8, job_title = $9, avatar = $10, skill_tags = $11,
			ranking = $12, reputation = $13, solution_count = $14,
			total_problems_solved = $15, easy_problems_solved = $16,
			medium_problems_solved = $17, hard_problems_solved = $18,
			language_problem_count = $19, attended_contests = $20,
			competition_rating = $21, global_ranking = $22, total_participants = $23,
			top_percentage = $24, competition_badge = $25, updated_at = $26
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		rec.ID, rec.Username, rec.RealName, rec.AboutMe, rec.School, rec.Websites,
		rec.Country, rec.Company, rec.JobTitle, rec.Avatar, vocab.ToolsToStrings(rec.SkillTags),
		rec.Ranking, rec.Reputation, rec.SolutionCount,
		rec.TotalProblemsSolved, rec.EasyProblemsSolved, rec.MediumProblemsSolved, rec.HardProblemsSolved,
		languageCountBytes, rec.AttendedContests, rec.CompetitionRating, rec.GlobalRanking,
		rec.TotalParticipants, rec.TopPercentage, rec.CompetitionBadge, rec.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update leetcode record", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("leetcode record", rec.ID.String())
	}
	return nil
}

func (r *postgresLeetcodeRepo) FindByID(ctx context.Context, id uuid.UUID) (*leetcode.Record, error) {
	query := `SELECT ` + leetcodeColumns + ` FROM leetcode_stats WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanLeetcodeRecord(row, r.logger)
}

func (r *postgresLeetcodeRepo) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*leetcode.Record, error) {
	query := `SELECT ` + leetcodeColumns + ` FROM leetcode_stats WHERE profile_id = $1`
	row := r.db.QueryRow(ctx, query, profileID)
	return scanLeetcodeRecord(row, r.logger)
}

func (r *postgresLeetcodeRepo) List(ctx context.Context, filter leetcode.ListFilter) ([]*leetcode.Record, error) {
	builder := psqlLeetcode.Select(leetcodeColumns).
		From("leetcode_stats").
		OrderBy(orderClause(leetcodeSortColumns, filter.SortBy, filter.Order)).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.ProfileID != nil {
		builder = builder.Where(sq.Eq{"profile_id": *filter.ProfileID})
	}
	if filter.Username != nil {
		builder = builder.Where(sq.ILike{"lc_username": "%" + *filter.Username + "%"})
	}
	if filter.Country != nil {
		builder = builder.Where(sq.ILike{"country": "%" + *filter.Country + "%"})
	}
	if filter.Company != nil {
		builder = builder.Where(sq.ILike{"company": "%" + *filter.Company + "%"})
	}
	if filter.MinTotalSolved != nil {
		builder = builder.Where(sq.GtOrEq{"total_problems_solved": *filter.MinTotalSolved})
	}
	if filter.MaxTotalSolved != nil {
		builder = builder.Where(sq.LtOrEq{"total_problems_solved": *filter.MaxTotalSolved})
	}
	if filter.MinRating != nil {
		builder = builder.Where(sq.GtOrEq{"competition_rating": *filter.MinRating})
	}
	if filter.MaxRating != nil {
		builder = builder.Where(sq.LtOrEq{"competition_rating": *filter.MaxRating})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build leetcode list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query leetcode records", err)
	}
	return scanLeetcodeRecords(rows, r.logger)
}

func (r *postgresLeetcodeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leetcode_stats WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete leetcode record", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("leetcode record", id.String())
	}
	return nil
}
