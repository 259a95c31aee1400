package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

const educationColumns = `id, profile_id, school, school_type, degree, field, currently_studying,
	location_id, location_type, start_date, end_date, description_general, description_detailed,
	description_less, work_done, school_score_multiplier, tools_used, created_at, updated_at`

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	var tools []string
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.School, &e.SchoolType, &e.Degree, &e.Field, &e.CurrentlyStudying,
		&e.LocationID, &e.LocationType, &e.StartDate, &e.EndDate, &e.DescriptionGeneral,
		&e.DescriptionDetailed, &e.DescriptionLess, &e.WorkDone, &e.SchoolScoreMultiplier,
		&tools, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	e.ToolsUsed = vocab.ToolsFromStrings(tools)
	return e, nil
}

func (r *postgresEducationRepo) Create(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (` + educationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.ProfileID, e.School, e.SchoolType, e.Degree, e.Field, e.CurrentlyStudying,
		e.LocationID, e.LocationType, e.StartDate, e.EndDate, e.DescriptionGeneral,
		e.DescriptionDetailed, e.DescriptionLess, e.WorkDone, e.SchoolScoreMultiplier,
		vocab.ToolsToStrings(e.ToolsUsed), e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	row := r.db.QueryRow(ctx, `SELECT `+educationColumns+` FROM education WHERE id = $1`, id)
	return scanEducation(row)
}

func (r *postgresEducationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*education.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+educationColumns+` FROM education WHERE profile_id = $1 ORDER BY start_date DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education entries", err)
	}
	defer rows.Close()

	entries := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			school = $2, school_type = $3, degree = $4, field = $5, currently_studying = $6,
			location_id = $7, location_type = $8, start_date = $9, end_date = $10,
			description_general = $11, description_detailed = $12, description_less = $13,
			work_done = $14, school_score_multiplier = $15, tools_used = $16, updated_at = $17
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.School, e.SchoolType, e.Degree, e.Field, e.CurrentlyStudying,
		e.LocationID, e.LocationType, e.StartDate, e.EndDate,
		e.DescriptionGeneral, e.DescriptionDetailed, e.DescriptionLess,
		e.WorkDone, e.SchoolScoreMultiplier, vocab.ToolsToStrings(e.ToolsUsed), e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}
