package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/internal/domain/volunteering"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresVolunteeringRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresVolunteeringRepo(db *pgxpool.Pool, logger logger.Logger) volunteering.Repository {
	return &postgresVolunteeringRepo{db: db, logger: logger}
}

const volunteeringColumns = `id, profile_id, organization, role, cause, start_date, end_date,
	currently_volunteering, description, tools, created_at, updated_at`

func scanVolunteering(row pgx.Row) (*volunteering.Volunteering, error) {
	v := &volunteering.Volunteering{}
	var tools []string
	err := row.Scan(
		&v.ID, &v.ProfileID, &v.Organization, &v.Role, &v.Cause, &v.StartDate, &v.EndDate,
		&v.CurrentlyVolunteering, &v.Description, &tools, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("volunteering", "")
		}
		return nil, apperror.NewInternal("failed to scan volunteering row", err)
	}
	v.Tools = vocab.ToolsFromStrings(tools)
	return v, nil
}

func (r *postgresVolunteeringRepo) Create(ctx context.Context, v *volunteering.Volunteering) error {
	query := `
		INSERT INTO volunteering (` + volunteeringColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		v.ID, v.ProfileID, v.Organization, v.Role, v.Cause, v.StartDate, v.EndDate,
		v.CurrentlyVolunteering, v.Description, vocab.ToolsToStrings(v.Tools), v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save volunteering", err)
	}
	return nil
}

func (r *postgresVolunteeringRepo) FindByID(ctx context.Context, id uuid.UUID) (*volunteering.Volunteering, error) {
	row := r.db.QueryRow(ctx, `SELECT `+volunteeringColumns+` FROM volunteering WHERE id = $1`, id)
	return scanVolunteering(row)
}

func (r *postgresVolunteeringRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*volunteering.Volunteering, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+volunteeringColumns+` FROM volunteering WHERE profile_id = $1 ORDER BY start_date DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query volunteering entries", err)
	}
	defer rows.Close()

	entries := make([]*volunteering.Volunteering, 0)
	for rows.Next() {
		v, err := scanVolunteering(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating volunteering rows", err)
	}
	return entries, nil
}

func (r *postgresVolunteeringRepo) Update(ctx context.Context, v *volunteering.Volunteering) error {
	query := `
		UPDATE volunteering SET
			organization = $2, role = $3, cause = $4, start_date = $5, end_date = $6,
			currently_volunteering = $7, description = $8, tools = $9, updated_at = $10
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		v.ID, v.Organization, v.Role, v.Cause, v.StartDate, v.EndDate,
		v.CurrentlyVolunteering, v.Description, vocab.ToolsToStrings(v.Tools), v.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update volunteering", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("volunteering", v.ID.String())
	}
	return nil
}

func (r *postgresVolunteeringRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM volunteering WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete volunteering", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("volunteering", id.String())
	}
	return nil
}
