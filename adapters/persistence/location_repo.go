package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresLocationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLocationRepo(db *pgxpool.Pool, logger logger.Logger) location.Repository {
	return &postgresLocationRepo{db: db, logger: logger}
}

const locationColumns = `id, city, state, country, longitude, latitude, created_at, updated_at`

func scanLocation(row pgx.Row) (*location.Location, error) {
	l := &location.Location{}
	err := row.Scan(&l.ID, &l.City, &l.State, &l.Country, &l.Longitude, &l.Latitude, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("location", "")
		}
		return nil, apperror.NewInternal("failed to scan location row", err)
	}
	return l, nil
}

func (r *postgresLocationRepo) Create(ctx context.Context, l *location.Location) error {
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, l.ID, l.City, l.State, l.Country, l.Longitude, l.Latitude, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save location", err)
	}
	return nil
}

func (r *postgresLocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*location.Location, error) {
	row := r.db.QueryRow(ctx, `SELECT `+locationColumns+` FROM locations WHERE id = $1`, id)
	return scanLocation(row)
}

func (r *postgresLocationRepo) List(ctx context.Context, limit, offset int) ([]*location.Location, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query locations", err)
	}
	defer rows.Close()

	locations := make([]*location.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating location rows", err)
	}
	return locations, nil
}

func (r *postgresLocationRepo) Update(ctx context.Context, l *location.Location) error {
	query := `
		UPDATE locations SET
			city = $2, state = $3, country = $4, longitude = $5, latitude = $6, updated_at = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, l.ID, l.City, l.State, l.Country, l.Longitude, l.Latitude, l.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to update location", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("location", l.ID.String())
	}
	return nil
}

func (r *postgresLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete location", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("location", id.String())
	}
	return nil
}
