package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/publication"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresPublicationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPublicationRepo(db *pgxpool.Pool, logger logger.Logger) publication.Repository {
	return &postgresPublicationRepo{db: db, logger: logger}
}

const publicationColumns = `id, profile_id, title, publisher, authors, publication_date,
	publication_url, description, tools, created_at, updated_at`

func scanPublication(row pgx.Row) (*publication.Publication, error) {
	p := &publication.Publication{}
	var tools []string
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Publisher, &p.Authors, &p.PublicationDate,
		&p.PublicationURL, &p.Description, &tools, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("publication", "")
		}
		return nil, apperror.NewInternal("failed to scan publication row", err)
	}
	p.Tools = vocab.ToolsFromStrings(tools)
	return p, nil
}

func (r *postgresPublicationRepo) Create(ctx context.Context, p *publication.Publication) error {
	query := `
		INSERT INTO publications (` + publicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.ProfileID, p.Title, p.Publisher, p.Authors, p.PublicationDate,
		p.PublicationURL, p.Description, vocab.ToolsToStrings(p.Tools), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save publication", err)
	}
	return nil
}

func (r *postgresPublicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*publication.Publication, error) {
	row := r.db.QueryRow(ctx, `SELECT `+publicationColumns+` FROM publications WHERE id = $1`, id)
	return scanPublication(row)
}

func (r *postgresPublicationRepo) ListByProfile(ctx context.Context, profileID uuid.UUID, limit, offset int) ([]*publication.Publication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+publicationColumns+` FROM publications WHERE profile_id = $1 ORDER BY publication_date DESC LIMIT $2 OFFSET $3`,
		profileID, limit, offset,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query publications", err)
	}
	defer rows.Close()

	entries := make([]*publication.Publication, 0)
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating publication rows", err)
	}
	return entries, nil
}

func (r *postgresPublicationRepo) Update(ctx context.Context, p *publication.Publication) error {
	query := `
		UPDATE publications SET
			title = $2, publisher = $3, authors = $4, publication_date = $5,
			publication_url = $6, description = $7, tools = $8, updated_at = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Publisher, p.Authors, p.PublicationDate,
		p.PublicationURL, p.Description, vocab.ToolsToStrings(p.Tools), p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update publication", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("publication", p.ID.String())
	}
	return nil
}

func (r *postgresPublicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete publication", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("publication", id.String())
	}
	return nil
}
