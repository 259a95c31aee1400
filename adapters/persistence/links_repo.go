package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/links"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresLinksRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLinksRepo(db *pgxpool.Pool, logger logger.Logger) links.Repository {
	return &postgresLinksRepo{db: db, logger: logger}
}

const linksColumns = `id, user_id, github_user_name, linkedin_user_name, leetcode_user_name,
	orcid_id, primary_email, secondary_email, school_email, work_email, created_at, updated_at`

func scanLinks(row pgx.Row) (*links.Links, error) {
	l := &links.Links{}
	err := row.Scan(
		&l.ID, &l.UserID, &l.GithubUserName, &l.LinkedinUserName, &l.LeetcodeUserName,
		&l.OrcidID, &l.PrimaryEmail, &l.SecondaryEmail, &l.SchoolEmail, &l.WorkEmail,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("links", "")
		}
		return nil, apperror.NewInternal("failed to scan links row", err)
	}
	return l, nil
}

func (r *postgresLinksRepo) Create(ctx context.Context, l *links.Links) error {
	query := `
		INSERT INTO links (` + linksColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.UserID, l.GithubUserName, l.LinkedinUserName, l.LeetcodeUserName,
		l.OrcidID, l.PrimaryEmail, l.SecondaryEmail, l.SchoolEmail, l.WorkEmail,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("links", "user_id", l.UserID.String())
		}
		return apperror.NewInternal("failed to save links", err)
	}
	return nil
}

func (r *postgresLinksRepo) FindByID(ctx context.Context, id uuid.UUID) (*links.Links, error) {
	row := r.db.QueryRow(ctx, `SELECT `+linksColumns+` FROM links WHERE id = $1`, id)
	return scanLinks(row)
}

func (r *postgresLinksRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*links.Links, error) {
	row := r.db.QueryRow(ctx, `SELECT `+linksColumns+` FROM links WHERE user_id = $1`, userID)
	return scanLinks(row)
}

func (r *postgresLinksRepo) Update(ctx context.Context, l *links.Links) error {
	query := `
		UPDATE links SET
			github_user_name = $2, linkedin_user_name = $3, leetcode_user_name = $4,
			orcid_id = $5, primary_email = $6, secondary_email = $7, school_email = $8,
			work_email = $9, updated_at = $10
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		l.ID, l.GithubUserName, l.LinkedinUserName, l.LeetcodeUserName,
		l.OrcidID, l.PrimaryEmail, l.SecondaryEmail, l.SchoolEmail,
		l.WorkEmail, l.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update links", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("links", l.ID.String())
	}
	return nil
}

func (r *postgresLinksRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM links WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete links", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("links", id.String())
	}
	return nil
}
