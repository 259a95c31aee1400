package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

// Badge and tag rows are additively managed: no merge, no dedupe, only
// create/list/delete scoped to the owning leetcode record.

type postgresLeetcodeBadgeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLeetcodeBadgeRepo(db *pgxpool.Pool, logger logger.Logger) leetcode.BadgeRepository {
	return &postgresLeetcodeBadgeRepo{db: db, logger: logger}
}

const badgeColumns = `id, leetcode_id, name, icon, hover_text, created_at, updated_at`

func scanBadge(row pgx.Row) (*leetcode.Badge, error) {
	b := &leetcode.Badge{}
	err := row.Scan(&b.ID, &b.RecordID, &b.Name, &b.Icon, &b.HoverText, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("leetcode badge", "")
		}
		return nil, apperror.NewInternal("failed to scan badge row", err)
	}
	return b, nil
}

func (r *postgresLeetcodeBadgeRepo) Create(ctx context.Context, b *leetcode.Badge) error {
	query := `
		INSERT INTO leetcode_badges (` + badgeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, b.ID, b.RecordID, b.Name, b.Icon, b.HoverText, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save badge", err)
	}
	return nil
}

func (r *postgresLeetcodeBadgeRepo) FindByID(ctx context.Context, id uuid.UUID) (*leetcode.Badge, error) {
	row := r.db.QueryRow(ctx, `SELECT `+badgeColumns+` FROM leetcode_badges WHERE id = $1`, id)
	return scanBadge(row)
}

func (r *postgresLeetcodeBadgeRepo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*leetcode.Badge, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+badgeColumns+` FROM leetcode_badges WHERE leetcode_id = $1 ORDER BY created_at DESC`,
		recordID,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query badges", err)
	}
	defer rows.Close()

	badges := make([]*leetcode.Badge, 0)
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating badge rows", err)
	}
	return badges, nil
}

func (r *postgresLeetcodeBadgeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leetcode_badges WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete badge", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("leetcode badge", id.String())
	}
	return nil
}

type postgresLeetcodeTagRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresLeetcodeTagRepo(db *pgxpool.Pool, logger logger.Logger) leetcode.TagRepository {
	return &postgresLeetcodeTagRepo{db: db, logger: logger}
}

const tagColumns = `id, leetcode_id, tag_category, tag_name, problems_solved, created_at, updated_at`

func scanTag(row pgx.Row) (*leetcode.Tag, error) {
	t := &leetcode.Tag{}
	err := row.Scan(&t.ID, &t.RecordID, &t.TagCategory, &t.TagName, &t.ProblemsSolved, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("leetcode tag", "")
		}
		return nil, apperror.NewInternal("failed to scan tag row", err)
	}
	return t, nil
}

func (r *postgresLeetcodeTagRepo) Create(ctx context.Context, t *leetcode.Tag) error {
	query := `
		INSERT INTO leetcode_tags (` + tagColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, t.ID, t.RecordID, t.TagCategory, t.TagName, t.ProblemsSolved, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save tag", err)
	}
	return nil
}

func (r *postgresLeetcodeTagRepo) FindByID(ctx context.Context, id uuid.UUID) (*leetcode.Tag, error) {
	row := r.db.QueryRow(ctx, `SELECT `+tagColumns+` FROM leetcode_tags WHERE id = $1`, id)
	return scanTag(row)
}

func (r *postgresLeetcodeTagRepo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*leetcode.Tag, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+tagColumns+` FROM leetcode_tags WHERE leetcode_id = $1 ORDER BY created_at DESC`,
		recordID,
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to query tags", err)
	}
	defer rows.Close()

	tags := make([]*leetcode.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating tag rows", err)
	}
	return tags, nil
}

func (r *postgresLeetcodeTagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leetcode_tags WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete tag", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("leetcode tag", id.String())
	}
	return nil
}
