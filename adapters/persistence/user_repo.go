package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

var psqlUser = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, github_user_name, first_name, middle_name, last_name, rank, streak, created_at, updated_at`

var userSortColumns = map[string]bool{
	"created_at":       true,
	"updated_at":       true,
	"first_name":       true,
	"last_name":        true,
	"github_user_name": true,
	"streak":           true,
}

// autocompleteFields limits prefix search to the columns exposed in the
// autocomplete API.
var autocompleteFields = map[string]string{
	"first_name":       "first_name",
	"last_name":        "last_name",
	"github_user_name": "github_user_name",
}

func scanUser(row pgx.Row) (*user.User, error) {
	u := &user.User{}
	err := row.Scan(
		&u.ID,
		&u.GithubUserName,
		&u.FirstName,
		&u.MiddleName,
		&u.LastName,
		&u.Rank,
		&u.Streak,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", "")
		}
		return nil, apperror.NewInternal("failed to scan user row", err)
	}
	return u, nil
}

func scanUsers(rows pgx.Rows) ([]*user.User, error) {
	defer rows.Close()
	users := make([]*user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating user rows", err)
	}
	return users, nil
}

func (r *postgresUserRepo) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.GithubUserName, u.FirstName, u.MiddleName, u.LastName,
		u.Rank, u.Streak, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("user", "github_user_name", u.GithubUserName)
		}
		return apperror.NewInternal("failed to save user", err)
	}
	return nil
}

func (r *postgresUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *postgresUserRepo) FindByGithubUsername(ctx context.Context, username string) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE github_user_name = $1`, username)
	return scanUser(row)
}

func (r *postgresUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	builder := psqlUser.Select(userColumns).
		From("users").
		OrderBy(orderClause(userSortColumns, filter.SortBy, filter.Order)).
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.FirstName != nil {
		builder = builder.Where(sq.ILike{"first_name": "%" + *filter.FirstName + "%"})
	}
	if filter.LastName != nil {
		builder = builder.Where(sq.ILike{"last_name": "%" + *filter.LastName + "%"})
	}
	if filter.GithubUserName != nil {
		builder = builder.Where(sq.ILike{"github_user_name": "%" + *filter.GithubUserName + "%"})
	}
	if filter.Rank != nil {
		builder = builder.Where(sq.Eq{"rank": *filter.Rank})
	}
	if filter.MinStreak != nil {
		builder = builder.Where(sq.GtOrEq{"streak": *filter.MinStreak})
	}
	if filter.MaxStreak != nil {
		builder = builder.Where(sq.LtOrEq{"streak": *filter.MaxStreak})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build user list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query users", err)
	}
	return scanUsers(rows)
}

func (r *postgresUserRepo) Autocomplete(ctx context.Context, query, field string, limit int) ([]*user.User, error) {
	column, ok := autocompleteFields[field]
	if !ok {
		return nil, apperror.NewInvalidInput("unsupported autocomplete field: "+field, nil)
	}
	if limit <= 0 {
		limit = 10
	}

	sql, args, err := psqlUser.Select(userColumns).
		From("users").
		Where(sq.ILike{column: query + "%"}).
		OrderBy(column + " asc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build autocomplete query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query autocomplete users", err)
	}
	return scanUsers(rows)
}

func (r *postgresUserRepo) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users SET
			github_user_name = $2, first_name = $3, middle_name = $4, last_name = $5,
			rank = $6, streak = $7, updated_at = $8
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		u.ID, u.GithubUserName, u.FirstName, u.MiddleName, u.LastName,
		u.Rank, u.Streak, u.UpdatedAt,
	)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("user", "github_user_name", u.GithubUserName)
		}
		return apperror.NewInternal("failed to update user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("user", u.ID.String())
	}
	return nil
}

func (r *postgresUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete user", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("user", id.String())
	}
	return nil
}
