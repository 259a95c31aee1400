package user

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

type User struct {
	ID             uuid.UUID  `json:"id"`
	GithubUserName string     `json:"github_user_name"`
	FirstName      string     `json:"first_name"`
	MiddleName     *string    `json:"middle_name"`
	LastName       string     `json:"last_name"`
	Rank           vocab.Rank `json:"rank"`
	Streak         *int       `json:"streak"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ListFilter narrows List results; nil fields are not applied.
type ListFilter struct {
	FirstName      *string
	LastName       *string
	GithubUserName *string
	Rank           *vocab.Rank
	MinStreak      *int
	MaxStreak      *int
	SortBy         string
	Order          string
	Limit          int
	Offset         int
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByGithubUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, error)
	Autocomplete(ctx context.Context, query, field string, limit int) ([]*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
