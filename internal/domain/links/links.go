package links

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Links is the single row of external handles and contact addresses
// kept per user. The LeetCode username here is what the sync endpoints
// resolve through when callers key by external identity.
type Links struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	GithubUserName   *string   `json:"github_user_name"`
	LinkedinUserName *string   `json:"linkedin_user_name"`
	LeetcodeUserName *string   `json:"leetcode_user_name"`
	OrcidID          *string   `json:"orcid_id"`
	PrimaryEmail     *string   `json:"primary_email"`
	SecondaryEmail   *string   `json:"secondary_email"`
	SchoolEmail      *string   `json:"school_email"`
	WorkEmail        *string   `json:"work_email"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, l *Links) error
	FindByID(ctx context.Context, id uuid.UUID) (*Links, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Links, error)
	Update(ctx context.Context, l *Links) error
	Delete(ctx context.Context, id uuid.UUID) error
}
