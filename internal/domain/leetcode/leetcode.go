// Package leetcode models the synced snapshot of a user's LeetCode
// presence: one stats record per profile plus additively-managed badge
// and tag child rows.
package leetcode

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
)

// Record is the per-profile LeetCode aggregate. Every sync overwrites
// it wholesale; no history is kept. Scalar pointers distinguish "no
// data upstream" (nil) from a real zero.
type Record struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`

	Username *string      `json:"lc_username"`
	RealName *string      `json:"real_name"`
	AboutMe  *string      `json:"about_me"`
	School   *string      `json:"school"`
	Websites *string      `json:"websites"`
	Country  *string      `json:"country"`
	Company  *string      `json:"company"`
	JobTitle *string      `json:"job_title"`
	Avatar   *string      `json:"avatar"`
	SkillTags []vocab.Tool `json:"skill_tags"`

	Ranking       *int `json:"ranking"`
	Reputation    *int `json:"reputation"`
	SolutionCount *int `json:"solution_count"`

	TotalProblemsSolved  *int `json:"total_problems_solved"`
	EasyProblemsSolved   *int `json:"easy_problems_solved"`
	MediumProblemsSolved *int `json:"medium_problems_solved"`
	HardProblemsSolved   *int `json:"hard_problems_solved"`

	// nil when upstream reported nothing, never an empty slice.
	LanguageProblemCount []LanguageCount `json:"language_problem_count"`

	AttendedContests  *int     `json:"attended_contests"`
	CompetitionRating *float64 `json:"competition_rating"`
	GlobalRanking     *int     `json:"global_ranking"`
	TotalParticipants *int     `json:"total_participants"`
	TopPercentage     *float64 `json:"top_percentage"`
	CompetitionBadge  *string  `json:"competition_badge"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LanguageCount struct {
	Language       string `json:"language"`
	ProblemsSolved int    `json:"problemsSolved"`
}

type Badge struct {
	ID        uuid.UUID `json:"id"`
	RecordID  uuid.UUID `json:"leetcode_id"`
	Name      *string   `json:"name"`
	Icon      *string   `json:"icon"`
	HoverText *string   `json:"hover_text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Tag struct {
	ID             uuid.UUID          `json:"id"`
	RecordID       uuid.UUID          `json:"leetcode_id"`
	TagCategory    *vocab.TagCategory `json:"tag_category"`
	TagName        *string            `json:"tag_name"`
	ProblemsSolved *int               `json:"problems_solved"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type ListFilter struct {
	ProfileID      *uuid.UUID
	Username       *string
	Country        *string
	Company        *string
	MinTotalSolved *int
	MaxTotalSolved *int
	MinRating      *float64
	MaxRating      *float64
	SortBy         string
	Order          string
	Limit          int
	Offset         int
}

type Repository interface {
	Create(ctx context.Context, r *Record) error
	Update(ctx context.Context, r *Record) error
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*Record, error)
	List(ctx context.Context, filter ListFilter) ([]*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BadgeRepository interface {
	Create(ctx context.Context, b *Badge) error
	FindByID(ctx context.Context, id uuid.UUID) (*Badge, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*Badge, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TagRepository interface {
	Create(ctx context.Context, t *Tag) error
	FindByID(ctx context.Context, id uuid.UUID) (*Tag, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*Tag, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
