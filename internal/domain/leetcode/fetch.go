package leetcode

import "context"

// FetchError carries the raw upstream failure detail (transport error,
// non-2xx status, or a GraphQL errors array) back to the caller as a
// value. The client makes exactly one attempt and never panics or
// retries; callers decide how to surface the failure.
type FetchError struct {
	Detail string
}

func (e *FetchError) Error() string {
	return "leetcode fetch failed: " + e.Detail
}

// Fetcher is the outbound port for the LeetCode GraphQL API. Any error
// returned is a *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, username string) (*RawProfile, error)
}

// RawProfile merges the two top-level payload sections (matchedUser and
// userContestRanking) into one normalized record. Nested arrays are
// passed through untouched; reshaping them is the sync use case's job.
type RawProfile struct {
	Username             string
	Profile              RawProfileNode
	SubmitStats          []RawSubmissionCount
	Badges               []RawBadge
	LanguageProblemCount []RawLanguageCount
	TagProblemCounts     RawTagProblemCounts
	ContestRanking       *RawContestRanking
}

type RawProfileNode struct {
	RealName      *string  `json:"realName"`
	AboutMe       *string  `json:"aboutMe"`
	School        *string  `json:"school"`
	Websites      []string `json:"websites"`
	CountryName   *string  `json:"countryName"`
	Company       *string  `json:"company"`
	JobTitle      *string  `json:"jobTitle"`
	SkillTags     []string `json:"skillTags"`
	Ranking       *int     `json:"ranking"`
	UserAvatar    *string  `json:"userAvatar"`
	Reputation    *int     `json:"reputation"`
	SolutionCount *int     `json:"solutionCount"`
}

type RawSubmissionCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type RawBadge struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	HoverText *string `json:"hoverText"`
}

type RawLanguageCount struct {
	LanguageName   string `json:"languageName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

type RawTagCount struct {
	TagName        string `json:"tagName"`
	ProblemsSolved int    `json:"problemsSolved"`
}

type RawTagProblemCounts struct {
	Advanced     []RawTagCount `json:"advanced"`
	Intermediate []RawTagCount `json:"intermediate"`
	Fundamental  []RawTagCount `json:"fundamental"`
}

type RawContestRanking struct {
	AttendedContestsCount *int     `json:"attendedContestsCount"`
	Rating                *float64 `json:"rating"`
	GlobalRanking         *int     `json:"globalRanking"`
	TotalParticipants     *int     `json:"totalParticipants"`
	TopPercentage         *float64 `json:"topPercentage"`
	Badge                 *struct {
		Name string `json:"name"`
	} `json:"badge"`
}
