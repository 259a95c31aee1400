// Package leetcode is the outbound adapter for the public LeetCode
// GraphQL API.
package leetcode

import (
	"context"
	"net/http"

	"github.com/machinebox/graphql"
	"go.uber.org/zap"

	"github.com/dijkstra-edu/dataforge/internal/config"
	lc "github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

const profileQuery = `
query getFullUserProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      realName
      aboutMe
      school
      websites
      countryName
      company
      jobTitle
      skillTags
      ranking
      userAvatar
      reputation
      solutionCount
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
    badges {
      name
      icon
      hoverText
    }
    languageProblemCount {
      languageName
      problemsSolved
    }
    tagProblemCounts {
      advanced {
        tagName
        problemsSolved
      }
      intermediate {
        tagName
        problemsSolved
      }
      fundamental {
        tagName
        problemsSolved
      }
    }
  }
  userContestRanking(username: $username) {
    attendedContestsCount
    rating
    globalRanking
    totalParticipants
    topPercentage
    badge {
      name
    }
  }
}`

type graphqlClient struct {
	client *graphql.Client
	log    logger.Logger
}

// NewGraphQLClient builds a Fetcher against the configured endpoint.
// The HTTP client carries the whole request budget; there is no retry.
func NewGraphQLClient(cfg config.Config, log logger.Logger) lc.Fetcher {
	httpClient := &http.Client{Timeout: cfg.Leetcode.Timeout}
	client := graphql.NewClient(cfg.Leetcode.Endpoint, graphql.WithHTTPClient(httpClient))

	log.Info("LeetCode GraphQL client initialized", zap.String("endpoint", cfg.Leetcode.Endpoint))
	return &graphqlClient{client: client, log: log}
}

type matchedUser struct {
	Username             string                 `json:"username"`
	Profile              lc.RawProfileNode      `json:"profile"`
	SubmitStatsGlobal    submitStatsGlobal      `json:"submitStatsGlobal"`
	Badges               []lc.RawBadge          `json:"badges"`
	LanguageProblemCount []lc.RawLanguageCount  `json:"languageProblemCount"`
	TagProblemCounts     lc.RawTagProblemCounts `json:"tagProblemCounts"`
}

type submitStatsGlobal struct {
	ACSubmissionNum []lc.RawSubmissionCount `json:"acSubmissionNum"`
}

// Fetch issues one query and merges the two top-level payload sections
// into a single normalized record. All failures, transport or
// GraphQL-level, come back as a *FetchError value.
func (c *graphqlClient) Fetch(ctx context.Context, username string) (*lc.RawProfile, error) {
	req := graphql.NewRequest(profileQuery)
	req.Var("username", username)

	var resp struct {
		MatchedUser        *matchedUser          `json:"matchedUser"`
		UserContestRanking *lc.RawContestRanking `json:"userContestRanking"`
	}

	if err := c.client.Run(ctx, req, &resp); err != nil {
		c.log.Warn("LeetCode API fetch failed", zap.String("username", username), zap.Error(err))
		return nil, &lc.FetchError{Detail: err.Error()}
	}

	raw := &lc.RawProfile{ContestRanking: resp.UserContestRanking}
	if mu := resp.MatchedUser; mu != nil {
		raw.Username = mu.Username
		raw.Profile = mu.Profile
		raw.SubmitStats = mu.SubmitStatsGlobal.ACSubmissionNum
		raw.Badges = mu.Badges
		raw.LanguageProblemCount = mu.LanguageProblemCount
		raw.TagProblemCounts = mu.TagProblemCounts
	}
	return raw, nil
}
