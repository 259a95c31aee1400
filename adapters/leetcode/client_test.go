package leetcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dijkstra-edu/dataforge/internal/config"
	lc "github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

func newTestFetcher(t *testing.T, handler http.HandlerFunc) lc.Fetcher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var cfg config.Config
	cfg.Leetcode.Endpoint = server.URL
	cfg.Leetcode.Timeout = 2 * time.Second
	return NewGraphQLClient(cfg, logger.NewNop())
}

func TestFetchMergesBothPayloadSections(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "neal_wu", body.Variables["username"])
		assert.Contains(t, body.Query, "matchedUser")
		assert.Contains(t, body.Query, "userContestRanking")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"matchedUser": {
					"username": "neal_wu",
					"profile": {
						"realName": "Neal Wu",
						"countryName": "United States",
						"websites": ["https://nealwu.com"],
						"skillTags": ["python"],
						"ranking": 12
					},
					"submitStatsGlobal": {
						"acSubmissionNum": [
							{"difficulty": "All", "count": 1500},
							{"difficulty": "Easy", "count": 400},
							{"difficulty": "Medium", "count": 700},
							{"difficulty": "Hard", "count": 400}
						]
					},
					"badges": [{"name": "Annual Badge", "icon": "/badge.png", "hoverText": "2024"}],
					"languageProblemCount": [{"languageName": "C++", "problemsSolved": 1400}],
					"tagProblemCounts": {
						"advanced": [{"tagName": "Dynamic Programming", "problemsSolved": 300}],
						"intermediate": [],
						"fundamental": []
					}
				},
				"userContestRanking": {
					"attendedContestsCount": 50,
					"rating": 2700.5,
					"globalRanking": 3,
					"totalParticipants": 500000,
					"topPercentage": 0.01,
					"badge": {"name": "Guardian"}
				}
			}
		}`))
	})

	raw, err := fetcher.Fetch(context.Background(), "neal_wu")

	require.NoError(t, err)
	assert.Equal(t, "neal_wu", raw.Username)
	require.NotNil(t, raw.Profile.RealName)
	assert.Equal(t, "Neal Wu", *raw.Profile.RealName)
	assert.Equal(t, []string{"https://nealwu.com"}, raw.Profile.Websites)
	require.Len(t, raw.SubmitStats, 4)
	assert.Equal(t, lc.RawSubmissionCount{Difficulty: "All", Count: 1500}, raw.SubmitStats[0])
	require.Len(t, raw.Badges, 1)
	require.Len(t, raw.LanguageProblemCount, 1)
	assert.Equal(t, 1400, raw.LanguageProblemCount[0].ProblemsSolved)
	require.Len(t, raw.TagProblemCounts.Advanced, 1)

	require.NotNil(t, raw.ContestRanking)
	require.NotNil(t, raw.ContestRanking.Rating)
	assert.InDelta(t, 2700.5, *raw.ContestRanking.Rating, 0.001)
	require.NotNil(t, raw.ContestRanking.Badge)
	assert.Equal(t, "Guardian", raw.ContestRanking.Badge.Name)
}

func TestFetchMissingUserSections(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"matchedUser": null, "userContestRanking": null}}`))
	})

	raw, err := fetcher.Fetch(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, raw.Username)
	assert.Nil(t, raw.SubmitStats)
	assert.Nil(t, raw.ContestRanking)
}

func TestFetchGraphQLErrorsBecomeFetchError(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors": [{"message": "user does not exist"}]}`))
	})

	_, err := fetcher.Fetch(context.Background(), "ghost")

	require.Error(t, err)
	var fetchErr *lc.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Detail, "user does not exist")
}

func TestFetchTransportFailureBecomesFetchError(t *testing.T) {
	fetcher := newTestFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := fetcher.Fetch(context.Background(), "anyone")

	require.Error(t, err)
	var fetchErr *lc.FetchError
	require.ErrorAs(t, err, &fetchErr)
}
