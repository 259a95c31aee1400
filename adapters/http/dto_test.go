package http

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/education"
	"github.com/dijkstra-edu/dataforge/internal/domain/location"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
)

func TestFullProfileDTOKeysAndNullSafety(t *testing.T) {
	out := &profileUC.FullProfileOutput{
		Profile: &profile.Profile{ID: uuid.New(), UserID: uuid.New()},
	}

	body, err := json.Marshal(ToFullProfileDTO(out))
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))

	for _, key := range []string{
		"profile", "education", "work_experience", "certifications",
		"publications", "volunteering", "projects", "leetcode",
	} {
		assert.Contains(t, decoded, key)
	}

	// Collections serialize as empty arrays, never null.
	for _, key := range []string{
		"education", "work_experience", "certifications",
		"publications", "volunteering", "projects",
	} {
		assert.JSONEq(t, "[]", string(decoded[key]), "key %s", key)
	}

	assert.Equal(t, "null", string(decoded["leetcode"]))
}

func TestEducationItemDTOShadowsLocationReference(t *testing.T) {
	locID := uuid.New()
	entry := &education.Education{
		ID:         uuid.New(),
		ProfileID:  uuid.New(),
		School:     "NUS",
		LocationID: locID,
	}
	loc := &location.Location{ID: locID, City: "Singapore", Country: "Singapore"}

	body, err := json.Marshal(EducationItemDTO{Education: entry, Location: loc})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))

	// The resolved object replaces the raw id under the location key.
	var gotLoc map[string]any
	require.NoError(t, json.Unmarshal(decoded["location"], &gotLoc))
	assert.Equal(t, "Singapore", gotLoc["city"])
	assert.Equal(t, "NUS", jsonString(t, decoded["school"]))
}

func TestEducationItemDTOUnresolvedLocationIsNull(t *testing.T) {
	entry := &education.Education{ID: uuid.New(), LocationID: uuid.New()}

	body, err := json.Marshal(EducationItemDTO{Education: entry, Location: nil})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "null", string(decoded["location"]))
}

func jsonString(t *testing.T, raw json.RawMessage) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(raw, &s))
	return s
}
