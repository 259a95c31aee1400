package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToolsDropsUnknownValues(t *testing.T) {
	got := ParseTools([]string{"go", "made-up-tool", "python"})
	assert.Equal(t, []Tool{ToolGo, ToolPython}, got)
}

func TestParseToolsNilOnNothingValid(t *testing.T) {
	assert.Nil(t, ParseTools(nil))
	assert.Nil(t, ParseTools([]string{}))
	assert.Nil(t, ParseTools([]string{"nope", "also-nope"}))
}

func TestParseToolIsCaseSensitive(t *testing.T) {
	_, ok := ParseTool("Go")
	assert.False(t, ok)
	tool, ok := ParseTool("go")
	assert.True(t, ok)
	assert.Equal(t, ToolGo, tool)
}

func TestToolsRoundTripThroughStrings(t *testing.T) {
	ts := []Tool{ToolRust, ToolPostgreSQL}
	assert.Equal(t, ts, ToolsFromStrings(ToolsToStrings(ts)))
	assert.Nil(t, ToolsToStrings(nil))
	assert.Nil(t, ToolsFromStrings(nil))
}

func TestParseDomainsDropsUnknownValues(t *testing.T) {
	got := ParseDomains([]string{"backend", "quantum", "ml"})
	assert.Equal(t, []Domain{DomainBackend, DomainML}, got)
	assert.Nil(t, ParseDomains([]string{"quantum"}))
}

func TestParseTagCategory(t *testing.T) {
	for _, valid := range []string{"fundamental", "intermediate", "advanced"} {
		got, ok := ParseTagCategory(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, TagCategory(valid), got)
	}
	_, ok := ParseTagCategory("expert")
	assert.False(t, ok)
}

func TestParseRank(t *testing.T) {
	got, ok := ParseRank("gold")
	assert.True(t, ok)
	assert.Equal(t, RankGold, got)
	_, ok = ParseRank("diamond")
	assert.False(t, ok)
}

func TestParseEmploymentAndLocationTypes(t *testing.T) {
	et, ok := ParseEmploymentType("internship")
	assert.True(t, ok)
	assert.Equal(t, EmploymentInternship, et)
	_, ok = ParseEmploymentType("gig")
	assert.False(t, ok)

	lt, ok := ParseWorkLocationType("hybrid")
	assert.True(t, ok)
	assert.Equal(t, WorkLocationHybrid, lt)
	_, ok = ParseWorkLocationType("office")
	assert.False(t, ok)
}

func TestParseCurrency(t *testing.T) {
	c, ok := ParseCurrency("SGD")
	assert.True(t, ok)
	assert.Equal(t, CurrencySGD, c)
	// Stored values are upper case; no normalization happens here.
	_, ok = ParseCurrency("sgd")
	assert.False(t, ok)
}
