package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan(t *testing.T) {
	bases := []string{testPublic, testFallback}

	plan, ok := BuildPlan(testPublic+"/rest/v1/items?select=*", bases)
	require.True(t, ok)
	assert.Equal(t, testPublic, plan.Matched)
	assert.Equal(t, []string{
		testPublic + "/rest/v1/items?select=*",
		testPublic + "/rest/v1/items?select=*",
		testFallback + "/rest/v1/items?select=*",
	}, plan.Attempts)

	plan, ok = BuildPlan(testFallback+"/auth/v1/token", bases)
	require.True(t, ok)
	assert.Equal(t, testFallback, plan.Matched)
	assert.Equal(t, []string{
		testFallback + "/auth/v1/token",
		testFallback + "/auth/v1/token",
		testPublic + "/auth/v1/token",
	}, plan.Attempts)
}

func TestBuildPlan_SingleBase(t *testing.T) {
	plan, ok := BuildPlan(testFallback+"/rest/v1/items", []string{testFallback})
	require.True(t, ok)
	assert.Equal(t, []string{testFallback + "/rest/v1/items", testFallback + "/rest/v1/items"}, plan.Attempts)
}

func TestBuildPlan_NoMatch(t *testing.T) {
	bases := []string{testPublic, testFallback}

	for _, target := range []string{
		"",
		"https://unrelated.example.org/rest/v1",
		"https://api.example.com.evil.org/rest/v1",
		"https://api.example.community/rest",
		"://broken",
	} {
		_, ok := BuildPlan(target, bases)
		assert.False(t, ok, "BuildPlan(%q)", target)
	}

	_, ok := BuildPlan(testPublic+"/x", nil)
	assert.False(t, ok)
}
