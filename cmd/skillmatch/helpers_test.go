package main

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCSV_TrimsAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"python", "sql", "docker"}, splitCSV(" python , sql ,, docker ,"))
}

func TestSplitCSV_EmptyInput(t *testing.T) {
	assert.Empty(t, splitCSV(""))
}

func TestBuildFilters_NoFlagsYieldsNil(t *testing.T) {
	resetSearchFlags(t)

	f, err := buildFilters()

	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestBuildFilters_LocationAndTags(t *testing.T) {
	resetSearchFlags(t)
	searchLocation = "Nairobi"
	searchSDGTags = "SDG7,SDG13"

	f, err := buildFilters()

	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "Nairobi", f.Location)
	assert.Equal(t, []string{"SDG7", "SDG13"}, f.SDGTags)
}

func TestBuildFilters_ValidUUIDs(t *testing.T) {
	resetSearchFlags(t)
	id := uuid.New()
	searchEmployerID = id.String()

	f, err := buildFilters()

	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, id, f.EmployerID)
}

func TestBuildFilters_InvalidUUIDFails(t *testing.T) {
	resetSearchFlags(t)
	searchCareerID = "not-a-uuid"

	_, err := buildFilters()

	assert.ErrorContains(t, err, "career-id")
}

// resetSearchFlags clears the search flag variables between tests.
func resetSearchFlags(t *testing.T) {
	t.Helper()
	searchLocation = ""
	searchSalaryMin = 0
	searchSalaryMax = 0
	searchSDGTags = ""
	searchCareerID = ""
	searchEmployerID = ""
	t.Cleanup(func() {
		searchLocation = ""
		searchSalaryMin = 0
		searchSalaryMax = 0
		searchSDGTags = ""
		searchCareerID = ""
		searchEmployerID = ""
	})
}
