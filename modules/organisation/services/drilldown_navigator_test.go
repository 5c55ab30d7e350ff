package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrillDownNavigator_RequiresInit(t *testing.T) {
	t.Parallel()

	n := NewDrillDownNavigator()
	assert.False(t, n.Initialized())

	require.ErrorIs(t, n.DrillDown(LevelResult{}), ErrNavigatorNotInitialized)
	require.ErrorIs(t, n.BreadcrumbClick(0), ErrNavigatorNotInitialized)

	_, err := n.CurrentLevel()
	require.ErrorIs(t, err, ErrNavigatorNotInitialized)
}

func TestDrillDownNavigator_DrillAndCurrent(t *testing.T) {
	t.Parallel()

	n := NewDrillDownNavigator()
	n.Init(LevelResult{Level: 0, Title: OrganizationTitle, Type: LevelOrganization})

	require.NoError(t, n.DrillDown(LevelResult{Level: 1, Title: "HQ", Type: LevelLocation}))
	require.NoError(t, n.DrillDown(LevelResult{Level: 2, Title: "Engineering", Type: LevelDepartment}))

	assert.Equal(t, 3, n.Depth())

	current, err := n.CurrentLevel()
	require.NoError(t, err)
	assert.Equal(t, "Engineering", current.Title)
}

func TestDrillDownNavigator_BreadcrumbTruncates(t *testing.T) {
	t.Parallel()

	n := NewDrillDownNavigator()
	n.Init(LevelResult{Level: 0, Title: OrganizationTitle})
	require.NoError(t, n.DrillDown(LevelResult{Level: 1, Title: "HQ"}))
	require.NoError(t, n.DrillDown(LevelResult{Level: 2, Title: "Engineering"}))

	require.NoError(t, n.BreadcrumbClick(1))
	assert.Equal(t, 2, n.Depth())

	current, err := n.CurrentLevel()
	require.NoError(t, err)
	assert.Equal(t, "HQ", current.Title)

	// Drilling again after truncation replaces the discarded tail.
	require.NoError(t, n.DrillDown(LevelResult{Level: 2, Title: "Operations"}))
	current, err = n.CurrentLevel()
	require.NoError(t, err)
	assert.Equal(t, "Operations", current.Title)
}

func TestDrillDownNavigator_BreadcrumbClamps(t *testing.T) {
	t.Parallel()

	n := NewDrillDownNavigator()
	n.Init(LevelResult{Level: 0, Title: OrganizationTitle})
	require.NoError(t, n.DrillDown(LevelResult{Level: 1, Title: "HQ"}))

	require.NoError(t, n.BreadcrumbClick(99))
	assert.Equal(t, 2, n.Depth())

	require.NoError(t, n.BreadcrumbClick(-5))
	assert.Equal(t, 1, n.Depth())

	current, err := n.CurrentLevel()
	require.NoError(t, err)
	assert.Equal(t, OrganizationTitle, current.Title)
}

func TestDrillDownNavigator_InitResets(t *testing.T) {
	t.Parallel()

	n := NewDrillDownNavigator()
	n.Init(LevelResult{Level: 0, Title: OrganizationTitle})
	require.NoError(t, n.DrillDown(LevelResult{Level: 1, Title: "HQ"}))

	n.Init(LevelResult{Level: 0, Title: OrganizationTitle})
	assert.Equal(t, 1, n.Depth())
}

func TestDrillDownNavigator_PathIsCopy(t *testing.T) {
	t.Parallel()

	n := NewDrillDownNavigator()
	n.Init(LevelResult{Level: 0, Title: OrganizationTitle})

	path := n.Path()
	require.Len(t, path, 1)
	path[0].Title = "mutated"

	current, err := n.CurrentLevel()
	require.NoError(t, err)
	assert.Equal(t, OrganizationTitle, current.Title)
}
