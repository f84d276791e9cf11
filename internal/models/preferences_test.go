package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeKeepsUnrelatedFields(t *testing.T) {
	occ := OccasionWork
	base := Preferences{Occasion: &occ}

	st := StyleCasual
	base.Merge(Preferences{Style: &st})

	require.NotNil(t, base.Occasion)
	assert.Equal(t, OccasionWork, *base.Occasion)
	require.NotNil(t, base.Style)
	assert.Equal(t, StyleCasual, *base.Style)
}

func TestMergeOverwritesSameField(t *testing.T) {
	occ := OccasionWork
	base := Preferences{Occasion: &occ}

	newOcc := OccasionParty
	base.Merge(Preferences{Occasion: &newOcc})

	require.NotNil(t, base.Occasion)
	assert.Equal(t, OccasionParty, *base.Occasion)
}

// A set field is never cleared by merging an empty record.
func TestMergeNeverClears(t *testing.T) {
	occ := OccasionGym
	color := "أسود"
	opaque := true
	base := Preferences{Occasion: &occ, Color: &color, Opaque: &opaque}

	base.Merge(Preferences{})

	require.NotNil(t, base.Occasion)
	require.NotNil(t, base.Color)
	require.NotNil(t, base.Opaque)
	assert.Equal(t, OccasionGym, *base.Occasion)
	assert.Equal(t, "أسود", *base.Color)
	assert.True(t, *base.Opaque)
}

func TestEmpty(t *testing.T) {
	assert.True(t, Preferences{}.Empty())

	g := GenderUnspecified
	assert.False(t, Preferences{Gender: &g}.Empty())
}
