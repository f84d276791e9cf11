package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The composer's determinism depends on a stable catalog order, so the
// memory source must hand out products in insertion order every time.
func TestMemorySourceStableOrder(t *testing.T) {
	src := NewMemorySource(DemoCatalog())
	ctx := context.Background()

	first, err := src.Products(ctx)
	require.NoError(t, err)
	second, err := src.Products(ctx)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestMemorySourceReturnsCopy(t *testing.T) {
	src := NewMemorySource(DemoCatalog())
	ctx := context.Background()

	first, err := src.Products(ctx)
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := src.Products(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
