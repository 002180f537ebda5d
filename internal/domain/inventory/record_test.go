//go:build unit

package inventory_test

import (
	"testing"

	"storefront-api/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		rec, err := inventory.NewRecord(uuid.New(), 50, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(50), rec.Quantity())
		assert.Equal(t, int64(10), rec.MinimumStock())
		assert.NotEqual(t, uuid.Nil, rec.ID())
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := inventory.NewRecord(uuid.New(), -1, 0)
		assert.ErrorIs(t, err, inventory.ErrNegativeQuantity)
	})

	t.Run("negative minimum rejected", func(t *testing.T) {
		_, err := inventory.NewRecord(uuid.New(), 0, -1)
		assert.ErrorIs(t, err, inventory.ErrNegativeMinimum)
	})
}

func TestRecordAdjust(t *testing.T) {
	rec, err := inventory.NewRecord(uuid.New(), 10, 5)
	require.NoError(t, err)

	require.NoError(t, rec.Adjust(-10))
	assert.Equal(t, int64(0), rec.Quantity())

	assert.ErrorIs(t, rec.Adjust(-1), inventory.ErrNegativeQuantity)
	assert.Equal(t, int64(0), rec.Quantity())

	require.NoError(t, rec.Adjust(3))
	assert.Equal(t, int64(3), rec.Quantity())
	assert.True(t, rec.BelowMinimum())

	require.NoError(t, rec.Adjust(2))
	assert.False(t, rec.BelowMinimum())
}
