package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProductsAreDeterministic(t *testing.T) {
	defaults := DefaultProducts()
	require.Len(t, defaults, 2)
	assert.Equal(t, int64(1), defaults[0].ID)
	assert.Equal(t, int64(2), defaults[1].ID)
	for _, p := range defaults {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Barcode)
		assert.True(t, p.SellPrice.IsPositive())
		assert.GreaterOrEqual(t, p.QuantityOnHand, 0)
	}
}
