package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartProductIDsSortedAndClean(t *testing.T) {
	cart := Cart{"30": 1, "2": 2, "100": 3, "bogus": 4}
	assert.Equal(t, []int64{2, 30, 100}, cart.ProductIDs())
}

func TestCartQuantityRoundTrip(t *testing.T) {
	cart := NewCart()
	cart.SetQuantity(42, 3)
	assert.Equal(t, 3, cart.Quantity(42))
	assert.Equal(t, 0, cart.Quantity(7))

	cart.SetQuantity(42, 0)
	assert.True(t, cart.IsEmpty())
}
