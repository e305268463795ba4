package domain

import (
	"sort"
	"strconv"
)

// Cart is the session-scoped mapping from product id (string key, matching
// the session serialization) to a positive quantity. Quantities below one are
// removed rather than stored.
type Cart map[string]int

func NewCart() Cart {
	return make(Cart)
}

// Quantity returns the stored quantity for a product, zero when absent.
func (c Cart) Quantity(productID int64) int {
	return c[strconv.FormatInt(productID, 10)]
}

// SetQuantity stores qty for a product, deleting the entry when qty < 1.
func (c Cart) SetQuantity(productID int64, qty int) {
	key := strconv.FormatInt(productID, 10)
	if qty < 1 {
		delete(c, key)
		return
	}
	c[key] = qty
}

// Remove drops a product line. Removing an absent product is a no-op.
func (c Cart) Remove(productID int64) {
	delete(c, strconv.FormatInt(productID, 10))
}

// Clear empties the cart in place.
func (c Cart) Clear() {
	for key := range c {
		delete(c, key)
	}
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// ProductIDs returns the cart's product ids in ascending order so repeated
// reads of the same cart iterate deterministically. Keys that do not parse as
// int64 are skipped.
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for key := range c {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
