package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListAll(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	a := seedProduct(t, db, "iPhone 15", 999, 10)
	b := seedProduct(t, db, "MacBook Air", 1200.5, 5)

	rows, err := catalog.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// deterministic order by id
	assert.Equal(t, a.ID, rows[0].ID)
	assert.Equal(t, b.ID, rows[1].ID)
}

func TestCatalogSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	seedProduct(t, db, "iPhone 15", 999, 10)
	seedProduct(t, db, "Gaming Mouse", 59.9, 50)

	rows, err := catalog.List(context.Background(), "IPHONE")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "iPhone 15", rows[0].Name)

	rows, err = catalog.List(context.Background(), "mouse")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Gaming Mouse", rows[0].Name)
}

func TestCatalogSearchNoMatches(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	seedProduct(t, db, "iPhone 15", 999, 10)

	rows, err := catalog.List(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCatalogGet(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalog(db)
	p := seedProduct(t, db, "Keyboard", 149, 15)

	got, err := catalog.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, got.Name)

	_, err = catalog.Get(context.Background(), 13371337)
	assert.ErrorIs(t, err, ErrNotFound)
}
