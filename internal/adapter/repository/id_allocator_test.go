package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdz/internal/infrastructure/treedb"
)

func newTestDB() *treedb.Client {
	return treedb.NewClient(treedb.NewMemoryTransport())
}

func TestIDAllocatorEmptyCollectionStartsAtOne(t *testing.T) {
	db := newTestDB()
	ids := newIDAllocator(db)

	id, err := ids.Next(context.Background(), "widgets")
	assert.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestIDAllocatorUsesMaxPlusOne(t *testing.T) {
	db := newTestDB()
	ctx := context.Background()

	// Sparse ids: the next allocation is max+1, not len+1.
	for _, id := range []string{"1", "3", "7"} {
		assert.NoError(t, db.Set(ctx, "widgets/"+id, map[string]string{"id": id}))
	}

	ids := newIDAllocator(db)
	id, err := ids.Next(ctx, "widgets")
	assert.NoError(t, err)
	assert.Equal(t, 8, id)
}

func TestIDAllocatorMonotonicAcrossCalls(t *testing.T) {
	db := newTestDB()
	ids := newIDAllocator(db)
	ctx := context.Background()

	seen := map[int]bool{}
	last := 0
	for i := 0; i < 5; i++ {
		id, err := ids.Next(ctx, "widgets")
		assert.NoError(t, err)
		assert.False(t, seen[id])
		assert.Greater(t, id, last)
		seen[id] = true
		last = id
	}
}

func TestIDAllocatorCounterSurvivesDeletes(t *testing.T) {
	db := newTestDB()
	ids := newIDAllocator(db)
	ctx := context.Background()

	first, err := ids.Next(ctx, "widgets")
	assert.NoError(t, err)
	assert.NoError(t, db.Set(ctx, "widgets/1", map[string]string{"id": "1"}))
	assert.NoError(t, db.Delete(ctx, "widgets/1"))

	// The counter keeps the sequence moving even after the record that held
	// the max id is gone.
	second, err := ids.Next(ctx, "widgets")
	assert.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestIDAllocatorSeparateCollections(t *testing.T) {
	db := newTestDB()
	ids := newIDAllocator(db)
	ctx := context.Background()

	a, err := ids.Next(ctx, "widgets")
	assert.NoError(t, err)
	b, err := ids.Next(ctx, "gadgets")
	assert.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
