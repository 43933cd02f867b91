package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"marketdz/internal/infrastructure/treedb"
)

// idAllocator hands out integer ids for a collection. The observable sequence
// is max-existing-id + 1 (an empty collection starts at 1), but the bump runs
// as a compare-and-swap on a per-collection counter node so two concurrent
// creates cannot be handed the same id.
type idAllocator struct {
	db *treedb.Client
}

func newIDAllocator(db *treedb.Client) *idAllocator {
	return &idAllocator{db: db}
}

func counterPath(collection string) string {
	return "meta/counters/" + collection
}

// Next allocates the next id for collection. The collection is scanned for
// its current maximum key, then the counter node is transactionally raised to
// max(counter, scanned max) + 1.
func (a *idAllocator) Next(ctx context.Context, collection string) (int, error) {
	entries, err := a.db.List(ctx, collection)
	if err != nil {
		return 0, fmt.Errorf("scan %s for max id: %w", collection, err)
	}
	scannedMax := maxKey(entries)

	var allocated int
	err = a.db.Txn(ctx, counterPath(collection), func(current json.RawMessage) (interface{}, error) {
		counter := 0
		if len(current) > 0 {
			if err := json.Unmarshal(current, &counter); err != nil {
				counter = 0
			}
		}
		if scannedMax > counter {
			counter = scannedMax
		}
		allocated = counter + 1
		return allocated, nil
	})
	if err != nil {
		return 0, fmt.Errorf("bump counter for %s: %w", collection, err)
	}
	return allocated, nil
}

// maxKey returns the largest integer key among entries, ignoring keys that do
// not parse. Zero when there are none.
func maxKey(entries []treedb.Entry) int {
	max := 0
	for _, e := range entries {
		id, err := strconv.Atoi(e.Key)
		if err != nil {
			continue
		}
		if id > max {
			max = id
		}
	}
	return max
}
