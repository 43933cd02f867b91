package treedb

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingTransport records how many raw operations hit the backing store.
type countingTransport struct {
	*MemoryTransport
	puts int
	gets int
}

func (t *countingTransport) Put(ctx context.Context, path string, value interface{}) error {
	t.puts++
	return t.MemoryTransport.Put(ctx, path, value)
}

func (t *countingTransport) Get(ctx context.Context, path string) (json.RawMessage, error) {
	t.gets++
	return t.MemoryTransport.Get(ctx, path)
}

func TestClientInitializesOnce(t *testing.T) {
	transport := &countingTransport{MemoryTransport: NewMemoryTransport()}
	client := NewClient(transport)
	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "users/1", map[string]string{"name": "a"}))
	assert.NoError(t, client.Set(ctx, "users/2", map[string]string{"name": "b"}))

	// Two payload puts plus exactly one sentinel write, regardless of how
	// many operations follow.
	assert.Equal(t, 3, transport.puts)
	assert.Equal(t, 1, transport.gets)
}

type failingOnceTransport struct {
	*MemoryTransport
	failed bool
}

func (t *failingOnceTransport) Put(ctx context.Context, path string, value interface{}) error {
	if !t.failed {
		t.failed = true
		return errors.New("transient network failure")
	}
	return t.MemoryTransport.Put(ctx, path, value)
}

func TestClientRetriesFailedInitialization(t *testing.T) {
	transport := &failingOnceTransport{MemoryTransport: NewMemoryTransport()}
	client := NewClient(transport)
	ctx := context.Background()

	err := client.Set(ctx, "users/1", map[string]string{"name": "a"})
	assert.Error(t, err)

	// A failed check is not cached; the next call tries again and succeeds.
	assert.NoError(t, client.Set(ctx, "users/1", map[string]string{"name": "a"}))
}

func TestClientGetNotFound(t *testing.T) {
	client := NewClient(NewMemoryTransport())

	var out map[string]string
	err := client.Get(context.Background(), "users/999", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientSetGetRoundTrip(t *testing.T) {
	client := NewClient(NewMemoryTransport())
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	assert.NoError(t, client.Set(ctx, "records/7", record{Name: "x", Count: 3}))

	var out record
	assert.NoError(t, client.Get(ctx, "records/7", &out))
	assert.Equal(t, record{Name: "x", Count: 3}, out)
}

func TestClientListNumericKeyOrder(t *testing.T) {
	client := NewClient(NewMemoryTransport())
	ctx := context.Background()

	for _, id := range []string{"10", "2", "1"} {
		assert.NoError(t, client.Set(ctx, "items/"+id, map[string]string{"id": id}))
	}

	entries, err := client.List(ctx, "items")
	assert.NoError(t, err)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	assert.Equal(t, []string{"1", "2", "10"}, keys)
}

func TestClientListMissingNodeIsEmpty(t *testing.T) {
	client := NewClient(NewMemoryTransport())

	entries, err := client.List(context.Background(), "nothing/here")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClientListArrayForm(t *testing.T) {
	// Dense integer-keyed collections come back from the store as JSON
	// arrays, possibly with null holes.
	transport := NewMemoryTransport()
	client := NewClient(transport)
	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "arr", []interface{}{
		nil,
		map[string]string{"id": "1"},
		map[string]string{"id": "2"},
	}))

	entries, err := client.List(ctx, "arr")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].Key)
	assert.Equal(t, "2", entries[1].Key)
}

func TestClientUpdateFields(t *testing.T) {
	client := NewClient(NewMemoryTransport())
	ctx := context.Background()

	assert.NoError(t, client.Set(ctx, "users/1", map[string]interface{}{"name": "a", "city": "Oran"}))
	assert.NoError(t, client.UpdateFields(ctx, "users/1", map[string]interface{}{"city": "Alger"}))

	var out map[string]string
	assert.NoError(t, client.Get(ctx, "users/1", &out))
	assert.Equal(t, "a", out["name"])
	assert.Equal(t, "Alger", out["city"])
}

func TestClientDeleteAbsentNode(t *testing.T) {
	client := NewClient(NewMemoryTransport())
	assert.NoError(t, client.Delete(context.Background(), "never/existed"))
}

func TestClientTxn(t *testing.T) {
	client := NewClient(NewMemoryTransport())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := client.Txn(ctx, "counters/x", func(current json.RawMessage) (interface{}, error) {
			count := 0
			if len(current) > 0 {
				json.Unmarshal(current, &count)
			}
			return count + 1, nil
		})
		assert.NoError(t, err)
	}

	var count int
	assert.NoError(t, client.Get(ctx, "counters/x", &count))
	assert.Equal(t, 3, count)
}
