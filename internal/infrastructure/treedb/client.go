package treedb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"marketdz/pkg/logger"
)

// Client wraps a Transport with typed operations and a one-time connectivity
// check. Every call is a full network round trip; there is no local cache, so
// callers that need consistency across several reads must fetch once and
// reuse the value.
type Client struct {
	transport Transport

	mu          sync.Mutex
	initialized bool
}

func NewClient(transport Transport) *Client {
	return &Client{transport: transport}
}

// ensureInitialized performs a write+read round trip against a sentinel path
// exactly once. A failed attempt is retried by the next caller; only one
// attempt runs at a time even under concurrent first calls.
func (c *Client) ensureInitialized(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	logger.Debug("Starting store initialization")

	probe := map[string]string{
		"message": "Connection test: " + time.Now().UTC().Format(time.RFC3339),
		"nonce":   uuid.NewString(),
	}

	if err := c.transport.Put(ctx, "test", probe); err != nil {
		return fmt.Errorf("store connectivity check write failed: %w", err)
	}

	raw, err := c.transport.Get(ctx, "test")
	if err != nil {
		return fmt.Errorf("store connectivity check read failed: %w", err)
	}
	if isNull(raw) {
		return fmt.Errorf("store connectivity check read returned no data")
	}

	c.initialized = true
	logger.Debug("Store connection verified")
	return nil
}

// Get reads the value at path into out. Returns ErrNotFound when the node is
// absent.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	if err := c.ensureInitialized(ctx); err != nil {
		return err
	}

	raw, err := c.transport.Get(ctx, path)
	if err != nil {
		return err
	}
	if isNull(raw) {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

// List returns the children of a collection node in key order. The store
// renders collections with dense integer keys as JSON arrays, so both the
// object and array forms are accepted. A missing node lists as empty.
func (c *Client) List(ctx context.Context, path string) ([]Entry, error) {
	if err := c.ensureInitialized(ctx); err != nil {
		return nil, err
	}

	raw, err := c.transport.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byKey); err == nil {
		entries := make([]Entry, 0, len(byKey))
		for key, data := range byKey {
			if isNull(data) {
				continue
			}
			entries = append(entries, Entry{Key: key, Data: data})
		}
		sortEntries(entries)
		return entries, nil
	}

	var byIndex []json.RawMessage
	if err := json.Unmarshal(raw, &byIndex); err != nil {
		return nil, fmt.Errorf("unexpected collection shape at %s: %w", path, err)
	}
	var entries []Entry
	for i, data := range byIndex {
		if isNull(data) {
			continue
		}
		entries = append(entries, Entry{Key: strconv.Itoa(i), Data: data})
	}
	return entries, nil
}

// Set writes value at path, overwriting any existing node and creating
// intermediate nodes as needed.
func (c *Client) Set(ctx context.Context, path string, value interface{}) error {
	if err := c.ensureInitialized(ctx); err != nil {
		return err
	}
	return c.transport.Put(ctx, path, value)
}

// Add appends value under path with a store-generated key and returns it.
func (c *Client) Add(ctx context.Context, path string, value interface{}) (string, error) {
	if err := c.ensureInitialized(ctx); err != nil {
		return "", err
	}
	return c.transport.Post(ctx, path, value)
}

// UpdateFields overwrites individual child keys of the node at path, leaving
// the rest of the record untouched.
func (c *Client) UpdateFields(ctx context.Context, path string, updates map[string]interface{}) error {
	if err := c.ensureInitialized(ctx); err != nil {
		return err
	}
	for key, value := range updates {
		if err := c.transport.Put(ctx, path+"/"+key, value); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the node at path. Deleting an absent node is not an error.
func (c *Client) Delete(ctx context.Context, path string) error {
	if err := c.ensureInitialized(ctx); err != nil {
		return err
	}
	return c.transport.Delete(ctx, path)
}

// Txn applies a compare-and-swap update to the node at path.
func (c *Client) Txn(ctx context.Context, path string, fn func(current json.RawMessage) (interface{}, error)) error {
	if err := c.ensureInitialized(ctx); err != nil {
		return err
	}
	return c.transport.Txn(ctx, path, fn)
}

// sortEntries orders keys numerically when every key parses as an integer,
// lexicographically otherwise, so integer-id collections list in id order.
func sortEntries(entries []Entry) {
	numeric := true
	for _, e := range entries {
		if _, err := strconv.Atoi(e.Key); err != nil {
			numeric = false
			break
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(entries[i].Key)
			b, _ := strconv.Atoi(entries[j].Key)
			return a < b
		}
		return entries[i].Key < entries[j].Key
	})
}
