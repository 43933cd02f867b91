// Package treedb provides a small client for a path-addressed JSON document
// tree. The backing store has no server-side query capability: every lookup
// beyond get-by-path is done by listing a collection and filtering in memory.
package treedb

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by Client.Get when no value exists at the path.
var ErrNotFound = errors.New("treedb: not found")

// Entry is one child of a collection node.
type Entry struct {
	Key  string
	Data json.RawMessage
}

// Transport is the raw document-tree protocol: get/put/post/delete over
// paths, plus a compare-and-swap update. A missing node reads as JSON null.
type Transport interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Put(ctx context.Context, path string, value interface{}) error
	Post(ctx context.Context, path string, value interface{}) (string, error)
	Delete(ctx context.Context, path string) error
	Txn(ctx context.Context, path string, fn func(current json.RawMessage) (interface{}, error)) error
}

func isNull(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var probe interface{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	return probe == nil
}
