package treedb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

// MemoryTransport is an in-process tree for tests and local development. It
// mirrors the store's semantics: values normalize through JSON, missing nodes
// read as null, and writes create intermediate nodes.
type MemoryTransport struct {
	mu   sync.Mutex
	root map[string]interface{}
	seq  int
}

func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{root: make(map[string]interface{})}
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(strings.Trim(path, "/"), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func (t *MemoryTransport) Get(ctx context.Context, path string) (json.RawMessage, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.getLocked(path)
}

func (t *MemoryTransport) getLocked(path string) (json.RawMessage, error) {
	node := interface{}(t.root)
	for _, seg := range splitPath(path) {
		m, ok := node.(map[string]interface{})
		if !ok {
			return json.RawMessage("null"), nil
		}
		node, ok = m[seg]
		if !ok {
			return json.RawMessage("null"), nil
		}
	}
	return json.Marshal(node)
}

func (t *MemoryTransport) Put(ctx context.Context, path string, value interface{}) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.putLocked(path, value)
}

func (t *MemoryTransport) putLocked(path string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var normalized interface{}
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return err
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("treedb: cannot write tree root")
	}
	if normalized == nil {
		t.deleteLocked(path)
		return nil
	}

	node := t.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = normalized
	return nil
}

func (t *MemoryTransport) Post(ctx context.Context, path string, value interface{}) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	key := fmt.Sprintf("-K%08d", t.seq)
	if err := t.putLocked(path+"/"+key, value); err != nil {
		return "", err
	}
	return key, nil
}

func (t *MemoryTransport) Delete(ctx context.Context, path string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deleteLocked(path)
	return nil
}

func (t *MemoryTransport) deleteLocked(path string) {
	segments := splitPath(path)
	if len(segments) == 0 {
		t.root = make(map[string]interface{})
		return
	}

	node := t.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			return
		}
		node = child
	}
	delete(node, segments[len(segments)-1])
}

func (t *MemoryTransport) Txn(ctx context.Context, path string, fn func(current json.RawMessage) (interface{}, error)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, err := t.getLocked(path)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return t.putLocked(path, next)
}
