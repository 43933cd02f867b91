package treedb

import (
	"context"
	"encoding/json"

	"firebase.google.com/go/v4/db"
)

// firebaseTransport speaks the tree protocol against a Firebase Realtime
// Database instance.
type firebaseTransport struct {
	client *db.Client
}

func NewFirebaseTransport(client *db.Client) Transport {
	return &firebaseTransport{client: client}
}

func (t *firebaseTransport) Get(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := t.client.NewRef(path).Get(ctx, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (t *firebaseTransport) Put(ctx context.Context, path string, value interface{}) error {
	return t.client.NewRef(path).Set(ctx, value)
}

func (t *firebaseTransport) Post(ctx context.Context, path string, value interface{}) (string, error) {
	ref, err := t.client.NewRef(path).Push(ctx, value)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (t *firebaseTransport) Delete(ctx context.Context, path string) error {
	return t.client.NewRef(path).Delete(ctx)
}

func (t *firebaseTransport) Txn(ctx context.Context, path string, fn func(current json.RawMessage) (interface{}, error)) error {
	return t.client.NewRef(path).Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var raw json.RawMessage
		if err := node.Unmarshal(&raw); err != nil {
			return nil, err
		}
		return fn(raw)
	})
}
