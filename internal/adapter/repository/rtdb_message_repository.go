package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/internal/infrastructure/treedb"
	"marketdz/pkg/errors"
	"marketdz/pkg/logger"
)

const messagesPath = "messages"

type rtdbMessageRepository struct {
	db  *treedb.Client
	ids *idAllocator
}

func NewRTDBMessageRepository(db *treedb.Client) repository.MessageRepository {
	return &rtdbMessageRepository{db: db, ids: newIDAllocator(db)}
}

func messagePath(id int) string {
	return messagesPath + "/" + strconv.Itoa(id)
}

func (r *rtdbMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	id, err := r.ids.Next(ctx, messagesPath)
	if err != nil {
		return errors.Internal("Failed to allocate message id", err)
	}
	message.ID = id
	if err := r.db.Set(ctx, messagePath(id), message); err != nil {
		return errors.Internal("Failed to create message", err)
	}
	return nil
}

func (r *rtdbMessageRepository) GetByID(ctx context.Context, id int) (*entity.Message, error) {
	var message entity.Message
	if err := r.db.Get(ctx, messagePath(id), &message); err != nil {
		if err == treedb.ErrNotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}
	message.ID = id
	return &message, nil
}

func (r *rtdbMessageRepository) ListForUser(ctx context.Context, userID int) ([]entity.Message, error) {
	entries, err := r.db.List(ctx, messagesPath)
	if err != nil {
		return nil, errors.Internal("Failed to list messages", err)
	}
	var messages []entity.Message
	for _, e := range entries {
		var message entity.Message
		if err := json.Unmarshal(e.Data, &message); err != nil {
			logger.Warn("Skipping malformed message record at key %s: %v", e.Key, err)
			continue
		}
		if message.SenderID != userID && message.ReceiverID != userID {
			continue
		}
		if id, err := strconv.Atoi(e.Key); err == nil {
			message.ID = id
		}
		messages = append(messages, message)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *rtdbMessageRepository) Update(ctx context.Context, message *entity.Message) error {
	if err := r.db.Set(ctx, messagePath(message.ID), message); err != nil {
		return errors.Internal("Failed to update message", err)
	}
	return nil
}

func (r *rtdbMessageRepository) Delete(ctx context.Context, id int) error {
	if err := r.db.Delete(ctx, messagePath(id)); err != nil {
		return errors.Internal("Failed to delete message", err)
	}
	return nil
}
