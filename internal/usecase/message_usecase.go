package usecase

import (
	"context"
	"time"

	"marketdz/internal/domain/entity"
	"marketdz/internal/domain/repository"
	"marketdz/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	blockRepo   repository.BlockRepository
}

func NewMessageUseCase(messageRepo repository.MessageRepository, userRepo repository.UserRepository, blockRepo repository.BlockRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		blockRepo:   blockRepo,
	}
}

type SendMessageInput struct {
	ReceiverID    int
	Content       string
	RelatedItemID *int
}

// Send delivers a message from sender to receiver. Delivery is refused when
// either party has blocked the other.
func (uc *MessageUseCase) Send(ctx context.Context, senderID int, input SendMessageInput) (*entity.Message, error) {
	if input.ReceiverID == senderID {
		return nil, errors.Validation("Cannot send a message to yourself")
	}
	if _, err := uc.userRepo.GetByID(ctx, input.ReceiverID); err != nil {
		return nil, err
	}

	for _, pair := range [][2]int{{input.ReceiverID, senderID}, {senderID, input.ReceiverID}} {
		block, err := uc.blockRepo.Find(ctx, pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		if block != nil {
			return nil, errors.Forbidden("Messaging is not available between these users", nil)
		}
	}

	message := &entity.Message{
		SenderID:      senderID,
		ReceiverID:    input.ReceiverID,
		Content:       input.Content,
		Timestamp:     time.Now().UTC(),
		IsRead:        false,
		RelatedItemID: input.RelatedItemID,
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Inbox returns messages received by the user, newest first.
func (uc *MessageUseCase) Inbox(ctx context.Context, userID int) ([]entity.Message, error) {
	all, err := uc.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var received []entity.Message
	for _, m := range all {
		if m.ReceiverID == userID {
			received = append(received, m)
		}
	}
	return received, nil
}

// Sent returns messages sent by the user, newest first.
func (uc *MessageUseCase) Sent(ctx context.Context, userID int) ([]entity.Message, error) {
	all, err := uc.messageRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var sent []entity.Message
	for _, m := range all {
		if m.SenderID == userID {
			sent = append(sent, m)
		}
	}
	return sent, nil
}

// MarkRead flags the message read. Only the receiver may do so.
func (uc *MessageUseCase) MarkRead(ctx context.Context, userID int, messageID int) (*entity.Message, error) {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.ReceiverID != userID {
		return nil, errors.Forbidden("You don't have permission to modify this message", nil)
	}
	if message.IsRead {
		return message, nil
	}
	message.IsRead = true
	if err := uc.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Delete removes the message. Either participant may delete it.
func (uc *MessageUseCase) Delete(ctx context.Context, userID int, messageID int) error {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.SenderID != userID && message.ReceiverID != userID {
		return errors.Forbidden("You don't have permission to delete this message", nil)
	}
	return uc.messageRepo.Delete(ctx, messageID)
}

func (uc *MessageUseCase) GetByID(ctx context.Context, userID int, messageID int) (*entity.Message, error) {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.SenderID != userID && message.ReceiverID != userID {
		return nil, errors.Forbidden("You don't have permission to read this message", nil)
	}
	return message, nil
}
