package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"marketdz/pkg/errors"
)

func newMessageUseCaseForTest(t *testing.T) (*MessageUseCase, *testEnv) {
	env := newTestEnv(t)
	return NewMessageUseCase(env.messages, env.users, env.blocks), env
}

func TestSendAndListMessages(t *testing.T) {
	uc, env := newMessageUseCaseForTest(t)
	ctx := context.Background()
	a := env.createUser(t, "a@example.com")
	b := env.createUser(t, "b@example.com")

	sent, err := uc.Send(ctx, a.ID, SendMessageInput{ReceiverID: b.ID, Content: "hello"})
	assert.NoError(t, err)
	assert.False(t, sent.IsRead)
	assert.False(t, sent.Timestamp.IsZero())

	inbox, err := uc.Inbox(ctx, b.ID)
	assert.NoError(t, err)
	assert.Len(t, inbox, 1)
	assert.Equal(t, "hello", inbox[0].Content)

	outbox, err := uc.Sent(ctx, a.ID)
	assert.NoError(t, err)
	assert.Len(t, outbox, 1)

	// Sender's inbox stays empty.
	inbox, err = uc.Inbox(ctx, a.ID)
	assert.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestSendToSelfRejected(t *testing.T) {
	uc, env := newMessageUseCaseForTest(t)
	a := env.createUser(t, "a@example.com")

	_, err := uc.Send(context.Background(), a.ID, SendMessageInput{ReceiverID: a.ID, Content: "hi me"})
	assert.True(t, errors.Is(err, "VALIDATION"))
}

func TestSendBlockedEitherDirection(t *testing.T) {
	uc, env := newMessageUseCaseForTest(t)
	ctx := context.Background()
	a := env.createUser(t, "a@example.com")
	b := env.createUser(t, "b@example.com")

	security := NewSecurityUseCase(env.reports, env.blocks, env.items, env.users)
	_, err := security.BlockUser(ctx, b.ID, a.ID, "")
	assert.NoError(t, err)

	// The blocked user cannot message the blocker, and vice versa.
	_, err = uc.Send(ctx, a.ID, SendMessageInput{ReceiverID: b.ID, Content: "hi"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	_, err = uc.Send(ctx, b.ID, SendMessageInput{ReceiverID: a.ID, Content: "hi"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkReadOnlyByReceiver(t *testing.T) {
	uc, env := newMessageUseCaseForTest(t)
	ctx := context.Background()
	a := env.createUser(t, "a@example.com")
	b := env.createUser(t, "b@example.com")

	sent, err := uc.Send(ctx, a.ID, SendMessageInput{ReceiverID: b.ID, Content: "hello"})
	assert.NoError(t, err)

	_, err = uc.MarkRead(ctx, a.ID, sent.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	read, err := uc.MarkRead(ctx, b.ID, sent.ID)
	assert.NoError(t, err)
	assert.True(t, read.IsRead)
}

func TestDeleteMessageByParticipantOnly(t *testing.T) {
	uc, env := newMessageUseCaseForTest(t)
	ctx := context.Background()
	a := env.createUser(t, "a@example.com")
	b := env.createUser(t, "b@example.com")
	stranger := env.createUser(t, "c@example.com")

	sent, err := uc.Send(ctx, a.ID, SendMessageInput{ReceiverID: b.ID, Content: "hello"})
	assert.NoError(t, err)

	err = uc.Delete(ctx, stranger.ID, sent.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	assert.NoError(t, uc.Delete(ctx, a.ID, sent.ID))

	_, err = uc.GetByID(ctx, b.ID, sent.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
