package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/events"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// MessageService coordinates direct messages between accounts.
type MessageService struct {
	messages   repository.MessageRepository
	dispatcher events.Dispatcher
}

// NewMessageService builds the service.
func NewMessageService(messages repository.MessageRepository, dispatcher events.Dispatcher) *MessageService {
	return &MessageService{messages: messages, dispatcher: dispatcher}
}

// Send creates a new message from one account to another.
func (s *MessageService) Send(ctx context.Context, fromID, toID, content string) (*domain.Message, error) {
	if toID == "" || content == "" {
		return nil, apperrors.NewValidationError("toId and content are required", nil)
	}

	message := &domain.Message{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Content:       content,
		Replies:       []domain.Reply{},
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventMessageSent,
			Timestamp: time.Now(),
			Payload: events.MessageSentPayload{
				MessageID:     message.ID,
				FromAccountID: fromID,
				ToAccountID:   toID,
			},
		})
	}
	return message, nil
}

// Reply appends a reply to an existing message.
func (s *MessageService) Reply(ctx context.Context, messageID, fromID, content string) error {
	if content == "" {
		return apperrors.NewValidationError("content is required", nil)
	}
	if _, err := uuid.Parse(messageID); err != nil {
		return apperrors.NewValidationError("invalid message id", nil)
	}

	reply := domain.Reply{FromAccountID: fromID, Content: content, CreatedAt: time.Now()}
	if err := s.messages.AppendReply(ctx, messageID, reply); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("message", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}

// List returns messages where the account is sender or recipient, newest first.
func (s *MessageService) List(ctx context.Context, accountID string) ([]domain.Message, error) {
	if accountID == "" {
		return nil, apperrors.NewValidationError("userId is required", nil)
	}
	messages, err := s.messages.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return messages, nil
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, messageID string) error {
	if _, err := uuid.Parse(messageID); err != nil {
		return apperrors.NewValidationError("invalid message id", nil)
	}
	if err := s.messages.Delete(ctx, messageID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("message", nil)
		}
		return apperrors.MapError(err)
	}
	return nil
}
