package dto

import (
	"time"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// MessageSendRequest payload for sending a message.
type MessageSendRequest struct {
	ToID    string `json:"toId"`
	Content string `json:"content"`
}

// MessageReplyRequest payload for replying to a message.
type MessageReplyRequest struct {
	Content string `json:"content"`
}

// ReplyResponse is the wire form of an embedded reply.
type ReplyResponse struct {
	FromID    string    `json:"fromId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse is the wire form of a message thread.
type MessageResponse struct {
	ID        string          `json:"id"`
	FromID    string          `json:"fromId"`
	ToID      string          `json:"toId"`
	Content   string          `json:"content"`
	Replies   []ReplyResponse `json:"replies"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewMessageResponse maps a domain message to its wire form.
func NewMessageResponse(message domain.Message) MessageResponse {
	replies := make([]ReplyResponse, 0, len(message.Replies))
	for _, reply := range message.Replies {
		replies = append(replies, ReplyResponse{
			FromID:    reply.FromAccountID,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
		})
	}
	return MessageResponse{
		ID:        message.ID,
		FromID:    message.FromAccountID,
		ToID:      message.ToAccountID,
		Content:   message.Content,
		Replies:   replies,
		CreatedAt: message.CreatedAt,
	}
}
