package events

import (
	"time"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered EventType = "account_registered"
	EventHotelCreated      EventType = "hotel_created"
	EventHotelUpdated      EventType = "hotel_updated"
	EventHotelDeleted      EventType = "hotel_deleted"
	EventMessageSent       EventType = "message_sent"
	EventFavouriteAdded    EventType = "favourite_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	AccountID string      `json:"account_id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
}

// HotelPayload payload for hotel lifecycle events.
type HotelPayload struct {
	HotelID string `json:"hotel_id"`
	Name    string `json:"name,omitempty"`
	City    string `json:"city,omitempty"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	MessageID     string `json:"message_id"`
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
}

// FavouriteAddedPayload payload.
type FavouriteAddedPayload struct {
	AccountID string `json:"account_id"`
	HotelID   string `json:"hotel_id"`
}
