package domain

import "time"

// Reply is a follow-up appended to an existing message thread.
type Reply struct {
	FromAccountID string    `json:"from_account_id"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
}

// Message is a direct message between two accounts. Replies are embedded
// in the parent message rather than stored as separate rows.
type Message struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	Content       string
	Replies       []Reply
	CreatedAt     time.Time
}
