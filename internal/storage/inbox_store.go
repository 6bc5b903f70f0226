package storage

import (
	"context"
	"time"
)

// InboxMessage is one in-application notification in a user's inbox.
type InboxMessage struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Priority  string    `json:"priority"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// InboxStore defines the interface for the in-app message inbox.
type InboxStore interface {
	// SaveMessage appends a message to the user's inbox.
	SaveMessage(ctx context.Context, userID, subject, body, priority string) error
	// ListMessages returns the user's most recent messages, up to limit.
	ListMessages(ctx context.Context, userID string, limit int) ([]InboxMessage, error)
	// MarkRead marks a single message as read.
	MarkRead(ctx context.Context, id int64) error
	// UnreadCount returns the number of unread messages for the user.
	UnreadCount(ctx context.Context, userID string) (int, error)
}
