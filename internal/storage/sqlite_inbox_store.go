package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteInboxStore implements InboxStore backed by SQLite.
type SQLiteInboxStore struct {
	db *sql.DB
}

// NewSQLiteInboxStore returns a new SQLiteInboxStore.
func NewSQLiteInboxStore(db *sql.DB) *SQLiteInboxStore {
	return &SQLiteInboxStore{db: db}
}

// SaveMessage appends a message to the user's inbox.
func (s *SQLiteInboxStore) SaveMessage(ctx context.Context, userID, subject, body, priority string) error {
	if priority == "" {
		priority = "normal"
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inbox_messages (user_id, subject, body, priority, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		userID, subject, body, priority, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting inbox message: %w", err)
	}
	return nil
}

// ListMessages returns the user's most recent messages, newest first.
func (s *SQLiteInboxStore) ListMessages(ctx context.Context, userID string, limit int) ([]InboxMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, subject, body, priority, read, created_at
		FROM inbox_messages
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying inbox: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", cerr)
		}
	}()

	var messages []InboxMessage
	for rows.Next() {
		var m InboxMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Subject, &m.Body,
			&m.Priority, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning inbox row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inbox rows: %w", err)
	}
	return messages, nil
}

// MarkRead marks a single message as read.
func (s *SQLiteInboxStore) MarkRead(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "UPDATE inbox_messages SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking message %d read: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("inbox message %d not found", id)
	}
	return nil
}

// UnreadCount returns the number of unread messages for the user.
func (s *SQLiteInboxStore) UnreadCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM inbox_messages WHERE user_id = ? AND read = 0", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return n, nil
}
