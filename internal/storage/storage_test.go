package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/notify/internal/storage"
)

func TestSQLiteInboxStore(t *testing.T) {
	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "notify.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := storage.NewSQLiteInboxStore(db)
	ctx := context.Background()

	t.Run("save and list", func(t *testing.T) {
		require.NoError(t, store.SaveMessage(ctx, "user-42", "Payment confirmed", "body text", "high"))
		require.NoError(t, store.SaveMessage(ctx, "user-42", "Booking reminder", "see you soon", "normal"))
		require.NoError(t, store.SaveMessage(ctx, "someone-else", "Welcome", "hi", "low"))

		messages, err := store.ListMessages(ctx, "user-42", 10)
		require.NoError(t, err)
		require.Len(t, messages, 2)

		// Newest first.
		assert.Equal(t, "Booking reminder", messages[0].Subject)
		assert.Equal(t, "Payment confirmed", messages[1].Subject)
		assert.Equal(t, "high", messages[1].Priority)
		assert.False(t, messages[0].Read)
		assert.False(t, messages[0].CreatedAt.IsZero())
	})

	t.Run("empty priority defaults to normal", func(t *testing.T) {
		require.NoError(t, store.SaveMessage(ctx, "user-7", "Subject", "body", ""))
		messages, err := store.ListMessages(ctx, "user-7", 1)
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "normal", messages[0].Priority)
	})

	t.Run("unread count and mark read", func(t *testing.T) {
		n, err := store.UnreadCount(ctx, "user-42")
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		messages, err := store.ListMessages(ctx, "user-42", 1)
		require.NoError(t, err)
		require.NoError(t, store.MarkRead(ctx, messages[0].ID))

		n, err = store.UnreadCount(ctx, "user-42")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("mark read unknown id", func(t *testing.T) {
		err := store.MarkRead(ctx, 99999)
		require.Error(t, err)
	})
}

func TestSQLiteDeliveryLogStore(t *testing.T) {
	db, err := storage.NewSQLiteDB(filepath.Join(t.TempDir(), "notify.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := storage.NewSQLiteDeliveryLogStore(db)
	ctx := context.Background()

	entry := storage.DeliveryLogEntry{
		NotificationID: "6f1e1c9a-0000-0000-0000-000000000001",
		EventType:      "payment.confirmed",
		Template:       "payment_confirmation",
		Status:         "partial",
		SentMediums:    "email,in_app",
		FailedMediums:  "sms",
		ErrorMsg:       "sms: no recipient",
		CorrelationID:  "corr-1",
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.LogDelivery(ctx, entry))

	entries, err := store.ListDeliveries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, entry.NotificationID, got.NotificationID)
	assert.Equal(t, entry.EventType, got.EventType)
	assert.Equal(t, entry.Template, got.Template)
	assert.Equal(t, entry.Status, got.Status)
	assert.Equal(t, entry.SentMediums, got.SentMediums)
	assert.Equal(t, entry.FailedMediums, got.FailedMediums)
	assert.Equal(t, entry.ErrorMsg, got.ErrorMsg)
	assert.Equal(t, entry.CorrelationID, got.CorrelationID)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notify.db")

	db, err := storage.NewSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-apply migrations.
	db, err = storage.NewSQLiteDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
