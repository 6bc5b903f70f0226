package storage

import (
	"context"
	"time"
)

// DeliveryLogEntry records the aggregate outcome of one dispatch call.
type DeliveryLogEntry struct {
	ID             int64     `json:"id"`
	NotificationID string    `json:"notification_id"`
	EventType      string    `json:"event_type"`
	Template       string    `json:"template"`
	Status         string    `json:"status"`
	SentMediums    string    `json:"sent_mediums"`
	FailedMediums  string    `json:"failed_mediums"`
	ErrorMsg       string    `json:"error_msg"`
	CorrelationID  string    `json:"correlation_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// DeliveryLogStore defines the interface for persisting dispatch outcomes.
type DeliveryLogStore interface {
	// LogDelivery records one dispatch outcome.
	LogDelivery(ctx context.Context, entry DeliveryLogEntry) error
	// ListDeliveries returns the most recent entries, up to limit.
	ListDeliveries(ctx context.Context, limit int) ([]DeliveryLogEntry, error)
}
