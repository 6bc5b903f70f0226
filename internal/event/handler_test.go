package event_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/notify/internal/event"
	"github.com/glowdesk/notify/internal/eventbus"
	"github.com/glowdesk/notify/internal/notify"
	"github.com/glowdesk/notify/internal/storage"
)

// --- stubs ---

type stubLogStore struct {
	mu      sync.Mutex
	entries []storage.DeliveryLogEntry
}

func (s *stubLogStore) LogDelivery(_ context.Context, entry storage.DeliveryLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubLogStore) ListDeliveries(_ context.Context, _ int) ([]storage.DeliveryLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]storage.DeliveryLogEntry(nil), s.entries...), nil
}

type okChannel struct {
	medium notify.Medium

	mu   sync.Mutex
	sent []notify.Message
}

func (c *okChannel) Medium() notify.Medium { return c.medium }

func (c *okChannel) Recipient(n notify.Context) (string, error) {
	switch c.medium {
	case notify.MediumEmail:
		if n.UserEmail == "" {
			return "", &notify.RecipientError{Medium: c.medium, Reason: "no email"}
		}
		return n.UserEmail, nil
	case notify.MediumSMS:
		if n.UserPhone == "" {
			return "", &notify.RecipientError{Medium: c.medium, Reason: "no phone"}
		}
		return n.UserPhone, nil
	default:
		if n.UserID == "" {
			return "", &notify.RecipientError{Medium: c.medium, Reason: "no user id"}
		}
		return n.UserID, nil
	}
}

func (c *okChannel) Send(_ context.Context, msg notify.Message) error {
	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	return nil
}

func (c *okChannel) lastMessage() (notify.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.sent) == 0 {
		return notify.Message{}, false
	}
	return c.sent[len(c.sent)-1], true
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler() (*event.Handler, *stubLogStore, map[notify.Medium]*okChannel) {
	d := notify.NewDispatcher(notify.BuiltinRegistry(), testLogger())
	channels := make(map[notify.Medium]*okChannel)
	for _, m := range notify.AllMediums() {
		ch := &okChannel{medium: m}
		channels[m] = ch
		d.RegisterChannel(ch)
	}
	store := &stubLogStore{}
	business := notify.Business{Name: "GlowDesk Studio", Address: "12 Rosewood Lane"}
	return event.NewHandler(d, store, business, testLogger()), store, channels
}

func fullPayload() map[string]string {
	return map[string]string{
		"user_name":  "Ana",
		"user_email": "ana@example.com",
		"user_phone": "+5511999990000",
		"user_id":    "user-42",
		"payment_id": "pay_123",
		"amount":     "100.00",
		"currency":   "BRL",
		"booking_id": "bkg_9",
		"service":    "Hair color",
		"starts_at":  "2026-09-02T14:00:00Z",
	}
}

// --- tests ---

func TestHandle_EventTemplateMapping(t *testing.T) {
	tests := []struct {
		eventType string
		template  string
	}{
		{event.TypePaymentConfirmed, notify.TemplatePaymentConfirmation},
		{event.TypePaymentFailed, notify.TemplatePaymentFailed},
		{event.TypeRefundConfirmed, notify.TemplateRefundConfirmation},
		{event.TypeBookingReminder, notify.TemplateBookingReminder},
		{event.TypeBookingCancelled, notify.TemplateBookingCancelled},
		{event.TypeUserRegistered, notify.TemplateWelcome},
	}
	for _, tc := range tests {
		t.Run(tc.eventType, func(t *testing.T) {
			h, store, _ := newTestHandler()

			h.Handle(eventbus.Event{Type: tc.eventType, Timestamp: time.Now(), Payload: fullPayload()})

			entries, err := store.ListDeliveries(context.Background(), 10)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.template, entries[0].Template)
			assert.Equal(t, "sent", entries[0].Status)
			assert.NotEmpty(t, entries[0].NotificationID)
		})
	}
}

func TestHandle_UnknownEventIsIgnored(t *testing.T) {
	h, store, channels := newTestHandler()

	h.Handle(eventbus.Event{Type: "inventory.low", Payload: fullPayload()})

	entries, err := store.ListDeliveries(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	for _, ch := range channels {
		_, sent := ch.lastMessage()
		assert.False(t, sent)
	}
}

func TestHandle_PayloadBecomesContext(t *testing.T) {
	h, _, channels := newTestHandler()

	h.Handle(eventbus.Event{Type: event.TypePaymentConfirmed, Payload: fullPayload()})

	msg, sent := channels[notify.MediumEmail].lastMessage()
	require.True(t, sent)
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Contains(t, msg.Body, "Hello Ana,")
	assert.Contains(t, msg.Body, "pay_123")
	assert.Contains(t, msg.Body, "100.00 BRL")
	assert.Contains(t, msg.Body, "GlowDesk Studio")
}

func TestHandle_ExtraPayloadKeysReachTemplates(t *testing.T) {
	h, _, channels := newTestHandler()

	payload := fullPayload()
	payload["hours_before"] = "24"
	h.Handle(eventbus.Event{Type: event.TypeBookingReminder, Payload: payload})

	msg, sent := channels[notify.MediumEmail].lastMessage()
	require.True(t, sent)
	assert.Contains(t, msg.Body, "24 hours")
}

func TestHandle_PartialOutcomeIsRecorded(t *testing.T) {
	h, store, _ := newTestHandler()

	payload := fullPayload()
	delete(payload, "user_phone")
	h.Handle(eventbus.Event{Type: event.TypePaymentFailed, Payload: payload})

	entries, err := store.ListDeliveries(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "partial", entries[0].Status)
	assert.Contains(t, entries[0].FailedMediums, "sms")
	assert.Contains(t, entries[0].SentMediums, "email")
}

func TestHandle_NilLogStore(t *testing.T) {
	d := notify.NewDispatcher(notify.BuiltinRegistry(), testLogger())
	d.RegisterChannel(&okChannel{medium: notify.MediumEmail})
	h := event.NewHandler(d, nil, notify.Business{Name: "GlowDesk"}, testLogger())

	require.NotPanics(t, func() {
		h.Handle(eventbus.Event{Type: event.TypeUserRegistered, Payload: fullPayload()})
	})
}

func TestHandle_ViaBus(t *testing.T) {
	h, store, _ := newTestHandler()

	bus := eventbus.New(1, testLogger())
	bus.Subscribe(h.Handle)
	bus.Publish(event.TypeUserRegistered, fullPayload())
	bus.Close()

	entries, err := store.ListDeliveries(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, notify.TemplateWelcome, entries[0].Template)
}
