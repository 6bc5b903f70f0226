// Package event connects the business event bus to the dispatch engine:
// it maps each published business event to a template and default medium
// set, dispatches the notification, and records the outcome in the
// delivery log.
package event

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/glowdesk/notify/internal/eventbus"
	"github.com/glowdesk/notify/internal/notify"
	"github.com/glowdesk/notify/internal/storage"
)

// Business event types the handler reacts to. Unknown types are ignored.
const (
	TypePaymentConfirmed = "payment.confirmed"
	TypePaymentFailed    = "payment.failed"
	TypeRefundConfirmed  = "refund.confirmed"
	TypeBookingReminder  = "booking.reminder"
	TypeBookingCancelled = "booking.cancelled"
	TypeUserRegistered   = "user.registered"
)

const dispatchTimeout = 30 * time.Second

// Handler turns business events into notification dispatches.
type Handler struct {
	dispatcher *notify.Dispatcher
	log        storage.DeliveryLogStore
	business   notify.Business
	logger     *slog.Logger
}

// NewHandler creates a Handler. business supplies the display attributes
// stamped on every outgoing notification; log may be nil to skip audit
// logging.
func NewHandler(dispatcher *notify.Dispatcher, log storage.DeliveryLogStore, business notify.Business, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{dispatcher: dispatcher, log: log, business: business, logger: logger}
}

// templateFor maps an event type to its template name, or "" for events the
// notification engine does not handle.
func templateFor(eventType string) string {
	switch eventType {
	case TypePaymentConfirmed:
		return notify.TemplatePaymentConfirmation
	case TypePaymentFailed:
		return notify.TemplatePaymentFailed
	case TypeRefundConfirmed:
		return notify.TemplateRefundConfirmation
	case TypeBookingReminder:
		return notify.TemplateBookingReminder
	case TypeBookingCancelled:
		return notify.TemplateBookingCancelled
	case TypeUserRegistered:
		return notify.TemplateWelcome
	}
	return ""
}

// Handle processes one event: builds the notification context from the
// payload, dispatches through the matching convenience builder, and records
// the Result.
func (h *Handler) Handle(e eventbus.Event) {
	if templateFor(e.Type) == "" {
		return
	}

	c := h.contextFromPayload(e.Payload)

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	var res notify.Result
	switch e.Type {
	case TypePaymentConfirmed:
		res = h.dispatcher.SendPaymentConfirmed(ctx, c)
	case TypePaymentFailed:
		res = h.dispatcher.SendPaymentFailed(ctx, c)
	case TypeRefundConfirmed:
		res = h.dispatcher.SendRefundConfirmed(ctx, c)
	case TypeBookingReminder:
		res = h.dispatcher.SendBookingReminder(ctx, c)
	case TypeBookingCancelled:
		res = h.dispatcher.SendBookingCancelled(ctx, c)
	case TypeUserRegistered:
		res = h.dispatcher.SendWelcome(ctx, c)
	}

	h.record(ctx, e.Type, res)
}

// record appends the dispatch outcome to the delivery log.
func (h *Handler) record(ctx context.Context, eventType string, res notify.Result) {
	if h.log == nil {
		return
	}
	entry := storage.DeliveryLogEntry{
		NotificationID: res.ID,
		EventType:      eventType,
		Template:       templateFor(eventType),
		Status:         string(res.Status),
		SentMediums:    joinMediums(res.Sent),
		FailedMediums:  joinMediums(res.Failed),
		ErrorMsg:       res.Error,
		CorrelationID:  res.CorrelationID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.log.LogDelivery(ctx, entry); err != nil {
		h.logger.Error("failed to record delivery", "event_type", eventType, "error", err)
	}
}

// contextFromPayload builds the immutable notification context from a flat
// event payload. Missing fields stay zero; templates substitute placeholders.
func (h *Handler) contextFromPayload(p map[string]string) notify.Context {
	c := notify.Context{
		UserName:  p["user_name"],
		UserEmail: p["user_email"],
		UserPhone: p["user_phone"],
		UserID:    p["user_id"],
		Business:  h.business,
		Payment: notify.Payment{
			ID:       p["payment_id"],
			Amount:   parseFloat(p["amount"]),
			Currency: p["currency"],
			Method:   p["payment_method"],
		},
		Booking: notify.Booking{
			ID:           p["booking_id"],
			Service:      p["service"],
			Professional: p["professional"],
			StartsAt:     parseTime(p["starts_at"]),
		},
		Refund: notify.Refund{
			ID:     p["refund_id"],
			Amount: parseFloat(p["refund_amount"]),
			Reason: p["refund_reason"],
		},
	}

	// Everything not mapped to a dedicated field rides along in Extra.
	for k, v := range p {
		if knownPayloadKey(k) {
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]string)
		}
		c.Extra[k] = v
	}
	return c
}

func knownPayloadKey(k string) bool {
	switch k {
	case "user_name", "user_email", "user_phone", "user_id",
		"payment_id", "amount", "currency", "payment_method",
		"booking_id", "service", "professional", "starts_at",
		"refund_id", "refund_amount", "refund_reason":
		return true
	}
	return false
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func joinMediums(mediums []notify.Medium) string {
	parts := make([]string, len(mediums))
	for i, m := range mediums {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}
