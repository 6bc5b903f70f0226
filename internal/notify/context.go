package notify

import (
	"fmt"
	"time"
)

// Business holds the display attributes of the business sending the
// notification. They appear in greetings, signatures and footers.
type Business struct {
	Name    string
	Address string
	Phone   string
	LogoURL string
}

// Payment describes a payment event.
type Payment struct {
	ID       string
	Amount   float64
	Currency string
	Method   string
}

// Booking describes a booking event.
type Booking struct {
	ID           string
	Service      string
	Professional string
	StartsAt     time.Time
}

// Refund describes a refund event.
type Refund struct {
	ID     string
	Amount float64
	Reason string
}

// Context is the immutable data bag describing a triggering event and its
// recipient. It is built once per dispatch call and never mutated.
//
// A Context never validates completeness: whether a field is required is a
// concern of the template that reads it, and channels fail per-medium when
// the address they need is absent.
type Context struct {
	UserName  string
	UserEmail string
	UserPhone string
	// UserID is the stable identifier used by push and in-app delivery.
	// When empty, channels fall back to UserEmail.
	UserID string

	Business Business
	Payment  Payment
	Booking  Booking
	Refund   Refund

	// Extra carries template-specific values that have no dedicated field,
	// e.g. "hours_before" for booking reminders.
	Extra map[string]string
}

// ExtraValue returns the Extra entry for key, or "N/A" when absent.
func (c Context) ExtraValue(key string) string {
	if v, ok := c.Extra[key]; ok && v != "" {
		return v
	}
	return notAvailable
}

const notAvailable = "N/A"

// orNA substitutes the placeholder for empty optional fields so templates
// never fail on missing optional data.
func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// formatAmount renders a monetary value with its currency code.
func formatAmount(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// formatDate renders a booking timestamp, or the placeholder for the zero time.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.Format("Monday, 02 Jan 2006 at 15:04")
}
