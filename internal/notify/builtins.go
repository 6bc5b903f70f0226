package notify

import (
	"fmt"
	"strings"
)

// Names of the built-in templates.
const (
	TemplatePaymentConfirmation = "payment_confirmation"
	TemplatePaymentFailed       = "payment_failed"
	TemplateRefundConfirmation  = "refund_confirmation"
	TemplateBookingReminder     = "booking_reminder"
	TemplateBookingCancelled    = "booking_cancelled"
	TemplateWelcome             = "welcome"
)

// BuiltinRegistry returns a Registry pre-loaded with the six built-in
// templates. Callers may register additional templates on top of it.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register(TemplatePaymentConfirmation, paymentConfirmationTemplate())
	r.Register(TemplatePaymentFailed, paymentFailedTemplate())
	r.Register(TemplateRefundConfirmation, refundConfirmationTemplate())
	r.Register(TemplateBookingReminder, bookingReminderTemplate())
	r.Register(TemplateBookingCancelled, bookingCancelledTemplate())
	r.Register(TemplateWelcome, welcomeTemplate())
	return r
}

// greeting opens every body with the user's name.
func greeting(c Context) string {
	return fmt.Sprintf("Hello %s,", orNA(c.UserName))
}

// signature closes every body with the business name and contact details.
func signature(c Context) string {
	lines := []string{"Best regards,", orNA(c.Business.Name)}
	if c.Business.Phone != "" {
		lines = append(lines, "Phone: "+c.Business.Phone)
	}
	if c.Business.Address != "" {
		lines = append(lines, c.Business.Address)
	}
	return strings.Join(lines, "\n")
}

// section renders an itemized details block.
func section(title string, items ...string) string {
	return title + "\n" + strings.Join(items, "\n")
}

func paymentConfirmationTemplate() Template {
	return NewTemplate(
		PriorityHigh,
		[]Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp},
		func(c Context) string {
			return fmt.Sprintf("Payment confirmed - %s", formatAmount(c.Payment.Amount, c.Payment.Currency))
		},
		func(c Context) string {
			return strings.Join([]string{
				greeting(c),
				"Your payment was processed successfully.",
				section("Payment details:",
					"  Payment ID: "+orNA(c.Payment.ID),
					"  Amount: "+formatAmount(c.Payment.Amount, c.Payment.Currency),
					"  Method: "+orNA(c.Payment.Method),
				),
				"Keep this message as your receipt. No further action is needed.",
				signature(c),
			}, "\n\n")
		},
	)
}

func paymentFailedTemplate() Template {
	return NewTemplate(
		PriorityHigh,
		[]Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp},
		func(c Context) string {
			return "Payment failed - action required"
		},
		func(c Context) string {
			return strings.Join([]string{
				greeting(c),
				"Unfortunately we could not process your payment.",
				section("Payment details:",
					"  Payment ID: "+orNA(c.Payment.ID),
					"  Amount: "+formatAmount(c.Payment.Amount, c.Payment.Currency),
					"  Method: "+orNA(c.Payment.Method),
				),
				"Please verify your payment details and try again. If the problem persists, contact us and we will help you sort it out.",
				signature(c),
			}, "\n\n")
		},
	)
}

func refundConfirmationTemplate() Template {
	return NewTemplate(
		PriorityNormal,
		[]Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp},
		func(c Context) string {
			return fmt.Sprintf("Refund processed - %s", formatAmount(c.Refund.Amount, c.Payment.Currency))
		},
		func(c Context) string {
			return strings.Join([]string{
				greeting(c),
				"Your refund has been processed.",
				section("Refund details:",
					"  Refund ID: "+orNA(c.Refund.ID),
					"  Amount: "+formatAmount(c.Refund.Amount, c.Payment.Currency),
					"  Reason: "+orNA(c.Refund.Reason),
				),
				"The amount will appear on your statement within a few business days, depending on your payment provider.",
				signature(c),
			}, "\n\n")
		},
	)
}

func bookingReminderTemplate() Template {
	return NewTemplate(
		PriorityNormal,
		[]Medium{MediumEmail, MediumSMS, MediumPush},
		func(c Context) string {
			return fmt.Sprintf("Reminder: %s on %s", orNA(c.Booking.Service), formatDate(c.Booking.StartsAt))
		},
		func(c Context) string {
			return strings.Join([]string{
				greeting(c),
				fmt.Sprintf("This is a reminder that your appointment is coming up in %s hours.", c.ExtraValue("hours_before")),
				section("Appointment details:",
					"  Service: "+orNA(c.Booking.Service),
					"  Professional: "+orNA(c.Booking.Professional),
					"  When: "+formatDate(c.Booking.StartsAt),
					"  Where: "+orNA(c.Business.Address),
				),
				"If you need to reschedule or cancel, please let us know as early as possible.",
				signature(c),
			}, "\n\n")
		},
	)
}

func bookingCancelledTemplate() Template {
	return NewTemplate(
		PriorityHigh,
		[]Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp},
		func(c Context) string {
			return fmt.Sprintf("Booking cancelled - %s", orNA(c.Booking.Service))
		},
		func(c Context) string {
			return strings.Join([]string{
				greeting(c),
				"Your booking has been cancelled.",
				section("Booking details:",
					"  Booking ID: "+orNA(c.Booking.ID),
					"  Service: "+orNA(c.Booking.Service),
					"  Professional: "+orNA(c.Booking.Professional),
					"  Was scheduled for: "+formatDate(c.Booking.StartsAt),
				),
				"If you did not request this cancellation, or would like to book a new appointment, please get in touch.",
				signature(c),
			}, "\n\n")
		},
	)
}

// welcomeTemplate deliberately excludes SMS: a welcome message is low urgency
// and not worth a text message.
func welcomeTemplate() Template {
	return NewTemplate(
		PriorityLow,
		[]Medium{MediumEmail, MediumPush, MediumInApp},
		func(c Context) string {
			return fmt.Sprintf("Welcome to %s!", orNA(c.Business.Name))
		},
		func(c Context) string {
			return strings.Join([]string{
				greeting(c),
				fmt.Sprintf("Welcome to %s! Your account is ready.", orNA(c.Business.Name)),
				section("What you can do now:",
					"  - Browse our services and book your first appointment",
					"  - Save your favorite professionals",
					"  - Manage bookings and payments from your profile",
				),
				"We are looking forward to seeing you soon.",
				signature(c),
			}, "\n\n")
		},
	)
}
