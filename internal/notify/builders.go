package notify

import "context"

// Convenience builders: fixed event-to-template-and-medium-set mappings. Each
// one constructs a Request with the default medium set for its business event
// and dispatches it; callers needing a different set build the Request
// themselves.

// SendPaymentConfirmed notifies that a payment was processed successfully.
func (d *Dispatcher) SendPaymentConfirmed(ctx context.Context, c Context) Result {
	return d.Send(ctx, Request{
		Template: TemplatePaymentConfirmation,
		Context:  c,
		Mediums:  []Medium{MediumEmail, MediumPush, MediumInApp},
	})
}

// SendPaymentFailed notifies that a payment could not be processed. It uses
// every medium: a failed payment usually blocks a booking.
func (d *Dispatcher) SendPaymentFailed(ctx context.Context, c Context) Result {
	return d.Send(ctx, Request{
		Template: TemplatePaymentFailed,
		Context:  c,
		Mediums:  []Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp},
	})
}

// SendRefundConfirmed notifies that a refund was processed.
func (d *Dispatcher) SendRefundConfirmed(ctx context.Context, c Context) Result {
	return d.Send(ctx, Request{
		Template: TemplateRefundConfirmation,
		Context:  c,
		Mediums:  []Medium{MediumEmail, MediumPush, MediumInApp},
	})
}

// SendBookingReminder reminds about an upcoming appointment.
func (d *Dispatcher) SendBookingReminder(ctx context.Context, c Context) Result {
	return d.Send(ctx, Request{
		Template: TemplateBookingReminder,
		Context:  c,
		Mediums:  []Medium{MediumEmail, MediumSMS, MediumPush},
	})
}

// SendBookingCancelled notifies that a booking was cancelled.
func (d *Dispatcher) SendBookingCancelled(ctx context.Context, c Context) Result {
	return d.Send(ctx, Request{
		Template: TemplateBookingCancelled,
		Context:  c,
		Mediums:  []Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp},
	})
}

// SendWelcome greets a newly registered user.
func (d *Dispatcher) SendWelcome(ctx context.Context, c Context) Result {
	return d.Send(ctx, Request{
		Template: TemplateWelcome,
		Context:  c,
		Mediums:  []Medium{MediumEmail, MediumInApp},
	})
}
