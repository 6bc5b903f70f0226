package notify

import "context"

// Message is the rendered content handed to a channel for one delivery
// attempt. Subject and Body are shared across all channels of a dispatch
// call; each channel reshapes them for its medium's constraints.
type Message struct {
	// To is the recipient address resolved by the channel for its medium.
	To      string
	Subject string
	Body    string
	// Priority is the effective priority of the dispatch, for transports
	// that support urgency hints (e.g. push).
	Priority Priority
	// Context is the originating event context, for channels that need
	// event data beyond the rendered text (e.g. push data payloads).
	Context Context
}

// Channel is the sender abstraction for one medium. Implementations are
// stateless seams over external transports: they resolve a recipient from the
// context, reshape content for the medium, and perform a best-effort send.
//
// Send must convert every transport fault into an error return; a channel
// must never panic into the dispatcher.
type Channel interface {
	// Medium returns the delivery medium this channel serves.
	Medium() Medium
	// Recipient derives the recipient address for this medium from the
	// context, or a *RecipientError when the context lacks it.
	Recipient(c Context) (string, error)
	// Send performs the delivery attempt.
	Send(ctx context.Context, msg Message) error
}
