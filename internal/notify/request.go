package notify

import "time"

// Request describes one dispatch call: which template to render, the event
// context, and the set of mediums to fan out to. It is constructed once per
// call and not mutated.
type Request struct {
	Template string
	Context  Context
	Mediums  []Medium

	// Priority overrides the template's fixed priority when non-empty.
	Priority Priority

	// CorrelationID ties the resulting Result and log entries back to the
	// caller's trace. Optional.
	CorrelationID string

	// SendImmediately and ScheduledAt are advisory: the dispatcher accepts
	// and logs them but performs no deferred execution. An external
	// scheduler that honors ScheduledAt is expected to call Send again at
	// the right time.
	SendImmediately bool
	ScheduledAt     time.Time
}

// Result is the aggregate outcome of one dispatch call. It is returned to
// the caller and never persisted by the engine itself.
type Result struct {
	// ID uniquely identifies the generated notification.
	ID     string `json:"id"`
	Status Status `json:"status"`
	// Sent lists the mediums whose channel send succeeded.
	Sent []Medium `json:"sent"`
	// Failed lists every requested medium not in Sent, including mediums
	// dropped before a send was attempted (unsupported, no channel, no
	// recipient).
	Failed []Medium `json:"failed"`
	// Priority is the effective priority used for this dispatch.
	Priority Priority `json:"priority"`
	// Error is a human-readable description of the dominant failure, empty
	// on full success.
	Error         string `json:"error,omitempty"`
	CorrelationID string `json:"correlation_id,omitempty"`
	// CompletedAt is stamped when the dispatch ran to completion. It stays
	// zero when the call short-circuited on template lookup.
	CompletedAt time.Time `json:"completed_at,omitzero"`
}
