// Package notify implements the notification dispatch engine: a registry of
// content templates, a channel abstraction per delivery medium, and a
// dispatcher that renders content once and fans it out across the requested
// mediums with independent per-channel outcome tracking.
package notify

// Medium identifies a delivery mechanism for a notification.
type Medium string

const (
	MediumEmail Medium = "email"
	MediumSMS   Medium = "sms"
	MediumPush  Medium = "push"
	MediumInApp Medium = "in_app"
)

// AllMediums lists every medium the engine knows about.
func AllMediums() []Medium {
	return []Medium{MediumEmail, MediumSMS, MediumPush, MediumInApp}
}

// Valid reports whether m is one of the known mediums.
func (m Medium) Valid() bool {
	switch m {
	case MediumEmail, MediumSMS, MediumPush, MediumInApp:
		return true
	}
	return false
}

// Priority classifies how urgent a notification is. It is informational
// metadata carried on the Result; it does not alter channel selection.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether p is one of the four defined levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Status is the aggregate outcome of one dispatch call.
type Status string

const (
	// StatusSent means every requested medium was delivered.
	StatusSent Status = "sent"
	// StatusPartial means at least one medium succeeded and at least one failed.
	StatusPartial Status = "partial"
	// StatusFailed means no medium was delivered.
	StatusFailed Status = "failed"
	// StatusQueued is reserved for deferred sends executed by an external
	// scheduler. The dispatcher itself never produces it.
	StatusQueued Status = "queued"
)
