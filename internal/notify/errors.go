package notify

import (
	"errors"
	"fmt"
)

// TemplateNotFoundError reports a dispatch against an unregistered template
// name. It short-circuits the call before any send attempt.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// ErrNoSupportedMediums indicates that none of the requested mediums is
// supported by the resolved template.
var ErrNoSupportedMediums = errors.New("no supported mediums")

// ErrNoChannel indicates that no channel is registered for a requested medium.
var ErrNoChannel = errors.New("no channel registered")

// RecipientError reports that a channel could not derive a recipient address
// from the context. It is per-medium and non-fatal to the overall dispatch.
type RecipientError struct {
	Medium Medium
	Reason string
}

func (e *RecipientError) Error() string {
	return fmt.Sprintf("%s: no recipient: %s", e.Medium, e.Reason)
}

// SendError wraps a transport-level failure from a channel. Channels convert
// every underlying fault into a SendError; nothing propagates past the
// dispatch boundary.
type SendError struct {
	Medium Medium
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("%s: send failed: %v", e.Medium, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }
