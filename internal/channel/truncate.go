// Package channel provides the Channel implementations for each delivery
// medium. Every implementation is a thin seam over an injected transport:
// it resolves the recipient address for its medium, reshapes the rendered
// content to the medium's constraints, and reports the transport's outcome.
package channel

// Body length limits for constrained mediums, in runes.
const (
	SMSBodyLimit  = 150
	PushBodyLimit = 100

	ellipsis = "..."
)

// Truncate bounds s to limit runes, appending an ellipsis when content was
// cut. Bodies at or under the limit pass through unchanged.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + ellipsis
}
