package notify

// PriorityLevel is the urgency hint passed to the notification command.
type PriorityLevel string

const (
	PriorityLow     PriorityLevel = "low"
	PriorityDefault PriorityLevel = "default"
	PriorityHigh    PriorityLevel = "high"
	PriorityUrgent  PriorityLevel = "urgent"
)

// ValidPriorityLevel checks if the given string is a valid priority level.
func ValidPriorityLevel(s string) bool {
	switch PriorityLevel(s) {
	case PriorityLow, PriorityDefault, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Title is the fixed notification title for every request this module builds.
const Title = "Amplifier"

// maxMessageLen bounds the message body; downstream notification transports
// reject or mangle longer payloads.
const maxMessageLen = 500

// truncationMarker is appended when a message had to be cut.
const truncationMarker = "..."

// Request is one notification to deliver: built fresh per qualifying event,
// used once, discarded.
type Request struct {
	Message  string
	Title    string
	Priority PriorityLevel
}

// Build composes the notification request for a filter match. Time-sensitive
// kinds (tool errors, the runtime waiting on the user) get high priority;
// everything else is informational.
func Build(m Match) Request {
	priority := PriorityDefault
	switch m.Kind {
	case KindAskUser, KindToolError:
		priority = PriorityHigh
	}

	return Request{
		Message:  truncate(m.Detail, maxMessageLen),
		Title:    Title,
		Priority: priority,
	}
}

// truncate cuts s to at most max characters including the truncation marker.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-len(truncationMarker)] + truncationMarker
}
