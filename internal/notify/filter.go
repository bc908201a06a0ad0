package notify

import (
	"fmt"

	"github.com/amplifier-oss/hooks-notifications/internal/config"
	"github.com/amplifier-oss/hooks-notifications/internal/event"
)

// Kind classifies which filter rule matched, and drives the notification
// priority level downstream.
type Kind string

const (
	// KindAskUser means the runtime is waiting on the user.
	KindAskUser Kind = "ask-user"
	// KindToolError means a tool invocation failed.
	KindToolError Kind = "tool-error"
	// KindSession covers session lifecycle transitions.
	KindSession Kind = "session"
	// KindInfo covers the remaining informational events.
	KindInfo Kind = "info"
)

// Match is the filter's verdict for one qualifying event.
type Match struct {
	Kind   Kind
	Detail string
}

// askUserPlaceholder is the message used when a tool:post ask-user event
// carries no question text.
const askUserPlaceholder = "Amplifier is waiting for your input"

// ShouldNotify decides whether ev should produce a notification under pol.
// Rules are evaluated in order, first match wins:
//
//  1. tool:post carrying the AskUserQuestion tool, when ask-user detection is
//     enabled. This takes precedence over rule 2 so one user-facing moment
//     never produces two notifications.
//  2. membership of ev.Type in the enabled event set.
//
// An event whose payload is missing or has the wrong variant for its type is
// never an ask-user match, and falls through to rule 2 with a summary built
// from the event type alone.
func ShouldNotify(ev event.Event, pol *config.Policy) (Match, bool) {
	if ev.Type == event.ToolPost && pol.NotifyOnAskUser {
		if tp, ok := ev.Payload.(event.ToolPayload); ok && tp.ToolName == event.AskUserTool {
			return Match{Kind: KindAskUser, Detail: askUserDetail(tp)}, true
		}
	}

	if pol.Enabled(ev.Type) {
		return Match{Kind: kindFor(ev.Type), Detail: summarize(ev)}, true
	}

	return Match{}, false
}

func askUserDetail(tp event.ToolPayload) string {
	if q, ok := tp.Args["question"].(string); ok && q != "" {
		return q
	}
	return askUserPlaceholder
}

func kindFor(t event.Type) Kind {
	switch t {
	case event.ToolError:
		return KindToolError
	case event.SessionStart, event.SessionEnd:
		return KindSession
	default:
		return KindInfo
	}
}

// summarize derives a short human-readable line from the event's type and
// payload. Missing payload fields degrade to generic wording rather than
// failing; summaries follow the phrasing users already see in the Amplifier
// session log.
func summarize(ev event.Event) string {
	switch ev.Type {
	case event.ToolError:
		tp, _ := ev.Payload.(event.ToolPayload)
		name := tp.ToolName
		if name == "" {
			name = "Unknown"
		}
		msg := tp.Error
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf("%s failed: %s", name, msg)

	case event.SessionEnd:
		sp, _ := ev.Payload.(event.SessionPayload)
		if sp.Prompt != "" {
			return "Re: " + preview(sp.Prompt, 60)
		}
		if sp.Reason != "" {
			return "Session ended: " + sp.Reason
		}
		if sp.SessionID != "" {
			id := sp.SessionID
			if len(id) > 8 {
				id = id[:8]
			}
			return fmt.Sprintf("Session %s ended", id)
		}
		return "Session ended"

	case event.SessionStart:
		return "New Amplifier session created"

	case event.ToolPost:
		tp, _ := ev.Payload.(event.ToolPayload)
		name := tp.ToolName
		if name == "" {
			name = "Unknown"
		}
		return fmt.Sprintf("%s executed successfully", name)

	case event.PromptSubmit:
		pp, _ := ev.Payload.(event.PromptPayload)
		return "Prompt: " + preview(pp.Prompt, 50)

	case event.ProviderRequest:
		return "Provider request" + providerSuffix(ev)

	case event.ProviderResponse:
		return "Provider response" + providerSuffix(ev)

	default:
		return string(ev.Type)
	}
}

func providerSuffix(ev event.Event) string {
	pp, _ := ev.Payload.(event.ProviderPayload)
	if pp.Model != "" {
		return " (" + pp.Model + ")"
	}
	if pp.Provider != "" {
		return " (" + pp.Provider + ")"
	}
	return ""
}

// preview truncates s to max characters, appending an ellipsis marker when
// anything was cut.
func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
