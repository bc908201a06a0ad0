// Package event defines the Amplifier lifecycle event model consumed by the
// notification hook module.
//
// Events are produced by the Amplifier runtime and are read-only to this
// module. Each event carries a typed payload variant keyed by the event type;
// consumers switch on the concrete payload type rather than probing untyped
// fields. An event whose payload does not match its type is treated as
// carrying no usable payload.
package event

import "time"

// Type identifies a lifecycle event emitted by the runtime.
type Type string

// Recognized event types. These are the only identifiers the config layer
// accepts in enabled_events.
const (
	ToolError        Type = "tool:error"
	SessionEnd       Type = "session:end"
	SessionStart     Type = "session:start"
	ToolPost         Type = "tool:post"
	PromptSubmit     Type = "prompt:submit"
	ProviderRequest  Type = "provider:request"
	ProviderResponse Type = "provider:response"
)

// AskUserTool is the tool name the runtime uses when it solicits input from
// the user. Matching is exact and case-sensitive.
const AskUserTool = "AskUserQuestion"

// Recognized reports whether s is a known event-type identifier.
func Recognized(s string) bool {
	switch Type(s) {
	case ToolError, SessionEnd, SessionStart, ToolPost, PromptSubmit,
		ProviderRequest, ProviderResponse:
		return true
	default:
		return false
	}
}

// Types returns all recognized event types in a stable order.
func Types() []Type {
	return []Type{
		ToolError, SessionEnd, SessionStart, ToolPost, PromptSubmit,
		ProviderRequest, ProviderResponse,
	}
}

// Payload is the tagged union of per-event payload schemas.
type Payload interface {
	payload()
}

// ToolPayload is carried by tool:error and tool:post events.
type ToolPayload struct {
	ToolName string
	Args     map[string]any
	Error    string
}

// SessionPayload is carried by session:start and session:end events.
// Prompt holds the session's initiating prompt when the runtime recorded one.
type SessionPayload struct {
	SessionID string
	Prompt    string
	Reason    string
}

// PromptPayload is carried by prompt:submit events.
type PromptPayload struct {
	Prompt string
}

// ProviderPayload is carried by provider:request and provider:response events.
type ProviderPayload struct {
	Provider string
	Model    string
}

func (ToolPayload) payload()     {}
func (SessionPayload) payload()  {}
func (PromptPayload) payload()   {}
func (ProviderPayload) payload() {}

// Event is a single lifecycle occurrence delivered to registered handlers.
type Event struct {
	Type      Type
	Payload   Payload
	Timestamp time.Time
}
