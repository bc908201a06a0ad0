package event

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// wireEvent is the JSON envelope hook runners write on stdin:
//
//	{"event": "tool:error", "data": {...}, "timestamp": "..."}
type wireEvent struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type wireToolData struct {
	ToolName string          `json:"tool_name"`
	Args     map[string]any  `json:"args"`
	Error    json.RawMessage `json:"error"`
}

type wireSessionData struct {
	SessionID     string `json:"session_id"`
	Prompt        string `json:"prompt"`
	ParentPrompt  string `json:"parent_prompt"`
	InitialPrompt string `json:"initial_prompt"`
	Reason        string `json:"reason"`
}

type wirePromptData struct {
	Prompt string `json:"prompt"`
}

type wireProviderData struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Decode reads one JSON-encoded event from r.
//
// The envelope must parse and name a recognized event type; anything less is
// an error the caller can act on. The data object, by contrast, is decoded
// tolerantly: missing fields, extra fields, or an unparseable data object all
// yield an event with a nil payload rather than an error, so a malformed
// producer can never take the consumer down with it.
func Decode(r io.Reader) (Event, error) {
	var w wireEvent
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return Event{}, fmt.Errorf("decode event envelope: %w", err)
	}
	if !Recognized(w.Event) {
		return Event{}, fmt.Errorf("unrecognized event type %q", w.Event)
	}

	ev := Event{Type: Type(w.Event), Timestamp: w.Timestamp}
	if w.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	ev.Payload = decodeData(ev.Type, w.Data)
	return ev, nil
}

func decodeData(t Type, data json.RawMessage) Payload {
	if len(data) == 0 {
		return nil
	}

	switch t {
	case ToolError, ToolPost:
		var d wireToolData
		if json.Unmarshal(data, &d) != nil {
			return nil
		}
		return ToolPayload{
			ToolName: d.ToolName,
			Args:     d.Args,
			Error:    decodeErrorField(d.Error),
		}
	case SessionStart, SessionEnd:
		var d wireSessionData
		if json.Unmarshal(data, &d) != nil {
			return nil
		}
		prompt := d.Prompt
		if prompt == "" {
			prompt = d.ParentPrompt
		}
		if prompt == "" {
			prompt = d.InitialPrompt
		}
		return SessionPayload{SessionID: d.SessionID, Prompt: prompt, Reason: d.Reason}
	case PromptSubmit:
		var d wirePromptData
		if json.Unmarshal(data, &d) != nil {
			return nil
		}
		return PromptPayload{Prompt: d.Prompt}
	case ProviderRequest, ProviderResponse:
		var d wireProviderData
		if json.Unmarshal(data, &d) != nil {
			return nil
		}
		return ProviderPayload{Provider: d.Provider, Model: d.Model}
	default:
		return nil
	}
}

// decodeErrorField accepts the two shapes the runtime emits for tool errors:
// a bare string, or an object with a "message" field.
func decodeErrorField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil && obj.Message != "" {
		return obj.Message
	}
	return string(raw)
}
