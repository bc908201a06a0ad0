package notify

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/amplifier-oss/hooks-notifications/internal/config"
	"github.com/amplifier-oss/hooks-notifications/internal/event"
	"github.com/amplifier-oss/hooks-notifications/internal/hooks"
)

// RegistrationPriority is where this module sits among handlers for the same
// event type: deliberately low urgency, so it observes effects after the
// default-priority handlers without delaying them.
const RegistrationPriority = 90

// Logger is the runtime-supplied diagnostic capability. It is used solely
// for failure reporting and is never required to succeed.
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Handler filters events against the policy and fires the notification
// command for qualifying ones. Handle returns before the command runs; the
// invocation and its outcome live entirely on background goroutines.
type Handler struct {
	policy  *config.Policy
	invoker Invoker
	log     Logger
}

// NewHandler creates a handler with the default dispatcher and a stderr
// logger.
func NewHandler(pol *config.Policy) *Handler {
	return &Handler{
		policy:  pol,
		invoker: &Dispatcher{},
		log:     log.New(os.Stderr, "", log.LstdFlags),
	}
}

// NewHandlerWithInvoker creates a handler with a custom invoker and logger
// (for testing, or for a runtime that supplies its own logging capability).
// A nil logger falls back to stderr.
func NewHandlerWithInvoker(pol *config.Policy, inv Invoker, logger Logger) *Handler {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Handler{policy: pol, invoker: inv, log: logger}
}

// Handle processes one event. Filtering and message building run inline;
// both are cheap and allocation-light. The external command is launched on a
// detached goroutine, its outcome delivered over a one-shot channel to an
// observer that logs failures. Nothing here can block, fail, or panic its
// way back into the caller.
func (h *Handler) Handle(ev event.Event) {
	defer func() { _ = recover() }()

	m, ok := ShouldNotify(ev, h.policy)
	if !ok {
		return
	}
	req := Build(m)

	outcome := make(chan Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				outcome <- Outcome{ErrDetail: fmt.Sprintf("panic: %v", r)}
			}
		}()
		outcome <- h.invoker.Invoke(h.policy.Command, req)
	}()
	go h.observe(h.policy.Command, outcome)
}

// observe consumes one dispatch outcome and records failures through the
// logging capability.
func (h *Handler) observe(command string, outcome <-chan Outcome) {
	defer func() { _ = recover() }()
	LogOutcome(h.log, command, <-outcome)
}

// LogOutcome records a failed dispatch outcome as a diagnostic line.
// Successful outcomes log nothing.
func LogOutcome(l Logger, command string, out Outcome) {
	switch {
	case out.Succeeded:
	case out.TimedOut:
		l.Printf("[notify] %s: %s", command, out.ErrDetail)
	case out.ExitStatus != 0:
		l.Printf("[notify] %s exited with status %d", command, out.ExitStatus)
	default:
		l.Printf("[notify] %s failed: %s", command, out.ErrDetail)
	}
}

// Mount registers h for every event type the policy subscribes it to:
// each enabled event, plus tool:post when ask-user detection is on. tool:post
// is registered once even when both conditions apply, so a single event can
// never be delivered to this module twice. Returns a cleanup function that
// unregisters every registration Mount made.
func Mount(reg *hooks.Registry, pol *config.Policy, opts ...Option) (func(), error) {
	h := NewHandler(pol)
	for _, opt := range opts {
		opt(h)
	}

	types := make([]event.Type, 0, len(pol.EnabledEvents)+1)
	seen := make(map[event.Type]bool)
	for _, e := range pol.EnabledEvents {
		t := event.Type(e)
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	if pol.NotifyOnAskUser && !seen[event.ToolPost] {
		types = append(types, event.ToolPost)
	}

	cleanups := make([]func(), 0, len(types))
	for _, t := range types {
		cleanups = append(cleanups, reg.Register(t, handlerName(t), RegistrationPriority, h.Handle))
	}

	return func() {
		for _, c := range cleanups {
			c()
		}
	}, nil
}

// Option customizes a mounted handler.
type Option func(*Handler)

// WithInvoker replaces the default dispatcher.
func WithInvoker(inv Invoker) Option {
	return func(h *Handler) { h.invoker = inv }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithTimeout sets the dispatch timeout, replacing the invoker with a
// dispatcher bounded by d.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) { h.invoker = &Dispatcher{Timeout: d} }
}

// handlerName derives the registration name for an event type, e.g.
// "notify_tool_error" for tool:error.
func handlerName(t event.Type) string {
	return "notify_" + strings.ReplaceAll(string(t), ":", "_")
}
