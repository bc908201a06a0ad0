// Package notify decides which Amplifier lifecycle events warrant alerting a
// human and fires an external notification command without ever blocking the
// event pipeline.
//
// The flow for one event: ShouldNotify evaluates the event against the
// resolved Policy (including ask-user detection inside generic tool:post
// events), Build composes the message/title/priority triple, and Handler
// hands the triple to a Dispatcher on a detached goroutine. The dispatch
// outcome is observed only for diagnostics; no failure — missing binary,
// non-zero exit, timeout — ever propagates back into the caller.
//
// # Usage
//
//	pol, err := config.Resolve(raw)
//	if err != nil { ... }
//	cleanup, err := notify.Mount(registry, pol)
//
// Mount registers the handler at priority 90 for every enabled event type,
// plus tool:post when ask-user detection is on, and returns a cleanup
// function that unregisters everything.
package notify
