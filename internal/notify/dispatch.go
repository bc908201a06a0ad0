package notify

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// DefaultTimeout bounds one invocation of the notification command.
const DefaultTimeout = 5 * time.Second

// Outcome is the result of one dispatch attempt. It is consumed only for
// diagnostics and never surfaces to the event pipeline.
type Outcome struct {
	Succeeded  bool
	ExitStatus int
	TimedOut   bool
	ErrDetail  string
}

// Invoker runs the notification command once for a request.
type Invoker interface {
	Invoke(command string, req Request) Outcome
}

// Dispatcher invokes the external notification command with the request as
// three positional arguments: message, title, priority level. Stdout and
// stderr are not interpreted; only the exit status and timeout matter.
type Dispatcher struct {
	// Timeout bounds the command's runtime; the process is killed once it
	// elapses. Zero means DefaultTimeout.
	Timeout time.Duration
}

// Invoke runs command once with a bounded wait. There is no retry: a failed
// or timed-out attempt is final for its triggering event.
func (d *Dispatcher) Invoke(command string, req Request) Outcome {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, command, req.Message, req.Title, string(req.Priority))
	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return Outcome{
			TimedOut:  true,
			ErrDetail: "notification command timed out after " + timeout.String(),
		}
	}

	if err != nil {
		out := Outcome{ErrDetail: err.Error()}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitStatus = exitErr.ExitCode()
		}
		return out
	}

	return Outcome{Succeeded: true}
}
