// Package notify provides mock implementations for dispatch testing.
// Related: internal/notify/dispatch.go, internal/notify/handler.go
package notify

import (
	"fmt"
	"sync"
	"time"
)

// MockInvoker is a mock implementation of Invoker for testing. It records
// every invocation and signals a channel so tests can wait for the detached
// dispatch goroutine without sleeping.
type MockInvoker struct {
	mu sync.Mutex

	// Configuration
	Outcome Outcome
	Delay   time.Duration
	Panic   bool

	// Call tracking
	Calls       []MockCall
	invocations chan MockCall
}

// MockCall is one recorded Invoke call.
type MockCall struct {
	Command string
	Request Request
}

// NewMockInvoker creates a mock invoker that reports success.
func NewMockInvoker() *MockInvoker {
	return &MockInvoker{
		Outcome:     Outcome{Succeeded: true},
		invocations: make(chan MockCall, 16),
	}
}

// WithOutcome configures the outcome every invocation returns.
func (m *MockInvoker) WithOutcome(out Outcome) *MockInvoker {
	m.Outcome = out
	return m
}

// WithDelay makes each invocation block for d before returning.
func (m *MockInvoker) WithDelay(d time.Duration) *MockInvoker {
	m.Delay = d
	return m
}

// WithPanic makes each invocation panic.
func (m *MockInvoker) WithPanic() *MockInvoker {
	m.Panic = true
	return m
}

// Invoke records the call and returns the configured outcome.
func (m *MockInvoker) Invoke(command string, req Request) Outcome {
	call := MockCall{Command: command, Request: req}
	m.mu.Lock()
	m.Calls = append(m.Calls, call)
	m.mu.Unlock()
	m.invocations <- call

	if m.Panic {
		panic("mock invoker panic")
	}
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	return m.Outcome
}

// Wait blocks until one invocation has been recorded or the timeout elapses.
func (m *MockInvoker) Wait(timeout time.Duration) (MockCall, error) {
	select {
	case call := <-m.invocations:
		return call, nil
	case <-time.After(timeout):
		return MockCall{}, fmt.Errorf("no invocation within %s", timeout)
	}
}

// AssertNoInvocation reports an error through the returned error when an
// invocation arrives within the window.
func (m *MockInvoker) AssertNoInvocation(window time.Duration) error {
	select {
	case call := <-m.invocations:
		return fmt.Errorf("unexpected invocation of %q with message %q", call.Command, call.Request.Message)
	case <-time.After(window):
		return nil
	}
}

// CallCount returns the number of recorded invocations.
func (m *MockInvoker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockLogger records Printf calls and signals a channel per line.
type MockLogger struct {
	mu    sync.Mutex
	Lines []string
	wrote chan string
}

// NewMockLogger creates a mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{wrote: make(chan string, 16)}
}

// Printf records the formatted line.
func (l *MockLogger) Printf(format string, v ...any) {
	line := fmt.Sprintf(format, v...)
	l.mu.Lock()
	l.Lines = append(l.Lines, line)
	l.mu.Unlock()
	l.wrote <- line
}

// Wait blocks until one line is logged or the timeout elapses.
func (l *MockLogger) Wait(timeout time.Duration) (string, error) {
	select {
	case line := <-l.wrote:
		return line, nil
	case <-time.After(timeout):
		return "", fmt.Errorf("nothing logged within %s", timeout)
	}
}
