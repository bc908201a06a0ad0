// Package progress provides the spinner shown while the doctor command
// probes the notification environment.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// TerminalCapabilities describes what the attached terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsUnicode bool
}

// DetectTerminalCapabilities detects terminal features for stdout.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	forceASCII := os.Getenv("AMPNOTIFY_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// Probe shows a spinner with the given message while fn runs. In
// non-interactive mode it prints the message once instead of animating.
func Probe(caps TerminalCapabilities, message string, fn func()) {
	if !caps.IsTTY {
		fmt.Println(message)
		fn()
		return
	}

	set := 9 // ASCII: | / - \
	if caps.SupportsUnicode {
		set = 14 // Unicode dots
	}

	s := spinner.New(spinner.CharSets[set], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " " + message
	s.Start()
	fn()
	s.Stop()
}
