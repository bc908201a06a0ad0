// Package health verifies that the notification environment is usable:
// the notify command resolves on PATH, the session is interactive, and we
// are not running under CI where desktop notifications go nowhere.
package health

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results
type Report struct {
	Checks []CheckResult
	Passed bool
}

// RunChecks runs all health checks for the given notify command and returns
// a report. The interactive and CI checks are advisory: they report why
// notifications may be invisible, not whether the module is broken.
func RunChecks(notifyCommand string) *Report {
	report := &Report{Passed: true}

	for _, check := range []CheckResult{
		CheckNotifyCommand(notifyCommand),
		CheckInteractive(),
		CheckCI(),
	} {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	return report
}

// CheckNotifyCommand checks that the notification command resolves.
// An absolute or relative path is checked directly; a bare name is resolved
// via PATH.
func CheckNotifyCommand(command string) CheckResult {
	if command == "" {
		return CheckResult{
			Name:    "Notify command",
			Passed:  false,
			Message: "no notify command configured",
		}
	}

	path, err := exec.LookPath(command)
	if err != nil {
		return CheckResult{
			Name:    "Notify command",
			Passed:  false,
			Message: fmt.Sprintf("%q not found in PATH", command),
		}
	}

	return CheckResult{
		Name:    "Notify command",
		Passed:  true,
		Message: path,
	}
}

// CheckInteractive checks whether the session has a terminal attached.
// Checks stdout first because CLI tools often have stdin piped while stdout
// remains connected to the terminal.
func CheckInteractive() CheckResult {
	interactive := term.IsTerminal(int(os.Stdout.Fd())) ||
		term.IsTerminal(int(os.Stderr.Fd())) ||
		term.IsTerminal(int(os.Stdin.Fd()))

	if !interactive {
		return CheckResult{
			Name:    "Interactive terminal",
			Passed:  false,
			Message: "no terminal attached; notifications may be invisible",
		}
	}

	return CheckResult{
		Name:    "Interactive terminal",
		Passed:  true,
		Message: "terminal attached",
	}
}

// CheckCI checks for common CI environment variables.
func CheckCI() CheckResult {
	if name := ciEnvironment(); name != "" {
		return CheckResult{
			Name:    "CI environment",
			Passed:  false,
			Message: fmt.Sprintf("running under CI (%s); notifications go nowhere", name),
		}
	}

	return CheckResult{
		Name:    "CI environment",
		Passed:  true,
		Message: "not running under CI",
	}
}

// ciEnvironment returns the first CI-related environment variable that is
// set, or an empty string.
func ciEnvironment() string {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
		"TF_BUILD",
		"BITBUCKET_PIPELINES",
		"CODEBUILD_BUILD_ID",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return v
		}
	}
	return ""
}

// FormatReport formats the health report for console output
func FormatReport(report *Report) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}

	return output
}
