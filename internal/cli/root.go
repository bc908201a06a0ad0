// Package cli provides the Cobra-based commands for the ampnotify hook
// binary: send (dispatch a notification for an event read from stdin),
// doctor (probe the notification environment), and version.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ampnotify",
	Short: "Amplifier notification hook",
	Long: `ampnotify - notification hook for Amplifier lifecycle events

Reads one event JSON from stdin, applies the configured notification policy,
and invokes the notify command when the event qualifies.`,
	Example: `  # Dispatch a notification for a tool error
  echo '{"event":"tool:error","data":{"tool_name":"grep","error":"not found"}}' | ampnotify send

  # Check that the notification environment works
  ampnotify doctor`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "~/.amplifier/notify.yml", "Path to config file")
}
