package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amplifier-oss/hooks-notifications/internal/config"
	"github.com/amplifier-oss/hooks-notifications/internal/health"
	"github.com/amplifier-oss/hooks-notifications/internal/progress"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the notification environment works",
	Long: `Run health checks for the notification environment.

This command checks that:
  - the configured notify command resolves on PATH
  - a terminal is attached (notifications are pointless headless)
  - the session is not running under CI

Each check displays a ✓ if passed or ✗ with an explanation if failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		pol, err := config.Load(configPath)
		if err != nil {
			return err
		}

		var report *health.Report
		caps := progress.DetectTerminalCapabilities()
		progress.Probe(caps, "Probing notification environment...", func() {
			report = health.RunChecks(pol.Command)
		})

		fmt.Print(health.FormatReport(report))

		if !report.Passed {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
