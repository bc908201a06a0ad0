package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/amplifier-oss/hooks-notifications/internal/config"
	"github.com/amplifier-oss/hooks-notifications/internal/event"
	"github.com/amplifier-oss/hooks-notifications/internal/notify"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Dispatch a notification for an event read from stdin",
	Long: `Read one event JSON envelope from stdin and, if it qualifies under the
configured policy, invoke the notify command with <message> <title> <priority>.

Unlike the in-process hook handler, send waits for the dispatch outcome
before exiting, since the process would otherwise exit under it. A failed
dispatch is logged but still exits zero: a broken notification path must
never look like a failed hook to the runtime.`,
	RunE: runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	pol, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ev, err := event.Decode(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading event from stdin: %w", err)
	}

	m, ok := notify.ShouldNotify(ev, pol)
	if !ok {
		return nil
	}
	req := notify.Build(m)

	d := &notify.Dispatcher{Timeout: timeout}
	out := d.Invoke(pol.Command, req)

	notify.LogOutcome(log.New(os.Stderr, "", log.LstdFlags), pol.Command, out)

	return nil
}

func init() {
	sendCmd.Flags().Duration("timeout", notify.DefaultTimeout, "Bound on the notify command's runtime")
	rootCmd.AddCommand(sendCmd)
}
