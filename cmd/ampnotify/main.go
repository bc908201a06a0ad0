// ampnotify - notification hook for Amplifier lifecycle events

package main

import (
	"os"

	"github.com/amplifier-oss/hooks-notifications/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
