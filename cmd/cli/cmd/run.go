// Package cmd - run command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"capability-dispatch/core/scenario"
	"capability-dispatch/internal/logging"
)

// runCmd executes an HCL scenario file
var runCmd = &cobra.Command{
	Use:   "run [scenario.hcl]",
	Short: "Execute a scenario file",
	Long: `Execute a declarative scenario against the default providers.

A scenario names providers by string; unknown names fail with a typed
error rather than being silently skipped.

Example scenario:

  policy = "best-effort"

  pricing "vip" {
    price = 100.0
  }

  notification "verification" {
    channels = ["email", "sms"]
    message  = "code:123456"
  }

  payment "pix" {
    amount = 99.90
  }`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("scenario file does not exist: %s", path)
		}

		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}

		reg, err := buildRegistry(os.Stdout)
		if err != nil {
			return err
		}

		runner, err := scenario.NewRunner(reg, os.Stdout)
		if err != nil {
			return err
		}

		logging.Info("running scenario")
		return runner.Run(sc)
	},
}
