// Package cmd provides the CLI commands for capability-dispatch.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"capability-dispatch/core/registry"
	"capability-dispatch/domains/geometry"
	"capability-dispatch/domains/notify"
	"capability-dispatch/domains/office"
	"capability-dispatch/domains/payment"
	"capability-dispatch/domains/pricing"
	"capability-dispatch/internal/config"
	"capability-dispatch/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "capability-dispatch",
	Short: "Capability registry and strategy dispatch demos",
	Long: `capability-dispatch demonstrates capability-based dispatch:
consumers bound to providers through narrow contracts, with providers
added by registration rather than by editing dispatch code.

Examples:
  capability-dispatch demo pricing
  capability-dispatch demo notify --policy best-effort
  capability-dispatch providers
  capability-dispatch run scenario.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := *config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
		config.Set(&cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildRegistry creates a registry with every default provider
// installed; side-effecting providers deliver to out
func buildRegistry(out io.Writer) (*registry.Registry, error) {
	reg := registry.New()

	if err := pricing.RegisterDefaults(reg); err != nil {
		return nil, err
	}
	if err := notify.RegisterDefaults(reg, out); err != nil {
		return nil, err
	}
	if err := payment.RegisterDefaults(reg); err != nil {
		return nil, err
	}
	if err := office.RegisterDefaults(reg, out); err != nil {
		return nil, err
	}
	if err := geometry.RegisterDefaults(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("capability-dispatch version 0.1.0")
	},
}
