// Package cmd - providers command
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// providersCmd lists registered capabilities and their providers
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered capabilities and providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := buildRegistry(io.Discard)
		if err != nil {
			return err
		}

		for _, capName := range reg.Capabilities() {
			def, ok := reg.Definition(capName)
			if !ok {
				continue
			}
			fmt.Fprintf(os.Stdout, "%s (%s)\n", capName, strings.Join(def.Operations(), ", "))
			for _, provider := range reg.Providers(capName) {
				fmt.Fprintf(os.Stdout, "  - %s\n", provider)
			}
		}
		return nil
	},
}
