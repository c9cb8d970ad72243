package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgconv-cli/internal/codec"
	"github.com/AnyUserName/imgconv-cli/internal/config"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available target formats and built-in presets",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		registry := codec.NewRegistry()
		fmt.Printf("  Targets: %s\n", strings.Join(registry.Available(), ", "))
		fmt.Printf("  Presets: %s\n", strings.Join(config.Names(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
