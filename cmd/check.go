package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgconv-cli/internal/codec"
	"github.com/AnyUserName/imgconv-cli/internal/heif"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check which encoders and the HEIC transcoder are available",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, _ []string) error {
	registry := codec.NewRegistry()

	checks := []struct {
		name string
		ok   bool
		hint string
	}{
		{"jpeg encoder (built-in)", registry.Get("jpeg") != nil, ""},
		{"png encoder (built-in)", registry.Get("png") != nil, ""},
		{"webp encoder (cwebp)", registry.Get("webp") != nil, "install with: apt install webp"},
		{"heic transcoder (heif-convert)", heif.NewLibheifTranscoder().Available(), "install with: apt install libheif-examples"},
	}

	missing := 0
	for _, c := range checks {
		if c.ok {
			fmt.Printf("  ✓ %s\n", c.name)
			continue
		}
		missing++
		if c.hint != "" {
			fmt.Printf("  ✗ %s — %s\n", c.name, c.hint)
		} else {
			fmt.Printf("  ✗ %s\n", c.name)
		}
	}

	if len(registry.Available()) == 0 {
		return fmt.Errorf("no encoders available")
	}
	if missing > 0 {
		fmt.Printf("\n  %d optional tool(s) missing; affected formats will fail per file\n", missing)
	}
	return nil
}
