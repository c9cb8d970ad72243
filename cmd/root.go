package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "imgconv",
	Short: "Local batch image format converter",
	Long: `imgconv — converts images (PNG, JPEG, HEIC/HEIF, WebP, ...) into
WebP, PNG or JPEG at a chosen quality, entirely on this machine.

HEIC/HEIF inputs are routed through heif-convert before re-encoding;
WebP output uses cwebp. Failed files are reported and skipped, the
rest of the batch completes normally.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgconv %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imgconv] "+format+"\n", args...)
	}
}
