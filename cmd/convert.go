package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgconv-cli/internal/batch"
	"github.com/AnyUserName/imgconv-cli/internal/codec"
	"github.com/AnyUserName/imgconv-cli/internal/config"
	"github.com/AnyUserName/imgconv-cli/internal/convert"
	"github.com/AnyUserName/imgconv-cli/internal/hasher"
	"github.com/AnyUserName/imgconv-cli/internal/heif"
	"github.com/AnyUserName/imgconv-cli/internal/report"
	"github.com/AnyUserName/imgconv-cli/internal/source"
)

var (
	convertOutDir      string
	convertFormat      string
	convertQuality     int
	convertWorkers     int
	convertPreset      string
	convertPresetsFile string
	convertReportPath  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file_or_dir>...",
	Short: "Convert images to a target format at a chosen quality",
	Long: `Converts the given image files (directories are scanned recursively)
into the target format. HEIC/HEIF inputs are transcoded to JPEG first.

Failed files are listed at the end and do not abort the batch; output
names keep the original basename with the extension replaced. A name
that would be produced twice gets a short content-hash suffix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutDir, "out", "o", "./converted", "output directory")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "webp", "target format: webp, png, jpg, jpeg")
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", 90, "quality 10-100 (ignored for png)")
	convertCmd.Flags().IntVarP(&convertWorkers, "workers", "w", 1, "parallel conversions (1 = sequential, input order)")
	convertCmd.Flags().StringVarP(&convertPreset, "preset", "p", "", "named preset (overrides --format/--quality)")
	convertCmd.Flags().StringVar(&convertPresetsFile, "presets-file", "", "YAML presets file")
	convertCmd.Flags().StringVar(&convertReportPath, "report", "", "write a JSON run report to this path")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg := convert.Config{TargetFormat: convertFormat, Quality: convertQuality}
	if convertPreset != "" {
		p, err := config.Resolve(convertPreset, convertPresetsFile)
		if err != nil {
			return err
		}
		cfg = p.Config()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	files, err := source.Scan(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no images found in %s", strings.Join(args, ", "))
	}

	registry := codec.NewRegistry()
	logVerbose("%s", registry.String())
	logVerbose("target: %s q=%d, %d files", cfg.TargetFormat, cfg.Quality, len(files))

	if err := os.MkdirAll(convertOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	runner := &batch.Runner{
		Converter: convert.New(registry, heif.NewNormalizer(heif.NewLibheifTranscoder())),
		Workers:   convertWorkers,
		OnProgress: func(p batch.Progress) {
			fmt.Fprintf(os.Stderr, "\r  converting... %d/%d (%.0f%%)",
				p.Completed, p.Total, p.Fraction()*100)
		},
	}

	out, err := runner.Run(cmd.Context(), files, cfg)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	written, err := writeOutputs(out, convertOutDir)
	if err != nil {
		return err
	}

	printSummary(out, written, time.Since(start))

	if convertReportPath != "" {
		if err := report.WriteJSON(report.FromOutcome(cfg, out), convertReportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logVerbose("report: %s", convertReportPath)
	}

	if len(out.Results) == 0 && len(out.Failures) > 0 {
		return fmt.Errorf("all %d files failed to convert", len(out.Failures))
	}
	return nil
}

// writeOutputs saves each result under its computed name. When two
// inputs map to the same output name, later ones get a content-hash
// infix: name.<hash8>.ext
func writeOutputs(out *batch.Outcome, dir string) (int, error) {
	taken := make(map[string]bool, len(out.Results))
	written := 0
	for _, res := range out.Results {
		data, err := res.Output.Bytes()
		if err != nil {
			return written, fmt.Errorf("%s: %w", res.OutputName, err)
		}

		name := res.OutputName
		if taken[name] {
			ext := filepath.Ext(name)
			name = strings.TrimSuffix(name, ext) + "." + hasher.ContentHash(data, 8) + ext
		}
		taken[name] = true

		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		logVerbose("wrote %s (%s)", name, formatBytes(int64(len(data))))
		written++
	}
	return written, nil
}

func printSummary(out *batch.Outcome, written int, elapsed time.Duration) {
	var inBytes, outBytes int64
	for _, r := range out.Results {
		inBytes += r.OriginalSize
		outBytes += r.ConvertedSize
	}

	fmt.Printf("  Converted:   %d of %d files\n", written, len(out.Results)+len(out.Failures))
	fmt.Printf("  Input size:  %s\n", formatBytes(inBytes))
	fmt.Printf("  Output size: %s  (%+d%%)\n", formatBytes(outBytes), -convert.Ratio(inBytes, outBytes))
	fmt.Printf("  Time:        %s\n", elapsed.Round(time.Millisecond))

	if len(out.Failures) > 0 {
		fmt.Printf("  Failed:      %d\n", len(out.Failures))
		for _, f := range out.Failures {
			fmt.Printf("    ✗ %s\n", f.Error())
		}
	}
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
