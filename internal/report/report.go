// Package report serializes a batch run's outcome as a JSON document.
package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/AnyUserName/imgconv-cli/internal/batch"
	"github.com/AnyUserName/imgconv-cli/internal/convert"
)

// SupportedReportVersion is the current schema version.
const SupportedReportVersion = 1

// Report is the top-level output of one conversion run.
type Report struct {
	Version     int       `json:"version"`
	GeneratedAt string    `json:"generated_at"`
	RunID       string    `json:"run_id"`
	Format      string    `json:"format"`
	Quality     int       `json:"quality"`
	Results     []Entry   `json:"results"`
	Failures    []Failure `json:"failures,omitempty"`
	Stats       Stats     `json:"stats"`
}

// Entry describes one successfully converted file.
type Entry struct {
	Input            string `json:"input"`
	Output           string `json:"output"`
	Format           string `json:"format"`
	OriginalSize     int64  `json:"original_size"`
	ConvertedSize    int64  `json:"converted_size"`
	CompressionRatio int    `json:"compression_ratio"` // percent, may be negative
}

// Failure describes one file that did not convert.
type Failure struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// Stats aggregates run metrics.
type Stats struct {
	TotalFiles       int   `json:"total_files"`
	Converted        int   `json:"converted"`
	Failed           int   `json:"failed"`
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
}

// New creates an empty report for a config.
func New(cfg convert.Config) *Report {
	return &Report{
		Version:     SupportedReportVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RunID:       uuid.NewString(),
		Format:      cfg.TargetFormat,
		Quality:     cfg.Quality,
		Results:     []Entry{},
	}
}

// FromOutcome builds a complete report from a batch outcome.
func FromOutcome(cfg convert.Config, out *batch.Outcome) *Report {
	r := New(cfg)
	for _, res := range out.Results {
		r.Results = append(r.Results, Entry{
			Input:            res.File.Name,
			Output:           res.OutputName,
			Format:           res.OutputFormat,
			OriginalSize:     res.OriginalSize,
			ConvertedSize:    res.ConvertedSize,
			CompressionRatio: res.CompressionRatio,
		})
	}
	for _, f := range out.Failures {
		r.Failures = append(r.Failures, Failure{
			Input: f.File.Name,
			Kind:  string(f.Kind),
			Error: f.Err.Error(),
		})
	}
	r.ComputeStats()
	return r
}

// ComputeStats recalculates aggregate statistics from entries.
func (r *Report) ComputeStats() {
	var s Stats
	s.Converted = len(r.Results)
	s.Failed = len(r.Failures)
	s.TotalFiles = s.Converted + s.Failed
	for _, e := range r.Results {
		s.TotalInputBytes += e.OriginalSize
		s.TotalOutputBytes += e.ConvertedSize
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file with stable formatting.
func WriteJSON(r *Report, path string) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
