// Package batch sequences per-file conversions over an input list,
// reporting fractional progress and isolating per-file failures.
package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AnyUserName/imgconv-cli/internal/convert"
	"github.com/AnyUserName/imgconv-cli/internal/source"
)

// Progress is a batch progress snapshot, emitted once per settled file.
// Completed never decreases within a run.
type Progress struct {
	Completed int
	Total     int
}

// Fraction returns completed/total in [0,1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Outcome is the final state of a batch run. Results holds successes
// only, in input order; Failures holds the rest, also in input order.
// Every input file appears in exactly one of the two.
type Outcome struct {
	Results  []*convert.Result
	Failures []*convert.Failure
}

// Runner executes batches. Zero value is not usable; set Converter.
type Runner struct {
	Converter *convert.Converter

	// Workers bounds concurrent conversions. At most one decoded surface
	// per worker is resident. Values <= 1 select the sequential mode,
	// which processes and completes files strictly in input order.
	Workers int

	// OnProgress, when set, is called after each file settles. Under
	// concurrency the calls arrive in completion order, but Completed is
	// still monotonically non-decreasing.
	OnProgress func(Progress)
}

// Run converts every file with the given config. A failed file never
// aborts the run; cancellation is honored between files only, so a
// started conversion always releases its resources. Each call is
// self-contained: no state carries over between runs.
func (r *Runner) Run(ctx context.Context, files []*source.File, cfg convert.Config) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := &Outcome{}
	total := len(files)
	if total == 0 {
		return out, nil
	}

	results := make([]*convert.Result, total)
	failures := make([]*convert.Failure, total)

	if r.Workers <= 1 {
		for i, f := range files {
			if err := ctx.Err(); err != nil {
				r.collect(out, results[:i], failures[:i])
				return out, err
			}
			results[i], failures[i] = r.Converter.Convert(f, cfg)
			r.emit(Progress{Completed: i + 1, Total: total})
		}
		r.collect(out, results, failures)
		return out, nil
	}

	var (
		mu        sync.Mutex
		completed int
	)
	g := &errgroup.Group{}
	g.SetLimit(r.Workers)
	for i, f := range files {
		if ctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i], failures[i] = r.Converter.Convert(f, cfg)

			mu.Lock()
			completed++
			p := Progress{Completed: completed, Total: total}
			if r.OnProgress != nil {
				r.OnProgress(p)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are per-file

	r.collect(out, results, failures)
	return out, ctx.Err()
}

func (r *Runner) emit(p Progress) {
	if r.OnProgress != nil {
		r.OnProgress(p)
	}
}

// collect reassembles the per-index slots into input-ordered lists,
// independent of completion order.
func (r *Runner) collect(out *Outcome, results []*convert.Result, failures []*convert.Failure) {
	for i := range results {
		switch {
		case results[i] != nil:
			out.Results = append(out.Results, results[i])
		case failures[i] != nil:
			out.Failures = append(out.Failures, failures[i])
		}
	}
}
