package runner

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/pseudomuto/unitdiff/pkg/consts"
	"github.com/pseudomuto/unitdiff/pkg/parser"
	"github.com/pseudomuto/unitdiff/pkg/semdiff"
	"github.com/pseudomuto/unitdiff/pkg/unit"
)

type (
	// Sink records the verdicts of a completed run, keyed by a run identifier
	// so successive CI runs can be compared over time.
	Sink interface {
		Record(ctx context.Context, runID string, results []*Result) error
	}

	// Runner compares a corpus: every unit-dump file under one directory
	// against the file with the same relative name under another.
	//
	// Pairs are compared concurrently up to the configured worker count, but
	// results are always returned in sorted name order, so output and exit
	// codes are stable across runs.
	Runner struct {
		workers int
		opts    []semdiff.Option
		sink    Sink
	}

	// Config contains configuration options for creating a new Runner.
	Config struct {
		// Workers bounds comparison concurrency (values below 1 mean the
		// default)
		Workers int

		// Options is the comparison policy applied to every pair
		Options []semdiff.Option

		// Sink, when set, records the verdicts after the run completes
		Sink Sink
	}

	// Result contains the outcome of comparing a single pair of unit dumps.
	Result struct {
		// Name is the relative file name shared by the pair
		Name string

		// Status indicates the outcome of the comparison
		Status Status

		// Err is the divergence for StatusDivergent, or the read/parse
		// failure for StatusError
		Err error

		// Duration records how long the pair took to load and compare
		Duration time.Duration
	}

	// Status represents the outcome of comparing one pair.
	Status string
)

const (
	// StatusEquivalent indicates the pair compared equal
	StatusEquivalent Status = "equivalent"

	// StatusDivergent indicates the pair differs, with the divergence in Err
	StatusDivergent Status = "divergent"

	// StatusError indicates the pair could not be compared
	StatusError Status = "error"
)

// New creates a new batch runner with the provided configuration.
//
// Example:
//
//	r := runner.New(runner.Config{
//		Workers: 8,
//		Options: []semdiff.Option{semdiff.IgnoreBodies()},
//	})
//
//	results, err := r.Run(ctx, "out/base", "out/candidate")
func New(config Config) *Runner {
	workers := config.Workers
	if workers < 1 {
		workers = consts.DefaultWorkers
	}

	return &Runner{
		workers: workers,
		opts:    config.Options,
		sink:    config.Sink,
	}
}

// Run compares every unit-dump file found under leftDir against its
// counterpart under rightDir and returns one Result per name, sorted by
// name. A file present on only one side produces a StatusError result rather
// than failing the run.
//
// When a sink is configured the verdicts are recorded after all pairs have
// been compared; a sink failure is returned alongside the complete results.
func (r *Runner) Run(ctx context.Context, leftDir, rightDir string) ([]*Result, error) {
	names, err := collectNames(leftDir, rightDir)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(names))

	var wg sync.WaitGroup
	work := make(chan int)

	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = r.comparePair(names[i], leftDir, rightDir)
			}
		}()
	}

	for i := range names {
		work <- i
	}
	close(work)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "batch comparison interrupted")
	}

	if r.sink != nil {
		runID := time.Now().UTC().Format("20060102150405")
		if err := r.sink.Record(ctx, runID, results); err != nil {
			return results, errors.Wrap(err, "failed to record verdicts")
		}
	}

	return results, nil
}

// comparePair loads and compares one pair of dumps. All failure modes land
// in the Result; this never panics the worker.
func (r *Runner) comparePair(name, leftDir, rightDir string) *Result {
	start := time.Now()

	result := func(status Status, err error) *Result {
		return &Result{
			Name:     name,
			Status:   status,
			Err:      err,
			Duration: time.Since(start),
		}
	}

	left, err := loadUnit(filepath.Join(leftDir, name))
	if err != nil {
		return result(StatusError, err)
	}

	right, err := loadUnit(filepath.Join(rightDir, name))
	if err != nil {
		return result(StatusError, err)
	}

	if err := semdiff.Units(left, right, r.opts...); err != nil {
		return result(StatusDivergent, err)
	}

	return result(StatusEquivalent, nil)
}

func loadUnit(path string) (*unit.Unit, error) {
	program, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	return program.Unit()
}

// collectNames returns the union of relative unit-dump names under both
// directories, sorted. Names only present on one side are included so the
// run reports them instead of silently skipping.
func collectNames(leftDir, rightDir string) ([]string, error) {
	seen := make(map[string]struct{})

	for _, dir := range []string{leftDir, rightDir} {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != consts.UnitExt {
				return nil
			}

			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			seen[rel] = struct{}{}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s", dir)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
