// Package pipeline wires loading, filtering and annotation together for a
// set of input files.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/satkerboard/ikpagrid/internal/annotate"
	"github.com/satkerboard/ikpagrid/internal/catalog"
	"github.com/satkerboard/ikpagrid/internal/filter"
	"github.com/satkerboard/ikpagrid/internal/loader"
	"github.com/satkerboard/ikpagrid/internal/testable"
)

// ErrNoInputs is returned when Config.Inputs is empty.
var ErrNoInputs = errors.New("no input files")

// Config describes one render run.
type Config struct {
	Inputs  []string
	Sheet   string
	Where   string
	Catalog *catalog.Catalog // Nil means catalog.Default().
	Options annotate.Options

	// Strict aborts the run on the first failing input.
	Strict bool

	// Concurrency bounds parallel loads. Zero means GOMAXPROCS.
	Concurrency int

	FS testable.FileSystem
}

// InputResult is the outcome for one input file.
type InputResult struct {
	Path     string
	Specs    []*annotate.RenderSpec
	Rows     int // Rows rendered, after filtering.
	Duration time.Duration
	Err      error
}

// Result aggregates a run. Inputs keeps the order of Config.Inputs.
type Result struct {
	Inputs   []InputResult
	Duration time.Duration
}

// Specs returns every RenderSpec of the successful inputs, in input order.
func (r *Result) Specs() []*annotate.RenderSpec {
	var out []*annotate.RenderSpec
	for _, in := range r.Inputs {
		out = append(out, in.Specs...)
	}
	return out
}

// Failed returns the inputs that did not load.
func (r *Result) Failed() []InputResult {
	var out []InputResult
	for _, in := range r.Inputs {
		if in.Err != nil {
			out = append(out, in)
		}
	}
	return out
}

// Pipeline renders a set of inputs.
type Pipeline struct {
	config Config
	filter *filter.Filter
}

// New validates cfg and compiles its row filter.
func New(cfg Config) (*Pipeline, error) {
	if len(cfg.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	for _, in := range cfg.Inputs {
		if _, err := loader.ForPath(in); err != nil {
			return nil, err
		}
	}
	f, err := filter.Compile(cfg.Where)
	if err != nil {
		return nil, err
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{config: cfg, filter: f}, nil
}

// Run loads every input concurrently and annotates its tables. A failing
// input is recorded in its InputResult and the others continue, unless
// Strict is set, in which case the first error is returned.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	results := make([]InputResult, len(p.config.Inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)
	for i, path := range p.config.Inputs {
		g.Go(func() error {
			results[i] = p.runInput(gctx, path)
			if results[i].Err != nil {
				slog.Warn("input failed", "path", path, "error", results[i].Err)
				if p.config.Strict {
					return results[i].Err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Inputs: results, Duration: time.Since(start)}, nil
}

func (p *Pipeline) runInput(ctx context.Context, path string) InputResult {
	start := time.Now()
	res := InputResult{Path: path}

	tables, err := loader.Load(ctx, path, loader.Options{Sheet: p.config.Sheet, FS: p.config.FS})
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	for _, t := range tables {
		filtered := p.filter.Apply(t)
		res.Specs = append(res.Specs, annotate.Annotate(filtered, p.config.Catalog, p.config.Options))
		res.Rows += filtered.Len()
	}
	res.Duration = time.Since(start)
	slog.Debug("input rendered", "path", path, "tables", len(res.Specs), "rows", res.Rows, "duration", res.Duration)
	return res
}
