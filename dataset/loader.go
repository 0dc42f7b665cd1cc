package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/imagepipe/imagepipe/imageproc"
)

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// Dataset names the registered preprocessing pipeline to apply.
	Dataset string

	// Mode selects training or evaluation preprocessing.
	Mode imageproc.Mode

	// Workers is the number of concurrent transform goroutines.
	Workers int

	// QueueDepth bounds the output channel.
	QueueDepth int

	// Seed is the base random seed. Worker i draws from a source
	// seeded with Seed+i, so a fixed seed reproduces each worker's
	// stream independent of scheduling.
	Seed int64

	// SkipErrors drops items whose transform fails instead of
	// aborting the run. Each skip is logged.
	SkipErrors bool
}

// Loader runs the per-item preprocessing transform over a stream of
// decoded images, in parallel, feeding a bounded output channel. The
// pipeline itself is cancellation-free; cancellation lives here, at
// the scheduling layer.
type Loader struct {
	cfg   LoaderConfig
	entry Entry
}

// NewLoader resolves the named pipeline from the registry (the default
// registry if r is nil) and validates the configuration.
func NewLoader(cfg LoaderConfig, r *Registry) (*Loader, error) {
	entry, err := lookup(r, cfg.Dataset)
	if err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("dataset: workers must be positive, got %d", cfg.Workers)
	}
	if cfg.QueueDepth < 0 {
		return nil, fmt.Errorf("dataset: queue depth must not be negative, got %d", cfg.QueueDepth)
	}
	return &Loader{cfg: cfg, entry: entry}, nil
}

// OutputShape returns the (height, width, channels) the resolved
// pipeline advertises.
func (l *Loader) OutputShape() [3]int {
	return l.entry.OutputShape
}

// Run starts the workers and returns the bounded output channel plus a
// wait function that blocks until all workers have stopped and reports
// the first error. The output channel is closed once every worker has
// finished, whether the source was drained or the run was aborted.
func (l *Loader) Run(ctx context.Context, src <-chan imageproc.Tensor) (<-chan imageproc.Tensor, func() error) {
	out := make(chan imageproc.Tensor, l.cfg.QueueDepth)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < l.cfg.Workers; i++ {
		rng := rand.New(rand.NewSource(l.cfg.Seed + int64(i)))
		worker := i
		g.Go(func() error {
			return l.work(ctx, worker, rng, src, out)
		})
	}

	go func() {
		g.Wait() //nolint:errcheck
		close(out)
	}()

	return out, g.Wait
}

func (l *Loader) work(ctx context.Context, worker int, rng *rand.Rand, src <-chan imageproc.Tensor, out chan<- imageproc.Tensor) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-src:
			if !ok {
				return nil
			}

			processed, err := l.entry.Preprocess(t, l.cfg.Mode, rng)
			if err != nil {
				if l.cfg.SkipErrors {
					slog.Warn("skipping image", "dataset", l.cfg.Dataset, "worker", worker, "error", err)
					continue
				}
				return err
			}

			select {
			case out <- processed:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
