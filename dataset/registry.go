// Package dataset associates named preprocessing pipelines with the
// data sources that feed them, and runs the per-item transform stage
// of a parallel data loader.
package dataset

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/imagepipe/imagepipe/imageproc"
)

// PreprocessFunc is a per-item transform: one decoded image in, one
// normalized fixed-size tensor out. Implementations must be safe for
// concurrent use with independent random sources.
type PreprocessFunc func(t imageproc.Tensor, mode imageproc.Mode, rng *rand.Rand) (imageproc.Tensor, error)

// Entry is a registered preprocessing pipeline together with the
// output shape it advertises, as (height, width, channels).
type Entry struct {
	Preprocess  PreprocessFunc
	OutputShape [3]int
}

// Registry maps stable dataset identifiers to preprocessing entries.
// Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry under the given name, overwriting any
// existing entry.
func (r *Registry) Register(name string, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = e
}

// Unregister removes an entry, reporting whether it existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[name]
	delete(r.entries, name)
	return ok
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns all registered identifiers in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

// defaultRegistry holds the built-in pipelines.
var defaultRegistry = NewRegistry()

// Register adds an entry to the default registry.
func Register(name string, e Entry) {
	defaultRegistry.Register(name, e)
}

// Get looks up an entry in the default registry.
func Get(name string) (Entry, bool) {
	return defaultRegistry.Get(name)
}

// Names lists the default registry's identifiers.
func Names() []string {
	return defaultRegistry.Names()
}

func init() {
	opts := imageproc.DefaultOptions()
	Register("imagenet2012", Entry{
		Preprocess: func(t imageproc.Tensor, mode imageproc.Mode, rng *rand.Rand) (imageproc.Tensor, error) {
			return imageproc.Preprocess(t, mode, rng, opts)
		},
		OutputShape: [3]int{opts.OutputHeight, opts.OutputWidth, 3},
	})
}

func lookup(r *Registry, name string) (Entry, error) {
	if r == nil {
		r = defaultRegistry
	}
	e, ok := r.Get(name)
	if !ok {
		return Entry{}, fmt.Errorf("dataset: no preprocessing registered for %q", name)
	}
	return e, nil
}
