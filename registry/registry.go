// Package registry holds the global element-to-handler installation table.
//
// Elements declare message handlers by registering a Descriptor at startup,
// usually from an init function or early in main. When an element instance
// is promoted to shared state during finalization, every descriptor under
// the element's tag runs against the new instance and installs its handlers
// on the bus.
//
// Registration is append-only and mirrors what would otherwise be a static
// declaration pass, so the table is guarded by a lock rather than the cell
// borrow discipline and is safe to populate from multiple init functions.
package registry

import (
	"sort"
	"sync"

	"github.com/dshills/snowui/internal/log"
	"github.com/dshills/snowui/state"
)

var logger = log.Logger("registry")

// InstallFunc installs handlers for one promoted element instance. The
// instance is an erased state.Cell of the element's concrete type; a func
// that does not recognize the concrete type must be a no-op.
type InstallFunc func(instance any)

// Descriptor declares handler installation for one element type.
type Descriptor struct {
	// Element is the stable tag the element reports via ElementTag.
	Element string

	// Install runs once per promoted instance of the element.
	Install InstallFunc
}

// Registry maps element tags to their installation descriptors.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string][]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{descriptors: make(map[string][]Descriptor)}
}

// Register adds d to the registry. Multiple descriptors may share one
// element tag; installation runs them in registration order, duplicates
// included. Register panics if d.Element is empty or d.Install is nil.
func (r *Registry) Register(d Descriptor) {
	if d.Element == "" {
		panic("registry: Register with empty element tag")
	}
	if d.Install == nil {
		panic("registry: Register with nil install func")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors[d.Element] = append(r.descriptors[d.Element], d)
	logger.Debug("descriptor registered", "element", d.Element, "total", len(r.descriptors[d.Element]))
}

// InstallForInstance runs every descriptor registered under tag against
// instance, in registration order, and returns the number of descriptors
// run. The lock is not held while install funcs run.
func (r *Registry) InstallForInstance(tag string, instance any) int {
	r.mu.RLock()
	ds := make([]Descriptor, len(r.descriptors[tag]))
	copy(ds, r.descriptors[tag])
	r.mu.RUnlock()

	for _, d := range ds {
		d.Install(instance)
	}
	return len(ds)
}

// HasHandlers reports whether at least one descriptor is registered under
// tag. It consults declarations only, independent of live instances.
func (r *Registry) HasHandlers(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors[tag]) > 0
}

// Len returns the total number of registered descriptors across all tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, ds := range r.descriptors {
		n += len(ds)
	}
	return n
}

// Tags returns all element tags with at least one descriptor, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.descriptors))
	for tag := range r.descriptors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Install adapts a typed install function to an InstallFunc. The adapter
// recovers the concrete cell type from the erased instance; any other
// instance type is ignored.
func Install[E any](fn func(state.Cell[E])) InstallFunc {
	return func(instance any) {
		if cell, ok := instance.(state.Cell[E]); ok {
			fn(cell)
		}
	}
}

var (
	defaultMu       sync.Mutex
	defaultRegistry = New()
)

// Default returns the process-wide registry consulted by element
// finalization.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultRegistry
}

// SetDefault replaces the process-wide registry and returns the previous
// one. Tests use this to run against an isolated registry.
func SetDefault(r *Registry) *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultRegistry
	defaultRegistry = r
	return prev
}
