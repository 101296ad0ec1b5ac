package instrumentor

import (
	"context"
	"sync"

	"github.com/lilatomic/alpacalert/pkg/alpacalert"
)

// Registration pairs a Kind with the Instrumentor that should handle
// it; RegisterMany takes a sequence of these, preserving order.
type Registration struct {
	Kind         Kind
	Instrumentor Instrumentor
}

// Instrumentor translates an external object into one or more Scanners,
// recursing into the Registry for sub-objects as needed.
type Instrumentor interface {
	// Registrations lists the (Kind, Instrumentor) pairs this
	// Instrumentor wants bound when it is installed into a Registry via
	// Registry.Install. Most leaf instrumentors return a single pair for
	// themselves.
	Registrations() []Registration
	// Instrument builds Scanners for kind using params. It may call
	// back into registry to instrument sub-objects. ctx bounds any I/O
	// the Instrumentor performs against a live backend.
	Instrument(ctx context.Context, registry *Registry, kind Kind, params Params) ([]alpacalert.Scanner, error)
}

// Registry is a mutable Kind -> Instrumentor dispatch table. At any
// time a Kind maps to exactly one Instrumentor, which may be a
// Composite fan-out wrapper over several constituent instrumentors
// registered for the same Kind.
type Registry struct {
	mu            sync.Mutex
	instrumentors map[Kind]Instrumentor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{instrumentors: make(map[Kind]Instrumentor)}
}

// Register binds instrumentor to kind. If kind is already bound, the
// new instrumentor is fanned out alongside the existing one (ordered,
// composite semantics) rather than replacing it.
func (r *Registry) Register(kind Kind, i Instrumentor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registerLocked(kind, i)
}

// RegisterMany registers each pair in order, equivalent to calling
// Register repeatedly.
func (r *Registry) RegisterMany(regs []Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range regs {
		r.registerLocked(reg.Kind, reg.Instrumentor)
	}
}

// Install registers every (Kind, Instrumentor) pair the Instrumentor
// itself reports via Registrations.
func (r *Registry) Install(i Instrumentor) {
	r.RegisterMany(i.Registrations())
}

// Extend merges other's bindings into r, preserving each Kind's
// constituent registration order. r and other may continue to diverge
// independently afterwards; Extend takes a point-in-time snapshot.
func (r *Registry) Extend(other *Registry) {
	other.mu.Lock()
	snapshot := make(map[Kind]Instrumentor, len(other.instrumentors))
	for k, v := range other.instrumentors {
		snapshot[k] = v
	}
	other.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range snapshot {
		r.registerLocked(k, v)
	}
}

// registerLocked flattens incoming composites so that a Kind's bound
// instrumentor is never a composite-of-composites: nesting would
// violate the ordered, flat fan-out the spec requires.
func (r *Registry) registerLocked(kind Kind, i Instrumentor) {
	if c, ok := i.(*composite); ok {
		for _, sub := range c.instrumentors {
			r.registerOneLocked(kind, sub)
		}
		return
	}
	r.registerOneLocked(kind, i)
}

func (r *Registry) registerOneLocked(kind Kind, i Instrumentor) {
	existing, ok := r.instrumentors[kind]
	if !ok {
		r.instrumentors[kind] = i
		return
	}
	if c, ok := existing.(*composite); ok {
		c.instrumentors = append(c.instrumentors, i)
		return
	}
	r.instrumentors[kind] = &composite{kind: kind, instrumentors: []Instrumentor{existing, i}}
}

// Lookup returns the Instrumentor bound to kind, if any.
func (r *Registry) Lookup(kind Kind) (Instrumentor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.instrumentors[kind]
	return i, ok
}

// Constituents returns the ordered list of Instrumentors bound to
// kind. The second return value reports whether kind is bound to a
// composite fan-out (more than one registration) as opposed to a
// single Instrumentor.
func (r *Registry) Constituents(kind Kind) ([]Instrumentor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.instrumentors[kind]
	if !ok {
		return nil, false
	}
	if c, ok := i.(*composite); ok {
		out := make([]Instrumentor, len(c.instrumentors))
		copy(out, c.instrumentors)
		return out, true
	}
	return []Instrumentor{i}, false
}

// Instrument dispatches to the Instrumentor bound to kind. It never
// swallows a failure: a missing binding surfaces as *NoProviderError,
// and any error the Instrumentor returns is wrapped as
// *InstrumentError.
func (r *Registry) Instrument(ctx context.Context, kind Kind, params Params) ([]alpacalert.Scanner, error) {
	i, ok := r.Lookup(kind)
	if !ok {
		return nil, &NoProviderError{Kind: kind}
	}
	scanners, err := i.Instrument(ctx, r, kind, params)
	if err != nil {
		return nil, &InstrumentError{Kind: kind, Cause: err}
	}
	return scanners, nil
}

// composite is the registry-internal ordered fan-out of several
// Instrumentors sharing one Kind. Its own Instrument produces exactly
// one Scanner: an AllOf System wrapping the concatenation of each
// constituent's output, in registration order.
type composite struct {
	kind          Kind
	instrumentors []Instrumentor
}

func (c *composite) Registrations() []Registration { return nil }

func (c *composite) Instrument(ctx context.Context, registry *Registry, kind Kind, params Params) ([]alpacalert.Scanner, error) {
	var children []alpacalert.Scanner
	for _, i := range c.instrumentors {
		scanners, err := i.Instrument(ctx, registry, kind, params)
		if err != nil {
			return nil, err
		}
		children = append(children, scanners...)
	}
	return []alpacalert.Scanner{alpacalert.NewAllOf(kind.String(), children)}, nil
}
