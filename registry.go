// Package shiftgen is the runtime support library for shiftgen-generated
// binding packages. It hosts the canonical type registry that generated
// packages register their descriptors with, and the process-wide
// auto-migration state baked in at generation time.
package shiftgen

import (
	"log/slog"
	"sort"
	"sync"
)

// migrationMode is the process-wide auto-migration state. It is latched
// by the first descriptor registration and must agree across all
// generated packages linked into the binary.
type migrationMode int

const (
	modeUnset migrationMode = iota
	modeOff
	modeOn
)

// Registry is the canonical type registry. It is the single source of
// truth for runtime descriptors: both binding namespaces of a schema
// hold pointers into the same registry entry, which is what makes the
// identity guarantee under auto-migration hold.
//
// The zero value is not usable; create one with NewRegistry. Most code
// uses the process-wide default registry via the package-level funcs.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]*Type
	mode   migrationMode
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Type),
	}
}

// WithLogger sets a custom logger for the registry.
// If not set, slog.Default() will be used.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

// Register adds a descriptor under its canonical key.
//
// Registering the exact pointer that is already present is an idempotent
// no-op: re-importing a binding package never re-aliases an entry. A
// distinct descriptor under an occupied key fails with ErrDuplicateType.
// A descriptor whose AutoMigrate marker disagrees with the mode latched
// by earlier registrations fails with ErrModeConflict.
//
// On success the registered pointer is returned, which is always the
// pointer now held by the registry.
func (r *Registry) Register(t *Type) (*Type, error) {
	key := t.Key()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.types[key]; ok {
		if existing == t {
			return existing, nil
		}
		r.log().Warn("duplicate type registration",
			slog.String("schema", t.Schema),
			slog.String("type", t.Name),
			slog.String("key", key))
		return nil, Errorf(CodeConflict, "type %q already registered: %s", key, ErrDuplicateType)
	}

	want := modeOff
	if t.AutoMigrate {
		want = modeOn
	}
	if r.mode == modeUnset {
		r.mode = want
	} else if r.mode != want {
		return nil, Errorf(CodeConflict,
			"type %q generated with auto-migrate=%v, registry latched %v: %s",
			key, t.AutoMigrate, r.mode == modeOn, ErrModeConflict)
	}

	r.types[key] = t
	return t, nil
}

// MustRegister is Register but panics on error. Generated init functions
// use it; a conflicting registration is a build mistake, not a runtime
// condition worth recovering from.
func (r *Registry) MustRegister(t *Type) *Type {
	registered, err := r.Register(t)
	if err != nil {
		panic("shiftgen: " + err.Error())
	}
	return registered
}

// Lookup returns the descriptor registered for schema.name.
func (r *Registry) Lookup(schema, name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[schema+"."+name]
	return t, ok
}

// Types returns all registered descriptors sorted by canonical key.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Schemas returns the distinct schema names with registered types, sorted.
func (r *Registry) Schemas() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, t := range r.types {
		seen[t.Schema] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// IsAutoMigrated reports whether the descriptors registered so far were
// generated with auto-migration enabled. False until the first
// registration latches the mode.
func (r *Registry) IsAutoMigrated() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mode == modeOn
}

// defaultRegistry is the process-wide registry generated packages
// register with.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a descriptor to the default registry.
func Register(t *Type) (*Type, error) {
	return defaultRegistry.Register(t)
}

// MustRegister adds a descriptor to the default registry, panicking on
// conflict. Intended for generated init functions.
func MustRegister(t *Type) *Type {
	return defaultRegistry.MustRegister(t)
}

// Lookup returns the descriptor registered for schema.name in the
// default registry.
func Lookup(schema, name string) (*Type, bool) {
	return defaultRegistry.Lookup(schema, name)
}

// Types returns the default registry's descriptors sorted by key.
func Types() []*Type {
	return defaultRegistry.Types()
}

// IsAutoMigrated reports the process-wide auto-migration mode, as
// latched by the generated packages linked into this binary.
func IsAutoMigrated() bool {
	return defaultRegistry.IsAutoMigrated()
}
