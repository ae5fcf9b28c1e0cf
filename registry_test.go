package shiftgen

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func nestedType(name string, autoMigrate bool) *Type {
	return &Type{
		Schema:      "testing",
		Name:        name,
		Rep:         RepLegacy,
		AutoMigrate: autoMigrate,
		Fields: []Field{
			{ID: 1, Name: "a", Type: "i32"},
		},
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("expected non-nil registry")
	}
	if reg.types == nil {
		t.Error("expected types map to be initialized")
	}
	if reg.IsAutoMigrated() {
		t.Error("expected mode to be unset before first registration")
	}
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()
	typ := nestedType("Nested1", true)

	got, err := reg.Register(typ)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if got != typ {
		t.Error("expected Register to return the registered pointer")
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 registered type, got %d", reg.Len())
	}
	if !reg.IsAutoMigrated() {
		t.Error("expected registration to latch auto-migrate mode on")
	}
}

func TestRegistry_RegisterSamePointerIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	typ := nestedType("Nested1", true)

	if _, err := reg.Register(typ); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	got, err := reg.Register(typ)
	if err != nil {
		t.Fatalf("re-registering same pointer failed: %v", err)
	}
	if got != typ {
		t.Error("expected idempotent registration to return the same pointer")
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 registered type, got %d", reg.Len())
	}
}

func TestRegistry_RegisterDuplicateFails(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	reg := NewRegistry().WithLogger(logger)
	if _, err := reg.Register(nestedType("Nested1", true)); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := reg.Register(nestedType("Nested1", true))
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	if !errors.Is(err, ErrDuplicateType) {
		t.Errorf("expected ErrDuplicateType, got %v", err)
	}
	if !strings.Contains(buf.String(), "duplicate type registration") {
		t.Error("expected duplicate registration warning to be logged")
	}
}

func TestRegistry_RegisterModeConflict(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register(nestedType("Nested1", true)); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := reg.Register(nestedType("Nested2", false))
	if err == nil {
		t.Fatal("expected error for mode conflict")
	}
	if !errors.Is(err, ErrModeConflict) {
		t.Errorf("expected ErrModeConflict, got %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("conflicting type must not be registered, got %d types", reg.Len())
	}
}

func TestRegistry_ModeLatchesOff(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Register(nestedType("Nested1", false)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if reg.IsAutoMigrated() {
		t.Error("expected mode latched off")
	}
	if _, err := reg.Register(nestedType("Nested2", true)); !errors.Is(err, ErrModeConflict) {
		t.Errorf("expected ErrModeConflict, got %v", err)
	}
}

func TestRegistry_MustRegisterPanicsOnConflict(t *testing.T) {
	reg := NewRegistry().WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	reg.MustRegister(nestedType("Nested1", true))

	defer func() {
		if recover() == nil {
			t.Error("expected MustRegister to panic on duplicate")
		}
	}()
	reg.MustRegister(nestedType("Nested1", true))
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()
	typ := reg.MustRegister(nestedType("Nested1", true))

	got, ok := reg.Lookup("testing", "Nested1")
	if !ok {
		t.Fatal("expected Lookup to find testing.Nested1")
	}
	if got != typ {
		t.Error("expected Lookup to return the registered pointer")
	}

	// Repeated lookups must keep returning the identical pointer.
	again, _ := reg.Lookup("testing", "Nested1")
	if again != got {
		t.Error("expected stable pointer across repeated lookups")
	}

	if _, ok := reg.Lookup("testing", "Missing"); ok {
		t.Error("expected Lookup miss for unregistered type")
	}
}

func TestRegistry_TypesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(nestedType("Nested3", true))
	reg.MustRegister(nestedType("Nested1", true))
	reg.MustRegister(nestedType("Nested2", true))

	types := reg.Types()
	if len(types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(types))
	}
	for i, want := range []string{"Nested1", "Nested2", "Nested3"} {
		if types[i].Name != want {
			t.Errorf("types[%d] = %s, want %s", i, types[i].Name, want)
		}
	}
}

func TestRegistry_Schemas(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(&Type{Schema: "zoo", Name: "A", AutoMigrate: true})
	reg.MustRegister(&Type{Schema: "testing", Name: "B", AutoMigrate: true})
	reg.MustRegister(&Type{Schema: "testing", Name: "C", AutoMigrate: true})

	got := reg.Schemas()
	if len(got) != 2 || got[0] != "testing" || got[1] != "zoo" {
		t.Errorf("Schemas() = %v, want [testing zoo]", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() == nil {
		t.Fatal("expected non-nil default registry")
	}
	if DefaultRegistry() != defaultRegistry {
		t.Error("expected DefaultRegistry() to return the process-wide registry")
	}
	// The accessor shares the package namespace with the Requiredness
	// constants; Default stays the constant.
	if Default.String() != "default" {
		t.Errorf("Default.String() = %q", Default.String())
	}
}
