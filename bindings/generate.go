// Package bindings holds checked-in generated binding packages used by
// the runtime's own tests.
package bindings

//go:generate go run github.com/shiftgen/shiftgen/cmd/shiftgen gen . --schema testing.yaml --import-base github.com/shiftgen/shiftgen/bindings --auto-migrate
