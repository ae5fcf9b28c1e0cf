// Package testdata contains schema structs used by provider tests.
package testdata

// Nested1 is the outermost struct of the nesting chain.
type Nested1 struct {
	A Nested2 `shift:"1"`
}

// Nested2 sits in the middle of the nesting chain.
type Nested2 struct {
	B Nested3 `shift:"1"`
}

// Nested3 is the innermost struct of the nesting chain.
type Nested3 struct {
	C int32 `shift:"1,optional"`
}

// Person exercises the wider field-type mapping.
type Person struct {
	Name    string           `shift:"1,required"`
	Age     int16            `shift:"2"`
	Emails  []string         `shift:"3"`
	Scores  map[string]int64 `shift:"4"`
	Avatar  []byte           `shift:"5"`
	Manager *Person          `shift:"6"`
	Height  float64
}

// unexported is skipped by extraction.
type unexported struct {
	X int32
}
