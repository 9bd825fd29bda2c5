package mo

import "fmt"

// Causality marks a declaration as an input or output connector variable.
type Causality string

const (
	CausalityNone   Causality = ""
	CausalityInput  Causality = "input"
	CausalityOutput Causality = "output"
)

// ParseCausality validates a causality tag.
func ParseCausality(s string) (Causality, error) {
	switch c := Causality(s); c {
	case CausalityNone, CausalityInput, CausalityOutput:
		return c, nil
	}
	return CausalityNone, fmt.Errorf("%q: %w", s, ErrInvalidCausality)
}

// Flux marks a declaration as a flow or stream variable.
type Flux string

const (
	FluxNone   Flux = ""
	FluxFlow   Flux = "flow"
	FluxStream Flux = "stream"
)

// ParseFlux validates a flux tag.
func ParseFlux(s string) (Flux, error) {
	switch f := Flux(s); f {
	case FluxNone, FluxFlow, FluxStream:
		return f, nil
	}
	return FluxNone, fmt.Errorf("%q: %w", s, ErrInvalidFlux)
}

// DeclPrefix is a bit set of declaration prefixes.
type DeclPrefix uint8

const (
	DeclFinal DeclPrefix = 1 << iota
	DeclInner
	DeclOuter
	DeclReplaceable
)

// Declaration is a typed named element of a model: a constant, parameter,
// variable or component instance, depending on the role it is added under.
type Declaration struct {
	TypeName      string        // Primitive (Real, Integer, ...) or referenced model name
	Name          string        // Declared identifier
	ArrayDims     []string      // Array dimension expressions, empty for scalars
	Modifications Modifications // Attribute overrides, e.g. start, min, fixed
	Value         string        // Default binding, rendered as "= value"
	Comment       string        // Trailing description string
	Causality     Causality
	Flux          Flux
	Prefixes      DeclPrefix
	Discrete      bool   // Discrete-time variability prefix
	Condition     string // Conditional declaration, rendered as "if <expr>"
	Annotation    Modifications
}

// NewDeclaration creates a declaration, validating that the type name is
// present and the identifier matches the Modelica grammar.
func NewDeclaration(typeName, name string) (*Declaration, error) {
	if typeName == "" {
		return nil, fmt.Errorf("declaration type: %w", ErrEmptyName)
	}
	if err := checkIdent(name); err != nil {
		return nil, err
	}
	return &Declaration{TypeName: typeName, Name: name}, nil
}
