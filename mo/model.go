package mo

import (
	"fmt"
	"strconv"
)

// Kind selects the class specialization a model serializes as.
type Kind string

const (
	KindModel     Kind = "model"
	KindClass     Kind = "class"
	KindConnector Kind = "connector"
	KindRecord    Kind = "record"
	KindBlock     Kind = "block"
	KindPackage   Kind = "package"
	KindFunction  Kind = "function"
	KindType      Kind = "type"
)

// ParseKind validates a kind tag.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindModel, KindClass, KindConnector, KindRecord, KindBlock,
		KindPackage, KindFunction, KindType:
		return k, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidKind)
}

// Prefix is a bit set of class prefixes.
type Prefix uint8

const (
	PrefixFinal Prefix = 1 << iota
	PrefixEncapsulated
	PrefixPartial
	PrefixReplaceable
)

// WithinClause names the enclosing package scope. An empty Name renders as a
// bare "within;".
type WithinClause struct {
	Name string
}

// Phase selects the initial or the simulation-time variant of an equation or
// algorithm block.
type Phase string

const (
	PhaseInitial Phase = "initial"
	PhaseNormal  Phase = "normal"
)

// Model is the root of a Modelica class declaration tree. It exclusively owns
// every node reachable from it; cross-model references are plain name
// strings, never object pointers.
type Model struct {
	Name     string
	Kind     Kind
	Comment  string
	Within   *WithinClause
	Prefixes Prefix

	Imports []*Import
	Extends []*Extends

	Public    *Section
	Protected *Section

	InitialEquations  []*Equation
	Equations         []*Equation
	InitialAlgorithms []*Statement
	Algorithms        []*Statement

	Annotation Modifications

	names map[string]bool // declared identifiers, for duplicate detection
}

// NewModel creates an empty model of the given kind. The name must match the
// Modelica identifier grammar.
func NewModel(name string, kind Kind) (*Model, error) {
	if err := checkIdent(name); err != nil {
		return nil, err
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	return &Model{
		Name:      name,
		Kind:      kind,
		Public:    NewSection(),
		Protected: NewSection(),
		names:     map[string]bool{},
	}, nil
}

// SetWithin sets the enclosing package scope. An empty name produces a bare
// "within;" clause; call with the clause removed via m.Within = nil.
func (m *Model) SetWithin(name string) {
	m.Within = &WithinClause{Name: name}
}

// AddImport appends a qualified import clause. Duplicates are legal Modelica
// and deliberately not detected.
func (m *Model) AddImport(path string) *Import {
	imp := &Import{Path: path}
	m.Imports = append(m.Imports, imp)
	return imp
}

// AddImportAlias appends an aliased import, rendered as "import alias = path;".
func (m *Model) AddImportAlias(alias, path string) (*Import, error) {
	if err := checkIdent(alias); err != nil {
		return nil, err
	}
	imp := &Import{Path: path, Alias: alias}
	m.Imports = append(m.Imports, imp)
	return imp, nil
}

// AddImportWildcard appends an unqualified import, rendered as "import path.*;".
func (m *Model) AddImportWildcard(path string) *Import {
	imp := &Import{Path: path, Wildcard: true}
	m.Imports = append(m.Imports, imp)
	return imp
}

// AddImportSelective appends a multiple-definition import, rendered as
// "import path.{a, b};".
func (m *Model) AddImportSelective(path string, names ...string) *Import {
	imp := &Import{Path: path, Names: names}
	m.Imports = append(m.Imports, imp)
	return imp
}

// AddExtends appends an inheritance clause. Extends is an ordered sequence;
// a model with multiple inheritance calls this once per clause.
func (m *Model) AddExtends(typeName string, mods ...Modification) (*Extends, error) {
	if typeName == "" {
		return nil, fmt.Errorf("extends type: %w", ErrEmptyName)
	}
	ext := &Extends{TypeName: typeName, Modifications: mods}
	m.Extends = append(m.Extends, ext)
	return ext, nil
}

// AddDeclaration appends a declaration to the selected visibility partition
// and role. The model is left unchanged on error.
func (m *Model) AddDeclaration(vis Visibility, role Role, decl *Declaration) error {
	if decl == nil {
		return fmt.Errorf("declaration: %w", ErrEmptyName)
	}
	if decl.TypeName == "" {
		return fmt.Errorf("declaration type: %w", ErrEmptyName)
	}
	if err := checkIdent(decl.Name); err != nil {
		return err
	}
	if m.names == nil {
		m.names = map[string]bool{}
	}
	if m.names[decl.Name] {
		return fmt.Errorf("%q: %w", decl.Name, ErrDuplicateName)
	}
	section, err := m.section(vis)
	if err != nil {
		return err
	}
	if err := section.add(role, decl); err != nil {
		return err
	}
	m.names[decl.Name] = true
	return nil
}

// AddClass appends a nested local class definition to the selected
// visibility partition.
func (m *Model) AddClass(vis Visibility, class *Model) error {
	if class == nil {
		return fmt.Errorf("class: %w", ErrEmptyName)
	}
	section, err := m.section(vis)
	if err != nil {
		return err
	}
	section.Classes = append(section.Classes, class)
	return nil
}

// AddEquation appends an equation to the initial or simulation-time block.
func (m *Model) AddEquation(phase Phase, eq *Equation) error {
	if eq == nil {
		return fmt.Errorf("equation: %w", ErrEmptyName)
	}
	switch phase {
	case PhaseInitial:
		m.InitialEquations = append(m.InitialEquations, eq)
	case PhaseNormal:
		m.Equations = append(m.Equations, eq)
	default:
		return fmt.Errorf("%q: %w", phase, ErrInvalidPhase)
	}
	return nil
}

// AddStatement appends a statement to the initial or simulation-time
// algorithm block.
func (m *Model) AddStatement(phase Phase, st *Statement) error {
	if st == nil {
		return fmt.Errorf("statement: %w", ErrEmptyName)
	}
	switch phase {
	case PhaseInitial:
		m.InitialAlgorithms = append(m.InitialAlgorithms, st)
	case PhaseNormal:
		m.Algorithms = append(m.Algorithms, st)
	default:
		return fmt.Errorf("%q: %w", phase, ErrInvalidPhase)
	}
	return nil
}

func (m *Model) section(vis Visibility) (*Section, error) {
	switch vis {
	case Public:
		if m.Public == nil {
			m.Public = NewSection()
		}
		return m.Public, nil
	case Protected:
		if m.Protected == nil {
			m.Protected = NewSection()
		}
		return m.Protected, nil
	}
	return nil, fmt.Errorf("%q: %w", vis, ErrInvalidVisibility)
}

// Experiment carries the simulation settings stamped into the experiment
// annotation. Zero values are treated as unset, except StopTime which is
// unset at its Modelica default of 1.
type Experiment struct {
	StartTime float64
	StopTime  float64
	Tolerance float64
	Interval  float64
}

// SetExperiment records simulation settings in the model annotation.
func (m *Model) SetExperiment(e Experiment) {
	var nested Modifications
	if e.StartTime != 0 {
		nested.Add(Mod("StartTime", formatFloat(e.StartTime)))
	}
	if e.StopTime != 0 && e.StopTime != 1 {
		nested.Add(Mod("StopTime", formatFloat(e.StopTime)))
	}
	if e.Tolerance != 0 {
		nested.Add(Mod("Tolerance", formatFloat(e.Tolerance)))
	}
	if e.Interval != 0 {
		nested.Add(Mod("Interval", formatFloat(e.Interval)))
	}
	for i := range m.Annotation {
		if m.Annotation[i].Key == "experiment" {
			m.Annotation[i].Nested = nested
			return
		}
	}
	m.Annotation.Add(ModNested("experiment", nested...))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
