package mo

// EquationKind discriminates the closed set of equation forms.
type EquationKind string

const (
	EquationSimple  EquationKind = "simple"
	EquationConnect EquationKind = "connect"
	EquationIf      EquationKind = "if"
	EquationFor     EquationKind = "for"
	EquationWhen    EquationKind = "when"
	EquationText    EquationKind = "text"
)

// EquationBranch is one elseif/elsewhen arm of a block equation.
type EquationBranch struct {
	Condition string
	Body      []*Equation
}

// Equation is a tagged variant over the Modelica equation forms. Kind selects
// which fields are meaningful; operand expressions are caller-supplied opaque
// strings and are never parsed.
type Equation struct {
	Kind EquationKind

	Left  string // simple: lhs
	Right string // simple: rhs

	RefA string // connect: first reference
	RefB string // connect: second reference

	Condition string            // if/when: test expression
	Body      []*Equation       // if/for/when: first branch body
	ElseIf    []*EquationBranch // if: elseif arms
	Else      []*Equation       // if: else body
	ElseWhen  []*EquationBranch // when: elsewhen arms

	Index string // for: loop variable
	Range string // for: range expression

	Text []string // text: raw lines emitted verbatim

	Comment    string
	Annotation Modifications
}

// SimpleEquation returns a plain lhs = rhs equation.
func SimpleEquation(left, right string) *Equation {
	return &Equation{Kind: EquationSimple, Left: left, Right: right}
}

// Connect returns a connect(a, b) equation.
func Connect(a, b string) *Equation {
	return &Equation{Kind: EquationConnect, RefA: a, RefB: b}
}

// IfEquation returns an if-block equation with the given then-branch body.
func IfEquation(condition string, body ...*Equation) *Equation {
	return &Equation{Kind: EquationIf, Condition: condition, Body: body}
}

// ElseIfBranch appends an elseif arm and returns the receiver.
func (e *Equation) ElseIfBranch(condition string, body ...*Equation) *Equation {
	e.ElseIf = append(e.ElseIf, &EquationBranch{Condition: condition, Body: body})
	return e
}

// ElseBranch sets the else body and returns the receiver.
func (e *Equation) ElseBranch(body ...*Equation) *Equation {
	e.Else = body
	return e
}

// ForEquation returns a for-loop equation over index in rng.
func ForEquation(index, rng string, body ...*Equation) *Equation {
	return &Equation{Kind: EquationFor, Index: index, Range: rng, Body: body}
}

// WhenEquation returns a when-block equation.
func WhenEquation(condition string, body ...*Equation) *Equation {
	return &Equation{Kind: EquationWhen, Condition: condition, Body: body}
}

// ElseWhenBranch appends an elsewhen arm and returns the receiver.
func (e *Equation) ElseWhenBranch(condition string, body ...*Equation) *Equation {
	e.ElseWhen = append(e.ElseWhen, &EquationBranch{Condition: condition, Body: body})
	return e
}

// TextEquation returns a raw passthrough block emitted line by line.
func TextEquation(lines ...string) *Equation {
	return &Equation{Kind: EquationText, Text: lines}
}

// Describe sets the trailing description string and returns the receiver.
func (e *Equation) Describe(comment string) *Equation {
	e.Comment = comment
	return e
}
