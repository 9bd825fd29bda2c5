package mo

// StatementKind discriminates the closed set of algorithm statement forms.
type StatementKind string

const (
	StatementAssign StatementKind = "assign"
	StatementCall   StatementKind = "call"
	StatementIf     StatementKind = "if"
	StatementFor    StatementKind = "for"
	StatementWhile  StatementKind = "while"
	StatementWhen   StatementKind = "when"
	StatementText   StatementKind = "text"
)

// StatementBranch is one elseif/elsewhen arm of a block statement.
type StatementBranch struct {
	Condition string
	Body      []*Statement
}

// Statement is the imperative counterpart of Equation: rendered with := for
// assignments and ;-terminated bodies inside if/for/while/when blocks.
type Statement struct {
	Kind StatementKind

	Target string // assign: lhs
	Value  string // assign: rhs

	Call string // call: full invocation expression

	Condition string             // if/while/when: test expression
	Body      []*Statement       // block body
	ElseIf    []*StatementBranch // if: elseif arms
	Else      []*Statement       // if: else body
	ElseWhen  []*StatementBranch // when: elsewhen arms

	Index string // for: loop variable
	Range string // for: range expression

	Text []string // text: raw lines emitted verbatim

	Comment    string
	Annotation Modifications
}

// Assign returns a target := value statement.
func Assign(target, value string) *Statement {
	return &Statement{Kind: StatementAssign, Target: target, Value: value}
}

// CallStatement returns a bare function-call statement.
func CallStatement(expr string) *Statement {
	return &Statement{Kind: StatementCall, Call: expr}
}

// IfStatement returns an if-block statement with the given then-branch body.
func IfStatement(condition string, body ...*Statement) *Statement {
	return &Statement{Kind: StatementIf, Condition: condition, Body: body}
}

// ElseIfBranch appends an elseif arm and returns the receiver.
func (s *Statement) ElseIfBranch(condition string, body ...*Statement) *Statement {
	s.ElseIf = append(s.ElseIf, &StatementBranch{Condition: condition, Body: body})
	return s
}

// ElseBranch sets the else body and returns the receiver.
func (s *Statement) ElseBranch(body ...*Statement) *Statement {
	s.Else = body
	return s
}

// ForStatement returns a for-loop statement over index in rng.
func ForStatement(index, rng string, body ...*Statement) *Statement {
	return &Statement{Kind: StatementFor, Index: index, Range: rng, Body: body}
}

// WhileStatement returns a while-loop statement.
func WhileStatement(condition string, body ...*Statement) *Statement {
	return &Statement{Kind: StatementWhile, Condition: condition, Body: body}
}

// WhenStatement returns a when-block statement.
func WhenStatement(condition string, body ...*Statement) *Statement {
	return &Statement{Kind: StatementWhen, Condition: condition, Body: body}
}

// ElseWhenBranch appends an elsewhen arm and returns the receiver.
func (s *Statement) ElseWhenBranch(condition string, body ...*Statement) *Statement {
	s.ElseWhen = append(s.ElseWhen, &StatementBranch{Condition: condition, Body: body})
	return s
}

// TextStatement returns a raw passthrough block emitted line by line.
func TextStatement(lines ...string) *Statement {
	return &Statement{Kind: StatementText, Text: lines}
}

// Describe sets the trailing description string and returns the receiver.
func (s *Statement) Describe(comment string) *Statement {
	s.Comment = comment
	return s
}
