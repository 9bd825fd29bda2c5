package mo

// Import represents a single import clause. The zero shape (Path only) is a
// qualified import; Alias, Wildcard and Names select the remaining Modelica
// import forms:
//
//	import A.B.C;        Path
//	import C = A.B;      Path + Alias
//	import A.B.*;        Path + Wildcard
//	import A.B.{C, D};   Path + Names
type Import struct {
	Path     string
	Alias    string
	Wildcard bool
	Names    []string
}

// Extends is one inheritance clause. A model may carry several, in order.
type Extends struct {
	TypeName      string
	Modifications Modifications
	Annotation    Modifications
}
