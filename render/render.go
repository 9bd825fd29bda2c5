package render

import (
	"fmt"
	"strings"

	"github.com/modkit/modelica/mo"
)

// Options configures the serializer.
type Options struct {
	// Indent is the indent unit, two spaces when empty.
	Indent string
}

const defaultIndent = "  "

// Render serializes a model to Modelica source text with default options.
// Rendering a structurally valid tree cannot fail; the only error path is the
// defensive empty-name re-check.
func Render(m *mo.Model) (string, error) {
	return RenderWith(m, Options{})
}

// RenderWith serializes a model using the given options.
func RenderWith(m *mo.Model, opts Options) (string, error) {
	if m == nil || m.Name == "" {
		return "", fmt.Errorf("model: %w", mo.ErrEmptyName)
	}
	p := &printer{indent: opts.Indent}
	if p.indent == "" {
		p.indent = defaultIndent
	}
	if err := p.model(m, 0); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

type printer struct {
	sb     strings.Builder
	indent string
}

func (p *printer) line(depth int, s string) {
	for i := 0; i < depth; i++ {
		p.sb.WriteString(p.indent)
	}
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

// model emits a class declaration at the given depth. It is a pure function
// of (node, depth) so nested local classes recurse through it.
func (p *printer) model(m *mo.Model, depth int) error {
	if m.Name == "" {
		return fmt.Errorf("model: %w", mo.ErrEmptyName)
	}
	if m.Within != nil {
		if m.Within.Name == "" {
			p.line(depth, "within;")
		} else {
			p.line(depth, "within "+m.Within.Name+";")
		}
	}
	p.line(depth, p.header(m))
	body := depth + 1

	for _, imp := range m.Imports {
		p.line(body, importClause(imp))
	}
	for _, ext := range m.Extends {
		p.line(body, p.extends(ext))
	}

	if m.Public != nil {
		if err := p.section(m.Public, body); err != nil {
			return err
		}
	}
	if m.Protected != nil && !m.Protected.IsEmpty() {
		p.line(depth, "protected")
		if err := p.section(m.Protected, body); err != nil {
			return err
		}
	}

	if len(m.InitialEquations) > 0 {
		p.line(depth, "initial equation")
		for _, eq := range m.InitialEquations {
			p.equation(eq, body)
		}
	}
	if len(m.Equations) > 0 {
		p.line(depth, "equation")
		for _, eq := range m.Equations {
			p.equation(eq, body)
		}
	}
	if len(m.InitialAlgorithms) > 0 {
		p.line(depth, "initial algorithm")
		for _, st := range m.InitialAlgorithms {
			p.statement(st, body)
		}
	}
	if len(m.Algorithms) > 0 {
		p.line(depth, "algorithm")
		for _, st := range m.Algorithms {
			p.statement(st, body)
		}
	}

	if len(m.Annotation) > 0 {
		p.line(body, "annotation ("+modifications(m.Annotation)+");")
	}
	p.line(depth, "end "+m.Name+";")
	return nil
}

func (p *printer) header(m *mo.Model) string {
	var sb strings.Builder
	if m.Prefixes&mo.PrefixFinal != 0 {
		sb.WriteString("final ")
	}
	if m.Prefixes&mo.PrefixEncapsulated != 0 {
		sb.WriteString("encapsulated ")
	}
	if m.Prefixes&mo.PrefixPartial != 0 {
		sb.WriteString("partial ")
	}
	if m.Prefixes&mo.PrefixReplaceable != 0 {
		sb.WriteString("replaceable ")
	}
	sb.WriteString(string(m.Kind))
	sb.WriteByte(' ')
	sb.WriteString(m.Name)
	if m.Comment != "" {
		sb.WriteString(" \"" + m.Comment + "\"")
	}
	return sb.String()
}

func (p *printer) section(s *mo.Section, depth int) error {
	for _, d := range s.Constants {
		p.line(depth, declaration(d, "constant"))
	}
	for _, d := range s.Parameters {
		p.line(depth, declaration(d, "parameter"))
	}
	for _, d := range s.Variables {
		p.line(depth, declaration(d, ""))
	}
	for _, d := range s.Components {
		p.line(depth, declaration(d, ""))
	}
	for _, class := range s.Classes {
		if err := p.model(class, depth); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) extends(ext *mo.Extends) string {
	var sb strings.Builder
	sb.WriteString("extends ")
	sb.WriteString(ext.TypeName)
	if len(ext.Modifications) > 0 {
		sb.WriteString("(" + modifications(ext.Modifications) + ")")
	}
	if len(ext.Annotation) > 0 {
		sb.WriteString(" annotation (" + modifications(ext.Annotation) + ")")
	}
	sb.WriteString(";")
	return sb.String()
}

func importClause(imp *mo.Import) string {
	switch {
	case imp.Alias != "":
		return "import " + imp.Alias + " = " + imp.Path + ";"
	case imp.Wildcard:
		return "import " + imp.Path + ".*;"
	case len(imp.Names) > 0:
		return "import " + imp.Path + ".{" + strings.Join(imp.Names, ", ") + "};"
	}
	return "import " + imp.Path + ";"
}

// declaration renders one declaration line; variability carries the role
// keyword (constant/parameter) or is empty for variables and components.
func declaration(d *mo.Declaration, variability string) string {
	var sb strings.Builder
	if d.Prefixes&mo.DeclFinal != 0 {
		sb.WriteString("final ")
	}
	if d.Prefixes&mo.DeclInner != 0 {
		sb.WriteString("inner ")
	}
	if d.Prefixes&mo.DeclOuter != 0 {
		sb.WriteString("outer ")
	}
	if d.Prefixes&mo.DeclReplaceable != 0 {
		sb.WriteString("replaceable ")
	}
	if d.Flux != mo.FluxNone {
		sb.WriteString(string(d.Flux) + " ")
	}
	if variability != "" {
		sb.WriteString(variability + " ")
	} else if d.Discrete {
		sb.WriteString("discrete ")
	}
	if d.Causality != mo.CausalityNone {
		sb.WriteString(string(d.Causality) + " ")
	}
	sb.WriteString(d.TypeName)
	if len(d.ArrayDims) > 0 {
		sb.WriteString("[" + strings.Join(d.ArrayDims, ", ") + "]")
	}
	sb.WriteByte(' ')
	sb.WriteString(d.Name)
	if len(d.Modifications) > 0 {
		sb.WriteString("(" + modifications(d.Modifications) + ")")
	}
	if d.Value != "" {
		if len(d.Modifications) > 0 {
			sb.WriteString(" = " + d.Value)
		} else {
			sb.WriteString("=" + d.Value)
		}
	}
	if d.Condition != "" {
		sb.WriteString(" if " + d.Condition)
	}
	if d.Comment != "" {
		sb.WriteString(" \"" + d.Comment + "\"")
	}
	if len(d.Annotation) > 0 {
		sb.WriteString(" annotation (" + modifications(d.Annotation) + ")")
	}
	sb.WriteString(";")
	return sb.String()
}

// modifications renders an insertion-ordered modification list as a
// comma-separated key=value sequence, recursing into nested modifications.
func modifications(mods mo.Modifications) string {
	parts := make([]string, 0, len(mods))
	for _, mod := range mods {
		parts = append(parts, modification(mod))
	}
	return strings.Join(parts, ", ")
}

func modification(mod mo.Modification) string {
	var sb strings.Builder
	sb.WriteString(mod.Key)
	if len(mod.Nested) > 0 {
		sb.WriteString("(" + modifications(mod.Nested) + ")")
	}
	if mod.Value != "" {
		if len(mod.Nested) > 0 {
			sb.WriteString(" = " + mod.Value)
		} else {
			sb.WriteString("=" + mod.Value)
		}
	}
	return sb.String()
}

func suffix(comment string, annotation mo.Modifications) string {
	var sb strings.Builder
	if comment != "" {
		sb.WriteString(" \"" + comment + "\"")
	}
	if len(annotation) > 0 {
		sb.WriteString(" annotation (" + modifications(annotation) + ")")
	}
	return sb.String()
}
