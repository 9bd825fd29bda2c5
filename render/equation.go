package render

import "github.com/modkit/modelica/mo"

// equation emits one equation at the given depth, recursing into block forms
// with an incremented depth.
func (p *printer) equation(eq *mo.Equation, depth int) {
	switch eq.Kind {
	case mo.EquationConnect:
		p.line(depth, "connect("+eq.RefA+", "+eq.RefB+")"+suffix(eq.Comment, eq.Annotation)+";")
	case mo.EquationIf:
		p.line(depth, "if "+eq.Condition+" then")
		for _, sub := range eq.Body {
			p.equation(sub, depth+1)
		}
		for _, branch := range eq.ElseIf {
			p.line(depth, "elseif "+branch.Condition+" then")
			for _, sub := range branch.Body {
				p.equation(sub, depth+1)
			}
		}
		if len(eq.Else) > 0 {
			p.line(depth, "else")
			for _, sub := range eq.Else {
				p.equation(sub, depth+1)
			}
		}
		p.line(depth, "end if;")
	case mo.EquationFor:
		p.line(depth, "for "+eq.Index+" in "+eq.Range+" loop")
		for _, sub := range eq.Body {
			p.equation(sub, depth+1)
		}
		p.line(depth, "end for;")
	case mo.EquationWhen:
		p.line(depth, "when "+eq.Condition+" then")
		for _, sub := range eq.Body {
			p.equation(sub, depth+1)
		}
		for _, branch := range eq.ElseWhen {
			p.line(depth, "elsewhen "+branch.Condition+" then")
			for _, sub := range branch.Body {
				p.equation(sub, depth+1)
			}
		}
		p.line(depth, "end when;")
	case mo.EquationText:
		for _, text := range eq.Text {
			p.line(depth, text)
		}
	default:
		p.line(depth, eq.Left+" = "+eq.Right+suffix(eq.Comment, eq.Annotation)+";")
	}
}

// statement emits one algorithm statement at the given depth.
func (p *printer) statement(st *mo.Statement, depth int) {
	switch st.Kind {
	case mo.StatementCall:
		p.line(depth, st.Call+suffix(st.Comment, st.Annotation)+";")
	case mo.StatementIf:
		p.line(depth, "if "+st.Condition+" then")
		for _, sub := range st.Body {
			p.statement(sub, depth+1)
		}
		for _, branch := range st.ElseIf {
			p.line(depth, "elseif "+branch.Condition+" then")
			for _, sub := range branch.Body {
				p.statement(sub, depth+1)
			}
		}
		if len(st.Else) > 0 {
			p.line(depth, "else")
			for _, sub := range st.Else {
				p.statement(sub, depth+1)
			}
		}
		p.line(depth, "end if;")
	case mo.StatementFor:
		p.line(depth, "for "+st.Index+" in "+st.Range+" loop")
		for _, sub := range st.Body {
			p.statement(sub, depth+1)
		}
		p.line(depth, "end for;")
	case mo.StatementWhile:
		p.line(depth, "while "+st.Condition+" loop")
		for _, sub := range st.Body {
			p.statement(sub, depth+1)
		}
		p.line(depth, "end while;")
	case mo.StatementWhen:
		p.line(depth, "when "+st.Condition+" then")
		for _, sub := range st.Body {
			p.statement(sub, depth+1)
		}
		for _, branch := range st.ElseWhen {
			p.line(depth, "elsewhen "+branch.Condition+" then")
			for _, sub := range branch.Body {
				p.statement(sub, depth+1)
			}
		}
		p.line(depth, "end when;")
	case mo.StatementText:
		for _, text := range st.Text {
			p.line(depth, text)
		}
	default:
		p.line(depth, st.Target+" := "+st.Value+suffix(st.Comment, st.Annotation)+";")
	}
}
