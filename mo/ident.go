package mo

import "fmt"

// reservedWords holds the Modelica language keywords that cannot be used as
// identifiers.
var reservedWords = map[string]bool{
	"algorithm": true, "and": true, "annotation": true, "block": true,
	"break": true, "class": true, "connect": true, "connector": true,
	"constant": true, "constrainedby": true, "der": true, "discrete": true,
	"each": true, "else": true, "elseif": true, "elsewhen": true,
	"encapsulated": true, "end": true, "enumeration": true, "equation": true,
	"expandable": true, "extends": true, "external": true, "false": true,
	"final": true, "flow": true, "for": true, "function": true, "if": true,
	"import": true, "impure": true, "in": true, "initial": true,
	"inner": true, "input": true, "loop": true, "model": true, "not": true,
	"operator": true, "or": true, "outer": true, "output": true,
	"package": true, "parameter": true, "partial": true, "protected": true,
	"public": true, "pure": true, "record": true, "redeclare": true,
	"replaceable": true, "return": true, "stream": true, "then": true,
	"true": true, "type": true, "when": true, "while": true, "within": true,
}

// IsValidIdent reports whether s matches the Modelica identifier grammar:
// a letter or underscore followed by letters, digits or underscores, and not
// a reserved word.
func IsValidIdent(s string) bool {
	if s == "" || reservedWords[s] {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func checkIdent(s string) error {
	if s == "" {
		return fmt.Errorf("identifier: %w", ErrEmptyName)
	}
	if !IsValidIdent(s) {
		return fmt.Errorf("%q: %w", s, ErrInvalidIdentifier)
	}
	return nil
}
