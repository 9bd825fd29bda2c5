package mo

import "fmt"

// Visibility selects the public or protected partition of a model.
type Visibility string

const (
	Public    Visibility = "public"
	Protected Visibility = "protected"
)

// Role partitions declarations inside a section. The serializer emits roles
// in the fixed order constant, parameter, variable, component.
type Role string

const (
	RoleConstant  Role = "constant"
	RoleParameter Role = "parameter"
	RoleVariable  Role = "variable"
	RoleComponent Role = "component"
)

// Section is one visibility partition of a model. Each role slice preserves
// insertion order; siblings are never reordered on output.
type Section struct {
	Constants  []*Declaration
	Parameters []*Declaration
	Variables  []*Declaration
	Components []*Declaration
	Classes    []*Model // Nested local class definitions
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{}
}

// IsEmpty reports whether the section holds no declarations or classes.
func (s *Section) IsEmpty() bool {
	return len(s.Constants) == 0 && len(s.Parameters) == 0 &&
		len(s.Variables) == 0 && len(s.Components) == 0 && len(s.Classes) == 0
}

// Declarations returns all declarations in the fixed role order.
func (s *Section) Declarations() []*Declaration {
	out := make([]*Declaration, 0, len(s.Constants)+len(s.Parameters)+len(s.Variables)+len(s.Components))
	out = append(out, s.Constants...)
	out = append(out, s.Parameters...)
	out = append(out, s.Variables...)
	out = append(out, s.Components...)
	return out
}

func (s *Section) add(role Role, decl *Declaration) error {
	switch role {
	case RoleConstant:
		s.Constants = append(s.Constants, decl)
	case RoleParameter:
		s.Parameters = append(s.Parameters, decl)
	case RoleVariable:
		s.Variables = append(s.Variables, decl)
	case RoleComponent:
		s.Components = append(s.Components, decl)
	default:
		return fmt.Errorf("%q: %w", role, ErrInvalidRole)
	}
	return nil
}
