package mo

import "errors"

// Validation errors reported by the builder API. All are raised at
// construction time; render re-checks only ErrEmptyName.
var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidKind       = errors.New("invalid kind")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidVisibility = errors.New("invalid visibility")
	ErrInvalidPhase      = errors.New("invalid phase")
	ErrInvalidCausality  = errors.New("invalid causality")
	ErrInvalidFlux       = errors.New("invalid flux")
	ErrEmptyName         = errors.New("empty name")
	ErrDuplicateName     = errors.New("duplicate name")
)
