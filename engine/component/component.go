// Package component defines the closed set of component kinds a game object
// may carry. The kinds are fixed so callers can switch exhaustively instead of
// registering open-ended types.
package component

// Type tags the kind of a component. At most one component per Type may be
// attached to a game object.
type Type uint8

const (
	TypeTransform Type = iota + 1
	TypeSprite
	TypeVelocity
	TypeScript
)

func (t Type) String() string {
	switch t {
	case TypeTransform:
		return "transform"
	case TypeSprite:
		return "sprite"
	case TypeVelocity:
		return "velocity"
	case TypeScript:
		return "script"
	}
	return "unknown"
}

// Component is an attachable unit of data on a game object.
type Component interface {
	Type() Type
	Clone() Component
}
