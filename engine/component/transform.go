package component

// Position is a 2D world coordinate with a Z layer used for draw ordering.
// Objects with a greater Z draw on top of objects with a lesser Z; equal Z
// falls back to registration order.
type Position struct {
	X float64
	Y float64
	Z int
}

// Transform is the positional component of a game object.
type Transform struct {
	Position Position
}

func NewTransform(x, y float64, z int) *Transform {
	return &Transform{Position: Position{X: x, Y: y, Z: z}}
}

func (t *Transform) Type() Type { return TypeTransform }

func (t *Transform) Clone() Component {
	c := *t
	return &c
}

// Translate offsets the position by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.Position.X += dx
	t.Position.Y += dy
}
