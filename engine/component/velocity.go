package component

// Velocity moves the owning object by (DX, DY) once per engine step.
type Velocity struct {
	DX float64
	DY float64
}

func (v *Velocity) Type() Type { return TypeVelocity }

func (v *Velocity) Clone() Component {
	c := *v
	return &c
}
