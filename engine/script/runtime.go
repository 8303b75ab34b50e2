// Package script runs tengo behavior scripts attached to game objects.
//
// A script must define an update function taking the object view and a
// persistent state map:
//
//	update := func(obj, state) {
//	    obj.move(1, 0)
//	}
//
// The object view exposes x, y, z and the mutators move(dx, dy) and
// set_position(x, y). Mutations apply to the object's transform after the
// script returns. The state map survives between ticks.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/spritestage/engine/component"
)

const updateDispatchScript = `
update(__obj, __state)
`

// Runtime is the compiled form of one script plus its persistent state.
type Runtime struct {
	key      string
	compiled *tengo.Compiled
	state    *tengo.Map
}

// Compile compiles the script source together with the update dispatch
// wrapper. A source that does not define update fails here, not at tick time.
func Compile(key, source string) (*Runtime, error) {
	src := source + "\n" + updateDispatchScript
	s := tengo.NewScript([]byte(src))
	_ = s.Add("__obj", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", key, err)
	}
	return &Runtime{
		key:      key,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Run executes one update tick against the given transform.
func (rt *Runtime) Run(tr *component.Transform) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("script: nil runtime")
	}
	if tr == nil {
		return fmt.Errorf("script: nil transform")
	}

	pending := tr.Position
	obj := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x": &tengo.Float{Value: pending.X},
		"y": &tengo.Float{Value: pending.Y},
		"z": &tengo.Int{Value: int64(pending.Z)},
		"move": &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 2 {
				return tengo.FalseValue, nil
			}
			dx, okX := tengo.ToFloat64(args[0])
			dy, okY := tengo.ToFloat64(args[1])
			if !okX || !okY {
				return tengo.FalseValue, nil
			}
			pending.X += dx
			pending.Y += dy
			return tengo.TrueValue, nil
		}},
		"set_position": &tengo.UserFunction{Name: "set_position", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 2 {
				return tengo.FalseValue, nil
			}
			x, okX := tengo.ToFloat64(args[0])
			y, okY := tengo.ToFloat64(args[1])
			if !okX || !okY {
				return tengo.FalseValue, nil
			}
			pending.X = x
			pending.Y = y
			return tengo.TrueValue, nil
		}},
	}}

	if err := rt.compiled.Set("__obj", obj); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", rt.key, err)
	}

	tr.Position = pending
	return nil
}
