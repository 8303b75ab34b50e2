package script

import (
	"testing"

	"github.com/milk9111/spritestage/engine/component"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{"valid", `update := func(obj, state) {}`, false},
		{"missing_update", `foo := 1`, true},
		{"syntax_error", `update := func(obj state) {}`, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Compile(c.name, c.source)
			if c.wantErr && err == nil {
				t.Fatalf("expected compile error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected compile error: %v", err)
			}
		})
	}
}

func TestRunMutatesTransform(t *testing.T) {
	cases := []struct {
		name   string
		source string
		start  component.Position
		want   component.Position
	}{
		{
			name:   "move",
			source: `update := func(obj, state) { obj.move(3, -2) }`,
			start:  component.Position{X: 10, Y: 10, Z: 1},
			want:   component.Position{X: 13, Y: 8, Z: 1},
		},
		{
			name:   "set_position",
			source: `update := func(obj, state) { obj.set_position(1, 2) }`,
			start:  component.Position{X: 50, Y: 50, Z: 3},
			want:   component.Position{X: 1, Y: 2, Z: 3},
		},
		{
			name:   "reads_current_position",
			source: `update := func(obj, state) { obj.set_position(obj.x * 2, obj.y + 1) }`,
			start:  component.Position{X: 4, Y: 4},
			want:   component.Position{X: 8, Y: 5},
		},
		{
			name:   "no_mutation",
			source: `update := func(obj, state) {}`,
			start:  component.Position{X: 7, Y: 7, Z: 2},
			want:   component.Position{X: 7, Y: 7, Z: 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rt, err := Compile(c.name, c.source)
			if err != nil {
				t.Fatalf("compile failed: %v", err)
			}
			tr := &component.Transform{Position: c.start}
			if err := rt.Run(tr); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if tr.Position != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, tr.Position)
			}
		})
	}
}

func TestStatePersistsBetweenTicks(t *testing.T) {
	source := `
update := func(obj, state) {
    if is_undefined(state.ticks) {
        state.ticks = 0
    }
    state.ticks += 1
    obj.set_position(float(state.ticks), 0)
}
`
	rt, err := Compile("ticks", source)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	tr := component.NewTransform(0, 0, 0)
	for i := 1; i <= 3; i++ {
		if err := rt.Run(tr); err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
		if tr.Position.X != float64(i) {
			t.Fatalf("tick %d: expected x=%d, got %v", i, i, tr.Position.X)
		}
	}
}

func TestRuntimeErrors(t *testing.T) {
	t.Run("nil_transform", func(t *testing.T) {
		rt, err := Compile("t", `update := func(obj, state) {}`)
		if err != nil {
			t.Fatalf("compile failed: %v", err)
		}
		if err := rt.Run(nil); err == nil {
			t.Fatalf("expected error for nil transform")
		}
	})

	t.Run("runtime_failure", func(t *testing.T) {
		rt, err := Compile("t", `update := func(obj, state) { x := 1 / 0 }`)
		if err != nil {
			t.Fatalf("compile failed: %v", err)
		}
		tr := component.NewTransform(1, 1, 0)
		if err := rt.Run(tr); err == nil {
			t.Fatalf("expected runtime error")
		}
		if tr.Position.X != 1 || tr.Position.Y != 1 {
			t.Fatalf("failed tick must not mutate position, got %+v", tr.Position)
		}
	})
}
