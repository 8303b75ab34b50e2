package script

import (
	"log"

	"github.com/milk9111/spritestage/engine/component"
	"github.com/milk9111/spritestage/engine/scene"
)

// Manager caches compiled script runtimes per object and ticks them once per
// engine step. A failing script is logged and skipped so one bad script never
// stops the step loop.
//
// The cache is keyed by object identity, not id: scenes reuse freed ids, and
// a replacement object must never inherit the removed object's script state.
// Entries for objects that left the scene are pruned at the end of each step.
type Manager struct {
	cache map[*scene.GameObject]*Runtime
}

func NewManager() *Manager {
	return &Manager{cache: map[*scene.GameObject]*Runtime{}}
}

// Step runs the update tick of every object carrying both a script and a
// transform, in registration order.
func (m *Manager) Step(s *scene.Scene) {
	if m == nil || s == nil {
		return
	}
	live := make(map[*scene.GameObject]struct{}, len(m.cache))
	s.Each(func(o *scene.GameObject) bool {
		c, ok := o.Get(component.TypeScript)
		if !ok {
			return true
		}
		sc, ok := c.(*component.Script)
		if !ok || sc.Source == "" {
			return true
		}
		tr, ok := o.Transform()
		if !ok {
			return true
		}

		rt, err := m.runtimeFor(o, sc)
		if err != nil {
			log.Printf("script: object=%d compile error: %v", o.ID(), err)
			return true
		}
		live[o] = struct{}{}
		if err := rt.Run(tr); err != nil {
			log.Printf("script: object=%d update error: %v", o.ID(), err)
		}
		return true
	})
	for o := range m.cache {
		if _, ok := live[o]; !ok {
			delete(m.cache, o)
		}
	}
}

// Reset drops every cached runtime, e.g. when the active scene is swapped.
func (m *Manager) Reset() {
	if m == nil {
		return
	}
	m.cache = map[*scene.GameObject]*Runtime{}
}

func (m *Manager) runtimeFor(o *scene.GameObject, sc *component.Script) (*Runtime, error) {
	if rt, ok := m.cache[o]; ok && rt != nil && rt.key == sc.CacheKey() {
		return rt, nil
	}
	rt, err := Compile(sc.CacheKey(), sc.Source)
	if err != nil {
		return nil, err
	}
	m.cache[o] = rt
	return rt, nil
}
