// Package scene holds the live registry of game objects for one session.
// A Scene is owned by a single goroutine: the simulation layer mutates it
// between frames and the renderer reads it during a frame, never both at once.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/spritestage/engine/component"
	"github.com/milk9111/spritestage/engine/config"
)

var (
	ErrNotFound  = errors.New("scene: object not found")
	ErrSceneFull = errors.New("scene: object limit reached")
)

// Scene is the authoritative registry of live game objects.
type Scene struct {
	objects map[ObjectID]*GameObject
	order   []ObjectID // registration order, drives painter's-algorithm ties
	free    []ObjectID
	nextID  ObjectID
	maxObjs int
}

// New creates an empty scene with the default object cap.
func New() *Scene {
	return NewWithCap(config.DefaultMaxObjects)
}

// NewWithCap creates an empty scene holding at most maxObjects objects.
// A non-positive cap falls back to the default.
func NewWithCap(maxObjects int) *Scene {
	if maxObjects <= 0 {
		maxObjects = config.DefaultMaxObjects
	}
	return &Scene{
		objects: make(map[ObjectID]*GameObject),
		maxObjs: maxObjects,
	}
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// CreateObject allocates a new empty game object and registers it. Freed ids
// are reused before new ones are minted. Returns ErrSceneFull at the cap.
func (s *Scene) CreateObject() (ObjectID, error) {
	if len(s.objects) >= s.maxObjs {
		return 0, fmt.Errorf("%w: %d objects", ErrSceneFull, s.maxObjs)
	}
	var id ObjectID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.nextID++
		id = s.nextID
	}
	s.objects[id] = newGameObject(id)
	s.order = append(s.order, id)
	return id, nil
}

// Object returns the game object with the given id.
func (s *Scene) Object(id ObjectID) (*GameObject, bool) {
	o, ok := s.objects[id]
	return o, ok
}

// AddComponent attaches the component to the object, replacing any component
// of the same type. Returns ErrNotFound for an unknown id.
func (s *Scene) AddComponent(id ObjectID, c component.Component) error {
	o, ok := s.objects[id]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	o.Set(c)
	return nil
}

// RemoveObject deletes the object and all its components. Removing an unknown
// id is a silent no-op, so teardown is idempotent. The freed id becomes
// available for reuse.
func (s *Scene) RemoveObject(id ObjectID) {
	if _, ok := s.objects[id]; !ok {
		return
	}
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.free = append(s.free, id)
}

// Each visits every live object in registration order.
func (s *Scene) Each(fn func(*GameObject) bool) {
	for _, id := range s.order {
		o, ok := s.objects[id]
		if !ok {
			continue
		}
		if !fn(o) {
			return
		}
	}
}

// Renderable pairs an object's position, copied by value at collection time,
// with its sprite. It aggregates references for one render pass and owns
// nothing; instances must not outlive the pass.
type Renderable struct {
	Position component.Position
	Sprite   *component.Sprite
}

// Renderables collects every object carrying both a transform and a sprite,
// ordered by ascending Z with registration order breaking ties. Objects
// lacking either component are skipped, not erred. The result is rebuilt on
// every call, so the sequence restarts from the current scene state.
func (s *Scene) Renderables() []Renderable {
	items := make([]Renderable, 0, len(s.order))
	for _, id := range s.order {
		o, ok := s.objects[id]
		if !ok {
			continue
		}
		tr, ok := o.Transform()
		if !ok {
			continue
		}
		sp, ok := o.Sprite()
		if !ok {
			continue
		}
		items = append(items, Renderable{Position: tr.Position, Sprite: sp})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position.Z < items[j].Position.Z
	})
	return items
}
