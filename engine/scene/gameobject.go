package scene

import "github.com/milk9111/spritestage/engine/component"

// ObjectID identifies a game object within one scene. Freed ids are reused.
type ObjectID int

func (id ObjectID) Valid() bool {
	return id > 0
}

// GameObject is an addressable entity composed of typed components, at most
// one per component type.
type GameObject struct {
	id         ObjectID
	components map[component.Type]component.Component
}

func newGameObject(id ObjectID) *GameObject {
	return &GameObject{
		id:         id,
		components: make(map[component.Type]component.Component),
	}
}

func (o *GameObject) ID() ObjectID {
	return o.id
}

// Set attaches the component, replacing any prior component of the same type.
func (o *GameObject) Set(c component.Component) {
	if c == nil {
		return
	}
	o.components[c.Type()] = c
}

// Get returns the component of the given type. Absence is a normal result,
// not an error.
func (o *GameObject) Get(t component.Type) (component.Component, bool) {
	c, ok := o.components[t]
	return c, ok
}

// Has reports whether a component of the given type is attached.
func (o *GameObject) Has(t component.Type) bool {
	_, ok := o.components[t]
	return ok
}

// Unset detaches the component of the given type, reporting whether one was
// present.
func (o *GameObject) Unset(t component.Type) bool {
	if _, ok := o.components[t]; !ok {
		return false
	}
	delete(o.components, t)
	return true
}

// Transform returns the positional component, if attached.
func (o *GameObject) Transform() (*component.Transform, bool) {
	c, ok := o.components[component.TypeTransform]
	if !ok {
		return nil, false
	}
	tr, ok := c.(*component.Transform)
	return tr, ok
}

// Sprite returns the visual component, if attached.
func (o *GameObject) Sprite() (*component.Sprite, bool) {
	c, ok := o.components[component.TypeSprite]
	if !ok {
		return nil, false
	}
	sp, ok := c.(*component.Sprite)
	return sp, ok
}
