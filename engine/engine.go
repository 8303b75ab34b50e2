// Package engine owns the frame-stepped core: one scene, one renderer, one
// configuration. A single goroutine drives it — mutate the scene or call Step
// between frames, then Render; nothing here blocks or suspends.
package engine

import (
	"image"

	"github.com/milk9111/spritestage/engine/component"
	"github.com/milk9111/spritestage/engine/config"
	"github.com/milk9111/spritestage/engine/render"
	"github.com/milk9111/spritestage/engine/scene"
	"github.com/milk9111/spritestage/engine/script"
)

// Engine couples the active scene with the renderer for one output session.
type Engine struct {
	cfg      config.Config
	scene    *scene.Scene
	renderer *render.Renderer
	scripts  *script.Manager
}

// New creates an engine for the configured resolution. An invalid resolution
// is a construction error, surfaced immediately.
func New(cfg config.Config, s *scene.Scene) (*Engine, error) {
	r, err := render.NewRenderer(cfg.Resolution)
	if err != nil {
		return nil, err
	}
	r.SetClearColor(cfg.ClearColorOrDefault())
	if s == nil {
		s = scene.NewWithCap(cfg.MaxObjects)
	}
	return &Engine{
		cfg:      cfg,
		scene:    s,
		renderer: r,
		scripts:  script.NewManager(),
	}, nil
}

// Scene returns the active scene.
func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

// Renderer returns the engine's renderer.
func (e *Engine) Renderer() *render.Renderer {
	return e.renderer
}

// Config returns the session configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// SetScene swaps the active scene and drops cached script state.
func (e *Engine) SetScene(s *scene.Scene) {
	if s == nil {
		return
	}
	e.scene = s
	e.scripts.Reset()
}

// Step advances the simulation one frame: behavior scripts run first, then
// velocities integrate into positions. Call between render passes only.
func (e *Engine) Step() {
	e.scripts.Step(e.scene)
	e.stepVelocities()
}

// Render composites the current scene into a frame buffer of the configured
// resolution. The buffer is reused by the next Render call; copy it if it
// must outlive the frame.
func (e *Engine) Render() *image.RGBA {
	return e.renderer.Render(e.scene)
}

func (e *Engine) stepVelocities() {
	e.scene.Each(func(o *scene.GameObject) bool {
		c, ok := o.Get(component.TypeVelocity)
		if !ok {
			return true
		}
		v, ok := c.(*component.Velocity)
		if !ok {
			return true
		}
		tr, ok := o.Transform()
		if !ok {
			return true
		}
		tr.Translate(v.DX, v.DY)
		return true
	})
}
