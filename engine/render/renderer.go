// Package render composites the scene's renderable set into a fixed-size
// frame buffer. The strategy is a naive full blend: every visible source
// pixel is composited every frame, so per-frame cost is
// O(object count x visible pixel area) with no culling or dirty tracking.
package render

import (
	"image"
	"image/color"
	"log"
	"math"

	"golang.org/x/image/draw"

	"github.com/milk9111/spritestage/engine/config"
	"github.com/milk9111/spritestage/engine/scene"
)

// Renderer produces one frame per render pass. It is not safe for concurrent
// use; a single goroutine owns the renderer and its canvas.
type Renderer struct {
	res        config.Resolution
	clearColor color.Color
	background *image.RGBA
	canvas     *image.RGBA
}

// NewRenderer creates a renderer for the given resolution. The resolution is
// fixed for the renderer's lifetime; changing it means building a new
// renderer (the canvas is sized to it).
func NewRenderer(res config.Resolution) (*Renderer, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		res:        res,
		clearColor: color.NRGBA{A: 0xff},
		canvas:     image.NewRGBA(image.Rect(0, 0, res.Width, res.Height)),
	}, nil
}

// Resolution returns the fixed output size.
func (r *Renderer) Resolution() config.Resolution {
	return r.res
}

// SetClearColor sets the flat background value used when no background image
// is configured.
func (r *Renderer) SetClearColor(c color.Color) {
	if c == nil {
		return
	}
	r.clearColor = c
}

// SetBackground installs a background image whose top-left crop fills the
// canvas before compositing. An image smaller than the canvas is rejected
// with a log line and the flat clear color stays in effect.
func (r *Renderer) SetBackground(img image.Image) {
	if img == nil {
		r.background = nil
		return
	}
	b := img.Bounds()
	if b.Dx() < r.res.Width || b.Dy() < r.res.Height {
		log.Printf("render: background %dx%d smaller than canvas %dx%d, using clear color",
			b.Dx(), b.Dy(), r.res.Width, r.res.Height)
		r.background = nil
		return
	}
	bg := image.NewRGBA(image.Rect(0, 0, r.res.Width, r.res.Height))
	draw.Draw(bg, bg.Bounds(), img, b.Min, draw.Src)
	r.background = bg
}

// Render composites the scene's renderables onto the canvas in ascending Z,
// registration order breaking ties, so later entries draw over earlier ones.
// The returned buffer is reused by the next Render call.
func (r *Renderer) Render(s *scene.Scene) *image.RGBA {
	r.clear()
	if s == nil {
		return r.canvas
	}
	for _, item := range s.Renderables() {
		r.drawRenderable(item)
	}
	return r.canvas
}

func (r *Renderer) clear() {
	if r.background != nil {
		copy(r.canvas.Pix, r.background.Pix)
		return
	}
	draw.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(r.clearColor), image.Point{}, draw.Src)
}

func (r *Renderer) drawRenderable(item scene.Renderable) {
	sp := item.Sprite
	if sp == nil || sp.Empty() {
		return
	}
	x := int(math.Round(item.Position.X))
	y := int(math.Round(item.Position.Y))

	if sp.Shadow != nil {
		r.drawImage(sp.Shadow, x+sp.OffsetX+sp.ShadowOffsetX, y+sp.OffsetY+sp.ShadowOffsetY, 0, 0)
	}
	r.drawImage(sp.Image, x+sp.OffsetX, y+sp.OffsetY, sp.Width, sp.Height)
}

// drawImage blends img over the canvas with its top-left at (x, y), scaled to
// w x h when both are positive. Pixels falling outside the canvas are
// clipped, never written.
func (r *Renderer) drawImage(img image.Image, x, y, w, h int) {
	if img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}

	if w > 0 && h > 0 && (w != b.Dx() || h != b.Dy()) {
		dr := image.Rect(x, y, x+w, y+h)
		if dr.Intersect(r.canvas.Bounds()).Empty() {
			return
		}
		draw.NearestNeighbor.Scale(r.canvas, dr, img, b, draw.Over, nil)
		return
	}

	dr := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(r.canvas, dr, img, b.Min, draw.Over)
}
