package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/milk9111/spritestage/assets"
	"github.com/milk9111/spritestage/engine/component"
	"github.com/milk9111/spritestage/engine/scene"
)

// Build registers the spec's objects into a fresh scene, in spec order, so
// the YAML order is the painter's-algorithm order for equal Z.
func Build(spec SceneSpec) (*scene.Scene, error) {
	s := scene.NewWithCap(spec.MaxObjects)
	for i, obj := range spec.Objects {
		if err := buildObject(s, obj); err != nil {
			return nil, fmt.Errorf("scenes: object %d (%s): %w", i, obj.Name, err)
		}
	}
	return s, nil
}

func buildObject(s *scene.Scene, spec ObjectSpec) error {
	id, err := s.CreateObject()
	if err != nil {
		return err
	}

	if err := s.AddComponent(id, component.NewTransform(spec.Transform.X, spec.Transform.Y, spec.Transform.Z)); err != nil {
		return err
	}

	if spec.Sprite != nil {
		sp, err := buildSprite(spec.Sprite)
		if err != nil {
			return err
		}
		if err := s.AddComponent(id, sp); err != nil {
			return err
		}
	}

	if spec.Velocity != nil {
		if err := s.AddComponent(id, &component.Velocity{DX: spec.Velocity.DX, DY: spec.Velocity.DY}); err != nil {
			return err
		}
	}

	if spec.Script != "" {
		src, err := LoadScript(spec.Script)
		if err != nil {
			return err
		}
		if err := s.AddComponent(id, &component.Script{Path: spec.Script, Source: string(src)}); err != nil {
			return err
		}
	}

	return nil
}

func buildSprite(spec *SpriteSpec) (*component.Sprite, error) {
	img, err := resolveImage(spec.Image, spec.Fill)
	if err != nil {
		return nil, err
	}
	sp := component.NewSprite(img)
	sp.OffsetX = spec.OffsetX
	sp.OffsetY = spec.OffsetY
	sp.Width = spec.Width
	sp.Height = spec.Height

	if spec.Shadow != nil {
		shadow, err := resolveImage(spec.Shadow.Image, spec.Shadow.Fill)
		if err != nil {
			return nil, err
		}
		sp.Shadow = shadow
		sp.ShadowOffsetX = spec.Shadow.OffsetX
		sp.ShadowOffsetY = spec.Shadow.OffsetY
	}

	return sp, nil
}

func resolveImage(path string, fill *FillSpec) (image.Image, error) {
	if path != "" {
		return assets.LoadImage(path)
	}
	if fill != nil {
		return fillImage(fill)
	}
	return nil, fmt.Errorf("sprite needs an image path or a fill")
}

func fillImage(spec *FillSpec) (image.Image, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("fill size must be positive, got %dx%d", spec.Width, spec.Height)
	}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	nc := color.NRGBAModel.Convert(spec.Color.Or(white)).(color.NRGBA)
	img := image.NewNRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	for y := 0; y < spec.Height; y++ {
		for x := 0; x < spec.Width; x++ {
			img.SetNRGBA(x, y, nc)
		}
	}
	return img, nil
}
