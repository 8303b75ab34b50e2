package component

import "image"

// Sprite is the visual component of a game object. It references a decoded
// pixel buffer supplied by the asset layer; the component never owns or copies
// the pixels.
type Sprite struct {
	Image image.Image

	// OffsetX/OffsetY shift the draw anchor relative to the object position.
	OffsetX int
	OffsetY int

	// Width/Height, when positive, scale the image to the given size at draw
	// time. Zero keeps the source dimensions.
	Width  int
	Height int

	// Shadow, when set, is drawn beneath the sprite at its own offset.
	Shadow        image.Image
	ShadowOffsetX int
	ShadowOffsetY int
}

func NewSprite(img image.Image) *Sprite {
	return &Sprite{Image: img}
}

func (s *Sprite) Type() Type { return TypeSprite }

// Clone copies the sprite settings. Image data is shared, not duplicated.
func (s *Sprite) Clone() Component {
	c := *s
	return &c
}

// Empty reports whether the sprite has no drawable pixels.
func (s *Sprite) Empty() bool {
	if s == nil || s.Image == nil {
		return true
	}
	b := s.Image.Bounds()
	return b.Dx() <= 0 || b.Dy() <= 0
}
