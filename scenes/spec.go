// Package scenes loads YAML scene descriptions and builds live scenes from
// them. Specs are data handed to the engine; the engine core never reads
// files itself.
package scenes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/spritestage/engine/config"
)

// SceneSpec describes a whole scene: its object cap and the objects to
// register, in paint order.
type SceneSpec struct {
	Name       string       `yaml:"name"`
	MaxObjects int          `yaml:"max_objects"`
	Objects    []ObjectSpec `yaml:"objects"`
}

// ObjectSpec describes one game object and its components.
type ObjectSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Sprite    *SpriteSpec   `yaml:"sprite"`
	Velocity  *VelocitySpec `yaml:"velocity"`
	Script    string        `yaml:"script"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z int     `yaml:"z"`
}

// SpriteSpec names either an image file or a flat fill to generate. Exactly
// one of Image or Fill should be set; Image wins when both are.
type SpriteSpec struct {
	Image   string      `yaml:"image"`
	Fill    *FillSpec   `yaml:"fill"`
	OffsetX int         `yaml:"offset_x"`
	OffsetY int         `yaml:"offset_y"`
	Width   int         `yaml:"width"`
	Height  int         `yaml:"height"`
	Shadow  *ShadowSpec `yaml:"shadow"`
}

// FillSpec generates a solid-color image of the given size.
type FillSpec struct {
	Color  *config.Color `yaml:"color"`
	Width  int           `yaml:"width"`
	Height int           `yaml:"height"`
}

type ShadowSpec struct {
	Image   string    `yaml:"image"`
	Fill    *FillSpec `yaml:"fill"`
	OffsetX int       `yaml:"offset_x"`
	OffsetY int       `yaml:"offset_y"`
}

type VelocitySpec struct {
	DX float64 `yaml:"dx"`
	DY float64 `yaml:"dy"`
}

// LoadSpec reads and decodes a scene spec by scenes-relative filename.
func LoadSpec(filename string) (SceneSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return SceneSpec{}, fmt.Errorf("scenes: load %s: %w", filename, err)
	}
	return ParseSpec(data)
}

// ParseSpec decodes scene spec YAML bytes.
func ParseSpec(data []byte) (SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SceneSpec{}, fmt.Errorf("scenes: unmarshal: %w", err)
	}
	return spec, nil
}
