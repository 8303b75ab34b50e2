// Package assets decodes sprite images from disk and caches them by key. The
// engine core never touches this package; it only sees the decoded
// image.Image buffers handed to sprite components.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

var images = map[string]image.Image{}

// RegisterImage stores a decoded image by key.
func RegisterImage(key string, img image.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) image.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// LoadImage decodes an image from the filesystem and caches it by key.
func LoadImage(key string) (image.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromFS(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

func loadImageFromFS(path string) (image.Image, error) {
	var decodeErr error
	for _, p := range []string{path, filepath.Join("assets", path), filepath.Base(path)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			if decodeErr == nil {
				decodeErr = fmt.Errorf("decode image %s: %w", p, err)
			}
			continue
		}
		return im, nil
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return nil, fmt.Errorf("image %s not found", path)
}
