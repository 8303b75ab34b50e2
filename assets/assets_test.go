package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	RegisterImage("", img)
	if GetImage("") != nil {
		t.Fatalf("empty key must not register")
	}

	RegisterImage("reg_test", img)
	if GetImage("reg_test") != image.Image(img) {
		t.Fatalf("expected the registered image back")
	}
}

func TestLoadImage(t *testing.T) {
	t.Run("empty_key", func(t *testing.T) {
		if _, err := LoadImage(""); err == nil {
			t.Fatalf("expected error for empty key")
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		if _, err := LoadImage("definitely_missing.png"); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("corrupt_file_reports_decode_error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.png")
		if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		_, err := LoadImage(path)
		if err == nil {
			t.Fatalf("expected error for corrupt image")
		}
		if !strings.Contains(err.Error(), "decode") {
			t.Fatalf("want a decode error, got %v", err)
		}
	})

	t.Run("decodes_and_caches_png", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "dot.png")

		src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
		src.SetNRGBA(1, 1, color.NRGBA{R: 0xff, A: 0xff})
		f, err := os.Create(path)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := png.Encode(f, src); err != nil {
			t.Fatalf("encode: %v", err)
		}
		_ = f.Close()

		img, err := LoadImage(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
			t.Fatalf("unexpected bounds %v", b)
		}

		again, err := LoadImage(path)
		if err != nil {
			t.Fatalf("cached load failed: %v", err)
		}
		if again != img {
			t.Fatalf("second load should hit the cache")
		}
	})
}
