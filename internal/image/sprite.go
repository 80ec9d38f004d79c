// Package image provides sprite loading and pixel extraction.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"sprite-analyzer/internal/palette"
	"sprite-analyzer/pkg/geometry"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrNoImage           = errors.New("sprite has no image")
	ErrRegionOutOfBounds = errors.New("sprite region outside image bounds")
)

// Sprite is a rectangular region of a larger image.
type Sprite struct {
	Name  string
	Image image.Image
	Rect  geometry.RectInt // region within Image, in image coordinates
}

// FromImage returns a sprite covering all of img.
func FromImage(name string, img image.Image) *Sprite {
	return &Sprite{
		Name:  name,
		Image: img,
		Rect:  geometry.FromImageRect(img.Bounds()),
	}
}

// Load decodes an image file and returns a sprite covering the whole image.
func Load(path string) (*Sprite, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return FromImage(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), img), nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Region returns a sprite for a sub-rectangle of the same image.
func (s *Sprite) Region(name string, r geometry.RectInt) *Sprite {
	return &Sprite{Name: name, Image: s.Image, Rect: r}
}

// Width returns the region width in pixels.
func (s *Sprite) Width() int { return s.Rect.Width }

// Height returns the region height in pixels.
func (s *Sprite) Height() int { return s.Rect.Height }

// Pixels returns every pixel of the region in row-major order, top row first.
func (s *Sprite) Pixels() ([]palette.Color, error) {
	if s.Image == nil {
		return nil, ErrNoImage
	}
	bounds := s.Image.Bounds()
	if !s.Rect.In(bounds) {
		return nil, fmt.Errorf("%w: %s not in %v", ErrRegionOutOfBounds, s.Rect, bounds)
	}

	out := make([]palette.Color, 0, s.Rect.Area())
	r := s.Rect.ImageRect()

	// Fast path for the common decoded formats.
	if nrgba, ok := s.Image.(*image.NRGBA); ok {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				out = append(out, fromNRGBA(nrgba.NRGBAAt(x, y)))
			}
		}
		return out, nil
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			out = append(out, palette.FromColor(s.Image.At(x, y)))
		}
	}
	return out, nil
}

// VisibleOpaqueColors implements palette.PixelSource.
func (s *Sprite) VisibleOpaqueColors(cutoff float64) ([]palette.Color, error) {
	px, err := s.Pixels()
	if err != nil {
		return nil, fmt.Errorf("sprite %q: %w", s.Name, err)
	}
	return palette.VisibleOpaque(px, cutoff), nil
}

func fromNRGBA(c color.NRGBA) palette.Color {
	return palette.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// SupportedFormats returns the list of supported image formats.
func SupportedFormats() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".webp", ".bmp"}
}

// IsSupportedFormat checks if the given path has a supported image format.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}
