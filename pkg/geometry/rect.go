// Package geometry provides integer rectangle helpers for sprite regions.
package geometry

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// RectInt represents a rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FromImageRect converts an image.Rectangle.
func FromImageRect(r image.Rectangle) RectInt {
	return RectInt{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// ImageRect converts to an image.Rectangle.
func (r RectInt) ImageRect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the rectangle covers no pixels.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the pixel count, or 0 for an empty rectangle.
func (r RectInt) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// In reports whether r lies entirely inside bounds.
func (r RectInt) In(bounds image.Rectangle) bool {
	return !r.Empty() && r.ImageRect().In(bounds)
}

func (r RectInt) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.X, r.Y, r.Width, r.Height)
}

// ParseRectInt parses "x,y,width,height".
func ParseRectInt(s string) (RectInt, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return RectInt{}, fmt.Errorf("rect %q: want x,y,width,height", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RectInt{}, fmt.Errorf("rect %q: %w", s, err)
		}
		v[i] = n
	}
	return RectInt{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}
