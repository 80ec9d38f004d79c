package image

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"sprite-analyzer/pkg/geometry"
)

// SheetEntry names one sprite region of a sheet.
type SheetEntry struct {
	Name string           `json:"name"`
	Rect geometry.RectInt `json:"rect"`
}

// Sheet is a sprite sheet manifest: one image and its named regions.
type Sheet struct {
	Image   string       `json:"image"` // relative to the manifest
	Entries []SheetEntry `json:"sprites"`

	dir string
	img image.Image
}

// LoadSheet reads a JSON manifest and decodes the image it refers to.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sh Sheet
	if err := json.Unmarshal(data, &sh); err != nil {
		return nil, fmt.Errorf("unmarshal sheet: %w", err)
	}
	if sh.Image == "" {
		return nil, fmt.Errorf("sheet %s: no image", path)
	}
	sh.dir = filepath.Dir(path)

	imgPath := sh.Image
	if !filepath.IsAbs(imgPath) {
		imgPath = filepath.Join(sh.dir, imgPath)
	}
	img, err := decodeFile(imgPath)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", path, err)
	}
	sh.img = img

	log.Printf("sheet: loaded %s (%dx%d, %d sprites)",
		imgPath, img.Bounds().Dx(), img.Bounds().Dy(), len(sh.Entries))
	return &sh, nil
}

// Save writes the manifest as JSON.
func (sh *Sheet) Save(path string) error {
	data, err := json.MarshalIndent(sh, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sheet: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Sprites returns one sprite per manifest entry, in manifest order. With no
// entries the whole image is returned as a single sprite named after it.
func (sh *Sheet) Sprites() []*Sprite {
	if sh.img == nil {
		return nil
	}
	if len(sh.Entries) == 0 {
		name := filepath.Base(sh.Image)
		return []*Sprite{FromImage(name, sh.img)}
	}
	out := make([]*Sprite, len(sh.Entries))
	for i, e := range sh.Entries {
		out[i] = &Sprite{Name: e.Name, Image: sh.img, Rect: e.Rect}
	}
	return out
}
