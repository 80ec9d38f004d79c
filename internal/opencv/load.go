// Package opencv decodes sprites through OpenCV instead of the Go image
// decoders.
package opencv

import (
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	spriteimage "sprite-analyzer/internal/image"

	"gocv.io/x/gocv"
)

// Load reads an image file with OpenCV, keeping any alpha channel, and
// returns a sprite covering the whole image.
func Load(path string) (*spriteimage.Sprite, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("failed to read image with OpenCV: %s", path)
	}

	img, err := MatToNRGBA(mat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return spriteimage.FromImage(name, img), nil
}

// MatToNRGBA converts an 8-bit gray, BGR or BGRA Mat to a non-premultiplied
// Go image (parallelized by row stripes).
func MatToNRGBA(mat gocv.Mat) (*image.NRGBA, error) {
	var channels int
	switch mat.Type() {
	case gocv.MatTypeCV8UC1:
		channels = 1
	case gocv.MatTypeCV8UC3:
		channels = 3
	case gocv.MatTypeCV8UC4:
		channels = 4
	default:
		return nil, fmt.Errorf("unsupported mat type %v", mat.Type())
	}

	h := mat.Rows()
	w := mat.Cols()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	stride := img.Stride

	numWorkers := runtime.NumCPU()
	rowsPerWorker := (h + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		startY := worker * rowsPerWorker
		endY := startY + rowsPerWorker
		if endY > h {
			endY = h
		}
		if startY >= h {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			for y := yStart; y < yEnd; y++ {
				rowOffset := y * stride
				for x := 0; x < w; x++ {
					pix := img.Pix[rowOffset+x*4 : rowOffset+x*4+4]
					if channels == 1 {
						v := mat.GetUCharAt(y, x)
						pix[0], pix[1], pix[2], pix[3] = v, v, v, 255
						continue
					}
					// OpenCV stores BGR(A)
					pix[0] = mat.GetUCharAt(y, x*channels+2)
					pix[1] = mat.GetUCharAt(y, x*channels+1)
					pix[2] = mat.GetUCharAt(y, x*channels+0)
					pix[3] = 255
					if channels == 4 {
						pix[3] = mat.GetUCharAt(y, x*channels+3)
					}
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return img, nil
}
