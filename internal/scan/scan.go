// Package scan analyzes many sprites concurrently.
package scan

import (
	"log"
	"runtime"
	"sync"

	"sprite-analyzer/internal/image"
	"sprite-analyzer/internal/palette"
)

// Result is the outcome for one sprite.
type Result struct {
	Name     string
	Report   palette.Report
	Dominant bool
	Err      error
}

// Scan analyzes every sprite and checks target against limit. Results keep
// the input order. A failing sprite records its error and does not stop the
// others. workers <= 0 uses one worker per CPU.
func Scan(sprites []*image.Sprite, target palette.Color, limit float64, p palette.Params, workers int) []Result {
	results := make([]Result, len(sprites))
	if len(sprites) == 0 {
		return results
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(sprites) {
		workers = len(sprites)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = scanOne(sprites[i], target, limit, p)
			}
		}()
	}
	for i := range sprites {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Printf("scan: %d sprites, %d failed (%d workers)", len(sprites), failed, workers)
	return results
}

func scanOne(s *image.Sprite, target palette.Color, limit float64, p palette.Params) Result {
	res := Result{Name: s.Name}
	res.Report, res.Err = palette.Analyze(s, p)
	if res.Err != nil {
		log.Printf("scan: %s: %v", s.Name, res.Err)
		return res
	}
	res.Dominant, res.Err = palette.IsDominant(res.Report, target, p.Tolerance, limit)
	return res
}
