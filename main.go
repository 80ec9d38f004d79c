// Package main provides the sprite-analyzer command: it reports the color
// occupancy of one sprite and optionally checks whether a color dominates it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	spriteimage "sprite-analyzer/internal/image"
	"sprite-analyzer/internal/opencv"
	"sprite-analyzer/internal/palette"
	"sprite-analyzer/internal/version"
	"sprite-analyzer/pkg/colorutil"
	"sprite-analyzer/pkg/geometry"
)

const appTitle = "Sprite Analyzer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	imagePath := flag.String("image", "", "Path to sprite image (PNG, JPEG, GIF, TIFF, WebP, BMP)")
	rect := flag.String("rect", "", "Sprite region x,y,width,height (default: whole image)")
	paramsPath := flag.String("params", "", "JSON parameters file")
	tolerance := flag.Float64("tolerance", 0, "Per-channel color tolerance (0: from params or 0.05)")
	indexed := flag.Bool("index", false, "Use the hashed bucket index")
	target := flag.String("target", "", "Color to test for dominance (name or #rrggbb)")
	limit := flag.Float64("limit", 50, "Dominance limit in percent")
	top := flag.Int("top", 10, "Number of colors to list (negative: all)")
	useOpenCV := flag.Bool("opencv", false, "Decode the image with OpenCV")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: sprite-analyzer -image <path> [-rect x,y,w,h] [-tolerance 0.05] [-target red -limit 50]")
		os.Exit(1)
	}
	log.Printf("Starting %s %s", appTitle, version.String())

	params := palette.DefaultParams()
	if *paramsPath != "" {
		p, err := palette.LoadParams(*paramsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load params: %v\n", err)
			os.Exit(1)
		}
		params = p
	}
	if *tolerance != 0 {
		params = params.WithTolerance(*tolerance)
	}
	if *indexed {
		params = params.WithIndex(true)
	}

	var sprite *spriteimage.Sprite
	var err error
	if *useOpenCV {
		sprite, err = opencv.Load(*imagePath)
	} else {
		sprite, err = spriteimage.Load(*imagePath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load sprite: %v\n", err)
		os.Exit(1)
	}
	if *rect != "" {
		r, err := geometry.ParseRectInt(*rect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid region: %v\n", err)
			os.Exit(1)
		}
		sprite = sprite.Region(sprite.Name, r)
	}

	fmt.Printf("Sprite %s: region %s (%dx%d)\n", sprite.Name, sprite.Rect, sprite.Width(), sprite.Height())
	fmt.Printf("Tolerance: %.3f  Alpha cutoff: %.2f\n", params.Tolerance, params.AlphaCutoff)

	report, err := palette.Analyze(sprite, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d visible pixels, %d colors\n", report.Total, report.Len())
	fmt.Printf("%-8s %-22s %10s %8s\n", "Hex", "Color", "Pixels", "Percent")
	for _, e := range report.Top(*top) {
		fmt.Printf("%-8s %-22s %10d %7.2f%%\n", e.Color.Hex(), e.Color, e.Count, e.Percent)
	}

	if *target == "" {
		return
	}
	r, g, b, err := colorutil.Parse(*target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid target: %v\n", err)
		os.Exit(1)
	}
	want := palette.RGB(r, g, b)
	dominant, err := palette.IsDominant(report, want, params.Tolerance, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Dominance check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n%s dominant over %.1f%%: %v\n", want, *limit, dominant)
	if !dominant {
		os.Exit(2)
	}
}
