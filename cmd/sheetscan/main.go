// Command sheetscan checks every sprite of a sprite sheet for a dominant color.
package main

import (
	"flag"
	"fmt"
	"os"

	spriteimage "sprite-analyzer/internal/image"
	"sprite-analyzer/internal/opencv"
	"sprite-analyzer/internal/palette"
	"sprite-analyzer/internal/scan"
	"sprite-analyzer/pkg/colorutil"
)

func main() {
	sheetPath := flag.String("sheet", "", "Sprite sheet manifest (JSON)")
	imagePath := flag.String("image", "", "Single image to scan instead of a sheet")
	target := flag.String("target", "", "Color to test for dominance (name or #rrggbb)")
	limit := flag.Float64("limit", 50, "Dominance limit in percent")
	tolerance := flag.Float64("tolerance", 0.05, "Per-channel color tolerance")
	workers := flag.Int("workers", 0, "Parallel workers (0: one per CPU)")
	useOpenCV := flag.Bool("opencv", false, "Decode -image with OpenCV")
	flag.Parse()

	if (*sheetPath == "") == (*imagePath == "") || *target == "" {
		fmt.Println("Usage: sheetscan (-sheet <manifest.json> | -image <path>) -target <color> [-limit 50] [-tolerance 0.05]")
		os.Exit(1)
	}

	r, g, b, err := colorutil.Parse(*target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid target: %v\n", err)
		os.Exit(1)
	}
	want := palette.RGB(r, g, b)

	params := palette.DefaultParams().WithTolerance(*tolerance).WithIndex(true)
	if err := params.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %v\n", err)
		os.Exit(1)
	}

	var sprites []*spriteimage.Sprite
	switch {
	case *sheetPath != "":
		sheet, err := spriteimage.LoadSheet(*sheetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load sheet: %v\n", err)
			os.Exit(1)
		}
		sprites = sheet.Sprites()
	case *useOpenCV:
		s, err := opencv.Load(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
			os.Exit(1)
		}
		sprites = []*spriteimage.Sprite{s}
	default:
		s, err := spriteimage.Load(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
			os.Exit(1)
		}
		sprites = []*spriteimage.Sprite{s}
	}

	fmt.Printf("Scanning %d sprites for %s (%s) over %.1f%%\n\n", len(sprites), want, want.Hex(), *limit)
	fmt.Printf("%-24s %8s %8s %-22s %8s\n", "Sprite", "Pixels", "Target", "Top color", "Top %")

	results := scan.Scan(sprites, want, *limit, params, *workers)
	dominant := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("%-24s error: %v\n", res.Name, res.Err)
			continue
		}
		topColor, topPct := "-", 0.0
		if res.Report.Len() > 0 {
			topColor = res.Report.Entries[0].Color.String()
			topPct = res.Report.Entries[0].Percent
		}
		targetPct := 0.0
		if e, ok := res.Report.Find(want, params.Tolerance); ok {
			targetPct = e.Percent
		}
		mark := ""
		if res.Dominant {
			mark = " *"
			dominant++
		}
		fmt.Printf("%-24s %8d %7.2f%% %-22s %7.2f%%%s\n",
			res.Name, res.Report.Total, targetPct, topColor, topPct, mark)
	}

	fmt.Printf("\n%d of %d sprites dominated by %s\n", dominant, len(results), want)
}
