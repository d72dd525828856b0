// Command measure prints the sizes reel measures for the media of a folder,
// and the focused width each item would get in a strip of the given height.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/media"
	"github.com/llehouerou/reel/internal/ui/layout"
)

func main() {
	rows := flag.Int("rows", 24, "strip height in rows")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: measure [-rows n] folder")
	}
	dir := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	items, err := media.Scan(ctx, dir)
	if err != nil {
		log.Fatalf("Failed to scan %s: %v", dir, err)
	}
	log.Printf("Found %d media files in %s", len(items), dir)
	if len(items) == 0 {
		return
	}

	list := media.NewList(items)
	geo, err := carousel.New(list, cfg.Metrics())
	if err != nil {
		log.Fatalf("Failed to create layout: %v", err)
	}
	if err := geo.Resize(layout.Viewport(200, *rows)); err != nil {
		log.Fatalf("Failed to size layout: %v", err)
	}
	natural := geo.NaturalSize()
	log.Printf("Natural item: %.1fx%.1f cells", natural.Width, natural.Height)

	cell := layout.QueryCellSize()
	measurer := media.NewMeasurer()
	for i, it := range items {
		px, err := measurer.Measure(ctx, it)
		if err != nil {
			log.Printf("  [%d] %-40s %-5s %8s  %v", i, it.Name, it.Kind, humanize.Bytes(uint64(max(it.Size, 0))), err)
			continue
		}
		cells := layout.ToCells(px, cell)
		if _, err := geo.SetPreferredSize(it.ID(), cells); err != nil {
			log.Printf("  [%d] %-40s rejected: %v", i, it.Name, err)
			continue
		}
		log.Printf("  [%d] %-40s %-5s %8s  %5.0fx%-5.0f px  ratio %.2f  focused width %.1f",
			i, it.Name, it.Kind, humanize.Bytes(uint64(max(it.Size, 0))),
			px.Width, px.Height, cells.Ratio(), geo.PreferredWidth(i))
	}
}
