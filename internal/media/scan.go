package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/llehouerou/reel/internal/carousel"
)

// Item is one media file in a folder.
type Item struct {
	Path    string
	Name    string
	Kind    carousel.MediaKind
	Size    int64
	ModTime time.Time
}

// ID is the item's stable identity for the layout.
func (it Item) ID() carousel.ItemID {
	return carousel.ItemID(it.Path)
}

// Scan lists the media files directly inside dir, sorted by name. Hidden
// files, directories and unsupported extensions are skipped.
func Scan(ctx context.Context, dir string) ([]Item, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		kind, ok := KindOf(name)
		if !ok {
			continue
		}
		info, err := e.Info()
		// The file may have vanished since ReadDir.
		if err != nil {
			continue
		}
		items = append(items, Item{
			Path:    filepath.Join(abs, name),
			Name:    name,
			Kind:    kind,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Name) < strings.ToLower(items[j].Name)
	})
	return items, nil
}
