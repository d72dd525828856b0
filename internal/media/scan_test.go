package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/reel/internal/carousel"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.png", []byte("x"))
	writeFile(t, dir, "A.mp4", []byte("xyz"))
	writeFile(t, dir, "c.pdf", nil)
	writeFile(t, dir, ".hidden.jpg", nil)
	writeFile(t, dir, "notes.txt", nil)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755))

	items, err := Scan(context.Background(), dir)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	assert.Equal(t, []string{"A.mp4", "b.png", "c.pdf"}, names)
	assert.Equal(t, carousel.Video, items[0].Kind)
	assert.Equal(t, int64(3), items[0].Size)
	assert.Equal(t, carousel.ItemID(filepath.Join(dir, "A.mp4")), items[0].ID())
}

func TestScan_MissingFolder(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestScan_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestList(t *testing.T) {
	l := NewList([]Item{
		{Path: "/p/a.png", Name: "a.png", Kind: carousel.Image},
		{Path: "/p/b.mp4", Name: "b.mp4", Kind: carousel.Video},
		{Path: "/p/c.pdf", Name: "c.pdf", Kind: carousel.PDF},
	})

	require.Equal(t, 3, l.Len())
	assert.Equal(t, carousel.Item{ID: "/p/b.mp4", Kind: carousel.Video}, l.At(1))
	assert.Equal(t, 2, l.IndexOf("/p/c.pdf"))
	assert.Equal(t, -1, l.IndexOf("/p/zzz"))
	assert.Equal(t, 1, l.IndexOfName("b.mp4"))

	removed := l.Remove(1)
	assert.Equal(t, "b.mp4", removed.Name)
	assert.Equal(t, []string{"/p/a.png", "/p/c.pdf"}, l.Paths())
	assert.Equal(t, 1, l.IndexOf("/p/c.pdf"))
}
