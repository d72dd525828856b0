// Package media finds the files a strip shows and measures their natural
// size. Nothing here decodes pixels: images are measured from their header,
// videos through ffprobe and PDFs from their first MediaBox.
package media

import (
	"path/filepath"
	"strings"

	"github.com/llehouerou/reel/internal/carousel"
)

// Supported file extensions.
const (
	ExtJPG  = ".jpg"
	ExtJPEG = ".jpeg"
	ExtPNG  = ".png"
	ExtGIF  = ".gif"
	ExtWEBP = ".webp"
	ExtBMP  = ".bmp"
	ExtMP4  = ".mp4"
	ExtMOV  = ".mov"
	ExtMKV  = ".mkv"
	ExtWEBM = ".webm"
	ExtAVI  = ".avi"
	ExtM4V  = ".m4v"
	ExtPDF  = ".pdf"
)

var kinds = map[string]carousel.MediaKind{
	ExtJPG:  carousel.Image,
	ExtJPEG: carousel.Image,
	ExtPNG:  carousel.Image,
	ExtGIF:  carousel.Image,
	ExtWEBP: carousel.Image,
	ExtBMP:  carousel.Image,
	ExtMP4:  carousel.Video,
	ExtMOV:  carousel.Video,
	ExtMKV:  carousel.Video,
	ExtWEBM: carousel.Video,
	ExtAVI:  carousel.Video,
	ExtM4V:  carousel.Video,
	ExtPDF:  carousel.PDF,
}

// KindOf returns the media kind of path from its extension.
func KindOf(path string) (carousel.MediaKind, bool) {
	k, ok := kinds[strings.ToLower(filepath.Ext(path))]
	return k, ok
}

// IsMediaFile reports whether path has a supported extension.
func IsMediaFile(path string) bool {
	_, ok := KindOf(path)
	return ok
}
