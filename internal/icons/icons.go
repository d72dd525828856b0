package icons

import "github.com/llehouerou/reel/internal/carousel"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Folder  string
	Image   string
	Video   string
	PDF     string
	Playing string
}

var (
	nerdIcons = Icons{
		Folder:  "\uf07b ", // nf-fa-folder
		Image:   "\uf03e ", // nf-fa-image
		Video:   "\uf03d ", // nf-fa-video_camera
		PDF:     "\uf1c1 ", // nf-fa-file_pdf_o
		Playing: "\uf04b",  // nf-fa-play
	}

	unicodeIcons = Icons{
		Folder:  "📁 ",
		Image:   "🖼 ",
		Video:   "🎞 ",
		PDF:     "📄 ",
		Playing: "▶",
	}

	noneIcons = Icons{
		Folder:  "/",
		Playing: ">",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// IsPrefix returns true if the folder icon should be prepended.
func IsPrefix() bool {
	return current != noneIcons
}

// FormatFolder formats a folder name with the appropriate icon.
// For "none" style the indicator is a "/" suffix.
func FormatFolder(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatKind labels a media kind, with its icon when the style has one.
func FormatKind(kind carousel.MediaKind) string {
	var icon string
	switch kind {
	case carousel.Image:
		icon = current.Image
	case carousel.Video:
		icon = current.Video
	case carousel.PDF:
		icon = current.PDF
	}
	return icon + kind.String()
}

// Playing returns the playing indicator.
func Playing() string {
	return current.Playing
}
