// Package carousel computes the geometry of a horizontal media strip in
// which one focused item may grow to its content-preferred width while its
// neighbours keep their natural size.
//
// Geometry is a pure function of its LayoutState, the metrics and the
// preferred aspect ratios supplied by the caller. It never owns the scroll
// offset; it only answers frame, content-size and offset queries.
package carousel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/llehouerou/reel/internal/geom"
)

var (
	ErrNoItems           = errors.New("carousel: no items")
	ErrInvalidSize       = errors.New("carousel: size must be finite and positive")
	ErrInvalidViewport   = errors.New("carousel: viewport leaves no room for items")
	ErrInvalidProgress   = errors.New("carousel: progress must be a finite number")
	ErrInvalidMetrics    = errors.New("carousel: invalid metrics")
	ErrRemovalInProgress = errors.New("carousel: removal in progress")
	ErrNoRemoval         = errors.New("carousel: no removal in progress")
	ErrRemovalMismatch   = errors.New("carousel: item list does not match the removal")
)

// Style selects how the focused item is laid out.
type Style int

const (
	// Carousel lets the focused item expand toward its preferred width.
	Carousel Style = iota
	// Flow keeps every item at its natural size.
	Flow
)

func (s Style) String() string {
	switch s {
	case Carousel:
		return "carousel"
	case Flow:
		return "flow"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses "carousel" or "flow", case-insensitively.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "carousel", "":
		return Carousel, nil
	case "flow":
		return Flow, nil
	default:
		return Carousel, fmt.Errorf("carousel: unknown style %q", s)
	}
}

// MediaKind tags what an item displays. Spacing rules switch on it.
type MediaKind int

const (
	Image MediaKind = iota
	Video
	PDF
)

func (k MediaKind) String() string {
	switch k {
	case Image:
		return "image"
	case Video:
		return "video"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("MediaKind(%d)", int(k))
	}
}

// ItemID identifies an item independently of its position in the list.
type ItemID string

// Item is the part of a caller's item that geometry needs.
type Item struct {
	ID   ItemID
	Kind MediaKind
}

// Items is a read-through view of the caller's ordered item list.
type Items interface {
	Len() int
	At(i int) Item
}

// ItemSlice adapts a plain slice to Items.
type ItemSlice []Item

func (s ItemSlice) Len() int { return len(s) }
func (s ItemSlice) At(i int) Item { return s[i] }

// Transition is an in-flight interpolation from the center item toward
// Target. Progress 1 means Target is the new center.
type Transition struct {
	Target   int
	Progress float64
}

// LayoutState is everything that selects a layout besides item data.
type LayoutState struct {
	Style      Style
	Center     int
	Transition Transition
	Viewport   geom.Size
}

// Transitioning reports whether focus is moving between two items.
func (s LayoutState) Transitioning() bool {
	return s.Transition.Target != s.Center
}

// Metrics are the tunable dimensions of the strip, in the caller's units.
type Metrics struct {
	// NaturalAspect is width/height of an item at rest.
	NaturalAspect float64
	// VerticalInset is removed from the viewport height to get the item height.
	VerticalInset float64

	MinLineSpacing float64
	MaxLineSpacing float64

	// MaxWidthMultiplier caps the focused width at this many natural widths.
	MaxWidthMultiplier float64
	// PlayingVideoSpacingMultiplier scales MaxLineSpacing around a focused
	// video that is playing.
	PlayingVideoSpacingMultiplier float64

	// RatioEpsilon is the smallest preferred-ratio change that relayouts.
	RatioEpsilon float64
}

// DefaultMetrics returns metrics suitable for a point-based viewport.
func DefaultMetrics() Metrics {
	return Metrics{
		NaturalAspect:                 0.75,
		VerticalInset:                 0,
		MinLineSpacing:                4,
		MaxLineSpacing:                16,
		MaxWidthMultiplier:            2.5,
		PlayingVideoSpacingMultiplier: 1.5,
		RatioEpsilon:                  0.01,
	}
}

// Validate checks that metrics describe a usable layout.
func (m Metrics) Validate() error {
	values := []float64{
		m.NaturalAspect, m.VerticalInset, m.MinLineSpacing, m.MaxLineSpacing,
		m.MaxWidthMultiplier, m.PlayingVideoSpacingMultiplier, m.RatioEpsilon,
	}
	for _, v := range values {
		if !geom.IsFinite(v) {
			return fmt.Errorf("%w: non-finite value", ErrInvalidMetrics)
		}
	}
	switch {
	case m.NaturalAspect <= 0:
		return fmt.Errorf("%w: natural aspect %v", ErrInvalidMetrics, m.NaturalAspect)
	case m.VerticalInset < 0:
		return fmt.Errorf("%w: vertical inset %v", ErrInvalidMetrics, m.VerticalInset)
	case m.MinLineSpacing < 0 || m.MaxLineSpacing < m.MinLineSpacing:
		return fmt.Errorf("%w: line spacing %v..%v", ErrInvalidMetrics, m.MinLineSpacing, m.MaxLineSpacing)
	case m.MaxWidthMultiplier < 1:
		return fmt.Errorf("%w: width multiplier %v", ErrInvalidMetrics, m.MaxWidthMultiplier)
	case m.PlayingVideoSpacingMultiplier <= 0:
		return fmt.Errorf("%w: video spacing multiplier %v", ErrInvalidMetrics, m.PlayingVideoSpacingMultiplier)
	case m.RatioEpsilon < 0:
		return fmt.Errorf("%w: ratio epsilon %v", ErrInvalidMetrics, m.RatioEpsilon)
	}
	return nil
}
