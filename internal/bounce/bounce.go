// Package bounce watches a scroll offset against its bounds and reports when
// it starts to overscroll an edge and when the overscroll starts to recover.
package bounce

import (
	"strings"

	"github.com/llehouerou/reel/internal/geom"
)

// Direction is a set of edges.
type Direction uint8

const (
	Left Direction = 1 << iota
	Right
	Up
	Down

	Horizontal = Left | Right
	Vertical   = Up | Down
	All        = Horizontal | Vertical
)

// Has reports whether d includes every edge of o.
func (d Direction) Has(o Direction) bool {
	return d&o == o && o != 0
}

func (d Direction) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	for _, e := range edges {
		if d&e.dir != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

var edges = [...]struct {
	dir  Direction
	name string
}{
	{Left, "left"},
	{Right, "right"},
	{Up, "up"},
	{Down, "down"},
}

// Events are optional callbacks, each fired once per bounce and edge.
type Events struct {
	BeginBouncing   func(Direction)
	ReverseBouncing func(Direction)
}

// Observer tracks overscroll per edge. It is not safe for concurrent use.
type Observer struct {
	allowed Direction
	events  Events
	bounds  geom.Rect

	bouncing Direction
	reversed Direction
	peak     [len(edges)]float64
}

// New returns an observer that reports only the allowed edges.
func New(allowed Direction, events Events) *Observer {
	return &Observer{allowed: allowed, events: events}
}

// SetBounds sets the range of offsets that is not overscroll.
func (o *Observer) SetBounds(r geom.Rect) {
	o.bounds = r
}

// Bouncing returns the edges currently overscrolled.
func (o *Observer) Bouncing() Direction {
	return o.bouncing
}

// ReverseBouncing returns the edges whose overscroll is shrinking.
func (o *Observer) ReverseBouncing() Direction {
	return o.reversed
}

// Observe feeds the current offset.
func (o *Observer) Observe(offset geom.Point) {
	for i, e := range edges {
		if o.allowed&e.dir == 0 {
			continue
		}
		over := o.overflow(e.dir, offset)
		switch {
		case over <= 0:
			o.bouncing &^= e.dir
			o.reversed &^= e.dir
			o.peak[i] = 0
		case o.bouncing&e.dir == 0:
			o.bouncing |= e.dir
			o.peak[i] = over
			if o.events.BeginBouncing != nil {
				o.events.BeginBouncing(e.dir)
			}
		case over > o.peak[i]:
			o.peak[i] = over
		case over < o.peak[i] && o.reversed&e.dir == 0:
			o.reversed |= e.dir
			if o.events.ReverseBouncing != nil {
				o.events.ReverseBouncing(e.dir)
			}
		}
	}
}

// DecelerationEnded forgets every bounce, so the next overscroll reports
// again.
func (o *Observer) DecelerationEnded() {
	o.bouncing = 0
	o.reversed = 0
	o.peak = [len(edges)]float64{}
}

func (o *Observer) overflow(d Direction, p geom.Point) float64 {
	switch d {
	case Left:
		return o.bounds.MinX() - p.X
	case Right:
		return p.X - o.bounds.MaxX()
	case Up:
		return o.bounds.MinY() - p.Y
	case Down:
		return p.Y - o.bounds.MaxY()
	}
	return 0
}
