package strip

import (
	"time"

	"github.com/llehouerou/reel/internal/bounce"
	"github.com/llehouerou/reel/internal/media"
)

// FrameMsg advances every running animation to Time.
type FrameMsg struct {
	Time time.Time
}

// FocusChangedMsg is sent when the focused item changes, including after a
// removal.
type FocusChangedMsg struct {
	Index int
	Item  media.Item
}

// RemovedMsg is sent when an item has left the strip.
type RemovedMsg struct {
	Item media.Item
}

// EmptiedMsg is sent when the last item has been removed.
type EmptiedMsg struct{}

// EdgeMsg is sent when the strip is pulled past its first or last item,
// and again with Recovering once it starts to come back.
type EdgeMsg struct {
	Edge       bounce.Direction
	Recovering bool
}
