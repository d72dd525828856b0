// Package ui holds what the reel components share.
package ui

// Base stores the size a component was given. Embed it to get SetSize,
// Size, Width and Height:
//
//	type Model struct {
//	    ui.Base
//	    items *media.List
//	}
type Base struct {
	width, height int
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}
