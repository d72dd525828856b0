package media

import "github.com/llehouerou/reel/internal/carousel"

// List is the ordered item list a strip lays out. It implements
// carousel.Items.
type List struct {
	items []Item
}

// NewList wraps items. The slice is owned by the list afterwards.
func NewList(items []Item) *List {
	return &List{items: items}
}

func (l *List) Len() int { return len(l.items) }

func (l *List) At(i int) carousel.Item {
	it := l.items[i]
	return carousel.Item{ID: it.ID(), Kind: it.Kind}
}

// Item returns the full item at i.
func (l *List) Item(i int) Item {
	return l.items[i]
}

// Items returns the underlying slice. Callers must not modify it.
func (l *List) Items() []Item {
	return l.items
}

// Remove takes the item at i out of the list and returns it.
func (l *List) Remove(i int) Item {
	it := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return it
}

// IndexOf returns the position of id, or -1.
func (l *List) IndexOf(id carousel.ItemID) int {
	for i, it := range l.items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// IndexOfName returns the position of the first item named name, or -1.
func (l *List) IndexOfName(name string) int {
	for i, it := range l.items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// Paths returns every item path in order.
func (l *List) Paths() []string {
	paths := make([]string, len(l.items))
	for i, it := range l.items {
		paths[i] = it.Path
	}
	return paths
}

var _ carousel.Items = (*List)(nil)
