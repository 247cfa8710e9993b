package sxui

// Layer is an ordered collection of render trees composited into the same
// area. Later trees paint over cells written by earlier ones; there is no
// blending.
type Layer struct {
	trees []Tree
}

// Add appends a tree to the layer.
func (l *Layer) Add(t Tree) {
	l.trees = append(l.trees, t)
}

// Len returns the number of trees in the layer.
func (l *Layer) Len() int {
	return len(l.trees)
}

// Trees returns the trees in paint order.
func (l *Layer) Trees() []Tree {
	return l.trees
}

// Render paints every tree into the same area, in order.
func (l *Layer) Render(buf *Buffer, area Rect) {
	for _, t := range l.trees {
		t.Render(buf, area)
	}
}
