package sxui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rendering is a pure function of a tree and an area: no state is held
// between passes, and painting the same tree into the same area twice
// produces identical output. Trees are assumed to come from a successful
// Build pass; no validation happens here.

// Render paints the text content into the area, one source line per row,
// clipped on both axes, never wrapped.
func (t Text) Render(buf *Buffer, area Rect) {
	if area.Empty() {
		return
	}
	y := area.Y
	for _, line := range strings.Split(t.Content, "\n") {
		if y >= area.Bottom() {
			break
		}
		buf.WriteStringClipped(area.X, y, line, DefaultStyle(), area.Width)
		y++
	}
}

// Render paints the child into the area shrunk by one cell on each bordered
// edge, then draws the borders and title over the full area. The container
// paints after its content, so borders and title win where they overlap.
func (b Block) Render(buf *Buffer, area Rect) {
	if area.Empty() {
		return
	}
	if b.Content != nil {
		b.Content.Render(buf, area.Inner(b.Style.Borders))
	}
	buf.DrawBorders(area, b.Style.Borders, BorderSingle, DefaultStyle())
	b.renderTitle(buf, area)
}

// renderTitle writes the title into the top row, aligned per the block
// style, inside the left/right border columns where those are drawn.
func (b Block) renderTitle(buf *Buffer, area Rect) {
	if b.Title == "" {
		return
	}
	start := area.X
	end := area.Right()
	if b.Style.Borders.Has(BorderLeft) {
		start++
	}
	if b.Style.Borders.Has(BorderRight) {
		end--
	}
	avail := end - start
	if avail <= 0 {
		return
	}

	w := runewidth.StringWidth(b.Title)
	if w > avail {
		w = avail
	}
	x := start
	switch b.Style.TitleAlign {
	case AlignCenter:
		x = start + (avail-w)/2
	case AlignRight:
		x = start + avail - w
	}
	buf.WriteStringClipped(x, area.Y, b.Title, DefaultStyle(), avail-(x-start))
}

// Render partitions the area among the elements and renders each subtree
// into its sub-rectangle, in element order.
func (s Stack) Render(buf *Buffer, area Rect) {
	if len(s.Elements) == 0 {
		return
	}
	constraints := make([]Constraint, len(s.Elements))
	for i, el := range s.Elements {
		constraints[i] = el.Constraint
	}
	rects := SplitRect(s.Direction, constraints, area)
	for i, el := range s.Elements {
		if el.Content != nil {
			el.Content.Render(buf, rects[i])
		}
	}
}
