package sxui

// Direction specifies the axis a stack partitions.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// TitleAlign positions a block title within the block's top row.
type TitleAlign int

const (
	AlignLeft TitleAlign = iota
	AlignCenter
	AlignRight
)

// Borders is a set of block edges to draw.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft
)

// Sentinels for the empty and full edge sets.
const (
	BordersNone Borders = 0
	BordersAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has returns true if the set contains all the given edges.
func (b Borders) Has(edges Borders) bool {
	return b&edges == edges
}

// BlockStyle is the visual configuration of a block container.
// The zero value is a left-aligned title with no borders.
type BlockStyle struct {
	TitleAlign TitleAlign
	Borders    Borders
}

// ConstraintKind selects how a stack element claims space along the axis.
type ConstraintKind int

const (
	// Length reserves exactly Value cells.
	Length ConstraintKind = iota
	// Min bounds the resolved size from below; the element grows with the
	// flexible pool.
	Min
	// Max bounds the resolved size from above; the element grows from zero
	// with the flexible pool, up to Value.
	Max
	// Percentage reserves Value percent of the total extent.
	Percentage
	// Fill claims a share of the remaining extent proportional to Value
	// relative to other Fill elements.
	Fill
)

// String returns the constraint kind's grammar symbol.
func (k ConstraintKind) String() string {
	switch k {
	case Length:
		return "length"
	case Min:
		return "min"
	case Max:
		return "max"
	case Percentage:
		return "percentage"
	case Fill:
		return "fill"
	}
	return "unknown"
}

// Constraint is a sizing directive for one stack element.
// Value is a non-negative sizing hint; negative values are treated as zero
// at layout time.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Tree is a validated render tree node. A tree is acyclic, each node owned
// by exactly one parent, and is read-only for the duration of a render pass.
type Tree interface {
	// Render paints the node into the given region of the buffer.
	Render(buf *Buffer, area Rect)
}

// Text is a leaf node drawing its content clipped to the area, one source
// line per row, without wrapping.
type Text struct {
	Content string
}

// Block is a bordered, optionally titled container wrapping exactly one
// child. The child renders into the area shrunk by one cell on each
// bordered edge.
type Block struct {
	Title   string
	Style   BlockStyle
	Content Tree
}

// Stack partitions its area along a direction, one sub-rectangle per
// element. Element order is both layout order along the axis and paint
// order.
type Stack struct {
	Direction Direction
	Elements  []StackElement
}

// StackElement pairs a sizing constraint with the subtree rendered into the
// resolved sub-rectangle.
type StackElement struct {
	Constraint Constraint
	Content    Tree
}
