package sxui

import (
	"fmt"
	"testing"
)

func TestResolveSizes(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		constraints []Constraint
		want        []int
	}{
		{
			name:        "lengths are exact",
			total:       10,
			constraints: []Constraint{{Length, 3}, {Length, 3}},
			want:        []int{3, 3},
		},
		{
			name:        "percentages split the total",
			total:       10,
			constraints: []Constraint{{Percentage, 50}, {Percentage, 50}},
			want:        []int{5, 5},
		},
		{
			name:        "percentage rounding may leave cells unused",
			total:       9,
			constraints: []Constraint{{Percentage, 50}, {Percentage, 50}},
			want:        []int{4, 4},
		},
		{
			name:        "percentage above 100 is clamped",
			total:       10,
			constraints: []Constraint{{Percentage, 150}},
			want:        []int{10},
		},
		{
			name:        "fill shares the remainder by weight",
			total:       10,
			constraints: []Constraint{{Fill, 1}, {Fill, 3}},
			want:        []int{3, 7},
		},
		{
			name:        "equal fills split evenly",
			total:       10,
			constraints: []Constraint{{Fill, 1}, {Fill, 1}},
			want:        []int{5, 5},
		},
		{
			name:        "zero-weight fill gets nothing",
			total:       10,
			constraints: []Constraint{{Fill, 0}, {Fill, 1}},
			want:        []int{0, 10},
		},
		{
			name:        "fill takes what length leaves",
			total:       10,
			constraints: []Constraint{{Length, 3}, {Fill, 1}},
			want:        []int{3, 7},
		},
		{
			name:        "min grows with the flexible pool",
			total:       10,
			constraints: []Constraint{{Length, 4}, {Min, 2}},
			want:        []int{4, 6},
		},
		{
			name:        "min and fill share extra space",
			total:       12,
			constraints: []Constraint{{Min, 2}, {Fill, 1}},
			want:        []int{7, 5},
		},
		{
			name:        "max grows from zero up to its cap",
			total:       10,
			constraints: []Constraint{{Max, 3}, {Fill, 1}},
			want:        []int{3, 7},
		},
		{
			name:        "max alone cannot exceed its cap",
			total:       10,
			constraints: []Constraint{{Max, 4}},
			want:        []int{4},
		},
		{
			name:        "overflow shrinks min floors first",
			total:       10,
			constraints: []Constraint{{Length, 8}, {Min, 6}},
			want:        []int{8, 2},
		},
		{
			name:        "min floors shrink no further than zero",
			total:       5,
			constraints: []Constraint{{Length, 8}, {Min, 2}},
			want:        []int{8, 0},
		},
		{
			name:        "negative values are treated as zero",
			total:       10,
			constraints: []Constraint{{Length, -5}, {Fill, 1}},
			want:        []int{0, 10},
		},
		{
			name:        "zero extent leaves nothing for flexibles",
			total:       0,
			constraints: []Constraint{{Length, 3}, {Fill, 1}},
			want:        []int{3, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSizes(tt.total, tt.constraints)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sizes, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sizes = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSplitRectVertical(t *testing.T) {
	area := NewRect(2, 3, 10, 6)
	rects := SplitRect(Vertical, []Constraint{{Length, 2}, {Fill, 1}}, area)

	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	if rects[0] != NewRect(2, 3, 10, 2) {
		t.Errorf("first = %+v", rects[0])
	}
	if rects[1] != NewRect(2, 5, 10, 4) {
		t.Errorf("second = %+v", rects[1])
	}
}

func TestSplitRectHorizontal(t *testing.T) {
	area := NewRect(1, 1, 12, 4)
	rects := SplitRect(Horizontal, []Constraint{{Percentage, 25}, {Fill, 1}, {Length, 2}}, area)

	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	if rects[0] != NewRect(1, 1, 3, 4) {
		t.Errorf("first = %+v", rects[0])
	}
	if rects[1] != NewRect(4, 1, 7, 4) {
		t.Errorf("second = %+v", rects[1])
	}
	if rects[2] != NewRect(11, 1, 2, 4) {
		t.Errorf("third = %+v", rects[2])
	}
}

// TestSplitRectCoverage checks the structural properties of a split: one
// rect per constraint, in order along the axis, with the union inside the
// area and gapless whenever a fill element can absorb the remainder.
func TestSplitRectCoverage(t *testing.T) {
	area := NewRect(0, 0, 40, 10)
	cases := [][]Constraint{
		{{Length, 5}, {Fill, 1}},
		{{Percentage, 30}, {Percentage, 30}, {Fill, 2}},
		{{Min, 4}, {Max, 8}, {Fill, 1}, {Fill, 1}},
		{{Length, 10}, {Length, 10}, {Length, 10}, {Fill, 3}},
	}
	for i, constraints := range cases {
		t.Run(fmt.Sprintf("case%d", i), func(t *testing.T) {
			rects := SplitRect(Horizontal, constraints, area)
			if len(rects) != len(constraints) {
				t.Fatalf("got %d rects, want %d", len(rects), len(constraints))
			}
			x := area.X
			for j, r := range rects {
				if r.X != x {
					t.Errorf("rect %d starts at %d, want %d", j, r.X, x)
				}
				if r.Width < 0 {
					t.Errorf("rect %d has negative width", j)
				}
				if r.Height != area.Height || r.Y != area.Y {
					t.Errorf("rect %d cross-axis = (%d,%d), want (%d,%d)", j, r.Y, r.Height, area.Y, area.Height)
				}
				x = r.Right()
			}
			if x != area.Right() {
				t.Errorf("union ends at %d, want %d", x, area.Right())
			}
		})
	}
}

// TestSplitRectOverflow checks that panes beyond the available extent
// degenerate to zero size instead of going negative.
func TestSplitRectOverflow(t *testing.T) {
	area := NewRect(0, 0, 5, 1)
	rects := SplitRect(Horizontal, []Constraint{{Length, 8}, {Length, 4}, {Min, 2}}, area)

	if rects[0].Width != 5 || rects[1].Width != 0 || rects[2].Width != 0 {
		t.Errorf("widths = %d,%d,%d, want 5,0,0", rects[0].Width, rects[1].Width, rects[2].Width)
	}
	for _, r := range rects {
		if r.Width < 0 || r.Height < 0 {
			t.Errorf("negative dimensions: %+v", r)
		}
	}
}
