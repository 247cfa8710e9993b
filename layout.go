package sxui

// SplitRect partitions area along the given direction into exactly one
// sub-rectangle per constraint, in order. Sizes that overrun the area are
// truncated so the union never exceeds the input; zero-size rectangles are
// legal output.
func SplitRect(dir Direction, constraints []Constraint, area Rect) []Rect {
	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	if total < 0 {
		total = 0
	}

	sizes := resolveSizes(total, constraints)

	rects := make([]Rect, len(constraints))
	pos := 0
	for i, size := range sizes {
		if pos+size > total {
			size = total - pos
		}
		if size < 0 {
			size = 0
		}
		if dir == Horizontal {
			rects[i] = Rect{X: area.X + pos, Y: area.Y, Width: size, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + pos, Width: area.Width, Height: size}
		}
		pos += size
	}
	return rects
}

// resolveSizes turns constraints into concrete extents along one axis.
//
// Fixed demands are allocated first: Length takes its value, Percentage its
// integer share of the total, Min its floor. Whatever remains is distributed
// across the flexible pool: Min elements grow with weight one, Max elements
// grow from zero with weight one up to their cap, and Fill elements grow by
// their declared weight. When fixed demand already exceeds the total, Min
// floors are shrunk toward zero before anything else; remaining overflow is
// clipped by SplitRect.
func resolveSizes(total int, constraints []Constraint) []int {
	n := len(constraints)
	sizes := make([]int, n)
	weights := make([]int, n) // 0 = fixed
	caps := make([]int, n)    // -1 = unbounded

	used := 0
	for i, c := range constraints {
		v := c.Value
		if v < 0 {
			v = 0
		}
		caps[i] = -1
		switch c.Kind {
		case Length:
			sizes[i] = v
		case Percentage:
			if v > 100 {
				v = 100
			}
			sizes[i] = total * v / 100
		case Min:
			sizes[i] = v
			weights[i] = 1
		case Max:
			weights[i] = 1
			caps[i] = v
		case Fill:
			weights[i] = v
		}
		used += sizes[i]
	}

	if used < total {
		distribute(total-used, sizes, weights, caps)
	} else if used > total {
		shrinkMins(used-total, sizes, constraints)
	}
	return sizes
}

// distribute hands out extra cells to flexible elements in proportion to
// their weights, honouring caps. Cells lost to integer division go one each
// to the earliest still-growable elements, keeping the result deterministic.
func distribute(extra int, sizes, weights, caps []int) {
	for extra > 0 {
		totalWeight := 0
		for i := range weights {
			if growable(i, sizes, weights, caps) {
				totalWeight += weights[i]
			}
		}
		if totalWeight == 0 {
			return
		}

		given := 0
		for i := range weights {
			if !growable(i, sizes, weights, caps) {
				continue
			}
			g := extra * weights[i] / totalWeight
			if caps[i] >= 0 && sizes[i]+g > caps[i] {
				g = caps[i] - sizes[i]
			}
			sizes[i] += g
			given += g
		}

		if given == 0 {
			// proportional shares rounded to zero; sweep out single cells
			for i := range weights {
				if extra == 0 {
					break
				}
				if !growable(i, sizes, weights, caps) {
					continue
				}
				sizes[i]++
				extra--
			}
			continue
		}
		extra -= given
	}
}

func growable(i int, sizes, weights, caps []int) bool {
	return weights[i] > 0 && (caps[i] < 0 || sizes[i] < caps[i])
}

// shrinkMins reduces Min floors toward zero when fixed demand exceeds the
// available extent. The cut is proportional to each floor, with rounding
// leftovers swept off one cell at a time. Fill and Max elements hold no
// space at this point, so Min floors are the first flexible thing to give.
func shrinkMins(deficit int, sizes []int, constraints []Constraint) {
	totalMin := 0
	for i, c := range constraints {
		if c.Kind == Min {
			totalMin += sizes[i]
		}
	}
	if totalMin == 0 {
		return
	}

	cut := deficit
	if cut > totalMin {
		cut = totalMin
	}
	remaining := cut
	for i, c := range constraints {
		if c.Kind != Min {
			continue
		}
		take := sizes[i] * cut / totalMin
		sizes[i] -= take
		remaining -= take
	}
	for remaining > 0 {
		progress := false
		for i, c := range constraints {
			if remaining == 0 {
				break
			}
			if c.Kind == Min && sizes[i] > 0 {
				sizes[i]--
				remaining--
				progress = true
			}
		}
		if !progress {
			return
		}
	}
}
