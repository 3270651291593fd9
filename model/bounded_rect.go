package model

// BoundedRect tracks the smallest rectangle of cells needing re-evaluation.
//
// Extents are inclusive and always clamped to the outer bounds. Every point passed
// to Encompass is inflated by Buffer cells on each side, since a change at (x, y)
// can alter the neighbor count of any cell within one step of it.
type BoundedRect struct {
	XMin, YMin, XMax, YMax int

	Buffer int

	outer struct {
		xMin, yMin, xMax, yMax int
	}
	empty bool
}

// NewBoundedRect returns an empty rect with the given inflation buffer
func NewBoundedRect(buffer int) BoundedRect {
	r := BoundedRect{Buffer: max(0, buffer)}
	r.Reset()
	return r
}

// SetBounds redefines the outer clamp bounds and re-clamps the current extents
func (r *BoundedRect) SetBounds(xMin, yMin, xMax, yMax int) {
	r.outer.xMin, r.outer.yMin = xMin, yMin
	r.outer.xMax, r.outer.yMax = xMax, yMax
	if r.empty {
		r.Reset()
		return
	}
	r.clamp()
}

// Encompass grows the rect so it includes (x, y) plus the buffer margin
func (r *BoundedRect) Encompass(x, y int) {
	if r.empty {
		r.XMin, r.YMin = x-r.Buffer, y-r.Buffer
		r.XMax, r.YMax = x+r.Buffer, y+r.Buffer
		r.empty = false
	} else {
		r.XMin = min(r.XMin, x-r.Buffer)
		r.YMin = min(r.YMin, y-r.Buffer)
		r.XMax = max(r.XMax, x+r.Buffer)
		r.YMax = max(r.YMax, y+r.Buffer)
	}
	r.clamp()
}

// Fill expands the rect to the full outer bounds
func (r *BoundedRect) Fill() {
	r.XMin, r.YMin = r.outer.xMin, r.outer.yMin
	r.XMax, r.YMax = r.outer.xMax, r.outer.yMax
	r.empty = r.outer.xMin > r.outer.xMax || r.outer.yMin > r.outer.yMax
}

// Reset collapses the rect to the empty state (min at the outer max, max at the outer min)
func (r *BoundedRect) Reset() {
	r.XMin, r.YMin = r.outer.xMax, r.outer.yMax
	r.XMax, r.YMax = r.outer.xMin, r.outer.yMin
	r.empty = true
}

// IsEmpty reports whether the rect holds no cells.
// On a 1x1 grid the reset extents coincide, so the flag is authoritative.
func (r BoundedRect) IsEmpty() bool {
	return r.empty
}

// Contains is an inclusive range test on both axes
func (r BoundedRect) Contains(x, y int) bool {
	if r.empty {
		return false
	}
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Width returns the number of columns covered
func (r BoundedRect) Width() int {
	if r.empty {
		return 0
	}
	return r.XMax - r.XMin + 1
}

// Height returns the number of rows covered
func (r BoundedRect) Height() int {
	if r.empty {
		return 0
	}
	return r.YMax - r.YMin + 1
}

// Area returns the number of cells covered
func (r BoundedRect) Area() int {
	return r.Width() * r.Height()
}

func (r *BoundedRect) clamp() {
	r.XMin = clampInt(r.XMin, r.outer.xMin, r.outer.xMax)
	r.XMax = clampInt(r.XMax, r.outer.xMin, r.outer.xMax)
	r.YMin = clampInt(r.YMin, r.outer.yMin, r.outer.yMax)
	r.YMax = clampInt(r.YMax, r.outer.yMin, r.outer.yMax)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
