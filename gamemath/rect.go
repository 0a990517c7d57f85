package gamemath

// Rect is an axis-aligned rectangle stored as a centre point and half extents.
type Rect struct {
	CX, CY float64
	HW, HH float64
}

// RectFromBounds builds a Rect from its left/top corner and size.
func RectFromBounds(x, y, w, h float64) Rect {
	return Rect{CX: x + w/2, CY: y + h/2, HW: w / 2, HH: h / 2}
}

// Left returns the minimum X edge.
func (r Rect) Left() float64 { return r.CX - r.HW }

// Top returns the minimum Y edge.
func (r Rect) Top() float64 { return r.CY - r.HH }

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.CX + r.HW }

// Bottom returns the maximum Y edge.
func (r Rect) Bottom() float64 { return r.CY + r.HH }

// Width returns the full width.
func (r Rect) Width() float64 { return r.HW * 2 }

// Height returns the full height.
func (r Rect) Height() float64 { return r.HH * 2 }

// Overlaps reports whether two rectangles intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return abs(r.CX-o.CX) < r.HW+o.HW && abs(r.CY-o.CY) < r.HH+o.HH
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
