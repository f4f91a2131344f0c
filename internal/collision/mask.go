package collision

import "math"

// Mask is a per-unit occupancy bitmap aligned with a body's box.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty w*h mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// FullMask creates a w*h mask with every cell set.
func FullMask(w, h int) *Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// MaskFromRows builds a mask from text rows; any rune other than ' ' or '.'
// is solid. Rows shorter than the widest one are padded empty.
func MaskFromRows(rows ...string) *Mask {
	w := 0
	for _, r := range rows {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	m := NewMask(w, len(rows))
	for y, r := range rows {
		for x, c := range []rune(r) {
			m.Set(x, y, c != ' ' && c != '.')
		}
	}
	return m
}

// Size returns the mask dimensions.
func (m *Mask) Size() (int, int) { return m.w, m.h }

// Set writes one cell; out-of-range writes are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = v
}

// Get reads one cell; out of range is empty.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of set cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipH returns a horizontally mirrored copy.
func (m *Mask) FlipH() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			out.bits[y*m.w+(m.w-1-x)] = m.bits[y*m.w+x]
		}
	}
	return out
}

// Overlap reports whether other, placed at offset (dx, dy) relative to m,
// shares any set cell with m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}

// offset converts a world-space difference to a mask offset.
func offset(d float64) int {
	return int(math.Floor(d))
}
