package vt100

// Line is one row of the screen: an ordered sequence of exactly ncol cells,
// plus a dirty flag set whenever any cell in the line changes. Lines are
// referenced by pointer so that scrolling can rotate them cheaply (an O(n)
// pointer shuffle rather than an O(n*ncol) cell copy).
type Line struct {
	cells []Cell
	dirty bool
}

// newLine allocates a line of width n, every cell blank under attrs a.
func newLine(n int, a Attrs) *Line {
	l := &Line{cells: make([]Cell, n)}
	for i := range l.cells {
		l.cells[i] = blankCell(a)
	}
	return l
}

// resize grows or shrinks the line to width n, preserving the first
// min(len, n) cells and blanking any newly added cells under attrs a.
func (l *Line) resize(n int, a Attrs) {
	if n == len(l.cells) {
		return
	}
	nc := make([]Cell, n)
	copy(nc, l.cells)
	for i := len(l.cells); i < n; i++ {
		nc[i] = blankCell(a)
	}
	l.cells = nc
	l.dirty = true
}

// clearRange blanks cells [s, e) under attrs a and marks the line dirty.
func (l *Line) clearRange(s, e int, a Attrs) {
	if e > len(l.cells) {
		e = len(l.cells)
	}
	for i := s; i < e && i >= 0; i++ {
		l.cells[i] = blankCell(a)
	}
	l.dirty = true
}

// Dirty reports whether any cell in the line changed since the last Clean.
func (l *Line) Dirty() bool { return l.dirty }

// Cell returns the cell at column c. Panics if c is out of range; callers
// go through [Screen.Cell] for bounds-checked access.
func (l *Line) Cell(c int) Cell { return l.cells[c] }

// Len returns the number of cells in the line (always equal to the
// screen's ncol).
func (l *Line) Len() int { return len(l.cells) }
