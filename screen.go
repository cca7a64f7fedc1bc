package vt100

// Screen is the grid: an ordered sequence of nline [Line] handles, each
// exactly ncol cells wide, plus a tab-stop table. Scrolling rotates the
// line-pointer slice rather than copying cell data.
type Screen struct {
	nline, ncol int
	lines       []*Line
	tabStops    []bool
}

// newScreen allocates an nline x ncol grid, every cell blank under attrs a,
// with default tab stops (every 8 columns, plus the first and last column).
func newScreen(nline, ncol int, a Attrs) *Screen {
	s := &Screen{nline: nline, ncol: ncol}
	s.lines = make([]*Line, nline)
	for i := range s.lines {
		s.lines[i] = newLine(ncol, a)
	}
	s.initDefaultTabStops()
	return s
}

// Rows returns the number of lines in the grid.
func (s *Screen) Rows() int { return s.nline }

// Cols returns the width of every line in the grid.
func (s *Screen) Cols() int { return s.ncol }

// Line returns the line at row r, or nil if r is out of bounds.
func (s *Screen) Line(r int) *Line {
	if r < 0 || r >= s.nline {
		return nil
	}
	return s.lines[r]
}

// Cell returns the cell at (r, c). The zero Cell is returned if either
// coordinate is out of bounds.
func (s *Screen) Cell(r, c int) Cell {
	l := s.Line(r)
	if l == nil || c < 0 || c >= s.ncol {
		return Cell{}
	}
	return l.Cell(c)
}

// setCell writes a cell at (r, c) and marks its line dirty. Out-of-bounds
// coordinates are silently ignored.
func (s *Screen) setCell(r, c int, cell Cell) {
	l := s.Line(r)
	if l == nil || c < 0 || c >= s.ncol {
		return
	}
	l.cells[c] = cell
	l.dirty = true
}

// HasDirty reports whether any line has changed since the last Clean call:
// the logical OR of every line's dirty flag.
func (s *Screen) HasDirty() bool {
	for _, l := range s.lines {
		if l.dirty {
			return true
		}
	}
	return false
}

// Clean clears every line's dirty flag.
func (s *Screen) Clean() {
	for _, l := range s.lines {
		l.dirty = false
	}
}

// dirtyRange marks lines [s_, e) dirty.
func (s *Screen) dirtyRange(s_, e int) {
	if s_ < 0 {
		s_ = 0
	}
	if e > s.nline {
		e = s.nline
	}
	for i := s_; i < e; i++ {
		s.lines[i].dirty = true
	}
}

// clearLineRange blanks cells [cs, ce) of line r under attrs a.
func (s *Screen) clearLineRange(r, cs, ce int, a Attrs) {
	l := s.Line(r)
	if l == nil {
		return
	}
	l.clearRange(cs, ce, a)
}

// clearLines blanks n whole lines starting at row r, under attrs a.
func (s *Screen) clearLines(r, n int, a Attrs) {
	for i := r; i < r+n && i < s.nline; i++ {
		if i < 0 {
			continue
		}
		s.lines[i].clearRange(0, s.ncol, a)
	}
}

// clearAll blanks every cell in the grid under attrs a.
func (s *Screen) clearAll(a Attrs) {
	s.clearLines(0, s.nline, a)
}

// fillWithE overwrites every cell with 'E' under default attrs, for the
// DECALN screen-alignment test pattern.
func (s *Screen) fillWithE() {
	for _, l := range s.lines {
		for i := range l.cells {
			l.cells[i] = Cell{Char: 'E', Attrs: defaultAttrs}
		}
		l.dirty = true
	}
}

// scrollUp rotates lines [top, bottom] (inclusive) so that n lines at top
// move off and n blank lines (under attrs a) appear at the bottom of the
// region. n is capped at bottom-top (not bottom-top+1): a scroll can never
// blank an entire region in one call.
func (s *Screen) scrollUp(top, bottom, n int, a Attrs) {
	top, bottom, n = s.clampRegion(top, bottom, n)
	if n <= 0 {
		return
	}

	region := bottom - top + 1
	buf := make([]*Line, n)
	copy(buf, s.lines[top:top+n])
	copy(s.lines[top:top+region-n], s.lines[top+n:top+region])
	copy(s.lines[bottom-n+1:bottom+1], buf)

	for i := bottom - n + 1; i <= bottom; i++ {
		s.lines[i].cells = make([]Cell, s.ncol)
		for j := range s.lines[i].cells {
			s.lines[i].cells[j] = blankCell(a)
		}
		s.lines[i].dirty = true
	}
	s.dirtyRange(top, bottom+1)
}

// scrollDown is the symmetric counterpart of scrollUp: n lines at the
// bottom of [top, bottom] move off and n blank lines appear at the top.
func (s *Screen) scrollDown(top, bottom, n int, a Attrs) {
	top, bottom, n = s.clampRegion(top, bottom, n)
	if n <= 0 {
		return
	}

	buf := make([]*Line, n)
	copy(buf, s.lines[bottom-n+1:bottom+1])
	copy(s.lines[top+n:bottom+1], s.lines[top:bottom+1-n])
	copy(s.lines[top:top+n], buf)

	for i := top; i < top+n; i++ {
		s.lines[i].cells = make([]Cell, s.ncol)
		for j := range s.lines[i].cells {
			s.lines[i].cells[j] = blankCell(a)
		}
		s.lines[i].dirty = true
	}
	s.dirtyRange(top, bottom+1)
}

// clampRegion normalizes a scroll region to valid bounds and caps the
// scroll count n to bottom-top, leaving at least one row of the region
// unscrolled on every call.
func (s *Screen) clampRegion(top, bottom, n int) (int, int, int) {
	if top < 0 {
		top = 0
	}
	if bottom >= s.nline {
		bottom = s.nline - 1
	}
	if top > bottom {
		return top, bottom, 0
	}
	max := bottom - top
	if n > max {
		n = max
	}
	return top, bottom, n
}

// insertChars shifts cells [col, ncol-n) of line r right by n, discarding
// spill past the right margin, then blanks [col, col+n) under attrs a.
func (s *Screen) insertChars(r, col, n int, a Attrs) {
	l := s.Line(r)
	if l == nil || n <= 0 {
		return
	}
	if n > s.ncol-col-1 {
		n = s.ncol - col - 1
	}
	if n <= 0 {
		l.clearRange(col, s.ncol, a)
		return
	}
	copy(l.cells[col+n:], l.cells[col:s.ncol-n])
	l.clearRange(col, col+n, a)
	l.dirty = true
}

// deleteChars shifts cells [col+n, ncol) of line r left by n, then blanks
// the vacated tail under attrs a.
func (s *Screen) deleteChars(r, col, n int, a Attrs) {
	l := s.Line(r)
	if l == nil {
		return
	}
	if n > s.ncol-col {
		n = s.ncol - col
	}
	if n == 0 {
		return
	}
	copy(l.cells[col:], l.cells[col+n:s.ncol])
	l.clearRange(s.ncol-n, s.ncol, a)
	l.dirty = true
}

// resize changes the grid's dimensions, preserving cells [0, min(old,new))
// of every surviving line and blanking any new cells/lines under attrs a.
// Fails (returning false, leaving the screen unchanged) if nline<2 or
// ncol<2.
func (s *Screen) resize(nline, ncol int, a Attrs) bool {
	if nline < 2 || ncol < 2 {
		return false
	}

	if nline < s.nline {
		s.lines = s.lines[:nline]
	}

	for i := range s.lines {
		s.lines[i].resize(ncol, a)
	}
	for i := len(s.lines); i < nline; i++ {
		s.lines = append(s.lines, newLine(ncol, a))
	}

	oldCol := s.ncol
	s.nline = nline
	s.ncol = ncol
	s.resizeTabStops(oldCol)
	s.dirtyRange(0, nline)
	return true
}

// initDefaultTabStops sets a tab stop every 8 columns plus the first and
// last column.
func (s *Screen) initDefaultTabStops() {
	s.tabStops = make([]bool, s.ncol)
	for i := 0; i < s.ncol; i += 8 {
		s.tabStops[i] = true
	}
	s.tabStops[0] = true
	s.tabStops[s.ncol-1] = true
}

// resizeTabStops sizes the tab-stop table to the new column count and
// re-initializes it to the default pattern across every column; tab stops
// set or cleared before the resize are not kept (oldCol is the previous
// column count).
func (s *Screen) resizeTabStops(oldCol int) {
	nt := make([]bool, s.ncol)
	n := oldCol
	if n > s.ncol {
		n = s.ncol
	}
	copy(nt, s.tabStops[:n])
	s.tabStops = nt
	s.initDefaultTabStops()
}

// SetTabStop enables a tab stop at column c.
func (s *Screen) SetTabStop(c int) {
	if c >= 0 && c < s.ncol {
		s.tabStops[c] = true
	}
}

// ClearTabStop disables the tab stop at column c.
func (s *Screen) ClearTabStop(c int) {
	if c >= 0 && c < s.ncol {
		s.tabStops[c] = false
	}
}

// ClearAllTabStops disables every tab stop, including the default first-
// and last-column sentinels.
func (s *Screen) ClearAllTabStops() {
	for i := range s.tabStops {
		s.tabStops[i] = false
	}
}

// IsTabStop reports whether column c is a tab stop.
func (s *Screen) IsTabStop(c int) bool {
	if c < 0 || c >= s.ncol {
		return false
	}
	return s.tabStops[c]
}

// nextTabStop returns the first tab-stop column after c, or ncol-1 if none.
func (s *Screen) nextTabStop(c int) int {
	for c+1 < s.ncol-1 && !s.tabStops[c+1] {
		c++
	}
	if c+1 < s.ncol {
		return c + 1
	}
	return s.ncol - 1
}

// prevTabStop returns the last tab-stop column before c, or 0 if none.
func (s *Screen) prevTabStop(c int) int {
	for c-1 > 0 && !s.tabStops[c-1] {
		c--
	}
	if c-1 >= 0 {
		return c - 1
	}
	return 0
}
