package vt100

import "strconv"

// This file holds the semantic operations dispatched from CSI final bytes
// in parser.go: cursor motion, erasing, line/character editing, scrolling,
// mode changes, and device reports. Each operation ends by leaving the
// cursor within bounds; callers (parser.go) do not need to clamp again.

// moveCursor moves the cursor by (dr, dc) and clamps to bounds.
func (e *Emulator) moveCursor(dr, dc int) {
	e.curs.Row += dr
	e.curs.Col += dc
	e.clampCursor()
}

// gotoRowCol moves the cursor to an absolute (row, col), 0-based, clamped.
func (e *Emulator) gotoRowCol(row, col int) {
	e.curs.Row = row
	e.curs.Col = col
	e.clampCursor()
}

// eraseInDisplay implements CSI J.
func (e *Emulator) eraseInDisplay(mode int) {
	switch mode {
	case 0:
		e.screen.clearLineRange(e.curs.Row, e.curs.Col, e.screen.Cols(), e.attrs)
		e.screen.clearLines(e.curs.Row+1, e.screen.Rows()-e.curs.Row-1, e.attrs)
	case 1:
		e.screen.clearLineRange(e.curs.Row, 0, e.curs.Col, e.attrs)
		e.screen.clearLines(0, e.curs.Row, e.attrs)
	case 2:
		e.screen.clearAll(e.attrs)
	}
	e.writeChanged = true
}

// eraseInLine implements CSI K.
func (e *Emulator) eraseInLine(mode int) {
	switch mode {
	case 0:
		e.screen.clearLineRange(e.curs.Row, e.curs.Col, e.screen.Cols(), e.attrs)
	case 1:
		e.screen.clearLineRange(e.curs.Row, 0, e.curs.Col+1, e.attrs)
	case 2:
		e.screen.clearLineRange(e.curs.Row, 0, e.screen.Cols(), e.attrs)
	}
	e.writeChanged = true
}

// insertLines implements CSI L: scroll the region from the cursor row
// downward, opening n blank lines at the cursor row.
func (e *Emulator) insertLines(n int) {
	top := e.curs.Row
	if top < e.minline || top > e.maxline {
		return
	}
	e.screen.scrollDown(top, e.maxline, n, e.attrs)
	e.writeChanged = true
}

// deleteLines implements CSI M: scroll the region from the cursor row
// upward, discarding n lines at the cursor row.
func (e *Emulator) deleteLines(n int) {
	top := e.curs.Row
	if top < e.minline || top > e.maxline {
		return
	}
	e.screen.scrollUp(top, e.maxline, n, e.attrs)
	e.writeChanged = true
}

// deleteChars implements CSI P.
func (e *Emulator) deleteChars(n int) {
	e.screen.deleteChars(e.curs.Row, e.curs.Col, n, e.attrs)
	e.writeChanged = true
}

// insertBlank implements CSI @.
func (e *Emulator) insertBlank(n int) {
	e.screen.insertChars(e.curs.Row, e.curs.Col, n, e.attrs)
	e.writeChanged = true
}

// eraseChars implements CSI X: clear n cells starting at the cursor,
// without shifting the remainder of the line.
func (e *Emulator) eraseChars(n int) {
	e.screen.clearLineRange(e.curs.Row, e.curs.Col, e.curs.Col+n, e.attrs)
	e.writeChanged = true
}

// setScrollRegion implements CSI r.
func (e *Emulator) setScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= e.screen.Rows() {
		bottom = e.screen.Rows() - 1
	}
	if top >= bottom {
		return
	}
	e.minline, e.maxline = top, bottom
}

// scrollRegionUp implements CSI S.
func (e *Emulator) scrollRegionUp(n int) {
	e.screen.scrollUp(e.minline, e.maxline, n, e.attrs)
	e.writeChanged = true
}

// scrollRegionDown implements CSI T.
func (e *Emulator) scrollRegionDown(n int) {
	e.screen.scrollDown(e.minline, e.maxline, n, e.attrs)
	e.writeChanged = true
}

// forwardTab implements CSI I: move forward n tab stops.
func (e *Emulator) forwardTab(n int) {
	for i := 0; i < n; i++ {
		e.curs.Col = e.screen.nextTabStop(e.curs.Col)
	}
}

// backwardTab implements CSI Z: move backward n tab stops.
func (e *Emulator) backwardTab(n int) {
	for i := 0; i < n; i++ {
		e.curs.Col = e.screen.prevTabStop(e.curs.Col)
	}
}

// repeatLastChar implements CSI b: repeats the character one column back
// from the cursor n times. A no-op if the cursor sits at column 0, since
// there is no cell to its left on this line.
func (e *Emulator) repeatLastChar(n int) {
	if e.curs.Col == 0 {
		return
	}
	l := e.screen.Line(e.curs.Row)
	if l == nil {
		return
	}
	r := l.Cell(e.curs.Col - 1).Char
	if r == 0 {
		return
	}
	for i := 0; i < n; i++ {
		e.writeCharAtCursor(r)
	}
}

// deviceAttributesPrimary implements CSI c (no '?' prefix): reply with the
// primary device attributes.
func (e *Emulator) deviceAttributesPrimary() {
	e.notify(Message{Tag: Answer, Text: "\x1b[?6c"})
}

// deviceAttributesSecondary implements CSI > c.
func (e *Emulator) deviceAttributesSecondary() {
	e.notify(Message{Tag: Answer, Text: "\x1b[>0;95c"})
}

// xtversion implements CSI > q.
func (e *Emulator) xtversion() {
	e.notify(Message{Tag: Answer, Text: "\x1bP>|" + e.name + "\x1b\\"})
}

// cursorPositionReport implements CSI 6n.
func (e *Emulator) cursorPositionReport() {
	r, c := e.curs.Row+1, e.curs.Col+1
	e.notify(Message{Tag: Answer, Text: "\x1b[" + strconv.Itoa(r) + ";" + strconv.Itoa(c) + "R"})
}

// setMode implements CSI h.
func (e *Emulator) setMode(params []int) {
	if len(params) == 1 && params[0] == 25 {
		e.curs.Visible = true
		e.notify(Message{Tag: Cursor, CursorVisible: true})
		return
	}
	e.notify(Message{Tag: SetMode, Params: params})
}

// resetMode implements CSI l.
func (e *Emulator) resetMode(params []int) {
	if len(params) == 1 && params[0] == 25 {
		e.curs.Visible = false
		e.notify(Message{Tag: Cursor, CursorVisible: false})
		return
	}
	e.notify(Message{Tag: UnsetMode, Params: params})
}

// applySGR applies one SGR (Select Graphic Rendition) parameter.
func (e *Emulator) applySGR(p int) {
	switch {
	case p == 0:
		e.attrs = defaultAttrs
	case p == 1:
		e.attrs.Bold = true
	case p == 22:
		e.attrs.Bold = false
	case p == 2:
		e.attrs.Dim = true
	case p == 23:
		e.attrs.Dim = false
	case p == 4:
		e.attrs.Underline = true
	case p == 24:
		e.attrs.Underline = false
	case p == 5:
		e.attrs.Blink = true
	case p == 25:
		e.attrs.Blink = false
	case p == 7:
		e.attrs.Reverse = true
	case p == 27:
		e.attrs.Reverse = false
	case p == 8:
		e.attrs.Invisible = true
	case p == 28:
		e.attrs.Invisible = false
	case p == 10:
		e.charset.acsForced = false
	case p == 11:
		e.charset.acsForced = true
	case p >= 30 && p <= 37:
		e.attrs.Fg = Color(p - 30)
	case p == 39:
		e.attrs.Fg = ColorDefault
	case p >= 40 && p <= 47:
		e.attrs.Bg = Color(p - 40)
	case p == 49:
		e.attrs.Bg = ColorDefault
	}
}
