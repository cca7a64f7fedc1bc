package vt100

// CursorState is the current cursor position and visibility. Row and Col are
// both zero-based and always inside the grid. After a character fills the
// last column, the cursor reads as column 0 of the next row (or of the
// bottom scroll-region row when the next character will scroll) until a
// character, LF or CR resolves the pending wrap (see hang in [Emulator]).
type CursorState struct {
	Row, Col int
	Visible  bool
}

// savedCursor is the snapshot taken by DECSC (ESC 7) and restored by DECRC
// (ESC 8): position, pen attributes, and the active charset state. There is
// only this one slot; CSI ? 1049 h is forwarded as a SetMode notification
// and saves nothing.
type savedCursor struct {
	row, col int
	attrs    Attrs
	charset  charsetState
}
