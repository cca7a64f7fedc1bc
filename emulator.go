package vt100

// hangState is the tri-state right-margin wrap discipline described in the
// package documentation: a real VT100 does not wrap until the character
// after the one that filled the last column arrives.
type hangState int

const (
	hangNone      hangState = iota
	hangSameLine            // cursor is one past the last column of a non-bottom row
	hangOffBottom           // cursor is one past the last column of the bottom scroll-region row
)

// defaultTerminalName is sent in XTVERSION replies when no name was
// configured via [WithTerminalName].
const defaultTerminalName = "tmt(0.0.0)"

// maxParams is the number of numeric CSI parameters tracked at once;
// additional parameters are parsed but discarded.
const maxParams = 8

// maxTitle bounds the OSC title-accumulation buffer.
const maxTitle = 128

// Emulator is a headless VT100/VT102/ANSI terminal: it consumes a byte
// stream and maintains a [Screen], cursor, and attribute/charset state. It
// performs no I/O of its own. An Emulator is not safe for concurrent use;
// see the package doc's Concurrency section.
type Emulator struct {
	screen *Screen

	curs    CursorState
	attrs   Attrs
	saved   savedCursor
	charset charsetState

	minline, maxline int
	hang             hangState

	dec decoder

	state    pstate
	params   [maxParams]int
	nparams  int
	question bool
	ignored  bool
	titleArg int
	title    []byte

	name string
	cb   Callback

	writeChanged bool // any mutation during the current Write call
}

// pstate is the escape-sequence parser's state.
type pstate int

const (
	stGround pstate = iota
	stEsc
	stArg
	stGtArg
	stTitleArg
	stTitle
	stLParen
	stRParen
)

// Option configures an [Emulator] at construction time.
type Option func(*Emulator)

// WithSize sets the initial grid dimensions. Defaults to 24x80 if omitted.
func WithSize(nline, ncol int) Option {
	return func(e *Emulator) {
		e.screen = newScreen(nline, ncol, defaultAttrs)
		e.minline, e.maxline = 0, nline-1
	}
}

// WithCallback registers the notification callback. See [Message] and
// [Callback] for the delivered protocol.
func WithCallback(cb Callback) Option {
	return func(e *Emulator) { e.cb = cb }
}

// WithTerminalName sets the name reported in XTVERSION (CSI > q) replies,
// in place of the default "tmt(0.0.0)".
func WithTerminalName(name string) Option {
	return func(e *Emulator) { e.name = name }
}

// WithACSChars overrides this Emulator's 31-entry ACS translation table
// ([defaultACSChars]) with a caller-provided one of the same length.
func WithACSChars(chars []rune) Option {
	return func(e *Emulator) {
		if len(chars) == len(defaultACSChars) {
			e.charset.acsChars = append([]rune(nil), chars...)
		}
	}
}

// New creates an Emulator. With no options the grid defaults to 24x80,
// cursor at (0,0) and visible, default attributes, and no callback.
func New(opts ...Option) *Emulator {
	e := &Emulator{
		attrs:   defaultAttrs,
		charset: defaultCharsetState,
		name:    defaultTerminalName,
	}
	e.curs.Visible = true
	for _, opt := range opts {
		opt(e)
	}
	if e.screen == nil {
		e.screen = newScreen(24, 80, defaultAttrs)
		e.minline, e.maxline = 0, 23
	}
	return e
}

// Screen returns the current grid. The returned value aliases the
// Emulator's internal state and must not be retained past the next Write,
// Resize, or Reset call.
func (e *Emulator) Screen() *Screen { return e.screen }

// Cursor returns the current cursor position and visibility.
func (e *Emulator) Cursor() CursorState { return e.curs }

// Clean clears every line's dirty flag.
func (e *Emulator) Clean() { e.screen.Clean() }

// SetUnicodeDecode toggles the Unicode-to-ACS pre-pass and returns its
// previous value.
func (e *Emulator) SetUnicodeDecode(v bool) bool {
	prev := e.charset.unicodeDecode
	e.charset.unicodeDecode = v
	return prev
}

// Resize changes the grid's dimensions, preserving content where the old
// and new bounds overlap. It fails, leaving the Emulator unchanged, if
// nline<2 or ncol<2.
func (e *Emulator) Resize(nline, ncol int) bool {
	if !e.screen.resize(nline, ncol, e.attrs) {
		return false
	}
	e.minline, e.maxline = 0, nline-1
	e.clampCursor()
	e.writeChanged = true
	e.notify(Message{Tag: Update})
	return true
}

// Reset restores default attributes, clears the parser and decoder state,
// blanks the screen, and shows the cursor at (0,0). The screen buffer
// itself is preserved and reused in place, never reallocated.
func (e *Emulator) Reset() {
	e.curs = CursorState{Visible: true}
	e.attrs = defaultAttrs
	e.saved = savedCursor{}
	e.charset = defaultCharsetState
	e.minline, e.maxline = 0, e.screen.Rows()-1
	e.hang = hangNone
	e.dec.reset()
	e.state = stGround
	e.nparams = 0
	e.question = false
	e.ignored = false
	e.titleArg = 0
	e.title = e.title[:0]
	e.screen.clearAll(defaultAttrs)
	e.notify(Message{Tag: Cursor, CursorVisible: true})
	e.notify(Message{Tag: Update})
}

// notify invokes the registered callback, if any.
func (e *Emulator) notify(m Message) {
	if e.cb != nil {
		e.cb(m)
	}
}

// Write ingests a byte range, advancing the parser state machine and
// mutating the screen/cursor/attribute state accordingly. It implements
// io.Writer and always returns len(p), nil.
func (e *Emulator) Write(p []byte) (int, error) {
	prevCurs := e.curs
	e.writeChanged = false

	for _, b := range p {
		e.step(b)
	}

	if e.writeChanged {
		e.notify(Message{Tag: Update})
	}
	if e.curs.Row != prevCurs.Row || e.curs.Col != prevCurs.Col {
		e.notify(Message{Tag: Moved})
	}
	return len(p), nil
}

// WriteString is a convenience wrapper around Write.
func (e *Emulator) WriteString(s string) (int, error) {
	return e.Write([]byte(s))
}

// step advances the parser by exactly one input byte.
func (e *Emulator) step(b byte) {
	switch e.state {
	case stGround:
		e.stepGround(b)
	case stEsc:
		e.stepEsc(b)
	case stArg:
		e.stepArg(b)
	case stGtArg:
		e.stepGtArg(b)
	case stTitleArg:
		e.stepTitleArg(b)
	case stTitle:
		e.stepTitle(b)
	case stLParen:
		e.stepParen(b, 0)
	case stRParen:
		e.stepParen(b, 1)
	}
}

// stepGround handles a byte while in the ground state: control characters
// act immediately, ESC begins a sequence, and everything else is decoded
// and written to the current cell.
func (e *Emulator) stepGround(b byte) {
	switch b {
	case 0x07: // BEL
		e.notify(Message{Tag: Bell})
	case 0x08: // BS
		if e.curs.Col > 0 {
			e.curs.Col--
		}
	case 0x09: // HT
		e.curs.Col = e.screen.nextTabStop(e.curs.Col)
	case 0x0a: // LF
		e.lineFeed()
	case 0x0d: // CR
		e.carriageReturn()
	case 0x0e: // SO
		e.charset.gl = 1
	case 0x0f: // SI
		e.charset.gl = 0
	case 0x1b: // ESC
		e.beginEsc()
	default:
		e.decodeAndWrite(b)
	}
}

// decodeAndWrite feeds a raw input byte through the legacy forced-ACS map
// or the incremental UTF-8 decoder, and writes the resulting rune (if any
// is ready) to the current cell.
func (e *Emulator) decodeAndWrite(b byte) {
	if e.charset.acsForced {
		e.writeCharAtCursor(e.charset.translateForced(b))
		return
	}
	if r, ok := e.dec.feed(b); ok {
		e.writeCharAtCursor(r)
	}
}

// beginEsc resets the parameter-gathering state and transitions to the ESC
// state.
func (e *Emulator) beginEsc() {
	e.state = stEsc
	e.nparams = 0
	for i := range e.params {
		e.params[i] = 0
	}
	e.question = false
	e.ignored = false
}

// stepEsc handles a byte immediately after ESC.
func (e *Emulator) stepEsc(b byte) {
	switch b {
	case '=', '>':
		e.state = stGround
	case 'H':
		e.screen.SetTabStop(e.curs.Col)
		e.state = stGround
	case '7':
		e.saveCursor()
		e.state = stGround
	case '8':
		e.restoreCursor()
		e.state = stGround
	case '+', '*':
		e.ignored = true
		e.state = stArg
	case 'c':
		e.Reset()
		e.state = stGround
	case 'M':
		e.reverseLineFeed()
		e.state = stGround
	case '[':
		e.state = stArg
	case ']':
		e.state = stTitleArg
		e.titleArg = 0
	case '(':
		e.state = stLParen
	case ')':
		e.state = stRParen
	case 0x1b:
		e.beginEsc()
	default:
		e.state = stGround
	}
}

// stepParen handles ESC ( and ESC ) character-set designations. slot is 0
// for G0 (LPAREN) or 1 for G1 (RPAREN).
func (e *Emulator) stepParen(b byte, slot int) {
	switch b {
	case 'A', 'B', '1', '2':
		e.charset.g[slot] = charsetASCII
	case '0':
		e.charset.g[slot] = charsetSpecialGraphics
	}
	e.state = stGround
}

// clampCursor constrains the cursor to the current grid bounds, the
// "cursor-fixup" step run after any repositioning operation.
func (e *Emulator) clampCursor() {
	if e.curs.Row < 0 {
		e.curs.Row = 0
	}
	if e.curs.Row >= e.screen.Rows() {
		e.curs.Row = e.screen.Rows() - 1
	}
	if e.curs.Col < 0 {
		e.curs.Col = 0
	}
	if e.curs.Col >= e.screen.Cols() {
		e.curs.Col = e.screen.Cols() - 1
	}
	e.hang = hangNone
}

// writeCharAtCursor implements the hanging-cursor wrap discipline (see the
// package doc's Architecture section) for a single decoded character.
func (e *Emulator) writeCharAtCursor(w rune) {
	if e.hang == hangOffBottom {
		e.screen.scrollUp(e.minline, e.maxline, 1, e.attrs)
	}
	e.hang = hangNone

	w = e.charset.translate(w)
	switch {
	case runeWidth(w) > 1:
		w = 0xFFFD
	case runeWidth(w) < 0:
		return
	}

	e.screen.setCell(e.curs.Row, e.curs.Col, Cell{Char: w, Attrs: e.attrs})
	e.writeChanged = true

	if e.curs.Col < e.screen.Cols()-1 {
		e.curs.Col++
	} else {
		e.curs.Col = 0
		e.curs.Row++
		e.hang = hangSameLine
	}

	if e.hang != hangNone && e.curs.Row > e.maxline {
		e.curs.Row = e.maxline
		e.hang = hangOffBottom
	}
}

// lineFeed implements LF, honoring the hang discipline described in the
// package doc.
func (e *Emulator) lineFeed() {
	if e.hang != hangNone {
		if e.hang == hangOffBottom {
			e.screen.scrollUp(e.minline, e.maxline, 1, e.attrs)
			e.writeChanged = true
		}
		e.hang = hangNone
		return
	}
	if e.curs.Row == e.maxline {
		e.screen.scrollUp(e.minline, e.maxline, 1, e.attrs)
		e.writeChanged = true
	} else if e.curs.Row < e.screen.Rows()-1 {
		e.curs.Row++
	}
}

// carriageReturn implements CR, honoring the hang discipline.
func (e *Emulator) carriageReturn() {
	e.curs.Col = 0
	if e.hang == hangSameLine {
		e.hang = hangNone
		if e.minline < e.curs.Row && e.curs.Row <= e.maxline {
			e.curs.Row--
		}
	}
}

// reverseLineFeed implements ESC M.
func (e *Emulator) reverseLineFeed() {
	e.hang = hangNone
	if e.curs.Row == e.minline {
		e.screen.scrollDown(e.minline, e.maxline, 1, e.attrs)
		e.writeChanged = true
	} else if e.curs.Row > 0 {
		e.curs.Row--
	}
}

// saveCursor implements ESC 7 / CSI s.
func (e *Emulator) saveCursor() {
	e.saved = savedCursor{row: e.curs.Row, col: e.curs.Col, attrs: e.attrs, charset: e.charset}
}

// restoreCursor implements ESC 8 / CSI u.
func (e *Emulator) restoreCursor() {
	e.curs.Row, e.curs.Col = e.saved.row, e.saved.col
	e.attrs = e.saved.attrs
	e.charset = e.saved.charset
	e.clampCursor()
}
