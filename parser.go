package vt100

// This file holds the remainder of the escape-sequence state machine: CSI
// parameter gathering and final-byte dispatch, OSC title handling, and
// SGR. Ground-state and ESC-state handling live in emulator.go alongside
// the hang discipline they interact with.

// P0 returns the i-th parameter, or 0 if it was never supplied.
func (e *Emulator) P0(i int) int {
	if i < 0 || i >= maxParams {
		return 0
	}
	return e.params[i]
}

// P1 returns the i-th parameter, or 1 if it was unset or zero.
func (e *Emulator) P1(i int) int {
	v := e.P0(i)
	if v == 0 {
		return 1
	}
	return v
}

// paramCount is the number of parameters supplied in the sequence
// currently being dispatched (at least 1: an empty parameter list is one
// implicit parameter of value 0; at most maxParams).
func (e *Emulator) paramCount() int {
	if e.nparams >= maxParams {
		return maxParams
	}
	return e.nparams + 1
}

// stepArg handles a byte while gathering a CSI sequence's parameters and
// dispatches on the final byte.
func (e *Emulator) stepArg(b byte) {
	switch {
	case b == '?':
		e.question = true
	case b >= '0' && b <= '9':
		if e.nparams < maxParams {
			e.params[e.nparams] = e.params[e.nparams]*10 + int(b-'0')
		}
	case b == ';':
		if e.nparams < maxParams {
			e.nparams++
		}
	case b == '>':
		e.state = stGtArg
	default:
		e.dispatchCSI(b)
		e.state = stGround
	}
}

// dispatchCSI executes the operation named by a CSI final byte.
func (e *Emulator) dispatchCSI(final byte) {
	if e.ignored {
		e.ignored = false
		return
	}

	switch final {
	case 'A':
		e.moveCursor(-e.P1(0), 0)
	case 'B':
		e.moveCursor(e.P1(0), 0)
	case 'C':
		e.moveCursor(0, e.P1(0))
	case 'D':
		e.moveCursor(0, -e.P1(0))
	case 'E':
		e.gotoRowCol(e.curs.Row+e.P1(0), 0)
	case 'F':
		e.gotoRowCol(e.curs.Row-e.P1(0), 0)
	case 'G':
		e.gotoRowCol(e.curs.Row, e.P1(0)-1)
	case 'd':
		e.gotoRowCol(e.P1(0)-1, e.curs.Col)
	case 'H', 'f':
		e.gotoRowCol(e.P1(0)-1, e.P1(1)-1)
	case 'r':
		e.setScrollRegion(e.P1(0)-1, e.P1(1)-1)
	case 'I':
		e.forwardTab(e.P1(0))
	case 'Z':
		e.backwardTab(e.P1(0))
	case 'J':
		e.eraseInDisplay(e.P0(0))
	case 'K':
		e.eraseInLine(e.P0(0))
	case 'L':
		e.insertLines(e.P1(0))
	case 'M':
		e.deleteLines(e.P1(0))
	case 'P':
		e.deleteChars(e.P1(0))
	case '@':
		e.insertBlank(e.P1(0))
	case 'S':
		e.scrollRegionUp(e.P1(0))
	case 'T':
		e.scrollRegionDown(e.P1(0))
	case 'X':
		e.eraseChars(e.P1(0))
	case 'b':
		e.repeatLastChar(e.P1(0))
	case 'c':
		if !e.question {
			e.deviceAttributesPrimary()
		}
	case 'g':
		if e.P0(0) == 3 {
			e.screen.ClearAllTabStops()
		}
	case 'm':
		n := e.paramCount()
		for i := 0; i < n; i++ {
			e.applySGR(e.P0(i))
		}
	case 'n':
		if e.P0(0) == 6 {
			e.cursorPositionReport()
		}
	case 'h':
		e.setMode(e.paramsSlice())
	case 'l':
		e.resetMode(e.paramsSlice())
	case 's':
		e.saveCursor()
	case 'u':
		e.restoreCursor()
	case 'i':
		// print-control: accepted and ignored
	default:
		// unrecognized final: abort silently, matching ground-state's
		// tolerance of malformed sequences
	}
}

// paramsSlice copies the supplied parameters into a freshly allocated
// slice for delivery in a [Message]'s Params field.
func (e *Emulator) paramsSlice() []int {
	n := e.paramCount()
	out := make([]int, n)
	copy(out, e.params[:n])
	return out
}

// stepGtArg handles CSI > sequences (secondary DA, XTVERSION).
func (e *Emulator) stepGtArg(b byte) {
	switch {
	case b >= '0' && b <= '9':
		if e.nparams < maxParams {
			e.params[e.nparams] = e.params[e.nparams]*10 + int(b-'0')
		}
	case b == ';':
		if e.nparams < maxParams {
			e.nparams++
		}
	case b == 'c':
		e.deviceAttributesSecondary()
		e.state = stGround
	case b == 'q':
		e.xtversion()
		e.state = stGround
	default:
		e.state = stGround
	}
}

// stepTitleArg gathers the numeric OSC argument (0, 1, or 2) before the
// first ';'.
func (e *Emulator) stepTitleArg(b byte) {
	switch {
	case b >= '0' && b <= '9':
		e.titleArg = e.titleArg*10 + int(b-'0')
	case b == ';':
		e.title = e.title[:0]
		e.state = stTitle
	case b == 0x07:
		e.state = stGround
	default:
		e.state = stGround
	}
}

// stepTitle gathers the OSC title string until BEL terminates it.
func (e *Emulator) stepTitle(b byte) {
	if b == 0x07 {
		if e.titleArg == 0 || e.titleArg == 2 {
			e.notify(Message{Tag: Title, Text: string(e.title)})
		}
		e.state = stGround
		return
	}
	if b >= 32 && len(e.title) < maxTitle {
		e.title = append(e.title, b)
	}
}
