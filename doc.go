// Package vt100 provides a headless VT100/VT102/ANSI terminal emulator core.
//
// It consumes a byte stream that would normally be written to a physical or
// pseudo terminal and maintains a virtual screen: a fixed-size grid of
// character cells with per-cell attributes, a cursor, and a scrolling
// region. The package performs no I/O of its own; callers feed it bytes via
// [Emulator.Write] and read the resulting [Screen] and [CursorState] back out.
//
// # Quick start
//
//	term := vt100.New(vt100.WithSize(24, 80))
//	term.WriteString("\x1b[31mHello\x1b[0m")
//	cell := term.Screen().Cell(0, 0)
//	fmt.Printf("%c\n", cell.Char) // H
//
// # Architecture
//
// The emulator is built from four cooperating pieces:
//
//   - [Screen]: the grid of [Line]s and [Cell]s, tab stops, and resize logic.
//   - attribute/charset state: current SGR attributes, the saved
//     cursor/attribute snapshot, and the G0/G1 character-set slots.
//   - [decoder]: incremental multibyte-to-rune conversion with a small carry
//     buffer, so split UTF-8 sequences across Write calls decode correctly.
//   - the escape-sequence parser: a byte-oriented state machine recognizing
//     CSI/OSC/ESC sequences and a hanging-cursor wrap discipline at the
//     right margin.
//
// # Notifications
//
// Construct with [WithCallback] to be notified of bells, answerback
// replies, title changes, cursor visibility changes, mode changes, and
// screen/cursor updates. See [Message] for the full set of notification
// types delivered during a single [Emulator.Write] call.
//
// # Concurrency
//
// An Emulator is not safe for concurrent use. All operations are
// synchronous; callers must serialize Write, Resize, Reset, Clean, and
// getter calls themselves. The package performs no internal locking and
// spawns no goroutines.
package vt100
