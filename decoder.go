package vt100

import "unicode/utf8"

// decoder incrementally assembles UTF-8 runes from a byte stream that may
// be split across arbitrarily many [Emulator.Write] calls. It carries an
// incomplete trailing sequence between calls, bounded by utf8.UTFMax since
// a valid UTF-8 sequence never needs more bytes than that.
type decoder struct {
	buf [utf8.UTFMax]byte
	n   int
}

// feed consumes one input byte. It reports ok=true once a complete rune
// (or an irrecoverably invalid one) has been assembled, in which case r is
// the decoded rune or utf8.RuneError. ok=false means the byte was buffered
// and more input is needed before a character can be produced.
func (d *decoder) feed(b byte) (r rune, ok bool) {
	if d.n >= len(d.buf) {
		d.n = 0
	}
	d.buf[d.n] = b
	d.n++

	if !utf8.FullRune(d.buf[:d.n]) && d.n < utf8.UTFMax {
		return 0, false
	}
	r, _ = utf8.DecodeRune(d.buf[:d.n])
	d.n = 0
	return r, true
}

// reset discards any buffered partial sequence.
func (d *decoder) reset() { d.n = 0 }
