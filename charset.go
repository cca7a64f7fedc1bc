package vt100

// designation names which glyph set a G0/G1 slot currently holds.
type designation int

const (
	charsetASCII           designation = iota
	charsetSpecialGraphics             // DEC Special Graphics and Line Drawing
)

// charsetState is the character-set half of the attribute/charset state:
// which glyph set each of G0 and G1 designates, which of the two is
// currently shifted in (GL), whether incoming Unicode box-drawing glyphs
// are pre-translated to their DEC Special Graphics equivalent, whether the
// legacy "force ACS" mode (CSI 10m/11m) is active, and the ACS
// translation table in effect for this instance.
type charsetState struct {
	g             [2]designation
	gl            int // 0 or 1: which of g[0]/g[1] is active
	unicodeDecode bool
	acsForced     bool
	acsChars      []rune
}

// defaultCharsetState is the state after reset: both G0 and G1 hold ASCII,
// G0 is shifted in, Unicode pre-decoding is enabled by default, and the
// ACS table is the default 31-entry one.
var defaultCharsetState = charsetState{
	unicodeDecode: true,
	acsChars:      append([]rune(nil), defaultACSChars...),
}

// active reports whether the currently-shifted-in slot is special graphics.
func (c *charsetState) active() designation { return c.g[c.gl] }

// translate applies the Unicode-to-ACS pre-pass (if enabled) and then the
// active charset's translation to a decoded rune, in that order.
func (c *charsetState) translate(w rune) rune {
	if c.unicodeDecode {
		w = c.unicodeToACS(w)
	}
	if c.active() == charsetSpecialGraphics {
		w = c.decToACS(w)
	}
	return w
}

// translateForced maps a raw input byte through the legacy terminfo
// alternate-character-set table (CSI 10m/11m), bypassing UTF-8 decoding
// entirely.
func (c *charsetState) translateForced(b byte) rune {
	for i, m := range legacyACSMap {
		if m == b {
			return c.acsChars[i]
		}
	}
	return rune(b)
}

// defaultACSChars is the default ACS character table (vt->acschars in the
// terminfo convention), indexed by the offsets used in decToACS and
// legacyACSMap. [WithACSChars] lets a caller override it per instance.
var defaultACSChars = []rune{
	'>', '<', '^', 'v', '#', '+', ':', 'o', '#', '#',
	'+', '+', '+', '+', '+', '~', '-', '-', '-', '_',
	'+', '+', '+', '+', '|', '<', '>', '*', '!', 'f', 'o',
}

// legacyACSMap is the terminfo alternate-character-set byte table: byte
// values map positionally onto acsChars when the legacy force-ACS mode
// (CSI 10m/11m) is active.
var legacyACSMap = []byte{
	0020, 0021, 0030, 0031, 0333, 0004,
	0261, 0370, 0361, 0260, 0331, 0277,
	0332, 0300, 0305, 0176, 0304, 0304,
	0304, 0137, 0303, 0264, 0301, 0302,
	0263, 0363, 0362, 0343, 0330, 0234,
	0376,
}

// decToACS translates a DEC Special Graphics code point (as designated by
// ESC ( 0 / ESC ) 0, range '_'..'~') to its ACS-table equivalent. Code
// points outside that range pass through unchanged.
func (c *charsetState) decToACS(w rune) rune {
	switch {
	case w == '_':
		return ' '
	case w >= '`' && w <= 'a':
		return c.acsChars[w-'`'+5]
	case w >= 'b' && w <= 'e':
		return []rune("TFCL")[w-'b']
	case w >= 'f' && w <= 'g':
		return c.acsChars[w-'f'+7]
	case w >= 'h' && w <= 'i':
		return []rune("NV")[w-'h']
	case w >= 'j' && w <= '~':
		return c.acsChars[w-'j'+10]
	}
	return w
}

// unicodeToACS maps common Unicode box-drawing and symbol code points to
// their DEC Special Graphics equivalent, so applications that emit
// pre-encoded UTF-8 box drawing render identically to ones that use the
// ESC ( 0 convention. Unrecognized runes pass through unchanged.
func (c *charsetState) unicodeToACS(w rune) rune {
	switch w {
	case 0x2192:
		return c.acsChars[0] // RIGHT ARROW
	case 0x2190:
		return c.acsChars[1] // LEFT ARROW
	case 0x2191:
		return c.acsChars[2] // UP ARROW
	case 0x2193:
		return c.acsChars[3] // DOWN ARROW
	case 0x2588:
		return c.acsChars[4] // BLOCK
	case 0x25A6:
		return c.acsChars[9] // BOARD
	case 0x00A0:
		return c.decToACS(0x5f) // NBSP
	case 0x2666, 0x25C6:
		return c.decToACS(0x60) // BLACK DIAMOND
	case 0x2592:
		return c.decToACS(0x61) // MEDIUM SHADE
	case 0x2409:
		return c.decToACS(0x62) // SYMBOL FOR HORIZONTAL TABULATION
	case 0x240C:
		return c.decToACS(0x63) // SYMBOL FOR FORM FEED
	case 0x240D:
		return c.decToACS(0x64) // SYMBOL FOR CARRIAGE RETURN
	case 0x240A:
		return c.decToACS(0x65) // SYMBOL FOR LINE FEED
	case 0x00B0:
		return c.decToACS(0x66) // DEGREE SIGN
	case 0x00B1:
		return c.decToACS(0x67) // PLUS-MINUS SIGN
	case 0x2424:
		return c.decToACS(0x68) // SYMBOL FOR NEWLINE
	case 0x240B:
		return c.decToACS(0x69) // SYMBOL FOR VERTICAL TABULATION
	case 0x2518:
		return c.decToACS(0x6a) // BOX DRAWINGS LIGHT UP AND LEFT
	case 0x2510:
		return c.decToACS(0x6b) // BOX DRAWINGS LIGHT DOWN AND LEFT
	case 0x250C:
		return c.decToACS(0x6c) // BOX DRAWINGS LIGHT DOWN AND RIGHT
	case 0x2514:
		return c.decToACS(0x6d) // BOX DRAWINGS LIGHT UP AND RIGHT
	case 0x253C:
		return c.decToACS(0x6e) // BOX DRAWINGS LIGHT VERTICAL AND HORIZONTAL
	case 0x23BA:
		return c.decToACS(0x6f) // HORIZONTAL SCAN LINE-1
	case 0x23BB:
		return c.decToACS(0x70) // HORIZONTAL SCAN LINE-3
	case 0x2500:
		return c.decToACS(0x71) // BOX DRAWINGS LIGHT HORIZONTAL
	case 0x23BC:
		return c.decToACS(0x72) // HORIZONTAL SCAN LINE-7
	case 0x23BD:
		return c.decToACS(0x73) // HORIZONTAL SCAN LINE-9
	case 0x251C:
		return c.decToACS(0x74) // BOX DRAWINGS LIGHT VERTICAL AND RIGHT
	case 0x2524:
		return c.decToACS(0x75) // BOX DRAWINGS LIGHT VERTICAL AND LEFT
	case 0x2534:
		return c.decToACS(0x76) // BOX DRAWINGS LIGHT UP AND HORIZONTAL
	case 0x252C:
		return c.decToACS(0x77) // BOX DRAWINGS LIGHT DOWN AND HORIZONTAL
	case 0x2502:
		return c.decToACS(0x78) // BOX DRAWINGS LIGHT VERTICAL
	case 0x2264:
		return c.decToACS(0x79) // LESS-THAN OR EQUAL TO
	case 0x2265:
		return c.decToACS(0x7a) // GREATER-THAN OR EQUAL TO
	case 0x03C0:
		return c.decToACS(0x7b) // GREEK SMALL LETTER PI
	case 0x2260:
		return c.decToACS(0x7c) // NOT EQUAL TO
	case 0x00A3:
		return c.decToACS(0x7d) // POUND SIGN
	case 0x00B7:
		return c.decToACS(0x7e) // MIDDLE DOT
	}
	return w
}
