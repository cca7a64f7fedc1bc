package vt100

import "testing"

func TestDecToACSUnderscoreIsSpace(t *testing.T) {
	cs := defaultCharsetState
	if got := cs.decToACS('_'); got != ' ' {
		t.Errorf("decToACS('_') = %q, want space", got)
	}
}

func TestDecToACSHorizontalLine(t *testing.T) {
	cs := defaultCharsetState
	// 'q' is the DEC Special Graphics horizontal line glyph.
	got := cs.decToACS('q')
	want := cs.acsChars['q'-'j'+10]
	if got != want {
		t.Errorf("decToACS('q') = %q, want %q", got, want)
	}
}

func TestUnicodeToACSBoxDrawing(t *testing.T) {
	cs := defaultCharsetState
	// U+2500 (BOX DRAWINGS LIGHT HORIZONTAL) should map the same place as
	// the DEC Special Graphics 'q'.
	if got, want := cs.unicodeToACS(0x2500), cs.decToACS('q'); got != want {
		t.Errorf("unicodeToACS(0x2500) = %q, want %q", got, want)
	}
}

func TestUnicodeToACSPassesThroughUnmapped(t *testing.T) {
	cs := defaultCharsetState
	if got := cs.unicodeToACS('Z'); got != 'Z' {
		t.Errorf("unicodeToACS('Z') = %q, want unchanged", got)
	}
}

func TestCharsetStateTranslateAppliesActiveSlot(t *testing.T) {
	cs := defaultCharsetState
	cs.g[1] = charsetSpecialGraphics
	cs.gl = 1

	if got, want := cs.translate('q'), cs.decToACS('q'); got != want {
		t.Errorf("translate('q') with G1 special graphics = %q, want %q", got, want)
	}

	cs.gl = 0
	if got := cs.translate('q'); got != 'q' {
		t.Errorf("translate('q') with G0 ASCII active = %q, want unchanged", got)
	}
}

func TestEmulatorG1SpecialGraphicsViaShiftOut(t *testing.T) {
	e, _ := newTestEmulator(t, 1, 10)
	e.WriteString("\x1b)0\x0eq\x0f")

	want := e.charset.decToACS('q')
	if got := e.Screen().Cell(0, 0).Char; got != want {
		t.Errorf("cell(0,0) = %q, want %q (DEC Special Graphics 'q')", got, want)
	}
}

func TestLegacyForcedACSFlag(t *testing.T) {
	e, _ := newTestEmulator(t, 1, 10)
	e.WriteString("\x1b[11m")
	if !e.charset.acsForced {
		t.Fatal("CSI 11m should set acsForced")
	}

	e.WriteString("\x1b[10m")
	if e.charset.acsForced {
		t.Fatal("CSI 10m should clear acsForced")
	}
}

func TestTranslateForcedMapsByte(t *testing.T) {
	cs := defaultCharsetState
	got := cs.translateForced(0333)
	want := cs.acsChars[4]
	if got != want {
		t.Errorf("translateForced(0333) = %q, want %q", got, want)
	}
}

func TestWithACSCharsIsPerInstance(t *testing.T) {
	custom := make([]rune, len(defaultACSChars))
	copy(custom, defaultACSChars)
	custom[4] = '@'

	e1 := New(WithSize(1, 10), WithACSChars(custom))
	e2 := New(WithSize(1, 10))

	if got := e1.charset.acsChars[4]; got != '@' {
		t.Errorf("e1 custom ACS table entry = %q, want '@'", got)
	}
	if got := e2.charset.acsChars[4]; got == '@' {
		t.Error("WithACSChars on one Emulator must not affect another")
	}
	if defaultACSChars[4] == '@' {
		t.Error("WithACSChars must not mutate the package default table")
	}
}
