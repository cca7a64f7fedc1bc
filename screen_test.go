package vt100

import "testing"

func TestNewScreenBlank(t *testing.T) {
	s := newScreen(5, 10, defaultAttrs)
	if s.Rows() != 5 || s.Cols() != 10 {
		t.Fatalf("dims = %dx%d, want 5x10", s.Rows(), s.Cols())
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 10; c++ {
			if got := s.Cell(r, c); got.Char != ' ' {
				t.Fatalf("cell(%d,%d) = %q, want space", r, c, got.Char)
			}
		}
	}
}

func TestDefaultTabStops(t *testing.T) {
	s := newScreen(5, 20, defaultAttrs)
	for _, c := range []int{0, 8, 16, 19} {
		if !s.IsTabStop(c) {
			t.Errorf("column %d should be a default tab stop", c)
		}
	}
	if s.IsTabStop(5) {
		t.Error("column 5 should not be a default tab stop")
	}
}

func TestScrollUpRotatesAndBlanks(t *testing.T) {
	s := newScreen(5, 4, defaultAttrs)
	for r := 0; r < 5; r++ {
		s.setCell(r, 0, Cell{Char: rune('A' + r), Attrs: defaultAttrs})
	}

	s.scrollUp(0, 4, 2, defaultAttrs)

	// Rows 2..4 (C, D, E) move up to rows 0..2; rows 3,4 become blank.
	want := []rune{'C', 'D', 'E', ' ', ' '}
	for r, w := range want {
		if got := s.Cell(r, 0).Char; got != w {
			t.Errorf("cell(%d,0) = %q, want %q", r, got, w)
		}
	}
}

func TestScrollDownRotatesAndBlanks(t *testing.T) {
	s := newScreen(5, 4, defaultAttrs)
	for r := 0; r < 5; r++ {
		s.setCell(r, 0, Cell{Char: rune('A' + r), Attrs: defaultAttrs})
	}

	s.scrollDown(0, 4, 2, defaultAttrs)

	want := []rune{' ', ' ', 'A', 'B', 'C'}
	for r, w := range want {
		if got := s.Cell(r, 0).Char; got != w {
			t.Errorf("cell(%d,0) = %q, want %q", r, got, w)
		}
	}
}

func TestScrollCapsAtRegionMinusOne(t *testing.T) {
	s := newScreen(5, 4, defaultAttrs)
	for r := 0; r < 5; r++ {
		s.setCell(r, 0, Cell{Char: rune('A' + r), Attrs: defaultAttrs})
	}

	// region [0,4] has size 5; n is capped at bottom-top = 4, not 5: a
	// scroll can never blank an entire region in one call.
	s.scrollUp(0, 4, 100, defaultAttrs)

	if got := s.Cell(0, 0).Char; got != 'E' {
		t.Errorf("cell(0,0) = %q, want E (row 4 survives, shifted to row 0)", got)
	}
	if got := s.Cell(4, 0).Char; got != ' ' {
		t.Errorf("cell(4,0) = %q, want blank", got)
	}
}

func TestResizeGrowAndShrink(t *testing.T) {
	s := newScreen(3, 3, defaultAttrs)
	s.setCell(0, 0, Cell{Char: 'Z', Attrs: defaultAttrs})

	if !s.resize(5, 5, defaultAttrs) {
		t.Fatal("resize grow failed")
	}
	if got := s.Cell(0, 0).Char; got != 'Z' {
		t.Errorf("cell(0,0) after grow = %q, want Z", got)
	}
	if got := s.Cell(4, 4).Char; got != ' ' {
		t.Errorf("new cell(4,4) = %q, want space", got)
	}

	if !s.resize(2, 2, defaultAttrs) {
		t.Fatal("resize shrink failed")
	}
	if s.Rows() != 2 || s.Cols() != 2 {
		t.Fatalf("dims after shrink = %dx%d, want 2x2", s.Rows(), s.Cols())
	}
}

func TestResizeRejectsDegenerateDims(t *testing.T) {
	s := newScreen(10, 10, defaultAttrs)
	if s.resize(1, 10, defaultAttrs) {
		t.Error("resize(1, 10) should fail")
	}
	if s.resize(10, 1, defaultAttrs) {
		t.Error("resize(10, 1) should fail")
	}
}

func TestInsertAndDeleteChars(t *testing.T) {
	s := newScreen(1, 6, defaultAttrs)
	for i, r := range "ABCDEF" {
		s.setCell(0, i, Cell{Char: r, Attrs: defaultAttrs})
	}

	s.insertChars(0, 1, 2, defaultAttrs)
	want := "A  BCD"
	for i, w := range want {
		if got := s.Cell(0, i).Char; got != w {
			t.Errorf("after insert, cell(0,%d) = %q, want %q", i, got, w)
		}
	}

	s.deleteChars(0, 1, 2, defaultAttrs)
	want2 := "ABCD  "
	for i, w := range want2 {
		if got := s.Cell(0, i).Char; got != w {
			t.Errorf("after delete, cell(0,%d) = %q, want %q", i, got, w)
		}
	}
}

func TestDirtyTracking(t *testing.T) {
	s := newScreen(3, 3, defaultAttrs)
	if s.HasDirty() {
		t.Fatal("fresh screen should not be dirty")
	}
	s.setCell(1, 1, Cell{Char: 'x', Attrs: defaultAttrs})
	if !s.HasDirty() {
		t.Fatal("screen should be dirty after a write")
	}
	s.Clean()
	if s.HasDirty() {
		t.Fatal("screen should not be dirty after Clean")
	}
}
