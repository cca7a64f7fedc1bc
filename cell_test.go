package vt100

import "testing"

func TestBlankCellCarriesAttrs(t *testing.T) {
	a := Attrs{Bg: ColorBlue}
	c := blankCell(a)
	if c.Char != ' ' {
		t.Errorf("blankCell.Char = %q, want space", c.Char)
	}
	if c.Attrs != a {
		t.Errorf("blankCell.Attrs = %+v, want %+v", c.Attrs, a)
	}
}

func TestLineResizePreservesPrefix(t *testing.T) {
	l := newLine(4, defaultAttrs)
	for i, r := range "ABCD" {
		l.cells[i] = Cell{Char: r, Attrs: defaultAttrs}
	}

	l.resize(6, defaultAttrs)
	if l.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", l.Len())
	}
	for i, want := range "ABCD  " {
		if got := l.Cell(i).Char; got != want {
			t.Errorf("cell(%d) = %q, want %q", i, got, want)
		}
	}

	l.resize(2, defaultAttrs)
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Cell(0).Char != 'A' || l.Cell(1).Char != 'B' {
		t.Errorf("shrink dropped prefix: %q %q", l.Cell(0).Char, l.Cell(1).Char)
	}
}

func TestLineClearRangeMarksDirty(t *testing.T) {
	l := newLine(4, defaultAttrs)
	l.dirty = false
	l.clearRange(1, 3, Attrs{Fg: ColorGreen})
	if !l.Dirty() {
		t.Fatal("clearRange should mark the line dirty")
	}
	if got := l.Cell(1).Attrs.Fg; got != ColorGreen {
		t.Errorf("cleared cell attrs.Fg = %v, want green", got)
	}
	if l.Cell(0).Attrs.Fg == ColorGreen {
		t.Error("clearRange should not touch cells outside its range")
	}
}
