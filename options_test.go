package vt100

import "testing"

func TestWithTerminalNameAffectsXTVERSION(t *testing.T) {
	var got string
	e := New(
		WithSize(5, 10),
		WithTerminalName("myterm(1.2.3)"),
		WithCallback(func(m Message) {
			if m.Tag == Answer {
				got = m.Text
			}
		}),
	)
	e.WriteString("\x1b[>q")

	if want := "\x1bP>|myterm(1.2.3)\x1b\\"; got != want {
		t.Errorf("XTVERSION reply = %q, want %q", got, want)
	}
}

func TestDefaultTerminalNameXTVERSION(t *testing.T) {
	var got string
	e := New(WithSize(5, 10), WithCallback(func(m Message) {
		if m.Tag == Answer {
			got = m.Text
		}
	}))
	e.WriteString("\x1b[>q")

	if want := "\x1bP>|tmt(0.0.0)\x1b\\"; got != want {
		t.Errorf("XTVERSION reply = %q, want %q", got, want)
	}
}

func TestSecondaryDeviceAttributes(t *testing.T) {
	var got string
	e := New(WithSize(5, 10), WithCallback(func(m Message) {
		if m.Tag == Answer {
			got = m.Text
		}
	}))
	e.WriteString("\x1b[>c")

	if want := "\x1b[>0;95c"; got != want {
		t.Errorf("secondary DA reply = %q, want %q", got, want)
	}
}

func TestPrimaryDeviceAttributes(t *testing.T) {
	var got string
	e := New(WithSize(5, 10), WithCallback(func(m Message) {
		if m.Tag == Answer {
			got = m.Text
		}
	}))
	e.WriteString("\x1b[c")

	if want := "\x1b[?6c"; got != want {
		t.Errorf("primary DA reply = %q, want %q", got, want)
	}
}

func TestSetUnicodeDecodeTogglesAndReturnsPrevious(t *testing.T) {
	e := New(WithSize(5, 10))
	if prev := e.SetUnicodeDecode(false); !prev {
		t.Errorf("initial unicode decode = %v, want true", prev)
	}
	if prev := e.SetUnicodeDecode(true); prev {
		t.Errorf("unicode decode after disabling = %v, want false", prev)
	}
}
