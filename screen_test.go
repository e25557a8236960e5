package osterminal

import "testing"

func newTestScreen(w, h int) (*Grid, *Screen, *Interpreter) {
	g := NewGrid(w, h, 100, nil)
	s := NewScreen(g)
	in := NewInterpreter(s)
	return g, s, in
}

func feed(in *Interpreter, s string) {
	in.Write([]byte(s))
}

func TestScenarioPlainTextWithWrap(t *testing.T) {
	g, s, in := newTestScreen(3, 3)
	feed(in, "ABCDE")

	want := [][]rune{{'A', 'B', 'C'}, {'D', 'E', ' '}}
	for r, row := range want {
		for c, ch := range row {
			if got := g.Read(r, c).Content; got != ch {
				t.Fatalf("cell (%d,%d) = %q, want %q", r, c, got, ch)
			}
		}
	}
	if s.cursor.Row != 1 || s.cursor.Col != 2 {
		t.Fatalf("cursor = (%d,%d), want (1,2)", s.cursor.Row, s.cursor.Col)
	}
}

func TestScenarioCRLFvsLF(t *testing.T) {
	_, s, in := newTestScreen(4, 4)
	s.cursor.Row, s.cursor.Col = 0, 2
	feed(in, "\n")
	if s.cursor.Row != 1 || s.cursor.Col != 2 {
		t.Fatalf("LF-only: cursor = (%d,%d), want (1,2)", s.cursor.Row, s.cursor.Col)
	}

	_, s2, in2 := newTestScreen(4, 4)
	s2.modes |= ModeLineFeedNewLine
	s2.cursor.Row, s2.cursor.Col = 0, 2
	feed(in2, "\n")
	if s2.cursor.Row != 1 || s2.cursor.Col != 0 {
		t.Fatalf("CRNL mode: cursor = (%d,%d), want (1,0)", s2.cursor.Row, s2.cursor.Col)
	}
}

func TestScenarioSGRAttributes(t *testing.T) {
	g, _, in := newTestScreen(4, 1)
	feed(in, "\x1b[1;31mX\x1b[0mY")

	x := g.Read(0, 0)
	if x.Content != 'X' || !x.HasFlag(FlagBold) || x.Foreground != Indexed(1) {
		t.Fatalf("cell 0 = %+v, want bold red X", x)
	}
	y := g.Read(0, 1)
	if y.Content != 'Y' || y.Flags != 0 || y.Foreground != DefaultForeground {
		t.Fatalf("cell 1 = %+v, want plain default Y", y)
	}
}

func TestScenarioScrollRegion(t *testing.T) {
	g, s, in := newTestScreen(3, 5)
	for r := 0; r < 5; r++ {
		fillRow(g.RowMut(r), NewCell().WithContent(rune('0'+r), false))
	}
	feed(in, "\x1b[2;4r")
	if s.scrollTop != 1 || s.scrollBottom != 4 {
		t.Fatalf("scroll region = [%d,%d), want [1,4)", s.scrollTop, s.scrollBottom)
	}
	s.cursor.Row = 3
	feed(in, "\n")

	if got := g.Read(0, 0).Content; got != '0' {
		t.Fatalf("row 0 should be untouched, got %q", got)
	}
	if got := g.Read(4, 0).Content; got != '4' {
		t.Fatalf("row 4 should be untouched, got %q", got)
	}
	if got := g.Read(1, 0).Content; got != '2' {
		t.Fatalf("row 1 after in-region scroll = %q, want '2'", got)
	}
}

func TestScenarioAltScreenRoundTrip(t *testing.T) {
	g, s, in := newTestScreen(5, 1)
	feed(in, "hello")
	origRow, origCol := s.cursor.Row, s.cursor.Col
	origLen := g.ScrollbackLen()

	feed(in, "\x1b[?1049h")
	feed(in, "alt")
	feed(in, "\x1b[?1049l")

	for c, ch := range []rune("hello") {
		if got := g.Read(0, c).Content; got != ch {
			t.Fatalf("after alt round-trip cell %d = %q, want %q", c, got, ch)
		}
	}
	if s.cursor.Row != origRow || s.cursor.Col != origCol {
		t.Fatalf("cursor after alt round-trip = (%d,%d), want (%d,%d)", s.cursor.Row, s.cursor.Col, origRow, origCol)
	}
	if g.ScrollbackLen() != origLen {
		t.Fatalf("scrollback length changed across alt-screen round trip: %d -> %d", origLen, g.ScrollbackLen())
	}
	if s.modes&ModeAltScreen != 0 {
		t.Fatalf("ALT_SCREEN mode should be cleared after exiting")
	}
}

func TestScenarioDeviceStatus(t *testing.T) {
	_, s, in := newTestScreen(10, 10)
	var replies []string
	s.ptyWriter = func(str string) { replies = append(replies, str) }
	s.cursor.Row, s.cursor.Col = 2, 7

	feed(in, "\x1b[6n")
	if len(replies) != 1 || replies[0] != "\x1b[3;8R" {
		t.Fatalf("device status replies = %v, want exactly [\"\\x1b[3;8R\"]", replies)
	}
}

func TestCursorSaveRestoreIsIdentity(t *testing.T) {
	_, s, in := newTestScreen(10, 10)
	s.cursor.Row, s.cursor.Col = 4, 5
	before := s.cursor
	feed(in, "\x1b7\x1b8")
	if s.cursor != before {
		t.Fatalf("cursor after save+restore = %+v, want %+v", s.cursor, before)
	}
}

func TestResetThenSingleAttributeMatchesFreshCellWithOnlyThatAttribute(t *testing.T) {
	g, _, in := newTestScreen(1, 1)
	feed(in, "\x1b[0;1mX")
	got := g.Read(0, 0)

	want := NewCell().WithContent('X', false)
	want.SetFlag(FlagBold)
	if got != want {
		t.Fatalf("reset+bold+paint = %+v, want %+v", got, want)
	}
}
