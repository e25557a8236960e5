package osterminal

import "testing"

func newTestTerminal(cols, rows int) (*Terminal, *capturingTarget) {
	target := newCapturingTarget(cols*8, rows*16)
	term := New(
		WithSize(cols, rows),
		WithHistorySize(50),
		WithDrawTarget(target),
		WithFontManager(fakeFontManager{w: 8, h: 16}),
	)
	return term, target
}

func TestFacadeProcessWritesGlyphs(t *testing.T) {
	term, _ := newTestTerminal(10, 3)
	term.WriteString("hi")
	if got := term.grid.Read(0, 0).Content; got != 'h' {
		t.Fatalf("cell 0 = %q, want 'h'", got)
	}
	row, col := term.CursorPosition()
	if row != 0 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
	}
}

func TestFacadeKeyboardSnapsToLatest(t *testing.T) {
	term, _ := newTestTerminal(10, 2)
	for i := 0; i < 20; i++ {
		term.WriteString("x\n")
	}
	term.ScrollHistory(5)
	if term.grid.AtLatest() {
		t.Fatalf("test setup: expected viewport to be scrolled back before the keyboard event")
	}
	term.HandleRune('x', false, false)
	if !term.grid.AtLatest() {
		t.Fatalf("viewport should snap to latest after any keyboard event")
	}
}

func TestFacadeSetColorSchemeInvalidatesCache(t *testing.T) {
	term, _ := newTestTerminal(5, 2)
	term.WriteString("x")
	before := term.scheme
	term.SetColorScheme(1)
	if term.scheme == before {
		t.Fatalf("SetColorScheme should install a new *ColorScheme")
	}
	if term.schemeIndex != 1 {
		t.Fatalf("schemeIndex = %d, want 1", term.schemeIndex)
	}
	if _, ok := term.cacheStore.entries[colorPairKey{fg: before.Foreground, bg: before.Background}]; ok {
		t.Fatalf("color cache still holds the previous scheme's blend table")
	}
}

func TestFacadeMouseOnAltScreenReplaysArrowKeys(t *testing.T) {
	term, _ := newTestTerminal(5, 2)
	var sent []string
	term.ptyWriter = func(s string) { sent = append(sent, s) }

	term.WriteString("\x1b[?1049h") // enter alt screen
	term.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: 3})

	if len(sent) == 0 {
		t.Fatalf("expected arrow-key replay on alt screen, got nothing")
	}
	for _, s := range sent {
		if s != "\x1b[A" && s != "\x1b[B" {
			t.Fatalf("unexpected replayed sequence %q", s)
		}
	}
}

func TestFacadeMouseOnPrimaryScrollsHistory(t *testing.T) {
	term, _ := newTestTerminal(5, 2)
	for i := 0; i < 10; i++ {
		term.WriteString("x\n")
	}
	before := term.grid.ScrollbackLen()
	// With natural scroll on, a negative wheel delta moves into scrollback.
	term.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: -3})
	if term.grid.AtLatest() {
		t.Fatalf("wheel scroll on the primary screen should move the viewport into scrollback")
	}
	if term.grid.ScrollbackLen() != before {
		t.Fatalf("scrolling should not change scrollback length, only the viewport position")
	}
}

func TestFacadeCrnlMappingSeedsLineFeedNewLineMode(t *testing.T) {
	target := newCapturingTarget(80, 160)
	term := New(
		WithSize(10, 10),
		WithDrawTarget(target),
		WithFontManager(fakeFontManager{w: 8, h: 16}),
		WithCrnlMapping(true),
	)
	if term.screen.modes&ModeLineFeedNewLine == 0 {
		t.Fatalf("WithCrnlMapping(true) did not set ModeLineFeedNewLine")
	}

	term.screen.cursor.Row, term.screen.cursor.Col = 0, 3
	term.WriteString("\n")
	if term.screen.cursor.Row != 1 || term.screen.cursor.Col != 0 {
		t.Fatalf("CRNL cursor after LF = (%d,%d), want (1,0)", term.screen.cursor.Row, term.screen.cursor.Col)
	}

	term.WriteString("\x1bc") // RIS
	if term.screen.modes&ModeLineFeedNewLine == 0 {
		t.Fatalf("RIS should restore the host-configured crnl_mapping default, not clear it")
	}
}

func TestFacadeResizeClampsCursor(t *testing.T) {
	term, _ := newTestTerminal(10, 10)
	term.screen.cursor.Row, term.screen.cursor.Col = 9, 9
	term.Resize(4, 4)
	if term.screen.cursor.Row > 3 || term.screen.cursor.Col > 3 {
		t.Fatalf("cursor not clamped after resize: %+v", term.screen.cursor)
	}
}
