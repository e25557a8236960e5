package osterminal

import "testing"

func TestMouseAccumulatesSubLineDeltas(t *testing.T) {
	m := NewMouseMapper()
	m.SetNaturalScroll(false)
	if ev := m.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: 0.4}); ev.Scroll {
		t.Fatalf("0.4 lines should not yet trigger a scroll event: %+v", ev)
	}
	ev := m.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: 0.7})
	if !ev.Scroll || ev.ScrollLines != 1 {
		t.Fatalf("accumulated 1.1 lines = %+v, want one scroll line", ev)
	}
}

func TestMouseDirectionReversalResetsAccumulator(t *testing.T) {
	m := NewMouseMapper()
	m.SetNaturalScroll(false)
	m.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: 0.9})
	ev := m.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: -0.9})
	if ev.Scroll {
		t.Fatalf("reversal should reset the accumulator, leaving only -0.9 lines pending: %+v", ev)
	}
	// Without the reset the pending total would be 0 here and -0.2 after this.
	ev = m.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: -0.2})
	if !ev.Scroll || ev.ScrollLines != -1 {
		t.Fatalf("accumulated -1.1 lines after reversal = %+v, want -1 scroll line", ev)
	}
}

func TestMouseNaturalScrollInvertsSign(t *testing.T) {
	m := NewMouseMapper()
	m.SetNaturalScroll(true)
	ev := m.HandleMouse(MouseInput{Kind: MouseInputScroll, Lines: 2})
	if !ev.Scroll || ev.ScrollLines != -2 {
		t.Fatalf("natural scroll of +2 lines = %+v, want -2", ev)
	}
}

func TestMouseNonScrollInputIsNoop(t *testing.T) {
	m := NewMouseMapper()
	if ev := m.HandleMouse(MouseInput{Kind: MouseInputMoved, X: 5, Y: 5}); ev.Scroll {
		t.Fatalf("move event should never scroll: %+v", ev)
	}
}
