package osterminal

// MouseInputKind discriminates the MouseInput union.
type MouseInputKind int

const (
	MouseInputScroll MouseInputKind = iota
	MouseInputMoved
)

// MouseInput is one raw event from the host's mouse driver.
type MouseInput struct {
	Kind  MouseInputKind
	Lines float64 // MouseInputScroll: signed wheel delta, fractional for high-precision wheels
	X, Y  int      // MouseInputMoved
}

// MouseEvent is the result of mapping a MouseInput: either ScrollLines rows
// of viewport scroll, or no actionable event.
type MouseEvent struct {
	Scroll      bool
	ScrollLines int
}

// MouseMapper accumulates fractional wheel deltas into whole scrollback
// lines. The accumulator resets on a direction reversal so a quick
// flick-back doesn't carry over residual momentum from the opposite
// direction.
type MouseMapper struct {
	scrollSpeed   float64
	naturalScroll bool
	accumulator   float64
}

// NewMouseMapper returns a mapper with unit speed and natural (reversed)
// scroll direction.
func NewMouseMapper() *MouseMapper {
	return &MouseMapper{scrollSpeed: 1.0, naturalScroll: true}
}

// SetScrollSpeed scales wheel deltas before accumulation.
func (m *MouseMapper) SetScrollSpeed(speed float64) { m.scrollSpeed = speed }

// SetNaturalScroll toggles whether a positive wheel delta scrolls the
// viewport toward scrollback (false) or away from it (true).
func (m *MouseMapper) SetNaturalScroll(natural bool) { m.naturalScroll = natural }

// HandleMouse maps one MouseInput to a MouseEvent.
func (m *MouseMapper) HandleMouse(input MouseInput) MouseEvent {
	if input.Kind != MouseInputScroll {
		return MouseEvent{}
	}

	lines := input.Lines
	if lines*m.accumulator < 0 {
		m.accumulator = 0
	}
	m.accumulator += lines * m.scrollSpeed

	if m.accumulator < 0 {
		if -m.accumulator < 1 {
			return MouseEvent{}
		}
	} else if m.accumulator < 1 {
		return MouseEvent{}
	}

	scroll := int(m.accumulator)
	m.accumulator -= float64(scroll)

	if m.naturalScroll {
		scroll = -scroll
	}
	return MouseEvent{Scroll: true, ScrollLines: scroll}
}
