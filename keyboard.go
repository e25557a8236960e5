package osterminal

// KeyCode identifies a non-printable key the host keyboard driver decoded.
// Printable keys are delivered as runes through KeyboardMapper.HandleRune
// instead of through this table.
type KeyCode int

const (
	KeyF1 KeyCode = iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
)

// KeyboardEvent is the result of mapping one key event: either a string to
// send to the pty (AnsiString non-empty) or a local action the host should
// perform instead of forwarding anything (spec.md §4.6's Ctrl+Shift bindings).
type KeyboardEvent struct {
	AnsiString string

	Scroll       bool
	ScrollLines  int
	SetScheme    bool
	SchemeIndex  int
	Copy         bool
	Paste        bool
}

// KeyboardMapper turns scancode-level key events into ANSI escape sequences,
// plus CRLF/DEL translation and the Ctrl+Shift+F1..F8 palette-switch /
// scroll / copy / paste bindings.
type KeyboardMapper struct {
	appCursorMode bool
}

// NewKeyboardMapper returns a mapper with application cursor mode off, the
// same as a freshly reset terminal.
func NewKeyboardMapper() *KeyboardMapper {
	return &KeyboardMapper{}
}

// SetAppCursorMode toggles whether arrow keys emit SS3 (\x1bO) or CSI
// (\x1b[) sequences; driven by DECCKM (mode ?1) in Screen.setMode.
func (m *KeyboardMapper) SetAppCursorMode(enabled bool) {
	m.appCursorMode = enabled
}

// HandleRune maps a decoded character: LF becomes CR, backspace (0x08)
// becomes DEL, and DEL (0x7f) becomes the Delete key sequence; CR and every
// other rune pass through unchanged.
func (m *KeyboardMapper) HandleRune(r rune, ctrl, shift bool) KeyboardEvent {
	if ctrl && shift {
		if ev, ok := m.shiftedBinding(r); ok {
			return ev
		}
	}
	switch r {
	case '\r':
		return KeyboardEvent{AnsiString: "\r"}
	case '\n':
		return KeyboardEvent{AnsiString: "\r"}
	case '\b':
		return KeyboardEvent{AnsiString: "\x7f"}
	case 0x7f:
		return KeyboardEvent{AnsiString: "\x1b[3~"}
	default:
		return KeyboardEvent{AnsiString: string(r)}
	}
}

func (m *KeyboardMapper) shiftedBinding(r rune) (KeyboardEvent, bool) {
	switch r {
	case 'c', 'C':
		return KeyboardEvent{Copy: true}, true
	case 'v', 'V':
		return KeyboardEvent{Paste: true}, true
	}
	return KeyboardEvent{}, false
}

// HandleKey maps a non-printable key code to its ANSI sequence, or to a
// Ctrl+Shift+F1..F8 palette switch / Ctrl+Shift+PageUp/Down scroll event.
func (m *KeyboardMapper) HandleKey(key KeyCode, ctrl, shift bool) KeyboardEvent {
	if ctrl && shift {
		switch key {
		case KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8:
			return KeyboardEvent{SetScheme: true, SchemeIndex: int(key - KeyF1)}
		case KeyArrowUp, KeyPageUp:
			return KeyboardEvent{Scroll: true, ScrollLines: 1}
		case KeyArrowDown, KeyPageDown:
			return KeyboardEvent{Scroll: true, ScrollLines: -1}
		}
	}

	seq := m.keyToAnsiString(key)
	return KeyboardEvent{AnsiString: seq}
}

func (m *KeyboardMapper) keyToAnsiString(key KeyCode) string {
	switch key {
	case KeyF1:
		return "\x1bOP"
	case KeyF2:
		return "\x1bOQ"
	case KeyF3:
		return "\x1bOR"
	case KeyF4:
		return "\x1bOS"
	case KeyF5:
		return "\x1b[15~"
	case KeyF6:
		return "\x1b[17~"
	case KeyF7:
		return "\x1b[18~"
	case KeyF8:
		return "\x1b[19~"
	case KeyF9:
		return "\x1b[20~"
	case KeyF10:
		return "\x1b[21~"
	case KeyF11:
		return "\x1b[23~"
	case KeyF12:
		return "\x1b[24~"
	case KeyArrowUp:
		if m.appCursorMode {
			return "\x1bOA"
		}
		return "\x1b[A"
	case KeyArrowDown:
		if m.appCursorMode {
			return "\x1bOB"
		}
		return "\x1b[B"
	case KeyArrowRight:
		if m.appCursorMode {
			return "\x1bOC"
		}
		return "\x1b[C"
	case KeyArrowLeft:
		if m.appCursorMode {
			return "\x1bOD"
		}
		return "\x1b[D"
	case KeyHome:
		return "\x1b[H"
	case KeyEnd:
		return "\x1b[F"
	case KeyPageUp:
		return "\x1b[5~"
	case KeyPageDown:
		return "\x1b[6~"
	case KeyDelete:
		return "\x1b[3~"
	case KeyInsert:
		return "\x1b[2~"
	default:
		return ""
	}
}
