package osterminal

// CursorShape selects how the cursor overlay is rendered onto the underlying cell.
type CursorShape int

const (
	CursorBlock CursorShape = iota
	CursorUnderline
	CursorBeam
	CursorHollowBlock
	CursorHidden
)

// Cursor tracks position and rendering shape (0-based coordinates, relative
// to the active screen's viewport).
type Cursor struct {
	Row, Col int
	Shape    CursorShape
}

// NewCursor returns a cursor at the origin with the default beam shape.
func NewCursor() Cursor {
	return Cursor{Shape: CursorBeam}
}

// SavedCursor stores cursor position, the drawing-pen attribute template,
// and charset state for DECSC/DECRC and alternate-screen restoration.
type SavedCursor struct {
	Row, Col     int
	Attrs        Cell
	OriginMode   bool
	CharsetIndex CharsetIndex
	Charsets     [4]Charset
}

// Charset selects a character-set mapping.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// CharsetIndex selects one of four charset slots (G0-G3).
type CharsetIndex int

const (
	CharsetIndexG0 CharsetIndex = iota
	CharsetIndexG1
	CharsetIndexG2
	CharsetIndexG3
)

// mapCharset applies the DEC special-graphics line-drawing remap (used when
// the active charset slot holds CharsetLineDrawing) to an input rune. This
// runs before width measurement, so the remapped glyph is what gets measured.
func mapCharset(set Charset, r rune) rune {
	if set != CharsetLineDrawing {
		return r
	}
	if mapped, ok := lineDrawingMap[r]; ok {
		return mapped
	}
	return r
}

var lineDrawingMap = map[rune]rune{
	'`': '◆', 'a': '▒', 'b': '␉', 'c': '␌', 'd': '␍', 'e': '␊',
	'f': '°', 'g': '±', 'h': '␤', 'i': '␋', 'j': '┘', 'k': '┐',
	'l': '┌', 'm': '└', 'n': '┼', 'o': '⎺', 'p': '⎻', 'q': '─',
	'r': '⎼', 's': '⎽', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬',
	'x': '│', 'y': '≤', 'z': '≥', '{': 'π', '|': '≠', '}': '£', '~': '·',
}
