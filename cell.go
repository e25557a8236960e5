package osterminal

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint8

const (
	FlagInverse CellFlags = 1 << iota
	FlagBold
	FlagItalic
	FlagUnderline
	FlagHidden
	FlagCursorBlock
	FlagCursorUnderline
	FlagCursorBeam
)

// ColorKind distinguishes an indexed palette lookup from a literal RGB triple.
type ColorKind uint8

const (
	ColorIndexed ColorKind = iota
	ColorRGB
)

// Special indexed values resolved against the active ColorScheme rather than its palette slots.
const (
	ColorForeground uint16 = 256
	ColorBackground uint16 = 257
)

// Color is either an index into the 256-slot ANSI palette (plus the two
// special foreground/background indices) or a literal RGB triple.
type Color struct {
	Kind  ColorKind
	Index uint16
	R, G, B uint8
}

// Indexed returns a palette-indexed Color.
func Indexed(index uint16) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// RGB returns a literal-RGB Color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// DefaultForeground and DefaultBackground are the two special named colors
// every Cell starts out pointing at; ColorScheme resolves them at paint time.
var (
	DefaultForeground = Indexed(ColorForeground)
	DefaultBackground = Indexed(ColorBackground)
)

// Cell stores the content, colors, and formatting attributes for one grid position.
// Wide characters (2 columns) store Placeholder in the following column.
type Cell struct {
	Content     rune
	Wide        bool
	Placeholder bool
	Flags       CellFlags
	Foreground  Color
	Background  Color
}

// NewCell returns the default cell: a space painted in the theme colors.
func NewCell() Cell {
	return Cell{
		Content:    ' ',
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// WithContent returns a copy of c with Content (and the derived Wide flag) replaced.
func (c Cell) WithContent(content rune, wide bool) Cell {
	c.Content = content
	c.Wide = wide
	c.Placeholder = false
	return c
}

// WithPlaceholder returns a copy of c marked as the trailing half of a wide glyph.
func (c Cell) WithPlaceholder() Cell {
	c.Content = 0
	c.Wide = false
	c.Placeholder = true
	return c
}

// Clear returns a copy of c with content reset to a space and flags cleared,
// but colors preserved, matching the "erase" semantics used by
// EraseChars/ClearLine/ClearScreen/scroll-region fills: an erased cell is a
// space painted in the current colors, not a null-content cell.
func (c Cell) Clear() Cell {
	return Cell{Content: ' ', Foreground: c.Foreground, Background: c.Background}
}

// HasFlag reports whether the given flag is set.
func (c Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the given flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the given flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}
