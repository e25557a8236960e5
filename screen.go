package osterminal

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/danielgatis/go-ansicode"
)

// Ensure Screen implements the interpreter's callback surface.
var _ ansicode.Handler = (*Screen)(nil)

// Mode is a bitmask of terminal behavior flags.
type Mode uint32

const (
	ModeShowCursor Mode = 1 << iota
	ModeAppCursor
	ModeAppKeypad
	ModeMouseReportClick
	ModeBracketedPaste
	ModeSGRMouse
	ModeMouseMotion
	ModeLineWrap
	ModeLineFeedNewLine
	ModeOrigin
	ModeInsert
	ModeFocusInOut
	ModeAltScreen
	ModeMouseDrag
	ModeMouseMode
	ModeUTF8Mouse
	ModeAlternateScroll
	ModeVi
	ModeUrgencyHints
)

// defaultModes is SHOW_CURSOR | LINE_WRAP, on by default.
const defaultModes = ModeShowCursor | ModeLineWrap

// Screen is the ansicode.Handler implementation: cursor motion, attributes,
// modes, scroll region, charsets, and OSC/device-status handling, operating
// on a Grid, generalized to the Grid/Cursor model described in grid.go and
// cursor.go.
type Screen struct {
	grid   *Grid
	cursor Cursor
	saved  SavedCursor

	// altCursor is stashed while the alternate screen is active, so
	// switching back restores exactly where the primary cursor left off.
	altCursor Cursor

	template Cell // the "drawing pen": TerminalAttribute mutates this only

	charsets      [4]Charset
	activeCharset CharsetIndex

	scrollTop, scrollBottom int // half-open [top, bottom) within the viewport

	modes Mode

	// resetModes is the mode set RIS (ESC c) restores: defaultModes plus
	// whatever the host configured at construction time (e.g. crnl_mapping),
	// so a host-level default survives a full terminal reset the same way it
	// survives across any other sequence the running program might send.
	resetModes Mode

	tabStops map[int]bool

	clipboard  Clipboard
	ptyWriter  PtyWriter
	bell       BellHandler
	logger     Logger
}

// NewScreen creates a Screen backed by grid, with default modes and a
// scroll region spanning the whole viewport.
func NewScreen(grid *Grid) *Screen {
	s := &Screen{
		grid:          grid,
		cursor:        NewCursor(),
		template:      NewCell(),
		activeCharset: CharsetIndexG0,
		scrollBottom:  grid.Height(),
		modes:         defaultModes,
		resetModes:    defaultModes,
		tabStops:      make(map[int]bool),
		clipboard:     NoopClipboard{},
		logger:        func(string, ...any) {},
	}
	for c := 8; c < grid.Width(); c += 8 {
		s.tabStops[c] = true
	}
	return s
}

func (s *Screen) log(format string, args ...any) {
	if s.logger != nil {
		s.logger(format, args...)
	}
}

func (s *Screen) writeResponse(str string) {
	if s.ptyWriter != nil {
		s.ptyWriter(str)
	}
}

// cursorHandler brackets interpreter dispatch: clearing the cursor overlay
// flag before processing and re-applying it after, so the flush diff
// naturally repaints the cursor.
func (s *Screen) cursorHandler(enable bool) {
	row, col := s.cursor.Row, s.cursor.Col
	if row < 0 || row >= s.grid.Height() || col < 0 || col >= s.grid.Width() {
		return
	}
	cell := s.grid.Read(row, col)

	var flag CellFlags
	switch s.cursor.Shape {
	case CursorBlock, CursorHollowBlock:
		flag = FlagCursorBlock
	case CursorUnderline:
		flag = FlagCursorUnderline
	case CursorBeam:
		flag = FlagCursorBeam
	default:
		return
	}

	if enable && s.modes&ModeShowCursor != 0 {
		cell.SetFlag(flag)
	} else {
		cell.ClearFlag(FlagCursorBlock | FlagCursorUnderline | FlagCursorBeam)
	}
	s.grid.Write(row, col, cell)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *Screen) effectiveRow(row int) int {
	if s.modes&ModeOrigin != 0 {
		return row + s.scrollTop
	}
	return row
}

// --- motion ---

func (s *Screen) Input(r rune) {
	r = mapCharset(s.charsets[s.activeCharset], r)
	width := runeWidth(r)
	if width == 0 {
		return
	}

	if s.cursor.Col+width > s.grid.Width() {
		if s.modes&ModeLineWrap == 0 {
			return
		}
		s.LineFeed()
		s.CarriageReturn()
	}

	wide := isWideRune(r)
	cell := s.template.WithContent(r, wide)
	s.grid.Write(s.cursor.Row, s.cursor.Col, cell)
	s.cursor.Col++

	if wide && s.cursor.Col < s.grid.Width() {
		s.grid.Write(s.cursor.Row, s.cursor.Col, s.template.WithPlaceholder())
		s.cursor.Col++
	}
}

func (s *Screen) Goto(row, col int) {
	row = s.effectiveRow(row)
	s.cursor.Row = clampInt(row, 0, s.grid.Height()-1)
	s.cursor.Col = clampInt(col, 0, s.grid.Width()-1)
}

func (s *Screen) GotoLine(row int) {
	s.Goto(s.effectiveRow(row), s.cursor.Col)
}

func (s *Screen) GotoCol(col int) {
	s.cursor.Col = clampInt(col, 0, s.grid.Width()-1)
}

func (s *Screen) MoveUp(n int)   { s.cursor.Row = clampInt(s.cursor.Row-n, 0, s.grid.Height()-1) }
func (s *Screen) MoveDown(n int) { s.cursor.Row = clampInt(s.cursor.Row+n, 0, s.grid.Height()-1) }
func (s *Screen) MoveForward(n int) {
	s.cursor.Col = clampInt(s.cursor.Col+n, 0, s.grid.Width()-1)
}
func (s *Screen) MoveBackward(n int) { s.cursor.Col = clampInt(s.cursor.Col-n, 0, s.grid.Width()-1) }

func (s *Screen) MoveUpCr(n int) {
	s.MoveUp(n)
	s.cursor.Col = 0
}

func (s *Screen) MoveDownCr(n int) {
	s.MoveDown(n)
	s.cursor.Col = 0
}

func (s *Screen) MoveForwardTabs(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Col = s.nextTabStop(s.cursor.Col)
	}
}

func (s *Screen) MoveBackwardTabs(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Col = s.prevTabStop(s.cursor.Col)
	}
}

func (s *Screen) nextTabStop(col int) int {
	for c := col + 1; c < s.grid.Width(); c++ {
		if s.tabStops[c] {
			return c
		}
	}
	return s.grid.Width() - 1
}

func (s *Screen) prevTabStop(col int) int {
	for c := col - 1; c >= 0; c-- {
		if s.tabStops[c] {
			return c
		}
	}
	return 0
}

func (s *Screen) HorizontalTabSet() { s.tabStops[s.cursor.Col] = true }

func (s *Screen) Tab(n int) { s.MoveForwardTabs(n) }

func (s *Screen) Backspace() {
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
}

func (s *Screen) CarriageReturn() { s.cursor.Col = 0 }

// LineFeed advances the cursor a row, scrolling the active region by one
// line when the cursor is already at its bottom edge.
func (s *Screen) LineFeed() {
	if s.modes&ModeLineFeedNewLine != 0 {
		s.cursor.Col = 0
	}
	if s.cursor.Row == s.scrollBottom-1 {
		s.grid.ScrollRegion(1, s.template.Clear(), s.scrollTop, s.scrollBottom)
	} else if s.cursor.Row < s.grid.Height()-1 {
		s.cursor.Row++
	}
}

func (s *Screen) ReverseIndex() {
	if s.cursor.Row == s.scrollTop {
		s.grid.ScrollRegion(-1, s.template.Clear(), s.scrollTop, s.scrollBottom)
	} else if s.cursor.Row > 0 {
		s.cursor.Row--
	}
}

// --- editing ---

func (s *Screen) InsertBlank(n int) {
	row := s.cursor.Row
	width := s.grid.Width()
	clear := s.template.Clear()
	for col := width - 1; col >= s.cursor.Col+n; col-- {
		s.grid.Write(row, col, s.grid.Read(row, col-n))
	}
	for col := s.cursor.Col; col < s.cursor.Col+n && col < width; col++ {
		s.grid.Write(row, col, clear)
	}
}

func (s *Screen) InsertBlankLines(n int) {
	if s.cursor.Row < s.scrollTop || s.cursor.Row >= s.scrollBottom {
		return
	}
	s.grid.ScrollRegion(-n, s.template.Clear(), s.cursor.Row, s.scrollBottom)
}

func (s *Screen) DeleteLines(n int) {
	if s.cursor.Row < s.scrollTop || s.cursor.Row >= s.scrollBottom {
		return
	}
	s.grid.ScrollRegion(n, s.template.Clear(), s.cursor.Row, s.scrollBottom)
}

func (s *Screen) EraseChars(n int) {
	clear := s.template.Clear()
	end := clampInt(s.cursor.Col+n, 0, s.grid.Width())
	for col := s.cursor.Col; col < end; col++ {
		s.grid.Write(s.cursor.Row, col, clear)
	}
}

func (s *Screen) DeleteChars(n int) {
	row, width := s.cursor.Row, s.grid.Width()
	if s.cursor.Col >= width {
		return
	}
	n = clampInt(n, 0, width-s.cursor.Col-1)
	clear := s.template.Clear()
	for col := s.cursor.Col + n; col < width; col++ {
		s.grid.Write(row, col-n, s.grid.Read(row, col))
	}
	for col := width - n; col < width; col++ {
		s.grid.Write(row, col, clear)
	}
}

func (s *Screen) ClearLine(mode ansicode.LineClearMode) {
	clear := s.template.Clear()
	var start, end int
	switch mode {
	case ansicode.LineClearModeRight:
		start, end = s.cursor.Col, s.grid.Width()
	case ansicode.LineClearModeLeft:
		start, end = 0, s.cursor.Col+1
	case ansicode.LineClearModeAll:
		start, end = 0, s.grid.Width()
	default:
		return
	}
	for col := start; col < end; col++ {
		s.grid.Write(s.cursor.Row, col, clear)
	}
}

func (s *Screen) ClearScreen(mode ansicode.ClearMode) {
	clear := s.template.Clear()
	switch mode {
	case ansicode.ClearModeBelow:
		for col := s.cursor.Col; col < s.grid.Width(); col++ {
			s.grid.Write(s.cursor.Row, col, clear)
		}
		for row := s.cursor.Row + 1; row < s.grid.Height(); row++ {
			fillRow(s.grid.RowMut(row), clear)
		}
	case ansicode.ClearModeAbove:
		for row := 0; row < s.cursor.Row; row++ {
			fillRow(s.grid.RowMut(row), clear)
		}
		for col := 0; col <= s.cursor.Col; col++ {
			s.grid.Write(s.cursor.Row, col, clear)
		}
	case ansicode.ClearModeAll:
		s.grid.Clear(clear)
	case ansicode.ClearModeSaved:
		s.grid.ClearHistory()
	}
}

func (s *Screen) ClearTabs(mode ansicode.TabulationClearMode) {
	switch mode {
	case ansicode.TabulationClearModeCurrent:
		delete(s.tabStops, s.cursor.Col)
	case ansicode.TabulationClearModeAll:
		s.tabStops = make(map[int]bool)
	}
}

func (s *Screen) Decaln() {
	fill := Cell{Content: 'E', Foreground: s.template.Foreground, Background: s.template.Background}
	s.grid.Clear(fill)
}

// --- cursor save/restore ---

func (s *Screen) SaveCursorPosition() {
	s.saved = SavedCursor{
		Row: s.cursor.Row, Col: s.cursor.Col,
		Attrs:        s.template,
		OriginMode:   s.modes&ModeOrigin != 0,
		CharsetIndex: s.activeCharset,
		Charsets:     s.charsets,
	}
}

func (s *Screen) RestoreCursorPosition() {
	s.cursor.Row, s.cursor.Col = s.saved.Row, s.saved.Col
	s.template = s.saved.Attrs
	if s.saved.OriginMode {
		s.modes |= ModeOrigin
	} else {
		s.modes &^= ModeOrigin
	}
	s.activeCharset = s.saved.CharsetIndex
	s.charsets = s.saved.Charsets
}

func (s *Screen) SetCursorStyle(style ansicode.CursorStyle) {
	switch style {
	case ansicode.CursorStyleBlock:
		s.cursor.Shape = CursorBlock
	case ansicode.CursorStyleUnderline:
		s.cursor.Shape = CursorUnderline
	case ansicode.CursorStyleBeam:
		s.cursor.Shape = CursorBeam
	default:
		s.cursor.Shape = CursorBlock
	}
}

// --- charsets ---

func (s *Screen) SetActiveCharset(n int) {
	if n >= 0 && n < 4 {
		s.activeCharset = CharsetIndex(n)
	}
}

func (s *Screen) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {
	idx := CharsetIndex(index)
	if idx < CharsetIndexG0 || idx > CharsetIndexG3 {
		return
	}
	if charset == ansicode.CharsetSpecialCharacterAndLineDrawing {
		s.charsets[idx] = CharsetLineDrawing
	} else {
		s.charsets[idx] = CharsetASCII
	}
}

// --- attributes ---

func (s *Screen) resolveColor(attr ansicode.TerminalCharAttribute, fg bool) Color {
	if attr.RGBColor != nil {
		return RGB(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B)
	}
	if attr.IndexedColor != nil {
		return Indexed(uint16(attr.IndexedColor.Index))
	}
	if attr.NamedColor != nil {
		return Indexed(uint16(*attr.NamedColor))
	}
	if fg {
		return DefaultForeground
	}
	return DefaultBackground
}

func (s *Screen) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		s.template = NewCell()
	case ansicode.CharAttributeBold:
		s.template.SetFlag(FlagBold)
	case ansicode.CharAttributeItalic:
		s.template.SetFlag(FlagItalic)
	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		// The richer underline styles the decoder reports collapse onto the
		// single UNDERLINE flag this cell model carries.
		s.template.SetFlag(FlagUnderline)
	case ansicode.CharAttributeReverse:
		s.template.SetFlag(FlagInverse)
	case ansicode.CharAttributeHidden:
		s.template.SetFlag(FlagHidden)
	case ansicode.CharAttributeCancelBold, ansicode.CharAttributeCancelBoldDim:
		s.template.ClearFlag(FlagBold)
	case ansicode.CharAttributeCancelItalic:
		s.template.ClearFlag(FlagItalic)
	case ansicode.CharAttributeCancelUnderline:
		s.template.ClearFlag(FlagUnderline)
	case ansicode.CharAttributeCancelReverse:
		s.template.ClearFlag(FlagInverse)
	case ansicode.CharAttributeCancelHidden:
		s.template.ClearFlag(FlagHidden)
	case ansicode.CharAttributeForeground:
		s.template.Foreground = s.resolveColor(attr, true)
	case ansicode.CharAttributeBackground:
		s.template.Background = s.resolveColor(attr, false)
	default:
		s.log("osterminal: unhandled char attribute %v", attr.Attr)
	}
}

// --- modes ---

func (s *Screen) setMode(mode ansicode.TerminalMode, set bool) {
	var m Mode
	switch mode {
	case ansicode.TerminalModeCursorKeys:
		m = ModeAppCursor
	case ansicode.TerminalModeInsert:
		m = ModeInsert
	case ansicode.TerminalModeOrigin:
		m = ModeOrigin
		if set {
			s.cursor.Row, s.cursor.Col = s.scrollTop, 0
		}
	case ansicode.TerminalModeLineWrap:
		m = ModeLineWrap
	case ansicode.TerminalModeLineFeedNewLine:
		m = ModeLineFeedNewLine
	case ansicode.TerminalModeShowCursor:
		m = ModeShowCursor
	case ansicode.TerminalModeReportMouseClicks:
		m = ModeMouseReportClick
	case ansicode.TerminalModeReportCellMouseMotion:
		m = ModeMouseMode
	case ansicode.TerminalModeReportAllMouseMotion:
		m = ModeMouseMotion
	case ansicode.TerminalModeReportFocusInOut:
		m = ModeFocusInOut
	case ansicode.TerminalModeUTF8Mouse:
		m = ModeUTF8Mouse
	case ansicode.TerminalModeSGRMouse:
		m = ModeSGRMouse
	case ansicode.TerminalModeAlternateScroll:
		m = ModeAlternateScroll
	case ansicode.TerminalModeUrgencyHints:
		m = ModeUrgencyHints
	case ansicode.TerminalModeSwapScreenAndSetRestoreCursor:
		m = ModeAltScreen
		if set {
			s.SaveCursorPosition()
			s.altCursor = s.cursor
			s.grid.SwapAltScreen(s.template.Clear())
			s.cursor = NewCursor()
			s.template = NewCell()
		} else {
			s.grid.SwapAltScreen(s.template.Clear())
			s.cursor = s.altCursor
			s.RestoreCursorPosition()
		}
	case ansicode.TerminalModeBracketedPaste:
		m = ModeBracketedPaste
	default:
		s.log("osterminal: unhandled terminal mode %v", mode)
		return
	}
	if set {
		s.modes |= m
	} else {
		s.modes &^= m
	}
}

func (s *Screen) SetMode(mode ansicode.TerminalMode)   { s.setMode(mode, true) }
func (s *Screen) UnsetMode(mode ansicode.TerminalMode) { s.setMode(mode, false) }

func (s *Screen) SetKeypadApplicationMode()   { s.modes |= ModeAppKeypad }
func (s *Screen) UnsetKeypadApplicationMode() { s.modes &^= ModeAppKeypad }

// --- scroll region ---

func (s *Screen) SetScrollingRegion(top, bottom int) {
	top--
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > s.grid.Height() {
		bottom = s.grid.Height()
	}
	if top >= bottom {
		return
	}
	s.scrollTop, s.scrollBottom = top, bottom
	if s.modes&ModeOrigin != 0 {
		s.cursor.Row = s.scrollTop
	} else {
		s.cursor.Row = 0
	}
	s.cursor.Col = 0
}

func (s *Screen) ScrollUp(n int) {
	s.grid.ScrollRegion(n, s.template.Clear(), s.scrollTop, s.scrollBottom)
}

func (s *Screen) ScrollDown(n int) {
	s.grid.ScrollRegion(-n, s.template.Clear(), s.scrollTop, s.scrollBottom)
}

// --- OSC / title / clipboard / color ---

func (s *Screen) SetTitle(title string)                        {}
func (s *Screen) PushTitle()                                   {}
func (s *Screen) PopTitle()                                     {}
func (s *Screen) SetColor(index int, c color.Color)             { s.log("osterminal: SetColor(%d) unhandled", index) }
func (s *Screen) ResetColor(i int)                              {}
func (s *Screen) SetDynamicColor(prefix string, index int, terminator string) {}
func (s *Screen) SetHyperlink(link *ansicode.Hyperlink)         {}

func (s *Screen) ClipboardStore(clipboard byte, data []byte) {
	decoded, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil || !utf8.Valid(decoded) {
		// Non-UTF-8/non-base64 payloads are silently dropped.
		return
	}
	s.clipboard.SetText(string(decoded))
}

func (s *Screen) ClipboardLoad(clipboard byte, terminator string) {
	text, ok := s.clipboard.GetText()
	if !ok {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	s.writeResponse(fmt.Sprintf("\x1b]52;%c;%s%s", clipboard, encoded, terminator))
}

// --- device status / identification ---

func (s *Screen) IdentifyTerminal(b byte) {
	if b == '>' {
		s.writeResponse("\x1b[>0;1;1c")
		return
	}
	s.writeResponse("\x1b[?6c")
}

func (s *Screen) DeviceStatus(n int) {
	switch n {
	case 5:
		s.writeResponse("\x1b[0n")
	case 6:
		s.writeResponse(fmt.Sprintf("\x1b[%d;%dR", s.cursor.Row+1, s.cursor.Col+1))
	}
}

func (s *Screen) Bell() {
	if s.bell != nil {
		s.bell()
	}
}

// --- keyboard protocol / misc, ignored ---

func (s *Screen) PushKeyboardMode(mode ansicode.KeyboardMode)                           {}
func (s *Screen) PopKeyboardMode(n int)                                                 {}
func (s *Screen) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {}
func (s *Screen) ReportKeyboardMode() {
	s.writeResponse("\x1b[?0u")
}
func (s *Screen) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (s *Screen) ReportModifyOtherKeys()                             {}

func (s *Screen) Substitute() {}

func (s *Screen) ResetState() {
	s.cursor = NewCursor()
	s.template = NewCell()
	s.charsets = [4]Charset{}
	s.activeCharset = CharsetIndexG0
	s.scrollTop, s.scrollBottom = 0, s.grid.Height()
	s.modes = s.resetModes
}

func (s *Screen) TextAreaSizeChars()  {}
func (s *Screen) TextAreaSizePixels() {}
func (s *Screen) CellSizePixels()     {}

func (s *Screen) ApplicationCommandReceived(data []byte) { s.log("osterminal: unhandled APC payload (%d bytes)", len(data)) }
func (s *Screen) PrivacyMessageReceived(data []byte)     { s.log("osterminal: unhandled PM payload (%d bytes)", len(data)) }
func (s *Screen) StartOfStringReceived(data []byte)      { s.log("osterminal: unhandled SOS payload (%d bytes)", len(data)) }

// SixelReceived handles inline Sixel graphics data. Image protocols are out
// of this core's scope; the method exists solely to satisfy ansicode.Handler.
func (s *Screen) SixelReceived(params [][]uint16, data []byte) {
	s.log("osterminal: unhandled sixel payload (%d bytes)", len(data))
}

// SetWorkingDirectory receives OSC 7's reported cwd and discards it. The core
// has no use for it beyond satisfying ansicode.Handler; hosts that need it
// should track it themselves from the raw byte stream.
func (s *Screen) SetWorkingDirectory(uri string) {}
