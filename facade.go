package osterminal

// Terminal is the embeddable façade: it owns a Grid, a Screen (the
// ansicode.Handler implementation), an Interpreter, a Graphic, and the
// keyboard/mouse mappers, and wires them together behind a small surface of
// Process/Flush/HandleKey/HandleRune/HandleMouse calls.
//
// This façade carries no sync.RWMutex: it neither provides nor requires a
// lock. A caller driving this type from more than one goroutine is
// responsible for its own synchronization.
type Terminal struct {
	cols, rows         int
	historySize        int
	drawTarget         DrawTarget
	fontManager        FontManager
	palette            Palette
	colorCacheCapacity int
	ptyWriter          PtyWriter
	bellHandler        BellHandler
	logger             Logger
	clipboard          Clipboard
	scrollbackProvider ScrollbackProvider
	scrollSpeed        float64
	naturalScroll      bool
	autoFlush          bool
	crnlMapping        bool

	grid       *Grid
	screen     *Screen
	interp     *Interpreter
	graphic    *Graphic
	cacheStore *ColorCacheStore
	scheme     *ColorScheme
	keyboard   *KeyboardMapper
	mouse      *MouseMapper

	schemeIndex int
}

// New builds a Terminal from the given options. WithDrawTarget and
// WithFontManager should normally both be supplied; without a draw target
// Flush is a no-op, and without a font manager every glyph rasterizes as a
// zero-size Raster.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		cols: 80, rows: 24,
		historySize:        200,
		palette:            DefaultPalette,
		colorCacheCapacity: 64,
		scrollSpeed:        1.0,
		naturalScroll:      true,
		autoFlush:          true,
		logger:             func(string, ...any) {},
		clipboard:          NoopClipboard{},
		scrollbackProvider: NoopScrollback{},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.grid = NewGrid(t.cols, t.rows, t.historySize, t.scrollbackProvider)
	t.scheme = NewColorScheme(t.palette)
	t.cacheStore = NewColorCacheStore(t.colorCacheCapacity)
	t.graphic = NewGraphic(t.drawTarget, t.fontManager, t.cacheStore, t.scheme)

	t.screen = NewScreen(t.grid)
	t.screen.clipboard = t.clipboard
	t.screen.ptyWriter = t.ptyWriter
	t.screen.bell = t.bellHandler
	t.screen.logger = t.logger
	if t.crnlMapping {
		t.screen.modes |= ModeLineFeedNewLine
		t.screen.resetModes |= ModeLineFeedNewLine
	}

	t.interp = NewInterpreter(t.screen)
	t.keyboard = NewKeyboardMapper()
	t.mouse = NewMouseMapper()
	t.mouse.SetScrollSpeed(t.scrollSpeed)
	t.mouse.SetNaturalScroll(t.naturalScroll)

	if t.graphic.target != nil {
		t.grid.FullFlush(t.graphic)
	}

	return t
}

// Cols and Rows report the current viewport dimensions.
func (t *Terminal) Cols() int { return t.grid.Width() }
func (t *Terminal) Rows() int { return t.grid.Height() }

// Process decodes data, dispatching every control sequence and printable
// rune to the Screen. The cursor overlay is cleared before processing and
// reapplied after, so an in-progress write never leaves a stray cursor glyph
// baked into scrollback. If auto-flush is enabled the changed cells are
// repainted before returning.
func (t *Terminal) Process(data []byte) (int, error) {
	t.screen.cursorHandler(false)
	n, err := t.interp.Write(data)
	t.screen.cursorHandler(true)
	if t.autoFlush {
		t.Flush()
	}
	return n, err
}

// WriteString is a convenience wrapper around Process.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.Process([]byte(s))
}

// Flush repaints every cell that changed since the last Flush.
func (t *Terminal) Flush() {
	if t.graphic.target == nil {
		return
	}
	t.grid.Flush(t.graphic)
}

// Resize changes the viewport dimensions, discarding scrollback (the Grid
// and Screen scroll region are both rebuilt at the new size).
func (t *Terminal) Resize(cols, rows int) {
	t.grid.Resize(cols, rows, NewCell())
	t.screen.scrollTop, t.screen.scrollBottom = 0, rows
	t.screen.cursor.Row = clampInt(t.screen.cursor.Row, 0, rows-1)
	t.screen.cursor.Col = clampInt(t.screen.cursor.Col, 0, cols-1)
	t.grid.FullFlush(t.graphic)
}

// SetColorScheme switches to one of the built-in palettes (index 0-7),
// invalidating the color cache and repainting every cell. Driven by
// Ctrl+Shift+F1..F8 through HandleKey, or callable directly.
func (t *Terminal) SetColorScheme(index int) {
	if index < 0 || index >= len(BuiltinPalettes) {
		return
	}
	t.schemeIndex = index
	t.scheme = NewColorScheme(BuiltinPalettes[index])
	t.graphic.SetScheme(t.scheme)
	t.grid.FullFlush(t.graphic)
}

// ScrollHistory moves the viewport by delta rows (positive moves into
// scrollback, negative moves toward the latest content), then repaints.
func (t *Terminal) ScrollHistory(delta int) {
	t.grid.ScrollHistory(delta)
	t.grid.FullFlush(t.graphic)
}

// HandleKey maps one key event and, depending on the result, writes an
// ANSI sequence to the pty, switches the color scheme, scrolls the
// viewport, or pastes from the clipboard. Any keyboard event snaps the
// viewport back to the latest content.
func (t *Terminal) HandleKey(key KeyCode, ctrl, shift bool) {
	t.keyboard.SetAppCursorMode(t.screen.modes&ModeAppCursor != 0)
	t.handleKeyboardEvent(t.keyboard.HandleKey(key, ctrl, shift))
}

// HandleRune maps one decoded printable character the same way HandleKey
// maps a non-printable key code.
func (t *Terminal) HandleRune(r rune, ctrl, shift bool) {
	t.handleKeyboardEvent(t.keyboard.HandleRune(r, ctrl, shift))
}

func (t *Terminal) handleKeyboardEvent(ev KeyboardEvent) {
	t.grid.EnsureLatest()

	switch {
	case ev.SetScheme:
		t.SetColorScheme(ev.SchemeIndex)
	case ev.Scroll:
		t.ScrollHistory(ev.ScrollLines)
	case ev.Copy:
		// No text-selection model exists yet for this event to act on; the
		// host is expected to drive OSC 52 / Clipboard.SetText from its own
		// selection state instead.
	case ev.Paste:
		if text, ok := t.clipboard.GetText(); ok && t.ptyWriter != nil {
			t.ptyWriter(text)
		}
	case ev.AnsiString != "":
		if t.ptyWriter != nil {
			t.ptyWriter(ev.AnsiString)
		}
	}
}

// HandleMouse maps one mouse input. On the primary screen a wheel scroll
// moves the viewport through scrollback; on the alternate screen there is no
// scrollback to move, so the scroll is instead replayed as |lines| arrow-up
// or arrow-down AnsiStrings through the keyboard mapper, letting full-screen
// TUI applications (which own the primary screen's alt buffer) see synthetic
// key presses instead of a no-op.
func (t *Terminal) HandleMouse(input MouseInput) {
	ev := t.mouse.HandleMouse(input)
	if !ev.Scroll {
		return
	}
	if !t.grid.IsAltScreen() {
		t.ScrollHistory(ev.ScrollLines)
		return
	}
	if t.ptyWriter == nil {
		return
	}
	key := KeyArrowUp
	n := ev.ScrollLines
	if n < 0 {
		key = KeyArrowDown
		n = -n
	}
	seq := t.keyboard.keyToAnsiString(key)
	for i := 0; i < n; i++ {
		t.ptyWriter(seq)
	}
}

// CursorPosition reports the current 0-based cursor row/column.
func (t *Terminal) CursorPosition() (row, col int) {
	return t.screen.cursor.Row, t.screen.cursor.Col
}

// IsAltScreen reports whether the alternate screen buffer is active.
func (t *Terminal) IsAltScreen() bool {
	return t.grid.IsAltScreen()
}
