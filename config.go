package osterminal

// Option configures a Terminal during construction via the functional-options
// idiom, rather than a process-global configuration singleton: every option
// here lands on a field owned by the Terminal instance itself.
type Option func(*Terminal)

// WithSize sets the initial viewport dimensions. Defaults to 80x24.
func WithSize(cols, rows int) Option {
	return func(t *Terminal) {
		t.cols, t.rows = cols, rows
	}
}

// WithHistorySize sets the scrollback capacity in rows above the viewport.
// Defaults to 200.
func WithHistorySize(n int) Option {
	return func(t *Terminal) { t.historySize = n }
}

// WithDrawTarget installs the pixel sink. This is the only option with no
// usable default: a Terminal constructed without one cannot flush.
func WithDrawTarget(target DrawTarget) Option {
	return func(t *Terminal) { t.drawTarget = target }
}

// WithFontManager installs the glyph rasterizer.
func WithFontManager(font FontManager) Option {
	return func(t *Terminal) { t.fontManager = font }
}

// WithPalette selects the starting color theme. Defaults to DefaultPalette.
func WithPalette(p Palette) Option {
	return func(t *Terminal) { t.palette = p }
}

// WithColorCacheCapacity bounds the number of distinct (fg,bg) blend tables
// kept alive at once. A non-positive value disables eviction. Defaults to 64.
func WithColorCacheCapacity(n int) Option {
	return func(t *Terminal) { t.colorCacheCapacity = n }
}

// WithPtyWriter installs the sink for bytes the terminal writes back to its
// host (device-status replies, OSC 52 responses, mapped keyboard/mouse input).
func WithPtyWriter(w PtyWriter) Option {
	return func(t *Terminal) { t.ptyWriter = w }
}

// WithBellHandler installs the BEL (0x07) callback.
func WithBellHandler(b BellHandler) Option {
	return func(t *Terminal) { t.bellHandler = b }
}

// WithLogger installs the diagnostic sink for unhandled or malformed
// sequences. Defaults to a no-op.
func WithLogger(l Logger) Option {
	return func(t *Terminal) { t.logger = l }
}

// WithClipboard installs the OSC 52 / Ctrl+Shift+C/V backing store.
// Defaults to NoopClipboard.
func WithClipboard(c Clipboard) Option {
	return func(t *Terminal) { t.clipboard = c }
}

// WithScrollbackProvider installs the sink notified when a row is evicted
// from the in-memory scrollback deque. Defaults to NoopScrollback.
func WithScrollbackProvider(p ScrollbackProvider) Option {
	return func(t *Terminal) { t.scrollbackProvider = p }
}

// WithScrollSpeed scales wheel-delta input before it accumulates into whole
// scrollback lines. Defaults to 1.0.
func WithScrollSpeed(speed float64) Option {
	return func(t *Terminal) { t.scrollSpeed = speed }
}

// WithNaturalScroll toggles wheel-scroll direction. Defaults to true.
func WithNaturalScroll(natural bool) Option {
	return func(t *Terminal) { t.naturalScroll = natural }
}

// WithAutoFlush toggles whether Process repaints the changed cells after
// every Process call, versus leaving Flush to an explicit caller-driven cadence.
// Defaults to true.
func WithAutoFlush(enabled bool) Option {
	return func(t *Terminal) { t.autoFlush = enabled }
}

// WithCrnlMapping seeds the screen's initial line-feed-as-newline mode
// (equivalent to the host sending ESC[20h before any other input), so a
// terminal that always wants LF to also return the cursor to column 0 doesn't
// need to inject that sequence itself. Defaults to off.
func WithCrnlMapping(enabled bool) Option {
	return func(t *Terminal) { t.crnlMapping = enabled }
}
