package osterminal

// DrawTarget is the pixel sink the core paints onto. It is the only
// mandatory collaborator; every other one defaults to a no-op.
type DrawTarget interface {
	// Size reports the pixel dimensions of the drawable surface.
	Size() (width, height int)
	// DrawPixel paints one RGB pixel.
	DrawPixel(x, y int, rgb [3]uint8)
}

// PixelPacker is an optional refinement of DrawTarget for hosts whose
// framebuffer uses a packed pixel format (e.g. RGB565). When a DrawTarget
// also implements PixelPacker, Graphic packs every blended RGB triple with
// Pack and writes it through DrawPackedPixel instead of DrawPixel, letting a
// hardware framebuffer be driven in its native layout without the core
// special-casing it.
type PixelPacker interface {
	Pack(rgb [3]uint8) uint32
	DrawPackedPixel(x, y int, packed uint32)
}

// GlyphInfo describes the cell a FontManager is asked to rasterize.
type GlyphInfo struct {
	Content rune
	Bold    bool
	Italic  bool
	Wide    bool
}

// Raster is the rasterized intensity grid for one glyph: width*height bytes,
// row-major, 0 (background) .. 255 (full foreground) per pixel.
type Raster struct {
	Width, Height int
	Pixels        []uint8
}

// FontManager reports cell metrics and rasterizes glyphs. It is the sole
// collaborator responsible for turning a rune into pixels; the core never
// parses a font file itself.
type FontManager interface {
	// Size reports the pixel dimensions of one character cell.
	Size() (width, height int)
	// Rasterize returns the intensity grid for the given glyph.
	Rasterize(info GlyphInfo) Raster
}

// Clipboard backs OSC 52 and the keyboard mapper's Copy/Paste events.
type Clipboard interface {
	GetText() (text string, ok bool)
	SetText(text string)
}

// NoopClipboard discards writes and reports no content on read.
type NoopClipboard struct{}

func (NoopClipboard) GetText() (string, bool) { return "", false }
func (NoopClipboard) SetText(string)          {}

// PtyWriter receives bytes the terminal wants to send back to the host
// (device-status replies, OSC 52 responses, keyboard/mouse-derived input).
type PtyWriter func(s string)

// BellHandler is invoked on BEL (0x07).
type BellHandler func()

// Logger receives a diagnostic message for every unhandled or malformed
// control sequence. It is the sole error-reporting channel for the core.
type Logger func(format string, args ...any)

// ScrollbackProvider is an optional sink notified whenever the Grid evicts
// a row for capacity. Implementations may persist it to disk, a database,
// or simply drop it (NoopScrollback). This is an extension point, not the
// Grid's primary storage, which is the in-memory deque described in grid.go.
type ScrollbackProvider interface {
	Push(line []Cell)
}

// NoopScrollback discards evicted rows.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell) {}

var (
	_ Clipboard          = NoopClipboard{}
	_ ScrollbackProvider = NoopScrollback{}
)
