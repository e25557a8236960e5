package osterminal

// Graphic composites Cells to pixels on a DrawTarget, consulting a
// ColorCacheStore so the per-pixel blend is a table lookup instead of
// arithmetic on the hot flush path.
type Graphic struct {
	target DrawTarget
	font   FontManager
	cache  *ColorCacheStore
	scheme *ColorScheme
	packer PixelPacker

	cellWidth, cellHeight int
}

// NewGraphic wires a DrawTarget, FontManager, and color cache together.
func NewGraphic(target DrawTarget, font FontManager, cache *ColorCacheStore, scheme *ColorScheme) *Graphic {
	g := &Graphic{target: target, font: font, cache: cache, scheme: scheme}
	if p, ok := target.(PixelPacker); ok {
		g.packer = p
	}
	if font != nil {
		g.cellWidth, g.cellHeight = font.Size()
	}
	return g
}

// SetScheme installs a new ColorScheme and invalidates the color cache,
// since every previously blended (fg,bg) pair is now stale.
func (g *Graphic) SetScheme(scheme *ColorScheme) {
	g.scheme = scheme
	g.cache.Invalidate()
}

// CellSize reports the pixel dimensions of one character cell.
func (g *Graphic) CellSize() (int, int) {
	return g.cellWidth, g.cellHeight
}

func (g *Graphic) putPixel(x, y int, rgb [3]uint8) {
	if g.packer != nil {
		g.packer.DrawPackedPixel(x, y, g.packer.Pack(rgb))
		return
	}
	g.target.DrawPixel(x, y, rgb)
}

// Clear fills the whole drawable surface with cell's background color.
func (g *Graphic) Clear(cell Cell) {
	w, h := g.target.Size()
	bg := g.scheme.Resolve(cell.Background)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.putPixel(x, y, bg)
		}
	}
}

// Write paints one cell at the given viewport row/column.
//
// Order of operations: resolve colors, swap on inverse/cursor-block,
// collapse on hidden, rasterize,
// blend every intensity byte through the color cache, then overlay the beam
// and underline cursor decorations at full intensity.
func (g *Graphic) Write(row, col int, cell Cell) {
	if cell.Placeholder {
		return
	}

	fg := g.scheme.Resolve(cell.Foreground)
	bg := g.scheme.Resolve(cell.Background)

	if cell.HasFlag(FlagInverse) || cell.HasFlag(FlagCursorBlock) {
		fg, bg = bg, fg
	}
	if cell.HasFlag(FlagHidden) {
		fg = bg
	}

	cache := g.cache.Get(fg, bg)

	xStart, yStart := col*g.cellWidth, row*g.cellHeight
	targetW, targetH := g.target.Size()

	var raster Raster
	if g.font != nil {
		raster = g.font.Rasterize(GlyphInfo{
			Content: cell.Content,
			Bold:    cell.HasFlag(FlagBold),
			Italic:  cell.HasFlag(FlagItalic),
			Wide:    cell.Wide,
		})
	}

	draw := func(x, y int, intensity uint8) {
		px, py := xStart+x, yStart+y
		if px < 0 || py < 0 || px >= targetW || py >= targetH {
			return
		}
		g.putPixel(px, py, cache.Blend(intensity))
	}

	for y := 0; y < raster.Height; y++ {
		rowOff := y * raster.Width
		for x := 0; x < raster.Width; x++ {
			draw(x, y, raster.Pixels[rowOff+x])
		}
	}

	if cell.HasFlag(FlagCursorBeam) {
		for y := 0; y < g.cellHeight; y++ {
			draw(0, y, 0xff)
		}
	}

	if cell.HasFlag(FlagUnderline) || cell.HasFlag(FlagCursorUnderline) {
		for x := 0; x < g.cellWidth; x++ {
			draw(x, g.cellHeight-1, 0xff)
		}
	}
}
