package osterminal

import "testing"

type fakeFontManager struct {
	w, h int
}

func (f fakeFontManager) Size() (int, int) { return f.w, f.h }

func (f fakeFontManager) Rasterize(info GlyphInfo) Raster {
	w := f.w
	if info.Wide {
		w *= 2
	}
	px := make([]uint8, w*f.h)
	if info.Content != 0 && info.Content != ' ' {
		for i := range px {
			px[i] = 0xff
		}
	}
	return Raster{Width: w, Height: f.h, Pixels: px}
}

type capturingTarget struct {
	w, h   int
	pixels map[[2]int][3]uint8
}

func newCapturingTarget(w, h int) *capturingTarget {
	return &capturingTarget{w: w, h: h, pixels: make(map[[2]int][3]uint8)}
}

func (c *capturingTarget) Size() (int, int) { return c.w, c.h }
func (c *capturingTarget) DrawPixel(x, y int, rgb [3]uint8) {
	c.pixels[[2]int{x, y}] = rgb
}

func TestGraphicWritePlaceholderIsNoop(t *testing.T) {
	target := newCapturingTarget(16, 16)
	g := NewGraphic(target, fakeFontManager{w: 8, h: 8}, NewColorCacheStore(8), NewColorScheme(DefaultPalette))
	g.Write(0, 0, NewCell().WithContent('x', true).WithPlaceholder())
	if len(target.pixels) != 0 {
		t.Fatalf("placeholder cell painted %d pixels, want 0", len(target.pixels))
	}
}

func TestGraphicWriteSwapsOnInverse(t *testing.T) {
	target := newCapturingTarget(16, 16)
	scheme := NewColorScheme(DefaultPalette)
	g := NewGraphic(target, fakeFontManager{w: 8, h: 8}, NewColorCacheStore(8), scheme)

	cell := NewCell().WithContent('X', false)
	cell.Flags |= FlagInverse
	g.Write(0, 0, cell)

	// The fake glyph is full intensity everywhere, so every pixel takes the
	// swapped foreground, which under inverse is the cell's background.
	wantFG := scheme.Resolve(cell.Background)
	if got := target.pixels[[2]int{0, 0}]; got != wantFG {
		t.Fatalf("inverse top-left pixel = %v, want swapped fg %v", got, wantFG)
	}
}

func TestGraphicWriteHiddenCollapsesToBackground(t *testing.T) {
	target := newCapturingTarget(16, 16)
	scheme := NewColorScheme(DefaultPalette)
	g := NewGraphic(target, fakeFontManager{w: 8, h: 8}, NewColorCacheStore(8), scheme)

	cell := NewCell().WithContent('X', false)
	cell.Flags |= FlagHidden
	g.Write(0, 0, cell)

	wantBG := scheme.Resolve(cell.Background)
	for _, px := range target.pixels {
		if px != wantBG {
			t.Fatalf("hidden cell painted non-background pixel %v", px)
		}
	}
}

// packingTarget is a DrawTarget that also implements PixelPacker, modeling a
// hardware framebuffer with a packed pixel format (e.g. RGB565). DrawPixel is
// never expected to be called once a packer is present.
type packingTarget struct {
	w, h    int
	packed  map[[2]int]uint32
	drawHit int
}

func newPackingTarget(w, h int) *packingTarget {
	return &packingTarget{w: w, h: h, packed: make(map[[2]int]uint32)}
}

func (p *packingTarget) Size() (int, int) { return p.w, p.h }
func (p *packingTarget) DrawPixel(x, y int, rgb [3]uint8) {
	p.drawHit++
}
func (p *packingTarget) Pack(rgb [3]uint8) uint32 {
	r := uint32(rgb[0]) >> 3
	g := uint32(rgb[1]) >> 2
	b := uint32(rgb[2]) >> 3
	return r<<11 | g<<5 | b
}
func (p *packingTarget) DrawPackedPixel(x, y int, packed uint32) {
	p.packed[[2]int{x, y}] = packed
}

func TestGraphicWriteRoutesThroughPixelPacker(t *testing.T) {
	target := newPackingTarget(16, 16)
	scheme := NewColorScheme(DefaultPalette)
	g := NewGraphic(target, fakeFontManager{w: 8, h: 8}, NewColorCacheStore(8), scheme)

	g.Write(0, 0, NewCell().WithContent('X', false))

	if target.drawHit != 0 {
		t.Fatalf("DrawPixel called %d times, want 0 when a PixelPacker is present", target.drawHit)
	}
	if len(target.packed) == 0 {
		t.Fatalf("no pixels painted through DrawPackedPixel")
	}
}

func TestGraphicCursorBeamOverlay(t *testing.T) {
	target := newCapturingTarget(16, 16)
	scheme := NewColorScheme(DefaultPalette)
	g := NewGraphic(target, fakeFontManager{w: 8, h: 8}, NewColorCacheStore(8), scheme)

	cell := NewCell()
	cell.Flags |= FlagCursorBeam
	g.Write(0, 0, cell)

	full := scheme.Resolve(cell.Foreground)
	for y := 0; y < 8; y++ {
		if got := target.pixels[[2]int{0, y}]; got != full {
			t.Fatalf("beam column (0,%d) = %v, want full-intensity foreground %v", y, got, full)
		}
	}
}
