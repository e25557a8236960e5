package osterminal

// Row is one line of cells.
type Row = []Cell

// Grid is the double-buffered character grid: a primary screen backed by a
// growable scrollback deque, and a fixed-size alternate screen with no
// scrollback at all.
//
// The primary screen is modeled as a single slice of rows (buffer) with a
// startRow index into it; the visible viewport is buffer[startRow:startRow+height].
// Scrolling the primary screen off the top of the viewport rotates the
// viewport rows in place, then splices a copy of the departing top row into
// the buffer just above the viewport and advances startRow, so scrollback
// growth is deque growth at the scrollback/viewport boundary.
type Grid struct {
	width, height int
	historySize   int

	buffer   []Row
	startRow int

	alt       []Row
	altActive bool

	flushCache []Cell

	scrollback ScrollbackProvider
}

// NewGrid allocates a grid with the given viewport size and scrollback
// capacity (in rows, above the viewport).
func NewGrid(width, height, historySize int, scrollback ScrollbackProvider) *Grid {
	if scrollback == nil {
		scrollback = NoopScrollback{}
	}
	g := &Grid{
		width:       width,
		height:      height,
		historySize: historySize,
		scrollback:  scrollback,
	}
	g.buffer = make([]Row, height)
	for i := range g.buffer {
		g.buffer[i] = newRow(width, NewCell())
	}
	g.alt = make([]Row, height)
	for i := range g.alt {
		g.alt[i] = newRow(width, NewCell())
	}
	g.flushCache = make([]Cell, width*height)
	return g
}

func newRow(width int, fill Cell) Row {
	row := make(Row, width)
	for i := range row {
		row[i] = fill
	}
	return row
}

func fillRow(row Row, fill Cell) {
	for i := range row {
		row[i] = fill
	}
}

func insertRow(rows []Row, idx int, row Row) []Row {
	rows = append(rows, nil)
	copy(rows[idx+1:], rows[idx:])
	rows[idx] = row
	return rows
}

// Width and Height report the viewport dimensions.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// IsAltScreen reports whether the alternate screen is currently active.
func (g *Grid) IsAltScreen() bool { return g.altActive }

// ScrollbackLen reports how many rows of scrollback the primary screen
// holds, wherever the viewport currently sits (0 while the alternate screen
// is active).
func (g *Grid) ScrollbackLen() int {
	if g.altActive {
		return 0
	}
	return len(g.buffer) - g.height
}

func (g *Grid) viewportRow(r int) Row {
	if g.altActive {
		return g.alt[r]
	}
	return g.buffer[g.startRow+r]
}

// Read returns the cell at viewport position (row, col).
func (g *Grid) Read(row, col int) Cell {
	return g.viewportRow(row)[col]
}

// Write sets the cell at viewport position (row, col).
func (g *Grid) Write(row, col int, cell Cell) {
	g.viewportRow(row)[col] = cell
}

// RowMut exposes one viewport row for bulk fills/copies.
func (g *Grid) RowMut(row int) Row {
	return g.viewportRow(row)
}

// Clear fills the entire viewport with cell.
func (g *Grid) Clear(cell Cell) {
	for r := 0; r < g.height; r++ {
		fillRow(g.viewportRow(r), cell)
	}
}

// ScrollHistory shifts startRow by -delta, clamped to the valid range.
// Positive delta moves the viewport up (into scrollback); negative moves it
// down (toward the latest content). A no-op on the alternate screen.
func (g *Grid) ScrollHistory(delta int) {
	if g.altActive {
		return
	}
	g.startRow = clamp(g.startRow-delta, 0, len(g.buffer)-g.height)
}

// EnsureLatest snaps the viewport to the bottom of the buffer, i.e. the most
// recently written content. Invoked on every keyboard input event so a
// typing user always sees what they typed.
func (g *Grid) EnsureLatest() {
	if g.altActive {
		return
	}
	g.startRow = len(g.buffer) - g.height
}

// AtLatest reports whether the viewport is already showing the newest content.
func (g *Grid) AtLatest() bool {
	return g.altActive || g.startRow == len(g.buffer)-g.height
}

// SwapAltScreen exchanges the primary and alternate screens. On entering the
// alternate screen (altActive transitions false -> true) the new viewport is
// cleared with cell, matching private mode 1049's "switch to alt, clearing
// it" semantics.
func (g *Grid) SwapAltScreen(cell Cell) {
	g.altActive = !g.altActive
	if g.altActive {
		for _, row := range g.alt {
			fillRow(row, cell)
		}
	}
}

// ClearHistory drops all scrollback above the viewport (primary screen only).
func (g *Grid) ClearHistory() {
	if g.altActive {
		return
	}
	g.buffer = g.buffer[g.startRow:]
	g.startRow = 0
}

// ResizeHistory updates the scrollback capacity. Excess rows are trimmed
// lazily, on the next scroll-out rather than retroactively.
func (g *Grid) ResizeHistory(capacity int) {
	g.historySize = capacity
}

// ScrollRegion is the core scrolling primitive. count is signed: positive
// scrolls the region up by count lines (new blank lines appear at the
// bottom), negative scrolls down by -count. region is the half-open row
// range [top, bottom) within the viewport that moves; rows outside it are
// untouched.
//
// Scrollback is only spliced when the region is flush against the relevant
// viewport edge on the primary screen — top==0 when scrolling up, bottom==
// height when scrolling down. Every other case (alternate screen, or an
// interior region) is a pure in-place rotate.
func (g *Grid) ScrollRegion(count int, fill Cell, top, bottom int) {
	if count == 0 || top < 0 || bottom > g.height || top >= bottom {
		return
	}
	if count > 0 {
		for i := 0; i < count; i++ {
			g.scrollUpOnce(fill, top, bottom)
		}
	} else {
		for i := 0; i < -count; i++ {
			g.scrollDownOnce(fill, top, bottom)
		}
	}
}

func (g *Grid) scrollUpOnce(fill Cell, top, bottom int) {
	flushEdge := !g.altActive && top == 0

	var evicted Row
	if flushEdge {
		evicted = make(Row, g.width)
		copy(evicted, g.buffer[g.startRow])
	}

	for r := top; r < bottom-1; r++ {
		copy(g.viewportRow(r), g.viewportRow(r+1))
	}
	fillRow(g.viewportRow(bottom-1), fill)

	if !flushEdge {
		return
	}

	g.buffer = insertRow(g.buffer, g.startRow, evicted)
	g.startRow++

	for g.startRow > 0 && g.startRow > g.historySize {
		g.scrollback.Push(g.buffer[0])
		g.buffer = g.buffer[1:]
		g.startRow--
	}
}

func (g *Grid) scrollDownOnce(fill Cell, top, bottom int) {
	flushEdge := !g.altActive && bottom == g.height

	var evicted Row
	if flushEdge {
		evicted = make(Row, g.width)
		copy(evicted, g.viewportRow(bottom-1))
	}

	for r := bottom - 1; r > top; r-- {
		copy(g.viewportRow(r), g.viewportRow(r-1))
	}
	fillRow(g.viewportRow(top), fill)

	if !flushEdge {
		return
	}

	insertIdx := g.startRow + g.height
	g.buffer = insertRow(g.buffer, insertIdx, evicted)

	if g.startRow > g.historySize {
		g.scrollback.Push(g.buffer[0])
		g.buffer = g.buffer[1:]
		g.startRow--
	}
}

// Flush diffs the viewport against the last-painted snapshot and repaints
// only the cells that changed.
func (g *Grid) Flush(graphic *Graphic) {
	for r := 0; r < g.height; r++ {
		row := g.viewportRow(r)
		base := r * g.width
		for c := 0; c < g.width; c++ {
			if g.flushCache[base+c] != row[c] {
				graphic.Write(r, c, row[c])
				g.flushCache[base+c] = row[c]
			}
		}
	}
}

// FullFlush repaints every viewport cell unconditionally, first clearing the
// whole drawable surface (including any pixel margin the grid doesn't tile
// exactly) to the theme background. Used after a palette change invalidates
// every cached color blend.
func (g *Grid) FullFlush(graphic *Graphic) {
	graphic.Clear(NewCell())
	for r := 0; r < g.height; r++ {
		row := g.viewportRow(r)
		base := r * g.width
		for c := 0; c < g.width; c++ {
			graphic.Write(r, c, row[c])
			g.flushCache[base+c] = row[c]
		}
	}
}

// Resize reallocates both screens and the flush snapshot to the new
// dimensions. Scrollback is discarded: it only survives a dimension change
// that never happened.
func (g *Grid) Resize(width, height int, cell Cell) {
	g.width, g.height = width, height
	g.buffer = make([]Row, height)
	for i := range g.buffer {
		g.buffer[i] = newRow(width, cell)
	}
	g.alt = make([]Row, height)
	for i := range g.alt {
		g.alt[i] = newRow(width, cell)
	}
	g.startRow = 0
	g.flushCache = make([]Cell, width*height)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
