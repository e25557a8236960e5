package osterminal

import (
	"fmt"
	"strconv"
)

// Palette is the raw input to a ColorScheme: the 16 ANSI colors plus the
// default foreground/background pair that a theme is built from.
type Palette struct {
	Foreground [3]uint8
	Background [3]uint8
	Ansi       [16][3]uint8
}

// ColorScheme is a fully resolved 256-entry RGB table plus the foreground/
// background pair that the two special indices (256, 257) resolve to.
//
// Entries 0-15 come straight from the Palette. Entries 16-231 are the
// xterm 6x6x6 color cube; entries 232-255 are the 24-step grayscale ramp.
// Both are generated with the same formula xterm itself uses.
type ColorScheme struct {
	Foreground [3]uint8
	Background [3]uint8
	Colors     [256][3]uint8
}

// NewColorScheme builds a ColorScheme from a Palette.
func NewColorScheme(p Palette) *ColorScheme {
	cs := &ColorScheme{Foreground: p.Foreground, Background: p.Background}
	copy(cs.Colors[:16], p.Ansi[:])

	scale := func(c int) uint8 {
		if c == 0 {
			return 0
		}
		return uint8(c*40 + 55)
	}
	for index := 0; index < 216; index++ {
		r := index / 36
		g := (index % 36) / 6
		b := index % 6
		cs.Colors[16+index] = [3]uint8{scale(r), scale(g), scale(b)}
	}

	for level := 0; level < 24; level++ {
		v := uint8(level*10 + 8)
		cs.Colors[16+216+level] = [3]uint8{v, v, v}
	}

	return cs
}

// Resolve converts a Color to an RGB triple using this scheme.
func (cs *ColorScheme) Resolve(c Color) [3]uint8 {
	if c.Kind == ColorRGB {
		return [3]uint8{c.R, c.G, c.B}
	}
	switch c.Index {
	case ColorForeground:
		return cs.Foreground
	case ColorBackground:
		return cs.Background
	default:
		if int(c.Index) < len(cs.Colors) {
			return cs.Colors[c.Index]
		}
		return cs.Background
	}
}

func hexToRGB(hex string) [3]uint8 {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) < 6 {
		return [3]uint8{0, 0, 0}
	}
	parse := func(s string) uint8 {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0
		}
		return uint8(v)
	}
	return [3]uint8{parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])}
}

func buildPalette(fgHex, bgHex string, ansiHex [16]string) Palette {
	p := Palette{
		Foreground: hexToRGB(fgHex),
		Background: hexToRGB(bgHex),
	}
	for i, h := range ansiHex {
		p.Ansi[i] = hexToRGB(h)
	}
	return p
}

// ParsePalette builds a Palette from hex strings ("#rrggbb" or "rrggbb"),
// returning an error if the foreground, the background or any of the 16 ANSI
// colors is malformed. This is one of
// the few constructors in this package that can fail statically, so unlike
// the rest of the core it returns an ordinary Go error instead of logging
// and falling back.
func ParsePalette(fgHex, bgHex string, ansiHex [16]string) (Palette, error) {
	for i, h := range append([]string{fgHex, bgHex}, ansiHex[:]...) {
		trimmed := h
		if len(trimmed) > 0 && trimmed[0] == '#' {
			trimmed = trimmed[1:]
		}
		if len(trimmed) != 6 {
			return Palette{}, fmt.Errorf("osterminal: invalid hex color at position %d: %q", i, h)
		}
		if _, err := strconv.ParseUint(trimmed, 16, 24); err != nil {
			return Palette{}, fmt.Errorf("osterminal: invalid hex color %q: %w", h, err)
		}
	}
	return buildPalette(fgHex, bgHex, ansiHex), nil
}

// BuiltinPalettes holds the named themes selectable via Keyboard Ctrl+Shift+F1..F8
// (see KeyboardMapper) or Terminal.SetColorScheme(index).
var BuiltinPalettes = [8]Palette{
	buildPalette("#f5f5f5", "#151515", [16]string{
		"#151515", "#ac4142", "#90a959", "#f4bf75", "#6a9fb5", "#aa759f", "#75b5aa", "#d0d0d0",
		"#505050", "#ac4142", "#90a959", "#f4bf75", "#6a9fb5", "#aa759f", "#75b5aa", "#f5f5f5",
	}),
	buildPalette("#839496", "#002b36", [16]string{
		"#002b36", "#dc322f", "#859900", "#b58900", "#268bd2", "#d33682", "#2aa198", "#eee8d5",
		"#073642", "#cb4b16", "#586e75", "#657b83", "#839496", "#6c71c4", "#93a1a1", "#fdf6e3",
	}),
	buildPalette("#ffffff", "#300924", [16]string{
		"#2e3436", "#cc0000", "#4e9a06", "#c4a000", "#3465a4", "#75507b", "#06989a", "#d3d7cf",
		"#555753", "#ef2929", "#8ae234", "#fce94f", "#729fcf", "#ad7fa8", "#34e2e2", "#eeeeec",
	}),
	buildPalette("#f8f8f2", "#121212", [16]string{
		"#181d1e", "#f92672", "#a6e22e", "#fd971f", "#66d9ef", "#9e6ffe", "#5e7175", "#cccccc",
		"#505354", "#ff669d", "#beed5f", "#e6db74", "#66d9ef", "#9e6ffe", "#a3babf", "#f8f8f2",
	}),
	buildPalette("#00bb00", "#001100", [16]string{
		"#001100", "#007700", "#00bb00", "#007700", "#009900", "#00bb00", "#005500", "#00bb00",
		"#007700", "#007700", "#00bb00", "#007700", "#009900", "#00bb00", "#005500", "#00ff00",
	}),
	buildPalette("#979db4", "#202746", [16]string{
		"#202746", "#c94922", "#ac9739", "#c08b30", "#3d8fd1", "#6679cc", "#22a2c9", "#979db4",
		"#6b7394", "#c94922", "#ac9739", "#c08b30", "#3d8fd1", "#6679cc", "#22a2c9", "#f5f7ff",
	}),
	buildPalette("#657b83", "#fdf6e3", [16]string{
		"#002b36", "#dc322f", "#859900", "#b58900", "#268bd2", "#d33682", "#2aa198", "#eee8d5",
		"#073642", "#cb4b16", "#586e75", "#657b83", "#839496", "#6c71c4", "#93a1a1", "#fdf6e3",
	}),
	buildPalette("#26232a", "#efecf4", [16]string{
		"#19171c", "#be4678", "#2a9292", "#a06e3b", "#576ddb", "#955ae7", "#398bc6", "#8b8792",
		"#585260", "#c9648e", "#34b2b2", "#bc8249", "#788ae2", "#ac7eed", "#599ecf", "#efecf4",
	}),
}

// DefaultPaletteIndex selects BuiltinPalettes[DefaultPaletteIndex] as the
// scheme a new Terminal starts with.
const DefaultPaletteIndex = 0

// DefaultPalette is BuiltinPalettes[DefaultPaletteIndex], kept as a named
// value for callers that want the starting theme without an index lookup.
var DefaultPalette = BuiltinPalettes[DefaultPaletteIndex]
