package osterminal

import "testing"

func TestNewCellIsSpaceWithThemeColors(t *testing.T) {
	c := NewCell()
	if c.Content != ' ' {
		t.Fatalf("Content = %q, want space", c.Content)
	}
	if c.Foreground != DefaultForeground || c.Background != DefaultBackground {
		t.Fatalf("NewCell colors = %+v/%+v, want theme defaults", c.Foreground, c.Background)
	}
	if c.Flags != 0 || c.Wide || c.Placeholder {
		t.Fatalf("NewCell should carry no flags/wide/placeholder, got %+v", c)
	}
}

func TestCellFlags(t *testing.T) {
	var c Cell
	c.SetFlag(FlagBold)
	c.SetFlag(FlagUnderline)
	if !c.HasFlag(FlagBold) || !c.HasFlag(FlagUnderline) {
		t.Fatalf("expected both flags set, got %b", c.Flags)
	}
	if c.HasFlag(FlagItalic) {
		t.Fatalf("italic flag should not be set")
	}
	c.ClearFlag(FlagBold)
	if c.HasFlag(FlagBold) {
		t.Fatalf("bold flag should be cleared")
	}
	if !c.HasFlag(FlagUnderline) {
		t.Fatalf("clearing bold should not disturb underline")
	}
}

func TestWithContentSetsWideAndClearsPlaceholder(t *testing.T) {
	c := NewCell().WithPlaceholder()
	c = c.WithContent('字', true)
	if c.Content != '字' || !c.Wide || c.Placeholder {
		t.Fatalf("WithContent produced %+v", c)
	}
}

func TestWithPlaceholderClearsContentAndWide(t *testing.T) {
	c := NewCell().WithContent('字', true)
	p := c.WithPlaceholder()
	if p.Content != 0 || p.Wide || !p.Placeholder {
		t.Fatalf("WithPlaceholder produced %+v", p)
	}
}

func TestClearPreservesColorsResetsRest(t *testing.T) {
	c := Cell{Content: 'x', Wide: true, Flags: FlagBold, Foreground: RGB(1, 2, 3), Background: RGB(4, 5, 6)}
	cleared := c.Clear()
	if cleared.Content != ' ' || cleared.Wide || cleared.Flags != 0 {
		t.Fatalf("Clear left stale content/flags: %+v", cleared)
	}
	if cleared.Foreground != c.Foreground || cleared.Background != c.Background {
		t.Fatalf("Clear should preserve colors, got %+v", cleared)
	}
}

func TestColorConstructors(t *testing.T) {
	idx := Indexed(42)
	if idx.Kind != ColorIndexed || idx.Index != 42 {
		t.Fatalf("Indexed(42) = %+v", idx)
	}
	rgb := RGB(10, 20, 30)
	if rgb.Kind != ColorRGB || rgb.R != 10 || rgb.G != 20 || rgb.B != 30 {
		t.Fatalf("RGB(10,20,30) = %+v", rgb)
	}
}
