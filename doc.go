// Package osterminal provides an embeddable terminal emulator core: it
// accepts a byte stream from a shell or pseudo-terminal, interprets it as an
// ANSI/ECMA-48/xterm control sequence stream, maintains the resulting screen
// state, and paints glyphs onto an abstract pixel-addressable display. It has
// no operating-system dependency, so it runs equally well in a bare-metal
// kernel shell or a hosted process.
//
// # Quick Start
//
//	term := osterminal.New(
//	    osterminal.WithSize(80, 24),
//	    osterminal.WithDrawTarget(myDrawTarget),
//	    osterminal.WithFontManager(myFontManager),
//	)
//	term.WriteString("\x1b[1;31mHello\x1b[0m, World!")
//	term.Flush()
//
// # Architecture
//
// Three subsystems do the work:
//
//   - [Interpreter] and [Screen]: a VTE-style byte-stream decoder (wrapping
//     [github.com/danielgatis/go-ansicode]) dispatching into a Handler that
//     owns cursor, attribute, mode, scroll-region and charset state.
//   - [Grid]: a double-buffered character grid with scrollback, diffed
//     against a flush cache so only changed cells repaint.
//   - [Graphic] and [ColorCache]: per-cell rasterization and a per-(fg,bg)
//     alpha-ramp cache that turns font intensity bytes into RGB pixels.
//
// [Terminal] is the façade tying these together behind Process/Flush/
// HandleKey/HandleRune/HandleMouse.
//
// # Collaborators
//
// Everything the core doesn't implement itself is an installed collaborator:
// [DrawTarget] (the only mandatory one), [FontManager], [Clipboard],
// [PtyWriter], [BellHandler], [Logger], and [ScrollbackProvider]. All but
// DrawTarget default to a no-op so a Terminal is usable with a minimal setup.
//
// # Concurrency
//
// The core is single-threaded and non-blocking: no method suspends, and
// Terminal itself holds no lock. A caller driving a Terminal from more than
// one goroutine must supply its own mutual exclusion around Process/Flush/
// HandleKey/HandleRune/HandleMouse.
package osterminal
