package osterminal

import "github.com/danielgatis/go-ansicode"

// Interpreter decodes a byte stream into control-sequence callbacks on a
// Handler. It is a thin wrapper around go-ansicode's own Decoder/Performer
// pair (which in turn wraps go-vte, go-utf8 and go-iterator) — reused
// verbatim rather than reimplemented, since parsing VT220/ECMA-48 byte
// streams correctly is its own substantial project.
type Interpreter struct {
	decoder *ansicode.Decoder
}

// NewInterpreter creates an Interpreter that dispatches decoded sequences to
// handler.
func NewInterpreter(handler ansicode.Handler) *Interpreter {
	return &Interpreter{decoder: ansicode.NewDecoder(handler)}
}

// Write feeds bytes into the decoder, driving zero or more Handler callbacks.
// It never returns an error: malformed input is reported to the Handler's
// Logger, not surfaced here, and never panics.
func (in *Interpreter) Write(p []byte) (int, error) {
	return in.decoder.Write(p)
}
