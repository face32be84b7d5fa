package format

import (
	"io"

	"github.com/dhamidi/tako/graphql/ast"
)

// SourceEncoder writes the document back out as the exact bytes it was
// parsed from. The document span covers the whole input, so a parse
// followed by Encode reproduces the file byte for byte.
type SourceEncoder struct {
	w      io.Writer
	source []byte
}

func NewSourceEncoder(w io.Writer, source []byte) *SourceEncoder {
	return &SourceEncoder{w: w, source: source}
}

func (e *SourceEncoder) Encode(doc *ast.Document) error {
	_, err := e.w.Write(ast.AppendSource(nil, doc, e.source))
	return err
}
