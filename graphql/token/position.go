package token

import "fmt"

// NoColumnUTF16 marks a position whose source cannot report UTF-16 columns.
const NoColumnUTF16 = -1

// SourcePosition is a location in a GraphQL document. All fields are
// 0-based. Column counts Unicode code points; ColumnUTF16 counts UTF-16
// code units and is NoColumnUTF16 when the token source cannot supply it.
type SourcePosition struct {
	Line        int
	Column      int
	ColumnUTF16 int
	ByteOffset  int
}

func (p SourcePosition) HasColumnUTF16() bool {
	return p.ColumnUTF16 != NoColumnUTF16
}

func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Span is a half-open source range: Start is inclusive, End is exclusive.
// Zero-width spans (Start == End) are valid and mark points, such as the
// end of input.
type Span struct {
	Start SourcePosition
	End   SourcePosition
}

// Adjacent reports whether next begins exactly where s ends, with no
// characters between them.
func (s Span) Adjacent(next Span) bool {
	return s.End.Line == next.Start.Line && s.End.Column == next.Start.Column
}

// OnSameLine reports whether next starts on the line s ends on.
func (s Span) OnSameLine(next Span) bool {
	return s.End.Line == next.Start.Line
}

func (s Span) ZeroWidth() bool {
	return s.Start.Line == s.End.Line && s.Start.Column == s.End.Column
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// Collapse returns the zero-width span at the end of s.
func (s Span) Collapse() Span {
	return Span{Start: s.End, End: s.End}
}
