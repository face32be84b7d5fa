package parser

import "github.com/dhamidi/tako/graphql/token"

// TokenStream is a bounded-lookahead buffer over a token.Source. The
// parser needs at most a few tokens of lookahead, so the buffer stays
// small; Compact discards consumed tokens between top-level definitions
// to keep memory flat on large documents.
//
// A stream is single-use: it belongs to one parse call.
type TokenStream struct {
	source    token.Source
	buffer    []token.Token
	current   int // index of the last consumed token, -1 before the first Next
	exhausted bool
}

func NewTokenStream(src token.Source) *TokenStream {
	return &TokenStream{source: src, current: -1}
}

// fill pulls tokens from the source until the buffer covers absolute
// index want or the source runs out.
func (s *TokenStream) fill(want int) {
	for !s.exhausted && len(s.buffer) <= want {
		tok, ok := s.source.Next()
		if !ok {
			s.exhausted = true
			return
		}
		s.buffer = append(s.buffer, tok)
		if tok.Kind == token.EOF {
			s.exhausted = true
		}
	}
}

// Peek returns the next unconsumed token without consuming it. At the
// end of input it returns the stream's EOF token; a well-formed source
// always ends with one, so the parser can rely on Peek never running
// dry.
func (s *TokenStream) Peek() token.Token {
	return s.PeekNth(0)
}

// PeekNth returns the token n positions past the next unconsumed token.
// PeekNth(0) is Peek.
func (s *TokenStream) PeekNth(n int) token.Token {
	idx := s.current + 1 + n
	s.fill(idx)
	if idx < len(s.buffer) {
		return s.buffer[idx]
	}
	// Past the end of a finished source. Hand back the terminal EOF if
	// we have one; otherwise the source violated its contract and we
	// synthesize an EOF at the current position.
	if n := len(s.buffer); n > 0 && s.buffer[n-1].Kind == token.EOF {
		return s.buffer[n-1]
	}
	return token.Token{Kind: token.EOF, Span: s.CurrentSpan()}
}

// Next consumes and returns the next token. Once the terminal EOF has
// been consumed the stream stays latched there: further calls return
// the same EOF without advancing.
func (s *TokenStream) Next() token.Token {
	tok := s.Peek()
	if s.current+1 < len(s.buffer) {
		s.current++
	}
	return tok
}

// CheckName reports whether the next token is a Name with exactly the
// given text. Contextual keywords are ordinary names, so this is the
// parser's only keyword test.
func (s *TokenStream) CheckName(name string) bool {
	tok := s.Peek()
	return tok.Kind == token.Name && tok.Literal == name
}

// CheckPunctuator reports whether the next token has the given kind.
func (s *TokenStream) CheckPunctuator(kind token.Kind) bool {
	return s.Peek().Kind == kind
}

func (s *TokenStream) IsAtEnd() bool {
	return s.Peek().Kind == token.EOF
}

// CurrentSpan returns a zero-width span at the end of the last consumed
// token, for diagnostics that point at the place input ran out. Before
// any token has been consumed it sits at the start of the document.
func (s *TokenStream) CurrentSpan() token.Span {
	if s.current >= 0 && s.current < len(s.buffer) {
		return s.buffer[s.current].Span.Collapse()
	}
	zero := token.SourcePosition{ColumnUTF16: 0}
	return token.Span{Start: zero, End: zero}
}

// Compact drops tokens before the last consumed one, keeping the buffer
// capacity for reuse. The parser calls it after each top-level
// definition.
func (s *TokenStream) Compact() {
	if s.current <= 0 {
		return
	}
	s.buffer = append(s.buffer[:0], s.buffer[s.current:]...)
	s.current = 0
}

// BufferLen reports how many tokens the stream is holding.
func (s *TokenStream) BufferLen() int {
	return len(s.buffer)
}
