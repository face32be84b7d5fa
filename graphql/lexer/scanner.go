package lexer

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/dhamidi/tako/graphql/token"
)

const (
	dotError        = "Unexpected token: `.` (use `...` for spread operator)"
	doubleDotError  = "Unexpected token: `..` (use `...` for spread operator)"
	spacedDotsError = "Unexpected token: `. .` (use `...` for spread operator)"
	pendingMinus    = "Unexpected token: `-`"
)

// ScannerSource adapts a text/scanner token stream into a token.Source, for
// GraphQL embedded in Go-adjacent sources. The host scanner splits several
// GraphQL tokens, so the adapter recombines them: dot runs into `...`, a `-`
// with an adjacent number into a signed literal, and `""`+`"x"`+`""` string
// triples into one block string.
//
// The contract is permanently degraded relative to Lexer: host comments are
// discarded before they reach the adapter, so tokens never carry comment
// trivia, and positions never include a UTF-16 column.
type ScannerSource struct {
	sc       scanner.Scanner
	pending  []token.Token
	trivia   []token.Trivia
	lastSpan token.Span
	haveLast bool
	atEOF    bool
	finished bool
}

func NewScannerSource(r io.Reader) *ScannerSource {
	s := &ScannerSource{}
	s.sc.Init(r)
	s.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanRawStrings |
		scanner.ScanComments | scanner.SkipComments
	// Host-level scan errors surface as degenerate tokens downstream; keep
	// the scanner from printing to stderr.
	s.sc.Error = func(*scanner.Scanner, string) {}
	return s
}

func (s *ScannerSource) Next() (token.Token, bool) {
	if s.finished {
		return token.Token{}, false
	}

	for len(s.pending) < 3 && !s.atEOF {
		s.scanOne()
	}

	if tok, ok := s.combineBlockString(); ok {
		s.lastSpan, s.haveLast = tok.Span, true
		return tok, true
	}
	if tok, ok := s.combineNegativeNumber(); ok {
		s.lastSpan, s.haveLast = tok.Span, true
		return tok, true
	}
	if len(s.pending) > 0 {
		tok := s.pending[0]
		s.pending = s.pending[1:]
		s.lastSpan, s.haveLast = tok.Span, true
		return tok, true
	}

	s.finished = true
	return s.makeEOF(), true
}

func hostPosition(pos scanner.Position) token.SourcePosition {
	return token.SourcePosition{
		Line:        pos.Line - 1,
		Column:      pos.Column - 1,
		ColumnUTF16: token.NoColumnUTF16,
		ByteOffset:  pos.Offset,
	}
}

func (s *ScannerSource) scanOne() {
	r := s.sc.Scan()
	if r == scanner.EOF {
		s.atEOF = true
		return
	}
	span := token.Span{Start: hostPosition(s.sc.Position), End: hostPosition(s.sc.Pos())}
	text := s.sc.TokenText()

	switch r {
	case scanner.Ident:
		kind := token.Name
		switch text {
		case "true":
			kind = token.True
		case "false":
			kind = token.False
		case "null":
			kind = token.Null
		}
		s.push(token.Token{Kind: kind, Span: span, Literal: text})
	case scanner.Int:
		s.push(token.Token{Kind: token.IntValue, Span: span, Literal: text})
	case scanner.Float:
		s.push(token.Token{Kind: token.FloatValue, Span: span, Literal: text})
	case scanner.String:
		s.push(token.Token{Kind: token.StringValue, Span: span, Literal: text})
	case scanner.RawString:
		s.pushRawString(text, span)
	case '.':
		s.pushDot(span)
	case '-':
		// Possibly the sign of a negative number; combineNegativeNumber
		// resolves it once the next token is known.
		s.push(errorToken(span, pendingMinus))
	case ',':
		s.trivia = append(s.trivia, token.Trivia{Kind: token.TriviaComma, Span: span})
	default:
		if kind, ok := punctuators[r]; ok {
			s.push(token.Token{Kind: kind, Span: span})
			return
		}
		s.push(errorToken(span, fmt.Sprintf("Unexpected token: `%c`", r)))
	}
}

func (s *ScannerSource) push(tok token.Token) {
	tok.Trivia = s.takeTrivia()
	s.pending = append(s.pending, tok)
}

func (s *ScannerSource) takeTrivia() []token.Trivia {
	tr := s.trivia
	s.trivia = nil
	return tr
}

func errorToken(span token.Span, message string, notes ...token.Note) token.Token {
	return token.Token{Kind: token.Error, Span: span, Literal: message, Notes: notes}
}

// pushDot folds runs of `.` tokens. Adjacent dots stay upgradeable until
// three of them form an Ellipsis; a spaced dot on the same line makes the
// run a terminal error with a spacing hint; a dot on a new line starts over.
func (s *ScannerSource) pushDot(span token.Span) {
	if n := len(s.pending); n > 0 {
		last := &s.pending[n-1]
		if last.Kind == token.Error {
			switch last.Literal {
			case doubleDotError:
				switch {
				case last.Span.Adjacent(span):
					last.Kind = token.Ellipsis
					last.Literal = ""
					last.Notes = nil
					last.Span.End = span.End
					return
				case last.Span.OnSameLine(span):
					last.Literal = "Unexpected token: `.. .`"
					last.Notes = []token.Note{{
						Kind:    token.NoteHelp,
						Message: "This `.` may have been intended to complete a `...` spread operator. Try removing the extra spacing between the dots.",
						Span:    &span,
					}}
					last.Span.End = span.End
					return
				}
			case spacedDotsError:
				if last.Span.OnSameLine(span) {
					last.Literal = "Unexpected token: `. . .`"
					last.Notes = []token.Note{{
						Kind:    token.NoteHelp,
						Message: spacedDotsHelp,
						Span:    &span,
					}}
					last.Span.End = span.End
					return
				}
			case dotError:
				switch {
				case last.Span.Adjacent(span):
					last.Literal = doubleDotError
					last.Span.End = span.End
					return
				case last.Span.OnSameLine(span):
					last.Literal = spacedDotsError
					last.Notes = []token.Note{{
						Kind:    token.NoteHelp,
						Message: spacedDotsHelp,
						Span:    &span,
					}}
					last.Span.End = span.End
					return
				}
			}
		}
	}
	s.push(errorToken(span, dotError))
}

func (s *ScannerSource) pushRawString(text string, span token.Span) {
	content := text
	if len(content) >= 2 {
		content = content[1 : len(content)-1]
	}
	s.push(errorToken(span,
		"Go raw string literals (backquoted) are not valid GraphQL syntax",
		token.Note{Kind: token.NoteHelp, Message: "Consider using: " + suggestString(content), Span: &span}))
}

// suggestString renders content as an equivalent GraphQL string literal,
// preferring a block string when inline escaping would get noisy.
func suggestString(content string) string {
	newlines := strings.Count(content, "\n") + strings.Count(content, "\r")
	quotes := strings.Count(content, `"`)
	if newlines > 4 || quotes > 4 {
		return `"""` + strings.ReplaceAll(content, `"""`, `\"""`) + `"""`
	}
	escaped := strings.ReplaceAll(content, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func (s *ScannerSource) combineBlockString() (token.Token, bool) {
	if len(s.pending) < 3 {
		return token.Token{}, false
	}
	first, second, third := s.pending[0], s.pending[1], s.pending[2]
	if first.Kind != token.StringValue || second.Kind != token.StringValue || third.Kind != token.StringValue {
		return token.Token{}, false
	}
	if first.Literal != `""` || third.Literal != `""` {
		return token.Token{}, false
	}
	if !first.Span.Adjacent(second.Span) || !second.Span.Adjacent(third.Span) {
		return token.Token{}, false
	}

	content := ""
	if len(second.Literal) >= 2 {
		content = second.Literal[1 : len(second.Literal)-1]
	}
	s.pending = s.pending[3:]
	return token.Token{
		Kind:    token.StringValue,
		Span:    token.Span{Start: first.Span.Start, End: third.Span.End},
		Literal: `"""` + content + `"""`,
		Trivia:  first.Trivia,
	}, true
}

func (s *ScannerSource) combineNegativeNumber() (token.Token, bool) {
	if len(s.pending) < 2 {
		return token.Token{}, false
	}
	minus, num := s.pending[0], s.pending[1]
	if minus.Kind != token.Error || minus.Literal != pendingMinus {
		return token.Token{}, false
	}
	if num.Kind != token.IntValue && num.Kind != token.FloatValue {
		return token.Token{}, false
	}
	if !minus.Span.Adjacent(num.Span) {
		return token.Token{}, false
	}

	s.pending = s.pending[2:]
	return token.Token{
		Kind:    num.Kind,
		Span:    token.Span{Start: minus.Span.Start, End: num.Span.End},
		Literal: "-" + num.Literal,
		Trivia:  minus.Trivia,
	}, true
}

func (s *ScannerSource) makeEOF() token.Token {
	span := s.lastSpan
	if !s.haveLast {
		pos := token.SourcePosition{ColumnUTF16: token.NoColumnUTF16}
		span = token.Span{Start: pos, End: pos}
	}
	return token.Token{Kind: token.EOF, Span: span, Trivia: s.takeTrivia()}
}
