package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/dhamidi/tako/graphql/token"
)

// utf16RuneLen reports the number of 16-bit words in the UTF-16 encoding
// of the rune. It matches unicode/utf16.RuneLen, which requires Go 1.23;
// this build targets an older toolchain.
func utf16RuneLen(r rune) int {
	switch {
	case 0 <= r && r < 0xD800, 0xE000 <= r && r < 0x10000:
		return 1
	case 0x10000 <= r && r <= utf8.MaxRune:
		return 2
	default:
		return -1
	}
}

// Lexer tokenizes GraphQL source text. It implements token.Source.
type Lexer struct {
	input     []byte
	pos       int
	line      int
	col       int
	col16     int
	lastWasCR bool
	trivia    []token.Trivia
	finished  bool
}

func New(input []byte) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) Next() (token.Token, bool) {
	if l.finished {
		return token.Token{}, false
	}
	tok := l.scan()
	if tok.Kind == token.EOF {
		l.finished = true
	}
	return tok, true
}

func (l *Lexer) position() token.SourcePosition {
	return token.SourcePosition{
		Line:        l.line,
		Column:      l.col,
		ColumnUTF16: l.col16,
		ByteOffset:  l.pos,
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

func (l *Lexer) peekN(n int) rune {
	pos := l.pos
	for i := 0; i < n; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, size := utf8.DecodeRune(l.input[pos:])
		pos += size
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[pos:])
	return r
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, size := utf8.DecodeRune(l.input[l.pos:])
	switch r {
	case '\n':
		if l.lastWasCR {
			// Second half of \r\n: the line was already advanced at \r.
			l.lastWasCR = false
		} else {
			l.line++
			l.col = 0
			l.col16 = 0
		}
	case '\r':
		l.line++
		l.col = 0
		l.col16 = 0
		l.lastWasCR = true
	default:
		l.col++
		l.col16 += utf16RuneLen(r)
		l.lastWasCR = false
	}
	l.pos += size
	return r
}

func (l *Lexer) makeSpan(start token.SourcePosition) token.Span {
	return token.Span{Start: start, End: l.position()}
}

func (l *Lexer) takeTrivia() []token.Trivia {
	tr := l.trivia
	l.trivia = nil
	return tr
}

func (l *Lexer) makeToken(kind token.Kind, span token.Span) token.Token {
	return token.Token{Kind: kind, Span: span, Trivia: l.takeTrivia()}
}

func (l *Lexer) makeLiteral(kind token.Kind, span token.Span, text string) token.Token {
	return token.Token{Kind: kind, Span: span, Literal: text, Trivia: l.takeTrivia()}
}

func (l *Lexer) makeError(span token.Span, message string, notes ...token.Note) token.Token {
	return token.Token{Kind: token.Error, Span: span, Literal: message, Notes: notes, Trivia: l.takeTrivia()}
}

var punctuators = map[rune]token.Kind{
	'!': token.Bang,
	'$': token.Dollar,
	'&': token.Ampersand,
	'(': token.ParenOpen,
	')': token.ParenClose,
	':': token.Colon,
	'=': token.Equals,
	'@': token.At,
	'[': token.BracketOpen,
	']': token.BracketClose,
	'{': token.BraceOpen,
	'}': token.BraceClose,
	'|': token.Pipe,
}

func (l *Lexer) scan() token.Token {
	for {
		l.skipWhitespace()
		start := l.position()

		if l.pos >= len(l.input) {
			return l.makeToken(token.EOF, l.makeSpan(start))
		}

		ch := l.peek()

		if ch == '#' {
			l.scanComment(start)
			continue
		}
		if ch == ',' {
			l.advance()
			l.trivia = append(l.trivia, token.Trivia{Kind: token.TriviaComma, Span: l.makeSpan(start)})
			continue
		}
		if kind, ok := punctuators[ch]; ok {
			l.advance()
			return l.makeToken(kind, l.makeSpan(start))
		}
		if ch == '.' {
			return l.scanDots(start)
		}
		if ch == '"' {
			return l.scanString(start)
		}
		if isNameStart(ch) {
			return l.scanName(start)
		}
		if ch == '-' || isDigit(ch) {
			return l.scanNumber(start)
		}
		return l.scanInvalidChar(start)
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\n', '\r', '\uFEFF':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) skipSpacesSameLine() {
	for {
		switch l.peek() {
		case ' ', '\t', '\uFEFF':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) scanComment(start token.SourcePosition) {
	l.advance()
	contentStart := l.pos
	for l.pos < len(l.input) && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	l.trivia = append(l.trivia, token.Trivia{
		Kind: token.TriviaComment,
		Text: string(l.input[contentStart:l.pos]),
		Span: l.makeSpan(start),
	})
}

const spacedDotsHelp = "These dots may have been intended to form a `...` spread operator. Try removing the extra spacing between the dots."

// scanDots lexes `...` and the near-miss dot sequences. Dots separated only
// by same-line spacing are folded into a single error token; a lone dot gets
// no hint since it could be anything (e.g. `Foo.Bar`).
func (l *Lexer) scanDots(start token.SourcePosition) token.Token {
	l.advance()
	l.skipSpacesSameLine()

	if l.peek() != '.' {
		return l.makeError(l.makeSpan(start), "Unexpected `.`")
	}

	second := l.position()
	firstPairAdjacent := second.ByteOffset == start.ByteOffset+1
	l.advance()
	l.skipSpacesSameLine()

	if l.peek() != '.' {
		if firstPairAdjacent {
			return l.makeError(l.makeSpan(start),
				"Unexpected `..` (use `...` for spread operator)",
				token.Note{Kind: token.NoteHelp, Message: "Add one more `.` to form the spread operator `...`"})
		}
		return l.makeError(l.makeSpan(start),
			"Unexpected `. .` (use `...` for spread operator)",
			token.Note{Kind: token.NoteHelp, Message: spacedDotsHelp})
	}

	third := l.position()
	secondPairAdjacent := third.ByteOffset == second.ByteOffset+1
	l.advance()
	span := l.makeSpan(start)

	switch {
	case firstPairAdjacent && secondPairAdjacent:
		return l.makeToken(token.Ellipsis, span)
	case firstPairAdjacent:
		return l.makeError(span, "Unexpected `.. .`",
			token.Note{Kind: token.NoteHelp, Message: "This `.` may have been intended to complete a `...` spread operator. Try removing the extra spacing between the dots."})
	case secondPairAdjacent:
		return l.makeError(span, "Unexpected `. ..`",
			token.Note{Kind: token.NoteHelp, Message: spacedDotsHelp})
	default:
		return l.makeError(span, "Unexpected `. . .`",
			token.Note{Kind: token.NoteHelp, Message: spacedDotsHelp})
	}
}

func (l *Lexer) scanName(start token.SourcePosition) token.Token {
	l.advance()
	for isNameContinue(l.peek()) {
		l.advance()
	}
	span := l.makeSpan(start)
	name := string(l.input[start.ByteOffset:l.pos])

	kind := token.Name
	switch name {
	case "true":
		kind = token.True
	case "false":
		kind = token.False
	case "null":
		kind = token.Null
	}
	return l.makeLiteral(kind, span, name)
}

func (l *Lexer) scanNumber(start token.SourcePosition) token.Token {
	isFloat := false

	if l.peek() == '-' {
		l.advance()
	}

	switch ch := l.peek(); {
	case ch == '0':
		l.advance()
		if isDigit(l.peek()) {
			return l.scanNumberError(start,
				"Invalid number: leading zeros are not allowed",
				"https://spec.graphql.org/September2025/#sec-Int-Value")
		}
	case isDigit(ch):
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	default:
		return l.makeError(l.makeSpan(start), "Unexpected `-`")
	}

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if ch := l.peek(); ch == 'e' || ch == 'E' {
		isFloat = true
		l.advance()
		if ch := l.peek(); ch == '+' || ch == '-' {
			l.advance()
		}
		if !isDigit(l.peek()) {
			return l.scanNumberError(start,
				"Invalid number: exponent must have at least one digit",
				"https://spec.graphql.org/September2025/#sec-Float-Value")
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	span := l.makeSpan(start)
	text := string(l.input[start.ByteOffset:l.pos])
	if isFloat {
		return l.makeLiteral(token.FloatValue, span, text)
	}
	return l.makeLiteral(token.IntValue, span, text)
}

func (l *Lexer) scanNumberError(start token.SourcePosition, message, specURL string) token.Token {
	for {
		ch := l.peek()
		if isDigit(ch) || ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-' {
			l.advance()
		} else {
			break
		}
	}
	text := string(l.input[start.ByteOffset:l.pos])
	return l.makeError(l.makeSpan(start),
		fmt.Sprintf("%s: `%s`", message, text),
		token.Note{Kind: token.NoteSpec, Message: specURL})
}

func (l *Lexer) scanString(start token.SourcePosition) token.Token {
	if bytes.HasPrefix(l.input[l.pos:], []byte(`"""`)) {
		return l.scanBlockString(start)
	}

	l.advance()

	for {
		if l.pos >= len(l.input) {
			span := l.makeSpan(start)
			return l.makeError(span, "Unterminated string literal",
				token.Note{Kind: token.NoteGeneral, Message: "String started here", Span: &span},
				token.Note{Kind: token.NoteHelp, Message: "Add closing `\"`"})
		}

		switch l.peek() {
		case '\n', '\r':
			// Consume the newline so the span covers it.
			l.advance()
			if l.lastWasCR && l.peek() == '\n' {
				l.advance()
			}
			return l.makeError(l.makeSpan(start), "Unterminated string literal",
				token.Note{Kind: token.NoteGeneral, Message: "Single-line strings cannot contain unescaped newlines"},
				token.Note{Kind: token.NoteHelp, Message: "Use a block string (triple quotes) for multi-line strings, or escape the newline with `\\n`"})
		case '"':
			l.advance()
			span := l.makeSpan(start)
			return l.makeLiteral(token.StringValue, span, string(l.input[start.ByteOffset:l.pos]))
		case '\\':
			l.advance()
			if l.pos < len(l.input) {
				l.advance()
			}
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanBlockString(start token.SourcePosition) token.Token {
	l.advance()
	l.advance()
	l.advance()

	for {
		if l.pos >= len(l.input) {
			span := l.makeSpan(start)
			return l.makeError(span, "Unterminated block string",
				token.Note{Kind: token.NoteGeneral, Message: "Block string started here", Span: &span},
				token.Note{Kind: token.NoteHelp, Message: "Add closing `\"\"\"`"})
		}

		switch l.peek() {
		case '\\':
			if bytes.HasPrefix(l.input[l.pos:], []byte(`\"""`)) {
				l.advance()
				l.advance()
				l.advance()
				l.advance()
			} else {
				l.advance()
			}
		case '"':
			if bytes.HasPrefix(l.input[l.pos:], []byte(`"""`)) {
				l.advance()
				l.advance()
				l.advance()
				span := l.makeSpan(start)
				return l.makeLiteral(token.StringValue, span, string(l.input[start.ByteOffset:l.pos]))
			}
			l.advance()
		default:
			l.advance()
		}
	}
}

func (l *Lexer) scanInvalidChar(start token.SourcePosition) token.Token {
	ch := l.advance()
	return l.makeError(l.makeSpan(start), "Unexpected character "+describeChar(ch))
}

func isNameStart(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isNameContinue(ch rune) bool {
	return isNameStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
