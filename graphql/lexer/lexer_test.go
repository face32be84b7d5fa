package lexer

import (
	"testing"

	"github.com/dhamidi/tako/graphql/token"
)

func lexAll(input string) []token.Token {
	l := New([]byte(input))
	var toks []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func lexFirst(input string) token.Token {
	tok, _ := New([]byte(input)).Next()
	return tok
}

func TestLexerPunctuators(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"!", token.Bang},
		{"$", token.Dollar},
		{"&", token.Ampersand},
		{"(", token.ParenOpen},
		{")", token.ParenClose},
		{":", token.Colon},
		{"=", token.Equals},
		{"@", token.At},
		{"[", token.BracketOpen},
		{"]", token.BracketClose},
		{"{", token.BraceOpen},
		{"}", token.BraceClose},
		{"|", token.Pipe},
		{"...", token.Ellipsis},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexFirst(tt.input)
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestLexerNamesAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"query", token.Name},
		{"_private", token.Name},
		{"__typename", token.Name},
		{"with123", token.Name},
		{"true", token.True},
		{"false", token.False},
		{"null", token.Null},
		{"truex", token.Name},
		{"nullable", token.Name},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexFirst(tt.input)
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntValue},
		{"-0", token.IntValue},
		{"123", token.IntValue},
		{"-123", token.IntValue},
		{"0.5", token.FloatValue},
		{"1.5", token.FloatValue},
		{"-1.5", token.FloatValue},
		{"1e10", token.FloatValue},
		{"1E10", token.FloatValue},
		{"1e+10", token.FloatValue},
		{"1.5e-3", token.FloatValue},
		{"-1.5E+3", token.FloatValue},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexFirst(tt.input)
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerNumberErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"01", "Invalid number: leading zeros are not allowed: `01`"},
		{"00", "Invalid number: leading zeros are not allowed: `00`"},
		{"-012", "Invalid number: leading zeros are not allowed: `-012`"},
		{"1e", "Invalid number: exponent must have at least one digit: `1e`"},
		{"1e+", "Invalid number: exponent must have at least one digit: `1e+`"},
		{"1.5E-", "Invalid number: exponent must have at least one digit: `1.5E-`"},
		{"-", "Unexpected `-`"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexFirst(tt.input)
			if tok.Kind != token.Error {
				t.Fatalf("Kind = %v, want %v", tok.Kind, token.Error)
			}
			if tok.Literal != tt.message {
				t.Errorf("message = %q, want %q", tok.Literal, tt.message)
			}
		})
	}
}

func TestLexerNumberErrorSpecNote(t *testing.T) {
	tok := lexFirst("007")
	if len(tok.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(tok.Notes))
	}
	if tok.Notes[0].Kind != token.NoteSpec {
		t.Errorf("note kind = %v, want %v", tok.Notes[0].Kind, token.NoteSpec)
	}
	if tok.Notes[0].Message != "https://spec.graphql.org/September2025/#sec-Int-Value" {
		t.Errorf("note = %q", tok.Notes[0].Message)
	}
}

func TestLexerNumberBoundaries(t *testing.T) {
	toks := lexAll("1.2.3")
	want := []token.Kind{token.FloatValue, token.Error, token.IntValue, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, kind)
		}
	}
	if toks[0].Literal != "1.2" {
		t.Errorf("Literal = %q, want %q", toks[0].Literal, "1.2")
	}

	toks = lexAll("1.")
	if toks[0].Kind != token.IntValue || toks[0].Literal != "1" {
		t.Errorf("got %v %q, want IntValue \"1\"", toks[0].Kind, toks[0].Literal)
	}
	if toks[1].Kind != token.Error || toks[1].Literal != "Unexpected `.`" {
		t.Errorf("got %v %q, want dot error", toks[1].Kind, toks[1].Literal)
	}
}

func TestLexerDotErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		help    string
	}{
		{"single", ".", "Unexpected `.`", ""},
		{"double", "..", "Unexpected `..` (use `...` for spread operator)", "Add one more `.` to form the spread operator `...`"},
		{"spaced pair", ". .", "Unexpected `. .` (use `...` for spread operator)", spacedDotsHelp},
		{"third spaced", ".. .", "Unexpected `.. .`", "This `.` may have been intended to complete a `...` spread operator. Try removing the extra spacing between the dots."},
		{"first spaced", ". ..", "Unexpected `. ..`", spacedDotsHelp},
		{"all spaced", ". . .", "Unexpected `. . .`", spacedDotsHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := lexFirst(tt.input)
			if tok.Kind != token.Error {
				t.Fatalf("Kind = %v, want %v", tok.Kind, token.Error)
			}
			if tok.Literal != tt.message {
				t.Errorf("message = %q, want %q", tok.Literal, tt.message)
			}
			if tt.help == "" {
				if len(tok.Notes) != 0 {
					t.Errorf("len(Notes) = %d, want 0", len(tok.Notes))
				}
				return
			}
			if len(tok.Notes) != 1 {
				t.Fatalf("len(Notes) = %d, want 1", len(tok.Notes))
			}
			if tok.Notes[0].Kind != token.NoteHelp {
				t.Errorf("note kind = %v, want %v", tok.Notes[0].Kind, token.NoteHelp)
			}
			if tok.Notes[0].Message != tt.help {
				t.Errorf("help = %q, want %q", tok.Notes[0].Message, tt.help)
			}
		})
	}
}

func TestLexerDotsAcrossLines(t *testing.T) {
	toks := lexAll(".\n..")
	want := []string{
		"Unexpected `.`",
		"Unexpected `..` (use `...` for spread operator)",
	}
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	for i, message := range want {
		if toks[i].Kind != token.Error {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, token.Error)
		}
		if toks[i].Literal != message {
			t.Errorf("token %d: message = %q, want %q", i, toks[i].Literal, message)
		}
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []string{
		`""`,
		`"hello"`,
		`"hello world"`,
		`"with \"escapes\""`,
		`"unicode é"`,
		`"""block"""`,
		`"""multi
line"""`,
		`"""escaped \""" quote"""`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			toks := lexAll(input)
			if len(toks) != 2 {
				t.Fatalf("got %d tokens, want 2", len(toks))
			}
			if toks[0].Kind != token.StringValue {
				t.Errorf("Kind = %v, want %v", toks[0].Kind, token.StringValue)
			}
			if toks[0].Literal != input {
				t.Errorf("Literal = %q, want %q", toks[0].Literal, input)
			}
		})
	}
}

func TestLexerUnterminatedStringAtEOF(t *testing.T) {
	tok := lexFirst(`"abc`)
	if tok.Kind != token.Error {
		t.Fatalf("Kind = %v, want %v", tok.Kind, token.Error)
	}
	if tok.Literal != "Unterminated string literal" {
		t.Errorf("message = %q", tok.Literal)
	}
	if len(tok.Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(tok.Notes))
	}
	if tok.Notes[0].Message != "String started here" || tok.Notes[0].Span == nil {
		t.Errorf("note 0 = %q (span %v)", tok.Notes[0].Message, tok.Notes[0].Span)
	}
	if tok.Notes[1].Kind != token.NoteHelp || tok.Notes[1].Message != "Add closing `\"`" {
		t.Errorf("note 1 = %q", tok.Notes[1].Message)
	}
}

func TestLexerUnterminatedStringAtNewline(t *testing.T) {
	toks := lexAll("\"ab\ncd\"")
	if toks[0].Kind != token.Error {
		t.Fatalf("Kind = %v, want %v", toks[0].Kind, token.Error)
	}
	if toks[0].Literal != "Unterminated string literal" {
		t.Errorf("message = %q", toks[0].Literal)
	}
	if len(toks[0].Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(toks[0].Notes))
	}
	if toks[0].Notes[0].Message != "Single-line strings cannot contain unescaped newlines" {
		t.Errorf("note 0 = %q", toks[0].Notes[0].Message)
	}
	if toks[0].Notes[1].Kind != token.NoteHelp {
		t.Errorf("note 1 kind = %v, want %v", toks[0].Notes[1].Kind, token.NoteHelp)
	}
	// Span swallows the newline so line 2 starts clean.
	if toks[0].Span.End.Line != 1 || toks[0].Span.End.Column != 0 {
		t.Errorf("End = %d:%d, want 1:0", toks[0].Span.End.Line, toks[0].Span.End.Column)
	}
	if toks[1].Kind != token.Name || toks[1].Literal != "cd" {
		t.Errorf("next token = %v %q, want Name \"cd\"", toks[1].Kind, toks[1].Literal)
	}
}

func TestLexerUnterminatedBlockString(t *testing.T) {
	tok := lexFirst(`"""abc`)
	if tok.Kind != token.Error {
		t.Fatalf("Kind = %v, want %v", tok.Kind, token.Error)
	}
	if tok.Literal != "Unterminated block string" {
		t.Errorf("message = %q", tok.Literal)
	}
	if len(tok.Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(tok.Notes))
	}
	if tok.Notes[0].Message != "Block string started here" || tok.Notes[0].Span == nil {
		t.Errorf("note 0 = %q (span %v)", tok.Notes[0].Message, tok.Notes[0].Span)
	}
	if tok.Notes[1].Message != "Add closing `\"\"\"`" {
		t.Errorf("note 1 = %q", tok.Notes[1].Message)
	}
}

func TestLexerCommaTrivia(t *testing.T) {
	toks := lexAll("a, b")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	if len(toks[0].Trivia) != 0 {
		t.Errorf("token 0: len(Trivia) = %d, want 0", len(toks[0].Trivia))
	}
	if len(toks[1].Trivia) != 1 {
		t.Fatalf("token 1: len(Trivia) = %d, want 1", len(toks[1].Trivia))
	}
	tr := toks[1].Trivia[0]
	if tr.Kind != token.TriviaComma {
		t.Errorf("trivia kind = %v, want %v", tr.Kind, token.TriviaComma)
	}
	if tr.Span.Start.ByteOffset != 1 || tr.Span.End.ByteOffset != 2 {
		t.Errorf("trivia span = %v", tr.Span)
	}
}

func TestLexerCommentTrivia(t *testing.T) {
	toks := lexAll("# header comment\nname")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if len(toks[0].Trivia) != 1 {
		t.Fatalf("len(Trivia) = %d, want 1", len(toks[0].Trivia))
	}
	tr := toks[0].Trivia[0]
	if tr.Kind != token.TriviaComment {
		t.Errorf("trivia kind = %v, want %v", tr.Kind, token.TriviaComment)
	}
	if tr.Text != " header comment" {
		t.Errorf("Text = %q, want %q", tr.Text, " header comment")
	}
	if tr.Span.Start.ByteOffset != 0 || tr.Span.End.ByteOffset != 16 {
		t.Errorf("trivia span = %v", tr.Span)
	}
}

func TestLexerTrailingTriviaOnEOF(t *testing.T) {
	toks := lexAll("x,\n# trailing")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	eof := toks[1]
	if eof.Kind != token.EOF {
		t.Fatalf("Kind = %v, want %v", eof.Kind, token.EOF)
	}
	if len(eof.Trivia) != 2 {
		t.Fatalf("len(Trivia) = %d, want 2", len(eof.Trivia))
	}
	if eof.Trivia[0].Kind != token.TriviaComma {
		t.Errorf("trivia 0 kind = %v, want %v", eof.Trivia[0].Kind, token.TriviaComma)
	}
	if eof.Trivia[1].Kind != token.TriviaComment || eof.Trivia[1].Text != " trailing" {
		t.Errorf("trivia 1 = %v %q", eof.Trivia[1].Kind, eof.Trivia[1].Text)
	}
}

func TestLexerPositions(t *testing.T) {
	toks := lexAll("foo {\n  bar\n}")
	want := []struct {
		kind       token.Kind
		start, end token.SourcePosition
	}{
		{token.Name, token.SourcePosition{Line: 0, Column: 0, ColumnUTF16: 0, ByteOffset: 0}, token.SourcePosition{Line: 0, Column: 3, ColumnUTF16: 3, ByteOffset: 3}},
		{token.BraceOpen, token.SourcePosition{Line: 0, Column: 4, ColumnUTF16: 4, ByteOffset: 4}, token.SourcePosition{Line: 0, Column: 5, ColumnUTF16: 5, ByteOffset: 5}},
		{token.Name, token.SourcePosition{Line: 1, Column: 2, ColumnUTF16: 2, ByteOffset: 8}, token.SourcePosition{Line: 1, Column: 5, ColumnUTF16: 5, ByteOffset: 11}},
		{token.BraceClose, token.SourcePosition{Line: 2, Column: 0, ColumnUTF16: 0, ByteOffset: 12}, token.SourcePosition{Line: 2, Column: 1, ColumnUTF16: 1, ByteOffset: 13}},
		{token.EOF, token.SourcePosition{Line: 2, Column: 1, ColumnUTF16: 1, ByteOffset: 13}, token.SourcePosition{Line: 2, Column: 1, ColumnUTF16: 1, ByteOffset: 13}},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tt := range want {
		if toks[i].Kind != tt.kind {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, tt.kind)
		}
		if toks[i].Span.Start != tt.start {
			t.Errorf("token %d: Start = %+v, want %+v", i, toks[i].Span.Start, tt.start)
		}
		if toks[i].Span.End != tt.end {
			t.Errorf("token %d: End = %+v, want %+v", i, toks[i].Span.End, tt.end)
		}
	}
}

func TestLexerCRLF(t *testing.T) {
	toks := lexAll("a\r\nb\rc")
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
	b := toks[1]
	if b.Span.Start.Line != 1 || b.Span.Start.Column != 0 || b.Span.Start.ByteOffset != 3 {
		t.Errorf("b starts at %+v", b.Span.Start)
	}
	c := toks[2]
	if c.Span.Start.Line != 2 || c.Span.Start.Column != 0 || c.Span.Start.ByteOffset != 5 {
		t.Errorf("c starts at %+v", c.Span.Start)
	}
}

func TestLexerUTF16Columns(t *testing.T) {
	// 🎉 is one code point, two UTF-16 units, four bytes.
	toks := lexAll("\"🎉\" x")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	str := toks[0]
	if str.Span.End.Column != 3 || str.Span.End.ColumnUTF16 != 4 || str.Span.End.ByteOffset != 6 {
		t.Errorf("string End = %+v", str.Span.End)
	}
	x := toks[1]
	if x.Span.Start.Column != 4 || x.Span.Start.ColumnUTF16 != 5 || x.Span.Start.ByteOffset != 7 {
		t.Errorf("x Start = %+v", x.Span.Start)
	}
}

func TestLexerBOM(t *testing.T) {
	toks := lexAll("\uFEFFquery")
	if toks[0].Kind != token.Name {
		t.Fatalf("Kind = %v, want %v", toks[0].Kind, token.Name)
	}
	start := toks[0].Span.Start
	if start.Line != 0 || start.Column != 1 || start.ByteOffset != 3 {
		t.Errorf("Start = %+v", start)
	}
}

func TestLexerInvalidCharacters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"semicolon", ";", "Unexpected character `;`"},
		{"tilde", "~", "Unexpected character `~`"},
		{"emoji", "🎉", "Unexpected character `🎉`"},
		{"nul", "\x00", "Unexpected character `\x00` (U+0000: NULL)"},
		{"bell", "\a", "Unexpected character `\a` (U+0007: BELL)"},
		{"vertical tab", "\v", "Unexpected character `\v` (U+000B: VERTICAL TAB)"},
		{"nbsp", "\u00a0", "Unexpected character `\u00a0` (U+00A0: NO-BREAK SPACE)"},
		{"line separator", "\u2028", "Unexpected character `\u2028` (U+2028: LINE SEPARATOR)"},
		{"zero width space", "\u200b", "Unexpected character `\u200b` (U+200B: ZERO WIDTH SPACE)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := lexFirst(tt.input)
			if tok.Kind != token.Error {
				t.Fatalf("Kind = %v, want %v", tok.Kind, token.Error)
			}
			if tok.Literal != tt.message {
				t.Errorf("message = %q, want %q", tok.Literal, tt.message)
			}
		})
	}
}

func TestLexerKindSequence(t *testing.T) {
	input := `query GetUser($id: ID!) {
  user(id: $id) {
    ...userFields
  }
}`
	want := []token.Kind{
		token.Name, token.Name, token.ParenOpen, token.Dollar, token.Name,
		token.Colon, token.Name, token.Bang, token.ParenClose, token.BraceOpen,
		token.Name, token.ParenOpen, token.Name, token.Colon, token.Dollar,
		token.Name, token.ParenClose, token.BraceOpen, token.Ellipsis,
		token.Name, token.BraceClose, token.BraceClose, token.EOF,
	}

	toks := lexAll(input)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, kind)
		}
	}
}

func TestLexerEOF(t *testing.T) {
	l := New(nil)
	tok, ok := l.Next()
	if !ok {
		t.Fatal("first Next() not ok")
	}
	if tok.Kind != token.EOF {
		t.Errorf("Kind = %v, want %v", tok.Kind, token.EOF)
	}
	if !tok.Span.ZeroWidth() {
		t.Errorf("Span = %v, want zero width", tok.Span)
	}
	if _, ok := l.Next(); ok {
		t.Error("Next() after EOF ok, want exhausted")
	}
}

func TestLexerErrorRecovery(t *testing.T) {
	toks := lexAll("a ; b ~ c")
	want := []token.Kind{
		token.Name, token.Error, token.Name, token.Error, token.Name, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, kind := range want {
		if toks[i].Kind != kind {
			t.Errorf("token %d: Kind = %v, want %v", i, toks[i].Kind, kind)
		}
	}
}
