package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/tako/graphql/token"
)

// ErrorKind categorizes a parse error beyond its message, so tooling
// can react to classes of failure without string matching.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedEOF
	LexerError
	UnclosedDelimiter
	MismatchedDelimiter
	InvalidValue
	InvalidDirectiveLocation
	ReservedName
	WrongDocumentKind
	InvalidEmptyConstruct
	InvalidSyntax
	UnsupportedFeature
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedToken:          "unexpected token",
	UnexpectedEOF:            "unexpected end of input",
	LexerError:               "lexer error",
	UnclosedDelimiter:        "unclosed delimiter",
	MismatchedDelimiter:      "mismatched delimiter",
	InvalidValue:             "invalid value",
	InvalidDirectiveLocation: "invalid directive location",
	ReservedName:             "reserved name",
	WrongDocumentKind:        "wrong document kind",
	InvalidEmptyConstruct:    "invalid empty construct",
	InvalidSyntax:            "invalid syntax",
	UnsupportedFeature:       "unsupported feature",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseError is one diagnostic produced during parsing. Message and
// Span always hold the primary description and location. The remaining
// fields are populated per kind: Expected/Found for UnexpectedToken and
// UnexpectedEOF, Delimiter and OpeningSpan for UnclosedDelimiter, and
// Construct for InvalidEmptyConstruct. Notes carry secondary context
// (general remarks, suggested fixes, and GraphQL spec references), in
// the order they should be shown.
type ParseError struct {
	Message     string
	Span        token.Span
	Kind        ErrorKind
	Notes       []token.Note
	Expected    []string
	Found       string
	Delimiter   string
	OpeningSpan *token.Span
	Construct   string
}

func NewError(message string, span token.Span, kind ErrorKind) *ParseError {
	return &ParseError{Message: message, Span: span, Kind: kind}
}

func (e *ParseError) AddNote(message string) {
	e.Notes = append(e.Notes, token.Note{Kind: token.NoteGeneral, Message: message})
}

func (e *ParseError) AddNoteWithSpan(message string, span token.Span) {
	e.Notes = append(e.Notes, token.Note{Kind: token.NoteGeneral, Message: message, Span: &span})
}

func (e *ParseError) AddHelp(message string) {
	e.Notes = append(e.Notes, token.Note{Kind: token.NoteHelp, Message: message})
}

func (e *ParseError) AddSpec(url string) {
	e.Notes = append(e.Notes, token.Note{Kind: token.NoteSpec, Message: url})
}

// Error returns the one-line form with the placeholder file name.
func (e *ParseError) Error() string {
	return e.Oneline("")
}

// Oneline formats the error as "file:line:col: error: message" with
// 1-based line and column. An empty filename renders as "<input>".
func (e *ParseError) Oneline(filename string) string {
	if filename == "" {
		filename = "<input>"
	}
	line := e.Span.Start.Line + 1
	column := e.Span.Start.Column + 1
	return fmt.Sprintf("%s:%d:%d: error: %s", filename, line, column, e.Message)
}

// Detail formats the error as a multi-line diagnostic:
//
//	error: expected `:`, found `String`
//	  --> schema.graphql:5:12
//	   |
//	 5 |     userName String
//	   |              ^^^^^^
//	   = help: did you mean `userName: String`?
//
// A nil source omits the snippet but keeps the location and notes.
// Notes with their own span get an indented snippet pointing at the
// secondary location.
func (e *ParseError) Detail(source []byte, filename string) string {
	var b strings.Builder

	b.WriteString("error: ")
	b.WriteString(e.Message)
	b.WriteByte('\n')

	if filename == "" {
		filename = "<input>"
	}
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", filename, e.Span.Start.Line+1, e.Span.Start.Column+1)

	if source != nil {
		e.writeSnippet(&b, source)
	}

	for _, note := range e.Notes {
		prefix := "note"
		switch note.Kind {
		case token.NoteHelp:
			prefix = "help"
		case token.NoteSpec:
			prefix = "spec"
		}
		fmt.Fprintf(&b, "   = %s: %s\n", prefix, note.Message)
		if note.Span != nil && source != nil {
			writeNoteSnippet(&b, source, *note.Span)
		}
	}

	return b.String()
}

func (e *ParseError) writeSnippet(b *strings.Builder, source []byte) {
	lines := sourceLines(source)
	lineNum := e.Span.Start.Line
	if lineNum >= len(lines) {
		return
	}

	content := lines[lineNum]
	display := lineNum + 1
	width := numberWidth(display)

	fmt.Fprintf(b, "%*s |\n", width, "")
	fmt.Fprintf(b, "%*d | %s\n", width, display, content)

	colStart := e.Span.Start.Column
	colEnd := e.Span.End.Column
	underline := 1
	if colEnd > colStart {
		underline = colEnd - colStart
	}
	fmt.Fprintf(b, "%*s | %*s%s\n", width, "", colStart, "", strings.Repeat("^", underline))
}

func writeNoteSnippet(b *strings.Builder, source []byte, span token.Span) {
	lines := sourceLines(source)
	lineNum := span.Start.Line
	if lineNum >= len(lines) {
		return
	}

	content := lines[lineNum]
	display := lineNum + 1
	width := numberWidth(display)

	fmt.Fprintf(b, "     %*d | %s\n", width, display, content)
	fmt.Fprintf(b, "     %*s | %*s-\n", width, "", span.Start.Column, "")
}

// sourceLines splits source into display lines: the trailing empty
// segment after a final newline is dropped, and a trailing CR on each
// line (CRLF endings) is stripped.
func sourceLines(source []byte) []string {
	lines := strings.Split(string(source), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// numberWidth returns the gutter width for a line number, two columns
// minimum.
func numberWidth(n int) int {
	width := len(fmt.Sprintf("%d", n))
	if width < 2 {
		width = 2
	}
	return width
}

// Diagnostics is the ordered collection of parse errors from one parse
// call. It implements error; parse entry points return it non-nil only
// when it is non-empty, so callers never see a typed nil.
type Diagnostics []*ParseError

func (d Diagnostics) Error() string {
	msgs := make([]string, len(d))
	for i, e := range d {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

func (d Diagnostics) HasErrors() bool {
	return len(d) > 0
}
