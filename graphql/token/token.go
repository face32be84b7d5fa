package token

type Kind int

const (
	EOF Kind = iota
	Error

	// Punctuators
	Ampersand
	At
	Bang
	BraceClose
	BraceOpen
	BracketClose
	BracketOpen
	Colon
	Dollar
	Ellipsis
	Equals
	ParenClose
	ParenOpen
	Pipe

	// Names and literals
	Name
	IntValue
	FloatValue
	StringValue
	True
	False
	Null
)

var kindNames = map[Kind]string{
	EOF:          "end of input",
	Error:        "error",
	Ampersand:    "&",
	At:           "@",
	Bang:         "!",
	BraceClose:   "}",
	BraceOpen:    "{",
	BracketClose: "]",
	BracketOpen:  "[",
	Colon:        ":",
	Dollar:       "$",
	Ellipsis:     "...",
	Equals:       "=",
	ParenClose:   ")",
	ParenOpen:    "(",
	Pipe:         "|",
	Name:         "name",
	IntValue:     "integer",
	FloatValue:   "float",
	StringValue:  "string",
	True:         "true",
	False:        "false",
	Null:         "null",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) IsPunctuator() bool {
	return k >= Ampersand && k <= Pipe
}

type TriviaKind int

const (
	TriviaComma TriviaKind = iota
	TriviaComment
)

// Trivia is source text with no grammatical meaning: commas, and comments
// when the source is a text lexer. Trivia attaches to the token that
// follows it; trivia after the last token attaches to the EOF token.
type Trivia struct {
	Kind TriviaKind
	Text string // comment text after '#'; empty for commas
	Span Span
}

type NoteKind int

const (
	NoteGeneral NoteKind = iota
	NoteHelp
	NoteSpec
)

// Note is supplementary detail attached to an Error token or a parse
// error: plain context, a suggested fix, or a GraphQL spec reference.
// A note may point at a secondary location.
type Note struct {
	Kind    NoteKind
	Message string
	Span    *Span
}

// Token is one lexical element of a GraphQL document. Literal holds the
// raw, uncooked source text for Name, IntValue, FloatValue and
// StringValue tokens, and the error message for Error tokens.
type Token struct {
	Kind    Kind
	Span    Span
	Literal string
	Trivia  []Trivia
	Notes   []Note
}

// Source produces a finite token sequence ending with exactly one EOF
// token. After the EOF token has been returned, ok is false on every
// subsequent call. The parser consumes tokens only through this contract
// and never sees source text.
type Source interface {
	Next() (tok Token, ok bool)
}
