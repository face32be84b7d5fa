package parser

import (
	"fmt"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/lexer"
	"github.com/dhamidi/tako/graphql/token"
)

// Parser is a recursive-descent parser for GraphQL documents. It records
// diagnostics instead of stopping at the first error, resynchronizing at
// definition boundaries so one malformed definition does not hide errors
// elsewhere in the document.
//
// A Parser is single-use: each of the Parse methods consumes the token
// stream, so construct a fresh Parser per document.
type Parser struct {
	stream     *TokenStream
	errors     Diagnostics
	delimiters []openDelimiter
}

// New creates a parser that tokenizes input with the text lexer.
func New(input []byte) *Parser {
	return FromTokenSource(lexer.New(input))
}

// FromTokenSource creates a parser over an already-tokenized sequence,
// such as a host token adapter.
func FromTokenSource(src token.Source) *Parser {
	return &Parser{stream: NewTokenStream(src)}
}

// documentKind selects which top-level definitions a parse accepts and
// which synchronization points recovery may stop at.
type documentKind int

const (
	schemaDocument documentKind = iota
	executableDocument
	mixedDocument
)

// ParseSchemaDocument parses a type-system document: schema definitions,
// type definitions, directive definitions, and extensions. Operations and
// fragments are reported as WrongDocumentKind errors.
func (p *Parser) ParseSchemaDocument() (*ast.Document, error) {
	return p.parseDocument(schemaDocument)
}

// ParseExecutableDocument parses an executable document: operations
// (including the shorthand `{ ... }` form) and fragment definitions.
// Type-system definitions are reported as WrongDocumentKind errors.
func (p *Parser) ParseExecutableDocument() (*ast.Document, error) {
	return p.parseDocument(executableDocument)
}

// ParseMixedDocument parses a document that may contain both type-system
// and executable definitions.
func (p *Parser) ParseMixedDocument() (*ast.Document, error) {
	return p.parseDocument(mixedDocument)
}

func (p *Parser) parseDocument(kind documentKind) (*ast.Document, error) {
	var defs []ast.Definition
	for !p.stream.IsAtEnd() {
		def, ok := p.parseDefinitionItem(kind)
		if ok {
			defs = append(defs, def)
		} else {
			p.recoverToNextDefinition(kind)
		}
		p.stream.Compact()
	}
	eof := p.stream.Peek()
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return &ast.Document{
		Definitions: defs,
		Span:        documentSpan(eof),
		Syntax:      &ast.DocumentSyntax{TrailingTrivia: eof.Trivia},
	}, nil
}

// documentSpan runs from the start of the source to the end of the EOF
// token, so that slicing it reproduces the entire input including leading
// and trailing trivia.
func documentSpan(eof token.Token) token.Span {
	start := token.SourcePosition{}
	if !eof.Span.End.HasColumnUTF16() {
		start.ColumnUTF16 = token.NoColumnUTF16
	}
	return token.Span{Start: start, End: eof.Span.End}
}

func (p *Parser) parseDefinitionItem(kind documentKind) (ast.Definition, bool) {
	switch kind {
	case schemaDocument:
		return p.parseSchemaDefinitionItem()
	case executableDocument:
		return p.parseExecutableDefinitionItem()
	default:
		return p.parseMixedDefinitionItem()
	}
}

func (p *Parser) parseSchemaDefinitionItem() (ast.Definition, bool) {
	if tok := p.stream.Peek(); tok.Kind == token.Error {
		p.handleLexerError(tok)
		p.stream.Next()
		return nil, false
	}

	description := p.parseDescription()

	if tok := p.stream.Peek(); tok.Kind == token.Name {
		switch tok.Literal {
		case "schema":
			return p.parseSchemaDefinition(description)
		case "scalar":
			return p.parseScalarTypeDefinition(description)
		case "type":
			return p.parseObjectTypeDefinition(description)
		case "interface":
			return p.parseInterfaceTypeDefinition(description)
		case "union":
			return p.parseUnionTypeDefinition(description)
		case "enum":
			return p.parseEnumTypeDefinition(description)
		case "input":
			return p.parseInputObjectTypeDefinition(description)
		case "directive":
			return p.parseDirectiveDefinition(description)
		case "extend":
			// A description before `extend` has no node to attach to.
			return p.parseTypeExtension()
		case "query", "mutation", "subscription":
			p.recordWrongKind("operation definition", "schema document")
			return nil, false
		case "fragment":
			p.recordWrongKind("fragment definition", "schema document")
			return nil, false
		}
	}
	if p.stream.CheckPunctuator(token.BraceOpen) {
		p.recordWrongKind("operation definition", "schema document")
		return nil, false
	}

	p.unexpectedHere("schema definition",
		"type", "interface", "union", "enum", "scalar", "input", "directive", "schema", "extend")
	return nil, false
}

func (p *Parser) parseExecutableDefinitionItem() (ast.Definition, bool) {
	tok := p.stream.Peek()
	switch tok.Kind {
	case token.Error:
		p.handleLexerError(tok)
		p.stream.Next()
		return nil, false
	case token.BraceOpen:
		return p.parseOperationDefinition(nil)
	case token.Name:
		switch tok.Literal {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition(nil)
		case "fragment":
			return p.parseFragmentDefinition(nil)
		case "directive":
			p.recordWrongKind("directive definition", "executable document")
			return nil, false
		case "schema", "extend":
			p.recordWrongKind("schema definition", "executable document")
			return nil, false
		case "type", "interface", "union", "enum", "scalar", "input":
			p.recordWrongKind("type definition", "executable document")
			return nil, false
		}
	case token.StringValue:
		if p.nextIsTypeSystemKeyword() {
			p.record(NewError("type definition not allowed in executable document", tok.Span, WrongDocumentKind))
			p.stream.Next()
			p.skipWrongKindDefinition()
			return nil, false
		}
	}

	p.unexpectedHere("operation or fragment definition",
		"query", "mutation", "subscription", "fragment", "{")
	return nil, false
}

func (p *Parser) parseMixedDefinitionItem() (ast.Definition, bool) {
	if tok := p.stream.Peek(); tok.Kind == token.Error {
		p.handleLexerError(tok)
		p.stream.Next()
		return nil, false
	}

	description := p.parseDescription()

	if tok := p.stream.Peek(); tok.Kind == token.Name {
		switch tok.Literal {
		case "schema":
			return p.parseSchemaDefinition(description)
		case "scalar":
			return p.parseScalarTypeDefinition(description)
		case "type":
			return p.parseObjectTypeDefinition(description)
		case "interface":
			return p.parseInterfaceTypeDefinition(description)
		case "union":
			return p.parseUnionTypeDefinition(description)
		case "enum":
			return p.parseEnumTypeDefinition(description)
		case "input":
			return p.parseInputObjectTypeDefinition(description)
		case "directive":
			return p.parseDirectiveDefinition(description)
		case "extend":
			return p.parseTypeExtension()
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition(description)
		case "fragment":
			return p.parseFragmentDefinition(description)
		}
	}
	if p.stream.CheckPunctuator(token.BraceOpen) {
		return p.parseOperationDefinition(description)
	}

	p.unexpectedHere("definition", "type", "query", "fragment")
	return nil, false
}

// recordWrongKind reports a definition that is valid GraphQL but not
// permitted by the requested document kind, then consumes the whole
// definition so it produces exactly one diagnostic.
func (p *Parser) recordWrongKind(construct, doc string) {
	tok := p.stream.Peek()
	p.record(NewError(fmt.Sprintf("%s not allowed in %s", construct, doc), tok.Span, WrongDocumentKind))
	p.skipWrongKindDefinition()
}

// skipWrongKindDefinition consumes the definition starting at the front
// of the stream without parsing it.
func (p *Parser) skipWrongKindDefinition() {
	depth := 0
	switch tok := p.stream.Peek(); {
	case tok.Kind == token.BraceOpen:
		depth = 1
		p.stream.Next()
	case tok.Kind == token.Name && tok.Literal == "extend":
		p.stream.Next()
		if next := p.stream.Peek(); next.Kind == token.Name {
			switch next.Literal {
			case "schema", "scalar", "type", "interface", "union", "enum", "input":
				p.stream.Next()
			}
		}
	case tok.Kind == token.EOF:
		return
	default:
		p.stream.Next()
	}
	p.skipDefinitionBody(depth)
}

// skipDefinitionBody consumes tokens up to the next top-level definition
// start or end of input, tracking brace depth so keywords inside a body
// are not mistaken for new definitions.
func (p *Parser) skipDefinitionBody(depth int) {
	for {
		tok := p.stream.Peek()
		switch tok.Kind {
		case token.EOF:
			return
		case token.BraceOpen:
			depth++
			p.stream.Next()
		case token.BraceClose:
			depth--
			p.stream.Next()
			if depth <= 0 {
				return
			}
		case token.Name:
			if depth == 0 && p.looksLikeDefinitionStart(tok.Literal) {
				return
			}
			p.stream.Next()
		default:
			p.stream.Next()
		}
	}
}

// recoverToNextDefinition skips tokens until something that can start a
// new top-level definition. In executable and mixed documents `{` is a
// synchronization point (shorthand query); in schema documents it is just
// part of the broken definition and gets consumed.
func (p *Parser) recoverToNextDefinition(kind documentKind) {
loop:
	for {
		tok := p.stream.Peek()
		switch tok.Kind {
		case token.EOF:
			break loop
		case token.BraceOpen:
			if kind != schemaDocument {
				break loop
			}
			p.stream.Next()
		case token.Name:
			if p.looksLikeDefinitionStart(tok.Literal) {
				break loop
			}
			p.stream.Next()
		case token.StringValue:
			if p.nextIsTypeSystemKeyword() {
				break loop
			}
			p.stream.Next()
		default:
			p.stream.Next()
		}
	}
	p.delimiters = p.delimiters[:0]
}

// looksLikeDefinitionStart reports whether a keyword at the front of the
// stream plausibly begins a definition, judged by one token of lookahead.
// This keeps recovery from stopping at `type: String`, where `type` is a
// field name rather than a keyword.
func (p *Parser) looksLikeDefinitionStart(keyword string) bool {
	next := p.stream.PeekNth(1)
	switch keyword {
	case "type", "interface", "union", "enum", "scalar", "input":
		switch next.Kind {
		case token.Name, token.True, token.False, token.Null:
			return true
		}
		return false
	case "directive":
		return next.Kind == token.At
	case "schema":
		return next.Kind == token.BraceOpen || next.Kind == token.At
	case "extend":
		if next.Kind != token.Name {
			return false
		}
		switch next.Literal {
		case "type", "interface", "union", "enum", "scalar", "input", "schema":
			return true
		}
		return false
	case "query", "mutation", "subscription":
		switch next.Kind {
		case token.Name, token.True, token.False, token.Null, token.BraceOpen, token.ParenOpen, token.At:
			return true
		}
		return false
	case "fragment":
		switch next.Kind {
		case token.Name:
			return next.Literal != "on"
		case token.True, token.False, token.Null:
			return true
		}
		return false
	}
	return false
}

// nextIsTypeSystemKeyword reports whether the token after the current one
// is a type-system definition keyword, used to spot descriptions that
// belong to a definition.
func (p *Parser) nextIsTypeSystemKeyword() bool {
	next := p.stream.PeekNth(1)
	if next.Kind != token.Name {
		return false
	}
	switch next.Literal {
	case "type", "interface", "union", "enum", "scalar", "input", "directive", "schema", "extend":
		return true
	}
	return false
}

// delimiterContext names the construct an open delimiter belongs to, for
// unclosed-delimiter notes.
type delimiterContext int

const (
	inSchemaDefinition delimiterContext = iota
	inObjectTypeDefinition
	inInterfaceDefinition
	inEnumDefinition
	inInputObjectDefinition
	inSelectionSet
	inFieldArguments
	inDirectiveArguments
	inVariableDefinitions
	inListType
	inListValue
	inObjectValue
	inArgumentDefinitions
)

var delimiterContextNames = map[delimiterContext]string{
	inSchemaDefinition:      "schema definition",
	inObjectTypeDefinition:  "object type definition",
	inInterfaceDefinition:   "interface definition",
	inEnumDefinition:        "enum definition",
	inInputObjectDefinition: "input object definition",
	inSelectionSet:          "selection set",
	inFieldArguments:        "field arguments",
	inDirectiveArguments:    "directive arguments",
	inVariableDefinitions:   "variable definitions",
	inListType:              "list type annotation",
	inListValue:             "list value",
	inObjectValue:           "object value",
	inArgumentDefinitions:   "argument definitions",
}

func (c delimiterContext) description() string {
	return delimiterContextNames[c]
}

// constContext tracks whether the value being parsed may contain variable
// references, and names the construct for the error when it may not.
type constContext int

const (
	allowVariables constContext = iota
	variableDefaultValue
	directiveArgument
	inputDefaultValue
)

var constContextNames = map[constContext]string{
	variableDefaultValue: "variable default values",
	directiveArgument:    "directive arguments",
	inputDefaultValue:    "input field default values",
}

func (c constContext) description() string {
	return constContextNames[c]
}

type openDelimiter struct {
	kind    byte
	span    token.Span
	context delimiterContext
}

func (p *Parser) pushDelimiter(kind byte, span token.Span, ctx delimiterContext) {
	p.delimiters = append(p.delimiters, openDelimiter{kind: kind, span: span, context: ctx})
}

// popDelimiter removes the innermost open delimiter of the given kind.
// Entries above it belong to constructs that were abandoned during error
// recovery and are discarded with it.
func (p *Parser) popDelimiter(kind byte) (openDelimiter, bool) {
	for i := len(p.delimiters) - 1; i >= 0; i-- {
		if p.delimiters[i].kind == kind {
			d := p.delimiters[i]
			p.delimiters = p.delimiters[:i]
			return d, true
		}
	}
	return openDelimiter{}, false
}

// recordUnclosedBrace reports a `{ ... }` block that ran into the end of
// input, with a note pointing back at the opening brace.
func (p *Parser) recordUnclosedBrace() {
	err := NewError("unclosed `{`", p.stream.CurrentSpan(), UnclosedDelimiter)
	err.Delimiter = "{"
	if delim, ok := p.popDelimiter('{'); ok {
		err.OpeningSpan = &delim.span
		err.AddNoteWithSpan(fmt.Sprintf("opening `{` in %s here", delim.context.description()), delim.span)
	}
	p.record(err)
}

func (p *Parser) recordUnclosedParen() {
	err := NewError("unclosed `(`", p.stream.CurrentSpan(), UnclosedDelimiter)
	err.Delimiter = "("
	if delim, ok := p.popDelimiter('('); ok {
		err.OpeningSpan = &delim.span
		err.AddNoteWithSpan(fmt.Sprintf("opening `(` in %s here", delim.context.description()), delim.span)
	}
	p.record(err)
}

func (p *Parser) recordUnclosedBracket() {
	err := NewError("unclosed `[`", p.stream.CurrentSpan(), UnclosedDelimiter)
	err.Delimiter = "["
	if delim, ok := p.popDelimiter('['); ok {
		err.OpeningSpan = &delim.span
		err.AddNoteWithSpan("opening `[` here", delim.span)
	}
	p.record(err)
}

func (p *Parser) record(err *ParseError) {
	p.errors = append(p.errors, err)
}

// handleLexerError converts an Error token into a diagnostic, carrying
// over the notes the lexer attached.
func (p *Parser) handleLexerError(tok token.Token) {
	p.record(&ParseError{
		Message: tok.Literal,
		Span:    tok.Span,
		Kind:    LexerError,
		Notes:   tok.Notes,
	})
}

// unexpectedHere records an error for the token at the front of the
// stream: UnexpectedEOF when the input ended, UnexpectedToken otherwise.
func (p *Parser) unexpectedHere(what string, expected ...string) {
	tok := p.stream.Peek()
	if tok.Kind == token.EOF {
		err := NewError("expected "+what, p.stream.CurrentSpan(), UnexpectedEOF)
		err.Expected = expected
		p.record(err)
		return
	}
	found := tokenDisplay(tok)
	err := NewError(fmt.Sprintf("expected %s, found `%s`", what, found), tok.Span, UnexpectedToken)
	err.Expected = expected
	err.Found = found
	p.record(err)
}

// expect consumes and returns the next token when it has the given kind,
// and records an error otherwise.
func (p *Parser) expect(kind token.Kind) (token.Token, bool) {
	tok := p.stream.Peek()
	if tok.Kind == kind {
		p.stream.Next()
		return tok, true
	}
	p.unexpectedHere("`"+kind.String()+"`", kind.String())
	return token.Token{}, false
}

// expectName consumes a name token. The boolean keywords `true`, `false`,
// and `null` are lexed as their own kinds but remain valid names in every
// name position.
func (p *Parser) expectName() (token.Token, bool) {
	tok := p.stream.Peek()
	switch tok.Kind {
	case token.Name, token.True, token.False, token.Null:
		p.stream.Next()
		return tok, true
	}
	p.unexpectedHere("name", "name")
	return token.Token{}, false
}

// expectKeyword consumes a Name token with exactly the given text.
// Contextual keywords are ordinary names, so this is a literal match, not
// a token kind.
func (p *Parser) expectKeyword(keyword string) (token.Token, bool) {
	tok := p.stream.Peek()
	if tok.Kind == token.Name && tok.Literal == keyword {
		p.stream.Next()
		return tok, true
	}
	p.unexpectedHere("`"+keyword+"`", keyword)
	return token.Token{}, false
}

// tokenDisplay renders a token for the `found` part of an error message.
func tokenDisplay(tok token.Token) string {
	switch tok.Kind {
	case token.Name, token.IntValue, token.FloatValue:
		return tok.Literal
	case token.StringValue:
		return "string"
	case token.Error:
		return "tokenization error: " + tok.Literal
	default:
		return tok.Kind.String()
	}
}

// nameText returns the identifier text of a name-like token. The keyword
// kinds carry fixed text, so token sources need not set Literal on them.
func nameText(tok token.Token) string {
	switch tok.Kind {
	case token.True:
		return "true"
	case token.False:
		return "false"
	case token.Null:
		return "null"
	}
	return tok.Literal
}

// nameNode builds a Name node from a consumed name token.
func nameNode(tok token.Token) *ast.Name {
	return &ast.Name{
		Value:  nameText(tok),
		Span:   tok.Span,
		Syntax: &ast.NameSyntax{Token: tok},
	}
}
