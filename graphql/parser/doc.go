// Package parser provides a recursive-descent, error-tolerant parser for
// GraphQL documents.
//
// # Overview
//
// The parser consumes a token stream and produces a syntax-preserving AST
// (package graphql/ast) together with structured diagnostics. It never
// stops at the first error: each failed construct records a diagnostic,
// the parser resynchronizes at the next plausible boundary, and parsing
// continues, so one pass reports every independent problem in a document.
//
// # Architecture
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────┐
//	│ token.Source │────▶│ TokenStream  │────▶│   Parser     │
//	│ (lexer, ...) │     │ (lookahead)  │     │ (grammar)    │
//	└──────────────┘     └──────────────┘     └──────┬───────┘
//	                                                 │
//	                                    ┌────────────┴───────────┐
//	                                    ▼                        ▼
//	                             ┌──────────────┐        ┌──────────────┐
//	                             │ ast.Document │        │ Diagnostics  │
//	                             └──────────────┘        └──────────────┘
//
// Any token.Source can drive the parser: the text lexer
// (graphql/lexer.Lexer), the host-token adapter
// (graphql/lexer.ScannerSource), or a test fixture. The parser itself
// never sees source text, only tokens.
//
// # Entry Points
//
// A Parser is single-use: construct one per document, then call exactly
// one of the parse methods.
//
//	// New parses source text through the text lexer.
//	func New(input []byte) *Parser
//
//	// FromTokenSource parses an already-tokenized stream.
//	func FromTokenSource(src token.Source) *Parser
//
//	// One call per document kind. Each returns either a complete
//	// document with a nil error, or a nil document with non-empty
//	// Diagnostics. Partial trees are never returned.
//	func (p *Parser) ParseSchemaDocument() (*ast.Document, error)
//	func (p *Parser) ParseExecutableDocument() (*ast.Document, error)
//	func (p *Parser) ParseMixedDocument() (*ast.Document, error)
//
// GraphQL keywords are contextual: `type`, `query`, `on` and the rest
// are ordinary Name tokens, and the parser decides their meaning from
// grammatical position alone. They all remain usable as names.
//
// # Error Recovery
//
// Recovery strategies, outermost first:
//
//  1. Definition-level: skip tokens until the next definition-start
//     keyword (`type`, `enum`, `query`, ...) or end of input. A keyword
//     counts only when its following token fits (e.g. `type` then a
//     name), so field names like `type: String` are not mistaken for
//     definitions.
//  2. Item-level: inside brace-delimited bodies (selection sets, field
//     lists, enum bodies), skip to the closing `}` or to a token that
//     plausibly starts the next item, so one bad field yields one
//     diagnostic instead of a cascade.
//  3. Value-level: inside list values, skip to the next value start or
//     the closing `]`.
//
// Every recovery step either consumes at least one token or stops at
// end of input, so parsing terminates on any input.
//
// # Diagnostics
//
// Each ParseError carries a message, a primary span, an ErrorKind, and
// ordered notes (general remarks, help suggestions, GraphQL spec
// references). Detail renders a caret snippet:
//
//	error: unclosed `{`
//	  --> schema.graphql:3:1
//	   |
//	 3 |   ACTIVE
//	   |         ^
//	   = note: opening `{` in enum definition here
//	      1 | enum Status {
//	        |             -
//
// # Thread Safety
//
// A Parser instance is not safe for concurrent use and is consumed by
// its parse call. AST nodes are immutable after parsing and freely
// shareable.
//
// # Example Usage
//
//	p := parser.New([]byte("type Query { hello: String }"))
//	doc, err := p.ParseSchemaDocument()
//	if err != nil {
//	    var diags parser.Diagnostics
//	    if errors.As(err, &diags) {
//	        for _, d := range diags {
//	            fmt.Println(d.Oneline("schema.graphql"))
//	        }
//	    }
//	    return
//	}
//	_ = doc
package parser
