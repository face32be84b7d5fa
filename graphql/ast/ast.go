// Package ast defines a syntax-preserving AST for GraphQL documents.
//
// Every node carries a source span. Nodes that own punctuation or keyword
// tokens expose them through an optional Syntax record, kept separate from
// the semantic fields so that consumers which only care about meaning can
// ignore it while formatters and IDE tooling can reconstruct the exact
// source text.
package ast

import (
	"github.com/dhamidi/tako/graphql/token"
)

// Node is implemented by all AST nodes.
type Node interface {
	SourceSpan() token.Span
}

// Definition is a top-level definition in a document: an operation, a
// fragment, a schema definition or extension, a directive definition, or
// one of the type definitions and extensions.
type Definition interface {
	Node
	definitionNode()
}

// TypeDefinition is one of the six type definitions (scalar, object,
// interface, union, enum, input object). Every TypeDefinition is also a
// Definition.
type TypeDefinition interface {
	Definition
	typeDefinitionNode()
}

// TypeExtension is one of the six type extensions. Every TypeExtension is
// also a Definition.
type TypeExtension interface {
	Definition
	typeExtensionNode()
}

// Selection is an entry in a selection set: a field, a fragment spread, or
// an inline fragment.
type Selection interface {
	Node
	selectionNode()
}

// Value is a GraphQL input value literal.
type Value interface {
	Node
	valueNode()
}

// TypeAnnotation is a type reference: a named type or a list type, each
// with its own nullability.
type TypeAnnotation interface {
	Node
	typeAnnotationNode()
}

// AppendSource appends node's original source text to b by slicing source
// at the node's byte offsets. When source is nil it appends nothing: the
// AST records where text was, not the text itself.
func AppendSource(b []byte, node Node, source []byte) []byte {
	if source == nil {
		return b
	}
	span := node.SourceSpan()
	return append(b, source[span.Start.ByteOffset:span.End.ByteOffset]...)
}

// Source returns node's original source text as a string. See AppendSource.
func Source(node Node, source []byte) string {
	return string(AppendSource(nil, node, source))
}

// DelimiterPair is a matched pair of delimiter tokens (parentheses,
// brackets, or braces).
type DelimiterPair struct {
	Open  token.Token
	Close token.Token
}

// Document is the root node for any GraphQL document. A single document
// type covers executable, schema, and mixed documents; which definition
// kinds are permitted is the parser entry point's concern.
type Document struct {
	Definitions []Definition
	Span        token.Span
	Syntax      *DocumentSyntax
}

// DocumentSyntax holds trivia trailing the last definition, which would
// otherwise be lost.
type DocumentSyntax struct {
	TrailingTrivia []token.Trivia
}

// SchemaDefinitions returns only the type-system definitions and
// extensions in the document.
func (d *Document) SchemaDefinitions() []Definition {
	var defs []Definition
	for _, def := range d.Definitions {
		switch def.(type) {
		case *OperationDefinition, *FragmentDefinition:
		default:
			defs = append(defs, def)
		}
	}
	return defs
}

// ExecutableDefinitions returns only the operations and fragments in the
// document.
func (d *Document) ExecutableDefinitions() []Definition {
	var defs []Definition
	for _, def := range d.Definitions {
		switch def.(type) {
		case *OperationDefinition, *FragmentDefinition:
			defs = append(defs, def)
		}
	}
	return defs
}

func (d *Document) SourceSpan() token.Span { return d.Span }

// Name is a GraphQL identifier: a type name, field name, argument name,
// directive name, or enum value.
type Name struct {
	Value  string
	Span   token.Span
	Syntax *NameSyntax
}

type NameSyntax struct {
	Token token.Token
}

func (n *Name) SourceSpan() token.Span { return n.Span }
