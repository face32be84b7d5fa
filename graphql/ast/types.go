package ast

import (
	"github.com/dhamidi/tako/graphql/token"
)

// Nullability is the nullability of a type reference. Keeping it a flag on
// each annotation node, instead of a wrapping NonNull node, makes redundant
// wrapping like `String!!` unrepresentable. Nested non-null such as
// `[String!]!` still works: the inner `!` belongs to the element type, the
// outer one to the list.
type Nullability struct {
	NonNull bool
	// Bang is the `!` token when syntax detail is retained.
	Bang *token.Token
}

// NamedTypeAnnotation is a named type reference such as `String` or
// `String!`. The span covers the `!` when present. There is no syntax
// record: the name token lives in Name's syntax and the `!` in
// Nullability.
type NamedTypeAnnotation struct {
	Name        *Name
	Nullability Nullability
	Span        token.Span
}

// ListTypeAnnotation is a list type reference such as `[String]` or
// `[String!]!`.
type ListTypeAnnotation struct {
	ElementType TypeAnnotation
	Nullability Nullability
	Span        token.Span
	Syntax      *ListTypeAnnotationSyntax
}

type ListTypeAnnotationSyntax struct {
	Brackets DelimiterPair
}

func (t *NamedTypeAnnotation) SourceSpan() token.Span { return t.Span }
func (t *ListTypeAnnotation) SourceSpan() token.Span  { return t.Span }

func (*NamedTypeAnnotation) typeAnnotationNode() {}
func (*ListTypeAnnotation) typeAnnotationNode()  {}
