package ast

import (
	"github.com/dhamidi/tako/graphql/token"
)

// OperationKind is the kind of a GraphQL operation.
type OperationKind int

const (
	OperationQuery OperationKind = iota
	OperationMutation
	OperationSubscription
)

var operationKindNames = map[OperationKind]string{
	OperationQuery:        "query",
	OperationMutation:     "mutation",
	OperationSubscription: "subscription",
}

func (k OperationKind) String() string {
	if name, ok := operationKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// OperationDefinition is a query, mutation, or subscription, including the
// shorthand form (a bare selection set).
type OperationDefinition struct {
	Description         *StringValue
	OperationKind       OperationKind
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*DirectiveAnnotation
	SelectionSet        *SelectionSet
	Span                token.Span
	Syntax              *OperationDefinitionSyntax
}

type OperationDefinitionSyntax struct {
	// OperationKeyword is nil for shorthand queries.
	OperationKeyword         *token.Token
	VariableDefinitionParens *DelimiterPair
}

// VariableDefinition declares one operation variable: `$name: Type`,
// optionally with a default value and directives.
type VariableDefinition struct {
	Description  *StringValue
	Variable     *Name
	Type         TypeAnnotation
	DefaultValue Value
	Directives   []*DirectiveAnnotation
	Span         token.Span
	Syntax       *VariableDefinitionSyntax
}

type VariableDefinitionSyntax struct {
	Dollar token.Token
	Colon  token.Token
	Equals *token.Token
}

// FragmentDefinition is a named fragment with a type condition.
type FragmentDefinition struct {
	Description   *StringValue
	Name          *Name
	TypeCondition *TypeCondition
	Directives    []*DirectiveAnnotation
	SelectionSet  *SelectionSet
	Span          token.Span
	Syntax        *FragmentDefinitionSyntax
}

type FragmentDefinitionSyntax struct {
	FragmentKeyword token.Token
	OnKeyword       token.Token
}

// TypeCondition is the `on TypeName` clause of a fragment.
type TypeCondition struct {
	NamedType *Name
	Span      token.Span
	Syntax    *TypeConditionSyntax
}

type TypeConditionSyntax struct {
	OnKeyword token.Token
}

// SelectionSet is a braced list of selections.
type SelectionSet struct {
	Selections []Selection
	Span       token.Span
	Syntax     *SelectionSetSyntax
}

type SelectionSetSyntax struct {
	Braces DelimiterPair
}

// Field is a single field selection, optionally aliased, with arguments,
// directives, and a nested selection set.
type Field struct {
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*DirectiveAnnotation
	SelectionSet *SelectionSet
	Span         token.Span
	Syntax       *FieldSyntax
}

type FieldSyntax struct {
	// AliasColon is nil when no alias is present.
	AliasColon     *token.Token
	ArgumentParens *DelimiterPair
}

// FragmentSpread is `...FragmentName` with optional directives.
type FragmentSpread struct {
	Name       *Name
	Directives []*DirectiveAnnotation
	Span       token.Span
	Syntax     *FragmentSpreadSyntax
}

type FragmentSpreadSyntax struct {
	Ellipsis token.Token
}

// InlineFragment is `... on TypeName { ... }`; the type condition is
// optional.
type InlineFragment struct {
	TypeCondition *TypeCondition
	Directives    []*DirectiveAnnotation
	SelectionSet  *SelectionSet
	Span          token.Span
	Syntax        *InlineFragmentSyntax
}

type InlineFragmentSyntax struct {
	Ellipsis token.Token
}

func (d *OperationDefinition) SourceSpan() token.Span { return d.Span }
func (d *VariableDefinition) SourceSpan() token.Span  { return d.Span }
func (d *FragmentDefinition) SourceSpan() token.Span  { return d.Span }
func (c *TypeCondition) SourceSpan() token.Span       { return c.Span }
func (s *SelectionSet) SourceSpan() token.Span        { return s.Span }
func (f *Field) SourceSpan() token.Span               { return f.Span }
func (f *FragmentSpread) SourceSpan() token.Span      { return f.Span }
func (f *InlineFragment) SourceSpan() token.Span      { return f.Span }

func (*OperationDefinition) definitionNode() {}
func (*FragmentDefinition) definitionNode()  {}

func (*Field) selectionNode()          {}
func (*FragmentSpread) selectionNode() {}
func (*InlineFragment) selectionNode() {}
