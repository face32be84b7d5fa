package ast

import (
	"github.com/dhamidi/tako/graphql/token"
)

// IntValue is a GraphQL integer literal. The value is constrained to
// 32 bits; out-of-range literals are reported as diagnostics and never
// reach the AST.
type IntValue struct {
	Value  int32
	Span   token.Span
	Syntax *IntValueSyntax
}

type IntValueSyntax struct {
	Token token.Token
}

// FloatValue is a GraphQL float literal.
type FloatValue struct {
	Value  float64
	Span   token.Span
	Syntax *FloatValueSyntax
}

type FloatValueSyntax struct {
	Token token.Token
}

// StringValue holds the processed value of a string literal, after escape
// resolution and block-string indentation stripping. Block records whether
// the source used the `"""` form.
type StringValue struct {
	Value  string
	Block  bool
	Span   token.Span
	Syntax *StringValueSyntax
}

type StringValueSyntax struct {
	Token token.Token
}

// BooleanValue is `true` or `false`.
type BooleanValue struct {
	Value  bool
	Span   token.Span
	Syntax *BooleanValueSyntax
}

type BooleanValueSyntax struct {
	Token token.Token
}

// NullValue is the `null` literal.
type NullValue struct {
	Span   token.Span
	Syntax *NullValueSyntax
}

type NullValueSyntax struct {
	Token token.Token
}

// EnumValue is a bare name used in value position.
type EnumValue struct {
	Value  string
	Span   token.Span
	Syntax *EnumValueSyntax
}

type EnumValueSyntax struct {
	Token token.Token
}

// ListValue is a bracketed list of values.
type ListValue struct {
	Values []Value
	Span   token.Span
	Syntax *ListValueSyntax
}

type ListValueSyntax struct {
	Brackets DelimiterPair
}

// ObjectValue is a braced list of name:value fields, in source order.
type ObjectValue struct {
	Fields []*ObjectField
	Span   token.Span
	Syntax *ObjectValueSyntax
}

type ObjectValueSyntax struct {
	Braces DelimiterPair
}

// ObjectField is one `name: value` entry of an object value.
type ObjectField struct {
	Name   *Name
	Value  Value
	Span   token.Span
	Syntax *ObjectFieldSyntax
}

type ObjectFieldSyntax struct {
	Colon token.Token
}

// VariableValue is a `$name` reference.
type VariableValue struct {
	Name   *Name
	Span   token.Span
	Syntax *VariableValueSyntax
}

type VariableValueSyntax struct {
	Dollar token.Token
}

// Argument is one `name: value` entry of an argument list.
type Argument struct {
	Name   *Name
	Value  Value
	Span   token.Span
	Syntax *ArgumentSyntax
}

type ArgumentSyntax struct {
	Colon token.Token
}

// DirectiveAnnotation is a `@name(args)` use site. Directive definitions
// are a separate node.
type DirectiveAnnotation struct {
	Name      *Name
	Arguments []*Argument
	Span      token.Span
	Syntax    *DirectiveAnnotationSyntax
}

type DirectiveAnnotationSyntax struct {
	AtSign         token.Token
	ArgumentParens *DelimiterPair
}

func (v *IntValue) SourceSpan() token.Span            { return v.Span }
func (v *FloatValue) SourceSpan() token.Span          { return v.Span }
func (v *StringValue) SourceSpan() token.Span         { return v.Span }
func (v *BooleanValue) SourceSpan() token.Span        { return v.Span }
func (v *NullValue) SourceSpan() token.Span           { return v.Span }
func (v *EnumValue) SourceSpan() token.Span           { return v.Span }
func (v *ListValue) SourceSpan() token.Span           { return v.Span }
func (v *ObjectValue) SourceSpan() token.Span         { return v.Span }
func (f *ObjectField) SourceSpan() token.Span         { return f.Span }
func (v *VariableValue) SourceSpan() token.Span       { return v.Span }
func (a *Argument) SourceSpan() token.Span            { return a.Span }
func (d *DirectiveAnnotation) SourceSpan() token.Span { return d.Span }

func (*IntValue) valueNode()      {}
func (*FloatValue) valueNode()    {}
func (*StringValue) valueNode()   {}
func (*BooleanValue) valueNode()  {}
func (*NullValue) valueNode()     {}
func (*EnumValue) valueNode()     {}
func (*ListValue) valueNode()     {}
func (*ObjectValue) valueNode()   {}
func (*VariableValue) valueNode() {}
