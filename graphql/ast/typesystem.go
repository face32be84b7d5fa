package ast

import (
	"github.com/dhamidi/tako/graphql/token"
)

// SchemaDefinition names the root operation types of a schema.
type SchemaDefinition struct {
	Description    *StringValue
	Directives     []*DirectiveAnnotation
	RootOperations []*RootOperationTypeDefinition
	Span           token.Span
	Syntax         *SchemaDefinitionSyntax
}

type SchemaDefinitionSyntax struct {
	SchemaKeyword token.Token
	Braces        DelimiterPair
}

// SchemaExtension is `extend schema`, with directives and/or additional
// root operation types.
type SchemaExtension struct {
	Directives     []*DirectiveAnnotation
	RootOperations []*RootOperationTypeDefinition
	Span           token.Span
	Syntax         *SchemaExtensionSyntax
}

type SchemaExtensionSyntax struct {
	ExtendKeyword token.Token
	SchemaKeyword token.Token
	Braces        *DelimiterPair
}

// RootOperationTypeDefinition is one `query: TypeName` entry of a schema
// definition or extension.
type RootOperationTypeDefinition struct {
	OperationKind OperationKind
	NamedType     *Name
	Span          token.Span
	Syntax        *RootOperationTypeDefinitionSyntax
}

type RootOperationTypeDefinitionSyntax struct {
	Colon token.Token
}

// ScalarTypeDefinition is `scalar Name`.
type ScalarTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*DirectiveAnnotation
	Span        token.Span
	Syntax      *ScalarTypeDefinitionSyntax
}

type ScalarTypeDefinitionSyntax struct {
	ScalarKeyword token.Token
}

// ObjectTypeDefinition is `type Name implements ... { fields }`.
type ObjectTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Implements  []*Name
	Directives  []*DirectiveAnnotation
	Fields      []*FieldDefinition
	Span        token.Span
	Syntax      *ObjectTypeDefinitionSyntax
}

type ObjectTypeDefinitionSyntax struct {
	TypeKeyword       token.Token
	ImplementsKeyword *token.Token
	LeadingAmpersand  *token.Token
	Ampersands        []token.Token
	Braces            *DelimiterPair
}

// InterfaceTypeDefinition is `interface Name implements ... { fields }`.
type InterfaceTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Implements  []*Name
	Directives  []*DirectiveAnnotation
	Fields      []*FieldDefinition
	Span        token.Span
	Syntax      *InterfaceTypeDefinitionSyntax
}

type InterfaceTypeDefinitionSyntax struct {
	InterfaceKeyword  token.Token
	ImplementsKeyword *token.Token
	LeadingAmpersand  *token.Token
	Ampersands        []token.Token
	Braces            *DelimiterPair
}

// UnionTypeDefinition is `union Name = A | B`.
type UnionTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*DirectiveAnnotation
	Members     []*Name
	Span        token.Span
	Syntax      *UnionTypeDefinitionSyntax
}

type UnionTypeDefinitionSyntax struct {
	UnionKeyword token.Token
	Equals       *token.Token
	LeadingPipe  *token.Token
	Pipes        []token.Token
}

// EnumTypeDefinition is `enum Name { VALUES }`.
type EnumTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*DirectiveAnnotation
	Values      []*EnumValueDefinition
	Span        token.Span
	Syntax      *EnumTypeDefinitionSyntax
}

type EnumTypeDefinitionSyntax struct {
	EnumKeyword token.Token
	Braces      *DelimiterPair
}

// InputObjectTypeDefinition is `input Name { fields }`.
type InputObjectTypeDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*DirectiveAnnotation
	Fields      []*InputValueDefinition
	Span        token.Span
	Syntax      *InputObjectTypeDefinitionSyntax
}

type InputObjectTypeDefinitionSyntax struct {
	InputKeyword token.Token
	Braces       *DelimiterPair
}

// FieldDefinition is one `name(args): Type` entry of an object or
// interface type.
type FieldDefinition struct {
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Type        TypeAnnotation
	Directives  []*DirectiveAnnotation
	Span        token.Span
	Syntax      *FieldDefinitionSyntax
}

type FieldDefinitionSyntax struct {
	Colon          token.Token
	ArgumentParens *DelimiterPair
}

// InputValueDefinition is `name: Type = default`, used for both argument
// definitions and input object fields.
type InputValueDefinition struct {
	Description  *StringValue
	Name         *Name
	Type         TypeAnnotation
	DefaultValue Value
	Directives   []*DirectiveAnnotation
	Span         token.Span
	Syntax       *InputValueDefinitionSyntax
}

type InputValueDefinitionSyntax struct {
	Colon  token.Token
	Equals *token.Token
}

// EnumValueDefinition is one value of an enum type. It has no syntax
// record: the name token lives in Name's syntax.
type EnumValueDefinition struct {
	Description *StringValue
	Name        *Name
	Directives  []*DirectiveAnnotation
	Span        token.Span
}

// ScalarTypeExtension is `extend scalar Name @dirs`.
type ScalarTypeExtension struct {
	Name       *Name
	Directives []*DirectiveAnnotation
	Span       token.Span
	Syntax     *ScalarTypeExtensionSyntax
}

type ScalarTypeExtensionSyntax struct {
	ExtendKeyword token.Token
	ScalarKeyword token.Token
}

// ObjectTypeExtension is `extend type Name ...`.
type ObjectTypeExtension struct {
	Name       *Name
	Implements []*Name
	Directives []*DirectiveAnnotation
	Fields     []*FieldDefinition
	Span       token.Span
	Syntax     *ObjectTypeExtensionSyntax
}

type ObjectTypeExtensionSyntax struct {
	ExtendKeyword     token.Token
	TypeKeyword       token.Token
	ImplementsKeyword *token.Token
	LeadingAmpersand  *token.Token
	Ampersands        []token.Token
	Braces            *DelimiterPair
}

// InterfaceTypeExtension is `extend interface Name ...`.
type InterfaceTypeExtension struct {
	Name       *Name
	Implements []*Name
	Directives []*DirectiveAnnotation
	Fields     []*FieldDefinition
	Span       token.Span
	Syntax     *InterfaceTypeExtensionSyntax
}

type InterfaceTypeExtensionSyntax struct {
	ExtendKeyword     token.Token
	InterfaceKeyword  token.Token
	ImplementsKeyword *token.Token
	LeadingAmpersand  *token.Token
	Ampersands        []token.Token
	Braces            *DelimiterPair
}

// UnionTypeExtension is `extend union Name = A | B`.
type UnionTypeExtension struct {
	Name       *Name
	Directives []*DirectiveAnnotation
	Members    []*Name
	Span       token.Span
	Syntax     *UnionTypeExtensionSyntax
}

type UnionTypeExtensionSyntax struct {
	ExtendKeyword token.Token
	UnionKeyword  token.Token
	Equals        *token.Token
	LeadingPipe   *token.Token
	Pipes         []token.Token
}

// EnumTypeExtension is `extend enum Name { VALUES }`.
type EnumTypeExtension struct {
	Name       *Name
	Directives []*DirectiveAnnotation
	Values     []*EnumValueDefinition
	Span       token.Span
	Syntax     *EnumTypeExtensionSyntax
}

type EnumTypeExtensionSyntax struct {
	ExtendKeyword token.Token
	EnumKeyword   token.Token
	Braces        *DelimiterPair
}

// InputObjectTypeExtension is `extend input Name { fields }`.
type InputObjectTypeExtension struct {
	Name       *Name
	Directives []*DirectiveAnnotation
	Fields     []*InputValueDefinition
	Span       token.Span
	Syntax     *InputObjectTypeExtensionSyntax
}

type InputObjectTypeExtensionSyntax struct {
	ExtendKeyword token.Token
	InputKeyword  token.Token
	Braces        *DelimiterPair
}

// DirectiveDefinition is `directive @name(args) repeatable on LOCATIONS`.
type DirectiveDefinition struct {
	Description *StringValue
	Name        *Name
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []*DirectiveLocation
	Span        token.Span
	Syntax      *DirectiveDefinitionSyntax
}

type DirectiveDefinitionSyntax struct {
	DirectiveKeyword  token.Token
	AtSign            token.Token
	ArgumentParens    *DelimiterPair
	RepeatableKeyword *token.Token
	OnKeyword         token.Token
}

// DirectiveLocation is one location name of a directive definition.
type DirectiveLocation struct {
	Kind   DirectiveLocationKind
	Span   token.Span
	Syntax *DirectiveLocationSyntax
}

type DirectiveLocationSyntax struct {
	// Pipe is the `|` before this location, nil for the first one.
	Pipe  *token.Token
	Token token.Token
}

// DirectiveLocationKind identifies one of the canonical directive
// locations.
type DirectiveLocationKind int

const (
	LocationQuery DirectiveLocationKind = iota
	LocationMutation
	LocationSubscription
	LocationField
	LocationFragmentDefinition
	LocationFragmentSpread
	LocationInlineFragment
	LocationVariableDefinition
	LocationSchema
	LocationScalar
	LocationObject
	LocationFieldDefinition
	LocationArgumentDefinition
	LocationInterface
	LocationUnion
	LocationEnum
	LocationEnumValue
	LocationInputObject
	LocationInputFieldDefinition
)

var directiveLocationNames = map[DirectiveLocationKind]string{
	LocationQuery:                "QUERY",
	LocationMutation:             "MUTATION",
	LocationSubscription:         "SUBSCRIPTION",
	LocationField:                "FIELD",
	LocationFragmentDefinition:   "FRAGMENT_DEFINITION",
	LocationFragmentSpread:       "FRAGMENT_SPREAD",
	LocationInlineFragment:       "INLINE_FRAGMENT",
	LocationVariableDefinition:   "VARIABLE_DEFINITION",
	LocationSchema:               "SCHEMA",
	LocationScalar:               "SCALAR",
	LocationObject:               "OBJECT",
	LocationFieldDefinition:      "FIELD_DEFINITION",
	LocationArgumentDefinition:   "ARGUMENT_DEFINITION",
	LocationInterface:            "INTERFACE",
	LocationUnion:                "UNION",
	LocationEnum:                 "ENUM",
	LocationEnumValue:            "ENUM_VALUE",
	LocationInputObject:          "INPUT_OBJECT",
	LocationInputFieldDefinition: "INPUT_FIELD_DEFINITION",
}

// DirectiveLocationKinds lists all locations in GraphQL grammar order.
var DirectiveLocationKinds = []DirectiveLocationKind{
	LocationQuery,
	LocationMutation,
	LocationSubscription,
	LocationField,
	LocationFragmentDefinition,
	LocationFragmentSpread,
	LocationInlineFragment,
	LocationVariableDefinition,
	LocationSchema,
	LocationScalar,
	LocationObject,
	LocationFieldDefinition,
	LocationArgumentDefinition,
	LocationInterface,
	LocationUnion,
	LocationEnum,
	LocationEnumValue,
	LocationInputObject,
	LocationInputFieldDefinition,
}

func (k DirectiveLocationKind) String() string {
	if name, ok := directiveLocationNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// DirectiveLocationByName resolves an uppercase location name such as
// "FIELD_DEFINITION".
func DirectiveLocationByName(name string) (DirectiveLocationKind, bool) {
	for _, kind := range DirectiveLocationKinds {
		if directiveLocationNames[kind] == name {
			return kind, true
		}
	}
	return 0, false
}

func (d *SchemaDefinition) SourceSpan() token.Span            { return d.Span }
func (d *SchemaExtension) SourceSpan() token.Span             { return d.Span }
func (d *RootOperationTypeDefinition) SourceSpan() token.Span { return d.Span }
func (d *ScalarTypeDefinition) SourceSpan() token.Span        { return d.Span }
func (d *ObjectTypeDefinition) SourceSpan() token.Span        { return d.Span }
func (d *InterfaceTypeDefinition) SourceSpan() token.Span     { return d.Span }
func (d *UnionTypeDefinition) SourceSpan() token.Span         { return d.Span }
func (d *EnumTypeDefinition) SourceSpan() token.Span          { return d.Span }
func (d *InputObjectTypeDefinition) SourceSpan() token.Span   { return d.Span }
func (d *FieldDefinition) SourceSpan() token.Span             { return d.Span }
func (d *InputValueDefinition) SourceSpan() token.Span        { return d.Span }
func (d *EnumValueDefinition) SourceSpan() token.Span         { return d.Span }
func (d *ScalarTypeExtension) SourceSpan() token.Span         { return d.Span }
func (d *ObjectTypeExtension) SourceSpan() token.Span         { return d.Span }
func (d *InterfaceTypeExtension) SourceSpan() token.Span      { return d.Span }
func (d *UnionTypeExtension) SourceSpan() token.Span          { return d.Span }
func (d *EnumTypeExtension) SourceSpan() token.Span           { return d.Span }
func (d *InputObjectTypeExtension) SourceSpan() token.Span    { return d.Span }
func (d *DirectiveDefinition) SourceSpan() token.Span         { return d.Span }
func (d *DirectiveLocation) SourceSpan() token.Span           { return d.Span }

func (*SchemaDefinition) definitionNode()          {}
func (*SchemaExtension) definitionNode()           {}
func (*DirectiveDefinition) definitionNode()       {}
func (*ScalarTypeDefinition) definitionNode()      {}
func (*ObjectTypeDefinition) definitionNode()      {}
func (*InterfaceTypeDefinition) definitionNode()   {}
func (*UnionTypeDefinition) definitionNode()       {}
func (*EnumTypeDefinition) definitionNode()        {}
func (*InputObjectTypeDefinition) definitionNode() {}
func (*ScalarTypeExtension) definitionNode()       {}
func (*ObjectTypeExtension) definitionNode()       {}
func (*InterfaceTypeExtension) definitionNode()    {}
func (*UnionTypeExtension) definitionNode()        {}
func (*EnumTypeExtension) definitionNode()         {}
func (*InputObjectTypeExtension) definitionNode()  {}

func (*ScalarTypeDefinition) typeDefinitionNode()      {}
func (*ObjectTypeDefinition) typeDefinitionNode()      {}
func (*InterfaceTypeDefinition) typeDefinitionNode()   {}
func (*UnionTypeDefinition) typeDefinitionNode()       {}
func (*EnumTypeDefinition) typeDefinitionNode()        {}
func (*InputObjectTypeDefinition) typeDefinitionNode() {}

func (*ScalarTypeExtension) typeExtensionNode()      {}
func (*ObjectTypeExtension) typeExtensionNode()      {}
func (*InterfaceTypeExtension) typeExtensionNode()   {}
func (*UnionTypeExtension) typeExtensionNode()       {}
func (*EnumTypeExtension) typeExtensionNode()        {}
func (*InputObjectTypeExtension) typeExtensionNode() {}
