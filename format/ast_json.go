package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/token"
)

// ASTEncoder writes a parsed document as an indented JSON tree for
// tooling. Every node carries a kind tag and its source span
// (0-based line/col plus byte offset); leaves carry their cooked
// value. Kind tags follow the names GraphQL tooling already knows:
// "Field", "NamedType", "ObjectTypeDefinition", and so on. Grouping
// nodes (Alias, Implements, Members, DefaultValue) and flag markers
// (NonNull, Repeatable, Block) have no span of their own.
type ASTEncoder struct {
	w io.Writer
}

func NewASTEncoder(w io.Writer) *ASTEncoder {
	return &ASTEncoder{w: w}
}

func (e *ASTEncoder) Encode(doc *ast.Document) error {
	text, err := e.MarshalText(doc)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTEncoder) MarshalText(doc *ast.Document) ([]byte, error) {
	return json.MarshalIndent(documentToJSON(doc), "", "  ")
}

type astJSONNode struct {
	Kind     string         `json:"kind"`
	Value    interface{}    `json:"value,omitempty"`
	Span     *astJSONSpan   `json:"span,omitempty"`
	Children []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Col    int `json:"col"`
	Offset int `json:"offset"`
}

func spanToJSON(span token.Span) *astJSONSpan {
	if span.ZeroWidth() && span.Start.ByteOffset == 0 {
		return nil
	}
	return &astJSONSpan{
		Start: positionToJSON(span.Start),
		End:   positionToJSON(span.End),
	}
}

func positionToJSON(pos token.SourcePosition) astJSONPosition {
	return astJSONPosition{Line: pos.Line, Col: pos.Column, Offset: pos.ByteOffset}
}

func marker(kind string) *astJSONNode {
	return &astJSONNode{Kind: kind}
}

func documentToJSON(d *ast.Document) *astJSONNode {
	node := &astJSONNode{Kind: "Document", Span: spanToJSON(d.Span)}
	for _, def := range d.Definitions {
		if child := definitionToJSON(def); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

func definitionToJSON(def ast.Definition) *astJSONNode {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		return operationToJSON(d)
	case *ast.FragmentDefinition:
		return fragmentToJSON(d)
	case *ast.SchemaDefinition:
		return schemaDefinitionToJSON(d)
	case *ast.SchemaExtension:
		return schemaExtensionToJSON(d)
	case *ast.ScalarTypeDefinition:
		return scalarDefinitionToJSON(d)
	case *ast.ObjectTypeDefinition:
		return objectDefinitionToJSON(d)
	case *ast.InterfaceTypeDefinition:
		return interfaceDefinitionToJSON(d)
	case *ast.UnionTypeDefinition:
		return unionDefinitionToJSON(d)
	case *ast.EnumTypeDefinition:
		return enumDefinitionToJSON(d)
	case *ast.InputObjectTypeDefinition:
		return inputObjectDefinitionToJSON(d)
	case *ast.DirectiveDefinition:
		return directiveDefinitionToJSON(d)
	case *ast.ScalarTypeExtension:
		return scalarExtensionToJSON(d)
	case *ast.ObjectTypeExtension:
		return objectExtensionToJSON(d)
	case *ast.InterfaceTypeExtension:
		return interfaceExtensionToJSON(d)
	case *ast.UnionTypeExtension:
		return unionExtensionToJSON(d)
	case *ast.EnumTypeExtension:
		return enumExtensionToJSON(d)
	case *ast.InputObjectTypeExtension:
		return inputObjectExtensionToJSON(d)
	}
	return nil
}

func operationToJSON(d *ast.OperationDefinition) *astJSONNode {
	node := &astJSONNode{
		Kind:  "OperationDefinition",
		Value: d.OperationKind.String(),
		Span:  spanToJSON(d.Span),
	}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	for _, vd := range d.VariableDefinitions {
		node.Children = append(node.Children, variableDefinitionToJSON(vd))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	if d.SelectionSet != nil {
		node.Children = append(node.Children, selectionSetToJSON(d.SelectionSet))
	}
	return node
}

func variableDefinitionToJSON(vd *ast.VariableDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "VariableDefinition", Span: spanToJSON(vd.Span)}
	if vd.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(vd.Description))
	}
	if vd.Variable != nil {
		node.Children = append(node.Children, nameToJSON(vd.Variable))
	}
	if vd.Type != nil {
		node.Children = append(node.Children, typeToJSON(vd.Type))
	}
	if vd.DefaultValue != nil {
		node.Children = append(node.Children, defaultValueToJSON(vd.DefaultValue))
	}
	node.Children = appendDirectives(node.Children, vd.Directives)
	return node
}

func fragmentToJSON(d *ast.FragmentDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "FragmentDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	if d.TypeCondition != nil {
		node.Children = append(node.Children, typeConditionToJSON(d.TypeCondition))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	if d.SelectionSet != nil {
		node.Children = append(node.Children, selectionSetToJSON(d.SelectionSet))
	}
	return node
}

func typeConditionToJSON(tc *ast.TypeCondition) *astJSONNode {
	node := &astJSONNode{Kind: "TypeCondition", Span: spanToJSON(tc.Span)}
	if tc.NamedType != nil {
		node.Children = append(node.Children, nameToJSON(tc.NamedType))
	}
	return node
}

func selectionSetToJSON(ss *ast.SelectionSet) *astJSONNode {
	node := &astJSONNode{Kind: "SelectionSet", Span: spanToJSON(ss.Span)}
	for _, sel := range ss.Selections {
		if child := selectionToJSON(sel); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

func selectionToJSON(sel ast.Selection) *astJSONNode {
	switch s := sel.(type) {
	case *ast.Field:
		node := &astJSONNode{Kind: "Field", Span: spanToJSON(s.Span)}
		if s.Alias != nil {
			node.Children = append(node.Children, &astJSONNode{
				Kind:     "Alias",
				Children: []*astJSONNode{nameToJSON(s.Alias)},
			})
		}
		if s.Name != nil {
			node.Children = append(node.Children, nameToJSON(s.Name))
		}
		node.Children = appendArguments(node.Children, s.Arguments)
		node.Children = appendDirectives(node.Children, s.Directives)
		if s.SelectionSet != nil {
			node.Children = append(node.Children, selectionSetToJSON(s.SelectionSet))
		}
		return node
	case *ast.FragmentSpread:
		node := &astJSONNode{Kind: "FragmentSpread", Span: spanToJSON(s.Span)}
		if s.Name != nil {
			node.Children = append(node.Children, nameToJSON(s.Name))
		}
		node.Children = appendDirectives(node.Children, s.Directives)
		return node
	case *ast.InlineFragment:
		node := &astJSONNode{Kind: "InlineFragment", Span: spanToJSON(s.Span)}
		if s.TypeCondition != nil {
			node.Children = append(node.Children, typeConditionToJSON(s.TypeCondition))
		}
		node.Children = appendDirectives(node.Children, s.Directives)
		if s.SelectionSet != nil {
			node.Children = append(node.Children, selectionSetToJSON(s.SelectionSet))
		}
		return node
	}
	return nil
}

func appendArguments(children []*astJSONNode, args []*ast.Argument) []*astJSONNode {
	for _, arg := range args {
		node := &astJSONNode{Kind: "Argument", Span: spanToJSON(arg.Span)}
		if arg.Name != nil {
			node.Children = append(node.Children, nameToJSON(arg.Name))
		}
		if arg.Value != nil {
			node.Children = append(node.Children, valueToJSON(arg.Value))
		}
		children = append(children, node)
	}
	return children
}

func appendDirectives(children []*astJSONNode, dirs []*ast.DirectiveAnnotation) []*astJSONNode {
	for _, dir := range dirs {
		node := &astJSONNode{Kind: "Directive", Span: spanToJSON(dir.Span)}
		if dir.Name != nil {
			node.Children = append(node.Children, nameToJSON(dir.Name))
		}
		node.Children = appendArguments(node.Children, dir.Arguments)
		children = append(children, node)
	}
	return children
}

func defaultValueToJSON(v ast.Value) *astJSONNode {
	return &astJSONNode{Kind: "DefaultValue", Children: []*astJSONNode{valueToJSON(v)}}
}

func valueToJSON(v ast.Value) *astJSONNode {
	switch v := v.(type) {
	case *ast.IntValue:
		return &astJSONNode{Kind: "IntValue", Value: v.Value, Span: spanToJSON(v.Span)}
	case *ast.FloatValue:
		return &astJSONNode{Kind: "FloatValue", Value: v.Value, Span: spanToJSON(v.Span)}
	case *ast.StringValue:
		return stringValueToJSON(v)
	case *ast.BooleanValue:
		return &astJSONNode{Kind: "BooleanValue", Value: v.Value, Span: spanToJSON(v.Span)}
	case *ast.NullValue:
		return &astJSONNode{Kind: "NullValue", Span: spanToJSON(v.Span)}
	case *ast.EnumValue:
		return &astJSONNode{Kind: "EnumValue", Value: v.Value, Span: spanToJSON(v.Span)}
	case *ast.ListValue:
		node := &astJSONNode{Kind: "ListValue", Span: spanToJSON(v.Span)}
		for _, item := range v.Values {
			node.Children = append(node.Children, valueToJSON(item))
		}
		return node
	case *ast.ObjectValue:
		node := &astJSONNode{Kind: "ObjectValue", Span: spanToJSON(v.Span)}
		for _, field := range v.Fields {
			fieldNode := &astJSONNode{Kind: "ObjectField", Span: spanToJSON(field.Span)}
			if field.Name != nil {
				fieldNode.Children = append(fieldNode.Children, nameToJSON(field.Name))
			}
			if field.Value != nil {
				fieldNode.Children = append(fieldNode.Children, valueToJSON(field.Value))
			}
			node.Children = append(node.Children, fieldNode)
		}
		return node
	case *ast.VariableValue:
		node := &astJSONNode{Kind: "Variable", Span: spanToJSON(v.Span)}
		if v.Name != nil {
			node.Children = append(node.Children, nameToJSON(v.Name))
		}
		return node
	}
	return nil
}

func stringValueToJSON(s *ast.StringValue) *astJSONNode {
	node := &astJSONNode{Kind: "StringValue", Value: s.Value, Span: spanToJSON(s.Span)}
	if s.Block {
		node.Children = append(node.Children, marker("Block"))
	}
	return node
}

func nameToJSON(n *ast.Name) *astJSONNode {
	return &astJSONNode{Kind: "Name", Value: n.Value, Span: spanToJSON(n.Span)}
}

func typeToJSON(t ast.TypeAnnotation) *astJSONNode {
	switch t := t.(type) {
	case *ast.NamedTypeAnnotation:
		node := &astJSONNode{Kind: "NamedType", Span: spanToJSON(t.Span)}
		if t.Name != nil {
			node.Children = append(node.Children, nameToJSON(t.Name))
		}
		if t.Nullability.NonNull {
			node.Children = append(node.Children, marker("NonNull"))
		}
		return node
	case *ast.ListTypeAnnotation:
		node := &astJSONNode{Kind: "ListType", Span: spanToJSON(t.Span)}
		if t.ElementType != nil {
			node.Children = append(node.Children, typeToJSON(t.ElementType))
		}
		if t.Nullability.NonNull {
			node.Children = append(node.Children, marker("NonNull"))
		}
		return node
	}
	return nil
}

func schemaDefinitionToJSON(d *ast.SchemaDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "SchemaDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	for _, op := range d.RootOperations {
		node.Children = append(node.Children, rootOperationToJSON(op))
	}
	return node
}

func schemaExtensionToJSON(d *ast.SchemaExtension) *astJSONNode {
	node := &astJSONNode{Kind: "SchemaExtension", Span: spanToJSON(d.Span)}
	node.Children = appendDirectives(node.Children, d.Directives)
	for _, op := range d.RootOperations {
		node.Children = append(node.Children, rootOperationToJSON(op))
	}
	return node
}

func rootOperationToJSON(op *ast.RootOperationTypeDefinition) *astJSONNode {
	node := &astJSONNode{
		Kind:  "OperationTypeDefinition",
		Value: op.OperationKind.String(),
		Span:  spanToJSON(op.Span),
	}
	if op.NamedType != nil {
		node.Children = append(node.Children, nameToJSON(op.NamedType))
	}
	return node
}

func scalarDefinitionToJSON(d *ast.ScalarTypeDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "ScalarTypeDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	return node
}

func implementsToJSON(names []*ast.Name) *astJSONNode {
	if len(names) == 0 {
		return nil
	}
	node := &astJSONNode{Kind: "Implements"}
	for _, n := range names {
		node.Children = append(node.Children, nameToJSON(n))
	}
	return node
}

func objectDefinitionToJSON(d *ast.ObjectTypeDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "ObjectTypeDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	if impl := implementsToJSON(d.Implements); impl != nil {
		node.Children = append(node.Children, impl)
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendFieldDefinitions(node.Children, d.Fields)
	return node
}

func interfaceDefinitionToJSON(d *ast.InterfaceTypeDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "InterfaceTypeDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	if impl := implementsToJSON(d.Implements); impl != nil {
		node.Children = append(node.Children, impl)
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendFieldDefinitions(node.Children, d.Fields)
	return node
}

func membersToJSON(names []*ast.Name) *astJSONNode {
	if len(names) == 0 {
		return nil
	}
	node := &astJSONNode{Kind: "Members"}
	for _, n := range names {
		node.Children = append(node.Children, nameToJSON(n))
	}
	return node
}

func unionDefinitionToJSON(d *ast.UnionTypeDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "UnionTypeDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	if members := membersToJSON(d.Members); members != nil {
		node.Children = append(node.Children, members)
	}
	return node
}

func enumDefinitionToJSON(d *ast.EnumTypeDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "EnumTypeDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendEnumValues(node.Children, d.Values)
	return node
}

func appendEnumValues(children []*astJSONNode, values []*ast.EnumValueDefinition) []*astJSONNode {
	for _, value := range values {
		node := &astJSONNode{Kind: "EnumValueDefinition", Span: spanToJSON(value.Span)}
		if value.Description != nil {
			node.Children = append(node.Children, stringValueToJSON(value.Description))
		}
		if value.Name != nil {
			node.Children = append(node.Children, nameToJSON(value.Name))
		}
		node.Children = appendDirectives(node.Children, value.Directives)
		children = append(children, node)
	}
	return children
}

func inputObjectDefinitionToJSON(d *ast.InputObjectTypeDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "InputObjectTypeDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendInputValueDefinitions(node.Children, d.Fields)
	return node
}

func appendFieldDefinitions(children []*astJSONNode, fields []*ast.FieldDefinition) []*astJSONNode {
	for _, field := range fields {
		node := &astJSONNode{Kind: "FieldDefinition", Span: spanToJSON(field.Span)}
		if field.Description != nil {
			node.Children = append(node.Children, stringValueToJSON(field.Description))
		}
		if field.Name != nil {
			node.Children = append(node.Children, nameToJSON(field.Name))
		}
		node.Children = appendInputValueDefinitions(node.Children, field.Arguments)
		if field.Type != nil {
			node.Children = append(node.Children, typeToJSON(field.Type))
		}
		node.Children = appendDirectives(node.Children, field.Directives)
		children = append(children, node)
	}
	return children
}

func appendInputValueDefinitions(children []*astJSONNode, defs []*ast.InputValueDefinition) []*astJSONNode {
	for _, def := range defs {
		node := &astJSONNode{Kind: "InputValueDefinition", Span: spanToJSON(def.Span)}
		if def.Description != nil {
			node.Children = append(node.Children, stringValueToJSON(def.Description))
		}
		if def.Name != nil {
			node.Children = append(node.Children, nameToJSON(def.Name))
		}
		if def.Type != nil {
			node.Children = append(node.Children, typeToJSON(def.Type))
		}
		if def.DefaultValue != nil {
			node.Children = append(node.Children, defaultValueToJSON(def.DefaultValue))
		}
		node.Children = appendDirectives(node.Children, def.Directives)
		children = append(children, node)
	}
	return children
}

func directiveDefinitionToJSON(d *ast.DirectiveDefinition) *astJSONNode {
	node := &astJSONNode{Kind: "DirectiveDefinition", Span: spanToJSON(d.Span)}
	if d.Description != nil {
		node.Children = append(node.Children, stringValueToJSON(d.Description))
	}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendInputValueDefinitions(node.Children, d.Arguments)
	if d.Repeatable {
		node.Children = append(node.Children, marker("Repeatable"))
	}
	for _, loc := range d.Locations {
		node.Children = append(node.Children, &astJSONNode{
			Kind:  "DirectiveLocation",
			Value: loc.Kind.String(),
			Span:  spanToJSON(loc.Span),
		})
	}
	return node
}

func scalarExtensionToJSON(d *ast.ScalarTypeExtension) *astJSONNode {
	node := &astJSONNode{Kind: "ScalarTypeExtension", Span: spanToJSON(d.Span)}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	return node
}

func objectExtensionToJSON(d *ast.ObjectTypeExtension) *astJSONNode {
	node := &astJSONNode{Kind: "ObjectTypeExtension", Span: spanToJSON(d.Span)}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	if impl := implementsToJSON(d.Implements); impl != nil {
		node.Children = append(node.Children, impl)
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendFieldDefinitions(node.Children, d.Fields)
	return node
}

func interfaceExtensionToJSON(d *ast.InterfaceTypeExtension) *astJSONNode {
	node := &astJSONNode{Kind: "InterfaceTypeExtension", Span: spanToJSON(d.Span)}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	if impl := implementsToJSON(d.Implements); impl != nil {
		node.Children = append(node.Children, impl)
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendFieldDefinitions(node.Children, d.Fields)
	return node
}

func unionExtensionToJSON(d *ast.UnionTypeExtension) *astJSONNode {
	node := &astJSONNode{Kind: "UnionTypeExtension", Span: spanToJSON(d.Span)}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	if members := membersToJSON(d.Members); members != nil {
		node.Children = append(node.Children, members)
	}
	return node
}

func enumExtensionToJSON(d *ast.EnumTypeExtension) *astJSONNode {
	node := &astJSONNode{Kind: "EnumTypeExtension", Span: spanToJSON(d.Span)}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendEnumValues(node.Children, d.Values)
	return node
}

func inputObjectExtensionToJSON(d *ast.InputObjectTypeExtension) *astJSONNode {
	node := &astJSONNode{Kind: "InputObjectTypeExtension", Span: spanToJSON(d.Span)}
	if d.Name != nil {
		node.Children = append(node.Children, nameToJSON(d.Name))
	}
	node.Children = appendDirectives(node.Children, d.Directives)
	node.Children = appendInputValueDefinitions(node.Children, d.Fields)
	return node
}
