package compat

import (
	"fmt"
	"strconv"

	gqlast "github.com/graphql-go/graphql/language/ast"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/parser"
	"github.com/dhamidi/tako/graphql/token"
)

// ToGraphQLGo converts a document to the graphql-go AST. Locations carry
// the byte offsets of the original spans and no source.
//
// Constructs graphql-go cannot represent (see the package documentation)
// record diagnostics and are omitted, but the rest of the document still
// converts: when the returned error is non-nil it is a parser.Diagnostics
// value and the returned document is still usable.
func ToGraphQLGo(doc *ast.Document) (*gqlast.Document, error) {
	if doc == nil {
		return nil, nil
	}
	c := &outConverter{}
	var nodes []gqlast.Node
	for _, def := range doc.Definitions {
		if node := c.definition(def); node != nil {
			nodes = append(nodes, node)
		}
	}
	out := gqlast.NewDocument(&gqlast.Document{
		Definitions: nodes,
		Loc:         outLoc(doc.Span),
	})
	if len(c.diags) > 0 {
		return out, c.diags
	}
	return out, nil
}

// outConverter accumulates diagnostics for the constructs a conversion
// had to omit or degrade.
type outConverter struct {
	diags parser.Diagnostics
}

func (c *outConverter) unsupported(what string, span token.Span) {
	c.diags = append(c.diags, parser.NewError(
		fmt.Sprintf("%s cannot be represented in the graphql-go AST", what),
		span, parser.UnsupportedFeature))
}

func outLoc(span token.Span) *gqlast.Location {
	return gqlast.NewLocation(&gqlast.Location{
		Start: span.Start.ByteOffset,
		End:   span.End.ByteOffset,
	})
}

func outOperationType(kind ast.OperationKind) string {
	switch kind {
	case ast.OperationMutation:
		return gqlast.OperationTypeMutation
	case ast.OperationSubscription:
		return gqlast.OperationTypeSubscription
	default:
		return gqlast.OperationTypeQuery
	}
}

func (c *outConverter) definition(def ast.Definition) gqlast.Node {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		return c.operation(d)
	case *ast.FragmentDefinition:
		return c.fragment(d)
	case *ast.SchemaDefinition:
		return c.schemaDefinition(d)
	case *ast.ScalarTypeDefinition:
		return c.scalarDefinition(d)
	case *ast.ObjectTypeDefinition:
		return c.objectDefinition(d)
	case *ast.InterfaceTypeDefinition:
		return c.interfaceDefinition(d)
	case *ast.UnionTypeDefinition:
		return c.unionDefinition(d)
	case *ast.EnumTypeDefinition:
		return c.enumDefinition(d)
	case *ast.InputObjectTypeDefinition:
		return c.inputObjectDefinition(d)
	case *ast.DirectiveDefinition:
		return c.directiveDefinition(d)
	case *ast.ObjectTypeExtension:
		return c.objectExtension(d)
	case *ast.SchemaExtension:
		c.unsupported("schema extensions", d.Span)
	case *ast.ScalarTypeExtension:
		c.unsupported("scalar type extensions", d.Span)
	case *ast.InterfaceTypeExtension:
		c.unsupported("interface type extensions", d.Span)
	case *ast.UnionTypeExtension:
		c.unsupported("union type extensions", d.Span)
	case *ast.EnumTypeExtension:
		c.unsupported("enum type extensions", d.Span)
	case *ast.InputObjectTypeExtension:
		c.unsupported("input object type extensions", d.Span)
	}
	return nil
}

func (c *outConverter) operation(d *ast.OperationDefinition) gqlast.Node {
	var varDefs []*gqlast.VariableDefinition
	for _, vd := range d.VariableDefinitions {
		if out := c.variableDefinition(vd); out != nil {
			varDefs = append(varDefs, out)
		}
	}
	return gqlast.NewOperationDefinition(&gqlast.OperationDefinition{
		Operation:           outOperationType(d.OperationKind),
		Name:                c.name(d.Name),
		VariableDefinitions: varDefs,
		Directives:          c.directives(d.Directives),
		SelectionSet:        c.selectionSet(d.SelectionSet),
		Loc:                 outLoc(d.Span),
	})
}

// variableDefinition drops the definition's directives: the target node
// has no field for them.
func (c *outConverter) variableDefinition(vd *ast.VariableDefinition) *gqlast.VariableDefinition {
	if vd == nil {
		return nil
	}
	variable := &gqlast.Variable{Loc: outLoc(vd.Span)}
	if vd.Variable != nil {
		variable.Name = c.name(vd.Variable)
		variable.Loc = outLoc(vd.Variable.Span)
	}
	return gqlast.NewVariableDefinition(&gqlast.VariableDefinition{
		Variable:     gqlast.NewVariable(variable),
		Type:         c.typeRef(vd.Type),
		DefaultValue: c.value(vd.DefaultValue),
		Loc:          outLoc(vd.Span),
	})
}

func (c *outConverter) fragment(d *ast.FragmentDefinition) gqlast.Node {
	return gqlast.NewFragmentDefinition(&gqlast.FragmentDefinition{
		Name:          c.name(d.Name),
		TypeCondition: c.typeCondition(d.TypeCondition),
		Directives:    c.directives(d.Directives),
		SelectionSet:  c.selectionSet(d.SelectionSet),
		Loc:           outLoc(d.Span),
	})
}

func (c *outConverter) typeCondition(tc *ast.TypeCondition) *gqlast.Named {
	if tc == nil {
		return nil
	}
	return c.named(tc.NamedType)
}

func (c *outConverter) selectionSet(ss *ast.SelectionSet) *gqlast.SelectionSet {
	if ss == nil {
		return nil
	}
	var selections []gqlast.Selection
	for _, sel := range ss.Selections {
		if out := c.selection(sel); out != nil {
			selections = append(selections, out)
		}
	}
	return gqlast.NewSelectionSet(&gqlast.SelectionSet{
		Selections: selections,
		Loc:        outLoc(ss.Span),
	})
}

func (c *outConverter) selection(sel ast.Selection) gqlast.Selection {
	switch s := sel.(type) {
	case *ast.Field:
		return gqlast.NewField(&gqlast.Field{
			Alias:        c.name(s.Alias),
			Name:         c.name(s.Name),
			Arguments:    c.arguments(s.Arguments),
			Directives:   c.directives(s.Directives),
			SelectionSet: c.selectionSet(s.SelectionSet),
			Loc:          outLoc(s.Span),
		})
	case *ast.FragmentSpread:
		return gqlast.NewFragmentSpread(&gqlast.FragmentSpread{
			Name:       c.name(s.Name),
			Directives: c.directives(s.Directives),
			Loc:        outLoc(s.Span),
		})
	case *ast.InlineFragment:
		return gqlast.NewInlineFragment(&gqlast.InlineFragment{
			TypeCondition: c.typeCondition(s.TypeCondition),
			Directives:    c.directives(s.Directives),
			SelectionSet:  c.selectionSet(s.SelectionSet),
			Loc:           outLoc(s.Span),
		})
	}
	return nil
}

func (c *outConverter) arguments(args []*ast.Argument) []*gqlast.Argument {
	var out []*gqlast.Argument
	for _, arg := range args {
		if arg == nil {
			continue
		}
		out = append(out, gqlast.NewArgument(&gqlast.Argument{
			Name:  c.name(arg.Name),
			Value: c.value(arg.Value),
			Loc:   outLoc(arg.Span),
		}))
	}
	return out
}

func (c *outConverter) directives(dirs []*ast.DirectiveAnnotation) []*gqlast.Directive {
	var out []*gqlast.Directive
	for _, dir := range dirs {
		if dir == nil {
			continue
		}
		out = append(out, gqlast.NewDirective(&gqlast.Directive{
			Name:      c.name(dir.Name),
			Arguments: c.arguments(dir.Arguments),
			Loc:       outLoc(dir.Span),
		}))
	}
	return out
}

// value converts a value literal. Null literals have no target node:
// they record a diagnostic and yield nil. Numeric values are rendered
// back to text because graphql-go stores literals as raw strings.
func (c *outConverter) value(v ast.Value) gqlast.Value {
	switch v := v.(type) {
	case *ast.IntValue:
		return gqlast.NewIntValue(&gqlast.IntValue{
			Value: strconv.FormatInt(int64(v.Value), 10),
			Loc:   outLoc(v.Span),
		})
	case *ast.FloatValue:
		return gqlast.NewFloatValue(&gqlast.FloatValue{
			Value: strconv.FormatFloat(v.Value, 'g', -1, 64),
			Loc:   outLoc(v.Span),
		})
	case *ast.StringValue:
		return gqlast.NewStringValue(&gqlast.StringValue{
			Value: v.Value,
			Loc:   outLoc(v.Span),
		})
	case *ast.BooleanValue:
		return gqlast.NewBooleanValue(&gqlast.BooleanValue{
			Value: v.Value,
			Loc:   outLoc(v.Span),
		})
	case *ast.NullValue:
		c.unsupported("null values", v.Span)
		return nil
	case *ast.EnumValue:
		return gqlast.NewEnumValue(&gqlast.EnumValue{
			Value: v.Value,
			Loc:   outLoc(v.Span),
		})
	case *ast.ListValue:
		var values []gqlast.Value
		for _, item := range v.Values {
			if out := c.value(item); out != nil {
				values = append(values, out)
			}
		}
		return gqlast.NewListValue(&gqlast.ListValue{
			Values: values,
			Loc:    outLoc(v.Span),
		})
	case *ast.ObjectValue:
		var fields []*gqlast.ObjectField
		for _, field := range v.Fields {
			if field == nil {
				continue
			}
			fields = append(fields, gqlast.NewObjectField(&gqlast.ObjectField{
				Name:  c.name(field.Name),
				Value: c.value(field.Value),
				Loc:   outLoc(field.Span),
			}))
		}
		return gqlast.NewObjectValue(&gqlast.ObjectValue{
			Fields: fields,
			Loc:    outLoc(v.Span),
		})
	case *ast.VariableValue:
		return gqlast.NewVariable(&gqlast.Variable{
			Name: c.name(v.Name),
			Loc:  outLoc(v.Span),
		})
	}
	return nil
}

// typeRef rebuilds graphql-go's recursive NonNull wrapping from the
// nullability flag each annotation carries.
func (c *outConverter) typeRef(t ast.TypeAnnotation) gqlast.Type {
	switch t := t.(type) {
	case *ast.NamedTypeAnnotation:
		nameLoc := outLoc(t.Span)
		if t.Name != nil {
			nameLoc = outLoc(t.Name.Span)
		}
		var out gqlast.Type = gqlast.NewNamed(&gqlast.Named{
			Name: c.name(t.Name),
			Loc:  nameLoc,
		})
		if t.Nullability.NonNull {
			out = gqlast.NewNonNull(&gqlast.NonNull{Type: out, Loc: outLoc(t.Span)})
		}
		return out
	case *ast.ListTypeAnnotation:
		var out gqlast.Type = gqlast.NewList(&gqlast.List{
			Type: c.typeRef(t.ElementType),
			Loc:  outLoc(t.Span),
		})
		if t.Nullability.NonNull {
			out = gqlast.NewNonNull(&gqlast.NonNull{Type: out, Loc: outLoc(t.Span)})
		}
		return out
	}
	return nil
}

// schemaDefinition drops the description: the target node has no field
// for one.
func (c *outConverter) schemaDefinition(d *ast.SchemaDefinition) gqlast.Node {
	return gqlast.NewSchemaDefinition(&gqlast.SchemaDefinition{
		OperationTypes: c.rootOperations(d.RootOperations),
		Directives:     c.directives(d.Directives),
		Loc:            outLoc(d.Span),
	})
}

func (c *outConverter) rootOperations(ops []*ast.RootOperationTypeDefinition) []*gqlast.OperationTypeDefinition {
	var out []*gqlast.OperationTypeDefinition
	for _, op := range ops {
		if op == nil {
			continue
		}
		out = append(out, gqlast.NewOperationTypeDefinition(&gqlast.OperationTypeDefinition{
			Operation: outOperationType(op.OperationKind),
			Type:      c.named(op.NamedType),
			Loc:       outLoc(op.Span),
		}))
	}
	return out
}

func (c *outConverter) scalarDefinition(d *ast.ScalarTypeDefinition) gqlast.Node {
	return gqlast.NewScalarDefinition(&gqlast.ScalarDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Directives:  c.directives(d.Directives),
		Loc:         outLoc(d.Span),
	})
}

func (c *outConverter) objectDefinition(d *ast.ObjectTypeDefinition) gqlast.Node {
	return gqlast.NewObjectDefinition(&gqlast.ObjectDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Interfaces:  c.namedList(d.Implements),
		Directives:  c.directives(d.Directives),
		Fields:      c.fieldDefinitions(d.Fields),
		Loc:         outLoc(d.Span),
	})
}

// interfaceDefinition drops the implements clause: the target node has
// no field for one.
func (c *outConverter) interfaceDefinition(d *ast.InterfaceTypeDefinition) gqlast.Node {
	return gqlast.NewInterfaceDefinition(&gqlast.InterfaceDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Directives:  c.directives(d.Directives),
		Fields:      c.fieldDefinitions(d.Fields),
		Loc:         outLoc(d.Span),
	})
}

func (c *outConverter) unionDefinition(d *ast.UnionTypeDefinition) gqlast.Node {
	return gqlast.NewUnionDefinition(&gqlast.UnionDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Directives:  c.directives(d.Directives),
		Types:       c.namedList(d.Members),
		Loc:         outLoc(d.Span),
	})
}

func (c *outConverter) enumDefinition(d *ast.EnumTypeDefinition) gqlast.Node {
	var values []*gqlast.EnumValueDefinition
	for _, value := range d.Values {
		if value == nil {
			continue
		}
		values = append(values, gqlast.NewEnumValueDefinition(&gqlast.EnumValueDefinition{
			Name:        c.name(value.Name),
			Description: c.description(value.Description),
			Directives:  c.directives(value.Directives),
			Loc:         outLoc(value.Span),
		}))
	}
	return gqlast.NewEnumDefinition(&gqlast.EnumDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Directives:  c.directives(d.Directives),
		Values:      values,
		Loc:         outLoc(d.Span),
	})
}

func (c *outConverter) inputObjectDefinition(d *ast.InputObjectTypeDefinition) gqlast.Node {
	return gqlast.NewInputObjectDefinition(&gqlast.InputObjectDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Directives:  c.directives(d.Directives),
		Fields:      c.inputValueDefinitions(d.Fields),
		Loc:         outLoc(d.Span),
	})
}

// directiveDefinition drops the repeatable flag: the target node has no
// field for it. Locations become plain names.
func (c *outConverter) directiveDefinition(d *ast.DirectiveDefinition) gqlast.Node {
	var locations []*gqlast.Name
	for _, loc := range d.Locations {
		if loc == nil {
			continue
		}
		locations = append(locations, gqlast.NewName(&gqlast.Name{
			Value: loc.Kind.String(),
			Loc:   outLoc(loc.Span),
		}))
	}
	return gqlast.NewDirectiveDefinition(&gqlast.DirectiveDefinition{
		Name:        c.name(d.Name),
		Description: c.description(d.Description),
		Arguments:   c.inputValueDefinitions(d.Arguments),
		Locations:   locations,
		Loc:         outLoc(d.Span),
	})
}

// objectExtension wraps the extension body in the object definition
// node the target nests inside its TypeExtensionDefinition.
func (c *outConverter) objectExtension(d *ast.ObjectTypeExtension) gqlast.Node {
	definition := gqlast.NewObjectDefinition(&gqlast.ObjectDefinition{
		Name:       c.name(d.Name),
		Interfaces: c.namedList(d.Implements),
		Directives: c.directives(d.Directives),
		Fields:     c.fieldDefinitions(d.Fields),
		Loc:        outLoc(d.Span),
	})
	return gqlast.NewTypeExtensionDefinition(&gqlast.TypeExtensionDefinition{
		Definition: definition,
		Loc:        outLoc(d.Span),
	})
}

func (c *outConverter) fieldDefinitions(fields []*ast.FieldDefinition) []*gqlast.FieldDefinition {
	var out []*gqlast.FieldDefinition
	for _, field := range fields {
		if field == nil {
			continue
		}
		out = append(out, gqlast.NewFieldDefinition(&gqlast.FieldDefinition{
			Name:        c.name(field.Name),
			Description: c.description(field.Description),
			Arguments:   c.inputValueDefinitions(field.Arguments),
			Type:        c.typeRef(field.Type),
			Directives:  c.directives(field.Directives),
			Loc:         outLoc(field.Span),
		}))
	}
	return out
}

func (c *outConverter) inputValueDefinitions(defs []*ast.InputValueDefinition) []*gqlast.InputValueDefinition {
	var out []*gqlast.InputValueDefinition
	for _, def := range defs {
		if def == nil {
			continue
		}
		out = append(out, gqlast.NewInputValueDefinition(&gqlast.InputValueDefinition{
			Name:         c.name(def.Name),
			Description:  c.description(def.Description),
			Type:         c.typeRef(def.Type),
			DefaultValue: c.value(def.DefaultValue),
			Directives:   c.directives(def.Directives),
			Loc:          outLoc(def.Span),
		}))
	}
	return out
}

func (c *outConverter) name(n *ast.Name) *gqlast.Name {
	if n == nil {
		return nil
	}
	return gqlast.NewName(&gqlast.Name{Value: n.Value, Loc: outLoc(n.Span)})
}

func (c *outConverter) named(n *ast.Name) *gqlast.Named {
	if n == nil {
		return nil
	}
	return gqlast.NewNamed(&gqlast.Named{Name: c.name(n), Loc: outLoc(n.Span)})
}

func (c *outConverter) namedList(names []*ast.Name) []*gqlast.Named {
	var out []*gqlast.Named
	for _, n := range names {
		if named := c.named(n); named != nil {
			out = append(out, named)
		}
	}
	return out
}

func (c *outConverter) description(s *ast.StringValue) *gqlast.StringValue {
	if s == nil {
		return nil
	}
	return gqlast.NewStringValue(&gqlast.StringValue{Value: s.Value, Loc: outLoc(s.Span)})
}
