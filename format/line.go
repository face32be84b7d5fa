package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/tako/graphql/ast"
)

// LineEncoder writes one tab-separated line per definition, with
// nested lines for fields and enum values. The output is meant for
// grep and cut rather than for people.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(doc *ast.Document) error {
	text, err := e.MarshalText(doc)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText(doc *ast.Document) ([]byte, error) {
	var sb strings.Builder
	for _, def := range doc.Definitions {
		e.writeDefinition(&sb, def)
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeDefinition(sb *strings.Builder, def ast.Definition) {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		fmt.Fprintf(sb, "%s\t%s\t%s\n",
			d.OperationKind,
			nameStr(d.Name),
			e.variablesStr(d.VariableDefinitions),
		)
	case *ast.FragmentDefinition:
		condition := "-"
		if d.TypeCondition != nil {
			condition = nameStr(d.TypeCondition.NamedType)
		}
		fmt.Fprintf(sb, "fragment\t%s\t%s\n", nameStr(d.Name), condition)
	case *ast.SchemaDefinition:
		fmt.Fprintf(sb, "schema\t-\t%s\n", e.rootOperationsStr(d.RootOperations))
	case *ast.SchemaExtension:
		fmt.Fprintf(sb, "extend-schema\t-\t%s\n", e.rootOperationsStr(d.RootOperations))
	case *ast.ScalarTypeDefinition:
		fmt.Fprintf(sb, "scalar\t%s\n", nameStr(d.Name))
	case *ast.ObjectTypeDefinition:
		fmt.Fprintf(sb, "type\t%s\t%s\n", nameStr(d.Name), namesStr(d.Implements))
		e.writeFields(sb, d.Fields)
	case *ast.InterfaceTypeDefinition:
		fmt.Fprintf(sb, "interface\t%s\t%s\n", nameStr(d.Name), namesStr(d.Implements))
		e.writeFields(sb, d.Fields)
	case *ast.UnionTypeDefinition:
		fmt.Fprintf(sb, "union\t%s\t%s\n", nameStr(d.Name), namesStr(d.Members))
	case *ast.EnumTypeDefinition:
		fmt.Fprintf(sb, "enum\t%s\n", nameStr(d.Name))
		e.writeEnumValues(sb, d.Values)
	case *ast.InputObjectTypeDefinition:
		fmt.Fprintf(sb, "input\t%s\n", nameStr(d.Name))
		e.writeInputFields(sb, d.Fields)
	case *ast.DirectiveDefinition:
		repeatable := "-"
		if d.Repeatable {
			repeatable = "repeatable"
		}
		fmt.Fprintf(sb, "directive\t@%s\t%s\t%s\n",
			nameStr(d.Name),
			e.locationsStr(d.Locations),
			repeatable,
		)
	case *ast.ScalarTypeExtension:
		fmt.Fprintf(sb, "extend-scalar\t%s\n", nameStr(d.Name))
	case *ast.ObjectTypeExtension:
		fmt.Fprintf(sb, "extend-type\t%s\t%s\n", nameStr(d.Name), namesStr(d.Implements))
		e.writeFields(sb, d.Fields)
	case *ast.InterfaceTypeExtension:
		fmt.Fprintf(sb, "extend-interface\t%s\t%s\n", nameStr(d.Name), namesStr(d.Implements))
		e.writeFields(sb, d.Fields)
	case *ast.UnionTypeExtension:
		fmt.Fprintf(sb, "extend-union\t%s\t%s\n", nameStr(d.Name), namesStr(d.Members))
	case *ast.EnumTypeExtension:
		fmt.Fprintf(sb, "extend-enum\t%s\n", nameStr(d.Name))
		e.writeEnumValues(sb, d.Values)
	case *ast.InputObjectTypeExtension:
		fmt.Fprintf(sb, "extend-input\t%s\n", nameStr(d.Name))
		e.writeInputFields(sb, d.Fields)
	}
}

func (e *LineEncoder) writeFields(sb *strings.Builder, fields []*ast.FieldDefinition) {
	for _, f := range fields {
		fmt.Fprintf(sb, "field\t%s\t%s\t%s\n",
			nameStr(f.Name),
			typeStr(f.Type),
			e.argumentsStr(f.Arguments),
		)
	}
}

func (e *LineEncoder) writeInputFields(sb *strings.Builder, fields []*ast.InputValueDefinition) {
	for _, f := range fields {
		fmt.Fprintf(sb, "field\t%s\t%s\t-\n", nameStr(f.Name), typeStr(f.Type))
	}
}

func (e *LineEncoder) writeEnumValues(sb *strings.Builder, values []*ast.EnumValueDefinition) {
	for _, v := range values {
		fmt.Fprintf(sb, "value\t%s\n", nameStr(v.Name))
	}
}

func (e *LineEncoder) variablesStr(defs []*ast.VariableDefinition) string {
	if len(defs) == 0 {
		return "-"
	}
	var parts []string
	for _, vd := range defs {
		parts = append(parts, fmt.Sprintf("$%s:%s", nameStr(vd.Variable), typeStr(vd.Type)))
	}
	return strings.Join(parts, ",")
}

func (e *LineEncoder) argumentsStr(args []*ast.InputValueDefinition) string {
	if len(args) == 0 {
		return "-"
	}
	var parts []string
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%s:%s", nameStr(arg.Name), typeStr(arg.Type)))
	}
	return strings.Join(parts, ",")
}

func (e *LineEncoder) rootOperationsStr(ops []*ast.RootOperationTypeDefinition) string {
	if len(ops) == 0 {
		return "-"
	}
	var parts []string
	for _, op := range ops {
		parts = append(parts, fmt.Sprintf("%s:%s", op.OperationKind, nameStr(op.NamedType)))
	}
	return strings.Join(parts, ",")
}

func (e *LineEncoder) locationsStr(locs []*ast.DirectiveLocation) string {
	if len(locs) == 0 {
		return "-"
	}
	var parts []string
	for _, loc := range locs {
		parts = append(parts, loc.Kind.String())
	}
	return strings.Join(parts, ",")
}

func namesStr(names []*ast.Name) string {
	if len(names) == 0 {
		return "-"
	}
	var parts []string
	for _, n := range names {
		parts = append(parts, n.Value)
	}
	return strings.Join(parts, ",")
}

func nameStr(n *ast.Name) string {
	if n == nil {
		return "-"
	}
	return n.Value
}

func typeStr(t ast.TypeAnnotation) string {
	switch t := t.(type) {
	case *ast.NamedTypeAnnotation:
		s := nameStr(t.Name)
		if t.Nullability.NonNull {
			s += "!"
		}
		return s
	case *ast.ListTypeAnnotation:
		s := "[" + typeStr(t.ElementType) + "]"
		if t.Nullability.NonNull {
			s += "!"
		}
		return s
	}
	return "-"
}
