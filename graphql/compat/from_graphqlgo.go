package compat

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"

	gqlast "github.com/graphql-go/graphql/language/ast"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/parser"
	"github.com/dhamidi/tako/graphql/token"
)

// FromGraphQLGo converts a graphql-go document to this package's AST.
// graphql-go locations carry only byte offsets, so without the source
// text all spans degrade to zero-width spans at the origin; use
// FromGraphQLGoWithSource to recover full positions.
//
// Inputs graphql-go permits but this AST rejects (malformed numeric
// literals, unknown operation types, unknown directive locations)
// record diagnostics and their slots stay empty; the rest of the
// document still converts.
func FromGraphQLGo(doc *gqlast.Document) (*ast.Document, parser.Diagnostics) {
	return fromGraphQLGo(doc, nil)
}

// FromGraphQLGoWithSource converts like FromGraphQLGo but recomputes
// full positions (line, column, UTF-16 column) from the source text the
// graphql-go document was parsed from.
func FromGraphQLGoWithSource(doc *gqlast.Document, source []byte) (*ast.Document, parser.Diagnostics) {
	return fromGraphQLGo(doc, newLineIndex(source))
}

func fromGraphQLGo(doc *gqlast.Document, index *lineIndex) (*ast.Document, parser.Diagnostics) {
	if doc == nil {
		return nil, nil
	}
	c := &inConverter{index: index}
	var defs []ast.Definition
	for _, node := range doc.Definitions {
		if def := c.definition(node); def != nil {
			defs = append(defs, def)
		}
	}
	out := &ast.Document{Definitions: defs, Span: c.span(doc.Loc)}
	return out, c.diags
}

// inConverter accumulates diagnostics for the inputs a conversion had
// to reject, and recomputes spans when a line index is available.
type inConverter struct {
	index *lineIndex
	diags parser.Diagnostics
}

// zeroSpan is the degraded span used when no source text is available.
// The UTF-16 column is marked unavailable rather than claiming zero.
func zeroSpan() token.Span {
	origin := token.SourcePosition{ColumnUTF16: token.NoColumnUTF16}
	return token.Span{Start: origin, End: origin}
}

func (c *inConverter) span(loc *gqlast.Location) token.Span {
	if loc == nil || c.index == nil {
		return zeroSpan()
	}
	return token.Span{
		Start: c.index.position(loc.Start),
		End:   c.index.position(loc.End),
	}
}

func (c *inConverter) unsupported(what string, typ interface{}, span token.Span) {
	c.diags = append(c.diags, parser.NewError(
		fmt.Sprintf("cannot convert %s of type %T", what, typ),
		span, parser.UnsupportedFeature))
}

func operationKind(op string) (ast.OperationKind, bool) {
	switch op {
	case gqlast.OperationTypeQuery, "":
		return ast.OperationQuery, true
	case gqlast.OperationTypeMutation:
		return ast.OperationMutation, true
	case gqlast.OperationTypeSubscription:
		return ast.OperationSubscription, true
	}
	return 0, false
}

func (c *inConverter) definition(node gqlast.Node) ast.Definition {
	if node == nil {
		return nil
	}
	switch d := node.(type) {
	case *gqlast.OperationDefinition:
		return c.operation(d)
	case *gqlast.FragmentDefinition:
		return c.fragment(d)
	case *gqlast.SchemaDefinition:
		return c.schemaDefinition(d)
	case *gqlast.ScalarDefinition:
		return c.scalarDefinition(d)
	case *gqlast.ObjectDefinition:
		return c.objectDefinition(d)
	case *gqlast.InterfaceDefinition:
		return c.interfaceDefinition(d)
	case *gqlast.UnionDefinition:
		return c.unionDefinition(d)
	case *gqlast.EnumDefinition:
		return c.enumDefinition(d)
	case *gqlast.InputObjectDefinition:
		return c.inputObjectDefinition(d)
	case *gqlast.TypeExtensionDefinition:
		return c.objectExtension(d)
	case *gqlast.DirectiveDefinition:
		return c.directiveDefinition(d)
	}
	c.unsupported("definition", node, c.span(node.GetLoc()))
	return nil
}

// operation rejects operation types outside query, mutation, and
// subscription: graphql-go stores the type as a free string, this AST
// as a closed kind.
func (c *inConverter) operation(d *gqlast.OperationDefinition) ast.Definition {
	kind, ok := operationKind(d.Operation)
	if !ok {
		c.diags = append(c.diags, parser.NewError(
			fmt.Sprintf("unknown operation type `%s`; expected `query`, `mutation`, or `subscription`", d.Operation),
			c.span(d.Loc), parser.InvalidSyntax))
		return nil
	}
	var varDefs []*ast.VariableDefinition
	for _, vd := range d.VariableDefinitions {
		if out := c.variableDefinition(vd); out != nil {
			varDefs = append(varDefs, out)
		}
	}
	return &ast.OperationDefinition{
		OperationKind:       kind,
		Name:                c.name(d.Name),
		VariableDefinitions: varDefs,
		Directives:          c.directives(d.Directives),
		SelectionSet:        c.selectionSet(d.SelectionSet),
		Span:                c.span(d.Loc),
	}
}

func (c *inConverter) variableDefinition(vd *gqlast.VariableDefinition) *ast.VariableDefinition {
	if vd == nil {
		return nil
	}
	out := &ast.VariableDefinition{
		Type:         c.typeAnnotation(vd.Type),
		DefaultValue: c.value(vd.DefaultValue),
		Span:         c.span(vd.Loc),
	}
	if vd.Variable != nil {
		out.Variable = c.name(vd.Variable.Name)
	}
	return out
}

func (c *inConverter) fragment(d *gqlast.FragmentDefinition) ast.Definition {
	return &ast.FragmentDefinition{
		Name:          c.name(d.Name),
		TypeCondition: c.typeCondition(d.TypeCondition),
		Directives:    c.directives(d.Directives),
		SelectionSet:  c.selectionSet(d.SelectionSet),
		Span:          c.span(d.Loc),
	}
}

func (c *inConverter) typeCondition(named *gqlast.Named) *ast.TypeCondition {
	if named == nil {
		return nil
	}
	return &ast.TypeCondition{
		NamedType: c.name(named.Name),
		Span:      c.span(named.Loc),
	}
}

func (c *inConverter) selectionSet(ss *gqlast.SelectionSet) *ast.SelectionSet {
	if ss == nil {
		return nil
	}
	var selections []ast.Selection
	for _, sel := range ss.Selections {
		if out := c.selection(sel); out != nil {
			selections = append(selections, out)
		}
	}
	return &ast.SelectionSet{Selections: selections, Span: c.span(ss.Loc)}
}

func (c *inConverter) selection(sel gqlast.Selection) ast.Selection {
	if sel == nil {
		return nil
	}
	switch s := sel.(type) {
	case *gqlast.Field:
		return &ast.Field{
			Alias:        c.name(s.Alias),
			Name:         c.name(s.Name),
			Arguments:    c.arguments(s.Arguments),
			Directives:   c.directives(s.Directives),
			SelectionSet: c.selectionSet(s.SelectionSet),
			Span:         c.span(s.Loc),
		}
	case *gqlast.FragmentSpread:
		return &ast.FragmentSpread{
			Name:       c.name(s.Name),
			Directives: c.directives(s.Directives),
			Span:       c.span(s.Loc),
		}
	case *gqlast.InlineFragment:
		return &ast.InlineFragment{
			TypeCondition: c.typeCondition(s.TypeCondition),
			Directives:    c.directives(s.Directives),
			SelectionSet:  c.selectionSet(s.SelectionSet),
			Span:          c.span(s.Loc),
		}
	}
	span := zeroSpan()
	if node, ok := sel.(gqlast.Node); ok {
		span = c.span(node.GetLoc())
	}
	c.unsupported("selection", sel, span)
	return nil
}

func (c *inConverter) arguments(args []*gqlast.Argument) []*ast.Argument {
	var out []*ast.Argument
	for _, arg := range args {
		if arg == nil {
			continue
		}
		out = append(out, &ast.Argument{
			Name:  c.name(arg.Name),
			Value: c.value(arg.Value),
			Span:  c.span(arg.Loc),
		})
	}
	return out
}

func (c *inConverter) directives(dirs []*gqlast.Directive) []*ast.DirectiveAnnotation {
	var out []*ast.DirectiveAnnotation
	for _, dir := range dirs {
		if dir == nil {
			continue
		}
		out = append(out, &ast.DirectiveAnnotation{
			Name:      c.name(dir.Name),
			Arguments: c.arguments(dir.Arguments),
			Span:      c.span(dir.Loc),
		})
	}
	return out
}

func (c *inConverter) value(v gqlast.Value) ast.Value {
	if v == nil {
		return nil
	}
	switch v := v.(type) {
	case *gqlast.Variable:
		return &ast.VariableValue{Name: c.name(v.Name), Span: c.span(v.Loc)}
	case *gqlast.IntValue:
		return c.intValue(v)
	case *gqlast.FloatValue:
		return c.floatValue(v)
	case *gqlast.StringValue:
		return &ast.StringValue{Value: v.Value, Span: c.span(v.Loc)}
	case *gqlast.BooleanValue:
		return &ast.BooleanValue{Value: v.Value, Span: c.span(v.Loc)}
	case *gqlast.EnumValue:
		return &ast.EnumValue{Value: v.Value, Span: c.span(v.Loc)}
	case *gqlast.ListValue:
		var values []ast.Value
		for _, item := range v.Values {
			if out := c.value(item); out != nil {
				values = append(values, out)
			}
		}
		return &ast.ListValue{Values: values, Span: c.span(v.Loc)}
	case *gqlast.ObjectValue:
		var fields []*ast.ObjectField
		for _, field := range v.Fields {
			if field == nil {
				continue
			}
			fields = append(fields, &ast.ObjectField{
				Name:  c.name(field.Name),
				Value: c.value(field.Value),
				Span:  c.span(field.Loc),
			})
		}
		return &ast.ObjectValue{Fields: fields, Span: c.span(v.Loc)}
	}
	c.unsupported("value", v, c.span(v.GetLoc()))
	return nil
}

// intValue parses the raw literal text graphql-go stores back to a
// 32-bit value, with the same two failure modes the parser reports for
// source text.
func (c *inConverter) intValue(v *gqlast.IntValue) ast.Value {
	n, err := strconv.ParseInt(v.Value, 10, 64)
	if err != nil {
		c.diags = append(c.diags, parser.NewError(
			fmt.Sprintf("invalid integer `%s`", v.Value),
			c.span(v.Loc), parser.InvalidValue))
		return nil
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		c.diags = append(c.diags, parser.NewError(
			fmt.Sprintf("integer `%s` overflows 32-bit integer", v.Value),
			c.span(v.Loc), parser.InvalidValue))
		return nil
	}
	return &ast.IntValue{Value: int32(n), Span: c.span(v.Loc)}
}

// floatValue treats out-of-range literals as infinities, the way the
// token package's ParseFloat does, so they surface as non-finite
// rather than invalid.
func (c *inConverter) floatValue(v *gqlast.FloatValue) ast.Value {
	f, err := strconv.ParseFloat(v.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		c.diags = append(c.diags, parser.NewError(
			fmt.Sprintf("invalid float `%s`", v.Value),
			c.span(v.Loc), parser.InvalidValue))
		return nil
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		c.diags = append(c.diags, parser.NewError(
			fmt.Sprintf("float `%s` is not a finite number", v.Value),
			c.span(v.Loc), parser.InvalidValue))
		return nil
	}
	return &ast.FloatValue{Value: f, Span: c.span(v.Loc)}
}

// typeAnnotation folds graphql-go's wrapping NonNull nodes into the
// nullability flag the inner annotation carries. Redundant double
// wrapping folds to a single flag.
func (c *inConverter) typeAnnotation(t gqlast.Type) ast.TypeAnnotation {
	if t == nil {
		return nil
	}
	switch t := t.(type) {
	case *gqlast.Named:
		return &ast.NamedTypeAnnotation{Name: c.name(t.Name), Span: c.span(t.Loc)}
	case *gqlast.List:
		return &ast.ListTypeAnnotation{ElementType: c.typeAnnotation(t.Type), Span: c.span(t.Loc)}
	case *gqlast.NonNull:
		switch inner := c.typeAnnotation(t.Type).(type) {
		case *ast.NamedTypeAnnotation:
			inner.Nullability.NonNull = true
			inner.Span = c.span(t.Loc)
			return inner
		case *ast.ListTypeAnnotation:
			inner.Nullability.NonNull = true
			inner.Span = c.span(t.Loc)
			return inner
		}
		return nil
	}
	c.unsupported("type reference", t, c.span(t.GetLoc()))
	return nil
}

func (c *inConverter) schemaDefinition(d *gqlast.SchemaDefinition) ast.Definition {
	var ops []*ast.RootOperationTypeDefinition
	for _, op := range d.OperationTypes {
		if out := c.rootOperation(op); out != nil {
			ops = append(ops, out)
		}
	}
	return &ast.SchemaDefinition{
		Directives:     c.directives(d.Directives),
		RootOperations: ops,
		Span:           c.span(d.Loc),
	}
}

func (c *inConverter) rootOperation(op *gqlast.OperationTypeDefinition) *ast.RootOperationTypeDefinition {
	if op == nil {
		return nil
	}
	kind, ok := operationKind(op.Operation)
	if !ok {
		c.diags = append(c.diags, parser.NewError(
			fmt.Sprintf("unknown operation type `%s`; expected `query`, `mutation`, or `subscription`", op.Operation),
			c.span(op.Loc), parser.InvalidSyntax))
		return nil
	}
	out := &ast.RootOperationTypeDefinition{OperationKind: kind, Span: c.span(op.Loc)}
	if op.Type != nil {
		out.NamedType = c.name(op.Type.Name)
	}
	return out
}

func (c *inConverter) scalarDefinition(d *gqlast.ScalarDefinition) ast.Definition {
	return &ast.ScalarTypeDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Directives:  c.directives(d.Directives),
		Span:        c.span(d.Loc),
	}
}

func (c *inConverter) objectDefinition(d *gqlast.ObjectDefinition) ast.Definition {
	return &ast.ObjectTypeDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Implements:  c.nameList(d.Interfaces),
		Directives:  c.directives(d.Directives),
		Fields:      c.fieldDefinitions(d.Fields),
		Span:        c.span(d.Loc),
	}
}

func (c *inConverter) interfaceDefinition(d *gqlast.InterfaceDefinition) ast.Definition {
	return &ast.InterfaceTypeDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Directives:  c.directives(d.Directives),
		Fields:      c.fieldDefinitions(d.Fields),
		Span:        c.span(d.Loc),
	}
}

func (c *inConverter) unionDefinition(d *gqlast.UnionDefinition) ast.Definition {
	return &ast.UnionTypeDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Directives:  c.directives(d.Directives),
		Members:     c.nameList(d.Types),
		Span:        c.span(d.Loc),
	}
}

func (c *inConverter) enumDefinition(d *gqlast.EnumDefinition) ast.Definition {
	var values []*ast.EnumValueDefinition
	for _, value := range d.Values {
		if value == nil {
			continue
		}
		values = append(values, &ast.EnumValueDefinition{
			Description: c.description(value.Description),
			Name:        c.name(value.Name),
			Directives:  c.directives(value.Directives),
			Span:        c.span(value.Loc),
		})
	}
	return &ast.EnumTypeDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Directives:  c.directives(d.Directives),
		Values:      values,
		Span:        c.span(d.Loc),
	}
}

func (c *inConverter) inputObjectDefinition(d *gqlast.InputObjectDefinition) ast.Definition {
	return &ast.InputObjectTypeDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Directives:  c.directives(d.Directives),
		Fields:      c.inputValueDefinitions(d.Fields),
		Span:        c.span(d.Loc),
	}
}

// objectExtension unwraps the object definition graphql-go nests inside
// its type extension node.
func (c *inConverter) objectExtension(d *gqlast.TypeExtensionDefinition) ast.Definition {
	out := &ast.ObjectTypeExtension{Span: c.span(d.Loc)}
	if def := d.Definition; def != nil {
		out.Name = c.name(def.Name)
		out.Implements = c.nameList(def.Interfaces)
		out.Directives = c.directives(def.Directives)
		out.Fields = c.fieldDefinitions(def.Fields)
	}
	return out
}

// directiveDefinition rejects location names outside the canonical set:
// graphql-go stores locations as free strings, this AST as a closed
// kind.
func (c *inConverter) directiveDefinition(d *gqlast.DirectiveDefinition) ast.Definition {
	var locations []*ast.DirectiveLocation
	for _, loc := range d.Locations {
		if loc == nil {
			continue
		}
		kind, ok := ast.DirectiveLocationByName(loc.Value)
		if !ok {
			c.diags = append(c.diags, parser.NewError(
				fmt.Sprintf("unknown directive location `%s`", loc.Value),
				c.span(loc.Loc), parser.InvalidDirectiveLocation))
			continue
		}
		locations = append(locations, &ast.DirectiveLocation{Kind: kind, Span: c.span(loc.Loc)})
	}
	return &ast.DirectiveDefinition{
		Description: c.description(d.Description),
		Name:        c.name(d.Name),
		Arguments:   c.inputValueDefinitions(d.Arguments),
		Locations:   locations,
		Span:        c.span(d.Loc),
	}
}

func (c *inConverter) fieldDefinitions(fields []*gqlast.FieldDefinition) []*ast.FieldDefinition {
	var out []*ast.FieldDefinition
	for _, field := range fields {
		if field == nil {
			continue
		}
		out = append(out, &ast.FieldDefinition{
			Description: c.description(field.Description),
			Name:        c.name(field.Name),
			Arguments:   c.inputValueDefinitions(field.Arguments),
			Type:        c.typeAnnotation(field.Type),
			Directives:  c.directives(field.Directives),
			Span:        c.span(field.Loc),
		})
	}
	return out
}

func (c *inConverter) inputValueDefinitions(defs []*gqlast.InputValueDefinition) []*ast.InputValueDefinition {
	var out []*ast.InputValueDefinition
	for _, def := range defs {
		if def == nil {
			continue
		}
		out = append(out, &ast.InputValueDefinition{
			Description:  c.description(def.Description),
			Name:         c.name(def.Name),
			Type:         c.typeAnnotation(def.Type),
			DefaultValue: c.value(def.DefaultValue),
			Directives:   c.directives(def.Directives),
			Span:         c.span(def.Loc),
		})
	}
	return out
}

func (c *inConverter) name(n *gqlast.Name) *ast.Name {
	if n == nil {
		return nil
	}
	return &ast.Name{Value: n.Value, Span: c.span(n.Loc)}
}

func (c *inConverter) nameList(names []*gqlast.Named) []*ast.Name {
	var out []*ast.Name
	for _, n := range names {
		if n == nil {
			continue
		}
		if name := c.name(n.Name); name != nil {
			out = append(out, name)
		}
	}
	return out
}

func (c *inConverter) description(s *gqlast.StringValue) *ast.StringValue {
	if s == nil {
		return nil
	}
	return &ast.StringValue{Value: s.Value, Span: c.span(s.Loc)}
}

// lineIndex maps byte offsets in a source text back to full positions.
// Line starts follow the lexer's terminator rules: \n, \r, and \r\n all
// end a line, with \r\n counting as one terminator.
type lineIndex struct {
	source []byte
	starts []int
}

func newLineIndex(source []byte) *lineIndex {
	starts := []int{0}
	for i, b := range source {
		switch b {
		case '\n':
			if i > 0 && source[i-1] == '\r' {
				// Second half of \r\n: move the start recorded
				// for the \r past the \n.
				starts[len(starts)-1] = i + 1
			} else {
				starts = append(starts, i+1)
			}
		case '\r':
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{source: source, starts: starts}
}

func (x *lineIndex) position(offset int) token.SourcePosition {
	if offset < 0 {
		offset = 0
	}
	if offset > len(x.source) {
		offset = len(x.source)
	}
	line := sort.Search(len(x.starts), func(i int) bool { return x.starts[i] > offset }) - 1
	pos := token.SourcePosition{Line: line, ByteOffset: offset}
	for i := x.starts[line]; i < offset; {
		r, size := utf8.DecodeRune(x.source[i:])
		pos.Column++
		pos.ColumnUTF16 += utf16RuneLen(r)
		i += size
	}
	return pos
}

// utf16RuneLen reports the number of 16-bit words in the UTF-16 encoding
// of the rune. It matches unicode/utf16.RuneLen, which requires Go 1.23;
// this build targets an older toolchain.
func utf16RuneLen(r rune) int {
	switch {
	case 0 <= r && r < 0xD800, 0xE000 <= r && r < 0x10000:
		return 1
	case 0x10000 <= r && r <= utf8.MaxRune:
		return 2
	default:
		return -1
	}
}
