package compat

import (
	"testing"

	gqlast "github.com/graphql-go/graphql/language/ast"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/parser"
	"github.com/dhamidi/tako/graphql/token"
)

func gqlName(value string) *gqlast.Name {
	return gqlast.NewName(&gqlast.Name{Value: value})
}

func gqlNamed(name string) *gqlast.Named {
	return gqlast.NewNamed(&gqlast.Named{Name: gqlName(name)})
}

// inArgValue round-trips a single argument value through FromGraphQLGo.
func inArgValue(t *testing.T, raw gqlast.Value) (ast.Value, parser.Diagnostics) {
	t.Helper()
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewOperationDefinition(&gqlast.OperationDefinition{
				Operation: gqlast.OperationTypeQuery,
				SelectionSet: gqlast.NewSelectionSet(&gqlast.SelectionSet{
					Selections: []gqlast.Selection{
						gqlast.NewField(&gqlast.Field{
							Name: gqlName("f"),
							Arguments: []*gqlast.Argument{
								gqlast.NewArgument(&gqlast.Argument{
									Name:  gqlName("a"),
									Value: raw,
								}),
							},
						}),
					},
				}),
			}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	op := got.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	return field.Arguments[0].Value, diags
}

func annotationOf(t *testing.T, typ gqlast.Type) ast.TypeAnnotation {
	t.Helper()
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewOperationDefinition(&gqlast.OperationDefinition{
				Operation: gqlast.OperationTypeQuery,
				VariableDefinitions: []*gqlast.VariableDefinition{
					gqlast.NewVariableDefinition(&gqlast.VariableDefinition{
						Variable: gqlast.NewVariable(&gqlast.Variable{Name: gqlName("v")}),
						Type:     typ,
					}),
				},
			}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	if len(diags) != 0 {
		t.Fatalf("FromGraphQLGo: unexpected diagnostics: %v", diags)
	}
	op := got.Definitions[0].(*ast.OperationDefinition)
	return op.VariableDefinitions[0].Type
}

func TestFromGraphQLGoNilDocument(t *testing.T) {
	got, diags := FromGraphQLGo(nil)
	if got != nil || diags != nil {
		t.Errorf("FromGraphQLGo(nil): got (%v, %v), want (nil, nil)", got, diags)
	}
}

func TestFromGraphQLGoQuery(t *testing.T) {
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewOperationDefinition(&gqlast.OperationDefinition{
				Operation: gqlast.OperationTypeQuery,
				Name:      gqlName("Q"),
				VariableDefinitions: []*gqlast.VariableDefinition{
					gqlast.NewVariableDefinition(&gqlast.VariableDefinition{
						Variable: gqlast.NewVariable(&gqlast.Variable{Name: gqlName("id")}),
						Type:     gqlNamed("ID"),
					}),
				},
				SelectionSet: gqlast.NewSelectionSet(&gqlast.SelectionSet{
					Selections: []gqlast.Selection{
						gqlast.NewField(&gqlast.Field{Name: gqlName("user")}),
					},
				}),
			}),
		},
	})

	got, diags := FromGraphQLGo(doc)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: got %v, want none", diags)
	}
	if len(got.Definitions) != 1 {
		t.Fatalf("definitions: got %d, want 1", len(got.Definitions))
	}
	op, ok := got.Definitions[0].(*ast.OperationDefinition)
	if !ok {
		t.Fatalf("definition type: got %T, want *ast.OperationDefinition", got.Definitions[0])
	}
	if op.OperationKind != ast.OperationQuery {
		t.Errorf("operation kind: got %v, want query", op.OperationKind)
	}
	if op.Name == nil || op.Name.Value != "Q" {
		t.Errorf("operation name: got %v, want Q", op.Name)
	}
	if len(op.VariableDefinitions) != 1 {
		t.Fatalf("variable definitions: got %d, want 1", len(op.VariableDefinitions))
	}
	vd := op.VariableDefinitions[0]
	if vd.Variable == nil || vd.Variable.Value != "id" {
		t.Errorf("variable: got %v, want id", vd.Variable)
	}
	named, ok := vd.Type.(*ast.NamedTypeAnnotation)
	if !ok || named.Name.Value != "ID" || named.Nullability.NonNull {
		t.Errorf("variable type: got %v, want nullable ID", vd.Type)
	}
	if len(vd.Directives) != 0 {
		t.Errorf("variable directives: got %d, want 0", len(vd.Directives))
	}
	field, ok := op.SelectionSet.Selections[0].(*ast.Field)
	if !ok || field.Name.Value != "user" {
		t.Errorf("selection: got %v, want field user", op.SelectionSet.Selections[0])
	}

	// No source text, so spans degrade to the origin with no UTF-16
	// column.
	if got.Span != zeroSpan() {
		t.Errorf("document span: got %v, want zero span", got.Span)
	}
	if field.Span.Start.HasColumnUTF16() {
		t.Errorf("field span UTF-16 column: got %d, want unavailable", field.Span.Start.ColumnUTF16)
	}
}

func TestFromGraphQLGoOperationKinds(t *testing.T) {
	tests := []struct {
		operation string
		want      ast.OperationKind
	}{
		{gqlast.OperationTypeQuery, ast.OperationQuery},
		{"", ast.OperationQuery},
		{gqlast.OperationTypeMutation, ast.OperationMutation},
		{gqlast.OperationTypeSubscription, ast.OperationSubscription},
	}
	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			doc := gqlast.NewDocument(&gqlast.Document{
				Definitions: []gqlast.Node{
					gqlast.NewOperationDefinition(&gqlast.OperationDefinition{Operation: tt.operation}),
				},
			})
			got, diags := FromGraphQLGo(doc)
			if len(diags) != 0 {
				t.Fatalf("diagnostics: got %v, want none", diags)
			}
			op := got.Definitions[0].(*ast.OperationDefinition)
			if op.OperationKind != tt.want {
				t.Errorf("operation kind: got %v, want %v", op.OperationKind, tt.want)
			}
		})
	}
}

func TestFromGraphQLGoUnknownOperationType(t *testing.T) {
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewOperationDefinition(&gqlast.OperationDefinition{Operation: "permission"}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	if len(got.Definitions) != 0 {
		t.Errorf("definitions: got %d, want 0", len(got.Definitions))
	}
	if len(diags) != 1 {
		t.Fatalf("diagnostics: got %d, want 1", len(diags))
	}
	want := "unknown operation type `permission`; expected `query`, `mutation`, or `subscription`"
	if diags[0].Message != want {
		t.Errorf("message: got %q, want %q", diags[0].Message, want)
	}
	if diags[0].Kind != parser.InvalidSyntax {
		t.Errorf("kind: got %v, want %v", diags[0].Kind, parser.InvalidSyntax)
	}
}

func TestFromGraphQLGoIntValues(t *testing.T) {
	tests := []struct {
		raw  string
		want int32
		err  string
	}{
		{"42", 42, ""},
		{"-2147483648", -2147483648, ""},
		{"2147483648", 0, "integer `2147483648` overflows 32-bit integer"},
		{"99999999999999999999", 0, "invalid integer `99999999999999999999`"},
		{"abc", 0, "invalid integer `abc`"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value, diags := inArgValue(t, gqlast.NewIntValue(&gqlast.IntValue{Value: tt.raw}))
			if tt.err != "" {
				if value != nil {
					t.Errorf("value: got %v, want nil", value)
				}
				if len(diags) != 1 {
					t.Fatalf("diagnostics: got %d, want 1", len(diags))
				}
				if diags[0].Message != tt.err {
					t.Errorf("message: got %q, want %q", diags[0].Message, tt.err)
				}
				if diags[0].Kind != parser.InvalidValue {
					t.Errorf("kind: got %v, want %v", diags[0].Kind, parser.InvalidValue)
				}
				return
			}
			if len(diags) != 0 {
				t.Fatalf("diagnostics: got %v, want none", diags)
			}
			iv, ok := value.(*ast.IntValue)
			if !ok || iv.Value != tt.want {
				t.Errorf("value: got %v, want %d", value, tt.want)
			}
		})
	}
}

func TestFromGraphQLGoFloatValues(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		err  string
	}{
		{"1.5", 1.5, ""},
		{"1e999", 0, "float `1e999` is not a finite number"},
		{"xyz", 0, "invalid float `xyz`"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value, diags := inArgValue(t, gqlast.NewFloatValue(&gqlast.FloatValue{Value: tt.raw}))
			if tt.err != "" {
				if value != nil {
					t.Errorf("value: got %v, want nil", value)
				}
				if len(diags) != 1 {
					t.Fatalf("diagnostics: got %d, want 1", len(diags))
				}
				if diags[0].Message != tt.err {
					t.Errorf("message: got %q, want %q", diags[0].Message, tt.err)
				}
				return
			}
			if len(diags) != 0 {
				t.Fatalf("diagnostics: got %v, want none", diags)
			}
			fv, ok := value.(*ast.FloatValue)
			if !ok || fv.Value != tt.want {
				t.Errorf("value: got %v, want %v", value, tt.want)
			}
		})
	}
}

func TestFromGraphQLGoTypeAnnotations(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		named, ok := annotationOf(t, gqlNamed("ID")).(*ast.NamedTypeAnnotation)
		if !ok || named.Name.Value != "ID" || named.Nullability.NonNull {
			t.Errorf("got %v, want nullable ID", named)
		}
	})

	t.Run("non-null named", func(t *testing.T) {
		typ := gqlast.NewNonNull(&gqlast.NonNull{Type: gqlNamed("ID")})
		named, ok := annotationOf(t, typ).(*ast.NamedTypeAnnotation)
		if !ok || !named.Nullability.NonNull {
			t.Errorf("got %v, want non-null ID", named)
		}
	})

	t.Run("double non-null folds", func(t *testing.T) {
		typ := gqlast.NewNonNull(&gqlast.NonNull{
			Type: gqlast.NewNonNull(&gqlast.NonNull{Type: gqlNamed("ID")}),
		})
		named, ok := annotationOf(t, typ).(*ast.NamedTypeAnnotation)
		if !ok || !named.Nullability.NonNull {
			t.Errorf("got %v, want non-null ID", named)
		}
	})

	t.Run("list of non-null", func(t *testing.T) {
		typ := gqlast.NewList(&gqlast.List{
			Type: gqlast.NewNonNull(&gqlast.NonNull{Type: gqlNamed("ID")}),
		})
		list, ok := annotationOf(t, typ).(*ast.ListTypeAnnotation)
		if !ok || list.Nullability.NonNull {
			t.Fatalf("got %v, want nullable list", list)
		}
		elem, ok := list.ElementType.(*ast.NamedTypeAnnotation)
		if !ok || !elem.Nullability.NonNull {
			t.Errorf("element: got %v, want non-null ID", list.ElementType)
		}
	})

	t.Run("non-null list", func(t *testing.T) {
		typ := gqlast.NewNonNull(&gqlast.NonNull{
			Type: gqlast.NewList(&gqlast.List{Type: gqlNamed("ID")}),
		})
		list, ok := annotationOf(t, typ).(*ast.ListTypeAnnotation)
		if !ok || !list.Nullability.NonNull {
			t.Fatalf("got %v, want non-null list", list)
		}
		elem, ok := list.ElementType.(*ast.NamedTypeAnnotation)
		if !ok || elem.Nullability.NonNull {
			t.Errorf("element: got %v, want nullable ID", list.ElementType)
		}
	})
}

func TestFromGraphQLGoDirectiveLocations(t *testing.T) {
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewDirectiveDefinition(&gqlast.DirectiveDefinition{
				Name: gqlName("cache"),
				Locations: []*gqlast.Name{
					gqlName("FIELD"),
					gqlName("FEILD"),
					gqlName("INPUT_FIELD_DEFINITION"),
				},
			}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	if len(diags) != 1 {
		t.Fatalf("diagnostics: got %d, want 1", len(diags))
	}
	if diags[0].Message != "unknown directive location `FEILD`" {
		t.Errorf("message: got %q, want %q", diags[0].Message, "unknown directive location `FEILD`")
	}
	if diags[0].Kind != parser.InvalidDirectiveLocation {
		t.Errorf("kind: got %v, want %v", diags[0].Kind, parser.InvalidDirectiveLocation)
	}
	def := got.Definitions[0].(*ast.DirectiveDefinition)
	if len(def.Locations) != 2 {
		t.Fatalf("locations: got %d, want 2", len(def.Locations))
	}
	if def.Locations[0].Kind != ast.LocationField || def.Locations[1].Kind != ast.LocationInputFieldDefinition {
		t.Errorf("location kinds: got [%v, %v], want [FIELD, INPUT_FIELD_DEFINITION]",
			def.Locations[0].Kind, def.Locations[1].Kind)
	}
	if def.Repeatable {
		t.Error("repeatable: got true, want false")
	}
}

func TestFromGraphQLGoObjectExtension(t *testing.T) {
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewTypeExtensionDefinition(&gqlast.TypeExtensionDefinition{
				Definition: gqlast.NewObjectDefinition(&gqlast.ObjectDefinition{
					Name:       gqlName("User"),
					Interfaces: []*gqlast.Named{gqlNamed("Node")},
					Fields: []*gqlast.FieldDefinition{
						gqlast.NewFieldDefinition(&gqlast.FieldDefinition{
							Name: gqlName("id"),
							Type: gqlNamed("ID"),
						}),
					},
				}),
			}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: got %v, want none", diags)
	}
	ext, ok := got.Definitions[0].(*ast.ObjectTypeExtension)
	if !ok {
		t.Fatalf("definition type: got %T, want *ast.ObjectTypeExtension", got.Definitions[0])
	}
	if ext.Name == nil || ext.Name.Value != "User" {
		t.Errorf("name: got %v, want User", ext.Name)
	}
	if len(ext.Implements) != 1 || ext.Implements[0].Value != "Node" {
		t.Errorf("implements: got %v, want [Node]", ext.Implements)
	}
	if len(ext.Fields) != 1 || ext.Fields[0].Name.Value != "id" {
		t.Errorf("fields: got %v, want [id]", ext.Fields)
	}
}

func TestFromGraphQLGoSchemaDefinition(t *testing.T) {
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewSchemaDefinition(&gqlast.SchemaDefinition{
				OperationTypes: []*gqlast.OperationTypeDefinition{
					gqlast.NewOperationTypeDefinition(&gqlast.OperationTypeDefinition{
						Operation: gqlast.OperationTypeQuery,
						Type:      gqlNamed("Query"),
					}),
					gqlast.NewOperationTypeDefinition(&gqlast.OperationTypeDefinition{
						Operation: "permission",
						Type:      gqlNamed("Permission"),
					}),
				},
			}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	if len(diags) != 1 {
		t.Fatalf("diagnostics: got %d, want 1", len(diags))
	}
	schema := got.Definitions[0].(*ast.SchemaDefinition)
	if len(schema.RootOperations) != 1 {
		t.Fatalf("root operations: got %d, want 1", len(schema.RootOperations))
	}
	root := schema.RootOperations[0]
	if root.OperationKind != ast.OperationQuery || root.NamedType == nil || root.NamedType.Value != "Query" {
		t.Errorf("root operation: got %v %v, want query Query", root.OperationKind, root.NamedType)
	}
}

// Descriptions come back as plain strings; the block form is not
// recorded in graphql-go.
func TestFromGraphQLGoDescriptions(t *testing.T) {
	doc := gqlast.NewDocument(&gqlast.Document{
		Definitions: []gqlast.Node{
			gqlast.NewScalarDefinition(&gqlast.ScalarDefinition{
				Name:        gqlName("Count"),
				Description: gqlast.NewStringValue(&gqlast.StringValue{Value: "Counts things."}),
			}),
		},
	})
	got, diags := FromGraphQLGo(doc)
	if len(diags) != 0 {
		t.Fatalf("diagnostics: got %v, want none", diags)
	}
	scalar := got.Definitions[0].(*ast.ScalarTypeDefinition)
	if scalar.Description == nil || scalar.Description.Value != "Counts things." {
		t.Fatalf("description: got %v, want Counts things.", scalar.Description)
	}
	if scalar.Description.Block {
		t.Error("description block: got true, want false")
	}
}

func TestLineIndexPositions(t *testing.T) {
	index := newLineIndex([]byte("ab\ncd\r\nef\rg😀h"))
	tests := []struct {
		offset int
		want   token.SourcePosition
	}{
		{0, token.SourcePosition{Line: 0, Column: 0, ColumnUTF16: 0, ByteOffset: 0}},
		{1, token.SourcePosition{Line: 0, Column: 1, ColumnUTF16: 1, ByteOffset: 1}},
		{3, token.SourcePosition{Line: 1, Column: 0, ColumnUTF16: 0, ByteOffset: 3}},
		{4, token.SourcePosition{Line: 1, Column: 1, ColumnUTF16: 1, ByteOffset: 4}},
		{7, token.SourcePosition{Line: 2, Column: 0, ColumnUTF16: 0, ByteOffset: 7}},
		{8, token.SourcePosition{Line: 2, Column: 1, ColumnUTF16: 1, ByteOffset: 8}},
		{10, token.SourcePosition{Line: 3, Column: 0, ColumnUTF16: 0, ByteOffset: 10}},
		{11, token.SourcePosition{Line: 3, Column: 1, ColumnUTF16: 1, ByteOffset: 11}},
		{15, token.SourcePosition{Line: 3, Column: 2, ColumnUTF16: 3, ByteOffset: 15}},
		{16, token.SourcePosition{Line: 3, Column: 3, ColumnUTF16: 4, ByteOffset: 16}},
		{-5, token.SourcePosition{Line: 0, Column: 0, ColumnUTF16: 0, ByteOffset: 0}},
		{99, token.SourcePosition{Line: 3, Column: 3, ColumnUTF16: 4, ByteOffset: 16}},
	}
	for _, tt := range tests {
		if got := index.position(tt.offset); got != tt.want {
			t.Errorf("position(%d): got %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestFromGraphQLGoWithSource(t *testing.T) {
	source := "query {\n  f\n}"
	doc := gqlast.NewDocument(&gqlast.Document{
		Loc: gqlast.NewLocation(&gqlast.Location{Start: 0, End: 13}),
		Definitions: []gqlast.Node{
			gqlast.NewOperationDefinition(&gqlast.OperationDefinition{
				Operation: gqlast.OperationTypeQuery,
				Loc:       gqlast.NewLocation(&gqlast.Location{Start: 0, End: 13}),
				SelectionSet: gqlast.NewSelectionSet(&gqlast.SelectionSet{
					Loc: gqlast.NewLocation(&gqlast.Location{Start: 6, End: 13}),
					Selections: []gqlast.Selection{
						gqlast.NewField(&gqlast.Field{
							Name: gqlast.NewName(&gqlast.Name{
								Value: "f",
								Loc:   gqlast.NewLocation(&gqlast.Location{Start: 10, End: 11}),
							}),
							Loc: gqlast.NewLocation(&gqlast.Location{Start: 10, End: 11}),
						}),
					},
				}),
			}),
		},
	})

	got, diags := FromGraphQLGoWithSource(doc, []byte(source))
	if len(diags) != 0 {
		t.Fatalf("diagnostics: got %v, want none", diags)
	}
	op := got.Definitions[0].(*ast.OperationDefinition)
	field := op.SelectionSet.Selections[0].(*ast.Field)

	wantStart := token.SourcePosition{Line: 1, Column: 2, ColumnUTF16: 2, ByteOffset: 10}
	if field.Span.Start != wantStart {
		t.Errorf("field start: got %+v, want %+v", field.Span.Start, wantStart)
	}
	wantEnd := token.SourcePosition{Line: 1, Column: 3, ColumnUTF16: 3, ByteOffset: 11}
	if field.Span.End != wantEnd {
		t.Errorf("field end: got %+v, want %+v", field.Span.End, wantEnd)
	}
	wantDocEnd := token.SourcePosition{Line: 2, Column: 1, ColumnUTF16: 1, ByteOffset: 13}
	if got.Span.End != wantDocEnd {
		t.Errorf("document end: got %+v, want %+v", got.Span.End, wantDocEnd)
	}
}
