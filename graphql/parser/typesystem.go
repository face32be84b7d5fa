package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/token"
)

// parseDescription consumes a leading string token and returns it as a
// description, or nil when the next token is not a usable string. On a
// cook failure the token is left in place for the caller to trip over.
func (p *Parser) parseDescription() *ast.StringValue {
	tok := p.stream.Peek()
	if tok.Kind != token.StringValue {
		return nil
	}
	cooked, err := tok.ParseString()
	if err != nil {
		return nil
	}
	p.stream.Next()
	return &ast.StringValue{
		Value:  cooked,
		Block:  tok.IsBlockString(),
		Span:   tok.Span,
		Syntax: &ast.StringValueSyntax{Token: tok},
	}
}

// parseSchemaDefinition parses `schema @directives { query: Query ... }`.
func (p *Parser) parseSchemaDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("schema")
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	ops, braces, ok := p.parseRootOperationTypes()
	if !ok {
		return nil, false
	}

	def := &ast.SchemaDefinition{
		Description:    description,
		Directives:     directives,
		RootOperations: ops,
		Span:           token.Span{Start: keyword.Span.Start, End: braces.Close.Span.End},
		Syntax:         &ast.SchemaDefinitionSyntax{SchemaKeyword: keyword, Braces: braces},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}
	return def, true
}

// parseRootOperationTypes parses the `{ query: Name ... }` body shared by
// schema definitions and schema extensions. An entry with an unknown
// operation type is reported and dropped; the rest of the body still
// parses.
func (p *Parser) parseRootOperationTypes() ([]*ast.RootOperationTypeDefinition, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.BraceOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('{', open.Span, inSchemaDefinition)

	var ops []*ast.RootOperationTypeDefinition
	for {
		if p.stream.CheckPunctuator(token.BraceClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBrace()
			return nil, ast.DelimiterPair{}, false
		}

		opTok, ok := p.expectName()
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		colon, ok := p.expect(token.Colon)
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		typeTok, ok := p.expectName()
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}

		var kind ast.OperationKind
		switch nameText(opTok) {
		case "query":
			kind = ast.OperationQuery
		case "mutation":
			kind = ast.OperationMutation
		case "subscription":
			kind = ast.OperationSubscription
		default:
			p.record(NewError(
				fmt.Sprintf("unknown operation type `%s`; expected `query`, `mutation`, or `subscription`", nameText(opTok)),
				opTok.Span, InvalidSyntax))
			continue
		}

		ops = append(ops, &ast.RootOperationTypeDefinition{
			OperationKind: kind,
			NamedType:     nameNode(typeTok),
			Span:          token.Span{Start: opTok.Span.Start, End: typeTok.Span.End},
			Syntax:        &ast.RootOperationTypeDefinitionSyntax{Colon: colon},
		})
	}

	closing, ok := p.expect(token.BraceClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('{')
	return ops, ast.DelimiterPair{Open: open, Close: closing}, true
}

func (p *Parser) parseScalarTypeDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("scalar")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	def := &ast.ScalarTypeDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Directives:  directives,
		Span:        token.Span{Start: keyword.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:      &ast.ScalarTypeDefinitionSyntax{ScalarKeyword: keyword},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}
	return def, true
}

func (p *Parser) parseObjectTypeDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("type")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	def := &ast.ObjectTypeDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Span:        token.Span{Start: keyword.Span.Start, End: nameTok.Span.End},
		Syntax:      &ast.ObjectTypeDefinitionSyntax{TypeKeyword: keyword},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckName("implements") {
		clause, ok := p.parseImplementsInterfaces()
		if !ok {
			return nil, false
		}
		def.Implements = clause.interfaces
		def.Syntax.ImplementsKeyword = &clause.keyword
		def.Syntax.LeadingAmpersand = clause.leadingAmpersand
		def.Syntax.Ampersands = clause.ampersands
		def.Span.End = clause.interfaces[len(clause.interfaces)-1].Span.End
	}

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	def.Directives = directives
	def.Span.End = directivesEnd(directives, def.Span.End)

	if p.stream.CheckPunctuator(token.BraceOpen) {
		fields, braces, ok := p.parseFieldsDefinition(inObjectTypeDefinition)
		if !ok {
			return nil, false
		}
		def.Fields = fields
		def.Syntax.Braces = &braces
		def.Span.End = braces.Close.Span.End
	}
	return def, true
}

func (p *Parser) parseInterfaceTypeDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("interface")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	def := &ast.InterfaceTypeDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Span:        token.Span{Start: keyword.Span.Start, End: nameTok.Span.End},
		Syntax:      &ast.InterfaceTypeDefinitionSyntax{InterfaceKeyword: keyword},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckName("implements") {
		clause, ok := p.parseImplementsInterfaces()
		if !ok {
			return nil, false
		}
		def.Implements = clause.interfaces
		def.Syntax.ImplementsKeyword = &clause.keyword
		def.Syntax.LeadingAmpersand = clause.leadingAmpersand
		def.Syntax.Ampersands = clause.ampersands
		def.Span.End = clause.interfaces[len(clause.interfaces)-1].Span.End
	}

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	def.Directives = directives
	def.Span.End = directivesEnd(directives, def.Span.End)

	if p.stream.CheckPunctuator(token.BraceOpen) {
		fields, braces, ok := p.parseFieldsDefinition(inInterfaceDefinition)
		if !ok {
			return nil, false
		}
		def.Fields = fields
		def.Syntax.Braces = &braces
		def.Span.End = braces.Close.Span.End
	}
	return def, true
}

func (p *Parser) parseUnionTypeDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("union")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	def := &ast.UnionTypeDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Directives:  directives,
		Span:        token.Span{Start: keyword.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:      &ast.UnionTypeDefinitionSyntax{UnionKeyword: keyword},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckPunctuator(token.Equals) {
		members, ok := p.parseUnionMembers()
		if !ok {
			return nil, false
		}
		def.Members = members.members
		def.Syntax.Equals = &members.equals
		def.Syntax.LeadingPipe = members.leadingPipe
		def.Syntax.Pipes = members.pipes
		def.Span.End = members.members[len(members.members)-1].Span.End
	}
	return def, true
}

func (p *Parser) parseEnumTypeDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("enum")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	def := &ast.EnumTypeDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Directives:  directives,
		Span:        token.Span{Start: keyword.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:      &ast.EnumTypeDefinitionSyntax{EnumKeyword: keyword},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckPunctuator(token.BraceOpen) {
		values, braces, ok := p.parseEnumValuesDefinition()
		if !ok {
			return nil, false
		}
		def.Values = values
		def.Syntax.Braces = &braces
		def.Span.End = braces.Close.Span.End
	}
	return def, true
}

func (p *Parser) parseInputObjectTypeDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("input")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	def := &ast.InputObjectTypeDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Directives:  directives,
		Span:        token.Span{Start: keyword.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:      &ast.InputObjectTypeDefinitionSyntax{InputKeyword: keyword},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckPunctuator(token.BraceOpen) {
		fields, braces, ok := p.parseInputFieldsDefinition()
		if !ok {
			return nil, false
		}
		def.Fields = fields
		def.Syntax.Braces = &braces
		def.Span.End = braces.Close.Span.End
	}
	return def, true
}

// implementsClause carries the pieces of an `implements A & B` clause.
type implementsClause struct {
	keyword          token.Token
	leadingAmpersand *token.Token
	ampersands       []token.Token
	interfaces       []*ast.Name
}

func (p *Parser) parseImplementsInterfaces() (*implementsClause, bool) {
	keyword, ok := p.expectKeyword("implements")
	if !ok {
		return nil, false
	}
	clause := &implementsClause{keyword: keyword}

	if p.stream.CheckPunctuator(token.Ampersand) {
		amp := p.stream.Next()
		clause.leadingAmpersand = &amp
	}

	first, ok := p.expectName()
	if !ok {
		return nil, false
	}
	clause.interfaces = append(clause.interfaces, nameNode(first))

	for p.stream.CheckPunctuator(token.Ampersand) {
		amp := p.stream.Next()
		nameTok, ok := p.expectName()
		if !ok {
			return nil, false
		}
		clause.ampersands = append(clause.ampersands, amp)
		clause.interfaces = append(clause.interfaces, nameNode(nameTok))
	}
	return clause, true
}

// unionMemberList carries the pieces of a `= A | B` member clause. The
// caller has already peeked the `=`.
type unionMemberList struct {
	equals      token.Token
	leadingPipe *token.Token
	pipes       []token.Token
	members     []*ast.Name
}

func (p *Parser) parseUnionMembers() (*unionMemberList, bool) {
	list := &unionMemberList{equals: p.stream.Next()}

	if p.stream.CheckPunctuator(token.Pipe) {
		pipe := p.stream.Next()
		list.leadingPipe = &pipe
	}

	first, ok := p.expectName()
	if !ok {
		return nil, false
	}
	list.members = append(list.members, nameNode(first))

	for p.stream.CheckPunctuator(token.Pipe) {
		pipe := p.stream.Next()
		nameTok, ok := p.expectName()
		if !ok {
			return nil, false
		}
		list.pipes = append(list.pipes, pipe)
		list.members = append(list.members, nameNode(nameTok))
	}
	return list, true
}

// parseFieldsDefinition parses `{ name(args): Type ... }` bodies of
// object and interface types. A failed field skips forward to the next
// plausible field start so each bad field gets its own diagnostic.
func (p *Parser) parseFieldsDefinition(ctx delimiterContext) ([]*ast.FieldDefinition, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.BraceOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('{', open.Span, ctx)

	var fields []*ast.FieldDefinition
	for {
		if p.stream.CheckPunctuator(token.BraceClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBrace()
			return nil, ast.DelimiterPair{}, false
		}
		if field, ok := p.parseFieldDefinition(); ok {
			fields = append(fields, field)
		} else {
			p.skipToFieldRecoveryPoint()
		}
	}

	closing, ok := p.expect(token.BraceClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('{')
	return fields, ast.DelimiterPair{Open: open, Close: closing}, true
}

func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, bool) {
	description := p.parseDescription()

	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	def := &ast.FieldDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Span:        token.Span{Start: nameTok.Span.Start},
		Syntax:      &ast.FieldDefinitionSyntax{},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckPunctuator(token.ParenOpen) {
		args, parens, ok := p.parseArgumentsDefinition()
		if !ok {
			return nil, false
		}
		def.Arguments = args
		def.Syntax.ArgumentParens = &parens
	}

	colon, ok := p.expect(token.Colon)
	if !ok {
		return nil, false
	}
	def.Syntax.Colon = colon

	fieldType, ok := p.parseTypeAnnotation()
	if !ok {
		return nil, false
	}
	def.Type = fieldType
	def.Span.End = fieldType.SourceSpan().End

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	def.Directives = directives
	def.Span.End = directivesEnd(directives, def.Span.End)
	return def, true
}

// skipToFieldRecoveryPoint consumes tokens until a name followed by a
// colon, which is how the next well-formed field starts, or the end of
// the body.
func (p *Parser) skipToFieldRecoveryPoint() {
	for {
		switch p.stream.Peek().Kind {
		case token.EOF, token.BraceClose:
			return
		case token.Name:
			if p.stream.PeekNth(1).Kind == token.Colon {
				return
			}
		}
		p.stream.Next()
	}
}

// parseArgumentsDefinition parses `(name: Type = default ...)`. Unlike
// argument lists in executable documents, an empty `()` here is left to
// schema validation.
func (p *Parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.ParenOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('(', open.Span, inArgumentDefinitions)

	var args []*ast.InputValueDefinition
	for {
		if p.stream.CheckPunctuator(token.ParenClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedParen()
			return nil, ast.DelimiterPair{}, false
		}
		arg, ok := p.parseInputValueDefinition()
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		args = append(args, arg)
	}

	closing, ok := p.expect(token.ParenClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('(')
	return args, ast.DelimiterPair{Open: open, Close: closing}, true
}

func (p *Parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.BraceOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('{', open.Span, inInputObjectDefinition)

	var fields []*ast.InputValueDefinition
	for {
		if p.stream.CheckPunctuator(token.BraceClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBrace()
			return nil, ast.DelimiterPair{}, false
		}
		if field, ok := p.parseInputValueDefinition(); ok {
			fields = append(fields, field)
		} else {
			p.skipToFieldRecoveryPoint()
		}
	}

	closing, ok := p.expect(token.BraceClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('{')
	return fields, ast.DelimiterPair{Open: open, Close: closing}, true
}

func (p *Parser) parseInputValueDefinition() (*ast.InputValueDefinition, bool) {
	description := p.parseDescription()

	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	colon, ok := p.expect(token.Colon)
	if !ok {
		return nil, false
	}
	valueType, ok := p.parseTypeAnnotation()
	if !ok {
		return nil, false
	}

	def := &ast.InputValueDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Type:        valueType,
		Span:        token.Span{Start: nameTok.Span.Start, End: valueType.SourceSpan().End},
		Syntax:      &ast.InputValueDefinitionSyntax{Colon: colon},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckPunctuator(token.Equals) {
		equals := p.stream.Next()
		def.Syntax.Equals = &equals
		value, ok := p.parseValue(inputDefaultValue)
		if !ok {
			return nil, false
		}
		def.DefaultValue = value
		def.Span.End = value.SourceSpan().End
	}

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	def.Directives = directives
	def.Span.End = directivesEnd(directives, def.Span.End)
	return def, true
}

func (p *Parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.BraceOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('{', open.Span, inEnumDefinition)

	var values []*ast.EnumValueDefinition
	for {
		if p.stream.CheckPunctuator(token.BraceClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBrace()
			return nil, ast.DelimiterPair{}, false
		}
		if value, ok := p.parseEnumValueDefinition(); ok {
			values = append(values, value)
		} else {
			p.skipToEnumValueRecoveryPoint()
		}
	}

	closing, ok := p.expect(token.BraceClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('{')
	return values, ast.DelimiterPair{Open: open, Close: closing}, true
}

// parseEnumValueDefinition parses one enum value. `true`, `false` and
// `null` are reported as reserved but still produce a node.
func (p *Parser) parseEnumValueDefinition() (*ast.EnumValueDefinition, bool) {
	description := p.parseDescription()

	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	switch nameText(nameTok) {
	case "true", "false", "null":
		err := NewError(fmt.Sprintf("enum value cannot be `%s`", nameText(nameTok)), nameTok.Span, ReservedName)
		err.AddSpec("https://spec.graphql.org/October2021/#sec-Enum-Value-Uniqueness")
		p.record(err)
	}

	def := &ast.EnumValueDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Span:        nameTok.Span,
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	def.Directives = directives
	def.Span.End = directivesEnd(directives, def.Span.End)
	return def, true
}

func (p *Parser) skipToEnumValueRecoveryPoint() {
	for {
		switch p.stream.Peek().Kind {
		case token.EOF, token.BraceClose,
			token.Name, token.True, token.False, token.Null:
			return
		default:
			p.stream.Next()
		}
	}
}

// parseDirectiveDefinition parses
// `directive @name(args) repeatable on LOCATION | LOCATION`.
func (p *Parser) parseDirectiveDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("directive")
	if !ok {
		return nil, false
	}
	at, ok := p.expect(token.At)
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	def := &ast.DirectiveDefinition{
		Description: description,
		Name:        nameNode(nameTok),
		Span:        token.Span{Start: keyword.Span.Start},
		Syntax:      &ast.DirectiveDefinitionSyntax{DirectiveKeyword: keyword, AtSign: at},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}

	if p.stream.CheckPunctuator(token.ParenOpen) {
		args, parens, ok := p.parseArgumentsDefinition()
		if !ok {
			return nil, false
		}
		def.Arguments = args
		def.Syntax.ArgumentParens = &parens
	}

	if p.stream.CheckName("repeatable") {
		repeatable := p.stream.Next()
		def.Repeatable = true
		def.Syntax.RepeatableKeyword = &repeatable
	}

	on, ok := p.expectKeyword("on")
	if !ok {
		return nil, false
	}
	def.Syntax.OnKeyword = on

	locations, ok := p.parseDirectiveLocations()
	if !ok {
		return nil, false
	}
	def.Locations = locations
	def.Span.End = locations[len(locations)-1].Span.End
	return def, true
}

func (p *Parser) parseDirectiveLocations() ([]*ast.DirectiveLocation, bool) {
	var leading *token.Token
	if p.stream.CheckPunctuator(token.Pipe) {
		pipe := p.stream.Next()
		leading = &pipe
	}

	first, ok := p.parseDirectiveLocation(leading)
	if !ok {
		return nil, false
	}
	locations := []*ast.DirectiveLocation{first}

	for p.stream.CheckPunctuator(token.Pipe) {
		pipe := p.stream.Next()
		loc, ok := p.parseDirectiveLocation(&pipe)
		if !ok {
			return nil, false
		}
		locations = append(locations, loc)
	}
	return locations, true
}

// parseDirectiveLocation parses one location name. Unknown names are
// reported with a closest-match suggestion when one is within editing
// distance.
func (p *Parser) parseDirectiveLocation(pipe *token.Token) (*ast.DirectiveLocation, bool) {
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	name := nameText(nameTok)
	kind, known := ast.DirectiveLocationByName(name)
	if !known {
		err := NewError(fmt.Sprintf("unknown directive location `%s`", name), nameTok.Span, InvalidDirectiveLocation)
		if suggestion, found := suggestDirectiveLocation(name); found {
			err.AddHelp(fmt.Sprintf("did you mean `%s`?", suggestion))
		}
		p.record(err)
		return nil, false
	}
	return &ast.DirectiveLocation{
		Kind:   kind,
		Span:   nameTok.Span,
		Syntax: &ast.DirectiveLocationSyntax{Pipe: pipe, Token: nameTok},
	}, true
}

// suggestDirectiveLocation finds the canonical location closest to input,
// within an edit distance of 3.
func suggestDirectiveLocation(input string) (string, bool) {
	upper := strings.ToUpper(input)
	best := ""
	bestDistance := -1
	for _, kind := range ast.DirectiveLocationKinds {
		name := kind.String()
		distance := editDistance(upper, name)
		if distance <= 3 && (bestDistance < 0 || distance < bestDistance) {
			bestDistance = distance
			best = name
		}
	}
	return best, best != ""
}

// editDistance is a two-row Levenshtein distance.
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// parseTypeExtension parses `extend <kind> ...` for all extension kinds,
// including schema extensions.
func (p *Parser) parseTypeExtension() (ast.Definition, bool) {
	extend, ok := p.expectKeyword("extend")
	if !ok {
		return nil, false
	}
	switch {
	case p.stream.CheckName("schema"):
		return p.parseSchemaExtension(extend)
	case p.stream.CheckName("scalar"):
		return p.parseScalarTypeExtension(extend)
	case p.stream.CheckName("type"):
		return p.parseObjectTypeExtension(extend)
	case p.stream.CheckName("interface"):
		return p.parseInterfaceTypeExtension(extend)
	case p.stream.CheckName("union"):
		return p.parseUnionTypeExtension(extend)
	case p.stream.CheckName("enum"):
		return p.parseEnumTypeExtension(extend)
	case p.stream.CheckName("input"):
		return p.parseInputObjectTypeExtension(extend)
	default:
		p.unexpectedHere("type extension keyword (`schema`, `scalar`, `type`, `interface`, `union`, `enum`, `input`)",
			"schema", "scalar", "type", "interface", "union", "enum", "input")
		return nil, false
	}
}

func (p *Parser) parseSchemaExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("schema")
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	ext := &ast.SchemaExtension{
		Directives: directives,
		Span:       token.Span{Start: extend.Span.Start, End: directivesEnd(directives, keyword.Span.End)},
		Syntax:     &ast.SchemaExtensionSyntax{ExtendKeyword: extend, SchemaKeyword: keyword},
	}

	if p.stream.CheckPunctuator(token.BraceOpen) {
		ops, braces, ok := p.parseRootOperationTypes()
		if !ok {
			return nil, false
		}
		ext.RootOperations = ops
		ext.Syntax.Braces = &braces
		ext.Span.End = braces.Close.Span.End
	}
	return ext, true
}

func (p *Parser) parseScalarTypeExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("scalar")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	return &ast.ScalarTypeExtension{
		Name:       nameNode(nameTok),
		Directives: directives,
		Span:       token.Span{Start: extend.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:     &ast.ScalarTypeExtensionSyntax{ExtendKeyword: extend, ScalarKeyword: keyword},
	}, true
}

func (p *Parser) parseObjectTypeExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("type")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	ext := &ast.ObjectTypeExtension{
		Name:   nameNode(nameTok),
		Span:   token.Span{Start: extend.Span.Start, End: nameTok.Span.End},
		Syntax: &ast.ObjectTypeExtensionSyntax{ExtendKeyword: extend, TypeKeyword: keyword},
	}

	if p.stream.CheckName("implements") {
		clause, ok := p.parseImplementsInterfaces()
		if !ok {
			return nil, false
		}
		ext.Implements = clause.interfaces
		ext.Syntax.ImplementsKeyword = &clause.keyword
		ext.Syntax.LeadingAmpersand = clause.leadingAmpersand
		ext.Syntax.Ampersands = clause.ampersands
		ext.Span.End = clause.interfaces[len(clause.interfaces)-1].Span.End
	}

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	ext.Directives = directives
	ext.Span.End = directivesEnd(directives, ext.Span.End)

	if p.stream.CheckPunctuator(token.BraceOpen) {
		fields, braces, ok := p.parseFieldsDefinition(inObjectTypeDefinition)
		if !ok {
			return nil, false
		}
		ext.Fields = fields
		ext.Syntax.Braces = &braces
		ext.Span.End = braces.Close.Span.End
	}
	return ext, true
}

func (p *Parser) parseInterfaceTypeExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("interface")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	ext := &ast.InterfaceTypeExtension{
		Name:   nameNode(nameTok),
		Span:   token.Span{Start: extend.Span.Start, End: nameTok.Span.End},
		Syntax: &ast.InterfaceTypeExtensionSyntax{ExtendKeyword: extend, InterfaceKeyword: keyword},
	}

	if p.stream.CheckName("implements") {
		clause, ok := p.parseImplementsInterfaces()
		if !ok {
			return nil, false
		}
		ext.Implements = clause.interfaces
		ext.Syntax.ImplementsKeyword = &clause.keyword
		ext.Syntax.LeadingAmpersand = clause.leadingAmpersand
		ext.Syntax.Ampersands = clause.ampersands
		ext.Span.End = clause.interfaces[len(clause.interfaces)-1].Span.End
	}

	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}
	ext.Directives = directives
	ext.Span.End = directivesEnd(directives, ext.Span.End)

	if p.stream.CheckPunctuator(token.BraceOpen) {
		fields, braces, ok := p.parseFieldsDefinition(inInterfaceDefinition)
		if !ok {
			return nil, false
		}
		ext.Fields = fields
		ext.Syntax.Braces = &braces
		ext.Span.End = braces.Close.Span.End
	}
	return ext, true
}

func (p *Parser) parseUnionTypeExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("union")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	ext := &ast.UnionTypeExtension{
		Name:       nameNode(nameTok),
		Directives: directives,
		Span:       token.Span{Start: extend.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:     &ast.UnionTypeExtensionSyntax{ExtendKeyword: extend, UnionKeyword: keyword},
	}

	if p.stream.CheckPunctuator(token.Equals) {
		members, ok := p.parseUnionMembers()
		if !ok {
			return nil, false
		}
		ext.Members = members.members
		ext.Syntax.Equals = &members.equals
		ext.Syntax.LeadingPipe = members.leadingPipe
		ext.Syntax.Pipes = members.pipes
		ext.Span.End = members.members[len(members.members)-1].Span.End
	}
	return ext, true
}

func (p *Parser) parseEnumTypeExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("enum")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	ext := &ast.EnumTypeExtension{
		Name:       nameNode(nameTok),
		Directives: directives,
		Span:       token.Span{Start: extend.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:     &ast.EnumTypeExtensionSyntax{ExtendKeyword: extend, EnumKeyword: keyword},
	}

	if p.stream.CheckPunctuator(token.BraceOpen) {
		values, braces, ok := p.parseEnumValuesDefinition()
		if !ok {
			return nil, false
		}
		ext.Values = values
		ext.Syntax.Braces = &braces
		ext.Span.End = braces.Close.Span.End
	}
	return ext, true
}

func (p *Parser) parseInputObjectTypeExtension(extend token.Token) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("input")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(directiveArgument)
	if !ok {
		return nil, false
	}

	ext := &ast.InputObjectTypeExtension{
		Name:       nameNode(nameTok),
		Directives: directives,
		Span:       token.Span{Start: extend.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:     &ast.InputObjectTypeExtensionSyntax{ExtendKeyword: extend, InputKeyword: keyword},
	}

	if p.stream.CheckPunctuator(token.BraceOpen) {
		fields, braces, ok := p.parseInputFieldsDefinition()
		if !ok {
			return nil, false
		}
		ext.Fields = fields
		ext.Syntax.Braces = &braces
		ext.Span.End = braces.Close.Span.End
	}
	return ext, true
}
