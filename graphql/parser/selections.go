package parser

import (
	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/token"
)

// parseOperationDefinition parses a named operation or the shorthand
// `{ ... }` form. description is non-nil only in mixed documents, where
// a leading string attaches to the operation.
func (p *Parser) parseOperationDefinition(description *ast.StringValue) (ast.Definition, bool) {
	if p.stream.CheckPunctuator(token.BraceOpen) {
		ss, ok := p.parseSelectionSet()
		if !ok {
			return nil, false
		}
		op := &ast.OperationDefinition{
			Description:   description,
			OperationKind: ast.OperationQuery,
			SelectionSet:  ss,
			Span:          ss.Span,
			Syntax:        &ast.OperationDefinitionSyntax{},
		}
		if description != nil {
			op.Span.Start = description.Span.Start
		}
		return op, true
	}

	var kind ast.OperationKind
	switch {
	case p.stream.CheckName("query"):
		kind = ast.OperationQuery
	case p.stream.CheckName("mutation"):
		kind = ast.OperationMutation
	case p.stream.CheckName("subscription"):
		kind = ast.OperationSubscription
	default:
		p.unexpectedHere("operation type (`query`, `mutation`, or `subscription`)",
			"query", "mutation", "subscription")
		return nil, false
	}
	keyword := p.stream.Next()

	op := &ast.OperationDefinition{
		Description:   description,
		OperationKind: kind,
		Span:          token.Span{Start: keyword.Span.Start},
		Syntax:        &ast.OperationDefinitionSyntax{OperationKeyword: &keyword},
	}
	if description != nil {
		op.Span.Start = description.Span.Start
	}

	// The operation name is optional, so only a name-like token that is
	// not already the start of the next clause is taken as one.
	if !p.stream.CheckPunctuator(token.ParenOpen) &&
		!p.stream.CheckPunctuator(token.At) &&
		!p.stream.CheckPunctuator(token.BraceOpen) {
		switch p.stream.Peek().Kind {
		case token.Name, token.True, token.False, token.Null:
			op.Name = nameNode(p.stream.Next())
		}
	}

	if p.stream.CheckPunctuator(token.ParenOpen) {
		defs, parens, ok := p.parseVariableDefinitions()
		if !ok {
			return nil, false
		}
		op.VariableDefinitions = defs
		op.Syntax.VariableDefinitionParens = &parens
	}

	directives, ok := p.parseDirectiveAnnotations(allowVariables)
	if !ok {
		return nil, false
	}
	op.Directives = directives

	ss, ok := p.parseSelectionSet()
	if !ok {
		return nil, false
	}
	op.SelectionSet = ss
	op.Span.End = ss.Span.End
	return op, true
}

func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.ParenOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('(', open.Span, inVariableDefinitions)

	if p.stream.CheckPunctuator(token.ParenClose) {
		err := NewError("variable definitions cannot be empty; omit the parentheses instead", open.Span, InvalidEmptyConstruct)
		err.Construct = "variable definitions"
		p.record(err)
	}

	var defs []*ast.VariableDefinition
	for {
		if p.stream.CheckPunctuator(token.ParenClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedParen()
			return nil, ast.DelimiterPair{}, false
		}
		def, ok := p.parseVariableDefinition()
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		defs = append(defs, def)
	}

	closing, ok := p.expect(token.ParenClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('(')

	return defs, ast.DelimiterPair{Open: open, Close: closing}, true
}

// parseVariableDefinition parses `$name: Type = default @directives`.
func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, bool) {
	dollar, ok := p.expect(token.Dollar)
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	colon, ok := p.expect(token.Colon)
	if !ok {
		return nil, false
	}
	varType, ok := p.parseTypeAnnotation()
	if !ok {
		return nil, false
	}

	def := &ast.VariableDefinition{
		Variable: nameNode(nameTok),
		Type:     varType,
		Span:     token.Span{Start: dollar.Span.Start, End: varType.SourceSpan().End},
		Syntax:   &ast.VariableDefinitionSyntax{Dollar: dollar, Colon: colon},
	}

	if p.stream.CheckPunctuator(token.Equals) {
		equals := p.stream.Next()
		def.Syntax.Equals = &equals
		value, ok := p.parseValue(variableDefaultValue)
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

// parseFragmentDefinition parses `fragment Name on Type { ... }`. A
// fragment named `on` is reported but still produces a node, since the
// rest of the definition usually parses fine.
func (p *Parser) parseFragmentDefinition(description *ast.StringValue) (ast.Definition, bool) {
	keyword, ok := p.expectKeyword("fragment")
	if !ok {
		return nil, false
	}

	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	if nameText(nameTok) == "on" {
		err := NewError("fragment name cannot be `on`", nameTok.Span, ReservedName)
		err.AddSpec("https://spec.graphql.org/October2021/#sec-Fragment-Name-Uniqueness")
		p.record(err)
	}

	cond, ok := p.parseTypeCondition()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(allowVariables)
	if !ok {
		return nil, false
	}
	ss, ok := p.parseSelectionSet()
	if !ok {
		return nil, false
	}

	def := &ast.FragmentDefinition{
		Description:   description,
		Name:          nameNode(nameTok),
		TypeCondition: cond,
		Directives:    directives,
		SelectionSet:  ss,
		Span:          token.Span{Start: keyword.Span.Start, End: ss.Span.End},
		Syntax: &ast.FragmentDefinitionSyntax{
			FragmentKeyword: keyword,
			OnKeyword:       cond.Syntax.OnKeyword,
		},
	}
	if description != nil {
		def.Span.Start = description.Span.Start
	}
	return def, true
}

func (p *Parser) parseTypeCondition() (*ast.TypeCondition, bool) {
	on, ok := p.expectKeyword("on")
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	return &ast.TypeCondition{
		NamedType: nameNode(nameTok),
		Span:      token.Span{Start: on.Span.Start, End: nameTok.Span.End},
		Syntax:    &ast.TypeConditionSyntax{OnKeyword: on},
	}, true
}

// parseSelectionSet parses `{ selection... }`. A failed selection skips
// to the next plausible selection start, so several bad selections each
// get their own diagnostic.
func (p *Parser) parseSelectionSet() (*ast.SelectionSet, bool) {
	open, ok := p.expect(token.BraceOpen)
	if !ok {
		return nil, false
	}
	p.pushDelimiter('{', open.Span, inSelectionSet)

	if p.stream.CheckPunctuator(token.BraceClose) {
		err := NewError("selection set cannot be empty", open.Span, InvalidEmptyConstruct)
		err.Construct = "selection set"
		p.record(err)
	}

	var selections []ast.Selection
	for {
		if p.stream.CheckPunctuator(token.BraceClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBrace()
			return nil, false
		}
		if sel, ok := p.parseSelection(); ok {
			selections = append(selections, sel)
		} else {
			p.skipToSelectionRecoveryPoint()
		}
	}

	closing, ok := p.expect(token.BraceClose)
	if !ok {
		return nil, false
	}
	p.popDelimiter('{')

	return &ast.SelectionSet{
		Selections: selections,
		Span:       token.Span{Start: open.Span.Start, End: closing.Span.End},
		Syntax:     &ast.SelectionSetSyntax{Braces: ast.DelimiterPair{Open: open, Close: closing}},
	}, true
}

func (p *Parser) parseSelection() (ast.Selection, bool) {
	if !p.stream.CheckPunctuator(token.Ellipsis) {
		return p.parseField()
	}
	ellipsis := p.stream.Next()
	if p.stream.CheckName("on") || p.stream.CheckPunctuator(token.At) || p.stream.CheckPunctuator(token.BraceOpen) {
		return p.parseInlineFragment(ellipsis)
	}
	return p.parseFragmentSpread(ellipsis)
}

// parseField parses `alias: name(args) @directives { selections }`; only
// the name is required.
func (p *Parser) parseField() (ast.Selection, bool) {
	first, ok := p.expectName()
	if !ok {
		return nil, false
	}

	f := &ast.Field{
		Name:   nameNode(first),
		Span:   first.Span,
		Syntax: &ast.FieldSyntax{},
	}
	if p.stream.CheckPunctuator(token.Colon) {
		colon := p.stream.Next()
		nameTok, ok := p.expectName()
		if !ok {
			return nil, false
		}
		f.Alias = f.Name
		f.Name = nameNode(nameTok)
		f.Syntax.AliasColon = &colon
		f.Span.End = nameTok.Span.End
	}

	if p.stream.CheckPunctuator(token.ParenOpen) {
		args, parens, ok := p.parseArgumentList(inFieldArguments, allowVariables)
		if !ok {
			return nil, false
		}
		f.Arguments = args
		f.Syntax.ArgumentParens = &parens
		f.Span.End = parens.Close.Span.End
	}

	directives, ok := p.parseDirectiveAnnotations(allowVariables)
	if !ok {
		return nil, false
	}
	f.Directives = directives
	f.Span.End = directivesEnd(directives, f.Span.End)

	if p.stream.CheckPunctuator(token.BraceOpen) {
		ss, ok := p.parseSelectionSet()
		if !ok {
			return nil, false
		}
		f.SelectionSet = ss
		f.Span.End = ss.Span.End
	}
	return f, true
}

// parseFragmentSpread parses `...Name @directives`, after the ellipsis
// has been consumed.
func (p *Parser) parseFragmentSpread(ellipsis token.Token) (ast.Selection, bool) {
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	directives, ok := p.parseDirectiveAnnotations(allowVariables)
	if !ok {
		return nil, false
	}
	return &ast.FragmentSpread{
		Name:       nameNode(nameTok),
		Directives: directives,
		Span:       token.Span{Start: ellipsis.Span.Start, End: directivesEnd(directives, nameTok.Span.End)},
		Syntax:     &ast.FragmentSpreadSyntax{Ellipsis: ellipsis},
	}, true
}

// parseInlineFragment parses `... on Type @directives { ... }`, after
// the ellipsis has been consumed. The type condition is optional.
func (p *Parser) parseInlineFragment(ellipsis token.Token) (ast.Selection, bool) {
	frag := &ast.InlineFragment{
		Span:   token.Span{Start: ellipsis.Span.Start},
		Syntax: &ast.InlineFragmentSyntax{Ellipsis: ellipsis},
	}
	if p.stream.CheckName("on") {
		cond, ok := p.parseTypeCondition()
		if !ok {
			return nil, false
		}
		frag.TypeCondition = cond
	}
	directives, ok := p.parseDirectiveAnnotations(allowVariables)
	if !ok {
		return nil, false
	}
	frag.Directives = directives
	ss, ok := p.parseSelectionSet()
	if !ok {
		return nil, false
	}
	frag.SelectionSet = ss
	frag.Span.End = ss.Span.End
	return frag, true
}

// skipToSelectionRecoveryPoint consumes tokens until something that can
// start a selection, or the end of the enclosing set.
func (p *Parser) skipToSelectionRecoveryPoint() {
	for {
		switch p.stream.Peek().Kind {
		case token.EOF, token.BraceClose, token.Ellipsis,
			token.Name, token.True, token.False, token.Null:
			return
		default:
			p.stream.Next()
		}
	}
}
