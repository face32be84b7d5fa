package parser

import (
	"fmt"
	"math"

	"github.com/dhamidi/tako/graphql/ast"
	"github.com/dhamidi/tako/graphql/token"
)

// parseValue parses any input value literal. ctx decides whether `$var`
// references are permitted.
func (p *Parser) parseValue(ctx constContext) (ast.Value, bool) {
	tok := p.stream.Peek()
	switch tok.Kind {
	case token.Dollar:
		return p.parseVariableValue(ctx)

	case token.IntValue:
		p.stream.Next()
		v, err := tok.ParseInt()
		if err != nil {
			p.record(NewError(fmt.Sprintf("invalid integer `%s`", tok.Literal), tok.Span, InvalidValue))
			return nil, false
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			p.record(NewError(fmt.Sprintf("integer `%s` overflows 32-bit integer", tok.Literal), tok.Span, InvalidValue))
			return nil, false
		}
		return &ast.IntValue{
			Value:  int32(v),
			Span:   tok.Span,
			Syntax: &ast.IntValueSyntax{Token: tok},
		}, true

	case token.FloatValue:
		p.stream.Next()
		v, err := tok.ParseFloat()
		if err != nil {
			p.record(NewError(fmt.Sprintf("invalid float `%s`", tok.Literal), tok.Span, InvalidValue))
			return nil, false
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			p.record(NewError(fmt.Sprintf("float `%s` is not a finite number", tok.Literal), tok.Span, InvalidValue))
			return nil, false
		}
		return &ast.FloatValue{
			Value:  v,
			Span:   tok.Span,
			Syntax: &ast.FloatValueSyntax{Token: tok},
		}, true

	case token.StringValue:
		p.stream.Next()
		cooked, err := tok.ParseString()
		if err != nil {
			p.record(NewError("invalid string: "+err.Error(), tok.Span, InvalidValue))
			return nil, false
		}
		return &ast.StringValue{
			Value:  cooked,
			Block:  tok.IsBlockString(),
			Span:   tok.Span,
			Syntax: &ast.StringValueSyntax{Token: tok},
		}, true

	case token.True, token.False:
		p.stream.Next()
		return &ast.BooleanValue{
			Value:  tok.Kind == token.True,
			Span:   tok.Span,
			Syntax: &ast.BooleanValueSyntax{Token: tok},
		}, true

	case token.Null:
		p.stream.Next()
		return &ast.NullValue{
			Span:   tok.Span,
			Syntax: &ast.NullValueSyntax{Token: tok},
		}, true

	case token.BracketOpen:
		return p.parseListValue(ctx)

	case token.BraceOpen:
		return p.parseObjectValue(ctx)

	case token.Name:
		p.stream.Next()
		return &ast.EnumValue{
			Value:  tok.Literal,
			Span:   tok.Span,
			Syntax: &ast.EnumValueSyntax{Token: tok},
		}, true

	case token.Error:
		p.handleLexerError(tok)
		p.stream.Next()
		return nil, false
	}

	p.unexpectedHere("value", "value")
	return nil, false
}

func (p *Parser) parseVariableValue(ctx constContext) (ast.Value, bool) {
	dollar := p.stream.Peek()
	if ctx != allowVariables {
		p.record(NewError(
			fmt.Sprintf("variables are not allowed in %s", ctx.description()),
			dollar.Span, InvalidSyntax))
		// Consume the whole reference so recovery makes progress.
		p.stream.Next()
		switch p.stream.Peek().Kind {
		case token.Name, token.True, token.False, token.Null:
			p.stream.Next()
		}
		return nil, false
	}
	p.stream.Next()
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	return &ast.VariableValue{
		Name:   nameNode(nameTok),
		Span:   token.Span{Start: dollar.Span.Start, End: nameTok.Span.End},
		Syntax: &ast.VariableValueSyntax{Dollar: dollar},
	}, true
}

func (p *Parser) parseListValue(ctx constContext) (ast.Value, bool) {
	open, ok := p.expect(token.BracketOpen)
	if !ok {
		return nil, false
	}
	p.pushDelimiter('[', open.Span, inListValue)

	var values []ast.Value
	for {
		if p.stream.CheckPunctuator(token.BracketClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBracket()
			return nil, false
		}
		if value, ok := p.parseValue(ctx); ok {
			values = append(values, value)
		} else {
			p.skipToListRecoveryPoint()
			if p.stream.CheckPunctuator(token.BracketClose) {
				break
			}
		}
	}

	closing, ok := p.expect(token.BracketClose)
	if !ok {
		return nil, false
	}
	p.popDelimiter('[')

	return &ast.ListValue{
		Values: values,
		Span:   token.Span{Start: open.Span.Start, End: closing.Span.End},
		Syntax: &ast.ListValueSyntax{Brackets: ast.DelimiterPair{Open: open, Close: closing}},
	}, true
}

// parseObjectValue parses `{ name: value, ... }`. Field order is kept as
// written in the source.
func (p *Parser) parseObjectValue(ctx constContext) (ast.Value, bool) {
	open, ok := p.expect(token.BraceOpen)
	if !ok {
		return nil, false
	}
	p.pushDelimiter('{', open.Span, inObjectValue)

	var fields []*ast.ObjectField
	for {
		if p.stream.CheckPunctuator(token.BraceClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedBrace()
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
		value, ok := p.parseValue(ctx)
		if !ok {
			return nil, false
		}
		fields = append(fields, &ast.ObjectField{
			Name:   nameNode(nameTok),
			Value:  value,
			Span:   token.Span{Start: nameTok.Span.Start, End: value.SourceSpan().End},
			Syntax: &ast.ObjectFieldSyntax{Colon: colon},
		})
	}

	closing, ok := p.expect(token.BraceClose)
	if !ok {
		return nil, false
	}
	p.popDelimiter('{')

	return &ast.ObjectValue{
		Fields: fields,
		Span:   token.Span{Start: open.Span.Start, End: closing.Span.End},
		Syntax: &ast.ObjectValueSyntax{Braces: ast.DelimiterPair{Open: open, Close: closing}},
	}, true
}

// skipToListRecoveryPoint consumes tokens that cannot start a value, so a
// list with one bad element can still report errors in the rest.
func (p *Parser) skipToListRecoveryPoint() {
	for {
		switch p.stream.Peek().Kind {
		case token.EOF, token.BracketClose,
			token.Dollar, token.IntValue, token.FloatValue, token.StringValue,
			token.True, token.False, token.Null,
			token.BracketOpen, token.BraceOpen, token.Name:
			return
		default:
			p.stream.Next()
		}
	}
}

// parseArgumentList parses `(name: value, ...)`. An immediately closed
// pair is reported but parsing continues, so the rest of the construct is
// still checked.
func (p *Parser) parseArgumentList(delimCtx delimiterContext, valueCtx constContext) ([]*ast.Argument, ast.DelimiterPair, bool) {
	open, ok := p.expect(token.ParenOpen)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.pushDelimiter('(', open.Span, delimCtx)

	if p.stream.CheckPunctuator(token.ParenClose) {
		err := NewError("argument list cannot be empty; omit the parentheses instead", open.Span, InvalidEmptyConstruct)
		err.Construct = "argument list"
		p.record(err)
	}

	var args []*ast.Argument
	for {
		if p.stream.CheckPunctuator(token.ParenClose) {
			break
		}
		if p.stream.IsAtEnd() {
			p.recordUnclosedParen()
			return nil, ast.DelimiterPair{}, false
		}

		nameTok, ok := p.expectName()
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		colon, ok := p.expect(token.Colon)
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		value, ok := p.parseValue(valueCtx)
		if !ok {
			return nil, ast.DelimiterPair{}, false
		}
		args = append(args, &ast.Argument{
			Name:   nameNode(nameTok),
			Value:  value,
			Span:   token.Span{Start: nameTok.Span.Start, End: value.SourceSpan().End},
			Syntax: &ast.ArgumentSyntax{Colon: colon},
		})
	}

	closing, ok := p.expect(token.ParenClose)
	if !ok {
		return nil, ast.DelimiterPair{}, false
	}
	p.popDelimiter('(')

	return args, ast.DelimiterPair{Open: open, Close: closing}, true
}

// parseDirectiveAnnotations parses zero or more `@name(args)` uses.
// valueCtx is the context for argument values: directives on type-system
// constructs and variable definitions take const arguments only.
func (p *Parser) parseDirectiveAnnotations(valueCtx constContext) ([]*ast.DirectiveAnnotation, bool) {
	var directives []*ast.DirectiveAnnotation
	for p.stream.CheckPunctuator(token.At) {
		d, ok := p.parseDirectiveAnnotation(valueCtx)
		if !ok {
			return nil, false
		}
		directives = append(directives, d)
	}
	return directives, true
}

func (p *Parser) parseDirectiveAnnotation(valueCtx constContext) (*ast.DirectiveAnnotation, bool) {
	at, ok := p.expect(token.At)
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}

	d := &ast.DirectiveAnnotation{
		Name:   nameNode(nameTok),
		Span:   token.Span{Start: at.Span.Start, End: nameTok.Span.End},
		Syntax: &ast.DirectiveAnnotationSyntax{AtSign: at},
	}
	if p.stream.CheckPunctuator(token.ParenOpen) {
		args, parens, ok := p.parseArgumentList(inDirectiveArguments, valueCtx)
		if !ok {
			return nil, false
		}
		d.Arguments = args
		d.Span.End = parens.Close.Span.End
		d.Syntax.ArgumentParens = &parens
	}
	return d, true
}

// directivesEnd widens end to cover a trailing directive list.
func directivesEnd(directives []*ast.DirectiveAnnotation, end token.SourcePosition) token.SourcePosition {
	if len(directives) > 0 {
		return directives[len(directives)-1].Span.End
	}
	return end
}

// parseTypeAnnotation parses a type reference: `Name`, `[Type]`, either
// with an optional trailing `!`.
func (p *Parser) parseTypeAnnotation() (ast.TypeAnnotation, bool) {
	if p.stream.CheckPunctuator(token.BracketOpen) {
		return p.parseListTypeAnnotation()
	}
	return p.parseNamedTypeAnnotation()
}

func (p *Parser) parseNamedTypeAnnotation() (ast.TypeAnnotation, bool) {
	nameTok, ok := p.expectName()
	if !ok {
		return nil, false
	}
	t := &ast.NamedTypeAnnotation{
		Name: nameNode(nameTok),
		Span: nameTok.Span,
	}
	if p.stream.CheckPunctuator(token.Bang) {
		bang := p.stream.Next()
		t.Nullability = ast.Nullability{NonNull: true, Bang: &bang}
		t.Span.End = bang.Span.End
	}
	return t, true
}

func (p *Parser) parseListTypeAnnotation() (ast.TypeAnnotation, bool) {
	open, ok := p.expect(token.BracketOpen)
	if !ok {
		return nil, false
	}
	p.pushDelimiter('[', open.Span, inListType)

	element, ok := p.parseTypeAnnotation()
	if !ok {
		return nil, false
	}

	closing, ok := p.expect(token.BracketClose)
	if !ok {
		return nil, false
	}
	p.popDelimiter('[')

	t := &ast.ListTypeAnnotation{
		ElementType: element,
		Span:        token.Span{Start: open.Span.Start, End: closing.Span.End},
		Syntax:      &ast.ListTypeAnnotationSyntax{Brackets: ast.DelimiterPair{Open: open, Close: closing}},
	}
	if p.stream.CheckPunctuator(token.Bang) {
		bang := p.stream.Next()
		t.Nullability = ast.Nullability{NonNull: true, Bang: &bang}
		t.Span.End = bang.Span.End
	}
	return t, true
}
