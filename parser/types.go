package parser

import (
	"github.com/redline-lang/redline-core/ast"
	rlerrors "github.com/redline-lang/redline-core/errors"
	"github.com/redline-lang/redline-core/token"
)

// parseType implements §4.2's "Type parser": built-ins consume a single Type
// token, list[T] and dict[K,V] consume bracketed inner types, and a bare
// Ident is accepted as a user-declared Class(name).
func (p *Parser) parseType() (ast.Type, error) {
	tok := p.cur()
	switch tok.Type {
	case token.IDENT:
		p.advance()
		return ast.ClassType(tok.Literal), nil
	case token.TYPE:
		p.advance()
		switch tok.Literal {
		case "int":
			return ast.IntType(), nil
		case "float":
			return ast.FloatType(), nil
		case "string":
			return ast.StringType(), nil
		case "bool":
			return ast.BoolType(), nil
		case "void":
			return ast.VoidType(), nil
		case "list":
			if _, err := p.expect(token.LBRACKET); err != nil {
				return ast.Type{}, err
			}
			elem, err := p.parseType()
			if err != nil {
				return ast.Type{}, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return ast.Type{}, err
			}
			return ast.ListType(elem), nil
		case "dict":
			if _, err := p.expect(token.LBRACKET); err != nil {
				return ast.Type{}, err
			}
			key, err := p.parseType()
			if err != nil {
				return ast.Type{}, err
			}
			if _, err := p.expect(token.COMMA); err != nil {
				return ast.Type{}, err
			}
			val, err := p.parseType()
			if err != nil {
				return ast.Type{}, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return ast.Type{}, err
			}
			return ast.DictType(key, val), nil
		}
	}
	return ast.Type{}, rlerrors.NewSyntaxError(tok.Line, tok.Column, "unknown type name: %s", tok.Literal)
}
