package parser

import (
	"strconv"
	"strings"

	"github.com/redline-lang/redline-core/ast"
	rlerrors "github.com/redline-lang/redline-core/errors"
	"github.com/redline-lang/redline-core/lexer"
	"github.com/redline-lang/redline-core/token"
)

// parseExpression implements §4.2's precedence climbing: each recursive
// descent into the right operand carries a minimum-precedence floor of
// precedence+1, making every level left-associative.
func (p *Parser) parseExpression(minPrecedence int) (ast.Expression, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.cur()
		prec, ok := precedences[opTok.Type]
		if !ok || prec < minPrecedence {
			return left, nil
		}
		p.advance()
		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{
			Position: pos(opTok),
			Op:       binaryOps[opTok.Type],
			Left:     left,
			Right:    right,
		}
	}
}

// parsePostfix parses one primary expression and then applies the postfix
// loop for call/index/member chains (§4.2 "Postfix loop"), left-folding:
// `a.b(1)[2].c` becomes Get(Index(Call(Get(a,"b"),[1]),2),"c").
func (p *Parser) parsePostfix() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur().Type {
		case token.LPAREN:
			callTok := p.advance()
			args, err := p.parseArgList(token.RPAREN)
			if err != nil {
				return nil, err
			}
			expr = &ast.Call{Position: pos(callTok), Callee: expr, Args: args}
		case token.LBRACKET:
			idxTok := p.advance()
			idx, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.Index{Position: pos(idxTok), Collection: expr, IndexExpr: idx}
		case token.DOT:
			dotTok := p.advance()
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Position: pos(dotTok), Object: expr, Member: nameTok.Literal}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseArgList(closer token.Type) ([]ast.Expression, error) {
	var args []ast.Expression
	if p.at(closer) {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(closer); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary dispatches on the current token kind (§4.2 "Primary expression").
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Type {
	case token.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "invalid integer literal: %s", tok.Literal)
		}
		return &ast.IntLiteral{Position: pos(tok), Value: v}, nil
	case token.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "invalid float literal: %s", tok.Literal)
		}
		return &ast.FloatLiteral{Position: pos(tok), Value: v}, nil
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Position: pos(tok), Value: tok.Literal}, nil
	case token.FSTRING:
		p.advance()
		return p.parseFString(tok)
	case token.TRUE:
		p.advance()
		return &ast.BoolLiteral{Position: pos(tok), Value: true}, nil
	case token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Position: pos(tok), Value: false}, nil
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Position: pos(tok), Name: tok.Literal}, nil
	case token.THIS:
		p.advance()
		return &ast.This{Position: pos(tok)}, nil
	case token.NEW:
		return p.parseNew(tok)
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACKET:
		return p.parseListLiteral(tok)
	case token.LBRACE:
		return p.parseDictLiteral(tok)
	}
	return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "Expected a primary expression")
}

func (p *Parser) parseNew(tok token.Token) (ast.Expression, error) {
	p.advance() // 'new'
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArgList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.New{Position: pos(tok), ClassName: nameTok.Literal, Args: args}, nil
}

func (p *Parser) parseListLiteral(tok token.Token) (ast.Expression, error) {
	p.advance() // '['
	var elements []ast.Expression
	if p.at(token.RBRACKET) {
		p.advance()
		return &ast.ListLiteral{Position: pos(tok), Elements: elements}, nil
	}
	for {
		elem, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Position: pos(tok), Elements: elements}, nil
}

// parseDictLiteral implements §4.2's relaxed entry separators: a leading
// Newline/Indent after '{' and a trailing Newline/Dedent before '}' are both
// tolerated, so dict literals may be written multi-line.
func (p *Parser) parseDictLiteral(tok token.Token) (ast.Expression, error) {
	p.advance() // '{'
	p.skipDictLayout()

	var entries []ast.DictEntry
	if p.at(token.RBRACE) {
		p.advance()
		return &ast.DictLiteral{Position: pos(tok), Entries: entries}, nil
	}
	for {
		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.DictEntry{Key: key, Value: val})
		if p.at(token.COMMA) {
			p.advance()
			p.skipDictLayout()
			continue
		}
		break
	}
	p.skipDictLayout()
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.DictLiteral{Position: pos(tok), Entries: entries}, nil
}

func (p *Parser) skipDictLayout() {
	for p.at(token.NEWLINE) || p.at(token.INDENT) || p.at(token.DEDENT) {
		p.advance()
	}
}

// parseFString implements §4.2's "F-string body parsing": scan the raw body
// left to right, hand each balanced {...} placeholder to a fresh Lexer+
// Parser pair, and fold literal segments and to_string(placeholder) calls
// into a left-associative '+' chain.
func (p *Parser) parseFString(tok token.Token) (ast.Expression, error) {
	body := tok.Literal
	if body == "" {
		return &ast.StringLiteral{Position: pos(tok), Value: ""}, nil
	}

	var parts []ast.Expression
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			parts = append(parts, &ast.StringLiteral{Position: pos(tok), Value: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(body) {
		ch := body[i]
		if ch == '{' {
			flushLiteral()
			depth := 1
			start := i + 1
			j := start
			for j < len(body) && depth > 0 {
				switch body[j] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth == 0 {
					break
				}
				j++
			}
			if depth != 0 {
				return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "Unclosed placeholder in f-string")
			}
			exprSrc := body[start:j]
			placeholder, perr := parseFStringPlaceholder(exprSrc)
			if perr != nil {
				return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "malformed placeholder in f-string: %s", perr.Error())
			}
			parts = append(parts, &ast.Call{
				Position: pos(tok),
				Callee:   &ast.Identifier{Position: pos(tok), Name: "to_string"},
				Args:     []ast.Expression{placeholder},
			})
			i = j + 1
			continue
		}
		lit.WriteByte(ch)
		i++
	}
	flushLiteral()

	if len(parts) == 0 {
		return &ast.StringLiteral{Position: pos(tok), Value: ""}, nil
	}
	result := parts[0]
	for _, part := range parts[1:] {
		result = &ast.BinaryOp{Position: pos(tok), Op: ast.OpAdd, Left: result, Right: part}
	}
	return result, nil
}

// parseFStringPlaceholder is the re-entry point described in §5 and §9: a
// fresh, owned Lexer+Parser pair, isolated from the surrounding token
// stream, whose output is folded into the parent AST and then discarded.
func parseFStringPlaceholder(source string) (ast.Expression, error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, lexErr
	}
	sub := New(tokens)
	return sub.parseExpression(LOWEST)
}
