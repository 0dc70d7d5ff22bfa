package parser

import (
	"github.com/redline-lang/redline-core/ast"
	rlerrors "github.com/redline-lang/redline-core/errors"
	"github.com/redline-lang/redline-core/token"
)

// parseStatement dispatches on the leading token per §4.2 "Statement dispatch".
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.cur()
	switch tok.Type {
	case token.IMPORT:
		return p.parseImport()
	case token.CLASS:
		return p.parseClass(false)
	case token.TRY:
		return p.parseTryCatch()
	case token.BREAK:
		p.advance()
		return &ast.Break{Position: pos(tok)}, nil
	case token.CONTINUE:
		p.advance()
		return &ast.Continue{Position: pos(tok)}, nil
	case token.PRINT:
		return p.parsePrint()
	case token.PUB:
		return p.parsePub()
	case token.VAL, token.VAR:
		return p.parseDeclaration(false)
	case token.DEF:
		return p.parseFunctionDefinition(false)
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	default:
		return p.parseExpressionOrAssignment()
	}
}

func (p *Parser) parseImport() (ast.Statement, error) {
	tok := p.advance() // 'import'
	strTok, err := p.expect(token.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.Import{Position: pos(tok), Path: strTok.Literal}, nil
}

func (p *Parser) parsePrint() (ast.Statement, error) {
	tok := p.advance() // 'print'
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Print{Position: pos(tok), Expression: expr}, nil
}

func (p *Parser) parsePub() (ast.Statement, error) {
	p.advance() // 'pub'
	switch p.cur().Type {
	case token.VAL, token.VAR:
		return p.parseDeclaration(true)
	case token.DEF:
		return p.parseFunctionDefinition(true)
	case token.CLASS:
		return p.parseClass(true)
	default:
		tok := p.cur()
		return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column,
			"expected val, var, def, or class after pub, got %s", tok.Type)
	}
}

func (p *Parser) parseDeclaration(isPublic bool) (ast.Statement, error) {
	declTok := p.advance() // 'val' or 'var'
	isMutable := declTok.Type == token.VAR

	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	declType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	initializer, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Declaration{
		Position:     pos(declTok),
		IsPublic:     isPublic,
		IsMutable:    isMutable,
		Name:         nameTok.Literal,
		DeclaredType: declType,
		Initializer:  initializer,
	}, nil
}

func (p *Parser) parseParamList() ([]ast.Param, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	if p.at(token.RPAREN) {
		p.advance()
		return params, nil
	}
	for {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: nameTok.Literal, Type: typ})
		if p.at(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFunctionDefinition implements §4.2's `def NAME(params) [-> T] : NEWLINE
// block`, defaulting ReturnType to Void when no arrow clause is present
// (§3.6 invariant c / §8 invariant 7).
func (p *Parser) parseFunctionDefinition(isPublic bool) (*ast.FunctionDefinition, error) {
	defTok := p.advance() // 'def'
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	returnType := ast.VoidType()
	if p.at(token.ARROW) {
		p.advance()
		returnType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{
		Position:   pos(defTok),
		IsPublic:   isPublic,
		Name:       nameTok.Literal,
		Params:     params,
		ReturnType: returnType,
		Body:       body,
	}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	ifTok := p.advance() // 'if'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	thenBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseBlock ast.Block
	savedPos := p.pos
	p.skipNewlines()
	if p.at(token.ELSE) {
		p.advance()
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		p.skipNewlines()
		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	} else {
		p.pos = savedPos
	}
	return &ast.If{Position: pos(ifTok), Condition: cond, ThenBlock: thenBlock, ElseBlock: elseBlock}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	whileTok := p.advance() // 'while'
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Position: pos(whileTok), Condition: cond, Body: body}, nil
}

// parseFor implements `for Ident in start .. end :` (§4.2, §3.5) — a
// half-open integer range (decided in DESIGN.md for Open Question a).
func (p *Parser) parseFor() (ast.Statement, error) {
	forTok := p.advance() // 'for'
	iterTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.IN); err != nil {
		return nil, err
	}
	start, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RANGE); err != nil {
		return nil, err
	}
	end, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Position: pos(forTok), Iterator: iterTok.Literal, Start: start, End: end, Body: body}, nil
}

// parseReturn implements §4.2: the trailing expression is absent if the next
// token is Newline or EOF.
func (p *Parser) parseReturn() (ast.Statement, error) {
	retTok := p.advance() // 'return'
	if p.at(token.NEWLINE) || p.at(token.EOF) || p.at(token.DEDENT) {
		return &ast.Return{Position: pos(retTok)}, nil
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Position: pos(retTok), Expression: expr}, nil
}

func (p *Parser) parseTryCatch() (ast.Statement, error) {
	tryTok := p.advance() // 'try'
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	tryBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(token.CATCH); err != nil {
		return nil, err
	}
	catchVarTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	catchBlock, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.TryCatch{
		Position:   pos(tryTok),
		TryBlock:   tryBlock,
		CatchVar:   catchVarTok.Literal,
		CatchBlock: catchBlock,
	}, nil
}

// parseClass implements §4.2's class body: like a block, but each member has
// its own optional `pub` prefix and is restricted to val/var (Variable) or
// def (Method; reclassified to Constructor iff name == "init").
func (p *Parser) parseClass(isPublic bool) (*ast.Class, error) {
	classTok := p.advance() // 'class'
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	p.skipNewlines()
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	p.skipNewlines()
	var members []ast.ClassMember
	for !p.at(token.DEDENT) {
		if p.at(token.EOF) {
			tok := p.cur()
			return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "expected DEDENT, got EOF")
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
		p.skipNewlines()
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	return &ast.Class{Position: pos(classTok), IsPublic: isPublic, Name: nameTok.Literal, Members: members}, nil
}

func (p *Parser) parseClassMember() (ast.ClassMember, error) {
	isPublic := false
	if p.at(token.PUB) {
		p.advance()
		isPublic = true
	}
	switch p.cur().Type {
	case token.VAL, token.VAR:
		decl, err := p.parseDeclaration(isPublic)
		if err != nil {
			return nil, err
		}
		return &ast.VariableMember{Declaration: decl.(*ast.Declaration)}, nil
	case token.DEF:
		fn, err := p.parseFunctionDefinition(isPublic)
		if err != nil {
			return nil, err
		}
		if fn.Name == "init" {
			return &ast.ConstructorMember{Function: fn}, nil
		}
		return &ast.MethodMember{Function: fn}, nil
	default:
		tok := p.cur()
		return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column,
			"expected val, var, or def in class body, got %s", tok.Type)
	}
}

// parseExpressionOrAssignment implements §4.2's fallback: parse an
// expression, and if '=' follows, reinterpret it as an Assignment target.
func (p *Parser) parseExpressionOrAssignment() (ast.Statement, error) {
	startTok := p.cur()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.at(token.ASSIGN) {
		p.advance()
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Position: pos(startTok), Target: expr, Value: value}, nil
	}
	return &ast.ExpressionStmt{Position: pos(startTok), Expression: expr}, nil
}
