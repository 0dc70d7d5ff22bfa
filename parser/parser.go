// Package parser implements REDLINE's recursive-descent parser (§4.2):
// precedence climbing for infix expressions, a postfix loop for call/index/
// member chains, and ad-hoc re-entry into a fresh Lexer+Parser pair for each
// f-string placeholder.
package parser

import (
	"github.com/redline-lang/redline-core/ast"
	rlerrors "github.com/redline-lang/redline-core/errors"
	"github.com/redline-lang/redline-core/lexer"
	"github.com/redline-lang/redline-core/token"
)

// Precedence levels, §4.2's table (higher binds tighter). Member/call/index
// are handled by the postfix loop, not this table, since they bind to an
// already-parsed primary rather than climbing from an operator token.
const (
	_ int = iota
	LOWEST
	EQUALITY // == != < > <= >=
	SUM      // + -
	PRODUCT  // * /
)

var precedences = map[token.Type]int{
	token.EQ:    EQUALITY,
	token.NEQ:   EQUALITY,
	token.LT:    EQUALITY,
	token.GT:    EQUALITY,
	token.LTE:   EQUALITY,
	token.GTE:   EQUALITY,
	token.PLUS:  SUM,
	token.MINUS: SUM,
	token.STAR:  PRODUCT,
	token.SLASH: PRODUCT,
}

var binaryOps = map[token.Type]ast.BinaryOperator{
	token.EQ:    ast.OpEqual,
	token.NEQ:   ast.OpNotEqual,
	token.LT:    ast.OpLess,
	token.GT:    ast.OpGreater,
	token.LTE:   ast.OpLessEqual,
	token.GTE:   ast.OpGreaterEqual,
	token.PLUS:  ast.OpAdd,
	token.MINUS: ast.OpSub,
	token.STAR:  ast.OpMul,
	token.SLASH: ast.OpDiv,
}

// Parser holds a single forward cursor over a pre-scanned token slice (§9
// "Cursor-based parsing") — never backtracking more than the one token of
// lookahead exposed by peek().
type Parser struct {
	tokens []token.Token
	pos    int
}

// New constructs a Parser over an already-tokenized stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(typ token.Type) bool {
	return p.cur().Type == typ
}

func (p *Parser) expect(typ token.Type) (token.Token, *rlerrors.SyntaxError) {
	if !p.at(typ) {
		tok := p.cur()
		return token.Token{}, rlerrors.NewSyntaxError(tok.Line, tok.Column,
			"expected %s, got %s", typ, tok.Type)
	}
	return p.advance(), nil
}

func (p *Parser) skipNewlines() {
	for p.at(token.NEWLINE) {
		p.advance()
	}
}

// ParseString tokenizes and parses source in one step — the convenience
// entry point used by the CLI. F-string placeholders do not go through it:
// parseFStringPlaceholder parses a single expression, not a Program.
func ParseString(source string) (*ast.Program, error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, lexErr
	}
	return New(tokens).ParseProgram()
}

// Parse is an alias for ParseString kept for symmetry with the original
// implementation's Parser::parse entry point.
func Parse(source string) (*ast.Program, error) {
	return ParseString(source)
}

// ParseProgram consumes the full token stream and returns the root AST node,
// or the first SyntaxError encountered (§4.2 "Termination").
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		p.skipNewlines()
	}
	return prog, nil
}

// parseBlock consumes an Indent ... Dedent pair, per §4.2 "Blocks". Empty
// blocks (Indent immediately followed by Dedent) are permitted.
func (p *Parser) parseBlock() (ast.Block, error) {
	if _, err := p.expect(token.INDENT); err != nil {
		return nil, err
	}
	var block ast.Block
	p.skipNewlines()
	for !p.at(token.DEDENT) {
		if p.at(token.EOF) {
			tok := p.cur()
			return nil, rlerrors.NewSyntaxError(tok.Line, tok.Column, "expected DEDENT, got EOF")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block = append(block, stmt)
		p.skipNewlines()
	}
	if _, err := p.expect(token.DEDENT); err != nil {
		return nil, err
	}
	if block == nil {
		block = ast.Block{}
	}
	return block, nil
}

func pos(tok token.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}
