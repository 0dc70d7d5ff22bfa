// Package ast defines the REDLINE abstract syntax tree: a closed set of
// sum-typed statements, expressions, literals, and compound types shared by
// the lexer-driven parser and any downstream consumer (code generator,
// formatter, tooling). Every sum type here is a sealed Go interface with an
// unexported marker method, not an inheritance hierarchy — callers are
// expected to use exhaustive type switches (see dumpNode in dump.go for the
// canonical example of one).
package ast

// Position is a 1-based line/column pair identifying where a token or node
// begins in the source text.
type Position struct {
	Line   int
	Column int
}

// Node is implemented by every statement, expression, and top-level
// construct in the tree.
type Node interface {
	Pos() Position
}

// Expression is the sealed sum of all expression forms (§3.4).
type Expression interface {
	Node
	exprNode()
}

// Statement is the sealed sum of all statement forms (§3.5).
type Statement interface {
	Node
	stmtNode()
}

// Program is the root of the AST: an ordered sequence of top-level
// statements (§3.6).
type Program struct {
	Statements []Statement
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return marshalKind("Program", struct {
		Statements []Statement `json:"statements"`
	}{p.Statements})
}
