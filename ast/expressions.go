package ast

import "fmt"

// BinaryOperator enumerates the ten infix operators of §3.3, in the order
// they appear in the precedence table (§4.2) from loosest to tightest within
// their shared level.
type BinaryOperator int

const (
	OpEqual BinaryOperator = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOperator) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEqual:
		return "<="
	case OpGreaterEqual:
		return ">="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
}

// DictEntry is one key:value pair of a DictLiteral; entries preserve source
// order (§3.6 invariant b).
type DictEntry struct {
	Key   Expression
	Value Expression
}

type ListLiteral struct {
	Position Position
	Elements []Expression
}

func (n *ListLiteral) Pos() Position { return n.Position }
func (*ListLiteral) exprNode()       {}

func (n *ListLiteral) MarshalJSON() ([]byte, error) {
	return marshalKind("ListLiteral", struct {
		Elements []Expression `json:"elements"`
	}{n.Elements})
}

type DictLiteral struct {
	Position Position
	Entries  []DictEntry
}

func (n *DictLiteral) Pos() Position { return n.Position }
func (*DictLiteral) exprNode()       {}

func (n *DictLiteral) MarshalJSON() ([]byte, error) {
	type entry struct {
		Key   Expression `json:"key"`
		Value Expression `json:"value"`
	}
	entries := make([]entry, len(n.Entries))
	for i, e := range n.Entries {
		entries[i] = entry{e.Key, e.Value}
	}
	return marshalKind("DictLiteral", struct {
		Entries []entry `json:"entries"`
	}{entries})
}

type Identifier struct {
	Position Position
	Name     string
}

func (n *Identifier) Pos() Position { return n.Position }
func (*Identifier) exprNode()       {}

func (n *Identifier) MarshalJSON() ([]byte, error) {
	return marshalKind("Identifier", struct {
		Name string `json:"name"`
	}{n.Name})
}

type BinaryOp struct {
	Position Position
	Op       BinaryOperator
	Left     Expression
	Right    Expression
}

func (n *BinaryOp) Pos() Position { return n.Position }
func (*BinaryOp) exprNode()       {}

func (n *BinaryOp) MarshalJSON() ([]byte, error) {
	return marshalKind("BinaryOp", struct {
		Op    string     `json:"op"`
		Left  Expression `json:"left"`
		Right Expression `json:"right"`
	}{n.Op.String(), n.Left, n.Right})
}

// Call supports both method calls (callee is a Get) and first-class function
// calls (callee is any other expression) — §3.4.
type Call struct {
	Position Position
	Callee   Expression
	Args     []Expression
}

func (n *Call) Pos() Position { return n.Position }
func (*Call) exprNode()       {}

func (n *Call) MarshalJSON() ([]byte, error) {
	return marshalKind("Call", struct {
		Callee Expression   `json:"callee"`
		Args   []Expression `json:"args"`
	}{n.Callee, n.Args})
}

type Index struct {
	Position   Position
	Collection Expression
	IndexExpr  Expression
}

func (n *Index) Pos() Position { return n.Position }
func (*Index) exprNode()       {}

func (n *Index) MarshalJSON() ([]byte, error) {
	return marshalKind("Index", struct {
		Collection Expression `json:"collection"`
		Index      Expression `json:"index"`
	}{n.Collection, n.IndexExpr})
}

type Get struct {
	Position Position
	Object   Expression
	Member   string
}

func (n *Get) Pos() Position { return n.Position }
func (*Get) exprNode()       {}

func (n *Get) MarshalJSON() ([]byte, error) {
	return marshalKind("Get", struct {
		Object Expression `json:"object"`
		Member string     `json:"member"`
	}{n.Object, n.Member})
}

type This struct {
	Position Position
}

func (n *This) Pos() Position { return n.Position }
func (*This) exprNode()       {}

func (n *This) MarshalJSON() ([]byte, error) {
	return marshalKind("This", struct{}{})
}

type New struct {
	Position  Position
	ClassName string
	Args      []Expression
}

func (n *New) Pos() Position { return n.Position }
func (*New) exprNode()       {}

func (n *New) MarshalJSON() ([]byte, error) {
	return marshalKind("New", struct {
		ClassName string       `json:"class_name"`
		Args      []Expression `json:"args"`
	}{n.ClassName, n.Args})
}
