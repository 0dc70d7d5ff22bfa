package ast

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
)

// Dump renders node as the human-readable, indented keyed-record form
// described in §4.3: stable across runs given identical input, used by the
// `parse --dump-ast` debug command. Unlike MarshalJSON (machine interchange),
// this is a plain exhaustive type switch with no external dependency — the
// wire contract stays stdlib-only; only the interactive Repr below reaches
// for a library.
func Dump(node Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return b.String()
}

func indentPrefix(depth int) string {
	return strings.Repeat("  ", depth)
}

func dumpNode(b *strings.Builder, node Node, depth int) {
	prefix := indentPrefix(depth)
	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(b, "%sProgram (%d statements)\n", prefix, len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(b, s, depth+1)
		}
	case *IntLiteral:
		fmt.Fprintf(b, "%sInt: %d\n", prefix, n.Value)
	case *FloatLiteral:
		fmt.Fprintf(b, "%sFloat: %g\n", prefix, n.Value)
	case *StringLiteral:
		fmt.Fprintf(b, "%sStr: %q\n", prefix, n.Value)
	case *BoolLiteral:
		fmt.Fprintf(b, "%sBool: %t\n", prefix, n.Value)
	case *ListLiteral:
		fmt.Fprintf(b, "%sListLiteral (%d elements)\n", prefix, len(n.Elements))
		for _, e := range n.Elements {
			dumpNode(b, e, depth+1)
		}
	case *DictLiteral:
		fmt.Fprintf(b, "%sDictLiteral (%d entries)\n", prefix, len(n.Entries))
		for _, e := range n.Entries {
			fmt.Fprintf(b, "%s  Key:\n", prefix)
			dumpNode(b, e.Key, depth+2)
			fmt.Fprintf(b, "%s  Value:\n", prefix)
			dumpNode(b, e.Value, depth+2)
		}
	case *Identifier:
		fmt.Fprintf(b, "%sIdentifier: %s\n", prefix, n.Name)
	case *BinaryOp:
		fmt.Fprintf(b, "%sBinaryOp (%s)\n", prefix, n.Op)
		fmt.Fprintf(b, "%s  Left:\n", prefix)
		dumpNode(b, n.Left, depth+2)
		fmt.Fprintf(b, "%s  Right:\n", prefix)
		dumpNode(b, n.Right, depth+2)
	case *Call:
		fmt.Fprintf(b, "%sCall (%d args)\n", prefix, len(n.Args))
		fmt.Fprintf(b, "%s  Callee:\n", prefix)
		dumpNode(b, n.Callee, depth+2)
		for _, a := range n.Args {
			dumpNode(b, a, depth+1)
		}
	case *Index:
		fmt.Fprintf(b, "%sIndex\n", prefix)
		dumpNode(b, n.Collection, depth+1)
		dumpNode(b, n.IndexExpr, depth+1)
	case *Get:
		fmt.Fprintf(b, "%sGet: .%s\n", prefix, n.Member)
		dumpNode(b, n.Object, depth+1)
	case *This:
		fmt.Fprintf(b, "%sThis\n", prefix)
	case *New:
		fmt.Fprintf(b, "%sNew: %s (%d args)\n", prefix, n.ClassName, len(n.Args))
		for _, a := range n.Args {
			dumpNode(b, a, depth+1)
		}
	case *Import:
		fmt.Fprintf(b, "%sImport: %q\n", prefix, n.Path)
	case *Declaration:
		mut := "val"
		if n.IsMutable {
			mut = "var"
		}
		fmt.Fprintf(b, "%sDeclaration (%s %s: %s, public=%t)\n", prefix, mut, n.Name, n.DeclaredType, n.IsPublic)
		if n.Initializer != nil {
			dumpNode(b, n.Initializer, depth+1)
		}
	case *Assignment:
		fmt.Fprintf(b, "%sAssignment\n", prefix)
		fmt.Fprintf(b, "%s  Target:\n", prefix)
		dumpNode(b, n.Target, depth+2)
		fmt.Fprintf(b, "%s  Value:\n", prefix)
		dumpNode(b, n.Value, depth+2)
	case *If:
		fmt.Fprintf(b, "%sIf\n", prefix)
		dumpNode(b, n.Condition, depth+1)
		for _, s := range n.ThenBlock {
			dumpNode(b, s, depth+1)
		}
		if n.ElseBlock != nil {
			fmt.Fprintf(b, "%sElse\n", prefix)
			for _, s := range n.ElseBlock {
				dumpNode(b, s, depth+1)
			}
		}
	case *While:
		fmt.Fprintf(b, "%sWhile\n", prefix)
		dumpNode(b, n.Condition, depth+1)
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
	case *For:
		fmt.Fprintf(b, "%sFor %s\n", prefix, n.Iterator)
		dumpNode(b, n.Start, depth+1)
		dumpNode(b, n.End, depth+1)
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
	case *Print:
		fmt.Fprintf(b, "%sPrint\n", prefix)
		dumpNode(b, n.Expression, depth+1)
	case *ExpressionStmt:
		fmt.Fprintf(b, "%sExpression\n", prefix)
		dumpNode(b, n.Expression, depth+1)
	case *FunctionDefinition:
		fmt.Fprintf(b, "%sFunctionDefinition %s -> %s (public=%t)\n", prefix, n.Name, n.ReturnType, n.IsPublic)
		for _, p := range n.Params {
			fmt.Fprintf(b, "%s  param %s: %s\n", prefix, p.Name, p.Type)
		}
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
	case *Return:
		fmt.Fprintf(b, "%sReturn\n", prefix)
		if n.Expression != nil {
			dumpNode(b, n.Expression, depth+1)
		}
	case *Class:
		fmt.Fprintf(b, "%sClass %s (public=%t)\n", prefix, n.Name, n.IsPublic)
		for _, m := range n.Members {
			dumpNode(b, m, depth+1)
		}
	case *VariableMember:
		dumpNode(b, n.Declaration, depth)
	case *MethodMember:
		dumpNode(b, n.Function, depth)
	case *ConstructorMember:
		fmt.Fprintf(b, "%sConstructor\n", prefix)
		dumpNode(b, n.Function, depth)
	case *TryCatch:
		fmt.Fprintf(b, "%sTryCatch (catch %s)\n", prefix, n.CatchVar)
		for _, s := range n.TryBlock {
			dumpNode(b, s, depth+1)
		}
		for _, s := range n.CatchBlock {
			dumpNode(b, s, depth+1)
		}
	case *Break:
		fmt.Fprintf(b, "%sBreak\n", prefix)
	case *Continue:
		fmt.Fprintf(b, "%sContinue\n", prefix)
	default:
		fmt.Fprintf(b, "%s<unknown node %T>\n", prefix, node)
	}
}

// Repr renders node via alecthomas/repr for interactive debugging — unlike
// Dump, this is not a stable contract, just a convenience for humans staring
// at a REPL or test failure.
func Repr(node Node) string {
	return repr.String(node, repr.Indent("  "))
}
