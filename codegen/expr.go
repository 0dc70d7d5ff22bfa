package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/redline-lang/redline-core/ast"
)

func (g *generator) emitExpr(expr ast.Expression) (string, error) {
	switch n := expr.(type) {
	case *ast.IntLiteral:
		return strconv.FormatInt(n.Value, 10), nil
	case *ast.FloatLiteral:
		return strconv.FormatFloat(n.Value, 'g', -1, 64), nil
	case *ast.StringLiteral:
		return strconv.Quote(n.Value), nil
	case *ast.BoolLiteral:
		if n.Value {
			return "true", nil
		}
		return "false", nil
	case *ast.Identifier:
		return n.Name, nil
	case *ast.This:
		return "this", nil
	case *ast.BinaryOp:
		left, err := g.emitExpr(n.Left)
		if err != nil {
			return "", err
		}
		right, err := g.emitExpr(n.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, n.Op, right), nil
	case *ast.Call:
		callee, err := g.emitExpr(n.Callee)
		if err != nil {
			return "", err
		}
		if ident, ok := n.Callee.(*ast.Identifier); ok && ident.Name == "to_string" && len(n.Args) == 1 {
			arg, err := g.emitExpr(n.Args[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("std::to_string(%s)", arg), nil
		}
		args, err := g.emitExprList(n.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
	case *ast.Index:
		collection, err := g.emitExpr(n.Collection)
		if err != nil {
			return "", err
		}
		index, err := g.emitExpr(n.IndexExpr)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", collection, index), nil
	case *ast.Get:
		object, err := g.emitExpr(n.Object)
		if err != nil {
			return "", err
		}
		if _, ok := n.Object.(*ast.This); ok {
			return fmt.Sprintf("this->%s", n.Member), nil
		}
		return fmt.Sprintf("%s->%s", object, n.Member), nil
	case *ast.New:
		args, err := g.emitExprList(n.Args)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("std::make_shared<%s>(%s)", n.ClassName, strings.Join(args, ", ")), nil
	case *ast.ListLiteral:
		elems, err := g.emitExprList(n.Elements)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("{%s}", strings.Join(elems, ", ")), nil
	case *ast.DictLiteral:
		parts := make([]string, len(n.Entries))
		for i, e := range n.Entries {
			key, err := g.emitExpr(e.Key)
			if err != nil {
				return "", err
			}
			val, err := g.emitExpr(e.Value)
			if err != nil {
				return "", err
			}
			parts[i] = fmt.Sprintf("{%s, %s}", key, val)
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ", ")), nil
	default:
		return "", fmt.Errorf("codegen: unsupported expression %T", expr)
	}
}

func (g *generator) emitExprList(exprs []ast.Expression) ([]string, error) {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		s, err := g.emitExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// hostType implements the fixed host-type mapping table from spec §6:
// Int→int, Float→double, Bool→bool, String→std::string, Void→void,
// List(T)→std::vector<T>, List(Class(C))→std::vector<std::shared_ptr<C>>,
// Dict(K,V)→std::map<K,V>, Class(C)→std::shared_ptr<C>.
func hostType(t ast.Type) string {
	switch t.Kind {
	case ast.TypeInt:
		return "int"
	case ast.TypeFloat:
		return "double"
	case ast.TypeBool:
		return "bool"
	case ast.TypeString:
		return "std::string"
	case ast.TypeVoid:
		return "void"
	case ast.TypeList:
		return fmt.Sprintf("std::vector<%s>", hostType(*t.Elem))
	case ast.TypeDict:
		return fmt.Sprintf("std::map<%s,%s>", hostType(*t.Key), hostType(*t.Val))
	case ast.TypeClass:
		return fmt.Sprintf("std::shared_ptr<%s>", t.Name)
	default:
		return "void"
	}
}
