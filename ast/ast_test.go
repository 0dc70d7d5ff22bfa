package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/redline-lang/redline-core/ast"
	"github.com/stretchr/testify/require"
)

func TestProgramMarshalJSON_FieldOrderAndKind(t *testing.T) {
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.Declaration{
				Name:         "x",
				IsMutable:    false,
				DeclaredType: ast.IntType(),
				Initializer:  &ast.IntLiteral{Value: 1},
			},
		},
	}

	out, err := json.Marshal(prog)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind":"Program",
		"statements":[{
			"kind":"Declaration",
			"is_public":false,
			"is_mutable":false,
			"name":"x",
			"declared_type":{"kind":"int"},
			"initializer":{"kind":"Int","value":1}
		}]
	}`, string(out))
}

func TestMarshalJSON_FieldsKeepDeclarationOrder(t *testing.T) {
	// §6: "fields are emitted in the declaration order defined in §3" — JSONEq
	// above is order-insensitive, so this test pins the exact byte layout for
	// one representative node.
	out, err := json.Marshal(&ast.Get{Object: &ast.Identifier{Name: "a"}, Member: "b"})
	require.NoError(t, err)
	require.Equal(t, `{"kind":"Get","object":{"kind":"Identifier","name":"a"},"member":"b"}`, string(out))
}

func TestBinaryOpMarshalJSON(t *testing.T) {
	expr := &ast.BinaryOp{
		Op:    ast.OpAdd,
		Left:  &ast.IntLiteral{Value: 2},
		Right: &ast.IntLiteral{Value: 3},
	}
	out, err := json.Marshal(expr)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"BinaryOp","op":"+","left":{"kind":"Int","value":2},"right":{"kind":"Int","value":3}}`, string(out))
}

func TestListAndDictTypeMarshalJSON(t *testing.T) {
	lt := ast.ListType(ast.IntType())
	out, err := json.Marshal(lt)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"List","elem":{"kind":"int"}}`, string(out))

	dt := ast.DictType(ast.StringType(), ast.ClassType("Box"))
	out, err = json.Marshal(dt)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"Dict","key":{"kind":"string"},"val":{"kind":"Class","name":"Box"}}`, string(out))
}

func TestConstructorReclassification(t *testing.T) {
	// §8 invariant 8: a class member named "init" is a Constructor, not a
	// Method. This is enforced by the parser; here we only check the AST
	// shape round-trips through JSON distinctly from a Method.
	ctor := &ast.ConstructorMember{Function: &ast.FunctionDefinition{Name: "init"}}
	out, err := json.Marshal(ctor)
	require.NoError(t, err)
	require.Contains(t, string(out), `"kind":"Constructor"`)

	method := &ast.MethodMember{Function: &ast.FunctionDefinition{Name: "area"}}
	out, err = json.Marshal(method)
	require.NoError(t, err)
	require.Contains(t, string(out), `"kind":"Method"`)
}

func TestDumpIsDeterministic(t *testing.T) {
	prog := &ast.Program{
		Statements: []ast.Statement{
			&ast.Print{Expression: &ast.Identifier{Name: "x"}},
		},
	}
	first := ast.Dump(prog)
	second := ast.Dump(prog)
	require.Equal(t, first, second)
	require.Contains(t, first, "Program (1 statements)")
	require.Contains(t, first, "Print")
	require.Contains(t, first, "Identifier: x")
}

func TestTypeStringRendering(t *testing.T) {
	require.Equal(t, "int", ast.IntType().String())
	require.Equal(t, "list[int]", ast.ListType(ast.IntType()).String())
	require.Equal(t, "dict[string,Box]", ast.DictType(ast.StringType(), ast.ClassType("Box")).String())
}
