// Package codegen is a downstream consumer of the AST contract (spec §1,
// §6): a pure function from a Program to target-language text. It is
// outside the core's hard-part boundary — included only so the CLI's --gen
// mode is runnable end-to-end — and implements just the host-type mapping
// table and a minimal C++-family rendering of declarations and control flow.
package codegen

import (
	"fmt"
	"strings"

	"github.com/redline-lang/redline-core/ast"
)

// Generate renders prog as a single C++-family translation unit (a header
// when header is true, a source file otherwise). module is the input file's
// stem, used for the header's include guard and as the header name the
// source file includes (spec §6).
func Generate(prog *ast.Program, module string, header bool) (string, error) {
	g := &generator{module: module}
	if header {
		return g.generateHeader(prog)
	}
	return g.generateSource(prog)
}

type generator struct {
	module string
	out    strings.Builder
	indent int
}

func (g *generator) write(format string, args ...any) {
	g.out.WriteString(strings.Repeat("    ", g.indent))
	fmt.Fprintf(&g.out, format, args...)
	g.out.WriteString("\n")
}

func (g *generator) generateHeader(prog *ast.Program) (string, error) {
	guard := strings.ToUpper(g.module) + "_HPP"
	g.write("#ifndef %s", guard)
	g.write("#define %s", guard)
	g.write("")
	g.write("#include <string>")
	g.write("#include <vector>")
	g.write("#include <map>")
	g.write("#include <memory>")
	g.write("")
	if err := g.emitStatements(prog.Statements, true); err != nil {
		return "", err
	}
	g.write("")
	g.write("#endif // %s", guard)
	return g.out.String(), nil
}

func (g *generator) generateSource(prog *ast.Program) (string, error) {
	g.write("#include \"%s.hpp\"", g.module)
	g.write("")
	if err := g.emitStatements(prog.Statements, false); err != nil {
		return "", err
	}
	return g.out.String(), nil
}

func (g *generator) emitStatements(stmts []ast.Statement, declOnly bool) error {
	for _, stmt := range stmts {
		if err := g.emitStatement(stmt, declOnly); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) emitStatement(stmt ast.Statement, declOnly bool) error {
	switch n := stmt.(type) {
	case *ast.Import:
		g.write("// import %q (resolved by the build system, not this generator)", n.Path)
	case *ast.Declaration:
		init, err := g.emitExpr(n.Initializer)
		if err != nil {
			return err
		}
		qualifier := "const "
		if n.IsMutable {
			qualifier = ""
		}
		g.write("%s%s %s = %s;", qualifier, hostType(n.DeclaredType), n.Name, init)
	case *ast.FunctionDefinition:
		return g.emitFunction(n, declOnly)
	case *ast.Class:
		return g.emitClass(n, declOnly)
	case *ast.Print:
		expr, err := g.emitExpr(n.Expression)
		if err != nil {
			return err
		}
		g.write("std::cout << %s << std::endl;", expr)
	case *ast.ExpressionStmt:
		expr, err := g.emitExpr(n.Expression)
		if err != nil {
			return err
		}
		g.write("%s;", expr)
	case *ast.Assignment:
		target, err := g.emitExpr(n.Target)
		if err != nil {
			return err
		}
		value, err := g.emitExpr(n.Value)
		if err != nil {
			return err
		}
		g.write("%s = %s;", target, value)
	case *ast.Return:
		if n.Expression == nil {
			g.write("return;")
			return nil
		}
		expr, err := g.emitExpr(n.Expression)
		if err != nil {
			return err
		}
		g.write("return %s;", expr)
	case *ast.If:
		cond, err := g.emitExpr(n.Condition)
		if err != nil {
			return err
		}
		g.write("if (%s) {", cond)
		g.indent++
		if err := g.emitStatements(n.ThenBlock, declOnly); err != nil {
			return err
		}
		g.indent--
		if n.ElseBlock != nil {
			g.write("} else {")
			g.indent++
			if err := g.emitStatements(n.ElseBlock, declOnly); err != nil {
				return err
			}
			g.indent--
		}
		g.write("}")
	case *ast.While:
		cond, err := g.emitExpr(n.Condition)
		if err != nil {
			return err
		}
		g.write("while (%s) {", cond)
		g.indent++
		if err := g.emitStatements(n.Body, declOnly); err != nil {
			return err
		}
		g.indent--
		g.write("}")
	case *ast.For:
		start, err := g.emitExpr(n.Start)
		if err != nil {
			return err
		}
		end, err := g.emitExpr(n.End)
		if err != nil {
			return err
		}
		g.write("for (int %s = %s; %s < %s; ++%s) {", n.Iterator, start, n.Iterator, end, n.Iterator)
		g.indent++
		if err := g.emitStatements(n.Body, declOnly); err != nil {
			return err
		}
		g.indent--
		g.write("}")
	case *ast.TryCatch:
		g.write("try {")
		g.indent++
		if err := g.emitStatements(n.TryBlock, declOnly); err != nil {
			return err
		}
		g.indent--
		g.write("} catch (const std::exception& %s) {", n.CatchVar)
		g.indent++
		if err := g.emitStatements(n.CatchBlock, declOnly); err != nil {
			return err
		}
		g.indent--
		g.write("}")
	case *ast.Break:
		g.write("break;")
	case *ast.Continue:
		g.write("continue;")
	default:
		return fmt.Errorf("codegen: unsupported statement %T", stmt)
	}
	return nil
}

func (g *generator) emitFunction(fn *ast.FunctionDefinition, declOnly bool) error {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", hostType(p.Type), p.Name)
	}
	signature := fmt.Sprintf("%s %s(%s)", hostType(fn.ReturnType), fn.Name, strings.Join(params, ", "))
	if declOnly {
		g.write("%s;", signature)
		return nil
	}
	g.write("%s {", signature)
	g.indent++
	if err := g.emitStatements(fn.Body, declOnly); err != nil {
		return err
	}
	g.indent--
	g.write("}")
	return nil
}

func (g *generator) emitClass(class *ast.Class, declOnly bool) error {
	if !declOnly {
		for _, m := range class.Members {
			if method, ok := m.(*ast.MethodMember); ok {
				if err := g.emitClassMethodBody(class.Name, method.Function); err != nil {
					return err
				}
			}
			if ctor, ok := m.(*ast.ConstructorMember); ok {
				if err := g.emitClassMethodBody(class.Name, ctor.Function); err != nil {
					return err
				}
			}
		}
		return nil
	}

	g.write("class %s {", class.Name)
	g.write("public:")
	g.indent++
	for _, m := range class.Members {
		switch member := m.(type) {
		case *ast.VariableMember:
			g.write("%s %s;", hostType(member.Declaration.DeclaredType), member.Declaration.Name)
		case *ast.ConstructorMember:
			params := make([]string, len(member.Function.Params))
			for i, p := range member.Function.Params {
				params[i] = fmt.Sprintf("%s %s", hostType(p.Type), p.Name)
			}
			g.write("%s(%s);", class.Name, strings.Join(params, ", "))
		case *ast.MethodMember:
			params := make([]string, len(member.Function.Params))
			for i, p := range member.Function.Params {
				params[i] = fmt.Sprintf("%s %s", hostType(p.Type), p.Name)
			}
			g.write("%s %s(%s);", hostType(member.Function.ReturnType), member.Function.Name, strings.Join(params, ", "))
		}
	}
	g.indent--
	g.write("};")
	return nil
}

func (g *generator) emitClassMethodBody(className string, fn *ast.FunctionDefinition) error {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", hostType(p.Type), p.Name)
	}
	name := fn.Name
	if name == "init" {
		name = className
		g.write("%s::%s(%s) {", className, name, strings.Join(params, ", "))
	} else {
		g.write("%s %s::%s(%s) {", hostType(fn.ReturnType), className, name, strings.Join(params, ", "))
	}
	g.indent++
	if err := g.emitStatements(fn.Body, false); err != nil {
		return err
	}
	g.indent--
	g.write("}")
	return nil
}
