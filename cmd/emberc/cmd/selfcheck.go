package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emberlang/emberc/internal/ast"
	"github.com/emberlang/emberc/internal/ast/astbuild"
	"github.com/emberlang/emberc/internal/config"
	"github.com/emberlang/emberc/internal/diagnostics"
	"github.com/emberlang/emberc/internal/semantic"
)

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Type-check a built-in gallery of example programs",
	Long: `selfcheck builds a handful of small programs in memory with the
astbuild helpers and runs the semantic checker over each one — a
dependency-free smoke demo that exercises declarations, structs,
functions, casts, and built-in calls without needing a source file or
an external parser.`,
	RunE: runSelfcheck,
}

func init() {
	rootCmd.AddCommand(selfcheckCmd)
}

type gallerySample struct {
	name       string
	wantErrors bool
	build      func(b *astbuild.Builder) *ast.Node
}

var gallery = []gallerySample{
	{
		name: "variables and print",
		build: func(b *astbuild.Builder) *ast.Node {
			x := b.Named(ast.KindIntVariableDefinition, "x")
			astbuild.Connect(x, b.IntLit(41))
			printCall := b.Named(ast.KindFunctionCall, "print")
			args := astbuild.Connect(b.Node(ast.KindArgumentList), b.Named(ast.KindVariable, "x"))
			astbuild.Connect(printCall, args)
			return b.Program(x, printCall)
		},
	},
	{
		name: "struct definition and field access",
		build: func(b *astbuild.Builder) *ast.Node {
			fieldX := astbuild.Connect(b.Named(ast.KindStructField, "x"), b.Node(ast.KindRefInt))
			fieldY := astbuild.Connect(b.Named(ast.KindStructField, "y"), b.Node(ast.KindRefInt))
			fields := astbuild.Connect(b.Node(ast.KindStructFieldList), fieldX, fieldY)
			structDef := astbuild.Connect(b.Named(ast.KindStructDefinition, "Point"), fields)

			refCustom := b.Node(ast.KindRefCustom)
			refCustom.Name = structDef.Name
			pDecl := astbuild.Connect(b.Named(ast.KindStructVariableDefinition, "p"), refCustom)

			member := astbuild.Connect(b.Named(ast.KindMemberAccess, "x"), b.Named(ast.KindVariable, "p"))
			assign := astbuild.Connect(b.Node(ast.KindAssignment), member, b.IntLit(5))

			return b.Program(structDef, pDecl, assign)
		},
	},
	{
		name: "function definition, call, and return",
		build: func(b *astbuild.Builder) *ast.Node {
			param := astbuild.Connect(b.Named(ast.KindParameter, "n"), b.Node(ast.KindRefInt))
			params := astbuild.Connect(b.Node(ast.KindParameterList), param)
			retType := astbuild.Connect(b.Node(ast.KindReturnType), b.Node(ast.KindRefInt))
			ret := astbuild.Connect(b.Node(ast.KindReturnStatement),
				astbuild.Connect(b.Node(ast.KindAdd), b.Named(ast.KindVariable, "n"), b.IntLit(1)))
			body := b.Block(ret)
			fn := astbuild.Connect(b.Named(ast.KindFunctionDefinition, "increment"), params, retType, body)

			call := b.Named(ast.KindFunctionCall, "increment")
			args := astbuild.Connect(b.Node(ast.KindArgumentList), b.IntLit(9))
			astbuild.Connect(call, args)

			result := b.Named(ast.KindIntVariableDefinition, "result")
			astbuild.Connect(result, call)

			return b.Program(fn, result)
		},
	},
	{
		name: "cast expression",
		build: func(b *astbuild.Builder) *ast.Node {
			d := b.Named(ast.KindDoubleVariableDefinition, "d")
			astbuild.Connect(d, b.DoubleLit(3.14))
			cast := astbuild.Connect(b.Node(ast.KindCastExpression), b.Named(ast.KindVariable, "d"), b.Node(ast.KindRefInt))
			i := b.Named(ast.KindIntVariableDefinition, "truncated")
			astbuild.Connect(i, cast)
			return b.Program(d, i)
		},
	},
}

func runSelfcheck(_ *cobra.Command, args []string) error {
	color := config.ResolveColor(cfg, noColor, false)
	failures := 0

	for _, sample := range gallery {
		b := astbuild.New()
		program := sample.build(b)

		reporter := diagnostics.New(os.Stdout, b.Source(), color)
		reporter.RunID = runID
		reporter.MaxErrors = cfg.MaxErrors
		checker := semantic.NewChecker(reporter, b.Source(), "<selfcheck>")
		checker.Check(program)

		status := "ok"
		if hasErrors(reporter) != sample.wantErrors {
			status = "FAIL"
			failures++
		}
		fmt.Fprintf(os.Stdout, "[%s] %-38s warnings=%d errors=%d\n",
			status, sample.name, reporter.Warnings(), reporter.Errors())
	}

	if failures > 0 {
		return fmt.Errorf("%d selfcheck sample(s) did not match the expected outcome", failures)
	}
	return nil
}
