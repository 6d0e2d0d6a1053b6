package mustuse

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// Directive marks a function whose result must be used.
const Directive = "//unit:mustuse"

// wrapperPkg is the import path suffix of the package holding Result and Option.
const wrapperPkg = "pkg/rop"

// Analyzer reports call statements that drop a result which must be used.
var Analyzer = &analysis.Analyzer{
	Name:      "mustuse",
	Doc:       "reports dropped rop.Result, rop.Option and //unit:mustuse results; drop them with unit.Discard",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(mustUseFact)},
	Run:       run,
}

// mustUseFact is attached to functions annotated with Directive.
type mustUseFact struct{}

func (*mustUseFact) AFact()         {}
func (*mustUseFact) String() string { return "mustuse" }

func run(pass *analysis.Pass) (interface{}, error) {
	exportDirectives(pass)

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.ExprStmt)(nil)}, func(n ast.Node) {
		call, ok := ast.Unparen(n.(*ast.ExprStmt).X).(*ast.CallExpr)
		if !ok {
			return
		}

		if name, ok := mustUse(pass, call); ok {
			pass.Reportf(call.Pos(), "result of %s is not used; wrap the call in unit.Discard to drop it", name)
		}
	})

	return nil, nil
}

func exportDirectives(pass *analysis.Pass) {
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok || !hasDirective(fd.Doc) {
				continue
			}
			if fn, ok := pass.TypesInfo.Defs[fd.Name].(*types.Func); ok {
				pass.ExportObjectFact(fn, new(mustUseFact))
			}
		}
	}
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if c.Text == Directive || strings.HasPrefix(c.Text, Directive+" ") {
			return true
		}
	}
	return false
}

// mustUse reports whether the value of call has to be inspected, and a name
// for the callee to use in the diagnostic.
func mustUse(pass *analysis.Pass, call *ast.CallExpr) (string, bool) {
	if tv, ok := pass.TypesInfo.Types[call.Fun]; ok && tv.IsType() {
		return "", false
	}

	name := "call"
	switch callee := typeutil.Callee(pass.TypesInfo, call).(type) {
	case *types.Builtin:
		return "", false
	case *types.Func:
		name = callee.Name()
		if callee.Pkg() != nil && pass.ImportObjectFact(callee.Origin(), new(mustUseFact)) {
			return name, true
		}
	case *types.Var:
		name = callee.Name()
	}

	switch t := pass.TypesInfo.TypeOf(call).(type) {
	case nil:
		return "", false
	case *types.Tuple:
		for i := 0; i < t.Len(); i++ {
			if isWrapper(t.At(i).Type()) {
				return name, true
			}
		}
	default:
		if isWrapper(t) {
			return name, true
		}
	}
	return "", false
}

// isWrapper reports whether t is rop.Result or rop.Option.
func isWrapper(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return false
	}
	path := obj.Pkg().Path()
	if path != wrapperPkg && !strings.HasSuffix(path, "/"+wrapperPkg) {
		return false
	}
	return obj.Name() == "Result" || obj.Name() == "Option"
}
