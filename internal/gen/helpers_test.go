package gen

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

// typeCheck parses and type-checks a single-file package.
func typeCheck(t *testing.T, src string) (*types.Package, []*ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "demo.go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("example.com/demo", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	return pkg, []*ast.File{f}
}

// structOf returns the underlying struct of the named type in pkg.
func structOf(t *testing.T, pkg *types.Package, name string) *types.Struct {
	t.Helper()
	st, err := lookupStruct(pkg, name)
	require.NoError(t, err)
	return st
}

// localQualifier prints types of pkg unqualified and everything else by
// package name.
func localQualifier(pkg *types.Package) types.Qualifier {
	return func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		return other.Name()
	}
}
