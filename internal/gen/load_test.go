package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loadSrc = `package demo

import "time"

//soa:derive Clone
type A struct{ X int }

// B has a doc comment before its directive.
//
//soa:derive Equal, Debug
type B struct {
	Y string
	T time.Duration
}

type C struct{ Q int }

type (
	//soa:derive Debug
	D struct{ W int }

	E struct{ V int }
)

//soa:deriveX Clone
type F struct{ U int }

type NotStruct int

type G[T any] struct{ v T }
`

func recordNames(f *File) []string {
	var out []string
	for _, r := range f.Records {
		out = append(out, r.Name)
	}
	return out
}

func TestFromPackageDirectives(t *testing.T) {
	pkg, files := typeCheck(t, loadSrc)
	f, err := FromPackage(pkg, files, Selection{})
	require.NoError(t, err)

	assert.Equal(t, "demo", f.Package)
	assert.Equal(t, []string{"A", "B", "D"}, recordNames(f), "directive order, malformed directives ignored")
	assert.Equal(t, DeriveClone, f.Records[0].Derive)
	assert.Equal(t, DeriveEqual|DeriveDebug, f.Records[1].Derive)
	assert.Equal(t, DeriveDebug, f.Records[2].Derive)
	assert.Equal(t, map[string]string{"time": "time"}, f.Imports)
	assert.Equal(t, "time.Duration", f.Records[1].Fields[1].Type)
}

func TestFromPackageSelection(t *testing.T) {
	pkg, files := typeCheck(t, loadSrc)

	t.Run("explicit types", func(t *testing.T) {
		f, err := FromPackage(pkg, files, Selection{Types: []string{"C", "A"}, Derive: DeriveDebug})
		require.NoError(t, err)
		assert.Equal(t, []string{"C", "A"}, recordNames(f))
		assert.Equal(t, DeriveDebug, f.Records[0].Derive)
		assert.Equal(t, DeriveClone|DeriveDebug, f.Records[1].Derive, "flags add to the directive")
		assert.Empty(t, f.Imports, "no field references another package")
	})

	t.Run("per-type derive", func(t *testing.T) {
		sel := Selection{
			Types:      []string{"E"},
			TypeDerive: map[string]Derive{"E": DeriveEqual},
		}
		f, err := FromPackage(pkg, files, sel)
		require.NoError(t, err)
		assert.Equal(t, DeriveEqual, f.Records[0].Derive)
	})

	errs := []struct {
		name string
		typ  string
		want error
	}{
		{"missing", "Missing", ErrTypeNotFound},
		{"not a struct", "NotStruct", ErrNotStruct},
		{"generic", "G", ErrGenericRecord},
	}
	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromPackage(pkg, files, Selection{Types: []string{tt.typ}})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFromPackageNoRecords(t *testing.T) {
	pkg, files := typeCheck(t, "package demo\n\ntype A struct{ X int }\n")
	_, err := FromPackage(pkg, files, Selection{})
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestFromPackageBadDirective(t *testing.T) {
	pkg, files := typeCheck(t, "package demo\n\n//soa:derive Clone,Hash\ntype A struct{ X int }\n")
	_, err := FromPackage(pkg, files, Selection{})
	require.ErrorIs(t, err, ErrUnknownDerive)
	assert.Contains(t, err.Error(), "A:")
}

func TestFromPackageReservedField(t *testing.T) {
	pkg, files := typeCheck(t, "package demo\n\n//soa:derive Clone\ntype Span struct {\n\tLen  int\n\tName string\n}\n")
	_, err := FromPackage(pkg, files, Selection{})
	require.ErrorIs(t, err, ErrReservedField)
	assert.Contains(t, err.Error(), "Span.Len")
}

func TestLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.go"), []byte(loadSrc), 0o644))

	pkgs, err := Load(context.Background(), []string{"."}, Selection{}, WithDir(dir))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	p := pkgs[0]
	assert.Equal(t, "example.com/demo", p.Path)
	assert.Equal(t, []string{"A", "B", "D"}, recordNames(p.File))

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(p.Dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/broken\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package broken\n\nvar x int = \"s\"\n"), 0o644))

	_, err := Load(context.Background(), []string{"."}, Selection{}, WithDir(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "example.com/broken")
}
