package gen

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Directive marks a struct for generation without naming it on the command
// line. The rest of the line lists its capabilities:
//
//	//soa:derive Clone,Equal,Debug
const Directive = "//soa:derive"

// Selection picks the records of a package.
type Selection struct {
	// Types names the records explicitly. When empty, every struct carrying
	// the Directive is selected.
	Types []string
	// Derive applies to every selected record, in addition to the
	// capabilities listed by its directive.
	Derive Derive
	// TypeDerive adds capabilities to individual records.
	TypeDerive map[string]Derive
}

// Package is a loaded package ready to be generated.
type Package struct {
	Path string
	Dir  string
	File *File
}

// Load loads the packages matching patterns and selects their records.
func Load(ctx context.Context, patterns []string, sel Selection, opts ...Option) ([]*Package, error) {
	o := applyOptions(opts)
	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir: o.dir,
	}
	if len(o.tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(o.tags, ",")}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.Join(patterns, " "), err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("load %s: no packages", strings.Join(patterns, " "))
	}

	out := make([]*Package, 0, len(pkgs))
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			errs := make([]error, len(p.Errors))
			for i, e := range p.Errors {
				errs[i] = e
			}
			return nil, fmt.Errorf("load %s: %w", p.PkgPath, errors.Join(errs...))
		}
		f, err := FromPackage(p.Types, p.Syntax, sel, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.PkgPath, err)
		}
		dir := o.dir
		if len(p.GoFiles) > 0 {
			dir = filepath.Dir(p.GoFiles[0])
		}
		out = append(out, &Package{Path: p.PkgPath, Dir: dir, File: f})
	}
	return out, nil
}

// FromPackage selects the records of a type-checked package.
func FromPackage(pkg *types.Package, files []*ast.File, sel Selection, opts ...Option) (*File, error) {
	o := applyOptions(opts)
	log := o.logger.WithPackage(pkg.Name())

	marked, order, err := directives(files)
	if err != nil {
		return nil, err
	}
	names := sel.Types
	if len(names) == 0 {
		names = order
	}
	if len(names) == 0 {
		return nil, ErrNoRecords
	}

	f := &File{Package: pkg.Name(), Imports: map[string]string{}}
	qf := func(other *types.Package) string {
		if other == pkg {
			return ""
		}
		f.Imports[other.Path()] = other.Name()
		return other.Name()
	}

	selected := map[string]bool{}
	for _, name := range names {
		st, err := lookupStruct(pkg, name)
		if err != nil {
			return nil, err
		}
		r, err := NewRecord(name, st, qf, sel.Derive|sel.TypeDerive[name]|marked[name])
		if err != nil {
			return nil, err
		}
		log.WithType(name).Debug("record selected", "fields", len(r.Fields), "derive", r.Derive.String())
		f.Records = append(f.Records, r)
		selected[name] = true
	}

	for _, name := range pkg.Scope().Names() {
		if selected[name] {
			continue
		}
		if tn, ok := pkg.Scope().Lookup(name).(*types.TypeName); ok {
			if _, ok := tn.Type().Underlying().(*types.Struct); ok {
				log.LogSkipped(pkg.Name(), name, "not selected")
			}
		}
	}
	return f, nil
}

func lookupStruct(pkg *types.Package, name string) (*types.Struct, error) {
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, name)
	}
	if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("%w: %s", ErrGenericRecord, name)
	}
	st, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, name)
	}
	return st, nil
}

// directives collects the capabilities of directive-marked types, and their
// names in source order.
func directives(files []*ast.File) (map[string]Derive, []string, error) {
	marked := map[string]Derive{}
	var order []string
	for _, file := range files {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				d, found, err := parseDirective(doc)
				if err != nil {
					return nil, nil, fmt.Errorf("%s: %w", ts.Name.Name, err)
				}
				if !found {
					continue
				}
				if _, seen := marked[ts.Name.Name]; !seen {
					order = append(order, ts.Name.Name)
				}
				marked[ts.Name.Name] |= d
			}
		}
	}
	return marked, order, nil
}

func parseDirective(doc *ast.CommentGroup) (Derive, bool, error) {
	if doc == nil {
		return 0, false, nil
	}
	var (
		d     Derive
		found bool
	)
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Directive)
		if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		found = true
		flags, err := ParseDerive(rest)
		if err != nil {
			return 0, false, err
		}
		d |= flags
	}
	return d, found, nil
}
