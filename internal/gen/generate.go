package gen

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"golang.org/x/tools/imports"
)

// RuntimePath is the import path of the runtime package generated code
// depends on.
const RuntimePath = "github.com/pavanmanishd/soa"

var tmpl = template.Must(template.New("file").Parse(
	fileTemplate + vecTemplate + sliceTemplate + refTemplate +
		ptrTemplate + iterTemplate + cloneTemplate + equalTemplate + debugTemplate,
))

// Import is one import line of a generated file.
type Import struct {
	Name string // set only when it differs from the last path element
	Path string
}

// File is the input of Generate: the records of one package that go into a
// single output file.
type File struct {
	Package string
	Records []*Record
	// Imports holds packages referenced by field types, keyed by path,
	// mapped to the name the field types use.
	Imports map[string]string
}

// Generate renders f as formatted Go source.
func Generate(f *File, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	if len(f.Records) == 0 {
		return nil, ErrNoRecords
	}

	data := struct {
		Package string
		Imports []Import
		Records []*Record
	}{
		Package: f.Package,
		Imports: fileImports(f, o.runtimePath),
		Records: f.Records,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", f.Package, err)
	}

	src, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		// Hand back the unformatted source so the caller can inspect it.
		return buf.Bytes(), fmt.Errorf("format %s: %w", f.Package, err)
	}

	for _, r := range f.Records {
		o.logger.LogGenerated(f.Package, r.Name, len(r.Fields), r.Derive)
	}
	return src, nil
}

// fileImports lists exactly the imports the rendered file uses.
func fileImports(f *File, runtimePath string) []Import {
	var out []Import
	add := func(path, name string) {
		imp := Import{Path: path}
		if name != "" && name != lastElem(path) {
			imp.Name = name
		}
		out = append(out, imp)
	}

	var needFmt, needSlices bool
	for _, r := range f.Records {
		needFmt = needFmt || (r.Debug() && r.HasFields())
		needSlices = needSlices || (r.Equal() && r.HasFields())
	}
	if needFmt {
		add("fmt", "")
	}
	add("iter", "")
	if needSlices {
		add("slices", "")
	}
	add(runtimePath, "soa")

	paths := make([]string, 0, len(f.Imports))
	for p := range f.Imports {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		add(p, f.Imports[p])
	}
	return out
}

func lastElem(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
