package gen

import (
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field is one record field as the templates see it.
type Field struct {
	Name string
	// Type is the field type as written in the record's own package.
	Type string
	// EqualMethod is set when the type defines Equal(T) bool, which is then
	// preferred over ==.
	EqualMethod bool
	Comparable  bool
}

// EqualExpr returns the expression comparing field slices a and b.
func (f Field) EqualExpr(a, b string) string {
	if f.EqualMethod {
		return "slices.EqualFunc(" + a + "." + f.Name + ", " + b + "." + f.Name +
			", func(x, y " + f.Type + ") bool { return x.Equal(y) })"
	}
	return "slices.Equal(" + a + "." + f.Name + ", " + b + "." + f.Name + ")"
}

// Record is a struct type selected for generation.
type Record struct {
	Name   string
	Fields []Field
	Derive Derive
}

// NewRecord builds the record model of struct st named name. qf prints
// field types relative to the package the code is generated into.
// Blank fields carry no data and are skipped.
func NewRecord(name string, st *types.Struct, qf types.Qualifier, derive Derive) (*Record, error) {
	r := &Record{Name: name, Derive: derive}
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if v.Name() == "_" {
			continue
		}
		if v.Embedded() {
			return nil, &FieldError{Record: name, Field: v.Name(), cause: ErrEmbeddedField}
		}
		if reserved(v.Name(), derive) {
			return nil, &FieldError{Record: name, Field: v.Name(), cause: ErrReservedField}
		}
		f := Field{
			Name:        v.Name(),
			Type:        types.TypeString(v.Type(), qf),
			Comparable:  types.Comparable(v.Type()),
			EqualMethod: hasEqualMethod(v.Type()),
		}
		if derive.Has(DeriveEqual) && !f.Comparable && !f.EqualMethod {
			return nil, &FieldError{Record: name, Field: v.Name(), cause: ErrNotComparable}
		}
		r.Fields = append(r.Fields, f)
	}
	return r, nil
}

// viewMethods maps the methods of the generated slice, reference and
// pointer types to the capability that emits them. A record field of the
// same name would clash with the method on those types.
var viewMethods = map[string]Derive{
	"Len": 0, "IsEmpty": 0, "Get": 0, "Index": 0, "First": 0, "Last": 0,
	"Slice": 0, "All": 0, "Swap": 0, "AsSlice": 0,
	"ToRecord": 0, "AsRef": 0, "Replace": 0,
	"IsNil": 0, "Add": 0, "Ref": 0, "RefMut": 0, "AsPtr": 0,
	"ToVec":  DeriveClone,
	"Equal":  DeriveEqual,
	"String": DeriveDebug,
	"fields": DeriveDebug,
}

func reserved(field string, derive Derive) bool {
	need, ok := viewMethods[field]
	return ok && derive.Has(need)
}

// hasEqualMethod reports whether t (or *t) has a method Equal(t) bool.
func hasEqualMethod(t types.Type) bool {
	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Equal")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}
	if !types.Identical(sig.Params().At(0).Type(), t) {
		return false
	}
	res, ok := sig.Results().At(0).Type().(*types.Basic)
	return ok && res.Kind() == types.Bool
}

// Names of the generated companion types.

func (r *Record) Vec() string        { return r.Name + "Vec" }
func (r *Record) Slice() string      { return r.Name + "Slice" }
func (r *Record) SliceMut() string   { return r.Name + "SliceMut" }
func (r *Record) Ref() string        { return r.Name + "Ref" }
func (r *Record) RefMut() string     { return r.Name + "RefMut" }
func (r *Record) Ptr() string        { return r.Name + "Ptr" }
func (r *Record) PtrMut() string     { return r.Name + "PtrMut" }
func (r *Record) Iter() string       { return r.Name + "Iter" }
func (r *Record) IterMut() string    { return r.Name + "IterMut" }
func (r *Record) Columns() string    { return lowerFirst(r.Name) + "Columns" }
func (r *Record) HasFields() bool    { return len(r.Fields) > 0 }
func (r *Record) Clone() bool        { return r.Derive.Has(DeriveClone) }
func (r *Record) Equal() bool        { return r.Derive.Has(DeriveEqual) }
func (r *Record) Debug() bool        { return r.Derive.Has(DeriveDebug) }
func (r *Record) FirstField() string { return r.Fields[0].Name }

// Each expands pattern once per field, substituting $name and $type, and
// joins the results with sep.
func (r *Record) Each(pattern, sep string) string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = strings.NewReplacer("$name", f.Name, "$type", f.Type).Replace(pattern)
	}
	return strings.Join(parts, sep)
}

// Lines expands pattern once per field as statements, each on a line of
// its own after a leading newline. It is empty for a record without fields
// so that a trimmed action leaves no blank line behind.
func (r *Record) Lines(pattern string) string {
	if !r.HasFields() {
		return ""
	}
	return "\n" + r.Each(pattern, "\n")
}

// View expands pattern into the field list of a slice view literal. A
// record without fields has no slice to measure, so its views carry the
// length n instead.
func (r *Record) View(pattern, n string) string {
	if !r.HasFields() {
		return "n: " + n
	}
	return r.Each(pattern, ", ")
}

func lowerFirst(s string) string {
	c, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(c)) + s[n:]
}
