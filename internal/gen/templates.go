package gen

const fileTemplate = `// Code generated by soagen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{if .Name}}{{.Name}} {{end}}"{{.Path}}"
{{- end}}
)
{{range .Records}}
{{template "vec" .}}
{{template "slice" .}}
{{template "ref" .}}
{{template "ptr" .}}
{{template "iter" .}}
{{- if .Clone}}
{{template "clone" .}}
{{- end}}
{{- if .Equal}}
{{template "equal" .}}
{{- end}}
{{- if .Debug}}
{{template "debug" .}}
{{- end}}
{{- end}}
`

const vecTemplate = `{{define "vec"}}
// {{.Vec}} stores {{.Name}} values as one buffer per field sharing a single
// length. The zero value is an empty container ready for use.
type {{.Vec}} struct {
	cols   {{.Columns}}
	n      int
	borrow soa.Borrow
}

type {{.Columns}} struct {
	{{- .Lines "$name soa.Buffer[$type]"}}
}

// New{{.Vec}} returns an empty container that has not allocated yet.
func New{{.Vec}}() *{{.Vec}} {
	return &{{.Vec}}{}
}

// New{{.Vec}}WithCapacity returns an empty container with room for at
// least capacity elements in every field.
func New{{.Vec}}WithCapacity(capacity int) *{{.Vec}} {
	soa.CheckAdditional(0, capacity)
	v := &{{.Vec}}{}
	{{- .Lines "v.cols.$name.ReserveExact(0, capacity)"}}
	return v
}

// Len returns the number of elements.
func (v *{{.Vec}}) Len() int { return v.n }

// IsEmpty reports whether the container holds no elements.
func (v *{{.Vec}}) IsEmpty() bool { return v.n == 0 }

// Cap returns the number of elements the container can hold without
// reallocating.
func (v *{{.Vec}}) Cap() int {
	return soa.MinCap({{.Each "v.cols.$name.Cap()" ", "}})
}

// Reserve makes room for at least additional more elements.
func (v *{{.Vec}}) Reserve(additional int) {
	v.borrow.CheckMutable("Reserve")
	v.reserve(additional)
}

func (v *{{.Vec}}) reserve(additional int) {
	soa.CheckAdditional(v.n, additional)
	{{- .Lines "v.cols.$name.Reserve(v.n, additional)"}}
}

// ReserveExact makes room for exactly additional more elements.
func (v *{{.Vec}}) ReserveExact(additional int) {
	v.borrow.CheckMutable("ReserveExact")
	soa.CheckAdditional(v.n, additional)
	{{- .Lines "v.cols.$name.ReserveExact(v.n, additional)"}}
}

// ShrinkToFit releases capacity beyond Len in every field.
func (v *{{.Vec}}) ShrinkToFit() {
	v.borrow.CheckMutable("ShrinkToFit")
	{{- .Lines "v.cols.$name.ShrinkTo(v.n)"}}
}

// Truncate drops the elements at index n and above, last first. It does
// nothing when n >= Len.
func (v *{{.Vec}}) Truncate(n int) {
	v.borrow.CheckMutable("Truncate")
	soa.CheckLength("Truncate", n)
	for n < v.n {
		v.n--
		{{- .Lines "v.cols.$name.Drop(v.n)"}}
	}
}

// Clear drops every element, keeping the capacity.
func (v *{{.Vec}}) Clear() { v.Truncate(0) }

// Release drops every element and frees every buffer. The container is
// empty and reusable afterwards.
func (v *{{.Vec}}) Release() {
	v.borrow.CheckMutable("Release")
	{{- if .HasFields}}
	n := v.n
	v.n = 0
	{{- .Lines "v.cols.$name.Release(n)"}}
	{{- else}}
	v.n = 0
	{{- end}}
}

// Push appends r.
func (v *{{.Vec}}) Push(r {{.Name}}) {
	v.borrow.CheckMutable("Push")
	v.reserve(1)
	{{- .Lines "v.cols.$name.Write(v.n, r.$name)"}}
	v.n++
}

// Extend appends every record in rs.
func (v *{{.Vec}}) Extend(rs ...{{.Name}}) {
	v.borrow.CheckMutable("Extend")
	v.reserve(len(rs))
	{{- if .HasFields}}
	for _, r := range rs {
		{{- .Lines "v.cols.$name.Write(v.n, r.$name)"}}
		v.n++
	}
	{{- else}}
	v.n += len(rs)
	{{- end}}
}

// Pop removes and returns the last element, or reports false when the
// container is empty.
func (v *{{.Vec}}) Pop() ({{.Name}}, bool) {
	v.borrow.CheckMutable("Pop")
	var r {{.Name}}
	if v.n == 0 {
		return r, false
	}
	v.n--
	{{- .Lines "r.$name = v.cols.$name.Take(v.n)"}}
	return r, true
}

// Insert places r at index, shifting the elements after it to the right.
// It panics if index > Len.
func (v *{{.Vec}}) Insert(index int, r {{.Name}}) {
	v.borrow.CheckMutable("Insert")
	soa.CheckPosition("Insert", index, v.n)
	v.reserve(1)
	{{- .Lines "v.cols.$name.ShiftRight(index, v.n)\nv.cols.$name.Write(index, r.$name)"}}
	v.n++
}

// Remove removes and returns the element at index, shifting the elements
// after it to the left. It panics if index >= Len.
func (v *{{.Vec}}) Remove(index int) {{.Name}} {
	v.borrow.CheckMutable("Remove")
	soa.CheckIndex("Remove", index, v.n)
	var r {{.Name}}
	{{- .Lines "r.$name = v.cols.$name.Take(index)\nv.cols.$name.ShiftLeft(index, v.n)"}}
	v.n--
	return r
}

// SwapRemove removes and returns the element at index, replacing it with
// the last element. It does not preserve order and panics if index >= Len.
func (v *{{.Vec}}) SwapRemove(index int) {{.Name}} {
	v.borrow.CheckMutable("SwapRemove")
	soa.CheckIndex("SwapRemove", index, v.n)
	{{- .Lines "v.cols.$name.Swap(index, v.n-1)"}}
	r, _ := v.Pop()
	return r
}

// Replace stores r at index and returns the element it replaces.
// It panics if index >= Len.
func (v *{{.Vec}}) Replace(index int, r {{.Name}}) {{.Name}} {
	v.borrow.CheckMutable("Replace")
	soa.CheckIndex("Replace", index, v.n)
	var old {{.Name}}
	{{- .Lines "old.$name = v.cols.$name.Take(index)\nv.cols.$name.Write(index, r.$name)"}}
	return old
}

// Swap exchanges the elements at i and j.
func (v *{{.Vec}}) Swap(i, j int) {
	v.borrow.CheckMutable("Swap")
	soa.CheckIndex("Swap", i, v.n)
	soa.CheckIndex("Swap", j, v.n)
	{{- .Lines "v.cols.$name.Swap(i, j)"}}
}

// Retain keeps only the elements for which keep returns true, preserving
// their order. keep sees every element exactly once, in index order.
func (v *{{.Vec}}) Retain(keep func({{.Ref}}) bool) {
	v.compact("Retain", func(i int) bool {
		return keep({{.Ref}}{ {{- .Each "$name: v.cols.$name.At(i)" ", " -}} })
	})
}

// RetainMut is Retain with a predicate that may modify the elements it
// keeps.
func (v *{{.Vec}}) RetainMut(keep func({{.RefMut}}) bool) {
	v.compact("RetainMut", func(i int) bool {
		return keep({{.RefMut}}{ {{- .Each "$name: v.cols.$name.At(i)" ", " -}} })
	})
}

func (v *{{.Vec}}) compact(op string, keep func(int) bool) {
	v.borrow.CheckMutable(op)
	if del := v.sweep(op, keep); del > 0 {
		v.Truncate(v.n - del)
	}
}

// sweep moves the kept elements to the front, in order, and returns how
// many were rejected; those end up in the tail.
func (v *{{.Vec}}) sweep(op string, keep func(int) bool) (del int) {
	defer v.borrow.Exclusive(op)()
	for i := 0; i < v.n; i++ {
		if !keep(i) {
			del++
		}{{if .HasFields}} else if del > 0 {
			{{- .Lines "v.cols.$name.Swap(i-del, i)"}}
		}{{end}}
	}
	return del
}

// Append moves every element of other onto the end of v, leaving other
// empty.
func (v *{{.Vec}}) Append(other *{{.Vec}}) {
	if other == v {
		panic(soa.ErrAliased)
	}
	v.borrow.CheckMutable("Append")
	other.borrow.CheckMutable("Append")
	m := other.n
	v.reserve(m)
	{{- .Lines "other.cols.$name.MoveTo(&v.cols.$name, v.n, 0, m)"}}
	other.n = 0
	v.n += m
}

// SplitOff moves the elements from at onwards into a new container and
// returns it. It panics if at > Len.
func (v *{{.Vec}}) SplitOff(at int) *{{.Vec}} {
	v.borrow.CheckMutable("SplitOff")
	soa.CheckPosition("SplitOff", at, v.n)
	m := v.n - at
	other := New{{.Vec}}WithCapacity(m)
	{{- .Lines "v.cols.$name.MoveTo(&other.cols.$name, 0, at, v.n)"}}
	other.n = m
	v.n = at
	return other
}

// Get returns a reference to the element at index, or false if index is
// out of range.
func (v *{{.Vec}}) Get(index int) ({{.Ref}}, bool) {
	if index < 0 || index >= v.n {
		return {{.Ref}}{}, false
	}
	return {{.Ref}}{ {{- .Each "$name: v.cols.$name.At(index)" ", " -}} }, true
}

// GetMut returns a mutable reference to the element at index, or false if
// index is out of range. The reference is untracked and is invalidated by
// the next call that modifies v.
func (v *{{.Vec}}) GetMut(index int) ({{.RefMut}}, bool) {
	if index < 0 || index >= v.n {
		return {{.RefMut}}{}, false
	}
	return {{.RefMut}}{ {{- .Each "$name: v.cols.$name.At(index)" ", " -}} }, true
}

// Index returns a reference to the element at index. It panics if index is
// out of range.
func (v *{{.Vec}}) Index(index int) {{.Ref}} {
	soa.CheckIndex("Index", index, v.n)
	return {{.Ref}}{ {{- .Each "$name: v.cols.$name.At(index)" ", " -}} }
}

// AsSlice returns a view of all elements.
func (v *{{.Vec}}) AsSlice() {{.Slice}} {
	return {{.Slice}}{ {{- .View "$name: v.cols.$name.Range(0, v.n)" "v.n" -}} }
}

// AsSliceMut returns a mutable view of all elements. The view is not
// tracked as a borrow: it must not outlive the next call that modifies v,
// and writes through it must not overlap another live view.
func (v *{{.Vec}}) AsSliceMut() {{.SliceMut}} {
	return {{.SliceMut}}{ {{- .View "$name: v.cols.$name.Range(0, v.n)" "v.n" -}} }
}

// Slice returns a view of the elements in [start, end).
func (v *{{.Vec}}) Slice(start, end int) {{.Slice}} {
	soa.CheckRange(start, end, v.n)
	return {{.Slice}}{ {{- .View "$name: v.cols.$name.Range(start, end)" "end - start" -}} }
}

// SliceMut returns a mutable view of the elements in [start, end). Like
// AsSliceMut, the view is untracked.
func (v *{{.Vec}}) SliceMut(start, end int) {{.SliceMut}} {
	soa.CheckRange(start, end, v.n)
	return {{.SliceMut}}{ {{- .View "$name: v.cols.$name.Range(start, end)" "end - start" -}} }
}

// AsPtr returns pointers to the first slot of every buffer. They are
// invalidated by any operation that may reallocate.
func (v *{{.Vec}}) AsPtr() {{.Ptr}} {
	return {{.Ptr}}{ {{- .Each "$name: v.cols.$name.Ptr()" ", " -}} }
}

// AsPtrMut is AsPtr for writing through.
func (v *{{.Vec}}) AsPtrMut() {{.PtrMut}} {
	return {{.PtrMut}}{ {{- .Each "$name: v.cols.$name.Ptr()" ", " -}} }
}

// All iterates over index and reference pairs. v must not be modified
// during the loop.
func (v *{{.Vec}}) All() iter.Seq2[int, {{.Ref}}] {
	return func(yield func(int, {{.Ref}}) bool) {
		defer v.borrow.Shared("All")()
		for i := 0; i < v.n; i++ {
			if !yield(i, {{.Ref}}{ {{- .Each "$name: v.cols.$name.At(i)" ", " -}} }) {
				return
			}
		}
	}
}

// AllMut iterates over index and mutable reference pairs. v must not be
// modified or borrowed again during the loop.
func (v *{{.Vec}}) AllMut() iter.Seq2[int, {{.RefMut}}] {
	return func(yield func(int, {{.RefMut}}) bool) {
		defer v.borrow.Exclusive("AllMut")()
		for i := 0; i < v.n; i++ {
			if !yield(i, {{.RefMut}}{ {{- .Each "$name: v.cols.$name.At(i)" ", " -}} }) {
				return
			}
		}
	}
}

// Metrics returns a snapshot of the container's memory usage.
func (v *{{.Vec}}) Metrics() soa.Metrics {
	return soa.Measure(v.n{{if .HasFields}}, {{.Each "&v.cols.$name" ", "}}{{end}})
}
{{end}}`

const sliceTemplate = `{{define "slice"}}
// {{.Slice}} is a view of consecutive {{.Name}} elements, one slice per
// field, all of the same length.
type {{.Slice}} struct {
	{{- if .HasFields}}{{.Lines "$name []$type"}}{{else}}
	n int
	{{- end}}
}

// Len returns the number of elements in the view.
func (s {{.Slice}}) Len() int {
	{{- if .HasFields}}
	return len(s.{{.FirstField}})
	{{- else}}
	return s.n
	{{- end}}
}

// IsEmpty reports whether the view holds no elements.
func (s {{.Slice}}) IsEmpty() bool { return s.Len() == 0 }

// Get returns a reference to the element at index, or false if index is
// out of range.
func (s {{.Slice}}) Get(index int) ({{.Ref}}, bool) {
	if index < 0 || index >= s.Len() {
		return {{.Ref}}{}, false
	}
	return {{.Ref}}{ {{- .Each "$name: &s.$name[index]" ", " -}} }, true
}

// Index returns a reference to the element at index. It panics if index is
// out of range.
func (s {{.Slice}}) Index(index int) {{.Ref}} {
	soa.CheckIndex("Index", index, s.Len())
	return {{.Ref}}{ {{- .Each "$name: &s.$name[index]" ", " -}} }
}

// First returns the first element, if any.
func (s {{.Slice}}) First() ({{.Ref}}, bool) { return s.Get(0) }

// Last returns the last element, if any.
func (s {{.Slice}}) Last() ({{.Ref}}, bool) { return s.Get(s.Len() - 1) }

// Slice returns the sub-view [start, end).
func (s {{.Slice}}) Slice(start, end int) {{.Slice}} {
	soa.CheckRange(start, end, s.Len())
	return {{.Slice}}{ {{- .View "$name: s.$name[start:end:end]" "end - start" -}} }
}

// All iterates over index and reference pairs.
func (s {{.Slice}}) All() iter.Seq2[int, {{.Ref}}] {
	return func(yield func(int, {{.Ref}}) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, {{.Ref}}{ {{- .Each "$name: &s.$name[i]" ", " -}} }) {
				return
			}
		}
	}
}

// {{.SliceMut}} is a mutable view of consecutive {{.Name}} elements.
type {{.SliceMut}} struct {
	{{- if .HasFields}}{{.Lines "$name []$type"}}{{else}}
	n int
	{{- end}}
}

// Len returns the number of elements in the view.
func (s {{.SliceMut}}) Len() int { return s.AsSlice().Len() }

// IsEmpty reports whether the view holds no elements.
func (s {{.SliceMut}}) IsEmpty() bool { return s.Len() == 0 }

// AsSlice returns a read-only view of the same elements.
func (s {{.SliceMut}}) AsSlice() {{.Slice}} { return {{.Slice}}(s) }

// Get returns a mutable reference to the element at index, or false if
// index is out of range.
func (s {{.SliceMut}}) Get(index int) ({{.RefMut}}, bool) {
	if index < 0 || index >= s.Len() {
		return {{.RefMut}}{}, false
	}
	return {{.RefMut}}{ {{- .Each "$name: &s.$name[index]" ", " -}} }, true
}

// Index returns a mutable reference to the element at index. It panics if
// index is out of range.
func (s {{.SliceMut}}) Index(index int) {{.RefMut}} {
	soa.CheckIndex("Index", index, s.Len())
	return {{.RefMut}}{ {{- .Each "$name: &s.$name[index]" ", " -}} }
}

// Slice returns the mutable sub-view [start, end).
func (s {{.SliceMut}}) Slice(start, end int) {{.SliceMut}} {
	soa.CheckRange(start, end, s.Len())
	return {{.SliceMut}}{ {{- .View "$name: s.$name[start:end:end]" "end - start" -}} }
}

// Swap exchanges the elements at i and j.
func (s {{.SliceMut}}) Swap(i, j int) {
	soa.CheckIndex("Swap", i, s.Len())
	soa.CheckIndex("Swap", j, s.Len())
	{{- .Lines "s.$name[i], s.$name[j] = s.$name[j], s.$name[i]"}}
}

// All iterates over index and mutable reference pairs.
func (s {{.SliceMut}}) All() iter.Seq2[int, {{.RefMut}}] {
	return func(yield func(int, {{.RefMut}}) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, {{.RefMut}}{ {{- .Each "$name: &s.$name[i]" ", " -}} }) {
				return
			}
		}
	}
}
{{end}}`

const refTemplate = `{{define "ref"}}
// {{.Ref}} points at the fields of one {{.Name}} stored in a container.
type {{.Ref}} struct {
	{{- .Lines "$name *$type"}}
}

// ToRecord copies the referenced element out.
func (r {{.Ref}}) ToRecord() {{.Name}} {
	return {{.Name}}{ {{- .Each "$name: *r.$name" ", " -}} }
}

// {{.RefMut}} points at the fields of one {{.Name}} stored in a container,
// for writing through.
type {{.RefMut}} struct {
	{{- .Lines "$name *$type"}}
}

// ToRecord copies the referenced element out.
func (r {{.RefMut}}) ToRecord() {{.Name}} { return r.AsRef().ToRecord() }

// AsRef returns a read-only reference to the same element.
func (r {{.RefMut}}) AsRef() {{.Ref}} { return {{.Ref}}(r) }

// Replace stores rec in the referenced element and returns the previous
// value.
func (r {{.RefMut}}) Replace(rec {{.Name}}) {{.Name}} {
	old := r.ToRecord()
	{{- .Lines "*r.$name = rec.$name"}}
	return old
}
{{end}}`

const ptrTemplate = `{{define "ptr"}}
// {{.Ptr}} holds one pointer per field of a {{.Name}} container. It is only
// valid until the container reallocates or is released.
type {{.Ptr}} struct {
	{{- .Lines "$name *$type"}}
}

// IsNil reports whether the container had nothing allocated.
func (p {{.Ptr}}) IsNil() bool {
	return {{if .HasFields}}{{.Each "p.$name == nil" " || "}}{{else}}true{{end}}
}

// Add returns p advanced by n elements. n must stay within the capacity of
// the container p came from.
func (p {{.Ptr}}) Add(n int) {{.Ptr}} {
	{{- if .HasFields}}
	return {{.Ptr}}{ {{- .Each "$name: soa.Add(p.$name, n)" ", " -}} }
	{{- else}}
	return p
	{{- end}}
}

// Ref reinterprets p as a reference to the element it points at.
func (p {{.Ptr}}) Ref() {{.Ref}} {
	return {{.Ref}}{ {{- .Each "$name: p.$name" ", " -}} }
}

// {{.PtrMut}} is {{.Ptr}} for writing through.
type {{.PtrMut}} struct {
	{{- .Lines "$name *$type"}}
}

// IsNil reports whether the container had nothing allocated.
func (p {{.PtrMut}}) IsNil() bool { return p.AsPtr().IsNil() }

// AsPtr returns the read-only form of p.
func (p {{.PtrMut}}) AsPtr() {{.Ptr}} { return {{.Ptr}}(p) }

// Add returns p advanced by n elements.
func (p {{.PtrMut}}) Add(n int) {{.PtrMut}} { return {{.PtrMut}}(p.AsPtr().Add(n)) }

// RefMut reinterprets p as a mutable reference to the element it points at.
func (p {{.PtrMut}}) RefMut() {{.RefMut}} {
	return {{.RefMut}}{ {{- .Each "$name: p.$name" ", " -}} }
}
{{end}}`

const iterTemplate = `{{define "iter"}}
// {{.Iter}} walks a {{.Vec}} front to back. Once Next has reported false it
// keeps doing so.
type {{.Iter}} struct {
	v    *{{.Vec}}
	i    int
	done bool
}

// Iter returns an iterator positioned at the first element.
func (v *{{.Vec}}) Iter() *{{.Iter}} { return &{{.Iter}}{v: v} }

// Next returns the next element, or false when the iterator is exhausted.
func (it *{{.Iter}}) Next() ({{.Ref}}, bool) {
	if it.done {
		return {{.Ref}}{}, false
	}
	r, ok := it.v.Get(it.i)
	if !ok {
		it.done = true
		return r, false
	}
	it.i++
	return r, true
}

// Len returns the number of elements Next has yet to return.
func (it *{{.Iter}}) Len() int {
	if it.done || it.i >= it.v.n {
		return 0
	}
	return it.v.n - it.i
}

// {{.IterMut}} walks a {{.Vec}} front to back, yielding mutable references.
type {{.IterMut}} struct {
	v    *{{.Vec}}
	i    int
	done bool
}

// IterMut returns a mutable iterator positioned at the first element.
// Unlike AllMut it does not borrow v: only one mutable iterator may be in
// use at a time, and v must not be modified until it is done.
func (v *{{.Vec}}) IterMut() *{{.IterMut}} { return &{{.IterMut}}{v: v} }

// Next returns the next element, or false when the iterator is exhausted.
func (it *{{.IterMut}}) Next() ({{.RefMut}}, bool) {
	if it.done {
		return {{.RefMut}}{}, false
	}
	r, ok := it.v.GetMut(it.i)
	if !ok {
		it.done = true
		return r, false
	}
	it.i++
	return r, true
}

// Len returns the number of elements Next has yet to return.
func (it *{{.IterMut}}) Len() int {
	if it.done || it.i >= it.v.n {
		return 0
	}
	return it.v.n - it.i
}
{{end}}`

const cloneTemplate = `{{define "clone"}}
// Clone returns a deep copy of v, duplicating every value with
// soa.CloneValue.
func (v *{{.Vec}}) Clone() *{{.Vec}} {
	c := New{{.Vec}}WithCapacity(v.n)
	{{- .Lines "v.cols.$name.CloneTo(&c.cols.$name, v.n)"}}
	c.n = v.n
	return c
}

// ExtendWith appends n copies of r. The first n-1 are clones, the last is
// r itself.
func (v *{{.Vec}}) ExtendWith(n int, r {{.Name}}) {
	v.borrow.CheckMutable("ExtendWith")
	soa.CheckLength("ExtendWith", n)
	if n == 0 {
		return
	}
	v.reserve(n)
	{{- .Lines "v.cols.$name.Fill(v.n, n, r.$name)"}}
	v.n += n
}

// Resize grows v to n elements by appending copies of r, or truncates it.
func (v *{{.Vec}}) Resize(n int, r {{.Name}}) {
	soa.CheckLength("Resize", n)
	if n > v.n {
		v.ExtendWith(n-v.n, r)
		return
	}
	v.Truncate(n)
}

// ToVec copies the view into a new container.
func (s {{.Slice}}) ToVec() *{{.Vec}} {
	n := s.Len()
	v := New{{.Vec}}WithCapacity(n)
	for i := 0; i < n; i++ {
		{{- .Lines "v.cols.$name.Write(i, soa.CloneValue(s.$name[i]))"}}
	}
	v.n = n
	return v
}
{{end}}`

const equalTemplate = `{{define "equal"}}
// Equal reports whether v and other hold equal elements in the same order.
func (v *{{.Vec}}) Equal(other *{{.Vec}}) bool {
	return v.n == other.n && v.AsSlice().Equal(other.AsSlice())
}

// Equal reports whether s and other hold equal elements in the same order.
func (s {{.Slice}}) Equal(other {{.Slice}}) bool {
	{{- if .HasFields}}
	return {{range $i, $f := .Fields}}{{if $i}} &&
		{{end}}{{$f.EqualExpr "s" "other"}}{{end}}
	{{- else}}
	return s.n == other.n
	{{- end}}
}
{{end}}`

const debugTemplate = `{{define "debug"}}
// String formats v as {{.Vec}}{Field: [values...] ...}.
func (v *{{.Vec}}) String() string {
	return "{{.Vec}}" + v.AsSlice().fields()
}

// String formats s as {{.Slice}}{Field: [values...] ...}.
func (s {{.Slice}}) String() string {
	return "{{.Slice}}" + s.fields()
}

func (s {{.Slice}}) fields() string {
	{{- if .HasFields}}
	return fmt.Sprintf("{ {{- .Each "$name: %v" ", " -}} }", {{.Each "s.$name" ", "}})
	{{- else}}
	return "{}"
	{{- end}}
}
{{end}}`
