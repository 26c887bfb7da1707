package jsonutils

import (
	"slices"

	"github.com/cybergodev/jsonutils/internal"
)

// Object is an insertion-ordered JSON object. An Object may also stand for
// JSON null, see NullObject.
type Object struct {
	keys   []string
	values map[string]any
	null   bool
}

// NewObject creates an empty object
func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

// NullObject creates an object that reports itself as JSON null
func NullObject() *Object {
	return &Object{values: make(map[string]any), null: true}
}

// ObjectFromMap builds an object from a map with keys in sorted order.
// Nested maps and []any values are converted as well.
func ObjectFromMap(m map[string]any) *Object {
	o := NewObject()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		o.Put(k, fromGo(m[k]))
	}
	return o
}

func fromGo(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return ObjectFromMap(t)
	case []any:
		a := NewArray()
		for _, e := range t {
			a.Add(fromGo(e))
		}
		return a
	case nil:
		return Null
	}
	return v
}

// IsNullObject reports whether the object stands for JSON null.
// A nil *Object is null.
func (o *Object) IsNullObject() bool {
	return o == nil || o.null
}

// Put sets key to value, keeping the key's original position when it
// already exists. A nil value is stored as Null. Putting into a null object
// turns it into a regular object.
func (o *Object) Put(key string, value any) *Object {
	if value == nil {
		value = Null
	}
	o.null = false
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// Get returns the value stored under key, or nil
func (o *Object) Get(key string) any {
	if o == nil {
		return nil
	}
	return o.values[key]
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}

// Remove deletes key and returns its previous value
func (o *Object) Remove(key string) any {
	if o == nil {
		return nil
	}
	v, ok := o.values[key]
	if !ok {
		return nil
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return v
}

// Keys returns the keys in insertion order
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Len returns the number of keys
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// RenderJSON renders the object compactly, e.g. {"a":1,"b":[true]}
func (o *Object) RenderJSON() (string, error) {
	return o.renderWith(defaultRenderer(), false, 0, 0)
}

// RenderJSONIndent renders the object with indentFactor spaces per level,
// starting at indent.
func (o *Object) RenderJSONIndent(indentFactor, indent int) (string, error) {
	return o.renderWith(defaultRenderer(), true, indentFactor, indent)
}

// String returns the compact text, or "" if a value cannot be rendered
func (o *Object) String() string {
	s, err := o.RenderJSON()
	if err != nil {
		return ""
	}
	return s
}

func (o *Object) renderWith(r *Renderer, pretty bool, indentFactor, indent int) (string, error) {
	if o.IsNullObject() {
		return "null", nil
	}
	n := len(o.keys)
	if n == 0 {
		return "{}", nil
	}

	buf := internal.GetEncoderBuffer()
	defer internal.PutEncoderBuffer(buf)

	buf.WriteByte('{')
	switch {
	case !pretty:
		for i, k := range o.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			s, err := r.renderCompact(o.values[k])
			if err != nil {
				return "", err
			}
			buf.WriteString(r.Quote(k))
			buf.WriteByte(':')
			buf.WriteString(s)
		}
	case n == 1:
		k := o.keys[0]
		s, err := r.renderPretty(o.values[k], indentFactor, indent)
		if err != nil {
			return "", err
		}
		buf.WriteString(r.Quote(k))
		buf.WriteString(": ")
		buf.WriteString(s)
	default:
		newIndent := indent + indentFactor
		for i, k := range o.keys {
			if i > 0 {
				buf.WriteString(",\n")
			} else {
				buf.WriteByte('\n')
			}
			s, err := r.renderPretty(o.values[k], indentFactor, newIndent)
			if err != nil {
				return "", err
			}
			internal.WriteIndent(buf, newIndent)
			buf.WriteString(r.Quote(k))
			buf.WriteString(": ")
			buf.WriteString(s)
		}
		buf.WriteByte('\n')
		internal.WriteIndent(buf, indent)
	}
	buf.WriteByte('}')

	return buf.String(), nil
}

// Array is an ordered JSON array
type Array struct {
	elements []any
}

// NewArray creates an array holding values. nil values are stored as Null.
func NewArray(values ...any) *Array {
	a := &Array{elements: make([]any, 0, len(values))}
	for _, v := range values {
		a.Add(v)
	}
	return a
}

// Add appends a value. A nil value is stored as Null.
func (a *Array) Add(v any) *Array {
	if v == nil {
		v = Null
	}
	a.elements = append(a.elements, v)
	return a
}

// Get returns the element at index i, or nil when out of range
func (a *Array) Get(i int) any {
	if a == nil || i < 0 || i >= len(a.elements) {
		return nil
	}
	return a.elements[i]
}

// Len returns the number of elements
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elements)
}

// Slice returns a copy of the elements
func (a *Array) Slice() []any {
	if a == nil {
		return nil
	}
	return slices.Clone(a.elements)
}

// RenderJSON renders the array compactly, e.g. [1,"a",null]
func (a *Array) RenderJSON() (string, error) {
	return a.renderWith(defaultRenderer(), false, 0, 0)
}

// RenderJSONIndent renders the array with indentFactor spaces per level,
// starting at indent.
func (a *Array) RenderJSONIndent(indentFactor, indent int) (string, error) {
	return a.renderWith(defaultRenderer(), true, indentFactor, indent)
}

// String returns the compact text, or "" if an element cannot be rendered
func (a *Array) String() string {
	s, err := a.RenderJSON()
	if err != nil {
		return ""
	}
	return s
}

func (a *Array) renderWith(r *Renderer, pretty bool, indentFactor, indent int) (string, error) {
	n := a.Len()
	if n == 0 {
		return "[]", nil
	}

	buf := internal.GetEncoderBuffer()
	defer internal.PutEncoderBuffer(buf)

	buf.WriteByte('[')
	switch {
	case !pretty:
		for i, e := range a.elements {
			if i > 0 {
				buf.WriteByte(',')
			}
			s, err := r.renderCompact(e)
			if err != nil {
				return "", err
			}
			buf.WriteString(s)
		}
	case n == 1:
		s, err := r.renderPretty(a.elements[0], indentFactor, indent)
		if err != nil {
			return "", err
		}
		buf.WriteString(s)
	default:
		newIndent := indent + indentFactor
		buf.WriteByte('\n')
		for i, e := range a.elements {
			if i > 0 {
				buf.WriteString(",\n")
			}
			s, err := r.renderPretty(e, indentFactor, newIndent)
			if err != nil {
				return "", err
			}
			internal.WriteIndent(buf, newIndent)
			buf.WriteString(s)
		}
		buf.WriteByte('\n')
		internal.WriteIndent(buf, indent)
	}
	buf.WriteByte(']')

	return buf.String(), nil
}
