package jsonutils

import (
	"reflect"
	"strings"
)

// Classifier assigns values to exactly one Kind. The only state it holds is
// an immutable FunctionMatcher, so one Classifier can be shared freely.
type Classifier struct {
	matcher FunctionMatcher
}

// NewClassifier creates a classifier using m for function-literal text.
// A nil matcher selects the built-in grammar.
func NewClassifier(m FunctionMatcher) *Classifier {
	if m == nil {
		m = DefaultFunctionMatcher()
	}
	return &Classifier{matcher: m}
}

// Classify returns the Kind of v. The rules are tried in this order and the
// first match wins:
//
//  1. null: nil, the Null sentinel, or a NullReporter reporting null
//  2. array: slices, arrays and Collection values
//  3. function: Function markers and function-literal text
//  4. boolean
//  5. number: built-in integer and float types, by exact type
//  6. string: string and Char
//  7. object: everything else
func (c *Classifier) Classify(v any) Kind {
	switch {
	case IsNull(v):
		return KindNull
	case IsArray(v):
		return KindArray
	case c.IsFunction(v):
		return KindFunction
	case IsBoolean(v):
		return KindBoolean
	case IsNumber(v):
		return KindNumber
	case IsString(v):
		return KindString
	default:
		return KindObject
	}
}

// IsFunction reports whether v is a Function marker or text matching the
// function-literal grammar.
func (c *Classifier) IsFunction(v any) bool {
	switch f := v.(type) {
	case string:
		return c.matcher.MatchFunction(f)
	case Function:
		return true
	case *Function:
		return f != nil
	}
	return false
}

// IsFunctionHeader reports whether v is text of the form "function(...)"
func (c *Classifier) IsFunctionHeader(v any) bool {
	s, ok := v.(string)
	return ok && c.matcher.MatchHeader(s)
}

// FunctionParams returns the parameter list text of a function header, or
// "" when s is not a header.
func (c *Classifier) FunctionParams(s string) string {
	params, _ := c.matcher.Params(s)
	return params
}

// TypeClassOf returns the type class of the Kind of v
func (c *Classifier) TypeClassOf(v any) TypeClass {
	return c.Classify(v).TypeClass()
}

// PropertyKinds maps every key of rec to the type class of its value
func (c *Classifier) PropertyKinds(rec Record) (map[string]TypeClass, error) {
	if rec == nil {
		return nil, newOperationError("property_kinds", "nil record", ErrUnsupportedType)
	}

	keys := rec.Keys()
	props := make(map[string]TypeClass, len(keys))
	for _, key := range keys {
		class := c.TypeClassOf(rec.Get(key))
		if class == TypeClassInvalid {
			return nil, newOperationError("property_kinds", "unsupported value at key "+Quote(key), ErrUnsupportedType)
		}
		props[key] = class
	}
	return props, nil
}

// IsNull reports whether v stands for JSON null
func IsNull(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case NullValue:
		return true
	case NullReporter:
		return n.IsNullObject()
	}
	return false
}

// IsArray reports whether v is a slice, an array or a Collection.
// The test looks only at the shape of the type.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Collection); ok {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// IsBoolean reports whether v is a bool
func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber reports whether the dynamic type of v is one of Go's built-in
// integer or float types, unsigned integers included. Named types and
// arbitrary-precision numbers do not match.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// IsString reports whether v is a string or a Char
func IsString(v any) bool {
	switch v.(type) {
	case string, Char:
		return true
	}
	return false
}

// IsObject reports whether v is none of number, string, boolean and array,
// or is null. The null case is an independent OR: IsObject(Null) is true
// even though Classify(Null) is KindNull.
func IsObject(v any) bool {
	return !IsNumber(v) && !IsString(v) && !IsBoolean(v) && !IsArray(v) || IsNull(v)
}

// MayBeJSON reports whether s looks like JSON text: "null" in any case, or
// text wrapped in brackets or braces.
func MayBeJSON(s string) bool {
	return strings.EqualFold(s, "null") ||
		strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") ||
		strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// InnerElemType returns the innermost element type of nested array and
// slice types; any other type is returned as is.
func InnerElemType(t reflect.Type) reflect.Type {
	for t != nil && (t.Kind() == reflect.Array || t.Kind() == reflect.Slice) {
		t = t.Elem()
	}
	return t
}
