package jsonutils

// NullValue is the type of the JSON null sentinel
type NullValue struct{}

// Null represents the JSON null literal, distinct from a nil interface
var Null = NullValue{}

// String returns the literal text of JSON null
func (NullValue) String() string { return "null" }

// Char is a single character value. Plain runes are int32 and classify as numbers.
type Char rune

// String returns the character as text
func (c Char) String() string { return string(rune(c)) }

// NullReporter is implemented by document objects that can stand for JSON null
type NullReporter interface {
	IsNullObject() bool
}

// Collection is implemented by aggregates that should classify as JSON arrays
// without being slices or arrays themselves.
type Collection interface {
	Elements() []any
}

// JSONStringer is implemented by values that produce their own JSON text.
// A result that is not a string is reported as ErrMalformedCustomRendering.
type JSONStringer interface {
	JSONString() (any, error)
}

// ContainerRenderer is implemented by document objects and arrays. The
// renderer delegates nested containers to it, passing indentation through.
type ContainerRenderer interface {
	RenderJSON() (string, error)
	RenderJSONIndent(indentFactor, indent int) (string, error)
}

// Record enumerates the keys and values of a document object
type Record interface {
	Keys() []string
	Get(key string) any
}
