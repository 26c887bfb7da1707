package jsonutils

import "reflect"

// Kind is one of the seven mutually exclusive JSON value categories
type Kind int

const (
	KindNull Kind = iota
	KindArray
	KindFunction
	KindBoolean
	KindNumber
	KindString
	KindObject
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// TypeClass is the schema-level representation of a Kind
type TypeClass int

const (
	TypeClassInvalid TypeClass = iota
	TypeClassSequence
	TypeClassFunction
	TypeClassBool
	TypeClassNumber
	TypeClassText
	TypeClassObject
)

// String returns the string representation of the type class
func (c TypeClass) String() string {
	switch c {
	case TypeClassSequence:
		return "sequence"
	case TypeClassFunction:
		return "function"
	case TypeClassBool:
		return "bool"
	case TypeClassNumber:
		return "double"
	case TypeClassText:
		return "text"
	case TypeClassObject:
		return "object"
	default:
		return "invalid"
	}
}

var (
	sequenceType = reflect.TypeFor[[]any]()
	functionType = reflect.TypeFor[Function]()
	boolType     = reflect.TypeFor[bool]()
	numberType   = reflect.TypeFor[float64]()
	textType     = reflect.TypeFor[string]()
	objectType   = reflect.TypeFor[any]()
)

// ReflectType returns the Go type a value of this class decodes into.
// It returns nil for TypeClassInvalid.
func (c TypeClass) ReflectType() reflect.Type {
	switch c {
	case TypeClassSequence:
		return sequenceType
	case TypeClassFunction:
		return functionType
	case TypeClassBool:
		return boolType
	case TypeClassNumber:
		return numberType
	case TypeClassText:
		return textType
	case TypeClassObject:
		return objectType
	default:
		return nil
	}
}

// TypeClass maps the kind to its type class. Null and Object share the
// opaque object class.
func (k Kind) TypeClass() TypeClass {
	switch k {
	case KindArray:
		return TypeClassSequence
	case KindFunction:
		return TypeClassFunction
	case KindBoolean:
		return TypeClassBool
	case KindNumber:
		return TypeClassNumber
	case KindString:
		return TypeClassText
	case KindNull, KindObject:
		return TypeClassObject
	default:
		return TypeClassInvalid
	}
}
