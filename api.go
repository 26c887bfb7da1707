package jsonutils

import (
	"sync"
)

// defaultRenderer is built once from DefaultConfig and shared by the
// package-level functions.
var defaultRenderer = sync.OnceValue(func() *Renderer {
	r, err := NewRenderer(DefaultConfig())
	if err != nil {
		panic("jsonutils: default configuration is invalid: " + err.Error())
	}
	return r
})

// Default returns the renderer used by the package-level functions
func Default() *Renderer {
	return defaultRenderer()
}

// Classify returns the Kind of v using the built-in function grammar
func Classify(v any) Kind {
	return defaultRenderer().classifier.Classify(v)
}

// IsFunction reports whether v is a Function marker or function-literal text
func IsFunction(v any) bool {
	return defaultRenderer().classifier.IsFunction(v)
}

// IsFunctionHeader reports whether v is text of the form "function(...)"
func IsFunctionHeader(v any) bool {
	return defaultRenderer().classifier.IsFunctionHeader(v)
}

// FunctionParams returns the parameter list text of a function header
func FunctionParams(s string) string {
	return defaultRenderer().classifier.FunctionParams(s)
}

// TypeClassOf returns the type class of the Kind of v
func TypeClassOf(v any) TypeClass {
	return defaultRenderer().classifier.TypeClassOf(v)
}

// PropertyKinds maps every key of rec to the type class of its value
func PropertyKinds(rec Record) (map[string]TypeClass, error) {
	return defaultRenderer().classifier.PropertyKinds(rec)
}

// Render produces compact JSON text for v
func Render(v any) (string, error) {
	return defaultRenderer().Render(v)
}

// RenderIndent produces pretty JSON text for v
func RenderIndent(v any, indentFactor, indent int) (string, error) {
	return defaultRenderer().RenderIndent(v, indentFactor, indent)
}
