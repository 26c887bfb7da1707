package jsonutils

import (
	"github.com/cybergodev/jsonutils/internal"
)

// FunctionMatcher recognizes JavaScript function literals in text. The
// classifier and the string escaper only ever see this interface, so the
// grammar can be replaced without touching either.
type FunctionMatcher interface {
	// MatchFunction reports whether s is a whole function literal,
	// e.g. "function(a,b){return a+b;}".
	MatchFunction(s string) bool
	// MatchHeader reports whether s is a function header, e.g. "function(a,b)".
	MatchHeader(s string) bool
	// Params returns the parameter list text of a function header.
	Params(s string) (string, bool)
}

// DefaultFunctionMatcher returns the shared matcher for the built-in grammar.
// It is compiled on first use and never modified afterwards.
func DefaultFunctionMatcher() FunctionMatcher {
	return internal.DefaultFunctionMatcher()
}

// NewFunctionMatcher compiles a matcher from custom patterns. Empty patterns
// keep the built-in grammar for that role.
func NewFunctionMatcher(functionPattern, headerPattern, paramsPattern string) (FunctionMatcher, error) {
	m, err := internal.CompileFunctionMatcher(functionPattern, headerPattern, paramsPattern)
	if err != nil {
		return nil, newOperationError("compile_function_matcher", err.Error(), ErrInvalidConfig)
	}
	return m, nil
}

// noFunctionMatcher matches nothing; function-literal text is treated as plain text
type noFunctionMatcher struct{}

func (noFunctionMatcher) MatchFunction(string) bool    { return false }
func (noFunctionMatcher) MatchHeader(string) bool      { return false }
func (noFunctionMatcher) Params(string) (string, bool) { return "", false }
