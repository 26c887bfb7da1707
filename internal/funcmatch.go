package internal

import (
	"regexp"
	"sync"
)

// Default function-literal grammar. Matching is anchored at both ends and
// '.' does not cross newlines.
const (
	FunctionPattern       = `^function[ ]?\(.*\)[ ]?\{.*\}$`
	FunctionHeaderPattern = `^function[ ]?\(.*\)$`
	FunctionParamsPattern = `^function[ ]?\((.*?)\)$`
)

// FunctionMatcher recognizes function literals, headers and parameter lists
// with compiled regular expressions. It is immutable once built and safe for
// concurrent use.
type FunctionMatcher struct {
	function *regexp.Regexp
	header   *regexp.Regexp
	params   *regexp.Regexp
}

// CompileFunctionMatcher compiles the three patterns. Empty patterns fall
// back to the default grammar. The params pattern must have a capture group.
func CompileFunctionMatcher(function, header, params string) (*FunctionMatcher, error) {
	if function == "" {
		function = FunctionPattern
	}
	if header == "" {
		header = FunctionHeaderPattern
	}
	if params == "" {
		params = FunctionParamsPattern
	}

	fn, err := regexp.Compile(function)
	if err != nil {
		return nil, err
	}
	hd, err := regexp.Compile(header)
	if err != nil {
		return nil, err
	}
	pr, err := regexp.Compile(params)
	if err != nil {
		return nil, err
	}
	if pr.NumSubexp() < 1 {
		return nil, errMissingParamsGroup
	}

	return &FunctionMatcher{function: fn, header: hd, params: pr}, nil
}

// defaultFunctionMatcher compiles the built-in grammar exactly once
var defaultFunctionMatcher = sync.OnceValue(func() *FunctionMatcher {
	m, err := CompileFunctionMatcher("", "", "")
	if err != nil {
		panic("internal: default function grammar does not compile: " + err.Error())
	}
	return m
})

// DefaultFunctionMatcher returns the process-wide matcher for the default grammar
func DefaultFunctionMatcher() *FunctionMatcher {
	return defaultFunctionMatcher()
}

// MatchFunction reports whether s is a complete function literal
func (m *FunctionMatcher) MatchFunction(s string) bool {
	return m.function.MatchString(s)
}

// MatchHeader reports whether s is a function header without a body
func (m *FunctionMatcher) MatchHeader(s string) bool {
	return m.header.MatchString(s)
}

// Params returns the first capture group of the params pattern
func (m *FunctionMatcher) Params(s string) (string, bool) {
	groups := m.params.FindStringSubmatch(s)
	if groups == nil {
		return "", false
	}
	return groups[1], true
}

type matcherError string

func (e matcherError) Error() string { return string(e) }

const errMissingParamsGroup = matcherError("params pattern must contain a capture group")
