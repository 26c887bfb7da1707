package jsonutils

import (
	"strings"
)

// Function marks a JavaScript function literal inside a document. It is
// rendered verbatim, which is a non-standard extension of JSON.
type Function struct {
	Params []string
	Body   string
}

// NewFunction creates a function marker
func NewFunction(body string, params ...string) Function {
	return Function{Params: params, Body: body}
}

// String returns the literal text, e.g. "function(a,b){ return a+b; }".
// An empty body renders as "{}".
func (f Function) String() string {
	var sb strings.Builder
	sb.WriteString("function(")
	sb.WriteString(strings.Join(f.Params, ","))
	sb.WriteString("){")
	if f.Body != "" {
		sb.WriteByte(' ')
		sb.WriteString(f.Body)
		sb.WriteByte(' ')
	}
	sb.WriteByte('}')
	return sb.String()
}

// ParseFunction parses function-literal text with the built-in grammar
func ParseFunction(s string) (Function, error) {
	return parseFunction(NewClassifier(nil), s)
}

func parseFunction(c *Classifier, s string) (Function, error) {
	if !c.IsFunction(s) {
		return Function{}, newOperationError("parse_function", Quote(s)+" is not a function literal", ErrInvalidFunction)
	}

	open := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if open < 0 || end < open {
		return Function{}, newOperationError("parse_function", "missing function body", ErrInvalidFunction)
	}

	header := strings.TrimRight(s[:open], " ")
	var params []string
	if list := c.FunctionParams(header); list != "" {
		for _, p := range strings.Split(list, ",") {
			if p = strings.TrimSpace(p); p != "" {
				params = append(params, p)
			}
		}
	}

	return Function{
		Params: params,
		Body:   strings.TrimSpace(s[open+1 : end]),
	}, nil
}
