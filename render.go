package jsonutils

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// Renderer turns values into JSON text fragments. It classifies a value,
// formats scalars itself and hands objects and arrays back to their
// ContainerRenderer. A Renderer is immutable after construction and safe for
// concurrent use.
//
// Warning: rendering assumes the value graph is acyclic.
type Renderer struct {
	classifier *Classifier
	config     *Config
	logger     *slog.Logger
}

// documentContainer is implemented by the containers of this package so the
// renderer's configuration reaches nested values.
type documentContainer interface {
	renderWith(r *Renderer, pretty bool, indentFactor, indent int) (string, error)
}

// NewRenderer creates a renderer. A nil config uses DefaultConfig.
func NewRenderer(config *Config) (*Renderer, error) {
	if config == nil {
		config = DefaultConfig()
	} else {
		config = config.Clone()
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	matcher, err := config.functionMatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Renderer{
		classifier: NewClassifier(matcher),
		config:     config,
		logger:     logger.With("component", "json-renderer"),
	}, nil
}

// Classifier returns the classifier the renderer dispatches with
func (r *Renderer) Classifier() *Classifier {
	return r.classifier
}

// Config returns a copy of the renderer configuration
func (r *Renderer) Config() *Config {
	return r.config.Clone()
}

// Quote escapes s as a JSON string using the renderer's function grammar
func (r *Renderer) Quote(s string) string {
	return quote(r.classifier.matcher, s)
}

// Render produces compact JSON text for v. The rules, in order:
//
//  1. null values render as null
//  2. Function markers render as their literal text
//  3. JSONStringer values render as the text they return; a failure or a
//     non-string result is ErrMalformedCustomRendering
//  4. numbers render canonically; NaN and infinities are ErrInvalidNumber
//  5. booleans render as true or false
//  6. objects and arrays render through their ContainerRenderer
//  7. anything else is quoted from its fmt.Sprint text
func (r *Renderer) Render(v any) (string, error) {
	s, err := r.renderCompact(v)
	if err != nil {
		r.logFailure("render", v, err)
		return "", err
	}
	return s, nil
}

// RenderIndent produces pretty JSON text for v. indentFactor is the number
// of spaces added per nesting level and indent is the indentation of the
// current level; both are passed to nested containers.
//
// Unlike Render, a failing or non-string JSONStringer is ignored and the
// value falls through to the remaining rules.
func (r *Renderer) RenderIndent(v any, indentFactor, indent int) (string, error) {
	s, err := r.renderPretty(v, indentFactor, indent)
	if err != nil {
		r.logFailure("render_indent", v, err)
		return "", err
	}
	return s, nil
}

func (r *Renderer) renderCompact(v any) (string, error) {
	if s, ok := r.renderLiteral(v); ok {
		return s, nil
	}

	if js, ok := v.(JSONStringer); ok {
		out, err := js.JSONString()
		if err != nil {
			return "", newCustomRenderingError(fmt.Sprintf("%T.JSONString failed", v), err)
		}
		s, ok := out.(string)
		if !ok {
			return "", newCustomRenderingError(fmt.Sprintf("bad value from %T.JSONString: %v", v, out), nil)
		}
		return s, nil
	}

	return r.renderScalarOrContainer(v, false, 0, 0)
}

func (r *Renderer) renderPretty(v any, indentFactor, indent int) (string, error) {
	if s, ok := r.renderLiteral(v); ok {
		return s, nil
	}

	if js, ok := v.(JSONStringer); ok {
		out, err := js.JSONString()
		if err == nil {
			if s, ok := out.(string); ok {
				return s, nil
			}
		}
		r.logger.LogAttrs(context.Background(), slog.LevelDebug, "Custom JSON rendering ignored",
			slog.String("value_type", fmt.Sprintf("%T", v)),
			slog.Any("error", err),
		)
	}

	return r.renderScalarOrContainer(v, true, indentFactor, indent)
}

// renderLiteral handles the rules that never fail: null and function markers
func (r *Renderer) renderLiteral(v any) (string, bool) {
	if IsNull(v) {
		return "null", true
	}
	switch f := v.(type) {
	case Function:
		return f.String(), true
	case *Function:
		if f == nil {
			return "null", true
		}
		return f.String(), true
	}
	return "", false
}

func (r *Renderer) renderScalarOrContainer(v any, pretty bool, indentFactor, indent int) (string, error) {
	if IsNumeric(v) {
		return NumberToString(v)
	}
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b), nil
	}
	if dc, ok := v.(documentContainer); ok {
		return dc.renderWith(r, pretty, indentFactor, indent)
	}
	if c, ok := v.(ContainerRenderer); ok {
		if pretty {
			return c.RenderJSONIndent(indentFactor, indent)
		}
		return c.RenderJSON()
	}
	return r.Quote(fmt.Sprint(v)), nil
}

func (r *Renderer) logFailure(operation string, v any, err error) {
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, "JSON rendering failed",
		slog.String("operation", operation),
		slog.String("value_type", fmt.Sprintf("%T", v)),
		slog.String("error", err.Error()),
	)
}
