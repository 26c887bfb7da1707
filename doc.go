// Package jsonutils classifies arbitrary Go values into JSON kinds and
// renders them as canonical JSON text fragments.
//
// # Classification
//
// Every value maps to exactly one Kind, decided by a fixed rule order:
//
//	null → array → function → boolean → number → string → object
//
//	jsonutils.Classify(nil)                          // KindNull
//	jsonutils.Classify([]int{1, 2})                  // KindArray
//	jsonutils.Classify("function(a){return a;}")     // KindFunction
//	jsonutils.Classify(3.5)                          // KindNumber
//	jsonutils.Classify(jsonutils.NewObject())        // KindObject
//
// IsObject is kept as an independent predicate: it is true for values that
// are none of number, string, boolean and array, and also for null.
//
// # Rendering
//
//	s, err := jsonutils.Render(3.0)                  // "3"
//	s, err = jsonutils.Render("a</b")                // "\"a<\\/b\""
//	s, err = jsonutils.RenderIndent(obj, 2, 0)
//
// Numbers are written in their shortest form with redundant fraction zeros
// removed; NaN and infinities fail with ErrInvalidNumber. Strings are
// escaped for safe embedding in HTML. Text that is a JavaScript function
// literal, and Function markers, are written verbatim; this is a
// non-standard extension of JSON.
//
// Object and Array are small insertion-ordered containers. Any other type
// can take part in rendering by implementing ContainerRenderer or
// JSONStringer.
//
// # Configuration
//
// NewRenderer accepts a Config to replace the function-literal grammar,
// disable function literals or set a logger:
//
//	cfg := jsonutils.DefaultConfig()
//	cfg.DisableFunctionLiterals = true
//	r, err := jsonutils.NewRenderer(cfg)
//
// All functions are safe for concurrent use. Compiled patterns and the
// numeric registry are built once on first use and never modified.
package jsonutils
