package jsonutils

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", `""`},
		{"plain", "hello", `"hello"`},
		{"closing tag", "a</b", `"a<\/b"`},
		{"slash alone", "a/b", `"a/b"`},
		{"script tag", "</script>", `"<\/script>"`},
		{"repeated", "<<//", `"<<\//"`},
		{"double quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `C:\dir`, `"C:\\dir"`},
		{"newline", "a\nb", `"a\nb"`},
		{"short escapes", "\b\t\n\f\r", `"\b\t\n\f\r"`},
		{"control characters", "\x01\x1f", `"\u0001\u001f"`},
		{"nul", "\x00", `"\u0000"`},
		{"escape character", "\x1b[0m", `"\u001b[0m"`},
		{"delete passes through", "\x7f", "\"\x7f\""},
		{"unicode", "héllo 世界", `"héllo 世界"`},
		{"line separator", "a\u2028b", "\"a\u2028b\""},
		{"invalid utf8 byte", "a\xffb", `"a\ufffdb"`},
		{"truncated sequence", "\xe4\xb8", `"\ufffd\ufffd"`},
		{"valid after invalid", "\xff世", `"\ufffd世"`},
		{"function literal verbatim", "function(a){return a;}", "function(a){return a;}"},
		{"function literal with spaces", "function (x) {x}", "function (x) {x}"},
		{"function header quoted", "function(a)", `"function(a)"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.input))
		})
	}
}

func TestQuoteIsValidJSON(t *testing.T) {
	inputs := []string{
		"", "plain", "a</b", `"\`, "tab\there", "\x00\x01\x02\x1e\x1f", "日本語", "emoji 😀",
	}

	for _, in := range inputs {
		quoted := Quote(in)

		var decoded string
		require.NoError(t, json.Unmarshal([]byte(quoted), &decoded), quoted)
		assert.Equal(t, in, decoded)
	}
}

func TestQuoteInvalidUTF8IsValidJSON(t *testing.T) {
	quoted := Quote("bad\xfe\xffbytes")
	require.True(t, json.Valid([]byte(quoted)), quoted)

	var decoded string
	require.NoError(t, json.Unmarshal([]byte(quoted), &decoded))
	assert.Equal(t, "bad\ufffd\ufffdbytes", decoded)
}

func TestQuoteLargeInput(t *testing.T) {
	in := strings.Repeat("</", 10000)
	out := Quote(in)

	assert.Equal(t, `"`+strings.Repeat(`<\/`, 10000)+`"`, out)
	// a second call after an oversized buffer was dropped from the pool
	assert.Equal(t, `"x"`, Quote("x"))
}

func TestRendererQuoteUsesConfiguredGrammar(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisableFunctionLiterals = true
	r, err := NewRenderer(cfg)
	require.NoError(t, err)

	assert.Equal(t, `"function(){}"`, r.Quote("function(){}"))
	assert.Equal(t, "function(){}", Quote("function(){}"))
}
