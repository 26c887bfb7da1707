package jsonutils

import (
	"unicode/utf8"

	"github.com/cybergodev/jsonutils/internal"
)

// Quote produces a double-quoted JSON string literal for s.
//
// A backslash is inserted into "</" so the text can be embedded in HTML.
// Control characters use the short escapes where JSON has them and \u00xx
// otherwise. Valid non-ASCII text is copied as is and each invalid UTF-8 byte
// becomes \ufffd.
//
// CAUTION: if s is a function literal it is returned unquoted and
// unescaped, which produces non-conformant JSON text.
func Quote(s string) string {
	return quote(DefaultFunctionMatcher(), s)
}

func quote(m FunctionMatcher, s string) string {
	if m.MatchFunction(s) {
		return s
	}
	if s == "" {
		return `""`
	}

	buf := internal.GetEncoderBuffer()
	defer internal.PutEncoderBuffer(buf)
	buf.Grow(len(s) + 4)

	buf.WriteByte('"')
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '"':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case '/':
			if prev == '<' {
				buf.WriteByte('\\')
			}
			buf.WriteByte(c)
		case '\b':
			buf.WriteString(`\b`)
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\f':
			buf.WriteString(`\f`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			if c < ' ' {
				internal.WriteUnicodeEscape(buf, c)
			} else if c < utf8.RuneSelf {
				buf.WriteByte(c)
			} else {
				r, size := utf8.DecodeRuneInString(s[i:])
				if r == utf8.RuneError && size == 1 {
					buf.WriteString(`\ufffd`)
				} else {
					buf.WriteString(s[i : i+size])
				}
				i += size - 1
			}
		}
		prev = c
	}
	buf.WriteByte('"')

	return buf.String()
}
