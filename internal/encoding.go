package internal

import (
	"bytes"
	"sync"
)

// IsDigit reports whether the character is a digit
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Buffer pool shared by quoting and container rendering
var encoderBufferPool = sync.Pool{
	New: func() any {
		buf := &bytes.Buffer{}
		buf.Grow(256)
		return buf
	},
}

// GetEncoderBuffer gets a buffer from the pool
func GetEncoderBuffer() *bytes.Buffer {
	buf := encoderBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutEncoderBuffer returns a buffer to the pool. Oversized buffers are dropped.
func PutEncoderBuffer(buf *bytes.Buffer) {
	const maxPoolBufferSize = 8 * 1024
	if buf != nil && buf.Cap() <= maxPoolBufferSize {
		buf.Reset()
		encoderBufferPool.Put(buf)
	}
}

// WriteUnicodeEscape writes \u followed by four lowercase hex digits
func WriteUnicodeEscape(buf *bytes.Buffer, c byte) {
	buf.WriteString(`\u00`)
	buf.WriteByte(hexChars[c>>4])
	buf.WriteByte(hexChars[c&0x0F])
}

// WriteIndent writes n spaces
func WriteIndent(buf *bytes.Buffer, n int) {
	for i := 0; i < n; i++ {
		buf.WriteByte(' ')
	}
}

// hexChars contains hex characters for escape sequences
const hexChars = "0123456789abcdef"
