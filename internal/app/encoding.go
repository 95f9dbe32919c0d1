package app

import (
	"os"
	"unicode/utf8"
)

// ReadSourceFile reads a source file preferring a UTF-8 interpretation.
// Invalid UTF-8 falls back to an ISO-8859-1 transcoding, which maps every
// byte to its corresponding rune, so the fallback itself cannot fail;
// only the read can.
func ReadSourceFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if utf8.Valid(data) {
		return data, nil
	}
	return latin1ToUTF8(data), nil
}

// latin1ToUTF8 re-encodes ISO-8859-1 bytes as UTF-8. Each input byte is
// exactly one rune with the same code point.
func latin1ToUTF8(data []byte) []byte {
	out := make([]byte, 0, len(data)+len(data)/8)
	for _, b := range data {
		out = utf8.AppendRune(out, rune(b))
	}
	return out
}
