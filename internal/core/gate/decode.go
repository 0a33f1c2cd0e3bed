package gate

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readAll reads r fully, failing with ErrTooLarge past limit when limit > 0
func readAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, ErrTooLarge
	}
	return b, nil
}

// decodeText turns raw bytes into text
// a UTF-8 BOM is dropped and UTF-16 is decoded when a BOM announces it
// bytes without a BOM pass through untouched so the parser sees them as stored
func decodeText(b []byte) (string, error) {
	if !hasBOM(b) {
		return string(b), nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

func hasBOM(b []byte) bool {
	return bytes.HasPrefix(b, bomUTF8) || bytes.HasPrefix(b, bomUTF16BE) || bytes.HasPrefix(b, bomUTF16LE)
}

// blank reports whether s holds only whitespace
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
