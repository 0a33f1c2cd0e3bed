package syntax

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// JSON checks a single JSON value
type JSON struct{}

// Name implements Grammar
func (JSON) Name() string { return "JSON" }

// Check implements Grammar
// gjson validates without allocating; the slower decoder only runs to locate a failure
// neither checks encoding so invalid UTF-8 is located separately
func (g JSON) Check(content string) error {
	if gjson.Valid(content) {
		if off := badUTF8(content); off >= 0 {
			return g.at(content, off, fmt.Sprintf("invalid UTF-8 byte 0x%02x", content[off]))
		}
		return nil
	}
	var raw json.RawMessage
	err := json.Unmarshal([]byte(content), &raw)
	var se *json.SyntaxError
	if errors.As(err, &se) {
		line, col := position(content, se.Offset)
		return syntaxErr(g, fmt.Sprintf("line %d, column %d: %s", line, col, se.Error()))
	}
	if err != nil {
		return syntaxErr(g, err.Error())
	}
	if off := badUTF8(content); off >= 0 {
		return g.at(content, off, fmt.Sprintf("invalid UTF-8 byte 0x%02x", content[off]))
	}
	return syntaxErr(g, "invalid JSON document")
}

// at reports msg at the 0-based byte offset off
func (g JSON) at(content string, off int, msg string) error {
	line, col := position(content, int64(off)+1)
	return syntaxErr(g, fmt.Sprintf("line %d, column %d: %s", line, col, msg))
}

// badUTF8 returns the offset of the first byte that is not valid UTF-8 or -1
func badUTF8(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}

// position converts a byte offset to a 1-based line and column
func position(s string, off int64) (line, col int) {
	if off > int64(len(s)) {
		off = int64(len(s))
	}
	if off < 1 {
		return 1, 1
	}
	head := s[:off]
	line = strings.Count(head, "\n") + 1
	col = max(int(off)-strings.LastIndexByte(head, '\n')-1, 1)
	return line, col
}
