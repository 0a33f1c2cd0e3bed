package gate

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted marks an outcome ended by cancellation
	ErrAborted = errors.New("validation aborted")

	// ErrTooLarge is returned when a document exceeds the configured read cap
	ErrTooLarge = errors.New("document exceeds size limit")
)

// SyntaxError is the only checker error that turns into a rejection
// Message carries the parser's diagnostic verbatim, location included
type SyntaxError struct {
	Grammar string
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Grammar == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Grammar, e.Message)
}

// AsSyntax unwraps err to a *SyntaxError when it is one
func AsSyntax(err error) (*SyntaxError, bool) {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
