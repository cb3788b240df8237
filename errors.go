package sqlfrag

import (
	"errors"
	"fmt"
)

// ErrUnsupportedIdentifierChar is returned when an identifier fragment
// contains a single quote or a backslash. Identifiers holding these
// characters are not supported: the target dialects reject them outright,
// so rendering fails instead of emitting ambiguous SQL.
var ErrUnsupportedIdentifierChar = errors.New("sqlfrag: unsupported character in identifier")

// UnsupportedIdentifierCharError reports the identifier fragment that
// failed to render.
type UnsupportedIdentifierCharError struct {
	// Fragment is the raw text that contained the unsupported character.
	Fragment string
}

// Error returns the error string.
func (e *UnsupportedIdentifierCharError) Error() string {
	return fmt.Sprintf("sqlfrag: identifier fragment %q contains ' or \\", e.Fragment)
}

// Is reports whether the target matches ErrUnsupportedIdentifierChar.
// This allows errors.Is(err, ErrUnsupportedIdentifierChar) to return true.
func (e *UnsupportedIdentifierCharError) Is(err error) bool {
	return err == ErrUnsupportedIdentifierChar
}
