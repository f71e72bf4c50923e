package parse

import (
	"fmt"

	"github.com/signadot/ascconv/token"
)

var (
	ErrParse   = token.ErrParse
	ErrDecode  = token.ErrDecode
	ErrPath    = token.ErrPath
	ErrGrammar = token.ErrGrammar
	ErrSection = token.ErrSection

	// ErrConflict is returned when a key path addresses an object where
	// an array or value was already assigned, or the other way around.
	ErrConflict = fmt.Errorf("%w: conflicting key kinds", ErrGrammar)
)
