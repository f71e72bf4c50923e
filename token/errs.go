package token

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrDecode  = fmt.Errorf("%w: bad value", ErrParse)
	ErrPath    = fmt.Errorf("%w: bad key path", ErrParse)
	ErrGrammar = fmt.Errorf("%w: bad assignment", ErrParse)
	ErrSection = fmt.Errorf("%w: bad section", ErrParse)
)

// LineErr is an error attributed to one line of input.
type LineErr struct {
	Err error
	Pos Pos
}

func (e *LineErr) Unwrap() error {
	return e.Err
}

func NewLineErr(e error, p *Pos) *LineErr {
	return &LineErr{Err: e, Pos: *p}
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func GrammarErr(what string, p *Pos) error {
	return NewLineErr(fmt.Errorf("%w: %s", ErrGrammar, what), p)
}
