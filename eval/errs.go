package eval

import "errors"

var (
	ErrEval    = errors.New("eval error")
	ErrConvert = errors.New("cannot convert")
)
