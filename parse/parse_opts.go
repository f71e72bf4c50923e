package parse

import "github.com/signadot/ascconv/token"

// DefaultMaxIndex bounds array indices unless MaxIndex is given.
const DefaultMaxIndex = 1 << 20

type parseOpts struct {
	delim          string
	expandSizes    bool
	requireSection bool
	lenient        func(error)
	maxIndex       int
}

func newParseOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{
		delim:    token.DefaultStringDelim,
		maxIndex: DefaultMaxIndex,
	}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}

type ParseOption func(*parseOpts)

// StringDelim sets the marker which opens and closes string values.
// The default is token.DefaultStringDelim.
func StringDelim(d string) ParseOption {
	return func(o *parseOpts) { o.delim = d }
}

// ExpandSizes makes array size declarations a lower bound on the length
// of the declared array, padding with absent slots. By default a
// declared size only reserves capacity and arrays are as long as their
// highest assigned index.
func ExpandSizes() ParseOption {
	return func(o *parseOpts) { o.expandSizes = true }
}

// RequireSection makes Parse fail with ErrSection when the input has no
// ASCCONV BEGIN marker.
func RequireSection() ParseOption {
	return func(o *parseOpts) { o.requireSection = true }
}

// Lenient makes malformed lines non fatal: each line error is passed to
// f and the line is skipped. A nil f discards the errors.
func Lenient(f func(error)) ParseOption {
	return func(o *parseOpts) {
		if f == nil {
			f = func(error) {}
		}
		o.lenient = f
	}
}

// MaxIndex sets the largest array index or declared size accepted.
func MaxIndex(n int) ParseOption {
	return func(o *parseOpts) { o.maxIndex = n }
}
