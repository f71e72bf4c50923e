package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ascconv/debug"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/ir/kpath"
	"github.com/signadot/ascconv/token"
)

// Document is a parsed protocol dump.
type Document struct {
	// Root is the object built from the body assignments.
	Root *ir.Node
	// Attrs are the attributes of the begin marker line.
	Attrs Attrs
}

// Parse parses a protocol dump. The body between the ASCCONV BEGIN and END
// markers is parsed as by ParseBody and the attributes of the begin marker
// line are collected. Input without markers is parsed as a bare body with
// no attributes.
//
// Parsing is all-or-nothing: the first malformed line is returned as a
// *token.LineErr and no tree is built, unless the Lenient option is given.
func Parse(d []byte, opts ...ParseOption) (*Document, error) {
	pOpts := newParseOpts(opts)
	sec := SplitSections(string(d))
	if debug.Sections() {
		debug.Logf("sections: found=%t closed=%t header=%q body at line %d\n",
			sec.Found, sec.Closed, sec.Header, sec.BodyLine)
	}
	if !sec.Found && pOpts.requireSection {
		return nil, fmt.Errorf("%w: no %q line", ErrSection, BeginMarker)
	}
	root, err := parseBody(sec.Body, sec.BodyLine, pOpts)
	if err != nil {
		return nil, err
	}
	return &Document{Root: root, Attrs: ParseAttrs(sec.Header)}, nil
}

func ParseString(s string, opts ...ParseOption) (*Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseBody parses assignment lines, without looking for section
// markers, into an object.
func ParseBody(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return parseBody(string(d), 1, newParseOpts(opts))
}

func parseBody(body string, firstLine int, opts *parseOpts) (*ir.Node, error) {
	b := newBuilder(opts)
	fail := func(err error) error {
		if opts.lenient == nil {
			return err
		}
		opts.lenient(err)
		return nil
	}
	for i, raw := range strings.Split(body, "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		if err := parseLine(b, raw, firstLine+i, opts); err != nil {
			if err := fail(err); err != nil {
				return nil, err
			}
		}
	}
	if debug.Build() {
		debug.Dump("declared sizes", b.sizes)
	}
	return b.finish(fail)
}

func parseLine(b *builder, raw string, lineNo int, opts *parseOpts) error {
	ln, err := token.SplitLine(raw, lineNo, opts.delim)
	if err != nil {
		return err
	}
	if debug.Parse() && ln.Type != token.SkipLine {
		debug.Logf("%d: %s %q = %q\n", lineNo, ln.Type, ln.Key, ln.Value)
	}
	switch ln.Type {
	case token.SkipLine:
		return nil
	case token.SizeLine:
		kp, err := kpath.Parse(ln.Key)
		if err != nil {
			return token.NewLineErr(err, ln.Pos)
		}
		n, err := decodeSize(ln.Value, opts.delim)
		if err != nil {
			return token.NewLineErr(err, ln.Pos)
		}
		if err := b.declareSize(kp, n, ln.Pos); err != nil {
			return token.NewLineErr(err, ln.Pos)
		}
		return nil
	}
	kp, err := kpath.Parse(ln.Key)
	if err != nil {
		return token.NewLineErr(err, ln.Pos)
	}
	v, err := decodeValue(ln.Value, opts.delim)
	if err != nil {
		return token.NewLineErr(err, ln.Pos)
	}
	if err := b.insert(kp, v); err != nil {
		return token.NewLineErr(err, ln.Pos)
	}
	return nil
}

// decodeValue converts the right hand side of an assignment.
func decodeValue(raw, delim string) (*ir.Node, error) {
	typ, text, ok := token.ClassifyValue(raw, delim)
	if !ok {
		return nil, fmt.Errorf("%w: empty value", ErrDecode)
	}
	switch typ {
	case token.VString:
		return ir.FromString(text), nil
	case token.VHex:
		return decodeInt(raw, text, 16)
	case token.VFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrDecode, raw, err)
		}
		return ir.FromFloat(f), nil
	default:
		return decodeInt(raw, raw, 10)
	}
}

// decodeInt parses an integer numeral. Values beyond int64 but within
// uint64, such as 0xFFFFFFFFFFFFFFFF, become floats.
func decodeInt(raw, text string, base int) (*ir.Node, error) {
	i, err := strconv.ParseInt(text, base, 64)
	if err == nil {
		return ir.FromInt(i), nil
	}
	if u, uErr := strconv.ParseUint(strings.TrimPrefix(text, "+"), base, 64); uErr == nil {
		return ir.FromFloat(float64(u)), nil
	}
	return nil, fmt.Errorf("%w %q: %w", ErrDecode, raw, err)
}

func decodeSize(raw, delim string) (int, error) {
	v, err := decodeValue(raw, delim)
	if err != nil {
		return 0, err
	}
	if v.Int64 == nil {
		return 0, fmt.Errorf("%w: size %q is not an integer", ErrDecode, raw)
	}
	return int(*v.Int64), nil
}
