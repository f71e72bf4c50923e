package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/ascconv/format"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format  format.Format
	wire    bool
	indent  int
	delim   string
	sizes   bool
	align   bool
	section *string
	prefix  string

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		delim:  token.DefaultStringDelim,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch es.format {
	case format.ASCCONVFormat:
		return encodeASCCONV(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// assignment is one output line of ASCCONV text.
type assignment struct {
	key string
	// val is nil for size declarations
	val  *ir.Node
	size int
}

func encodeASCCONV(node *ir.Node, w io.Writer, es *EncState) error {
	lines := []assignment{}
	collect(node, es.prefix, es, &lines)
	width := 0
	if es.align {
		for _, ln := range lines {
			width = max(width, len(ln.key))
		}
	}
	if es.section != nil {
		hdr := token.BeginMarker
		if *es.section != "" {
			hdr += " " + *es.section
		}
		hdr += " ###"
		if err := writeString(w, applyColor(es, ir.ObjectType, MarkerColor, hdr)+"\n"); err != nil {
			return err
		}
	}
	for _, ln := range lines {
		if err := writeAssignment(w, ln, width, es); err != nil {
			return err
		}
	}
	if es.section != nil {
		return writeString(w, applyColor(es, ir.ObjectType, MarkerColor, token.EndMarker)+"\n")
	}
	return nil
}

func collect(node *ir.Node, at string, es *EncState, lines *[]assignment) {
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			key := f.String
			if at != "" {
				key = at + "." + key
			}
			collect(node.Values[i], key, es, lines)
		}
	case ir.ArrayType:
		if es.sizes && at != "" {
			*lines = append(*lines, assignment{key: at + token.SizeSuffix, size: len(node.Values)})
		}
		for i, v := range node.Values {
			collect(v, at+"["+strconv.Itoa(i)+"]", es, lines)
		}
	case ir.AbsentType:
	default:
		*lines = append(*lines, assignment{key: at, val: node})
	}
}

func writeAssignment(w io.Writer, ln assignment, width int, es *EncState) error {
	var val string
	if ln.val == nil {
		val = applyColor(es, ir.NumberType, SizeColor, strconv.Itoa(ln.size))
	} else {
		v, err := ascValue(ln.val, es)
		if err != nil {
			return err
		}
		val = applyColor(es, ln.val.Type, ValueColor, v)
	}
	if ln.key == "" {
		return writeString(w, val+"\n")
	}
	pad := ""
	if n := width - len(ln.key); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	key := ln.key
	if ln.val == nil {
		key = applyColor(es, ir.ArrayType, SizeColor, key)
	} else {
		key = applyColor(es, ir.ObjectType, FieldColor, key)
	}
	sep := applyColor(es, ir.ObjectType, SepColor, "=")
	return writeString(w, key+pad+" "+sep+" "+val+"\n")
}

func ascValue(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.StringType:
		d := es.delim
		if d == "" {
			d = `"`
		}
		return d + node.String + d, nil
	case ir.NumberType:
		return formatNumber(node)
	default:
		return "", fmt.Errorf("%w: cannot write %s as a value", ErrEncoding, node.Type)
	}
}

// formatNumber renders a number so that it reads back with the same kind:
// floats always carry a '.' or an exponent.
func formatNumber(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 == nil {
		return "", fmt.Errorf("%w: number without value at %q", ErrEncoding, node.KPath())
	}
	f := *node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v at %q", ErrEncoding, f, node.KPath())
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}
