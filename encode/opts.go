package encode

import "github.com/signadot/ascconv/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeWire writes JSON on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// Indent sets the number of spaces per nesting level of JSON and YAML.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// StringDelim sets the delimiter written around ASCCONV string values.
func StringDelim(d string) EncodeOption {
	return func(es *EncState) { es.delim = d }
}

// EncodeSizes writes an __attribute__.size line before the elements of
// each array in ASCCONV output.
func EncodeSizes(v bool) EncodeOption {
	return func(es *EncState) { es.sizes = v }
}

// Align pads ASCCONV keys so that the '=' signs line up.
func Align(v bool) EncodeOption {
	return func(es *EncState) { es.align = v }
}

// EncodeSection wraps ASCCONV output in begin and end marker lines. attrs
// is written on the begin marker line, as formatted by parse.Attrs.String.
func EncodeSection(attrs string) EncodeOption {
	return func(es *EncState) { es.section = &attrs }
}

// KeyPrefix prepends p to every ASCCONV key, so that a subtree can be
// written with the keys it has in its document.
func KeyPrefix(p string) EncodeOption {
	return func(es *EncState) { es.prefix = p }
}
