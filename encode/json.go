package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/signadot/ascconv/ir"
)

type jsonWriter struct {
	w     io.Writer
	es    *EncState
	depth int
	err   error
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	jw := &jsonWriter{w: w, es: es}
	jw.value(node)
	jw.write("\n")
	return jw.err
}

func (jw *jsonWriter) write(s string) {
	if jw.err != nil {
		return
	}
	jw.err = writeString(jw.w, s)
}

func (jw *jsonWriter) sep(t ir.Type, s string) {
	jw.write(applyColor(jw.es, t, SepColor, s))
}

func (jw *jsonWriter) nl() {
	if jw.es.wire {
		return
	}
	jw.write("\n" + strings.Repeat(" ", jw.es.indent*jw.depth))
}

func (jw *jsonWriter) value(node *ir.Node) {
	switch node.Type {
	case ir.ObjectType:
		jw.object(node)
	case ir.ArrayType:
		jw.array(node)
	case ir.StringType:
		jw.write(applyColor(jw.es, ir.StringType, ValueColor, quote(node.String)))
	case ir.NumberType:
		s, err := formatNumber(node)
		if err != nil {
			if jw.err == nil {
				jw.err = err
			}
			return
		}
		jw.write(applyColor(jw.es, ir.NumberType, ValueColor, s))
	case ir.AbsentType:
		jw.write(applyColor(jw.es, ir.AbsentType, ValueColor, "null"))
	}
}

func (jw *jsonWriter) object(node *ir.Node) {
	jw.sep(ir.ObjectType, "{")
	if len(node.Fields) == 0 {
		jw.sep(ir.ObjectType, "}")
		return
	}
	jw.depth++
	for i, f := range node.Fields {
		if i > 0 {
			jw.sep(ir.ObjectType, ",")
		}
		jw.nl()
		jw.write(applyColor(jw.es, ir.ObjectType, FieldColor, quote(f.String)))
		if jw.es.wire {
			jw.sep(ir.ObjectType, ":")
		} else {
			jw.sep(ir.ObjectType, ": ")
		}
		jw.value(node.Values[i])
	}
	jw.depth--
	jw.nl()
	jw.sep(ir.ObjectType, "}")
}

func (jw *jsonWriter) array(node *ir.Node) {
	jw.sep(ir.ArrayType, "[")
	if len(node.Values) == 0 {
		jw.sep(ir.ArrayType, "]")
		return
	}
	jw.depth++
	for i, v := range node.Values {
		if i > 0 {
			jw.sep(ir.ArrayType, ",")
		}
		jw.nl()
		jw.value(v)
	}
	jw.depth--
	jw.nl()
	jw.sep(ir.ArrayType, "]")
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}
