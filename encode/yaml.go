package encode

import (
	"fmt"
	"io"

	"github.com/signadot/ascconv/ir"

	"github.com/goccy/go-yaml"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node to values goccy/go-yaml encodes in tree order.
func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, e := range node.Values {
			v, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return nil, fmt.Errorf("%w: number without value at %q", ErrEncoding, node.KPath())
	case ir.AbsentType:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}
