package eval

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/format"
	"github.com/signadot/ascconv/ir"

	"github.com/goccy/go-yaml"
)

// MarshalJSON encodes node as compact JSON, fields in tree order.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// UnmarshalJSON decodes JSON into a tree, keeping the order of object
// fields. null decodes to an absent node.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return FromAny(v)
}

// ToAny converts node to maps, slices, strings, ints and float64s.
// Absent nodes become nil.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	case ir.AbsentType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts the result of an expression, or a decoded document,
// to a tree. Maps with string keys are ordered by key; yaml.MapSlice
// keeps its order. Booleans and other values with no tree
// representation give ErrConvert.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Absent(), nil
	case *ir.Node:
		res := x.Clone()
		res.Parent = nil
		res.ParentIndex = 0
		res.ParentField = ""
		return res, nil
	case []*ir.Node:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			vs[i] = e.Clone()
		}
		return ir.FromSlice(vs), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x)
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		return fromSlice(x)
	case []string:
		vs := make([]*ir.Node, len(x))
		for i, s := range x {
			vs[i] = ir.FromString(s)
		}
		return ir.FromSlice(vs), nil
	case []int:
		vs := make([]*ir.Node, len(x))
		for i, n := range x {
			vs[i] = ir.FromInt(int64(n))
		}
		return ir.FromSlice(vs), nil
	case []float64:
		vs := make([]*ir.Node, len(x))
		for i, f := range x {
			vs[i] = ir.FromFloat(f)
		}
		return ir.FromSlice(vs), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := ir.NewObject()
		for _, k := range keys {
			e, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, e)
		}
		return res, nil
	case map[string]string:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := ir.NewObject()
		for _, k := range keys {
			res.Set(k, ir.FromString(x[k]))
		}
		return res, nil
	case yaml.MapSlice:
		res := ir.NewObject()
		for _, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			e, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(k, e)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrConvert, v)
	}
}

func fromUint(u uint64) (*ir.Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrConvert, u)
	}
	return ir.FromInt(int64(u)), nil
}

func fromSlice(x []any) (*ir.Node, error) {
	vs := make([]*ir.Node, len(x))
	for i, e := range x {
		n, err := FromAny(e)
		if err != nil {
			return nil, err
		}
		vs[i] = n
	}
	return ir.FromSlice(vs), nil
}
