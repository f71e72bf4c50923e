package ir

import (
	"strconv"
	"strings"
)

// Node is a single location in a parsed protocol tree.
//
// Objects keep Fields[i] as the key (a StringType node) for Values[i], in
// order of first appearance. Arrays keep their elements in Values; slots
// which were never assigned hold an AbsentType node. Numbers are either
// integers (Int64 set) or floats (Float64 set), never both.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}

	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// Absent returns a placeholder for an array slot that was never assigned.
func Absent() *Node {
	return &Node{Type: AbsentType}
}

// NewObject returns an empty object.
func NewObject() *Node {
	return &Node{Type: ObjectType}
}

// NewArray returns an empty array with room for n elements.
func NewArray(n int) *Node {
	return &Node{Type: ArrayType, Values: make([]*Node, 0, n)}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object keeping the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewObject()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Get returns the value of field in object y, or nil.
func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// FieldIndex returns the position of field in object y, or -1.
func (y *Node) FieldIndex(field string) int {
	for i, f := range y.Fields {
		if f.String == field {
			return i
		}
	}
	return -1
}

// Set sets field to v in object y, replacing any previous value in place
// and appending new fields at the end.
func (y *Node) Set(field string, v *Node) {
	v.Parent = y
	v.ParentField = field
	if i := y.FieldIndex(field); i >= 0 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	i := len(y.Fields)
	v.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Type:        StringType,
		String:      field,
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
	})
	y.Values = append(y.Values, v)
}

// SetIndex sets position i of array y to v, growing y with Absent slots
// as needed.
func (y *Node) SetIndex(i int, v *Node) {
	y.Grow(i + 1)
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = ""
	y.Values[i] = v
}

// Grow extends array y with Absent slots until it has at least n elements.
func (y *Node) Grow(n int) {
	for len(y.Values) < n {
		a := Absent()
		a.Parent = y
		a.ParentIndex = len(y.Values)
		y.Values = append(y.Values, a)
	}
}

// Keys returns the field names of object y in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// ScalarString renders a leaf value the way it is written on the right
// hand side of an assignment, without string delimiters. Floats always
// have a '.' or an exponent.
func (y *Node) ScalarString() string {
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			s := strconv.FormatFloat(*y.Float64, 'g', -1, 64)
			if !strings.ContainsAny(s, ".eIN") {
				s += ".0"
			}
			return s
		}
		return ""
	case AbsentType:
		return ""
	default:
		return "<" + y.Type.String() + ">"
	}
}
