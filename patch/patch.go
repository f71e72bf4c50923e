package patch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/ascconv/debug"
	"github.com/signadot/ascconv/eval"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/ir/kpath"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch is a decoded RFC 6902 patch.
type Patch struct {
	ops jsonpatch.Patch
}

// Decode decodes a JSON array of patch operations.
func Decode(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return &Patch{ops: ops}, nil
}

// DecodeNode decodes patch operations held in a tree, such as one built
// by eval.EvalNode.
func DecodeNode(node *ir.Node) (*Patch, error) {
	d, err := eval.MarshalJSON(node)
	if err != nil {
		return nil, err
	}
	return Decode(d)
}

// Len returns the number of operations in p.
func (p *Patch) Len() int {
	return len(p.ops)
}

// Apply applies p to a copy of doc and returns the copy.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("applying %d patch operations to %q\n", len(p.ops), doc.KPath())
	}
	return viaJSON(doc, p.ops.Apply)
}

// Merge applies an RFC 7396 merge patch to a copy of doc.
func Merge(doc *ir.Node, mergePatch []byte) (*ir.Node, error) {
	return viaJSON(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, mergePatch)
	})
}

// CreateMerge returns the merge patch which turns from into to.
func CreateMerge(from, to *ir.Node) ([]byte, error) {
	a, err := eval.MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := eval.MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// Equal reports whether a and b are equal as JSON documents, that is
// regardless of the order of object fields.
func Equal(a, b *ir.Node) bool {
	da, err := eval.MarshalJSON(a)
	if err != nil {
		return false
	}
	db, err := eval.MarshalJSON(b)
	if err != nil {
		return false
	}
	return jsonpatch.Equal(da, db)
}

func viaJSON(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patched json %s\n", out)
	}
	res, err := eval.UnmarshalJSON(out)
	if err != nil {
		return nil, err
	}
	reorder(res, doc)
	return res, nil
}

// reorder sorts the fields of objects in n to follow the order of the
// corresponding objects in like.
func reorder(n, like *ir.Node) {
	if n.Type != like.Type {
		return
	}
	switch n.Type {
	case ir.ArrayType:
		for i := range min(len(n.Values), len(like.Values)) {
			reorder(n.Values[i], like.Values[i])
		}
	case ir.ObjectType:
		used := make([]bool, len(n.Fields))
		order := make([]int, 0, len(n.Fields))
		for _, f := range like.Fields {
			if i := n.FieldIndex(f.String); i >= 0 && !used[i] {
				used[i] = true
				order = append(order, i)
			}
		}
		for i := range n.Fields {
			if !used[i] {
				order = append(order, i)
			}
		}
		fields := make([]*ir.Node, len(order))
		values := make([]*ir.Node, len(order))
		for j, i := range order {
			fields[j], values[j] = n.Fields[i], n.Values[i]
			fields[j].ParentIndex = j
			values[j].ParentIndex = j
		}
		n.Fields, n.Values = fields, values
		for j, f := range fields {
			if l := ir.Get(like, f.String); l != nil {
				reorder(values[j], l)
			}
		}
	}
}

// Pointer returns the JSON pointer (RFC 6901) addressing kp.
func Pointer(kp *kpath.KPath) string {
	buf := strings.Builder{}
	for x := kp; x != nil; x = x.Next {
		buf.WriteByte('/')
		switch {
		case x.Field != nil:
			buf.WriteString(strings.NewReplacer("~", "~0", "/", "~1").Replace(*x.Field))
		case x.Index != nil:
			buf.WriteString(strconv.Itoa(*x.Index))
		}
	}
	return buf.String()
}
