package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/ascconv/ir/kpath"
)

// KPath returns the key path of node's position in the tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Nested "a.b" → "a.b"
//   - Mixed "a[0].b" → "a[0].b"
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		prefix := node.Parent.KPath()
		if prefix == "" {
			return node.ParentField
		}
		return prefix + "." + node.ParentField

	case ArrayType:
		return node.Parent.KPath() + "[" + strconv.Itoa(node.ParentIndex) + "]"

	default:
		panic("parent but not in container")
	}
}

// GetKPath navigates the tree from node along kp.
//
// Example:
//
//	root.GetKPath("sSliceArray.asSlice[0].dThickness")
//
// Returns an error wrapping ErrNotFound if a segment does not exist, and
// ErrKind if a segment addresses the wrong kind of node.
func (node *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.Lookup(p)
}

// Lookup is like GetKPath for an already parsed path. A nil path
// returns node itself.
func (node *Node) Lookup(kp *kpath.KPath) (*Node, error) {
	res := node
	for x := kp; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if res.Type != ObjectType {
				return nil, fmt.Errorf("%w: field %q of %s at %q", ErrKind, *x.Field, res.Type, res.KPath())
			}
			v := Get(res, *x.Field)
			if v == nil {
				return nil, notFound(kp.String())
			}
			res = v
		case x.Index != nil:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: index %d of %s at %q", ErrKind, *x.Index, res.Type, res.KPath())
			}
			if *x.Index >= len(res.Values) {
				return nil, notFound(kp.String())
			}
			res = res.Values[*x.Index]
		default:
			return nil, fmt.Errorf("%w: empty path segment", errInternal)
		}
	}
	return res, nil
}

// Leaves calls f with the path and value of every non-container node
// under node in tree order, skipping absent array slots.
func (node *Node) Leaves(f func(kp *kpath.KPath, v *Node) error) error {
	return leaves(node, nil, f)
}

func leaves(node *Node, at *kpath.KPath, f func(*kpath.KPath, *Node) error) error {
	switch node.Type {
	case ObjectType:
		for i, field := range node.Fields {
			if err := leaves(node.Values[i], at.Append(kpath.Field(field.String)), f); err != nil {
				return err
			}
		}
		return nil
	case ArrayType:
		for i, v := range node.Values {
			if err := leaves(v, at.Append(kpath.Index(i)), f); err != nil {
				return err
			}
		}
		return nil
	case AbsentType:
		return nil
	default:
		return f(at, node)
	}
}
