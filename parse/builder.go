package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/ir/kpath"
	"github.com/signadot/ascconv/token"
)

// builder folds assignments into a tree. It is used for a single parse.
type builder struct {
	root *ir.Node
	opts *parseOpts

	// declared sizes by canonical key path
	sizes map[string]int
	decls []sizeDecl
}

type sizeDecl struct {
	kp  *kpath.KPath
	pos *token.Pos
}

func newBuilder(opts *parseOpts) *builder {
	return &builder{
		root:  ir.NewObject(),
		opts:  opts,
		sizes: map[string]int{},
	}
}

// insert places v at kp, creating objects and arrays on the way. A value
// already at kp is replaced.
func (b *builder) insert(kp *kpath.KPath, v *ir.Node) error {
	for seg := kp; seg != nil; seg = seg.Next {
		if seg.Index != nil && *seg.Index > b.opts.maxIndex {
			return fmt.Errorf("%w: index %d exceeds %d", ErrPath, *seg.Index, b.opts.maxIndex)
		}
	}
	cur := b.root
	at := ""
	for seg := kp; seg != nil; seg = seg.Next {
		last := seg.Next == nil
		var child *ir.Node
		switch {
		case seg.Field != nil:
			if at == "" {
				at = *seg.Field
			} else {
				at += "." + *seg.Field
			}
			child = ir.Get(cur, *seg.Field)
		case seg.Index != nil:
			i := *seg.Index
			at += "[" + strconv.Itoa(i) + "]"
			if i < len(cur.Values) {
				child = cur.Values[i]
			}
		}
		if last {
			if child != nil && !child.Type.IsLeaf() {
				return fmt.Errorf("%w: %q holds an %s, cannot assign a value", ErrConflict, at, child.Type)
			}
			b.set(cur, seg, v)
			return nil
		}
		want := ir.ObjectType
		if seg.Next.Index != nil {
			want = ir.ArrayType
		}
		if child == nil || child.Type == ir.AbsentType {
			child = b.container(want, at)
			b.set(cur, seg, child)
		} else if child.Type != want {
			return fmt.Errorf("%w: %q holds %s, not %s", ErrConflict, at, describe(child), want)
		}
		cur = child
	}
	return nil
}

func (b *builder) set(parent *ir.Node, seg *kpath.KPath, v *ir.Node) {
	if seg.Field != nil {
		parent.Set(*seg.Field, v)
		return
	}
	parent.SetIndex(*seg.Index, v)
}

func (b *builder) container(t ir.Type, at string) *ir.Node {
	if t == ir.ObjectType {
		return ir.NewObject()
	}
	n, ok := b.sizes[at]
	if !ok {
		return ir.NewArray(0)
	}
	arr := ir.NewArray(n)
	if b.opts.expandSizes {
		arr.Grow(n)
	}
	return arr
}

// declareSize records that the array at kp has n elements. An array
// already built at kp is padded when sizes are expanded.
func (b *builder) declareSize(kp *kpath.KPath, n int, pos *token.Pos) error {
	if n < 0 || n > b.opts.maxIndex+1 {
		return fmt.Errorf("%w: size %d out of range", ErrDecode, n)
	}
	at := kp.String()
	if _, ok := b.sizes[at]; !ok {
		b.decls = append(b.decls, sizeDecl{kp: kp, pos: pos})
	}
	b.sizes[at] = n
	existing, err := b.root.Lookup(kp)
	if err == nil && existing.Type == ir.ArrayType && b.opts.expandSizes {
		existing.Grow(n)
	}
	return nil
}

// finish checks that declared sizes name arrays, builds arrays which were
// declared but never assigned when sizes are expanded, and returns the
// tree. Errors are passed to fail, which decides whether to stop.
func (b *builder) finish(fail func(error) error) (*ir.Node, error) {
	for _, d := range b.decls {
		existing, err := b.root.Lookup(d.kp)
		if err == nil && existing.Type != ir.AbsentType {
			if existing.Type == ir.ArrayType {
				continue
			}
			err = fmt.Errorf("%w: %q holds %s, cannot declare a size", ErrConflict, d.kp, describe(existing))
			if err := fail(token.NewLineErr(err, d.pos)); err != nil {
				return nil, err
			}
			continue
		}
		if !b.opts.expandSizes {
			continue
		}
		if err := b.insertArray(d.kp); err != nil {
			if err := fail(token.NewLineErr(err, d.pos)); err != nil {
				return nil, err
			}
		}
	}
	return b.root, nil
}

func (b *builder) insertArray(kp *kpath.KPath) error {
	at := kp.String()
	n := b.sizes[at]
	arr := ir.NewArray(n)
	arr.Grow(n)
	// build the intermediate containers around a placeholder, then swap
	// in the array.
	if err := b.insert(kp, ir.Absent()); err != nil {
		return err
	}
	placeholder, err := b.root.Lookup(kp)
	if err != nil {
		return err
	}
	b.set(placeholder.Parent, kp.Last(), arr)
	return nil
}

func describe(n *ir.Node) string {
	if n.Type.IsLeaf() {
		return "a value"
	}
	return "an " + n.Type.String()
}
