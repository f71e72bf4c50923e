package libdiff

import (
	"slices"
	"strconv"

	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is a difference at one key path. From is nil for insertions,
// To for deletions.
type Change struct {
	Path     *kpath.KPath
	Kind     Kind
	From, To *ir.Node

	// Text holds the character diff of replaced strings.
	Text []diffpatch.Diff
}

func (c *Change) String() string {
	kp := c.Path.String()
	switch c.Kind {
	case Insert:
		return c.Kind.sigil() + " " + kp + " = " + show(c.To)
	case Delete:
		return c.Kind.sigil() + " " + kp + " = " + show(c.From)
	}
	if c.Text != nil {
		return c.Kind.sigil() + " " + kp + ": " + strconv.Quote(WordDiff(c.Text))
	}
	return c.Kind.sigil() + " " + kp + ": " + show(c.From) + " -> " + show(c.To)
}

func show(n *ir.Node) string {
	if n.Type == ir.StringType {
		return strconv.Quote(n.String)
	}
	return n.ScalarString()
}

type Changes []*Change

// Diff returns the changes which turn from into to, ordered by key path.
// Absent array slots count as missing values.
func Diff(from, to *ir.Node) Changes {
	fromLeaves := leafMap(from)
	toLeaves := leafMap(to)
	res := Changes{}
	for k, f := range fromLeaves {
		t, ok := toLeaves[k]
		if !ok {
			res = append(res, &Change{Path: f.kp, Kind: Delete, From: f.node})
			continue
		}
		if ir.Equal(f.node, t.node) {
			continue
		}
		c := &Change{Path: f.kp, Kind: Replace, From: f.node, To: t.node}
		if f.node.Type == ir.StringType && t.node.Type == ir.StringType {
			c.Text = DiffString(f.node.String, t.node.String)
		}
		res = append(res, c)
	}
	for k, t := range toLeaves {
		if _, ok := fromLeaves[k]; !ok {
			res = append(res, &Change{Path: t.kp, Kind: Insert, To: t.node})
		}
	}
	slices.SortFunc(res, func(a, b *Change) int {
		return a.Path.Compare(b.Path)
	})
	return res
}

type leaf struct {
	kp   *kpath.KPath
	node *ir.Node
}

func leafMap(n *ir.Node) map[string]leaf {
	res := map[string]leaf{}
	if n == nil {
		return res
	}
	_ = n.Leaves(func(kp *kpath.KPath, v *ir.Node) error {
		res[kp.String()] = leaf{kp: kp, node: v}
		return nil
	})
	return res
}

func (cs Changes) Empty() bool {
	return len(cs) == 0
}

// Count returns the number of changes of each kind.
func (cs Changes) Count() map[Kind]int {
	res := map[Kind]int{}
	for _, c := range cs {
		res[c.Kind]++
	}
	return res
}

// Node returns the changes as a tree keyed by key path, each change an
// object with fields "op", and "from" and "to" as they apply.
func (cs Changes) Node() *ir.Node {
	res := ir.NewObject()
	for _, c := range cs {
		kvs := []ir.KeyVal{{Key: "op", Val: ir.FromString(c.Kind.String())}}
		if c.From != nil {
			kvs = append(kvs, ir.KeyVal{Key: "from", Val: c.From.Clone()})
		}
		if c.To != nil {
			kvs = append(kvs, ir.KeyVal{Key: "to", Val: c.To.Clone()})
		}
		res.Set(c.Path.String(), ir.FromKeyVals(kvs))
	}
	return res
}
