package kpath

import "cmp"

func (p *KPath) copySegment() *KPath {
	if p == nil {
		return nil
	}
	res := &KPath{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
	}
	return res
}

// Copy returns a deep copy of p.
func (p *KPath) Copy() *KPath {
	if p == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Copy()
	return res
}

// Append returns a copy of p followed by a copy of q.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q.Copy()
	}
	res := p.Copy()
	res.Last().Next = q.Copy()
	return res
}

// Last returns the final segment of p.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Parent returns a copy of p without its final segment, or nil if p has
// a single segment.
func (p *KPath) Parent() *KPath {
	if p == nil || p.Next == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.Parent()
	return res
}

// Len returns the number of segments in p.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

func segmentsEqual(a, b *KPath) bool {
	if (a.Field == nil) != (b.Field == nil) {
		return false
	}
	if a.Field != nil {
		return *a.Field == *b.Field
	}
	if (a.Index == nil) != (b.Index == nil) {
		return false
	}
	if a.Index != nil {
		return *a.Index == *b.Index
	}
	return true
}

// Equal reports whether p and q have the same segments.
func (p *KPath) Equal(q *KPath) bool {
	for p != nil && q != nil {
		if !segmentsEqual(p, q) {
			return false
		}
		p, q = p.Next, q.Next
	}
	return p == nil && q == nil
}

// Compare orders paths segment by segment. Fields sort before indices,
// fields by name and indices numerically; a prefix sorts first.
func (p *KPath) Compare(q *KPath) int {
	for p != nil && q != nil {
		if c := compareSegment(p, q); c != 0 {
			return c
		}
		p, q = p.Next, q.Next
	}
	switch {
	case p == nil && q == nil:
		return 0
	case p == nil:
		return -1
	default:
		return 1
	}
}

func compareSegment(a, b *KPath) int {
	switch {
	case a.Field != nil && b.Field != nil:
		return cmp.Compare(*a.Field, *b.Field)
	case a.Index != nil && b.Index != nil:
		return cmp.Compare(*a.Index, *b.Index)
	case a.Field != nil:
		return -1
	default:
		return 1
	}
}
