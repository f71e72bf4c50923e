package kpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/signadot/ascconv/token"
)

// KPath is a key path: a chain of segments, each either an object field
// or an array index.
//
//	"sSliceArray.asSlice[3].dPhaseFOV" → Field sSliceArray, Field asSlice, Index 3, Field dPhaseFOV
//	"sComment.2"                      → Field sComment, Index 2
type KPath struct {
	Field *string // Object field name
	Index *int    // Array index
	Next  *KPath  // Next segment in path (nil for leaf)
}

// Field returns a single field segment.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single index segment.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// IsField reports whether the first segment of p is a field.
func (p *KPath) IsField() bool { return p != nil && p.Field != nil }

// IsIndex reports whether the first segment of p is an index.
func (p *KPath) IsIndex() bool { return p != nil && p.Index != nil }

// String returns the canonical representation of p. Index segments are
// always rendered in brackets, so "sComment.2" renders as "sComment[2]".
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Field)
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the representation of the first segment only.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return *p.Field
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Parse parses a key as written on the left hand side of an assignment.
//
// Keys are dot separated. Each dotted segment is a field name optionally
// followed by one or more bracketed indices ("alFree[4]", "m[1][2]"), or a
// bare non-negative integer, which always denotes an index ("sComment.0").
// The first segment must be a field.
//
// Returns an error wrapping token.ErrPath if the key is malformed.
func Parse(key string) (*KPath, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", token.ErrPath)
	}
	var head, tail *KPath
	add := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	for i, part := range strings.Split(key, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", token.ErrPath, key)
		}
		if isDigits(part) {
			if i == 0 {
				return nil, fmt.Errorf("%w: %q must begin with a field name", token.ErrPath, key)
			}
			idx, err := parseIndex(part)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", token.ErrPath, key, err)
			}
			add(Index(idx))
			continue
		}
		name, rest, bracket := strings.Cut(part, "[")
		if name == "" {
			return nil, fmt.Errorf("%w: index without field name in %q", token.ErrPath, key)
		}
		if err := checkName(name); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", token.ErrPath, key, err)
		}
		add(Field(name))
		if !bracket {
			continue
		}
		rest = "[" + rest
		for rest != "" {
			if rest[0] != '[' {
				return nil, fmt.Errorf("%w: unexpected %q after index in %q", token.ErrPath, rest, key)
			}
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unbalanced '[' in %q", token.ErrPath, key)
			}
			idx, err := parseIndex(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", token.ErrPath, key, err)
			}
			add(Index(idx))
			rest = rest[end+1:]
		}
	}
	return head, nil
}

// MustParse is like Parse but panics on error.
func MustParse(key string) *KPath {
	kp, err := Parse(key)
	if err != nil {
		panic(err)
	}
	return kp
}

func parseIndex(s string) (int, error) {
	if !isDigits(s) {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return i, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func checkName(name string) error {
	for _, r := range name {
		if r == ']' || r == '[' || unicode.IsSpace(r) {
			return fmt.Errorf("invalid field name %q", name)
		}
	}
	return nil
}
