package token

import (
	"strings"
)

type LineType int

const (
	SkipLine LineType = iota
	AssignLine
	SizeLine
)

func (t LineType) String() string {
	switch t {
	case SkipLine:
		return "skip"
	case AssignLine:
		return "assign"
	case SizeLine:
		return "size"
	default:
		return "<unknown line type>"
	}
}

const (
	// BeginMarker starts the line opening a protocol section. It is
	// followed by key=value attributes and a closing "###".
	BeginMarker = "### ASCCONV BEGIN"
	// EndMarker is the whole line closing a protocol section.
	EndMarker = "### ASCCONV END ###"

	// AttrSegment marks key segments carrying metadata about the
	// preceding path rather than data.
	AttrSegment = "__attribute__"
	// SizeSuffix ends keys which declare the length of an array.
	SizeSuffix = "." + AttrSegment + ".size"
)

// Line is one classified line of body text.
//
// For AssignLine, Key and Value hold the trimmed left and right hand
// sides. For SizeLine, Key holds the key of the array being sized (the
// key without SizeSuffix) and Value the declared length token.
type Line struct {
	Type  LineType
	Key   string
	Value string
	Pos   *Pos
}

// SplitLine strips comments from raw and classifies what remains.
// lineNo is the 1-based line number used in errors, delim the string
// delimiter in effect.
func SplitLine(raw string, lineNo int, delim string) (*Line, error) {
	pos := &Pos{Line: lineNo, Text: raw}
	res := &Line{Pos: pos}
	s := raw
	if i := scan(s, delim, '#'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return res, nil
	}
	eq := scan(s, delim, '=')
	if eq < 0 {
		return nil, GrammarErr("missing '='", pos)
	}
	key := strings.TrimSpace(s[:eq])
	val := strings.TrimSpace(s[eq+1:])
	if key == "" {
		return nil, GrammarErr("missing key", pos)
	}
	if !isAttrKey(key) {
		res.Type = AssignLine
		res.Key = key
		res.Value = val
		return res, nil
	}
	if prefix, ok := strings.CutSuffix(key, SizeSuffix); ok && !isAttrKey(prefix) && prefix != "" {
		res.Type = SizeLine
		res.Key = prefix
		res.Value = val
		return res, nil
	}
	// other attribute lines carry nothing the tree represents.
	return res, nil
}

func isAttrKey(key string) bool {
	for seg := range strings.SplitSeq(key, ".") {
		if seg == AttrSegment {
			return true
		}
	}
	return false
}

// scan returns the index of the first occurrence of stop in s which is
// neither inside a quoted value nor escaped by a backslash, or -1.
func scan(s, delim string, stop byte) int {
	closer := ""
	for i := 0; i < len(s); i++ {
		if closer != "" {
			if strings.HasPrefix(s[i:], closer) {
				i += len(closer) - 1
				closer = ""
			}
			continue
		}
		c := s[i]
		switch {
		case c == '\\':
			i++
		case c == stop:
			return i
		case delim != "" && strings.HasPrefix(s[i:], delim):
			closer = delim
			i += len(delim) - 1
		case c == '"':
			closer = `"`
		}
	}
	return -1
}
