package parse

import (
	"strings"
)

// Attr is one key=value pair of a begin marker line.
type Attr struct {
	Key, Value string
}

// Attrs holds header attributes in the order they appear.
type Attrs []Attr

// Get returns the value of the first attribute named key.
func (as Attrs) Get(key string) (string, bool) {
	for _, a := range as {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (as Attrs) Keys() []string {
	res := make([]string, len(as))
	for i, a := range as {
		res[i] = a.Key
	}
	return res
}

// Map returns the attributes as a map, later duplicates winning.
func (as Attrs) Map() map[string]string {
	res := make(map[string]string, len(as))
	for _, a := range as {
		res[a.Key] = a.Value
	}
	return res
}

func (as Attrs) String() string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = a.Key + "=" + a.Value
	}
	return strings.Join(parts, " ")
}

// ParseAttrs extracts the key=value tokens of a begin marker line such as
//
//	### ASCCONV BEGIN object=MrProtDataImpl@MrProtocolData version=41340006 ###
//
// Tokens without '=' or with an empty key are ignored. An empty or
// unrecognized header gives no attributes.
func ParseAttrs(header string) Attrs {
	s := strings.TrimSpace(header)
	s, ok := strings.CutPrefix(s, BeginMarker)
	if !ok {
		return Attrs{}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), markerClose)
	res := Attrs{}
	for _, tok := range strings.Fields(s) {
		k, v, ok := strings.Cut(tok, "=")
		if !ok || k == "" {
			continue
		}
		res = append(res, Attr{Key: k, Value: v})
	}
	return res
}
