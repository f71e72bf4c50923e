package token

import (
	"strings"
)

type ValueType int

const (
	VInteger ValueType = iota
	VHex
	VFloat
	VString
)

func (t ValueType) String() string {
	switch t {
	case VInteger:
		return "integer"
	case VHex:
		return "hex"
	case VFloat:
		return "float"
	case VString:
		return "string"
	default:
		return "<unknown value type>"
	}
}

// DefaultStringDelim opens and closes string values in exported
// protocols.
const DefaultStringDelim = `""`

// ClassifyValue determines how the right hand side raw of an assignment
// should be decoded. For strings the returned text is the interior of the
// delimiters; otherwise it is the numeral, hex numerals without their
// 0x prefix. ok is false for an empty token. Integers which do not fit
// an int64 are decoded as floats by the parser.
func ClassifyValue(raw, delim string) (t ValueType, text string, ok bool) {
	if raw == "" {
		return 0, "", false
	}
	if s, ok := unquote(raw, delim); ok {
		return VString, s, true
	}
	if s, ok := unquote(raw, `"`); ok {
		return VString, s, true
	}
	if h, ok := hexDigits(raw); ok {
		return VHex, h, true
	}
	if strings.ContainsAny(raw, ".eE") {
		return VFloat, raw, true
	}
	return VInteger, raw, true
}

func unquote(raw, delim string) (string, bool) {
	if delim == "" || len(raw) < 2*len(delim) {
		return "", false
	}
	if !strings.HasPrefix(raw, delim) || !strings.HasSuffix(raw, delim) {
		return "", false
	}
	return raw[len(delim) : len(raw)-len(delim)], true
}

// hexDigits returns the sign and digits following a 0x or 0X prefix.
func hexDigits(raw string) (string, bool) {
	sign := ""
	s := raw
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return "", false
	}
	return sign + s[2:], true
}
