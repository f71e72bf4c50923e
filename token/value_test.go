package token

import "testing"

type valueTest struct {
	in    string
	delim string
	typ   ValueType
	text  string
}

func TestClassifyValue(t *testing.T) {
	vts := []valueTest{
		{in: `51130001`, typ: VInteger, text: "51130001"},
		{in: `-3`, typ: VInteger, text: "-3"},
		{in: `0x41`, typ: VHex, text: "41"},
		{in: `0X1e`, typ: VHex, text: "1e"},
		{in: `-0x10`, typ: VHex, text: "-10"},
		{in: `2.5`, typ: VFloat, text: "2.5"},
		{in: `-20.03015269`, typ: VFloat, text: "-20.03015269"},
		{in: `1e-3`, typ: VFloat, text: "1e-3"},
		{in: `""CBU+AF8-DTI""`, typ: VString, text: "CBU+AF8-DTI"},
		{in: `""""`, typ: VString, text: ""},
		{in: `"hello"`, typ: VString, text: "hello"},
		{in: `""`, typ: VString, text: ""},
		{in: `'x'`, delim: `'`, typ: VString, text: "x"},
		{in: `""a""`, delim: `'`, typ: VString, text: `"a"`},
	}
	for _, vt := range vts {
		delim := vt.delim
		if delim == "" {
			delim = DefaultStringDelim
		}
		typ, text, ok := ClassifyValue(vt.in, delim)
		if !ok {
			t.Errorf("%q: not classified", vt.in)
			continue
		}
		if typ != vt.typ || text != vt.text {
			t.Errorf("%q: got %s %q want %s %q", vt.in, typ, text, vt.typ, vt.text)
		}
	}
	if _, _, ok := ClassifyValue("", DefaultStringDelim); ok {
		t.Errorf("empty token classified")
	}
}
