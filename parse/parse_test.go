package parse

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/format"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/token"

	"github.com/google/go-cmp/cmp"
)

func obj(kvs ...ir.KeyVal) *ir.Node {
	return ir.FromKeyVals(kvs)
}

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: k, Val: v}
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

func ints(vs ...int64) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromInt(v)
	}
	return ir.FromSlice(res)
}

func asJSON(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeFormat(format.JSONFormat))
}

type bodyTest struct {
	name string
	in   string
	want *ir.Node
}

func TestParseBody(t *testing.T) {
	tests := []bodyTest{
		{
			name: "empty",
			in:   "",
			want: obj(),
		},
		{
			name: "declared size is not a length",
			in: "sWipMemBlock.alFree.__attribute__.size\t = \t64\n" +
				"sWipMemBlock.alFree[0]\t = \t2\n" +
				"sWipMemBlock.alFree[4]\t = \t1\n" +
				"sWipMemBlock.alFree[5]\t = \t1\n",
			want: obj(kv("sWipMemBlock", obj(kv("alFree", arr(
				ir.FromInt(2), ir.Absent(), ir.Absent(), ir.Absent(), ir.FromInt(1), ir.FromInt(1),
			))))),
		},
		{
			name: "hex characters",
			in: "sComment.0\t = \t0x41\n" +
				"sComment.1\t = \t0x78\n" +
				"sComment.2\t = \t0x43\n" +
				"sComment.3\t = \t0x61\n",
			want: obj(kv("sComment", ints(65, 120, 67, 97))),
		},
		{
			name: "one based array",
			in:   "anAsc[1] = 1\nanAsc[2] = 2\n",
			want: obj(kv("anAsc", arr(ir.Absent(), ir.FromInt(1), ir.FromInt(2)))),
		},
		{
			name: "delimited string",
			in:   `tProtocolName = ""t1_mprage_sag""`,
			want: obj(kv("tProtocolName", ir.FromString("t1_mprage_sag"))),
		},
		{
			name: "quoted string",
			in:   `test = "hello"`,
			want: obj(kv("test", ir.FromString("hello"))),
		},
		{
			name: "empty string",
			in:   `t = ""`,
			want: obj(kv("t", ir.FromString(""))),
		},
		{
			name: "comment and equals inside string",
			in:   `t = ""a=b # not a comment"" # a comment`,
			want: obj(kv("t", ir.FromString("a=b # not a comment"))),
		},
		{
			name: "numbers",
			in: "dCor = -20.03015269\n" +
				"flSens = 8.21e-05\n" +
				"lOff = -7806\n" +
				"lPlus = +3\n" +
				"dExp = 1E3\n" +
				"ucMode = 0X1f\n" +
				"lNeg = -0x10\n",
			want: obj(
				kv("dCor", ir.FromFloat(-20.03015269)),
				kv("flSens", ir.FromFloat(8.21e-05)),
				kv("lOff", ir.FromInt(-7806)),
				kv("lPlus", ir.FromInt(3)),
				kv("dExp", ir.FromFloat(1000)),
				kv("ucMode", ir.FromInt(31)),
				kv("lNeg", ir.FromInt(-16)),
			),
		},
		{
			name: "beyond int64",
			in: "ulMask = 0xFFFFFFFFFFFFFFFF\n" +
				"ulBig = 9223372036854775808\n" +
				"lMax = 0x7FFFFFFFFFFFFFFF\n",
			want: obj(
				kv("ulMask", ir.FromFloat(18446744073709551615)),
				kv("ulBig", ir.FromFloat(9223372036854775808)),
				kv("lMax", ir.FromInt(9223372036854775807)),
			),
		},
		{
			name: "float keeps its kind",
			in:   "d = 2.0",
			want: obj(kv("d", ir.FromFloat(2))),
		},
		{
			name: "last write wins in place",
			in:   "a = 1\nb = 2\na = 3\n",
			want: obj(kv("a", ir.FromInt(3)), kv("b", ir.FromInt(2))),
		},
		{
			name: "nested arrays",
			in:   "m[1][2] = 5\nm[0][0] = 1\n",
			want: obj(kv("m", arr(
				ints(1),
				arr(ir.Absent(), ir.Absent(), ir.FromInt(5)),
			))),
		},
		{
			name: "objects in arrays",
			in: "asSlice[0].dThickness = 2.5\n" +
				"asSlice[1].dThickness = 3.5\n" +
				"asSlice[0].sPosition.dTra = -12\n",
			want: obj(kv("asSlice", arr(
				obj(kv("dThickness", ir.FromFloat(2.5)), kv("sPosition", obj(kv("dTra", ir.FromInt(-12))))),
				obj(kv("dThickness", ir.FromFloat(3.5))),
			))),
		},
		{
			name: "comments blanks and attributes",
			in: "# leading comment\n" +
				"\n" +
				"   \t\n" +
				"a = 1 # trailing\n" +
				"a.__attribute__.null = 1\n" +
				"b.__attribute__.size.__attribute__.size = 2\n" +
				"c = 2\r\n",
			want: obj(kv("a", ir.FromInt(1)), kv("c", ir.FromInt(2))),
		},
		{
			name: "absent slot filled later",
			in:   "a[2] = 1\na[0] = 2\n",
			want: obj(kv("a", arr(ir.FromInt(2), ir.Absent(), ir.FromInt(1)))),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBody([]byte(tc.in))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if !ir.Equal(tc.want, got) {
				t.Errorf("mismatch (-want +got):\n%s", cmp.Diff(asJSON(tc.want), asJSON(got)))
			}
		})
	}
}

func TestParseSample(t *testing.T) {
	d, err := os.ReadFile("testdata/sample.asc")
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	wantAttrs := Attrs{
		{Key: "object", Value: "MrProtDataImpl@MrProtocolData"},
		{Key: "version", Value: "41340006"},
		{Key: "converter", Value: "%MEASCONST%/ConverterList/Prot_Converter.txt"},
	}
	if diff := cmp.Diff(wantAttrs, doc.Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}

	wantKeys := []string{
		"ulVersion", "tSequenceFileName", "tProtocolName", "tReferenceImage0",
		"ucScanRegionPosValid", "sProtConsistencyInfo", "sGRADSPEC",
		"sSliceArray", "asCoilSelectMeas", "sWipMemBlock", "sComment",
		"lTotalScanTimeSec",
	}
	if diff := cmp.Diff(wantKeys, doc.Root.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	slices, err := doc.Root.GetKPath("sSliceArray")
	if err != nil {
		t.Fatal(err)
	}
	wantSliceKeys := []string{"asSlice", "anAsc", "anPos", "lSize", "lConc", "ucMode", "sTSat"}
	if diff := cmp.Diff(wantSliceKeys, slices.Keys()); diff != "" {
		t.Errorf("sSliceArray keys mismatch (-want +got):\n%s", diff)
	}

	leaves := []struct {
		kp   string
		want *ir.Node
	}{
		{"ulVersion", ir.FromInt(51130001)},
		{"tSequenceFileName", ir.FromString(`%SiemensSeq%\ep2d_diff`)},
		{"tProtocolName", ir.FromString("CBU+AF8-DTI+AF8-64D+AF8-1A")},
		{"ucScanRegionPosValid", ir.FromInt(1)},
		{"sProtConsistencyInfo.flNominalB0", ir.FromFloat(2.89362)},
		{"sProtConsistencyInfo.flGMax", ir.FromInt(26)},
		{"sGRADSPEC.asGPAData[0].lOffsetX", ir.FromInt(-7806)},
		{"sGRADSPEC.asGPAData[0].flSensitivityX", ir.FromFloat(8.21e-05)},
		{"sSliceArray.asSlice[0].sPosition.dCor", ir.FromFloat(-20.03015269)},
		{"sSliceArray.asSlice[1].sPosition.dTra", ir.FromFloat(33.33)},
		{"sSliceArray.asSlice[1].dPhaseFOV", ir.FromInt(230)},
		{"sSliceArray.anAsc[0]", ir.Absent()},
		{"sSliceArray.anAsc[3]", ir.FromInt(3)},
		{"sSliceArray.ucMode", ir.FromInt(4)},
		{"asCoilSelectMeas[0].tNucleus", ir.FromString("1H")},
		{"asCoilSelectMeas[0].asList[2].sCoilElementID.tElement", ir.FromString("H3S")},
		{"asCoilSelectMeas[0].asList[2].lRxChannelConnected", ir.FromInt(3)},
		{"sWipMemBlock.alFree", arr(ir.FromInt(2), ir.Absent(), ir.Absent(), ir.Absent(), ir.FromInt(1))},
		{"sWipMemBlock.adFree", arr(ir.Absent(), ir.Absent(), ir.FromFloat(0.5))},
		{"sComment", ints(65, 120)},
		{"sComment.1", ir.FromInt(120)},
		{"lTotalScanTimeSec", ir.FromInt(402)},
	}
	for _, l := range leaves {
		got, err := doc.Root.GetKPath(l.kp)
		if err != nil {
			t.Errorf("%s: %v", l.kp, err)
			continue
		}
		if !ir.Equal(l.want, got) {
			t.Errorf("%s: want %s got %s", l.kp, asJSON(l.want), asJSON(got))
		}
	}
	asList, err := doc.Root.GetKPath("asCoilSelectMeas[0].asList")
	if err != nil {
		t.Fatal(err)
	}
	if len(asList.Values) != 3 {
		t.Errorf("asList: got %d elements, want 3", len(asList.Values))
	}
}

func TestParseIdempotent(t *testing.T) {
	d, err := os.ReadFile("testdata/sample.asc")
	if err != nil {
		t.Fatal(err)
	}
	orig := string(d)
	a, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != orig {
		t.Fatal("input modified")
	}
	if a.Root == b.Root {
		t.Fatal("parses share a tree")
	}
	if !ir.Equal(a.Root, b.Root) {
		t.Errorf("mismatch (-a +b):\n%s", cmp.Diff(asJSON(a.Root), asJSON(b.Root)))
	}
}

func TestParseExpandSizes(t *testing.T) {
	in := "sWipMemBlock.alFree.__attribute__.size = 64\n" +
		"sWipMemBlock.alFree[0] = 2\n" +
		"sWipMemBlock.alFree[4] = 1\n" +
		"sWipMemBlock.alFree[5] = 1\n" +
		"short[3] = 1\n" +
		"short.__attribute__.size = 2\n" +
		"unset.a.__attribute__.size = 3\n"
	got, err := ParseBody([]byte(in), ExpandSizes())
	if err != nil {
		t.Fatal(err)
	}
	alFree, err := got.GetKPath("sWipMemBlock.alFree")
	if err != nil {
		t.Fatal(err)
	}
	if len(alFree.Values) != 64 {
		t.Errorf("alFree: got length %d, want 64", len(alFree.Values))
	}
	if alFree.Values[63].Type != ir.AbsentType || *alFree.Values[5].Int64 != 1 {
		t.Errorf("alFree: unexpected contents %s", asJSON(alFree))
	}
	short, err := got.GetKPath("short")
	if err != nil {
		t.Fatal(err)
	}
	if len(short.Values) != 4 {
		t.Errorf("short: got length %d, want 4", len(short.Values))
	}
	unset, err := got.GetKPath("unset.a")
	if err != nil {
		t.Fatal(err)
	}
	want := arr(ir.Absent(), ir.Absent(), ir.Absent())
	if !ir.Equal(want, unset) {
		t.Errorf("unset.a: got %s", asJSON(unset))
	}

	// without the option, a size for an unassigned array builds nothing
	got, err = ParseBody([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := got.GetKPath("unset"); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("unset: got %v, want ErrNotFound", err)
	}
}

type errTest struct {
	in   string
	want error
	line int
}

func TestParseErrors(t *testing.T) {
	tests := []errTest{
		{in: "a = ", want: ErrDecode, line: 1},
		{in: "a = 1\nb 2", want: ErrGrammar, line: 2},
		{in: "= 1", want: ErrGrammar, line: 1},
		{in: "a = 1x", want: ErrDecode, line: 1},
		{in: "a = 0xZZ", want: ErrDecode, line: 1},
		{in: "a = 1.2.3", want: ErrDecode, line: 1},
		{in: "a = 99999999999999999999", want: ErrDecode, line: 1},
		{in: "a[x] = 1", want: ErrPath, line: 1},
		{in: "a[-1] = 1", want: ErrPath, line: 1},
		{in: "a[1 = 1", want: ErrPath, line: 1},
		{in: "a..b = 1", want: ErrPath, line: 1},
		{in: "0.a = 1", want: ErrPath, line: 1},
		{in: "a[2000000] = 1", want: ErrPath, line: 1},
		{in: "a = 1\na.b = 2", want: ErrConflict, line: 2},
		{in: "a.b = 1\na[0] = 2", want: ErrConflict, line: 2},
		{in: "a[0] = 1\n\na.b = 2", want: ErrConflict, line: 3},
		{in: "a.b = 1\na = 2", want: ErrConflict, line: 2},
		{in: "a.0 = 1\na[0].b = 2", want: ErrConflict, line: 2},
		{in: "a = 1\na.__attribute__.size = 3", want: ErrConflict, line: 2},
		{in: "a.__attribute__.size = 3\na.b = 1", want: ErrConflict, line: 1},
		{in: "a.__attribute__.size = x", want: ErrDecode, line: 1},
		{in: "a.__attribute__.size = 1.5", want: ErrDecode, line: 1},
		{in: "a.__attribute__.size = -1", want: ErrDecode, line: 1},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseBody([]byte(tc.in))
			if err == nil {
				t.Fatalf("expected error, got %s", asJSON(got))
			}
			if got != nil {
				t.Errorf("got a tree with the error")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("%v does not wrap ErrParse", err)
			}
			var lineErr *token.LineErr
			if !errors.As(err, &lineErr) {
				t.Fatalf("%v is not a *token.LineErr", err)
			}
			if lineErr.Pos.Line != tc.line {
				t.Errorf("got line %d, want %d", lineErr.Pos.Line, tc.line)
			}
		})
	}
}

func TestParseErrorLineInSection(t *testing.T) {
	in := "preamble\n" + BeginMarker + " version=1 ###\na = 1\nb = \n" + EndMarker + "\n"
	_, err := ParseString(in)
	var lineErr *token.LineErr
	if !errors.As(err, &lineErr) {
		t.Fatalf("got %v, want a *token.LineErr", err)
	}
	if lineErr.Pos.Line != 4 {
		t.Errorf("got line %d, want 4", lineErr.Pos.Line)
	}
	if lineErr.Pos.Text != "b = " {
		t.Errorf("got text %q", lineErr.Pos.Text)
	}
}

func TestParseLenient(t *testing.T) {
	in := "a = 1\n" +
		"b = oops\n" +
		"c.d = 2\n" +
		"c = 3\n" +
		"e[0] = 4\n"
	var errs []error
	got, err := ParseBody([]byte(in), Lenient(func(err error) {
		errs = append(errs, err)
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	lines := []int{}
	for _, e := range errs {
		var lineErr *token.LineErr
		if !errors.As(e, &lineErr) {
			t.Fatalf("%v is not a *token.LineErr", e)
		}
		lines = append(lines, lineErr.Pos.Line)
	}
	if diff := cmp.Diff([]int{2, 4}, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	want := obj(
		kv("a", ir.FromInt(1)),
		kv("c", obj(kv("d", ir.FromInt(2)))),
		kv("e", ints(4)),
	)
	if !ir.Equal(want, got) {
		t.Errorf("mismatch (-want +got):\n%s", cmp.Diff(asJSON(want), asJSON(got)))
	}

	if _, err := ParseBody([]byte(in), Lenient(nil)); err != nil {
		t.Errorf("nil reporter: %v", err)
	}
}

func TestParseSections(t *testing.T) {
	bare := "a = 1\n"
	doc, err := ParseString(bare)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Attrs) != 0 {
		t.Errorf("bare body: got attrs %v", doc.Attrs)
	}
	if _, err := ParseString(bare, RequireSection()); !errors.Is(err, ErrSection) {
		t.Errorf("got %v, want ErrSection", err)
	}

	marked := "garbage before\n" +
		BeginMarker + " version=2 ###\n" +
		"a = 1\n" +
		EndMarker + "\n" +
		"garbage after\n" +
		BeginMarker + " ###\n" +
		"b = 2\n" +
		EndMarker + "\n"
	doc, err = ParseString(marked, RequireSection())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a"}, doc.Root.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := doc.Attrs.Get("version"); v != "2" {
		t.Errorf("version: got %q", v)
	}

	unclosed := BeginMarker + " ###\na = 1\nb = 2\n"
	doc, err = ParseString(unclosed)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, doc.Root.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitSections(t *testing.T) {
	sec := SplitSections("x\ny\n  " + BeginMarker + " a=b ###\nc = 1\n" + EndMarker)
	if !sec.Found || !sec.Closed {
		t.Errorf("found=%t closed=%t", sec.Found, sec.Closed)
	}
	if sec.BodyLine != 4 {
		t.Errorf("body line: got %d, want 4", sec.BodyLine)
	}
	if sec.Body != "c = 1" {
		t.Errorf("body: got %q", sec.Body)
	}
	if sec.Header != BeginMarker+" a=b ###" {
		t.Errorf("header: got %q", sec.Header)
	}
	sec = SplitSections("c = 1")
	if sec.Found || sec.BodyLine != 1 || sec.Body != "c = 1" {
		t.Errorf("unexpected %+v", sec)
	}
}

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		in   string
		want Attrs
	}{
		{
			in: "### ASCCONV BEGIN object=MrProtDataImpl@MrProtocolData version=41340006 converter=%MEASCONST%/ConverterList/Prot_Converter.txt ###",
			want: Attrs{
				{Key: "object", Value: "MrProtDataImpl@MrProtocolData"},
				{Key: "version", Value: "41340006"},
				{Key: "converter", Value: "%MEASCONST%/ConverterList/Prot_Converter.txt"},
			},
		},
		{in: "### ASCCONV BEGIN ###", want: Attrs{}},
		{in: "", want: Attrs{}},
		{in: "### something else a=b ###", want: Attrs{}},
		{
			in:   "### ASCCONV BEGIN lone =x a= b=c=d ###",
			want: Attrs{{Key: "a", Value: ""}, {Key: "b", Value: "c=d"}},
		},
	}
	for _, tc := range tests {
		got := ParseAttrs(tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
	as := ParseAttrs(tests[0].in)
	if diff := cmp.Diff([]string{"object", "version", "converter"}, as.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if as.Map()["version"] != "41340006" {
		t.Errorf("map: %v", as.Map())
	}
	if !strings.HasPrefix(as.String(), "object=MrProtDataImpl@MrProtocolData version=") {
		t.Errorf("string: %q", as.String())
	}
}

func TestStringDelim(t *testing.T) {
	got, err := ParseBody([]byte("a = 'abc'\nb = \"q\"\nc = 'it''s'"), StringDelim("'"))
	if err != nil {
		t.Fatal(err)
	}
	want := obj(
		kv("a", ir.FromString("abc")),
		kv("b", ir.FromString("q")),
		kv("c", ir.FromString("it''s")),
	)
	if !ir.Equal(want, got) {
		t.Errorf("mismatch (-want +got):\n%s", cmp.Diff(asJSON(want), asJSON(got)))
	}
}

func TestMaxIndex(t *testing.T) {
	if _, err := ParseBody([]byte("a[3] = 1"), MaxIndex(3)); err != nil {
		t.Errorf("a[3]: %v", err)
	}
	if _, err := ParseBody([]byte("a[4] = 1"), MaxIndex(3)); !errors.Is(err, ErrPath) {
		t.Errorf("a[4]: got %v, want ErrPath", err)
	}
	if _, err := ParseBody([]byte("a.__attribute__.size = 5"), MaxIndex(3)); !errors.Is(err, ErrDecode) {
		t.Errorf("size 5: got %v, want ErrDecode", err)
	}
}
