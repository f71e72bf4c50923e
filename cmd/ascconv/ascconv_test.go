package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/ascconv/detect"
	"github.com/signadot/ascconv/eval"
	"github.com/signadot/ascconv/format"
	"github.com/signadot/ascconv/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc(t *testing.T, file string) (*MainConfig, *parse.Document) {
	t.Helper()
	cfg := &MainConfig{}
	doc, err := readDoc(cfg, nil, file)
	require.NoError(t, err)
	return cfg, doc
}

func TestReadDocStdin(t *testing.T) {
	cfg := &MainConfig{Delim: "'"}
	doc, err := readDoc(cfg, strings.NewReader("a = 'x'\n"), "-")
	require.NoError(t, err)
	assert.Equal(t, "x", doc.Root.Values[0].String)

	_, err = readDoc(cfg, nil, "testdata/nope.asc")
	assert.Error(t, err)
	_, err = readDoc(cfg, strings.NewReader("a[ = 1\n"), "-")
	assert.ErrorIs(t, err, parse.ErrParse)
}

func TestViewDoc(t *testing.T) {
	main, doc := testDoc(t, "testdata/a.asc")
	cfg := &ViewConfig{MainConfig: main, Section: true}
	buf := &bytes.Buffer{}
	require.NoError(t, viewDoc(cfg, buf, doc))
	want := `### ASCCONV BEGIN object=MrProtDataImpl@MrProtocolData version=41340006 ###
tProtocolName = ""t1_mprage_sag""
sSliceArray.asSlice[0].dThickness = 2.5
sSliceArray.lSize = 1
ScanningSequence = ""GR""
lAverages = 1
### ASCCONV END ###
`
	assert.Equal(t, want, buf.String())

	main.J = true
	main.WireOut = true
	buf.Reset()
	require.NoError(t, viewDoc(&ViewConfig{MainConfig: main}, buf, doc))
	assert.Equal(t, `{"tProtocolName":"t1_mprage_sag","sSliceArray":{"asSlice":[{"dThickness":2.5}],"lSize":1},"ScanningSequence":"GR","lAverages":1}`+"\n", buf.String())
}

func TestGetDoc(t *testing.T) {
	cfg, doc := testDoc(t, "testdata/a.asc")
	buf := &bytes.Buffer{}
	require.NoError(t, getDoc(cfg, buf, doc, "sSliceArray.asSlice[0]"))
	assert.Equal(t, "sSliceArray.asSlice[0].dThickness = 2.5\n", buf.String())

	assert.Error(t, getDoc(cfg, buf, doc, "sSliceArray.nope"))
}

func TestAttrsDoc(t *testing.T) {
	cfg, doc := testDoc(t, "testdata/a.asc")
	buf := &bytes.Buffer{}
	require.NoError(t, attrsDoc(cfg, buf, doc))
	assert.Equal(t, "object=MrProtDataImpl@MrProtocolData\nversion=41340006\n", buf.String())

	f := format.JSONFormat
	cfg.OutFormat = &f
	cfg.WireOut = true
	buf.Reset()
	require.NoError(t, attrsDoc(cfg, buf, doc))
	assert.Equal(t, `{"object":"MrProtDataImpl@MrProtocolData","version":"41340006"}`+"\n", buf.String())
}

func TestEvalDoc(t *testing.T) {
	main, doc := testDoc(t, "testdata/a.asc")
	cfg := &EvalConfig{MainConfig: main, Env: eval.Env{}}
	_, err := envOptTypeFunc(cfg.Env)(nil, "n=3")
	require.NoError(t, err)
	_, err = envOptTypeFunc(cfg.Env)(nil, "novalue")
	assert.Error(t, err)

	tests := map[string]string{
		`sSliceArray.asSlice[0].dThickness * n`: "7.5\n",
		`tProtocolName`:                         "t1_mprage_sag\n",
		`attrs.version`:                         "41340006\n",
		`lAverages > 0`:                         "true\n",
	}
	for in, want := range tests {
		buf := &bytes.Buffer{}
		require.NoError(t, evalDoc(cfg, buf, doc, in), in)
		assert.Equal(t, want, buf.String(), in)
	}
}

func TestDiffDocs(t *testing.T) {
	main, a := testDoc(t, "testdata/a.asc")
	_, b := testDoc(t, "testdata/b.asc")
	cfg := &DiffConfig{MainConfig: main}
	buf := &bytes.Buffer{}
	differs, err := diffDocs(cfg, buf, a, b)
	require.NoError(t, err)
	assert.True(t, differs)
	assert.Equal(t, "~ lAverages: 1 -> 2\n~ tProtocolName: \"t1_mprage_[-sag-]{+tra+}\"\n", buf.String())

	buf.Reset()
	differs, err = diffDocs(cfg, buf, a, a)
	require.NoError(t, err)
	assert.False(t, differs)
	assert.Empty(t, buf.String())

	cfg.Quiet = true
	differs, err = diffDocs(cfg, buf, a, b)
	require.NoError(t, err)
	assert.True(t, differs)
	assert.Empty(t, buf.String())
}

func TestPatchDoc(t *testing.T) {
	main, doc := testDoc(t, "testdata/a.asc")
	cfg := &PatchConfig{MainConfig: main}
	apply, err := patchFunc(cfg, []byte(`[{"op": "replace", "path": "/lAverages", "value": 4}]`))
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, patchDoc(cfg, buf, doc, apply))
	back, err := parse.ParseString(buf.String())
	require.NoError(t, err)
	v, err := back.Root.GetKPath("lAverages")
	require.NoError(t, err)
	assert.Equal(t, int64(4), *v.Int64)
	assert.Equal(t, doc.Attrs, back.Attrs)

	cfg.Merge = true
	apply, err = patchFunc(cfg, []byte(`{"sSliceArray": null}`))
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, patchDoc(cfg, buf, doc, apply))
	assert.NotContains(t, buf.String(), "sSliceArray")

	cfg.Merge = false
	_, err = patchFunc(cfg, []byte(`{`))
	assert.Error(t, err)
}

func TestDetectDoc(t *testing.T) {
	main, doc := testDoc(t, "testdata/a.asc")
	cfg := &DetectConfig{MainConfig: main, Modality: "mr"}
	table, err := detect.LoadTable([]byte("mr:\n  epi:\n    ScanningSequence: EP\n  gre:\n    ScanningSequence: GR\n"))
	require.NoError(t, err)
	det := detect.New(table)
	got, err := detectDoc(cfg, det, doc)
	require.NoError(t, err)
	assert.Equal(t, "gre", got)

	cfg.KPaths = "ScanningSequence, lAverages"
	assert.Equal(t, []string{"ScanningSequence", "lAverages"}, cfg.kpaths())
	got, err = detectDoc(cfg, det, doc)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	buf := &bytes.Buffer{}
	require.NoError(t, listTable(buf, det))
	assert.Equal(t, "mr:\n\t- epi\n\t- gre\n", buf.String())
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, count())
	assert.Equal(t, 2, count(true, false, true))
}
