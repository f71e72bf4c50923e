package main

import (
	"fmt"
	"io"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/parse"

	"github.com/scott-cotton/cli"
)

func attrs(cfg *AttrsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Attrs.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(i int, doc *parse.Document) error {
		if err := separate(cc.Out, i); err != nil {
			return err
		}
		return attrsDoc(cfg.MainConfig, cc.Out, doc)
	})
}

// attrsDoc writes one key=value line per attribute, or an object under
// -j and -y.
func attrsDoc(cfg *MainConfig, w io.Writer, doc *parse.Document) error {
	opts := cfg.encOpts(w)
	if !encode.FormatFromOpts(opts...).IsASCCONV() {
		kvs := make([]ir.KeyVal, 0, len(doc.Attrs))
		for _, a := range doc.Attrs {
			kvs = append(kvs, ir.KeyVal{Key: a.Key, Val: ir.FromString(a.Value)})
		}
		return encode.Encode(ir.FromKeyVals(kvs), w, opts...)
	}
	for _, a := range doc.Attrs {
		if _, err := fmt.Fprintf(w, "%s=%s\n", a.Key, a.Value); err != nil {
			return err
		}
	}
	return nil
}
