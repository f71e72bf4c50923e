package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/ir"
	"github.com/signadot/ascconv/parse"
	"github.com/signadot/ascconv/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	apply, err := patchFunc(cfg, d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(i int, doc *parse.Document) error {
		if err := separate(cc.Out, i); err != nil {
			return err
		}
		return patchDoc(cfg, cc.Out, doc, apply)
	})
}

func patchFunc(cfg *PatchConfig, d []byte) (func(*ir.Node) (*ir.Node, error), error) {
	if cfg.Merge {
		return func(doc *ir.Node) (*ir.Node, error) {
			return patch.Merge(doc, d)
		}, nil
	}
	p, err := patch.Decode(d)
	if err != nil {
		return nil, err
	}
	return p.Apply, nil
}

func patchDoc(cfg *PatchConfig, w io.Writer, doc *parse.Document, apply func(*ir.Node) (*ir.Node, error)) error {
	res, err := apply(doc.Root)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	if len(doc.Attrs) > 0 {
		opts = append(opts, encode.EncodeSection(doc.Attrs.String()))
	}
	if err := encode.Encode(res, w, opts...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
