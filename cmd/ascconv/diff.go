package main

import (
	"fmt"
	"io"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/libdiff"
	"github.com/signadot/ascconv/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	a, err := readDoc(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return err
	}
	differs, err := diffDocs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the changes from a to b, one per line in ASCCONV mode
// and as an object keyed by path under -j and -y.
func diffDocs(cfg *DiffConfig, w io.Writer, a, b *parse.Document) (bool, error) {
	changes := libdiff.Diff(a.Root, b.Root)
	if changes.Empty() || cfg.Quiet {
		return !changes.Empty(), nil
	}
	opts := cfg.encOpts(w)
	if !encode.FormatFromOpts(opts...).IsASCCONV() {
		return true, encode.Encode(changes.Node(), w, opts...)
	}
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return true, err
		}
	}
	return true, nil
}
