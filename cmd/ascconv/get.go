package main

import (
	"fmt"
	"io"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	kp := args[0]
	return eachDoc(cfg.MainConfig, cc, args[1:], func(i int, doc *parse.Document) error {
		if err := separate(cc.Out, i); err != nil {
			return err
		}
		return getDoc(cfg.MainConfig, cc.Out, doc, kp)
	})
}

// getDoc writes the value at kp. ASCCONV output keeps the full key path
// of each assignment.
func getDoc(cfg *MainConfig, w io.Writer, doc *parse.Document, kp string) error {
	node, err := doc.Root.GetKPath(kp)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	if encode.FormatFromOpts(opts...).IsASCCONV() {
		opts = append(opts, encode.KeyPrefix(node.KPath()))
	}
	return encode.Encode(node, w, opts...)
}
