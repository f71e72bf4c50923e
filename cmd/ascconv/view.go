package main

import (
	"fmt"
	"io"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(i int, doc *parse.Document) error {
		if err := separate(cc.Out, i); err != nil {
			return err
		}
		return viewDoc(cfg, cc.Out, doc)
	})
}

func viewDoc(cfg *ViewConfig, w io.Writer, doc *parse.Document) error {
	if err := encode.Encode(doc.Root, w, cfg.encOpts(w, doc)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
