package main

import (
	"errors"
	"fmt"
	"io"
	"maps"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/eval"
	"github.com/signadot/ascconv/parse"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	input := args[0]
	return eachDoc(cfg.MainConfig, cc, args[1:], func(i int, doc *parse.Document) error {
		if err := separate(cc.Out, i); err != nil {
			return err
		}
		return evalDoc(cfg, cc.Out, doc, input)
	})
}

// evalDoc evaluates input with the document fields, the header
// attributes as "attrs" and the -e variables in scope.
func evalDoc(cfg *EvalConfig, w io.Writer, doc *parse.Document, input string) error {
	env := eval.Env{"attrs": doc.Attrs.Map()}
	maps.Copy(env, cfg.Env)
	res, err := eval.EvalNode(input, doc.Root, env)
	switch {
	case err == nil:
		opts := cfg.encOpts(w)
		if encode.FormatFromOpts(opts...).IsASCCONV() && res.Type.IsLeaf() {
			_, err = fmt.Fprintln(w, res.ScalarString())
			return err
		}
		return encode.Encode(res, w, opts...)
	case errors.Is(err, eval.ErrConvert):
		v, err := eval.Eval(input, doc.Root, env)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, v)
		return err
	default:
		return err
	}
}
