package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/ascconv/encode"
	"github.com/signadot/ascconv/eval"
	"github.com/signadot/ascconv/format"
	"github.com/signadot/ascconv/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output json in compact format'"`

	A bool `cli:"name=a aliases=asc,ascconv desc='output in ascconv'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	Delim    string `cli:"name=delim desc='string value delimiter, default two double quotes'"`
	Expand   bool   `cli:"name=expand desc='pad arrays to their declared size'"`
	Lenient  bool   `cli:"name=lenient desc='skip malformed lines, reporting them on stderr'"`
	Require  bool   `cli:"name=require desc='fail on input without an ASCCONV BEGIN line'"`
	MaxIndex int    `cli:"name=maxIndex desc='largest array index accepted'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Delim != "" {
		res = append(res, parse.StringDelim(cfg.Delim))
	}
	if cfg.Expand {
		res = append(res, parse.ExpandSizes())
	}
	if cfg.Require {
		res = append(res, parse.RequireSection())
	}
	if cfg.MaxIndex > 0 {
		res = append(res, parse.MaxIndex(cfg.MaxIndex))
	}
	if cfg.Lenient {
		res = append(res, parse.Lenient(func(err error) {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}))
	}
	return res
}

func (cfg *MainConfig) outFormat() format.Format {
	var f format.Format
	switch {
	case cfg.A:
		f = format.ASCCONVFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Delim != "" {
		res = append(res, encode.StringDelim(cfg.Delim))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				// explicitly -color=false
				return res
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Sizes   bool `cli:"name=sizes desc='write array size attributes'"`
	Align   bool `cli:"name=align desc='align the = of assignments'"`
	Section bool `cli:"name=section desc='write the begin and end marker lines'"`

	View *cli.Command
}

func (cfg *ViewConfig) encOpts(w io.Writer, doc *parse.Document) []encode.EncodeOption {
	res := append(cfg.MainConfig.encOpts(w),
		encode.EncodeSizes(cfg.Sizes),
		encode.Align(cfg.Align))
	if cfg.Section {
		res = append(res, encode.EncodeSection(doc.Attrs.String()))
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type AttrsConfig struct {
	*MainConfig

	Attrs *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply a JSON merge patch instead of a JSON patch'"`

	Patch *cli.Command
}

type DetectConfig struct {
	*MainConfig
	Modality string `cli:"name=m aliases=modality desc='modality whose sequences are tried'"`
	Table    string `cli:"name=t aliases=table desc='sequence definition table (yaml)'"`
	KPaths   string `cli:"name=k aliases=kpaths desc='comma separated key paths to match, default those of each definition'"`
	List     bool   `cli:"name=l aliases=list desc='list modalities and sequences of the table'"`

	Detect *cli.Command
}

func (cfg *DetectConfig) kpaths() []string {
	if cfg.KPaths == "" {
		return nil
	}
	res := []string{}
	for _, kp := range strings.Split(cfg.KPaths, ",") {
		kp = strings.TrimSpace(kp)
		if kp != "" {
			res = append(res, kp)
		}
	}
	return res
}
