package main

import (
	"fmt"
	"strings"

	"github.com/signadot/ascconv/eval"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: ascconv/a, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ascconv").
		WithSynopsis("ascconv [opts] command [opts]").
		WithDescription("ascconv is a tool for working with ASCCONV protocol dumps.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ascconvMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			AttrsCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			DetectCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("parse protocol dumps and print them as ascconv, json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <kpath> [files]").
		WithDescription("print the value at a key path such as sSliceArray.asSlice[0].dThickness").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func AttrsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AttrsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Attrs, "attrs").
		WithAliases("a").
		WithSynopsis("attrs [files]").
		WithDescription("print the attributes of the ASCCONV BEGIN line").
		WithRun(func(cc *cli.Context, args []string) error {
			return attrs(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.Env{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "define a variable for the expression",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val [-e name2=val2]...] <expr> [files]").
		WithDescription("evaluate an expression against protocol dumps").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
		}
		node, err := eval.UnmarshalJSON([]byte(val))
		if err != nil {
			env[name] = val
			return 0, nil
		}
		env[name] = eval.ToAny(node)
		return 0, nil
	}
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <file1> <file2>").
		WithDescription("show the differing values of two protocol dumps, exit 1 if there are any").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [opts] <patch.json> [files]").
		WithDescription("apply a JSON patch to protocol dumps").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DetectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("detect").
		WithSynopsis("detect -t table.yaml -m modality [-k kpath,...] [files]").
		WithDescription("name the sequence of protocol dumps from a table of definitions").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return detectCmd(cfg, cc, args)
		})
	cfg.Detect = cmd
	return cmd
}
