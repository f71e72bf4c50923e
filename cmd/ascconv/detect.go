package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ascconv/detect"
	"github.com/signadot/ascconv/parse"

	"github.com/scott-cotton/cli"
)

func detectCmd(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Table == "" {
		return fmt.Errorf("%w: detect requires a table (-t)", cli.ErrUsage)
	}
	d, err := os.ReadFile(cfg.Table)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	table, err := detect.LoadTable(d)
	if err != nil {
		return fmt.Errorf("error loading %s: %w", cfg.Table, err)
	}
	det := detect.New(table)
	if cfg.List {
		return listTable(cc.Out, det)
	}
	if cfg.Modality == "" {
		return fmt.Errorf("%w: detect requires a modality (-m)", cli.ErrUsage)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(_ int, doc *parse.Document) error {
		name, err := detectDoc(cfg, det, doc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, name)
		return err
	})
}

// detectDoc classifies doc from the values at the -k key paths, or from
// the key paths each definition names.
func detectDoc(cfg *DetectConfig, det *detect.Detector, doc *parse.Document) (string, error) {
	kps := cfg.kpaths()
	if kps == nil {
		return det.DetectDoc(cfg.Modality, doc.Root)
	}
	values, err := detect.Values(doc.Root, kps)
	if err != nil {
		return "", err
	}
	return det.Detect(cfg.Modality, values)
}

func listTable(w io.Writer, det *detect.Detector) error {
	for _, m := range det.Modalities() {
		seqs, err := det.Sequences(m)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n", m)
		for _, s := range seqs {
			fmt.Fprintf(w, "\t- %s\n", s.Name)
		}
	}
	return nil
}
