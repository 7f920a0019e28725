package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fieldline/treelist"
	"github.com/fieldline/treelist/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires -f with a patch file", cli.ErrUsage)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("%w: patch edits one document", cli.ErrUsage)
	}
	doc, err := readArg(arg)
	if err != nil {
		return err
	}
	p, err := readArg(cfg.PatchFile)
	if err != nil {
		return err
	}
	rows, err := treelist.ApplyPatch(doc, p, cfg.projOpts(arg)...)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", arg, err)
	}
	return encode.Encode(rows, cc.Out, cfg.encOpts()...)
}
