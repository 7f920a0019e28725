package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fieldline/treelist"
	"github.com/fieldline/treelist/encode"
)

// set edits one document value by JSON pointer. Untyped documents have
// no field write targets (map values and collection elements are not
// independently addressable), so document edits go through an
// RFC 6902 replace operation rather than a row commit.
func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Pointer == "" {
		return fmt.Errorf("%w: set requires -p with a JSON pointer", cli.ErrUsage)
	}
	arg := "-"
	if len(args) == 1 {
		arg = args[0]
	} else if len(args) > 1 {
		return fmt.Errorf("%w: set edits one document", cli.ErrUsage)
	}
	doc, err := readArg(arg)
	if err != nil {
		return err
	}
	op := []map[string]any{{
		"op":    "replace",
		"path":  cfg.Pointer,
		"value": cfg.Value,
	}}
	patch, err := json.Marshal(op)
	if err != nil {
		return err
	}
	rows, err := treelist.ApplyPatch(doc, patch, cfg.projOpts(arg)...)
	if err != nil {
		return fmt.Errorf("error setting %s in %s: %w", cfg.Pointer, arg, err)
	}
	return encode.Encode(rows, cc.Out, cfg.encOpts()...)
}
