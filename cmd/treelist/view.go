package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fieldline/treelist/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		rows, err := loadRows(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(rows, cc.Out, cfg.encOpts()...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if i < len(args)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
