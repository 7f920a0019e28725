package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/fieldline/treelist/rowdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := loadRows(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadRows(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	res := rowdiff.Diff(from, to)
	if res.Empty() {
		return nil
	}
	if err := rowdiff.Format(res, cc.Out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
