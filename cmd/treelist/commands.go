package main

import (
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
			Name:        "root",
			Description: "display name for the synthetic root row",
			Type:        cli.NamedFuncOpt(cfg.rootOpt, "(name)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "treelist").
		WithSynopsis("treelist [opts] command [opts]").
		WithDescription("treelist flattens settings documents into editable tree rows.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tlMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ListCommand(cfg),
			SetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents as indented row trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("list").
		WithAliases("l", "ls").
		WithSynopsis("list [-where expr] [files]").
		WithDescription("list rows as a flat table, optionally filtered").
		WithOpts(&cli.Opt{
			Name:        "where",
			Description: "row filter expression, e.g. 'Leaf && Type == \"int\"'",
			Type:        cli.NamedFuncOpt(cfg.whereOpt, "(expr)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithSynopsis("set -p /json/pointer -v value [file]").
		WithDescription("replace one document value and show the result").
		WithOpts(
			&cli.Opt{
				Name:        "p",
				Description: "JSON pointer of the value to replace",
				Type:        cli.NamedFuncOpt(cfg.pointerOpt, "(pointer)"),
			},
			&cli.Opt{
				Name:        "v",
				Description: "new value",
				Type:        cli.NamedFuncOpt(cfg.valueOpt, "(value)"),
			}).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("compare two documents by row path").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithSynopsis("patch -f patchfile [file]").
		WithDescription("apply an RFC 6902 patch and show the result").
		WithOpts(&cli.Opt{
			Name:        "f",
			Description: "patch file (JSON or YAML)",
			Type:        cli.NamedFuncOpt(cfg.patchFileOpt, "(filepath)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func (cfg *ListConfig) whereOpt(cc *cli.Context, a string) (any, error) {
	cfg.Where = a
	return nil, nil
}

func (cfg *SetConfig) pointerOpt(cc *cli.Context, a string) (any, error) {
	cfg.Pointer = a
	return nil, nil
}

func (cfg *SetConfig) valueOpt(cc *cli.Context, a string) (any, error) {
	cfg.Value = a
	return nil, nil
}

func (cfg *PatchConfig) patchFileOpt(cc *cli.Context, a string) (any, error) {
	cfg.PatchFile = a
	return nil, nil
}
