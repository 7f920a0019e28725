package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/fieldline/treelist"
	"github.com/fieldline/treelist/encode"
	"github.com/fieldline/treelist/node"
	"github.com/fieldline/treelist/project"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	NoColor bool `cli:"name=no-color desc='render without color'"`
	IDs     bool `cli:"name=ids desc='show row ids in tree output'"`

	RootName string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) rootOpt(cc *cli.Context, a string) (any, error) {
	cfg.RootName = a
	return nil, nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.ShowIDs(cfg.IDs),
	}
	useColor := cfg.Color
	if !cfg.Color && !cfg.NoColor {
		useColor = isatty.IsTerminal(os.Stdout.Fd())
	}
	if useColor {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) projOpts(arg string) []project.Option {
	name := cfg.RootName
	if name == "" && arg != "" && arg != "-" {
		name = arg
	}
	if name == "" {
		return nil
	}
	return []project.Option{project.RootName(name)}
}

// loadRows reads one YAML or JSON document from a file (or stdin for
// "-") and projects it.
func loadRows(cfg *MainConfig, arg string) (node.List, error) {
	data, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	rows, err := treelist.FromYAML(data, cfg.projOpts(arg)...)
	if err != nil {
		return nil, fmt.Errorf("error projecting %s: %w", arg, err)
	}
	return rows, nil
}

func readArg(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string
	List  *cli.Command
}

type SetConfig struct {
	*MainConfig
	Pointer string
	Value   string
	Set     *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string
	Patch     *cli.Command
}
