package main

import (
	"fmt"
	"strings"

	"github.com/signadot/pyvoc"
	"github.com/signadot/pyvoc/ir"

	"github.com/scott-cotton/cli"
)

// editArgs splits file, path and an optional value, joining any further
// words into the value.
func editArgs(cmd string, args []string) (string, ir.Path, string, error) {
	if len(args) < 2 {
		return "", ir.Path{}, "", fmt.Errorf("%w: %s requires a file and a path", cli.ErrUsage, cmd)
	}
	p, err := ir.ParsePath(args[1])
	if err != nil {
		return "", ir.Path{}, "", fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return args[0], p, strings.Join(args[2:], " "), nil
}

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		return err
	}
	file, p, v, err := editArgs("add", args)
	if err != nil {
		return err
	}
	d, err := pyvoc.Open(file, cfg.docOpts()...)
	if err != nil {
		return err
	}
	switch {
	case p.Level == ir.KeyLevel && cfg.All:
		return d.Add(p.Zone, p.Category, p.Key, v)
	case p.Level == ir.KeyLevel:
		return d.AddKey(p.Zone, p.Category, p.Key, v)
	case p.Level == ir.CategoryLevel && cfg.All && d.Doc().Zone(p.Zone) == nil:
		if err := d.AddZone(p.Zone); err != nil {
			return err
		}
		return d.AddCategory(p.Zone, p.Category)
	case p.Level == ir.CategoryLevel:
		return d.AddCategory(p.Zone, p.Category)
	default:
		return d.AddZone(p.Zone)
	}
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	file, p, v, err := editArgs("set", args)
	if err != nil {
		return err
	}
	if p.Level != ir.KeyLevel {
		return fmt.Errorf("%w: set needs zone/category/key, got %q", cli.ErrUsage, p)
	}
	d, err := pyvoc.Open(file, cfg.docOpts()...)
	if err != nil {
		return err
	}
	return d.Set(p.Zone, p.Category, p.Key, v)
}

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: delete requires 2 arguments, a file and a path", cli.ErrUsage)
	}
	file, p, _, err := editArgs("delete", args)
	if err != nil {
		return err
	}
	d, err := pyvoc.Open(file, cfg.docOpts()...)
	if err != nil {
		return err
	}
	return d.DeletePath(p)
}

func create(cfg *CreateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Create.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: create takes at most a file and a name", cli.ErrUsage)
	}
	var file, name string
	if len(args) > 0 {
		file = args[0]
	}
	if len(args) > 1 {
		name = args[1]
	}
	d := pyvoc.New(cfg.docOpts()...)
	if err := d.Create(file, name); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, d.Path())
	return err
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires 1 argument, a file", cli.ErrUsage)
	}
	opts := cfg.docOpts()
	if cfg.Name != "" {
		opts = append(opts, pyvoc.WithName(cfg.Name))
	}
	d, err := pyvoc.Open(args[0], opts...)
	if err != nil {
		return err
	}
	return d.Dump(cc.Out)
}
