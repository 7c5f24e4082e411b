package main

import (
	"fmt"

	"github.com/signadot/pyvoc"
	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: get takes a file and a path", cli.ErrUsage)
	}
	file, p, _, err := editArgs("get", args)
	if err != nil {
		return err
	}
	if p.Level == ir.ZoneLevel {
		return fmt.Errorf("%w: get needs zone/category or zone/category/key, got %q", cli.ErrUsage, args[1])
	}
	d, err := pyvoc.Open(file, cfg.docOpts()...)
	if err != nil {
		return err
	}
	if p.Level == ir.KeyLevel {
		v, err := d.Get(p.Zone, p.Category, p.Key)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cc.Out, v)
		return err
	}
	if _, err := d.GetCategory(p.Zone, p.Category); err != nil {
		return err
	}
	// keep the file's key order
	res := ir.New()
	cat := d.Doc().Category(p.Zone, p.Category)
	res.EnsureZone(p.Zone).Categories = []*ir.Category{cat}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
