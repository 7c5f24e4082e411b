package main

import (
	"fmt"

	"github.com/signadot/pyvoc"
	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/ir"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(_ int, _ string, doc *ir.Doc) error {
		entries, err := pyvoc.Match(doc, src)
		if err != nil {
			return err
		}
		res := ir.New()
		for _, e := range entries {
			res.Set(e.Zone, e.Category, e.Key, e.Value)
		}
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
