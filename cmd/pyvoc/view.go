package main

import (
	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachDoc(cfg.MainConfig, cc, args, func(i int, _ string, doc *ir.Doc) error {
		if i > 0 && !cfg.outFormat().IsPyvoc() {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
