package main

import (
	"fmt"
	"os"

	"github.com/signadot/pyvoc"
	"github.com/signadot/pyvoc/encode"
	"github.com/signadot/pyvoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch and a file to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	apply := func(doc *ir.Doc) (*ir.Doc, error) {
		if cfg.Merge {
			return pyvoc.MergePatch(doc, p)
		}
		return pyvoc.Patch(doc, p)
	}
	if cfg.InPlace {
		d, err := pyvoc.Open(args[1], cfg.docOpts()...)
		if err != nil {
			return err
		}
		return d.Update(func(doc *ir.Doc) error {
			res, err := apply(doc)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", args[1], err)
			}
			*doc = *res
			return nil
		})
	}
	target, err := getDocFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := apply(target)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// getPatch reads the patch from the file arg, or takes arg itself with
// -s.
func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading patch: %w", cli.ErrUsage, err)
	}
	return d, nil
}
