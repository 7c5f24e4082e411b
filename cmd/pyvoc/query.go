package main

import (
	"fmt"

	"github.com/signadot/pyvoc"
	"github.com/signadot/pyvoc/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a jsonpath", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	return forEachDoc(cfg.MainConfig, cc, args[1:], func(_ int, _ string, doc *ir.Doc) error {
		res, err := pyvoc.Query(doc, path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, v := range res {
			if err := writeResult(cfg.MainConfig, cc, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeResult prints strings as they are and anything else as YAML, or
// as JSON when JSON output is selected.
func writeResult(cfg *MainConfig, cc *cli.Context, v any) error {
	if s, ok := v.(string); ok && !cfg.outFormat().IsJSON() {
		_, err := fmt.Fprintln(cc.Out, s)
		return err
	}
	var opts []yaml.EncodeOption
	if cfg.outFormat().IsJSON() {
		opts = append(opts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(v, opts...)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
