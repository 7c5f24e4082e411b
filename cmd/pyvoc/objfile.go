package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/pyvoc/ir"
	"github.com/signadot/pyvoc/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile parses path, or standard input when path is "-".
func getDocFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Doc, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// forEachDoc calls fn on the document in each of files, or on standard
// input when there are none.
func forEachDoc(cfg *MainConfig, cc *cli.Context, files []string, fn func(i int, file string, doc *ir.Doc) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := getDocFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := fn(i, file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
